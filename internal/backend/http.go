package backend

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"net/url"
	"time"

	"github.com/abrandt/huddle/internal/errors"
	"github.com/abrandt/huddle/internal/logger"
)

// defaultTimeout bounds each REST call.
const defaultTimeout = 15 * time.Second

// HTTPClient talks to the backend's row API under /rest/v1 and its realtime
// endpoint under /realtime/v1.
type HTTPClient struct {
	baseURL string
	anonKey string
	http    *http.Client
	log     *slog.Logger
}

var _ Client = (*HTTPClient)(nil)

// NewHTTPClient creates a client for the backend at baseURL. The anon key is
// sent as both apikey and bearer token, mirroring the service's auth scheme.
func NewHTTPClient(baseURL, anonKey string) *HTTPClient {
	return &HTTPClient{
		baseURL: baseURL,
		anonKey: anonKey,
		http:    &http.Client{Timeout: defaultTimeout},
		log:     logger.ComponentLogger("Backend"),
	}
}

// do issues a JSON request against a /rest/v1 path and decodes the response
// into out (which may be nil for fire-and-forget mutations).
func (c *HTTPClient) do(ctx context.Context, method, path string, query url.Values, body, out interface{}) error {
	u := c.baseURL + "/rest/v1" + path
	if len(query) > 0 {
		u += "?" + query.Encode()
	}

	var reader io.Reader
	if body != nil {
		data, err := json.Marshal(body)
		if err != nil {
			return err
		}
		reader = bytes.NewReader(data)
	}

	req, err := http.NewRequestWithContext(ctx, method, u, reader)
	if err != nil {
		return err
	}
	req.Header.Set("apikey", c.anonKey)
	req.Header.Set("Authorization", "Bearer "+c.anonKey)
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	resp, err := c.http.Do(req)
	if err != nil {
		return errors.BackendUnreachable(c.baseURL, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		data, _ := io.ReadAll(io.LimitReader(resp.Body, 4096))
		c.log.Warn("Request failed", "method", method, "path", path, "status", resp.StatusCode)
		return errors.E(errors.Op("backend.do"), errors.KindNetwork,
			fmt.Sprintf("%s %s returned %d: %s", method, path, resp.StatusCode, data))
	}

	if out == nil {
		return nil
	}
	return json.NewDecoder(resp.Body).Decode(out)
}

// ListConversations returns channels plus the user's DMs.
func (c *HTTPClient) ListConversations(ctx context.Context, userID string) ([]Conversation, error) {
	q := url.Values{}
	q.Set("user_id", userID)

	var convs []Conversation
	if err := c.do(ctx, http.MethodGet, "/conversations", q, nil, &convs); err != nil {
		return nil, err
	}
	c.log.Debug("Conversations loaded", "count", len(convs))
	return convs, nil
}

// CreateConversation inserts a conversation row.
func (c *HTTPClient) CreateConversation(ctx context.Context, conv Conversation) (Conversation, error) {
	var created Conversation
	if err := c.do(ctx, http.MethodPost, "/conversations", nil, conv, &created); err != nil {
		return Conversation{}, err
	}
	c.log.Info("Conversation created", "id", created.ID, "kind", created.Kind)
	return created, nil
}

// FindDM looks up the DM between two profiles via the participant-pair query.
func (c *HTTPClient) FindDM(ctx context.Context, userA, userB string) (*Conversation, error) {
	q := url.Values{}
	q.Set("kind", string(KindDM))
	q.Set("participants", userA+","+userB)

	var convs []Conversation
	if err := c.do(ctx, http.MethodGet, "/conversations", q, nil, &convs); err != nil {
		return nil, err
	}

	// The pair is unordered; re-check locally in case the backend matched
	// on a single participant.
	for i := range convs {
		if convs[i].HasParticipants(userA, userB) {
			return &convs[i], nil
		}
	}
	return nil, nil
}

// ListMessages returns a conversation's messages, oldest first.
func (c *HTTPClient) ListMessages(ctx context.Context, conversationID string) ([]Message, error) {
	q := url.Values{}
	q.Set("conversation_id", conversationID)
	q.Set("order", "created_at.asc")

	var msgs []Message
	if err := c.do(ctx, http.MethodGet, "/messages", q, nil, &msgs); err != nil {
		return nil, err
	}
	c.log.Debug("Messages loaded", "conversationID", conversationID, "count", len(msgs))
	return msgs, nil
}

// SendMessage inserts a message row.
func (c *HTTPClient) SendMessage(ctx context.Context, msg Message) (Message, error) {
	var stored Message
	if err := c.do(ctx, http.MethodPost, "/messages", nil, msg, &stored); err != nil {
		return Message{}, err
	}
	return stored, nil
}

// ListProfiles returns all workspace member profiles.
func (c *HTTPClient) ListProfiles(ctx context.Context) ([]Profile, error) {
	var profiles []Profile
	if err := c.do(ctx, http.MethodGet, "/profiles", nil, nil, &profiles); err != nil {
		return nil, err
	}
	return profiles, nil
}
