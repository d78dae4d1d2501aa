package backend

import (
	"context"
	"encoding/json"
	"net/http"
	"strings"
	"time"

	"github.com/coder/websocket"

	"github.com/abrandt/huddle/internal/errors"
)

// subscribeFrame is the first frame sent on a realtime connection. It scopes
// the stream to inserts on one table, optionally narrowed to one
// conversation; an empty conversation_id streams the whole table.
type subscribeFrame struct {
	Type           string `json:"type"`
	Table          string `json:"table"`
	ConversationID string `json:"conversation_id"`
}

// eventFrame is a frame received from the realtime endpoint.
type eventFrame struct {
	Type   string          `json:"type"`
	Table  string          `json:"table"`
	Record json.RawMessage `json:"record"`
}

// wsURL converts the REST base URL to the realtime websocket URL.
func wsURL(baseURL string) string {
	u := baseURL
	u = strings.Replace(u, "https://", "wss://", 1)
	u = strings.Replace(u, "http://", "ws://", 1)
	return u + "/realtime/v1"
}

// Subscribe opens a websocket to the realtime endpoint, sends the subscribe
// frame for the conversation's message inserts, and pumps decoded events into
// the subscription channel until ctx is canceled or the connection drops.
func (c *HTTPClient) Subscribe(ctx context.Context, conversationID string) (*Subscription, error) {
	ctx, cancel := context.WithCancel(ctx)

	conn, _, err := websocket.Dial(ctx, wsURL(c.baseURL), &websocket.DialOptions{
		HTTPHeader: http.Header{
			"apikey":        []string{c.anonKey},
			"Authorization": []string{"Bearer " + c.anonKey},
		},
	})
	if err != nil {
		cancel()
		return nil, errors.SubscribeFailed(conversationID, err)
	}

	frame := subscribeFrame{Type: "subscribe", Table: "messages", ConversationID: conversationID}
	data, _ := json.Marshal(frame)
	if err := conn.Write(ctx, websocket.MessageText, data); err != nil {
		cancel()
		conn.Close(websocket.StatusInternalError, "subscribe write failed")
		return nil, errors.SubscribeFailed(conversationID, err)
	}

	sub := &Subscription{
		ConversationID: conversationID,
		events:         make(chan InsertEvent, 16),
		cancel:         cancel,
	}

	go c.readLoop(ctx, conn, sub)

	c.log.Info("Subscribed", "conversationID", conversationID)
	return sub, nil
}

// readLoop reads frames until the context is canceled or the connection
// fails, then closes the events channel.
func (c *HTTPClient) readLoop(ctx context.Context, conn *websocket.Conn, sub *Subscription) {
	defer close(sub.events)
	defer conn.Close(websocket.StatusNormalClosure, "done")

	for {
		_, data, err := conn.Read(ctx)
		if err != nil {
			if ctx.Err() == nil {
				c.log.Warn("Realtime read failed", "conversationID", sub.ConversationID, "error", err)
			}
			return
		}

		var frame eventFrame
		if err := json.Unmarshal(data, &frame); err != nil {
			c.log.Warn("Realtime frame decode failed", "error", err)
			continue
		}
		if frame.Type != "insert" || frame.Table != "messages" {
			continue
		}

		var msg Message
		if err := json.Unmarshal(frame.Record, &msg); err != nil {
			c.log.Warn("Realtime record decode failed", "error", err)
			continue
		}
		if msg.CreatedAt.IsZero() {
			msg.CreatedAt = time.Now()
		}

		select {
		case sub.events <- InsertEvent{Table: frame.Table, Message: msg}:
		case <-ctx.Done():
			return
		}
	}
}
