// Package directory manages the conversation list: loading the sidebar's
// channels and DMs, creating channels, and creating or reusing direct
// messages.
package directory

import (
	"context"
	"log/slog"
	"strings"

	"github.com/abrandt/huddle/internal/backend"
	"github.com/abrandt/huddle/internal/errors"
	"github.com/abrandt/huddle/internal/logger"
)

// Directory wraps the backend client with the conversation-list operations.
type Directory struct {
	client backend.Client
	log    *slog.Logger
}

// New creates a Directory backed by the given client.
func New(client backend.Client) *Directory {
	return &Directory{
		client: client,
		log:    logger.ComponentLogger("Directory"),
	}
}

// NormalizeChannelName converts a display name to a channel name: trimmed,
// lowercased, with every run of whitespace replaced by a single hyphen.
func NormalizeChannelName(name string) string {
	name = strings.TrimSpace(name)
	name = strings.ToLower(name)
	return strings.Join(strings.Fields(name), "-")
}

// List returns the conversations visible to the user, channels before DMs,
// preserving the backend's order within each section.
func (d *Directory) List(ctx context.Context, userID string) ([]backend.Conversation, error) {
	convs, err := d.client.ListConversations(ctx, userID)
	if err != nil {
		return nil, errors.ConversationsFetchFailed(err)
	}

	var channels, dms []backend.Conversation
	for _, c := range convs {
		if c.IsDM() {
			dms = append(dms, c)
		} else {
			channels = append(channels, c)
		}
	}
	return append(channels, dms...), nil
}

// CreateChannel normalizes the name and inserts a channel conversation. An
// empty name after normalization is rejected without a remote call.
func (d *Directory) CreateChannel(ctx context.Context, name, description, createdBy string) (backend.Conversation, error) {
	normalized := NormalizeChannelName(name)
	if normalized == "" {
		return backend.Conversation{}, errors.ChannelNameEmpty()
	}

	conv := backend.Conversation{
		Name:        normalized,
		Kind:        backend.KindChannel,
		Section:     backend.SectionChannels,
		Description: strings.TrimSpace(description),
		CreatedBy:   createdBy,
	}

	created, err := d.client.CreateConversation(ctx, conv)
	if err != nil {
		return backend.Conversation{}, errors.ChannelCreateFailed(normalized, err)
	}

	d.log.Info("Channel created", "id", created.ID, "name", created.Name)
	return created, nil
}

// CreateOrReuseDM returns the DM between the user and the other profile,
// creating it when none exists. The second return value reports whether an
// existing DM was reused.
//
// The lookup and the insert are separate calls with no cross-session lock, so
// two users starting the same DM at the same moment can both create one.
func (d *Directory) CreateOrReuseDM(ctx context.Context, userID string, other backend.Profile) (backend.Conversation, bool, error) {
	existing, err := d.client.FindDM(ctx, userID, other.ID)
	if err != nil {
		return backend.Conversation{}, false, errors.DMCreateFailed(other.Name(), err)
	}
	if existing != nil {
		d.log.Debug("DM reused", "id", existing.ID, "with", other.ID)
		return *existing, true, nil
	}

	conv := backend.Conversation{
		Name:           other.Name(),
		Kind:           backend.KindDM,
		Section:        backend.SectionDMs,
		CreatedBy:      userID,
		DMParticipants: []string{userID, other.ID},
	}

	created, err := d.client.CreateConversation(ctx, conv)
	if err != nil {
		return backend.Conversation{}, false, errors.DMCreateFailed(other.Name(), err)
	}

	d.log.Info("DM created", "id", created.ID, "with", other.ID)
	return created, false, nil
}
