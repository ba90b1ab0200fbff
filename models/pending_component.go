package models

import (
	"encoding/json"
	"fmt"

	"github.com/bwmarrin/discordgo"

	"sentrybot/core"
)

// SanctionKind is the type of a pending moderation sanction
type SanctionKind string

const (
	SanctionKindKick SanctionKind = "kick"
	SanctionKindBan  SanctionKind = "ban"
	SanctionKindMute SanctionKind = "mute"
	SanctionKindWarn SanctionKind = "warn"
)

// PendingComponentKind is the discriminant tag serialized alongside a
// pending component payload
type PendingComponentKind string

const (
	PendingComponentKindPostInChatButton PendingComponentKind = "post_in_chat_button"
	PendingComponentKindSanction         PendingComponentKind = "sanction"
)

// PendingComponent is the state of a message component waiting for a user
// interaction. It is a closed set of variants - consumers dispatch
// exhaustively on the concrete type so that adding a variant is a
// compile-time-visible change.
type PendingComponent interface {
	// ComponentID returns the component unique identifier regardless of variant
	ComponentID() string
	// ComponentKind returns the variant discriminant
	ComponentKind() PendingComponentKind
}

// PostInChatButton is the state behind a "post in chat" button: pressing it
// re-posts a previously ephemeral response into the channel.
type PostInChatButton struct {
	// ID is the component unique identifier
	ID string `json:"id"`
	// Response is the response to send to the channel
	Response *discordgo.InteractionResponseData `json:"response"`
	// AuthorID is the user that triggered the initial interaction
	AuthorID core.Snowflake `json:"author_id"`
}

func (c *PostInChatButton) ComponentID() string { return c.ID }

func (c *PostInChatButton) ComponentKind() PendingComponentKind {
	return PendingComponentKindPostInChatButton
}

// PendingSanction is the state behind a sanction confirmation button
type PendingSanction struct {
	// ID is the component unique identifier
	ID string `json:"id"`
	// Kind is the type of the pending sanction
	Kind SanctionKind `json:"kind"`
	// User is the user targeted by the sanction
	User *discordgo.User `json:"user"`
}

func (c *PendingSanction) ComponentID() string { return c.ID }

func (c *PendingSanction) ComponentKind() PendingComponentKind {
	return PendingComponentKindSanction
}

// pendingComponentEnvelope is the serialized form of a pending component:
// the variant tag plus the variant-specific payload
type pendingComponentEnvelope struct {
	Kind PendingComponentKind `json:"kind"`
	Data json.RawMessage      `json:"data"`
}

// MarshalPendingComponent serializes a pending component with its variant tag
func MarshalPendingComponent(component PendingComponent) ([]byte, error) {
	data, err := json.Marshal(component)
	if err != nil {
		return nil, fmt.Errorf("failed to marshal pending component payload: %w", err)
	}

	envelope := pendingComponentEnvelope{
		Kind: component.ComponentKind(),
		Data: data,
	}
	encoded, err := json.Marshal(envelope)
	if err != nil {
		return nil, fmt.Errorf("failed to marshal pending component envelope: %w", err)
	}
	return encoded, nil
}

// UnmarshalPendingComponent deserializes a pending component, dispatching on
// the stored variant tag
func UnmarshalPendingComponent(data []byte) (PendingComponent, error) {
	var envelope pendingComponentEnvelope
	if err := json.Unmarshal(data, &envelope); err != nil {
		return nil, fmt.Errorf("failed to unmarshal pending component envelope: %w", err)
	}

	switch envelope.Kind {
	case PendingComponentKindPostInChatButton:
		var component PostInChatButton
		if err := json.Unmarshal(envelope.Data, &component); err != nil {
			return nil, fmt.Errorf("failed to unmarshal post in chat button: %w", err)
		}
		return &component, nil
	case PendingComponentKindSanction:
		var component PendingSanction
		if err := json.Unmarshal(envelope.Data, &component); err != nil {
			return nil, fmt.Errorf("failed to unmarshal pending sanction: %w", err)
		}
		return &component, nil
	default:
		return nil, fmt.Errorf("unknown pending component kind: %q", envelope.Kind)
	}
}
