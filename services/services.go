package services

import (
	"context"

	"github.com/samber/mo"

	"sentrybot/models"
)

// GuildsService defines the interface for guild configuration operations
type GuildsService interface {
	// GetOrCreateGuild returns the configuration record for a guild,
	// creating a default record on first reference. Safe to call
	// concurrently with the same guild ID.
	GetOrCreateGuild(ctx context.Context, guildID string) (*models.Guild, error)
	GetGuildByID(ctx context.Context, guildID string) (mo.Option[*models.Guild], error)
	UpdateGuildConfig(ctx context.Context, guildID string, config models.GuildConfig) (*models.Guild, error)
}

// PendingComponentsService defines the interface for the TTL-bound store of
// pending component state
type PendingComponentsService interface {
	// PutPendingComponent stores a component under its ID, overwriting any
	// existing record and resetting the TTL
	PutPendingComponent(ctx context.Context, component models.PendingComponent) error
	// GetPendingComponent returns the component stored under id, or None if
	// it was never stored or has expired
	GetPendingComponent(ctx context.Context, id string) (mo.Option[models.PendingComponent], error)
	// DeletePendingComponent reclaims a consumed component's key early.
	// Correct callers may also let records expire naturally.
	DeletePendingComponent(ctx context.Context, id string) error
}
