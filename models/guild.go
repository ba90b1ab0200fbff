package models

import (
	"database/sql/driver"
	"encoding/json"
	"fmt"
	"time"
)

// GuildConfig holds the per-guild moderation configuration. It is stored as
// a JSONB column inside the guild record.
type GuildConfig struct {
	// ModlogChannelID is the channel where moderation logs are sent (nil if unset)
	ModlogChannelID *string `json:"modlog_channel_id,omitempty"`
	// ModeratorRoles are the roles allowed to use moderation commands
	ModeratorRoles []string `json:"moderator_roles,omitempty"`
	// EnforceReason requires moderators to provide a sanction reason
	EnforceReason bool `json:"enforce_reason"`
	// AnonymizeModlogs hides the moderator identity in public modlogs
	AnonymizeModlogs bool `json:"anonymize_modlogs"`
}

// DefaultGuildConfig returns the configuration applied when a guild is
// referenced for the first time
func DefaultGuildConfig() GuildConfig {
	return GuildConfig{}
}

// Value implements driver.Valuer so the config can be stored as JSONB
func (c GuildConfig) Value() (driver.Value, error) {
	return json.Marshal(c)
}

// Scan implements sql.Scanner so the config can be read back from JSONB
func (c *GuildConfig) Scan(value any) error {
	data, ok := value.([]byte)
	if !ok {
		return fmt.Errorf("failed to scan guild config: expected []byte, got %T", value)
	}
	return json.Unmarshal(data, c)
}

// Guild is the persistent configuration record for a Discord guild.
// Exactly one record exists per guild ID - it is created lazily on first
// reference and loaded unchanged afterwards.
type Guild struct {
	GuildID   string      `db:"guild_id"   json:"guild_id"`
	Config    GuildConfig `db:"config"     json:"config"`
	CreatedAt time.Time   `db:"created_at" json:"created_at"`
	UpdatedAt time.Time   `db:"updated_at" json:"updated_at"`
}
