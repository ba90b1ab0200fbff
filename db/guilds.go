package db

import (
	"context"
	"database/sql"
	"fmt"
	"strings"

	"github.com/jmoiron/sqlx"
	"github.com/samber/mo"

	"sentrybot/core"
	"sentrybot/models"
)

type PostgresGuildsRepository struct {
	db     *sqlx.DB
	schema string
}

// Column names for guilds table
var guildsColumns = []string{
	"guild_id",
	"config",
	"created_at",
	"updated_at",
}

func NewPostgresGuildsRepository(db *sqlx.DB, schema string) *PostgresGuildsRepository {
	return &PostgresGuildsRepository{db: db, schema: schema}
}

func (r *PostgresGuildsRepository) GetGuildByID(
	ctx context.Context,
	guildID string,
) (mo.Option[*models.Guild], error) {
	if guildID == "" {
		return mo.None[*models.Guild](), fmt.Errorf("guild ID cannot be empty")
	}

	columnsStr := strings.Join(guildsColumns, ", ")
	query := fmt.Sprintf(`
		SELECT %s
		FROM %s.guilds
		WHERE guild_id = $1`, columnsStr, r.schema)

	var guild models.Guild
	err := r.db.GetContext(ctx, &guild, query, guildID)
	if err != nil {
		if err == sql.ErrNoRows {
			return mo.None[*models.Guild](), nil
		}
		return mo.None[*models.Guild](), fmt.Errorf("failed to get guild by ID: %w", err)
	}

	return mo.Some(&guild), nil
}

// GetOrCreateGuild returns the guild record for guildID, inserting a default
// record if none exists yet. ON CONFLICT DO NOTHING keeps concurrent first
// references from creating duplicate records: the first caller inserts, the
// others fall through to the select and observe the created record.
func (r *PostgresGuildsRepository) GetOrCreateGuild(
	ctx context.Context,
	guildID string,
) (*models.Guild, error) {
	if guildID == "" {
		return nil, fmt.Errorf("guild ID cannot be empty")
	}

	returningStr := strings.Join(guildsColumns, ", ")
	insertQuery := fmt.Sprintf(`
		INSERT INTO %s.guilds (guild_id, config, created_at, updated_at)
		VALUES ($1, $2, NOW(), NOW())
		ON CONFLICT (guild_id) DO NOTHING
		RETURNING %s`, r.schema, returningStr)

	var guild models.Guild
	err := r.db.QueryRowxContext(ctx, insertQuery, guildID, models.DefaultGuildConfig()).StructScan(&guild)
	if err == nil {
		return &guild, nil
	}
	if err != sql.ErrNoRows {
		return nil, fmt.Errorf("failed to create guild: %w", err)
	}

	// Insert hit the conflict - the record already exists, load it
	maybeGuild, err := r.GetGuildByID(ctx, guildID)
	if err != nil {
		return nil, err
	}
	if !maybeGuild.IsPresent() {
		return nil, fmt.Errorf("guild %s disappeared after conflicting insert", guildID)
	}

	return maybeGuild.MustGet(), nil
}

func (r *PostgresGuildsRepository) UpdateGuildConfig(
	ctx context.Context,
	guildID string,
	config models.GuildConfig,
) (*models.Guild, error) {
	if guildID == "" {
		return nil, fmt.Errorf("guild ID cannot be empty")
	}

	returningStr := strings.Join(guildsColumns, ", ")
	query := fmt.Sprintf(`
		UPDATE %s.guilds
		SET config = $2, updated_at = NOW()
		WHERE guild_id = $1
		RETURNING %s`, r.schema, returningStr)

	var guild models.Guild
	err := r.db.QueryRowxContext(ctx, query, guildID, config).StructScan(&guild)
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, fmt.Errorf("failed to update guild config: guild %s %w", guildID, core.ErrNotFound)
		}
		return nil, fmt.Errorf("failed to update guild config: %w", err)
	}

	return &guild, nil
}
