package guilds

import (
	"context"
	"fmt"
	"log"

	"github.com/samber/mo"

	"sentrybot/models"
)

// GuildsRepository is the narrow persistence surface needed by the service
type GuildsRepository interface {
	GetGuildByID(ctx context.Context, guildID string) (mo.Option[*models.Guild], error)
	GetOrCreateGuild(ctx context.Context, guildID string) (*models.Guild, error)
	UpdateGuildConfig(ctx context.Context, guildID string, config models.GuildConfig) (*models.Guild, error)
}

type GuildsService struct {
	guildsRepo GuildsRepository
}

func NewGuildsService(repo GuildsRepository) *GuildsService {
	return &GuildsService{guildsRepo: repo}
}

func (s *GuildsService) GetOrCreateGuild(ctx context.Context, guildID string) (*models.Guild, error) {
	log.Printf("📋 Starting to get or create guild: %s", guildID)
	if guildID == "" {
		return nil, fmt.Errorf("guild ID cannot be empty")
	}

	guild, err := s.guildsRepo.GetOrCreateGuild(ctx, guildID)
	if err != nil {
		return nil, fmt.Errorf("failed to get or create guild: %w", err)
	}

	log.Printf("📋 Completed successfully - got guild: %s", guild.GuildID)
	return guild, nil
}

func (s *GuildsService) GetGuildByID(ctx context.Context, guildID string) (mo.Option[*models.Guild], error) {
	log.Printf("📋 Starting to get guild: %s", guildID)
	if guildID == "" {
		return mo.None[*models.Guild](), fmt.Errorf("guild ID cannot be empty")
	}

	maybeGuild, err := s.guildsRepo.GetGuildByID(ctx, guildID)
	if err != nil {
		return mo.None[*models.Guild](), fmt.Errorf("failed to get guild: %w", err)
	}

	log.Printf("📋 Completed successfully - guild %s present: %v", guildID, maybeGuild.IsPresent())
	return maybeGuild, nil
}

func (s *GuildsService) UpdateGuildConfig(
	ctx context.Context,
	guildID string,
	config models.GuildConfig,
) (*models.Guild, error) {
	log.Printf("📋 Starting to update guild config: %s", guildID)
	if guildID == "" {
		return nil, fmt.Errorf("guild ID cannot be empty")
	}

	guild, err := s.guildsRepo.UpdateGuildConfig(ctx, guildID, config)
	if err != nil {
		return nil, fmt.Errorf("failed to update guild config: %w", err)
	}

	log.Printf("📋 Completed successfully - updated guild config: %s", guildID)
	return guild, nil
}
