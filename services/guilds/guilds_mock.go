package guilds

import (
	"context"

	"github.com/samber/mo"
	"github.com/stretchr/testify/mock"

	"sentrybot/models"
)

// MockGuildsService is a mock implementation of the GuildsService interface
type MockGuildsService struct {
	mock.Mock
}

func (m *MockGuildsService) GetOrCreateGuild(ctx context.Context, guildID string) (*models.Guild, error) {
	args := m.Called(ctx, guildID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Guild), args.Error(1)
}

func (m *MockGuildsService) GetGuildByID(
	ctx context.Context,
	guildID string,
) (mo.Option[*models.Guild], error) {
	args := m.Called(ctx, guildID)
	return args.Get(0).(mo.Option[*models.Guild]), args.Error(1)
}

func (m *MockGuildsService) UpdateGuildConfig(
	ctx context.Context,
	guildID string,
	config models.GuildConfig,
) (*models.Guild, error) {
	args := m.Called(ctx, guildID, config)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Guild), args.Error(1)
}

// MockGuildsRepository is a mock implementation of the GuildsRepository interface
type MockGuildsRepository struct {
	mock.Mock
}

func (m *MockGuildsRepository) GetGuildByID(
	ctx context.Context,
	guildID string,
) (mo.Option[*models.Guild], error) {
	args := m.Called(ctx, guildID)
	return args.Get(0).(mo.Option[*models.Guild]), args.Error(1)
}

func (m *MockGuildsRepository) GetOrCreateGuild(ctx context.Context, guildID string) (*models.Guild, error) {
	args := m.Called(ctx, guildID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Guild), args.Error(1)
}

func (m *MockGuildsRepository) UpdateGuildConfig(
	ctx context.Context,
	guildID string,
	config models.GuildConfig,
) (*models.Guild, error) {
	args := m.Called(ctx, guildID, config)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Guild), args.Error(1)
}
