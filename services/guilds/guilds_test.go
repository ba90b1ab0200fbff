package guilds

import (
	"context"
	"fmt"
	"testing"

	"github.com/samber/mo"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"sentrybot/models"
)

const testGuildID = "80351110224678912"

func setupGuildsServiceTest() (*GuildsService, *MockGuildsRepository) {
	repo := new(MockGuildsRepository)
	return NewGuildsService(repo), repo
}

func TestGetOrCreateGuild(t *testing.T) {
	t.Run("returns the repository record", func(t *testing.T) {
		service, repo := setupGuildsServiceTest()
		guild := &models.Guild{GuildID: testGuildID, Config: models.DefaultGuildConfig()}
		repo.On("GetOrCreateGuild", context.Background(), testGuildID).Return(guild, nil)

		got, err := service.GetOrCreateGuild(context.Background(), testGuildID)
		require.NoError(t, err)
		assert.Equal(t, guild, got)
		repo.AssertNumberOfCalls(t, "GetOrCreateGuild", 1)
	})

	t.Run("rejects empty guild ID without touching the repository", func(t *testing.T) {
		service, repo := setupGuildsServiceTest()

		_, err := service.GetOrCreateGuild(context.Background(), "")
		assert.Error(t, err)
		repo.AssertNotCalled(t, "GetOrCreateGuild")
	})

	t.Run("propagates repository failures", func(t *testing.T) {
		service, repo := setupGuildsServiceTest()
		repo.On("GetOrCreateGuild", context.Background(), testGuildID).
			Return(nil, fmt.Errorf("connection refused"))

		_, err := service.GetOrCreateGuild(context.Background(), testGuildID)
		assert.ErrorContains(t, err, "connection refused")
	})
}

func TestGetGuildByID(t *testing.T) {
	t.Run("returns None when the guild does not exist", func(t *testing.T) {
		service, repo := setupGuildsServiceTest()
		repo.On("GetGuildByID", context.Background(), testGuildID).
			Return(mo.None[*models.Guild](), nil)

		maybeGuild, err := service.GetGuildByID(context.Background(), testGuildID)
		require.NoError(t, err)
		assert.False(t, maybeGuild.IsPresent())
	})

	t.Run("rejects empty guild ID", func(t *testing.T) {
		service, _ := setupGuildsServiceTest()

		_, err := service.GetGuildByID(context.Background(), "")
		assert.Error(t, err)
	})
}

func TestUpdateGuildConfig(t *testing.T) {
	t.Run("returns the updated record", func(t *testing.T) {
		service, repo := setupGuildsServiceTest()
		config := models.GuildConfig{EnforceReason: true}
		updated := &models.Guild{GuildID: testGuildID, Config: config}
		repo.On("UpdateGuildConfig", context.Background(), testGuildID, config).Return(updated, nil)

		got, err := service.UpdateGuildConfig(context.Background(), testGuildID, config)
		require.NoError(t, err)
		assert.True(t, got.Config.EnforceReason)
	})

	t.Run("rejects empty guild ID", func(t *testing.T) {
		service, _ := setupGuildsServiceTest()

		_, err := service.UpdateGuildConfig(context.Background(), "", models.GuildConfig{})
		assert.Error(t, err)
	})
}
