package interactions

import (
	"context"
	"fmt"
	"testing"

	"github.com/bwmarrin/discordgo"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"sentrybot/core"
	"sentrybot/models"
	"sentrybot/services/guilds"
)

const (
	testInteractionID = "interaction-123"
	testApplicationID = "app-456"
	testToken         = "interaction-token"
	testChannelID     = "channel-789"
	testGuildID       = "80351110224678912"
	testUserID        = "1111"
)

type interactionsTestFixture struct {
	useCase       *InteractionsUseCase
	guildsService *guilds.MockGuildsService
	ctx           context.Context
}

func setupInteractionsTest() *interactionsTestFixture {
	guildsService := new(guilds.MockGuildsService)
	return &interactionsTestFixture{
		useCase:       NewInteractionsUseCase(guildsService),
		guildsService: guildsService,
		ctx:           context.Background(),
	}
}

// newInteraction builds a raw interaction of the given kind. guildID is
// empty for private interactions.
func newInteraction(
	interactionType discordgo.InteractionType,
	data discordgo.InteractionData,
	guildID string,
	member *discordgo.Member,
	user *discordgo.User,
) *discordgo.InteractionCreate {
	return &discordgo.InteractionCreate{
		Interaction: &discordgo.Interaction{
			ID:        testInteractionID,
			AppID:     testApplicationID,
			Type:      interactionType,
			Data:      data,
			Token:     testToken,
			ChannelID: testChannelID,
			GuildID:   guildID,
			Member:    member,
			User:      user,
			Locale:    discordgo.EnglishUS,
		},
	}
}

func testMember() *discordgo.Member {
	return &discordgo.Member{
		Nick: "mod",
		User: &discordgo.User{ID: testUserID, Username: "moderator"},
	}
}

// interactionKinds drives the shared-algorithm tests: every resolution rule
// must hold identically for commands, components and modals
var interactionKinds = []struct {
	name            string
	interactionType discordgo.InteractionType
	data            discordgo.InteractionData
	resolve         func(ctx context.Context, u *InteractionsUseCase, ic *discordgo.InteractionCreate) (models.InteractionEnvelope, error)
}{
	{
		name:            "command",
		interactionType: discordgo.InteractionApplicationCommand,
		data:            discordgo.ApplicationCommandInteractionData{ID: "cmd-1", Name: "profile"},
		resolve: func(ctx context.Context, u *InteractionsUseCase, ic *discordgo.InteractionCreate) (models.InteractionEnvelope, error) {
			resolved, err := u.ResolveCommand(ctx, ic)
			if err != nil {
				return models.InteractionEnvelope{}, err
			}
			return resolved.InteractionEnvelope, nil
		},
	},
	{
		name:            "component",
		interactionType: discordgo.InteractionMessageComponent,
		data:            discordgo.MessageComponentInteractionData{CustomID: "pc_1"},
		resolve: func(ctx context.Context, u *InteractionsUseCase, ic *discordgo.InteractionCreate) (models.InteractionEnvelope, error) {
			resolved, err := u.ResolveComponent(ctx, ic)
			if err != nil {
				return models.InteractionEnvelope{}, err
			}
			return resolved.InteractionEnvelope, nil
		},
	},
	{
		name:            "modal",
		interactionType: discordgo.InteractionModalSubmit,
		data:            discordgo.ModalSubmitInteractionData{CustomID: "modal_1"},
		resolve: func(ctx context.Context, u *InteractionsUseCase, ic *discordgo.InteractionCreate) (models.InteractionEnvelope, error) {
			resolved, err := u.ResolveModal(ctx, ic)
			if err != nil {
				return models.InteractionEnvelope{}, err
			}
			return resolved.InteractionEnvelope, nil
		},
	},
}

func TestResolveGuildInteraction(t *testing.T) {
	for _, kind := range interactionKinds {
		t.Run(kind.name, func(t *testing.T) {
			fixture := setupInteractionsTest()
			guild := &models.Guild{GuildID: testGuildID, Config: models.DefaultGuildConfig()}
			fixture.guildsService.On("GetOrCreateGuild", fixture.ctx, testGuildID).Return(guild, nil)

			member := testMember()
			ic := newInteraction(kind.interactionType, kind.data, testGuildID, member, nil)

			envelope, err := kind.resolve(fixture.ctx, fixture.useCase, ic)
			require.NoError(t, err)

			assert.Equal(t, testInteractionID, envelope.InteractionID)
			assert.Equal(t, testApplicationID, envelope.ApplicationID)
			assert.Equal(t, testToken, envelope.Token)
			assert.Equal(t, testChannelID, envelope.ChannelID)
			assert.Equal(t, discordgo.EnglishUS, envelope.Locale)

			// The invoking user comes from the member on the guild path
			assert.Equal(t, member.User, envelope.User)

			require.True(t, envelope.Guild.IsPresent())
			guildContext := envelope.Guild.MustGet()
			assert.Equal(t, testGuildID, guildContext.GuildID)
			assert.Equal(t, guild, guildContext.Guild)
			assert.Equal(t, member, guildContext.Member)

			// The config accessor is hit exactly once per resolution
			fixture.guildsService.AssertNumberOfCalls(t, "GetOrCreateGuild", 1)
		})
	}
}

func TestResolvePrivateInteraction(t *testing.T) {
	for _, kind := range interactionKinds {
		t.Run(kind.name, func(t *testing.T) {
			fixture := setupInteractionsTest()
			user := &discordgo.User{ID: testUserID, Username: "someone"}
			ic := newInteraction(kind.interactionType, kind.data, "", nil, user)

			envelope, err := kind.resolve(fixture.ctx, fixture.useCase, ic)
			require.NoError(t, err)

			assert.Equal(t, user, envelope.User)
			assert.False(t, envelope.Guild.IsPresent())

			// Private resolutions never touch the guild config accessor
			fixture.guildsService.AssertNotCalled(t, "GetOrCreateGuild")
		})
	}
}

func TestResolveGuildInteractionMissingMember(t *testing.T) {
	for _, kind := range interactionKinds {
		t.Run(kind.name, func(t *testing.T) {
			fixture := setupInteractionsTest()
			ic := newInteraction(kind.interactionType, kind.data, testGuildID, nil, nil)

			_, err := kind.resolve(fixture.ctx, fixture.useCase, ic)
			require.Error(t, err)
			assert.True(t, core.IsMissingFieldError(err))
			assert.EqualError(t, err, "missing member data")
			fixture.guildsService.AssertNotCalled(t, "GetOrCreateGuild")
		})
	}
}

func TestResolveGuildInteractionMemberWithoutUser(t *testing.T) {
	for _, kind := range interactionKinds {
		t.Run(kind.name, func(t *testing.T) {
			fixture := setupInteractionsTest()
			member := &discordgo.Member{Nick: "mod"} // no embedded user
			ic := newInteraction(kind.interactionType, kind.data, testGuildID, member, nil)

			_, err := kind.resolve(fixture.ctx, fixture.useCase, ic)
			require.Error(t, err)
			assert.True(t, core.IsMissingFieldError(err))
			assert.EqualError(t, err, "missing user data")
			fixture.guildsService.AssertNotCalled(t, "GetOrCreateGuild")
		})
	}
}

func TestResolvePrivateInteractionMissingUser(t *testing.T) {
	for _, kind := range interactionKinds {
		t.Run(kind.name, func(t *testing.T) {
			fixture := setupInteractionsTest()
			ic := newInteraction(kind.interactionType, kind.data, "", nil, nil)

			_, err := kind.resolve(fixture.ctx, fixture.useCase, ic)
			require.Error(t, err)
			assert.True(t, core.IsMissingFieldError(err))
			assert.EqualError(t, err, "missing user data")
		})
	}
}

func TestResolveGuildInteractionDependencyFailure(t *testing.T) {
	for _, kind := range interactionKinds {
		t.Run(kind.name, func(t *testing.T) {
			fixture := setupInteractionsTest()
			fixture.guildsService.On("GetOrCreateGuild", fixture.ctx, testGuildID).
				Return(nil, fmt.Errorf("config store unavailable"))

			ic := newInteraction(kind.interactionType, kind.data, testGuildID, testMember(), nil)

			_, err := kind.resolve(fixture.ctx, fixture.useCase, ic)
			require.Error(t, err)
			assert.True(t, core.IsDependencyError(err))
			assert.False(t, core.IsMissingFieldError(err))
			assert.ErrorContains(t, err, "config store unavailable")
		})
	}
}

func TestResolveAttachesKindSpecificPayload(t *testing.T) {
	t.Run("command data", func(t *testing.T) {
		fixture := setupInteractionsTest()
		data := discordgo.ApplicationCommandInteractionData{ID: "cmd-1", Name: "profile"}
		ic := newInteraction(discordgo.InteractionApplicationCommand, data, "", nil,
			&discordgo.User{ID: testUserID})

		resolved, err := fixture.useCase.ResolveCommand(fixture.ctx, ic)
		require.NoError(t, err)
		assert.Equal(t, "profile", resolved.Data.Name)
	})

	t.Run("component data", func(t *testing.T) {
		fixture := setupInteractionsTest()
		data := discordgo.MessageComponentInteractionData{CustomID: "pc_1"}
		ic := newInteraction(discordgo.InteractionMessageComponent, data, "", nil,
			&discordgo.User{ID: testUserID})

		resolved, err := fixture.useCase.ResolveComponent(fixture.ctx, ic)
		require.NoError(t, err)
		assert.Equal(t, "pc_1", resolved.Data.CustomID)
	})

	t.Run("modal data", func(t *testing.T) {
		fixture := setupInteractionsTest()
		data := discordgo.ModalSubmitInteractionData{CustomID: "modal_1"}
		ic := newInteraction(discordgo.InteractionModalSubmit, data, "", nil,
			&discordgo.User{ID: testUserID})

		resolved, err := fixture.useCase.ResolveModal(fixture.ctx, ic)
		require.NoError(t, err)
		assert.Equal(t, "modal_1", resolved.Data.CustomID)
	})
}
