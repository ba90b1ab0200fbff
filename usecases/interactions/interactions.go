// Package interactions resolves raw Discord interactions into typed
// contexts. The three interaction kinds (slash command, message component,
// modal submission) share one envelope resolution algorithm - they differ
// only in which payload is attached to the result.
package interactions

import (
	"context"
	"fmt"
	"log"

	"github.com/bwmarrin/discordgo"
	"github.com/samber/mo"

	"sentrybot/core"
	"sentrybot/models"
	"sentrybot/services"
)

// InteractionsUseCase resolves inbound interactions against the guild
// configuration store. It holds no mutable state - concurrent resolutions
// are independent.
type InteractionsUseCase struct {
	guildsService services.GuildsService
}

func NewInteractionsUseCase(guildsService services.GuildsService) *InteractionsUseCase {
	return &InteractionsUseCase{guildsService: guildsService}
}

// ResolveCommand builds the context of a slash command invocation
func (u *InteractionsUseCase) ResolveCommand(
	ctx context.Context,
	ic *discordgo.InteractionCreate,
) (*models.CommandContext, error) {
	envelope, err := u.resolveEnvelope(ctx, ic)
	if err != nil {
		return nil, err
	}

	return &models.CommandContext{
		InteractionEnvelope: envelope,
		Data:                ic.ApplicationCommandData(),
	}, nil
}

// ResolveComponent builds the context of a message component activation
func (u *InteractionsUseCase) ResolveComponent(
	ctx context.Context,
	ic *discordgo.InteractionCreate,
) (*models.ComponentContext, error) {
	envelope, err := u.resolveEnvelope(ctx, ic)
	if err != nil {
		return nil, err
	}

	return &models.ComponentContext{
		InteractionEnvelope: envelope,
		Data:                ic.MessageComponentData(),
	}, nil
}

// ResolveModal builds the context of a modal submission
func (u *InteractionsUseCase) ResolveModal(
	ctx context.Context,
	ic *discordgo.InteractionCreate,
) (*models.ModalContext, error) {
	envelope, err := u.resolveEnvelope(ctx, ic)
	if err != nil {
		return nil, err
	}

	return &models.ModalContext{
		InteractionEnvelope: envelope,
		Data:                ic.ModalSubmitData(),
	}, nil
}

// resolveEnvelope performs the guild-vs-private branch shared by all three
// interaction kinds. Any divergence between the kinds here would be a bug -
// the rule set is deliberately identical.
func (u *InteractionsUseCase) resolveEnvelope(
	ctx context.Context,
	ic *discordgo.InteractionCreate,
) (models.InteractionEnvelope, error) {
	if ic.GuildID != "" {
		return u.resolveGuildEnvelope(ctx, ic)
	}
	return resolvePrivateEnvelope(ic)
}

// resolveGuildEnvelope builds the envelope of an interaction triggered in a
// guild. The guild configuration record is fetched (or lazily created)
// exactly once per resolution.
func (u *InteractionsUseCase) resolveGuildEnvelope(
	ctx context.Context,
	ic *discordgo.InteractionCreate,
) (models.InteractionEnvelope, error) {
	member := ic.Member
	if member == nil {
		return models.InteractionEnvelope{}, core.NewMissingFieldError("member")
	}
	if member.User == nil {
		return models.InteractionEnvelope{}, core.NewMissingFieldError("user")
	}

	guild, err := u.guildsService.GetOrCreateGuild(ctx, ic.GuildID)
	if err != nil {
		log.Printf("❌ Failed to get or create guild %s: %v", ic.GuildID, err)
		return models.InteractionEnvelope{}, core.NewDependencyError(
			fmt.Errorf("failed to get or create guild %s: %w", ic.GuildID, err),
		)
	}

	return models.InteractionEnvelope{
		InteractionID: ic.ID,
		ApplicationID: ic.AppID,
		Token:         ic.Token,
		ChannelID:     ic.ChannelID,
		Guild: mo.Some(&models.GuildContext{
			GuildID: ic.GuildID,
			Guild:   guild,
			Member:  member,
		}),
		User:   member.User,
		Locale: ic.Locale,
	}, nil
}

// resolvePrivateEnvelope builds the envelope of an interaction triggered in
// private messages. No guild lookup happens on this path.
func resolvePrivateEnvelope(ic *discordgo.InteractionCreate) (models.InteractionEnvelope, error) {
	if ic.User == nil {
		return models.InteractionEnvelope{}, core.NewMissingFieldError("user")
	}

	return models.InteractionEnvelope{
		InteractionID: ic.ID,
		ApplicationID: ic.AppID,
		Token:         ic.Token,
		ChannelID:     ic.ChannelID,
		Guild:         mo.None[*models.GuildContext](),
		User:          ic.User,
		Locale:        ic.Locale,
	}, nil
}
