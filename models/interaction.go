package models

import (
	"github.com/bwmarrin/discordgo"
	"github.com/samber/mo"
)

// GuildContext is the additional context attached to interactions that were
// triggered inside a guild.
type GuildContext struct {
	// GuildID is the ID of the guild
	GuildID string
	// Guild is the guild configuration record from the database
	Guild *Guild
	// Member is the guild member that triggered the interaction
	Member *discordgo.Member
}

// Config returns the configuration of the guild
func (g *GuildContext) Config() *GuildConfig {
	return &g.Guild.Config
}

// InteractionEnvelope holds the fields shared by every interaction kind.
// It is immutable once constructed and lives for one event's processing.
type InteractionEnvelope struct {
	// InteractionID is the ID of the interaction
	InteractionID string
	// ApplicationID is the ID of the application the interaction belongs to
	ApplicationID string
	// Token authorizes a later response to the interaction
	Token string
	// ChannelID is the channel the interaction was triggered from
	ChannelID string
	// Guild is present if and only if the interaction was triggered in a guild
	Guild mo.Option[*GuildContext]
	// User is the user that triggered the interaction
	User *discordgo.User
	// Locale is the locale of the invoking user
	Locale discordgo.Locale
}

// CommandContext is the resolved context of a slash command invocation
type CommandContext struct {
	InteractionEnvelope

	// Data is the payload of the invoked command
	Data discordgo.ApplicationCommandInteractionData
}

// ComponentContext is the resolved context of a message component activation
type ComponentContext struct {
	InteractionEnvelope

	// Data is the payload of the activated component
	Data discordgo.MessageComponentInteractionData
}

// ModalContext is the resolved context of a modal submission
type ModalContext struct {
	InteractionEnvelope

	// Data is the payload of the submitted modal
	Data discordgo.ModalSubmitInteractionData
}
