package handlers

import (
	"context"
	"fmt"
	"log"

	"github.com/bwmarrin/discordgo"

	"sentrybot/core"
	"sentrybot/models"
	"sentrybot/services"
	"sentrybot/usecases/interactions"
)

type DiscordEventsHandler struct {
	discordSDKClient         *discordgo.Session
	interactionsUseCase      *interactions.InteractionsUseCase
	pendingComponentsService services.PendingComponentsService
}

func NewDiscordEventsHandler(
	botToken string,
	interactionsUseCase *interactions.InteractionsUseCase,
	pendingComponentsService services.PendingComponentsService,
) (*DiscordEventsHandler, error) {
	// Create a new Discord session using the provided bot token
	session, err := discordgo.New("Bot " + botToken)
	if err != nil {
		return nil, fmt.Errorf("failed to create Discord session: %w", err)
	}

	handler := &DiscordEventsHandler{
		discordSDKClient:         session,
		interactionsUseCase:      interactionsUseCase,
		pendingComponentsService: pendingComponentsService,
	}

	// Register event handlers
	session.AddHandler(handler.handleInteractionCreateEvent)

	// Interactions arrive over the gateway without privileged intents
	session.Identify.Intents = discordgo.IntentsGuilds

	return handler, nil
}

// StartBot opens the Discord connection and starts listening for events
func (h *DiscordEventsHandler) StartBot() error {
	err := h.discordSDKClient.Open()
	if err != nil {
		return fmt.Errorf("failed to open Discord session: %w", err)
	}

	log.Printf("🤖 Discord bot is now running and listening for interactions")
	return nil
}

// StopBot gracefully closes the Discord connection
func (h *DiscordEventsHandler) StopBot() {
	h.discordSDKClient.Close()
}

// handleInteractionCreateEvent resolves each inbound interaction into a
// typed context and routes it by kind. Each event is processed on its own
// goroutine by discordgo - there is no ordering guarantee between events.
func (h *DiscordEventsHandler) handleInteractionCreateEvent(
	s *discordgo.Session,
	ic *discordgo.InteractionCreate,
) {
	defer func() {
		if rec := recover(); rec != nil {
			log.Printf("❌ Panic while handling interaction %s: %v", ic.ID, rec)
		}
	}()

	ctx := context.Background()

	switch ic.Type {
	case discordgo.InteractionApplicationCommand:
		commandContext, err := h.interactionsUseCase.ResolveCommand(ctx, ic)
		if err != nil {
			log.Printf("❌ Failed to resolve command interaction %s: %v", ic.ID, err)
			return
		}
		log.Printf("📨 Resolved command /%s from user %s (guild present: %v)",
			commandContext.Data.Name, commandContext.User.ID, commandContext.Guild.IsPresent())
		h.handleCommandInvocation(ctx, s, ic, commandContext)

	case discordgo.InteractionMessageComponent:
		componentContext, err := h.interactionsUseCase.ResolveComponent(ctx, ic)
		if err != nil {
			log.Printf("❌ Failed to resolve component interaction %s: %v", ic.ID, err)
			return
		}
		h.handleComponentActivation(ctx, s, ic, componentContext)

	case discordgo.InteractionModalSubmit:
		modalContext, err := h.interactionsUseCase.ResolveModal(ctx, ic)
		if err != nil {
			log.Printf("❌ Failed to resolve modal interaction %s: %v", ic.ID, err)
			return
		}
		log.Printf("📨 Resolved modal %s from user %s",
			modalContext.Data.CustomID, modalContext.User.ID)

	default:
		log.Printf("🔍 Ignoring interaction %s with unsupported type %d", ic.ID, ic.Type)
	}
}

// handleCommandInvocation answers a resolved command with an ephemeral
// response plus a "post in chat" button. The button is backed by a pending
// component record so that a later activation can resume the flow - if the
// record expires first, the button simply reports itself as expired.
func (h *DiscordEventsHandler) handleCommandInvocation(
	ctx context.Context,
	s *discordgo.Session,
	ic *discordgo.InteractionCreate,
	commandContext *models.CommandContext,
) {
	authorID, err := core.ParseSnowflake(commandContext.User.ID)
	if err != nil {
		log.Printf("❌ Failed to parse author ID for command /%s: %v", commandContext.Data.Name, err)
		return
	}

	response := &discordgo.InteractionResponseData{
		Content: fmt.Sprintf("Handled /%s for %s.", commandContext.Data.Name, commandContext.User.Username),
	}

	component := &models.PostInChatButton{
		ID:       core.NewID("pc"),
		Response: response,
		AuthorID: authorID,
	}
	if err := h.pendingComponentsService.PutPendingComponent(ctx, component); err != nil {
		log.Printf("❌ Failed to store pending component for command /%s: %v", commandContext.Data.Name, err)
		return
	}

	err = s.InteractionRespond(ic.Interaction, &discordgo.InteractionResponse{
		Type: discordgo.InteractionResponseChannelMessageWithSource,
		Data: &discordgo.InteractionResponseData{
			Content: response.Content,
			Flags:   discordgo.MessageFlagsEphemeral,
			Components: []discordgo.MessageComponent{
				discordgo.ActionsRow{
					Components: []discordgo.MessageComponent{
						discordgo.Button{
							Label:    "Post in chat",
							Style:    discordgo.SecondaryButton,
							CustomID: component.ID,
						},
					},
				},
			},
		},
	})
	if err != nil {
		log.Printf("❌ Failed to respond to command /%s: %v", commandContext.Data.Name, err)
	}
}

// handleComponentActivation consumes the pending component record behind an
// activated component, dispatching on its variant
func (h *DiscordEventsHandler) handleComponentActivation(
	ctx context.Context,
	s *discordgo.Session,
	ic *discordgo.InteractionCreate,
	componentContext *models.ComponentContext,
) {
	componentID := componentContext.Data.CustomID

	maybeComponent, err := h.pendingComponentsService.GetPendingComponent(ctx, componentID)
	if err != nil {
		log.Printf("❌ Failed to load pending component %s: %v", componentID, err)
		return
	}
	if !maybeComponent.IsPresent() {
		log.Printf("🔍 No pending component for %s - it expired or was never stored", componentID)
		h.respondEphemeral(s, ic, "This component has expired.")
		return
	}

	switch component := maybeComponent.MustGet().(type) {
	case *models.PostInChatButton:
		// Only the original author may re-post the response into the channel
		if componentContext.User.ID != component.AuthorID.String() {
			h.respondEphemeral(s, ic, "Only the author of the command can interact with this component.")
			return
		}

		err := s.InteractionRespond(ic.Interaction, &discordgo.InteractionResponse{
			Type: discordgo.InteractionResponseChannelMessageWithSource,
			Data: component.Response,
		})
		if err != nil {
			log.Printf("❌ Failed to post response in chat for component %s: %v", componentID, err)
			return
		}

		// Reclaim the key early now that the record is consumed
		if err := h.pendingComponentsService.DeletePendingComponent(ctx, componentID); err != nil {
			log.Printf("❌ Failed to delete consumed pending component %s: %v", componentID, err)
		}
		log.Printf("✅ Posted pending response in chat for component %s", componentID)

	case *models.PendingSanction:
		// Sanction execution belongs to the moderation layer - acknowledge
		// the confirmation and hand the record over
		log.Printf("⚖️ Confirmed pending %s sanction against user %s (component %s)",
			component.Kind, component.User.ID, componentID)
		h.respondEphemeral(s, ic, fmt.Sprintf("Sanction %s confirmed.", component.Kind))

		if err := h.pendingComponentsService.DeletePendingComponent(ctx, componentID); err != nil {
			log.Printf("❌ Failed to delete consumed pending component %s: %v", componentID, err)
		}
	}
}

func (h *DiscordEventsHandler) respondEphemeral(
	s *discordgo.Session,
	ic *discordgo.InteractionCreate,
	message string,
) {
	err := s.InteractionRespond(ic.Interaction, &discordgo.InteractionResponse{
		Type: discordgo.InteractionResponseChannelMessageWithSource,
		Data: &discordgo.InteractionResponseData{
			Content: message,
			Flags:   discordgo.MessageFlagsEphemeral,
		},
	})
	if err != nil {
		log.Printf("❌ Failed to send ephemeral response for interaction %s: %v", ic.ID, err)
	}
}
