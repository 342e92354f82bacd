package discord

import (
	"errors"
	"log/slog"

	"github.com/bwmarrin/discordgo"

	"github.com/br0k3x/osul-bot/internal/domain"
)

// deferResponse acknowledges an interaction with a deferred message.
// Returns false if deferral failed and the handler should stop.
func deferResponse(s *discordgo.Session, i *discordgo.InteractionCreate, ephemeral bool) bool {
	var data *discordgo.InteractionResponseData
	if ephemeral {
		data = &discordgo.InteractionResponseData{Flags: discordgo.MessageFlagsEphemeral}
	}
	if err := s.InteractionRespond(i.Interaction, &discordgo.InteractionResponse{
		Type: discordgo.InteractionResponseDeferredChannelMessageWithSource,
		Data: data,
	}); err != nil {
		slog.Error("Failed to send deferred response", LogKeyError, err)
		return false
	}
	return true
}

// getInteractionUser extracts the user from an interaction.
// Handles both guild (i.Member.User) and DM (i.User) contexts.
func getInteractionUser(i *discordgo.InteractionCreate) *discordgo.User {
	if i.Member != nil && i.Member.User != nil {
		return i.Member.User
	}
	return i.User
}

// getSubcommand returns the invoked subcommand of a command group and its options.
func getSubcommand(i *discordgo.InteractionCreate) (string, []*discordgo.ApplicationCommandInteractionDataOption) {
	options := i.ApplicationCommandData().Options
	if len(options) == 0 || options[0].Type != discordgo.ApplicationCommandOptionSubCommand {
		return "", nil
	}
	return options[0].Name, options[0].Options
}

// stringOption returns the named string option, or "" when absent.
func stringOption(options []*discordgo.ApplicationCommandInteractionDataOption, name string) string {
	for _, opt := range options {
		if opt.Name == name {
			return opt.StringValue()
		}
	}
	return ""
}

// boolOption returns the named boolean option, or false when absent.
func boolOption(options []*discordgo.ApplicationCommandInteractionDataOption, name string) bool {
	for _, opt := range options {
		if opt.Name == name {
			return opt.BoolValue()
		}
	}
	return false
}

// respondError replaces the deferred response with a plain message.
func respondError(s *discordgo.Session, i *discordgo.InteractionCreate, message string) {
	if _, err := s.InteractionResponseEdit(i.Interaction, &discordgo.WebhookEdit{
		Content: &message,
	}); err != nil {
		slog.Error("Failed to edit interaction response", LogKeyError, err)
	}
}

// sendEmbed replaces the deferred response with an embed.
func sendEmbed(s *discordgo.Session, i *discordgo.InteractionCreate, embed *discordgo.MessageEmbed) {
	sendEmbeds(s, i, embed)
}

// sendEmbeds replaces the deferred response with several embeds.
func sendEmbeds(s *discordgo.Session, i *discordgo.InteractionCreate, embeds ...*discordgo.MessageEmbed) {
	if _, err := s.InteractionResponseEdit(i.Interaction, &discordgo.WebhookEdit{
		Embeds: &embeds,
	}); err != nil {
		slog.Error("Failed to send response", LogKeyError, err)
	}
}

// friendlyError maps service errors to messages a user can act on.
func friendlyError(err error) string {
	switch {
	case errors.Is(err, ErrNotLinked):
		return MsgNotLinked
	case errors.Is(err, domain.ErrNotFound):
		return MsgUserNotFound
	case errors.Is(err, domain.ErrInvalidRequest):
		return MsgInvalidMode
	case errors.Is(err, domain.ErrStoreUnavailable):
		return MsgStoreDown
	case errors.Is(err, domain.ErrUpstreamOAuth):
		return MsgProfileExpired
	default:
		return MsgGenericError
	}
}
