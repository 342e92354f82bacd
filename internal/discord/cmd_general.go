package discord

import (
	"fmt"

	"github.com/bwmarrin/discordgo"
)

// BotInfo describes the running bot instance for /general about.
type BotInfo struct {
	Version     string
	CallbackURI string
}

// Official reports whether this instance is the one run by the maintainers,
// recognised by its OAuth callback.
func (b BotInfo) Official() bool {
	return b.CallbackURI == OfficialCallbackURI
}

// GeneralCommand returns the /general command group and its handler
func GeneralCommand() (*discordgo.ApplicationCommand, CommandHandler) {
	cmd := &discordgo.ApplicationCommand{
		Name:        CommandGeneral,
		Description: "General commands for the bot",
		Options: []*discordgo.ApplicationCommandOption{
			{
				Type:        discordgo.ApplicationCommandOptionSubCommand,
				Name:        SubcommandAbout,
				Description: "Get information about the bot",
			},
		},
	}

	handler := func(s *discordgo.Session, i *discordgo.InteractionCreate, svc *Services) {
		sub, _ := getSubcommand(i)
		if sub != SubcommandAbout {
			return
		}
		if err := s.InteractionRespond(i.Interaction, &discordgo.InteractionResponse{
			Type: discordgo.InteractionResponseChannelMessageWithSource,
			Data: &discordgo.InteractionResponseData{
				Embeds: []*discordgo.MessageEmbed{aboutEmbed(svc.Info)},
			},
		}); err != nil {
			respondError(s, i, MsgGenericError)
		}
	}

	return cmd, handler
}

func aboutEmbed(info BotInfo) *discordgo.MessageEmbed {
	instance := "community"
	if info.Official() {
		instance = "official"
	}
	return &discordgo.MessageEmbed{
		Title:       fmt.Sprintf("osu!lounge bot %s (%s instance)", info.Version, instance),
		Description: fmt.Sprintf("A Discord bot for osu!lounge. This is a %s instance.\n**GitHub**: %s", instance, ProjectRepository),
		Color:       ColorOsuPink,
		Footer:      &discordgo.MessageEmbedFooter{Text: FooterOsuLounge},
	}
}
