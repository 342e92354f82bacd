package discord

import (
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"github.com/bwmarrin/discordgo"

	"github.com/br0k3x/osul-bot/internal/linking"
)

// Authorizer builds the osu! authorize URL for a caller.
type Authorizer interface {
	AuthCodeURL(state string) string
}

// Services are the collaborators available to command handlers
type Services struct {
	Links    linking.Service
	Profiles *ProfileService
	Auth     Authorizer
	Info     BotInfo
}

// Bot represents the Discord bot
type Bot struct {
	Session  *discordgo.Session
	Services *Services
	AppID    string
	GuildID  string
	Registry *CommandRegistry
}

// Config holds the bot configuration
type Config struct {
	Token string
	AppID string
	// GuildID scopes command registration to one guild; empty registers globally.
	GuildID string
}

// NewSession creates a Discord session authenticated as a bot
func NewSession(token string) (*discordgo.Session, error) {
	s, err := discordgo.New("Bot " + token)
	if err != nil {
		return nil, fmt.Errorf("error creating Discord session: %w", err)
	}
	return s, nil
}

// New creates a new Discord bot with the /osu and /general command groups registered
func New(cfg Config, services *Services) (*Bot, error) {
	s, err := NewSession(cfg.Token)
	if err != nil {
		return nil, err
	}
	// Message content is a privileged intent needed to spot beatmap links.
	s.Identify.Intents = discordgo.IntentsGuilds | discordgo.IntentsGuildMessages | discordgo.IntentsMessageContent

	registry := NewCommandRegistry()
	registry.Register(OsuCommand())
	registry.Register(GeneralCommand())

	return &Bot{
		Session:  s,
		Services: services,
		AppID:    cfg.AppID,
		GuildID:  cfg.GuildID,
		Registry: registry,
	}, nil
}

// Start opens the gateway connection
func (b *Bot) Start() error {
	b.Session.AddHandler(b.ready)
	b.Session.AddHandler(b.interactionCreate)
	b.Session.AddHandler(b.messageCreate)

	if err := b.Session.Open(); err != nil {
		return fmt.Errorf("error opening connection: %w", err)
	}

	slog.Info("Discord bot is now running. Press CTRL-C to exit.")
	return nil
}

// Stop closes the gateway connection
func (b *Bot) Stop() {
	if err := b.Session.Close(); err != nil {
		slog.Warn("Error closing Discord session", LogKeyError, err)
	}
}

// Run runs the bot until a signal is received
func (b *Bot) Run() error {
	if err := b.Start(); err != nil {
		return err
	}
	defer b.Stop()

	sc := make(chan os.Signal, 1)
	signal.Notify(sc, syscall.SIGINT, syscall.SIGTERM)
	<-sc

	return nil
}

func (b *Bot) ready(s *discordgo.Session, _ *discordgo.Ready) {
	slog.Info("Bot is ready", "user", s.State.User.Username)
}

func (b *Bot) interactionCreate(s *discordgo.Session, i *discordgo.InteractionCreate) {
	if b.Registry != nil {
		b.Registry.Handle(s, i, b.Services)
	}
}
