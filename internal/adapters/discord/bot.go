package discord

import (
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/bwmarrin/discordgo"
	"go.uber.org/zap"

	"voicecms/internal/config"
	"voicecms/internal/ports/input"
)

// Bot is the Discord front-end of the host.
type Bot struct {
	session *discordgo.Session
	config  *config.Config
	handler *Handler
	logger  *zap.SugaredLogger
}

// NewBot creates a Bot serving content already loaded by the host's setup
// phase.
func NewBot(cfg *config.Config, contentUC input.ContentUseCase, logger *zap.SugaredLogger) (*Bot, error) {
	s, err := discordgo.New("Bot " + cfg.Token)
	if err != nil {
		return nil, fmt.Errorf("create discord session: %w", err)
	}

	bot := &Bot{
		session: s,
		config:  cfg,
		handler: NewHandler(contentUC, logger),
		logger:  logger,
	}
	bot.setupHandlers()
	return bot, nil
}

func (b *Bot) setupHandlers() {
	b.session.AddHandler(b.handleInteraction)
}

func (b *Bot) handleInteraction(s *discordgo.Session, i *discordgo.InteractionCreate) {
	switch i.Type {
	case discordgo.InteractionApplicationCommand:
		if i.ApplicationCommandData().Name == commandName {
			b.handler.HandleCommand(s, i)
		}
	case discordgo.InteractionApplicationCommandAutocomplete:
		if i.ApplicationCommandData().Name == commandName {
			b.handler.HandleAutocomplete(s, i)
		}
	}
}

// Start runs the bot until interrupted.
func (b *Bot) Start() error {
	if err := b.session.Open(); err != nil {
		return fmt.Errorf("open discord session: %w", err)
	}
	defer b.session.Close()

	if _, err := b.session.ApplicationCommandCreate(b.session.State.User.ID, b.config.GuildID, cmsCommand); err != nil {
		b.logger.Warnf("discord: failed to register command %s: %v", cmsCommand.Name, err)
	}

	b.logger.Info("discord: bot online, press CTRL+C to exit")
	stop := make(chan os.Signal, 1)
	signal.Notify(stop, syscall.SIGINT, syscall.SIGTERM)
	<-stop

	return nil
}
