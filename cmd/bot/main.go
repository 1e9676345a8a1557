package main

import (
	"context"
	"fmt"
	"os"
	"strings"

	"voicecms/internal/adapters/discord"
	"voicecms/internal/adapters/voicecms"
	"voicecms/internal/application"
	"voicecms/internal/config"
	"voicecms/internal/host"
	"voicecms/internal/infrastructure/cms"
	"voicecms/internal/infrastructure/i18n"
	"voicecms/internal/infrastructure/logging"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}

	logger, err := logging.NewLogger(os.Stdout, os.Stderr, cfg.LogLevel)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
	defer func() { _ = logger.Sync() }()

	policy, err := application.ParseWritePolicy(cfg.WritePolicy)
	if err != nil {
		logger.Fatal(err)
	}

	setup := application.NewSetupService(
		cms.NewClient(cfg.Endpoint, cfg.Timeout, logger),
		i18n.NewInitializer(cfg.DefaultLocale, logger),
		cfg.ProjectID,
		policy,
		logger,
	)

	app := host.New(logger)
	app.Use(voicecms.New(setup, logger))
	if err := app.Setup(context.Background()); err != nil {
		logger.Errorf("setup: %v", err)
	}

	if cfg.Token == "" {
		logger.Infof("no TOKEN set, loaded collections: %s", strings.Join(app.CMS.Names(), ", "))
		return
	}

	bot, err := discord.NewBot(cfg, application.NewContentService(app.CMS, cfg.DefaultLocale), logger)
	if err != nil {
		logger.Fatal(err)
	}
	if err := bot.Start(); err != nil {
		logger.Errorf("bot: %v", err)
		os.Exit(1)
	}
}
