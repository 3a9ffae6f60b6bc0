package main

import (
	"context"
	"log"
	"os"
	"os/signal"
	"syscall"

	"avatar-forge/internal/avatar"
	"avatar-forge/internal/command"
	"avatar-forge/internal/config"
	"avatar-forge/internal/discord"
	"avatar-forge/internal/logger"
	"avatar-forge/internal/storage"
	v "avatar-forge/internal/version"
)

func main() {
	log.Printf("[INFO] Starting %v bot...", v.AppName)

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	cfg, err := config.New()
	if err != nil {
		log.Fatal(err)
	}

	logg := logger.New(cfg.LogLevel, cfg.LogFile)

	store, err := storage.New(cfg.StoragePath)
	if err != nil {
		logg.Fatal().Err(err).Msg("Failed to open storage")
	}
	defer store.Close()

	flags, err := avatar.LoadFlagCatalog(cfg.FlagOptionsPath)
	if err != nil {
		logg.Fatal().Err(err).Msg("Failed to load flag options")
	}

	pool := avatar.NewPool(cfg.EffectWorkers, logg)
	defer pool.Close()

	bot, err := discord.NewBot(cfg, store, logg)
	if err != nil {
		logg.Fatal().Err(err).Msg("Failed to create Discord bot")
	}

	resolver := avatar.NewResolver(bot.Session(), logg)
	fetcher := avatar.NewFetcher(logg)

	command.Register(command.ApplyMiddlewares(
		&command.AvatarCommand{Pool: pool, Resolver: resolver, Fetcher: fetcher, Flags: flags, Log: logg},
		command.WithGuildOnly(),
		command.WithCommandLogger(logg),
	))
	command.Register(command.ApplyMiddlewares(
		&command.EggDecorateCommand{Pool: pool, Log: logg},
		command.WithGuildOnly(),
		command.WithCommandLogger(logg),
	))
	command.Register(command.ApplyMiddlewares(
		&command.AvatarLogCommand{},
		command.WithGuildOnly(),
	))

	errCh := make(chan error, 1)
	go func() {
		if err := bot.Run(ctx); err != nil {
			errCh <- err
		}
		close(errCh)
	}()

	sig := make(chan os.Signal, 1)
	signal.Notify(sig, syscall.SIGINT, syscall.SIGTERM)

	select {
	case s := <-sig:
		logg.Info().Str("signal", s.String()).Msg("Received signal, shutting down")
		cancel()
	case err := <-errCh:
		if err != nil {
			logg.Error().Err(err).Msg("Discord bot error")
		}
		cancel()
	case <-ctx.Done():
	}

	logg.Info().Msg("Discord bot exited cleanly")
}
