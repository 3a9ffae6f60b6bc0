package discord

import (
	"context"
	"fmt"
	"time"

	"avatar-forge/internal/command"
	"avatar-forge/internal/config"
	"avatar-forge/internal/storage"

	"github.com/bwmarrin/discordgo"
	"github.com/rs/zerolog"
)

// commandTimeout bounds a single command invocation, fetch and effect
// rendering included.
const commandTimeout = 3 * time.Minute

// Bot is the Discord runtime: it owns the gateway session and routes
// interactions into the command registry.
type Bot struct {
	dg      *discordgo.Session
	cfg     *config.Config
	storage *storage.Storage
	log     zerolog.Logger
}

func NewBot(cfg *config.Config, store *storage.Storage, log zerolog.Logger) (*Bot, error) {
	dg, err := discordgo.New("Bot " + cfg.DiscordToken)
	if err != nil {
		return nil, fmt.Errorf("create session: %w", err)
	}
	dg.Identify.Intents = discordgo.IntentsGuilds

	return &Bot{dg: dg, cfg: cfg, storage: store, log: log}, nil
}

// Session exposes the underlying session so the composition root can wire
// collaborators that talk to the Discord REST API.
func (b *Bot) Session() *discordgo.Session {
	return b.dg
}

// Run opens the gateway connection and blocks until ctx is cancelled.
func (b *Bot) Run(ctx context.Context) error {
	b.dg.AddHandler(b.onReady)
	b.dg.AddHandler(b.onInteractionCreate)

	if err := b.dg.Open(); err != nil {
		return fmt.Errorf("open Discord session: %w", err)
	}
	defer b.dg.Close()

	<-ctx.Done()
	b.log.Info().Msg("Shutdown signal received, closing Discord session")
	return nil
}

func (b *Bot) onReady(s *discordgo.Session, r *discordgo.Ready) {
	if b.cfg.GuildID != "" {
		if err := b.registerCommands(b.cfg.GuildID); err != nil {
			b.log.Error().Err(err).Str("guild_id", b.cfg.GuildID).Msg("Failed to register commands")
		}
	} else {
		for _, g := range r.Guilds {
			if err := b.registerCommands(g.ID); err != nil {
				b.log.Error().Err(err).Str("guild_id", g.ID).Msg("Failed to register commands")
			}
		}
	}
	b.log.Info().Str("username", s.State.User.Username).Msg("Discord bot is running")
}

func (b *Bot) onInteractionCreate(s *discordgo.Session, i *discordgo.InteractionCreate) {
	if i.Type != discordgo.InteractionApplicationCommand {
		return
	}

	name := i.ApplicationCommandData().Name
	cmd, ok := command.Get(name)
	if !ok {
		b.log.Warn().Str("command", name).Msg("Unknown command")
		return
	}

	ctx, cancel := context.WithTimeout(context.Background(), commandTimeout)
	defer cancel()

	sctx := &command.SlashContext{
		Ctx:     ctx,
		Session: s,
		Event:   i,
		Storage: b.storage,
		Replier: command.NewReplier(s, i),
	}
	if err := cmd.Run(sctx); err != nil {
		b.log.Error().Err(err).Str("command", name).Msg("Command failed")
	}
}
