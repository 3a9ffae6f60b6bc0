package discord

import (
	"time"

	"avatar-forge/internal/command"
)

// registerCommands pushes every registered command's slash definition to
// the given guild.
func (b *Bot) registerCommands(guildID string) error {
	appID := b.dg.State.User.ID

	for _, c := range command.All() {
		sp, ok := c.(command.SlashProvider)
		if !ok {
			continue
		}
		def := sp.SlashDefinition()
		if def == nil {
			continue
		}

		if _, err := b.dg.ApplicationCommandCreate(appID, guildID, def); err != nil {
			b.log.Error().Err(err).Str("command", def.Name).Str("guild_id", guildID).Msg("Failed to register command")
			continue
		}
		b.log.Info().Str("command", def.Name).Str("guild_id", guildID).Msg("Registered command")
		time.Sleep(25 * time.Millisecond) // stay well under Discord's rate limit
	}
	return nil
}
