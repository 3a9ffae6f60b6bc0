package command

import (
	"time"

	"avatar-forge/internal/storage"

	"github.com/bwmarrin/discordgo"
	"github.com/rs/zerolog"
)

type Middleware func(Command) Command

type WrappedCommand struct {
	Command
	wrap func(ctx interface{}) error
}

func (w *WrappedCommand) Run(ctx interface{}) error {
	if w.wrap != nil {
		return w.wrap(ctx)
	}
	return w.Command.Run(ctx)
}

func (w *WrappedCommand) SlashDefinition() *discordgo.ApplicationCommand {
	if sp, ok := w.Command.(SlashProvider); ok {
		return sp.SlashDefinition()
	}
	return nil
}

func ApplyMiddlewares(cmd Command, mws ...Middleware) Command {
	for _, mw := range mws {
		cmd = mw(cmd)
	}
	return cmd
}

// rootCommand unwraps middleware layers down to the underlying command.
func rootCommand(c Command) Command {
	for {
		w, ok := c.(*WrappedCommand)
		if !ok {
			return c
		}
		c = w.Command
	}
}

// WithGuildOnly rejects invocations from outside a guild.
func WithGuildOnly() Middleware {
	return func(c Command) Command {
		return &WrappedCommand{Command: c, wrap: func(ctx interface{}) error {
			if slash, ok := ctx.(*SlashContext); ok && slash.Event.GuildID == "" {
				return slash.Replier.ReplyEphemeral("This command only works inside a server.")
			}
			return c.Run(ctx)
		}}
	}
}

// WithCommandLogger records every invocation in the guild's command history.
func WithCommandLogger(log zerolog.Logger) Middleware {
	return func(c Command) Command {
		return &WrappedCommand{Command: c, wrap: func(ctx interface{}) error {
			err := c.Run(ctx)

			slash, ok := ctx.(*SlashContext)
			if !ok || slash.Storage == nil || slash.Event.GuildID == "" {
				return err
			}

			user := invokerUser(slash.Event)
			rec := storage.CommandHistoryRecord{
				ChannelID: slash.Event.ChannelID,
				UserID:    user.ID,
				Username:  user.Username,
				Command:   c.Name(),
				Param:     subcommandName(slash.Event),
				Datetime:  time.Now(),
			}
			if logErr := slash.Storage.AppendCommandHistory(slash.Event.GuildID, rec); logErr != nil {
				log.Warn().Err(logErr).Str("command", c.Name()).Msg("Failed to log command")
			}
			return err
		}}
	}
}

func subcommandName(e *discordgo.InteractionCreate) string {
	data, ok := e.Interaction.Data.(discordgo.ApplicationCommandInteractionData)
	if !ok || len(data.Options) == 0 {
		return ""
	}
	if data.Options[0].Type == discordgo.ApplicationCommandOptionSubCommand {
		return data.Options[0].Name
	}
	return ""
}
