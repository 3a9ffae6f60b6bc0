package command

import (
	"bytes"
	"fmt"
	"image/color"
	"image/png"
	"strings"

	"avatar-forge/internal/avatar"
	"avatar-forge/internal/effects"

	"github.com/bwmarrin/discordgo"
	"github.com/rs/zerolog"
)

// EggDecorateCommand renders a striped Easter egg. It also runs under the
// delegation bridge: easterify borrows its artifact instead of letting it
// send a reply of its own.
type EggDecorateCommand struct {
	Pool EffectPool
	Log  zerolog.Logger
}

func (c *EggDecorateCommand) Name() string { return "eggdecorate" }
func (c *EggDecorateCommand) Description() string {
	return "Decorate an Easter egg with your chosen colours"
}
func (c *EggDecorateCommand) Aliases() []string { return []string{} }

func (c *EggDecorateCommand) Group() string    { return "avatar" }
func (c *EggDecorateCommand) Category() string { return "🎨 Avatar Fun" }

func (c *EggDecorateCommand) RequireAdmin() bool { return false }
func (c *EggDecorateCommand) RequireDev() bool   { return false }

func (c *EggDecorateCommand) SlashDefinition() *discordgo.ApplicationCommand {
	return &discordgo.ApplicationCommand{
		Name:        c.Name(),
		Description: c.Description(),
		Type:        discordgo.ChatApplicationCommand,
		Options: []*discordgo.ApplicationCommandOption{
			{
				Type:        discordgo.ApplicationCommandOptionString,
				Name:        "colours",
				Description: "Space-separated colour names or #hex values",
				Required:    true,
			},
		},
	}
}

func (c *EggDecorateCommand) Run(ctx interface{}) error {
	slash, ok := ctx.(*SlashContext)
	if !ok {
		return fmt.Errorf("wrong context type")
	}

	if err := slash.Replier.Defer(); err != nil {
		return fmt.Errorf("defer interaction: %w", err)
	}

	args := strings.Fields(stringOption(slash.Event.ApplicationCommandData().Options, "colours"))
	outcome, err := c.RunForArtifact(slash, args)
	if err != nil {
		c.Log.Error().Err(err).Msg("Egg rendering failed")
		return slash.Replier.Reply("❌ Could not process the image. Try again later.")
	}
	if outcome.Failed() {
		return slash.Replier.Reply(outcome.Message)
	}

	embed := &discordgo.MessageEmbed{
		Title:       "Your Decorated Egg!",
		Description: "Hand-painted in your very own colours. Happy Easter :D",
		Color:       EmbedColor,
		Image:       &discordgo.MessageEmbedImage{URL: "attachment://" + outcome.Artifact.Name},
	}
	return slash.Replier.ReplyFile(embed, &discordgo.File{
		Name:        outcome.Artifact.Name,
		ContentType: "image/png",
		Reader:      bytes.NewReader(outcome.Artifact.Data),
	})
}

// RunForArtifact produces the egg as a tagged outcome: either PNG bytes or
// a user-facing failure message, never both.
func (c *EggDecorateCommand) RunForArtifact(slash *SlashContext, args []string) (DelegationOutcome, error) {
	if len(args) == 0 {
		return DelegationOutcome{Message: "You need to give me at least one colour!"}, nil
	}

	colours := make([]color.Color, 0, len(args))
	for _, arg := range args {
		col, ok := parseColour(arg)
		if !ok {
			return DelegationOutcome{Message: fmt.Sprintf("`%s` is not a valid colour!", arg)}, nil
		}
		colours = append(colours, col)
	}

	var out []byte
	err := c.Pool.Do(slash.Context(), func() error {
		var buf bytes.Buffer
		if err := png.Encode(&buf, effects.DecorateEgg(colours)); err != nil {
			return fmt.Errorf("encode egg: %w", err)
		}
		out = buf.Bytes()
		return nil
	})
	if err != nil {
		return DelegationOutcome{}, err
	}

	name := avatar.FileSafeName("decorated_egg", displayNameOf(slash.Event))
	return DelegationOutcome{Artifact: &Artifact{Name: name, Data: out}}, nil
}
