package command

import (
	"bytes"
	"context"
	"fmt"
	"image"

	"avatar-forge/internal/avatar"
	"avatar-forge/internal/effects"

	"github.com/bwmarrin/discordgo"
	"github.com/rs/zerolog"
)

// EffectPool runs a blocking function on a worker, returning its error to
// the caller. Satisfied by *avatar.Pool; tests use a synchronous stand-in.
type EffectPool interface {
	Do(ctx context.Context, fn func() error) error
}

// MemberResolver fetches a fresh member record, bypassing any cache.
type MemberResolver interface {
	Resolve(guildID, userID string) (*avatar.Member, bool)
}

// ImageFetcher downloads image bytes from a URL.
type ImageFetcher interface {
	Fetch(ctx context.Context, url string) ([]byte, error)
}

// AvatarCommand groups the avatar-effect subcommands. All collaborators
// are injected by the composition root.
type AvatarCommand struct {
	Pool     EffectPool
	Resolver MemberResolver
	Fetcher  ImageFetcher
	Flags    *avatar.FlagCatalog
	Log      zerolog.Logger
}

func (c *AvatarCommand) Name() string        { return "avatar" }
func (c *AvatarCommand) Description() string { return "Apply playful effects to profile pictures" }
func (c *AvatarCommand) Aliases() []string   { return []string{} }

func (c *AvatarCommand) Group() string    { return "avatar" }
func (c *AvatarCommand) Category() string { return "🎨 Avatar Fun" }

func (c *AvatarCommand) RequireAdmin() bool { return false }
func (c *AvatarCommand) RequireDev() bool   { return false }

func (c *AvatarCommand) SlashDefinition() *discordgo.ApplicationCommand {
	return &discordgo.ApplicationCommand{
		Name:        c.Name(),
		Description: c.Description(),
		Type:        discordgo.ChatApplicationCommand,
		Options: []*discordgo.ApplicationCommandOption{
			{
				Type:        discordgo.ApplicationCommandOptionSubCommand,
				Name:        "8bitify",
				Description: "Pixelate your avatar and crush it down to an 8bit palette",
			},
			{
				Type:        discordgo.ApplicationCommandOptionSubCommand,
				Name:        "easterify",
				Description: "Easterify your avatar, with an optional personalised egg",
				Options: []*discordgo.ApplicationCommandOption{
					{
						Type:        discordgo.ApplicationCommandOptionString,
						Name:        "colours",
						Description: "Space-separated egg colours (names or #hex); omit for a chocolate bunny",
					},
				},
			},
			{
				Type:        discordgo.ApplicationCommandOptionSubCommand,
				Name:        "pride",
				Description: "Surround your avatar with a pride flag border",
				Options: []*discordgo.ApplicationCommandOption{
					{
						Type:        discordgo.ApplicationCommandOptionString,
						Name:        "flag",
						Description: "Flag name (defaults to lgbt)",
					},
					{
						Type:        discordgo.ApplicationCommandOptionInteger,
						Name:        "pixels",
						Description: "Border thickness, up to 512 (defaults to 64)",
					},
				},
			},
			{
				Type:        discordgo.ApplicationCommandOptionSubCommand,
				Name:        "pride-image",
				Description: "Surround an image from a URL with a pride flag border",
				Options: []*discordgo.ApplicationCommandOption{
					{
						Type:        discordgo.ApplicationCommandOptionString,
						Name:        "url",
						Description: "Direct link to the image",
						Required:    true,
					},
					{
						Type:        discordgo.ApplicationCommandOptionString,
						Name:        "flag",
						Description: "Flag name (defaults to lgbt)",
					},
					{
						Type:        discordgo.ApplicationCommandOptionInteger,
						Name:        "pixels",
						Description: "Border thickness, up to 512 (defaults to 64)",
					},
				},
			},
			{
				Type:        discordgo.ApplicationCommandOptionSubCommand,
				Name:        "pride-flags",
				Description: "List the flags I can draw",
			},
			{
				Type:        discordgo.ApplicationCommandOptionSubCommand,
				Name:        "spookify",
				Description: "Spookify a user's avatar with a random spooky effect",
				Options: []*discordgo.ApplicationCommandOption{
					{
						Type:        discordgo.ApplicationCommandOptionUser,
						Name:        "user",
						Description: "Whose avatar to spookify (defaults to you)",
					},
				},
			},
		},
	}
}

func (c *AvatarCommand) Run(ctx interface{}) error {
	slash, ok := ctx.(*SlashContext)
	if !ok {
		return fmt.Errorf("wrong context type")
	}

	data := slash.Event.ApplicationCommandData()
	if len(data.Options) == 0 {
		return slash.Replier.ReplyEphemeral("Pick one of the avatar subcommands.")
	}
	sub := data.Options[0]

	// Deferring doubles as the "typing" indicator while we fetch and render.
	if err := slash.Replier.Defer(); err != nil {
		return fmt.Errorf("defer interaction: %w", err)
	}

	switch sub.Name {
	case "8bitify":
		return c.runEightBit(slash)
	case "easterify":
		return c.runEasterify(slash, sub.Options)
	case "pride":
		return c.runPride(slash, sub.Options)
	case "pride-image":
		return c.runPrideImage(slash, sub.Options)
	case "pride-flags":
		return c.runPrideFlags(slash)
	case "spookify":
		return c.runSpookify(slash, sub.Options)
	}
	return fmt.Errorf("unknown subcommand %q", sub.Name)
}

// renderAndSend offloads the effect computation to the worker pool and
// sends the single reply bundling the transformed image. All parameter
// validation must have happened already; faults here surface as a generic
// user message and a detailed log record.
func (c *AvatarCommand) renderAndSend(
	slash *SlashContext,
	raw []byte,
	fn func(image.Image) image.Image,
	fileName string,
	embed *discordgo.MessageEmbed,
) error {
	var out []byte
	err := c.Pool.Do(slash.Context(), func() error {
		var applyErr error
		out, applyErr = effects.Apply(raw, fn)
		return applyErr
	})
	if err != nil {
		c.Log.Error().Err(err).Str("file", fileName).Msg("Effect computation failed")
		return slash.Replier.Reply("❌ Could not process the image. Try again later.")
	}

	embed.Image = &discordgo.MessageEmbedImage{URL: "attachment://" + fileName}
	return slash.Replier.ReplyFile(embed, &discordgo.File{
		Name:        fileName,
		ContentType: "image/png",
		Reader:      bytes.NewReader(out),
	})
}

// fetchAvatar resolves the member's fresh avatar reference and downloads it.
func (c *AvatarCommand) fetchAvatar(slash *SlashContext, m *avatar.Member, size int) ([]byte, bool) {
	raw, err := c.Fetcher.Fetch(slash.Context(), m.SizedAvatarURL(size))
	if err != nil {
		c.Log.Error().Err(err).Str("user_id", m.ID).Msg("Failed to fetch avatar from CDN")
		return nil, false
	}
	return raw, true
}
