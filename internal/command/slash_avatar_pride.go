package command

import (
	"errors"
	"fmt"
	"strings"

	"avatar-forge/internal/avatar"
	"avatar-forge/internal/effects"

	"github.com/bwmarrin/discordgo"
)

// clampPixels forces the border thickness into [0, 512]. Out-of-range
// values are clamped silently, never rejected.
func clampPixels(n int64) int {
	if n < 0 {
		return 0
	}
	if n > 512 {
		return 512
	}
	return int(n)
}

func (c *AvatarCommand) runPride(slash *SlashContext, opts []*discordgo.ApplicationCommandInteractionDataOption) error {
	option := strings.ToLower(stringOption(opts, "flag"))
	if option == "" {
		option = "lgbt"
	}
	pixels := clampPixels(intOption(opts, "pixels", 64))

	flag, ok := c.Flags.Lookup(option)
	if !ok {
		return slash.Replier.Reply("I don't have that flag!")
	}

	member, ok := c.Resolver.Resolve(slash.Event.GuildID, invokerUser(slash.Event).ID)
	if !ok {
		return slash.Replier.Reply("❌ Could not get member info.")
	}

	raw, ok := c.fetchAvatar(slash, member, 1024)
	if !ok {
		return slash.Replier.Reply("❌ Could not fetch your avatar. Try again later.")
	}

	return c.sendPrideImage(slash, raw, pixels, flag, option, member.DisplayName, member.AvatarURL)
}

func (c *AvatarCommand) runPrideImage(slash *SlashContext, opts []*discordgo.ApplicationCommandInteractionDataOption) error {
	option := strings.ToLower(stringOption(opts, "flag"))
	if option == "" {
		option = "lgbt"
	}
	pixels := clampPixels(intOption(opts, "pixels", 64))

	flag, ok := c.Flags.Lookup(option)
	if !ok {
		return slash.Replier.Reply("I don't have that flag!")
	}

	raw, err := c.Fetcher.Fetch(slash.Context(), stringOption(opts, "url"))
	switch {
	case errors.Is(err, avatar.ErrBadURL):
		return slash.Replier.Reply("Invalid URL!")
	case errors.Is(err, avatar.ErrUnreachable):
		return slash.Replier.Reply("Cannot connect to provided URL!")
	case errors.Is(err, avatar.ErrBadStatus):
		return slash.Replier.Reply("Bad response from provided URL!")
	case err != nil:
		c.Log.Error().Err(err).Msg("Failed to fetch user-provided image")
		return slash.Replier.Reply("❌ Could not fetch that image. Try again later.")
	}

	name := displayNameOf(slash.Event)
	return c.sendPrideImage(slash, raw, pixels, flag, option, name, invokerUser(slash.Event).AvatarURL(""))
}

// sendPrideImage renders and sends the bordered image. Shared by the
// avatar and URL forms of the pride subcommand.
func (c *AvatarCommand) sendPrideImage(slash *SlashContext, raw []byte, pixels int, flag, option, displayName, iconURL string) error {
	fileName := avatar.FileSafeName("pride_avatar", displayName)

	embed := &discordgo.MessageEmbed{
		Title:       "Your Lovely Pride Avatar!",
		Description: fmt.Sprintf("Here is your lovely avatar, surrounded by\na beautiful %s flag. Enjoy :D", option),
		Color:       EmbedColor,
		Footer: &discordgo.MessageEmbedFooter{
			Text:    "Made by " + displayName + ".",
			IconURL: iconURL,
		},
	}
	return c.renderAndSend(slash, raw, effects.Pridify(pixels, flag), fileName, embed)
}

func (c *AvatarCommand) runPrideFlags(slash *SlashContext) error {
	names := c.Flags.Names()
	embed := &discordgo.MessageEmbed{
		Title:       "I have the following flags:",
		Description: "• " + strings.Join(names, "\n• "),
		Color:       softRed,
	}
	return slash.Replier.ReplyEmbed(embed)
}
