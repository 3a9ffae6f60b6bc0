package command

import (
	"image"
	"strings"

	"avatar-forge/internal/avatar"
	"avatar-forge/internal/effects"

	"github.com/bwmarrin/discordgo"
)

func (c *AvatarCommand) runEasterify(slash *SlashContext, opts []*discordgo.ApplicationCommandInteractionDataOption) error {
	member, ok := c.Resolver.Resolve(slash.Event.GuildID, invokerUser(slash.Event).ID)
	if !ok {
		return slash.Replier.Reply("❌ Could not get member info.")
	}

	// With colours given, a personalised egg comes from the eggdecorate
	// command via the delegation bridge; its failure message is relayed
	// verbatim and aborts this command.
	var egg image.Image
	if colours := stringOption(opts, "colours"); colours != "" {
		outcome, err := Delegate(slash, "eggdecorate", strings.Fields(colours))
		if err != nil {
			c.Log.Error().Err(err).Msg("Egg delegation failed")
			return slash.Replier.Reply("❌ Could not process the image. Try again later.")
		}
		if outcome.Failed() {
			return slash.Replier.Reply(outcome.Message)
		}
		egg, err = effects.Decode(outcome.Artifact.Data)
		if err != nil {
			c.Log.Error().Err(err).Msg("Delegated egg did not decode")
			return slash.Replier.Reply("❌ Could not process the image. Try again later.")
		}
	}

	raw, ok := c.fetchAvatar(slash, member, 256)
	if !ok {
		return slash.Replier.Reply("❌ Could not fetch your avatar. Try again later.")
	}

	fileName := avatar.FileSafeName("easterified_avatar", member.DisplayName)

	embed := &discordgo.MessageEmbed{
		Title:       "Your Lovely Easterified Avatar!",
		Description: "Here is your lovely avatar, all bright and colourful\nwith Easter pastel colours. Enjoy :D",
		Color:       EmbedColor,
		Footer: &discordgo.MessageEmbedFooter{
			Text:    "Made by " + member.DisplayName + ".",
			IconURL: member.AvatarURL,
		},
	}
	return c.renderAndSend(slash, raw, effects.Easterify(egg), fileName, embed)
}
