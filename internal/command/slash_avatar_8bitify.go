package command

import (
	"avatar-forge/internal/avatar"
	"avatar-forge/internal/effects"

	"github.com/bwmarrin/discordgo"
)

func (c *AvatarCommand) runEightBit(slash *SlashContext) error {
	member, ok := c.Resolver.Resolve(slash.Event.GuildID, invokerUser(slash.Event).ID)
	if !ok {
		return slash.Replier.Reply("❌ Could not get member info.")
	}

	raw, ok := c.fetchAvatar(slash, member, 1024)
	if !ok {
		return slash.Replier.Reply("❌ Could not fetch your avatar. Try again later.")
	}

	fileName := avatar.FileSafeName("eightbit_avatar", member.DisplayName)

	embed := &discordgo.MessageEmbed{
		Title:       "Your 8-bit avatar",
		Description: "Here is your avatar. I think it looks all cool and 'retro'.",
		Color:       EmbedColor,
		Footer: &discordgo.MessageEmbedFooter{
			Text:    "Made by " + member.DisplayName + ".",
			IconURL: member.AvatarURL,
		},
	}
	return c.renderAndSend(slash, raw, effects.EightBit, fileName, embed)
}
