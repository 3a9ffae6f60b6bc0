package command

import (
	"avatar-forge/internal/avatar"
	"avatar-forge/internal/effects"

	"github.com/bwmarrin/discordgo"
)

func (c *AvatarCommand) runSpookify(slash *SlashContext, opts []*discordgo.ApplicationCommandInteractionDataOption) error {
	targetID := userOptionID(opts, "user")
	if targetID == "" {
		targetID = invokerUser(slash.Event).ID
	}

	member, ok := c.Resolver.Resolve(slash.Event.GuildID, targetID)
	if !ok {
		return slash.Replier.Reply("❌ Could not get member info.")
	}

	raw, ok := c.fetchAvatar(slash, member, 1024)
	if !ok {
		return slash.Replier.Reply("❌ Could not fetch that avatar. Try again later.")
	}

	fileName := avatar.FileSafeName("spooky_avatar", member.DisplayName)

	embed := &discordgo.MessageEmbed{
		Title: "Is this you or am I just really paranoid?",
		Color: softRed,
		Author: &discordgo.MessageEmbedAuthor{
			Name:    member.DisplayName,
			IconURL: member.AvatarURL,
		},
		Footer: &discordgo.MessageEmbedFooter{
			Text:    "Made by " + displayNameOf(slash.Event) + ".",
			IconURL: invokerUser(slash.Event).AvatarURL(""),
		},
	}
	return c.renderAndSend(slash, raw, effects.RandomSpooky(), fileName, embed)
}
