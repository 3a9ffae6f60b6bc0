package command

import (
	"github.com/bwmarrin/discordgo"
)

const (
	EmbedColor = 0x9b59b6
	softRed    = 0xcd6d6d
)

// Replier is how commands talk back to the invoker. Commands never touch
// the interaction response API directly, so tests can swap in a recording
// stand-in and the delegation bridge can swap in a capturing one.
type Replier interface {
	Defer() error
	Reply(content string) error
	ReplyEphemeral(content string) error
	ReplyEmbed(embed *discordgo.MessageEmbed) error
	ReplyFile(embed *discordgo.MessageEmbed, file *discordgo.File) error
}

// NewReplier wraps a live interaction. After Defer, replies go out as
// followup messages.
func NewReplier(s *discordgo.Session, e *discordgo.InteractionCreate) Replier {
	return &interactionReplier{session: s, event: e}
}

type interactionReplier struct {
	session  *discordgo.Session
	event    *discordgo.InteractionCreate
	deferred bool
}

func (r *interactionReplier) Defer() error {
	err := r.session.InteractionRespond(r.event.Interaction, &discordgo.InteractionResponse{
		Type: discordgo.InteractionResponseDeferredChannelMessageWithSource,
	})
	if err == nil {
		r.deferred = true
	}
	return err
}

func (r *interactionReplier) Reply(content string) error {
	if r.deferred {
		_, err := r.session.FollowupMessageCreate(r.event.Interaction, false, &discordgo.WebhookParams{
			Content: content,
		})
		return err
	}
	return r.session.InteractionRespond(r.event.Interaction, &discordgo.InteractionResponse{
		Type: discordgo.InteractionResponseChannelMessageWithSource,
		Data: &discordgo.InteractionResponseData{Content: content},
	})
}

func (r *interactionReplier) ReplyEphemeral(content string) error {
	if r.deferred {
		_, err := r.session.FollowupMessageCreate(r.event.Interaction, true, &discordgo.WebhookParams{
			Content: content,
			Flags:   discordgo.MessageFlagsEphemeral,
		})
		return err
	}
	return r.session.InteractionRespond(r.event.Interaction, &discordgo.InteractionResponse{
		Type: discordgo.InteractionResponseChannelMessageWithSource,
		Data: &discordgo.InteractionResponseData{
			Content: content,
			Flags:   discordgo.MessageFlagsEphemeral,
		},
	})
}

func (r *interactionReplier) ReplyEmbed(embed *discordgo.MessageEmbed) error {
	if r.deferred {
		_, err := r.session.FollowupMessageCreate(r.event.Interaction, false, &discordgo.WebhookParams{
			Embeds: []*discordgo.MessageEmbed{embed},
		})
		return err
	}
	return r.session.InteractionRespond(r.event.Interaction, &discordgo.InteractionResponse{
		Type: discordgo.InteractionResponseChannelMessageWithSource,
		Data: &discordgo.InteractionResponseData{Embeds: []*discordgo.MessageEmbed{embed}},
	})
}

func (r *interactionReplier) ReplyFile(embed *discordgo.MessageEmbed, file *discordgo.File) error {
	if r.deferred {
		_, err := r.session.FollowupMessageCreate(r.event.Interaction, false, &discordgo.WebhookParams{
			Embeds: []*discordgo.MessageEmbed{embed},
			Files:  []*discordgo.File{file},
		})
		return err
	}
	return r.session.InteractionRespond(r.event.Interaction, &discordgo.InteractionResponse{
		Type: discordgo.InteractionResponseChannelMessageWithSource,
		Data: &discordgo.InteractionResponseData{
			Embeds: []*discordgo.MessageEmbed{embed},
			Files:  []*discordgo.File{file},
		},
	})
}
