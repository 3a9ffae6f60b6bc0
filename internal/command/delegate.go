package command

import (
	"fmt"

	"github.com/bwmarrin/discordgo"
)

// Artifact is a binary result produced by a delegated command.
type Artifact struct {
	Name string
	Data []byte
}

// DelegationOutcome is the tagged result of running a command on behalf of
// another: either an Artifact (success) or a Message meant for the user
// (failure). Exactly one of the two is set.
type DelegationOutcome struct {
	Artifact *Artifact
	Message  string
}

func (o DelegationOutcome) Failed() bool { return o.Message != "" }

// ArtifactProvider is implemented by commands that can run under
// delegation, returning their result instead of sending it.
type ArtifactProvider interface {
	RunForArtifact(ctx *SlashContext, args []string) (DelegationOutcome, error)
}

// Delegate runs the named command for its artifact. The caller's replier
// is swapped for a capturing sink for the duration of the call and
// restored on every exit path, so the delegated command can never write
// to the channel directly; anything it tries to send as text is treated
// as its failure message.
func Delegate(ctx *SlashContext, name string, args []string) (DelegationOutcome, error) {
	cmd, ok := Get(name)
	if !ok {
		return DelegationOutcome{}, fmt.Errorf("no such command: %s", name)
	}
	provider, ok := rootCommand(cmd).(ArtifactProvider)
	if !ok {
		return DelegationOutcome{}, fmt.Errorf("command %s cannot run under delegation", name)
	}

	saved := ctx.Replier
	capture := &captureReplier{}
	ctx.Replier = capture
	defer func() { ctx.Replier = saved }()

	outcome, err := provider.RunForArtifact(ctx, args)
	if err != nil {
		return DelegationOutcome{}, err
	}
	if outcome.Message == "" && capture.content != "" {
		outcome.Message = capture.content
	}
	return outcome, nil
}

// captureReplier records the first text a delegated command tries to send
// and swallows everything else.
type captureReplier struct {
	content string
}

func (c *captureReplier) Defer() error { return nil }

func (c *captureReplier) Reply(content string) error {
	if c.content == "" {
		c.content = content
	}
	return nil
}

func (c *captureReplier) ReplyEphemeral(content string) error { return c.Reply(content) }

func (c *captureReplier) ReplyEmbed(*discordgo.MessageEmbed) error { return nil }

func (c *captureReplier) ReplyFile(*discordgo.MessageEmbed, *discordgo.File) error { return nil }
