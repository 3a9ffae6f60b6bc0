package command

import (
	"fmt"
	"strings"

	"github.com/bwmarrin/discordgo"
)

const (
	discordMaxMessageLength = 2000
	codeLeftBlockWrapper    = "```md"
	codeRightBlockWrapper   = "```"
)

var maxContentLength = discordMaxMessageLength - len(codeLeftBlockWrapper) - len(codeRightBlockWrapper)

// AvatarLogCommand shows admins the recent avatar command history.
type AvatarLogCommand struct{}

func (c *AvatarLogCommand) Name() string        { return "avatar-log" }
func (c *AvatarLogCommand) Description() string { return "Review recent avatar command usage" }
func (c *AvatarLogCommand) Aliases() []string   { return []string{} }

func (c *AvatarLogCommand) Group() string    { return "avatar" }
func (c *AvatarLogCommand) Category() string { return "🛠️ Maintenance" }

func (c *AvatarLogCommand) RequireAdmin() bool { return true }
func (c *AvatarLogCommand) RequireDev() bool   { return false }

func (c *AvatarLogCommand) SlashDefinition() *discordgo.ApplicationCommand {
	return &discordgo.ApplicationCommand{
		Name:        c.Name(),
		Description: c.Description(),
		Type:        discordgo.ChatApplicationCommand,
	}
}

func (c *AvatarLogCommand) Run(ctx interface{}) error {
	slash, ok := ctx.(*SlashContext)
	if !ok {
		return fmt.Errorf("wrong context type")
	}

	member := slash.Event.Member
	if member == nil || member.Permissions&discordgo.PermissionAdministrator == 0 {
		return slash.Replier.ReplyEphemeral("You must be an Admin to use this command.")
	}

	records, err := slash.Storage.CommandHistory(slash.Event.GuildID)
	if err != nil {
		return slash.Replier.ReplyEphemeral(fmt.Sprintf("Failed to fetch command logs: %v", err))
	}
	if len(records) == 0 {
		return slash.Replier.ReplyEphemeral("No avatar commands have been used yet.")
	}

	var builder strings.Builder
	builder.WriteString(fmt.Sprintf("%-19s\t%-15s\t%s\n", "# Datetime", "# Username", "# Command"))

	for idx := len(records) - 1; idx >= 0; idx-- {
		r := records[idx]
		cmdName := "/" + r.Command
		if r.Param != "" {
			cmdName += " " + r.Param
		}
		line := fmt.Sprintf(
			"%-19s\t%-15s\t%s\n",
			r.Datetime.Format("2006-01-02 15:04:05"),
			r.Username,
			cmdName,
		)
		if builder.Len()+len(line) > maxContentLength {
			break
		}
		builder.WriteString(line)
	}

	out := codeLeftBlockWrapper + "\n" + builder.String() + codeRightBlockWrapper
	return slash.Replier.ReplyEphemeral(out)
}
