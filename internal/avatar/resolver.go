package avatar

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/bwmarrin/discordgo"
	"github.com/rs/zerolog"
)

// Member is the slice of a guild member this bot cares about. It is built
// fresh for every command invocation and must not be reused across
// requests; a cached avatar reference can 404 against the CDN after the
// user changes their picture.
type Member struct {
	ID          string
	DisplayName string
	AvatarURL   string
}

// SizedAvatarURL returns the avatar URL with a CDN size hint.
func (m *Member) SizedAvatarURL(size int) string {
	if m.AvatarURL == "" {
		return ""
	}
	return m.AvatarURL + "?size=" + strconv.Itoa(size)
}

type memberAPI interface {
	GuildMember(guildID, userID string, options ...discordgo.RequestOption) (*discordgo.Member, error)
}

// Resolver fetches members straight from the Discord REST API, bypassing
// the session state cache on purpose: the cache does not always carry the
// latest avatar reference.
type Resolver struct {
	api memberAPI
	log zerolog.Logger
}

func NewResolver(api memberAPI, log zerolog.Logger) *Resolver {
	return &Resolver{api: api, log: log}
}

// Resolve returns the member, or ok=false when the member cannot be
// fetched for any reason. The caller only sees found/not-found; the logs
// keep the two failure classes apart: a member who left is expected and
// logged at debug, everything else is an error.
func (r *Resolver) Resolve(guildID, userID string) (*Member, bool) {
	dm, err := r.api.GuildMember(guildID, userID)
	if err != nil {
		if isUnknownMember(err) {
			r.log.Debug().Str("user_id", userID).Msg("Member left the guild before we could get their avatar")
			return nil, false
		}
		r.log.Error().Err(err).Str("user_id", userID).Msg("Failed to fetch member from Discord")
		return nil, false
	}

	return &Member{
		ID:          dm.User.ID,
		DisplayName: displayName(dm),
		AvatarURL:   dm.User.AvatarURL(""),
	}, true
}

func isUnknownMember(err error) bool {
	var restErr *discordgo.RESTError
	if !errors.As(err, &restErr) {
		return false
	}
	if restErr.Message != nil && restErr.Message.Code == discordgo.ErrCodeUnknownMember {
		return true
	}
	return restErr.Response != nil && restErr.Response.StatusCode == http.StatusNotFound
}

func displayName(m *discordgo.Member) string {
	if m.Nick != "" {
		return m.Nick
	}
	if m.User.GlobalName != "" {
		return m.User.GlobalName
	}
	return m.User.Username
}
