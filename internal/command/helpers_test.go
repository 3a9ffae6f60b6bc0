package command

import (
	"bytes"
	"context"
	"image"
	"image/color"
	"image/png"
	"testing"

	"avatar-forge/internal/avatar"

	"github.com/bwmarrin/discordgo"
	"github.com/rs/zerolog"
)

// fakeReplier records everything a command tries to send.
type fakeReplier struct {
	deferred   int
	replies    []string
	ephemerals []string
	embeds     []*discordgo.MessageEmbed
	fileEmbeds []*discordgo.MessageEmbed
	files      []*discordgo.File
}

func (r *fakeReplier) Defer() error { r.deferred++; return nil }

func (r *fakeReplier) Reply(content string) error {
	r.replies = append(r.replies, content)
	return nil
}

func (r *fakeReplier) ReplyEphemeral(content string) error {
	r.ephemerals = append(r.ephemerals, content)
	return nil
}

func (r *fakeReplier) ReplyEmbed(embed *discordgo.MessageEmbed) error {
	r.embeds = append(r.embeds, embed)
	return nil
}

func (r *fakeReplier) ReplyFile(embed *discordgo.MessageEmbed, file *discordgo.File) error {
	r.fileEmbeds = append(r.fileEmbeds, embed)
	r.files = append(r.files, file)
	return nil
}

func (r *fakeReplier) calls() int {
	return r.deferred + len(r.replies) + len(r.ephemerals) + len(r.embeds) + len(r.files)
}

// syncPool runs tasks inline, counting how many were submitted.
type syncPool struct {
	tasks int
}

func (p *syncPool) Do(ctx context.Context, fn func() error) error {
	p.tasks++
	return fn()
}

type fakeResolver struct {
	member      *avatar.Member
	found       bool
	lastGuildID string
	lastUserID  string
}

func (r *fakeResolver) Resolve(guildID, userID string) (*avatar.Member, bool) {
	r.lastGuildID = guildID
	r.lastUserID = userID
	if !r.found {
		return nil, false
	}
	return r.member, true
}

type fakeFetcher struct {
	data    []byte
	err     error
	lastURL string
}

func (f *fakeFetcher) Fetch(ctx context.Context, url string) ([]byte, error) {
	f.lastURL = url
	if f.err != nil {
		return nil, f.err
	}
	return f.data, nil
}

func testPNG(t *testing.T) []byte {
	t.Helper()
	img := image.NewRGBA(image.Rect(0, 0, 64, 64))
	for y := 0; y < 64; y++ {
		for x := 0; x < 64; x++ {
			img.Set(x, y, color.RGBA{R: 200, G: 100, B: 50, A: 255})
		}
	}
	var buf bytes.Buffer
	if err := png.Encode(&buf, img); err != nil {
		t.Fatal(err)
	}
	return buf.Bytes()
}

func testMember() *avatar.Member {
	return &avatar.Member{
		ID:          "u1",
		DisplayName: "Tester",
		AvatarURL:   "https://cdn.example/avatars/u1/abc.png",
	}
}

func testCatalog() *avatar.FlagCatalog {
	return avatar.NewFlagCatalog(map[string]string{
		"lgbt":  "LGBT",
		"pride": "LGBT",
		"trans": "Transgender",
	})
}

// avatarEvent builds a synthetic /avatar interaction for the given
// subcommand and its options.
func avatarEvent(sub string, opts ...*discordgo.ApplicationCommandInteractionDataOption) *discordgo.InteractionCreate {
	data := discordgo.ApplicationCommandInteractionData{Name: "avatar"}
	if sub != "" {
		data.Options = []*discordgo.ApplicationCommandInteractionDataOption{
			{
				Type:    discordgo.ApplicationCommandOptionSubCommand,
				Name:    sub,
				Options: opts,
			},
		}
	}
	return &discordgo.InteractionCreate{Interaction: &discordgo.Interaction{
		Type:      discordgo.InteractionApplicationCommand,
		GuildID:   "g1",
		ChannelID: "c1",
		Member: &discordgo.Member{
			User: &discordgo.User{ID: "u1", Username: "tester", GlobalName: "Tester"},
		},
		Data: data,
	}}
}

func strOpt(name, value string) *discordgo.ApplicationCommandInteractionDataOption {
	return &discordgo.ApplicationCommandInteractionDataOption{
		Type:  discordgo.ApplicationCommandOptionString,
		Name:  name,
		Value: value,
	}
}

func intOpt(name string, value int64) *discordgo.ApplicationCommandInteractionDataOption {
	return &discordgo.ApplicationCommandInteractionDataOption{
		Type:  discordgo.ApplicationCommandOptionInteger,
		Name:  name,
		Value: float64(value),
	}
}

func userOpt(name, id string) *discordgo.ApplicationCommandInteractionDataOption {
	return &discordgo.ApplicationCommandInteractionDataOption{
		Type:  discordgo.ApplicationCommandOptionUser,
		Name:  name,
		Value: id,
	}
}

// testAvatarCommand wires an AvatarCommand with happy-path fakes. Individual
// tests override the collaborators they care about.
func testAvatarCommand(t *testing.T) (*AvatarCommand, *syncPool, *fakeResolver, *fakeFetcher) {
	pool := &syncPool{}
	resolver := &fakeResolver{member: testMember(), found: true}
	fetcher := &fakeFetcher{data: testPNG(t)}
	cmd := &AvatarCommand{
		Pool:     pool,
		Resolver: resolver,
		Fetcher:  fetcher,
		Flags:    testCatalog(),
		Log:      zerolog.Nop(),
	}
	return cmd, pool, resolver, fetcher
}

// testCommand is a minimal registrable command for registry and middleware
// tests.
type testCommand struct {
	name    string
	aliases []string
	runs    int
	runErr  error
}

func (c *testCommand) Name() string        { return c.name }
func (c *testCommand) Description() string { return "test" }
func (c *testCommand) Aliases() []string   { return c.aliases }
func (c *testCommand) Group() string       { return "test" }
func (c *testCommand) Category() string    { return "test" }
func (c *testCommand) RequireAdmin() bool  { return false }
func (c *testCommand) RequireDev() bool    { return false }
func (c *testCommand) Run(ctx interface{}) error {
	c.runs++
	return c.runErr
}
