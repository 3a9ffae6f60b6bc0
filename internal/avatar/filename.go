// Package avatar holds the building blocks of the avatar-effect commands:
// the attachment filename sanitizer, the effect worker pool, the member
// resolver and the image fetcher.
package avatar

import (
	"strings"
	"unicode"

	"golang.org/x/text/runes"
	"golang.org/x/text/transform"
	"golang.org/x/text/unicode/norm"
)

// asciiFold decomposes runes (NFKD) and drops everything outside 7-bit
// ASCII, so "Zoë" folds to "Zoe" and glyphs with no ASCII decomposition
// vanish instead of erroring.
var asciiFold = transform.Chain(
	norm.NFKD,
	runes.Remove(runes.Predicate(func(r rune) bool { return r > unicode.MaxASCII })),
)

// FileSafeName builds the attachment filename "{effect}_{displayName}.png".
// Spaces become underscores, non-ASCII runes are folded or dropped, and the
// result only ever contains [A-Za-z0-9._-]. A display name with no safe
// runes at all legally collapses to "{effect}_.png".
func FileSafeName(effect, displayName string) string {
	name := effect + "_" + displayName + ".png"
	name = strings.ReplaceAll(name, " ", "_")

	if folded, _, err := transform.String(asciiFold, name); err == nil {
		name = folded
	}

	var b strings.Builder
	b.Grow(len(name))
	for _, r := range name {
		switch {
		case r >= 'a' && r <= 'z', r >= 'A' && r <= 'Z', r >= '0' && r <= '9':
			b.WriteRune(r)
		case r == '.', r == '_', r == '-':
			b.WriteRune(r)
		}
	}
	return b.String()
}
