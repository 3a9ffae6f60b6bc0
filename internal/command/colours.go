package command

import (
	"image/color"
	"strconv"
	"strings"
)

var colourNames = map[string]color.RGBA{
	"black":     {0x00, 0x00, 0x00, 0xff},
	"blue":      {0x00, 0x00, 0xff, 0xff},
	"brown":     {0x8b, 0x45, 0x13, 0xff},
	"cyan":      {0x00, 0xff, 0xff, 0xff},
	"gold":      {0xff, 0xd7, 0x00, 0xff},
	"green":     {0x00, 0x80, 0x00, 0xff},
	"grey":      {0x80, 0x80, 0x80, 0xff},
	"gray":      {0x80, 0x80, 0x80, 0xff},
	"lavender":  {0xe6, 0xe6, 0xfa, 0xff},
	"lime":      {0x00, 0xff, 0x00, 0xff},
	"magenta":   {0xff, 0x00, 0xff, 0xff},
	"mint":      {0x98, 0xfb, 0x98, 0xff},
	"orange":    {0xff, 0xa5, 0x00, 0xff},
	"peach":     {0xff, 0xda, 0xb9, 0xff},
	"pink":      {0xff, 0xc0, 0xcb, 0xff},
	"purple":    {0x80, 0x00, 0x80, 0xff},
	"red":       {0xff, 0x00, 0x00, 0xff},
	"teal":      {0x00, 0x80, 0x80, 0xff},
	"turquoise": {0x40, 0xe0, 0xd0, 0xff},
	"violet":    {0xee, 0x82, 0xee, 0xff},
	"white":     {0xff, 0xff, 0xff, 0xff},
	"yellow":    {0xff, 0xff, 0x00, 0xff},
}

// parseColour accepts a known colour name or a #rgb/#rrggbb hex value.
func parseColour(s string) (color.Color, bool) {
	if c, ok := colourNames[strings.ToLower(s)]; ok {
		return c, true
	}

	hex := strings.TrimPrefix(s, "#")
	if len(hex) == 3 {
		hex = string([]byte{hex[0], hex[0], hex[1], hex[1], hex[2], hex[2]})
	}
	if len(hex) != 6 {
		return nil, false
	}
	v, err := strconv.ParseUint(hex, 16, 32)
	if err != nil {
		return nil, false
	}
	return color.RGBA{
		R: uint8(v >> 16),
		G: uint8(v >> 8),
		B: uint8(v),
		A: 0xff,
	}, true
}
