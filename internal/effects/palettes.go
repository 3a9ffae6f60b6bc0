package effects

import "image/color"

func rgb(r, g, b uint8) color.Color { return color.RGBA{R: r, G: g, B: b, A: 0xff} }

// flagPalettes maps canonical flag names to their stripe colours, top to
// bottom. Keys must cover every value in resources/pride/flag_options.json.
var flagPalettes = map[string][]color.Color{
	"LGBT": {
		rgb(0xe4, 0x03, 0x03), rgb(0xff, 0x8c, 0x00), rgb(0xff, 0xed, 0x00),
		rgb(0x00, 0x80, 0x26), rgb(0x00, 0x4d, 0xff), rgb(0x75, 0x07, 0x87),
	},
	"Agender": {
		rgb(0x00, 0x00, 0x00), rgb(0xb9, 0xb9, 0xb9), rgb(0xff, 0xff, 0xff),
		rgb(0xb8, 0xf4, 0x83), rgb(0xff, 0xff, 0xff), rgb(0xb9, 0xb9, 0xb9),
		rgb(0x00, 0x00, 0x00),
	},
	"Aromantic": {
		rgb(0x3d, 0xa5, 0x42), rgb(0xa7, 0xd3, 0x79), rgb(0xff, 0xff, 0xff),
		rgb(0xa9, 0xa9, 0xa9), rgb(0x00, 0x00, 0x00),
	},
	"Asexual": {
		rgb(0x00, 0x00, 0x00), rgb(0xa3, 0xa3, 0xa3), rgb(0xff, 0xff, 0xff),
		rgb(0x80, 0x00, 0x80),
	},
	"Bisexual": {
		rgb(0xd6, 0x02, 0x70), rgb(0x9b, 0x4f, 0x96), rgb(0x00, 0x38, 0xa8),
	},
	"Genderfluid": {
		rgb(0xff, 0x75, 0xa2), rgb(0xff, 0xff, 0xff), rgb(0xbe, 0x18, 0xd6),
		rgb(0x00, 0x00, 0x00), rgb(0x33, 0x3e, 0xbd),
	},
	"Genderqueer": {
		rgb(0xb5, 0x7e, 0xdc), rgb(0xff, 0xff, 0xff), rgb(0x4a, 0x82, 0x1e),
	},
	"Intersex": {
		rgb(0xff, 0xd8, 0x00), rgb(0x7a, 0x00, 0xac), rgb(0xff, 0xd8, 0x00),
	},
	"Lesbian": {
		rgb(0xd5, 0x2d, 0x00), rgb(0xff, 0x9a, 0x56), rgb(0xff, 0xff, 0xff),
		rgb(0xd3, 0x62, 0xa4), rgb(0xa3, 0x02, 0x62),
	},
	"Non-Binary": {
		rgb(0xfc, 0xf4, 0x34), rgb(0xff, 0xff, 0xff), rgb(0x9c, 0x59, 0xd1),
		rgb(0x2c, 0x2c, 0x2c),
	},
	"Pansexual": {
		rgb(0xff, 0x21, 0x8c), rgb(0xff, 0xd8, 0x00), rgb(0x21, 0xb1, 0xff),
	},
	"Polysexual": {
		rgb(0xf7, 0x14, 0xba), rgb(0x01, 0xd6, 0x6a), rgb(0x15, 0x94, 0xf6),
	},
	"Transgender": {
		rgb(0x5b, 0xce, 0xfa), rgb(0xf5, 0xa9, 0xb8), rgb(0xff, 0xff, 0xff),
		rgb(0xf5, 0xa9, 0xb8), rgb(0x5b, 0xce, 0xfa),
	},
}
