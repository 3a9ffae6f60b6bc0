package effects

import (
	"image"
	"image/color"
	"math/rand"
)

// RandomSpooky picks one of the spooky transforms at random.
func RandomSpooky() func(image.Image) image.Image {
	spooky := []func(image.Image) image.Image{
		Invert,
		Ghostify,
		NightVision,
	}
	return spooky[rand.Intn(len(spooky))]
}

// Invert flips every colour channel.
func Invert(img image.Image) image.Image {
	return mapPixels(img, func(c color.Color) color.Color {
		r, g, b, a := c.RGBA()
		return color.RGBA{
			R: 0xff - uint8(r>>8),
			G: 0xff - uint8(g>>8),
			B: 0xff - uint8(b>>8),
			A: uint8(a >> 8),
		}
	})
}

// Ghostify washes the image out to a pale grey apparition.
func Ghostify(img image.Image) image.Image {
	return mapPixels(img, func(c color.Color) color.Color {
		r, g, b, a := c.RGBA()
		grey := uint8((r/3 + g/3 + b/3) >> 8)
		pale := grey/2 + 128
		return color.RGBA{R: pale, G: pale, B: pale, A: uint8(a >> 8)}
	})
}

// NightVision drops everything but an eerie green channel.
func NightVision(img image.Image) image.Image {
	return mapPixels(img, func(c color.Color) color.Color {
		r, g, b, a := c.RGBA()
		lum := uint8((r/4 + g/2 + b/4) >> 8)
		return color.RGBA{R: lum / 4, G: lum, B: lum / 4, A: uint8(a >> 8)}
	})
}

func mapPixels(img image.Image, fn func(color.Color) color.Color) image.Image {
	b := img.Bounds()
	out := image.NewRGBA(b)
	for y := b.Min.Y; y < b.Max.Y; y++ {
		for x := b.Min.X; x < b.Max.X; x++ {
			out.Set(x, y, fn(img.At(x, y)))
		}
	}
	return out
}
