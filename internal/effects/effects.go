// Package effects holds the pure image transforms applied to avatars.
// Every function here takes bytes or an image in and produces a new image
// out, with no shared state, so transforms are safe to run concurrently on
// the effect worker pool.
package effects

import (
	"bytes"
	"errors"
	"fmt"
	"image"
	"image/color"
	"image/draw"
	"image/png"

	_ "image/gif"
	_ "image/jpeg"
)

// Apply decodes raw image bytes, runs fn over the decoded image and
// re-encodes the result as PNG.
func Apply(raw []byte, fn func(image.Image) image.Image) ([]byte, error) {
	if len(raw) == 0 {
		return nil, errors.New("empty image data")
	}
	img, _, err := image.Decode(bytes.NewReader(raw))
	if err != nil {
		return nil, fmt.Errorf("decode image: %w", err)
	}

	out := fn(img)

	var buf bytes.Buffer
	if err := png.Encode(&buf, out); err != nil {
		return nil, fmt.Errorf("encode png: %w", err)
	}
	return buf.Bytes(), nil
}

// Decode decodes raw image bytes (png, jpeg or gif).
func Decode(raw []byte) (image.Image, error) {
	img, _, err := image.Decode(bytes.NewReader(raw))
	if err != nil {
		return nil, fmt.Errorf("decode image: %w", err)
	}
	return img, nil
}

// EightBit pixelates the image into ~32 blocks per side and crushes the
// palette down to two bits per channel for the retro look.
func EightBit(img image.Image) image.Image {
	b := img.Bounds()
	out := image.NewRGBA(b)

	step := b.Dx() / 32
	if step < 1 {
		step = 1
	}

	for y := b.Min.Y; y < b.Max.Y; y += step {
		for x := b.Min.X; x < b.Max.X; x += step {
			c := posterize(img.At(x, y))
			block := image.Rect(x, y, minInt(x+step, b.Max.X), minInt(y+step, b.Max.Y))
			draw.Draw(out, block, &image.Uniform{C: c}, image.Point{}, draw.Src)
		}
	}
	return out
}

// Pridify frames the image with a striped flag border of the given total
// thickness in pixels. Unknown flags fall back to the rainbow palette.
func Pridify(pixels int, flag string) func(image.Image) image.Image {
	palette, ok := flagPalettes[flag]
	if !ok {
		palette = flagPalettes["LGBT"]
	}
	return func(img image.Image) image.Image {
		b := img.Bounds()
		out := image.NewRGBA(b)
		draw.Draw(out, b, img, b.Min, draw.Src)

		if pixels <= 0 {
			return out
		}
		stripe := pixels / len(palette)
		if stripe < 1 {
			stripe = 1
		}

		for i := 0; i < pixels; i++ {
			if i >= b.Dx()/2 || i >= b.Dy()/2 {
				break
			}
			c := palette[(i/stripe)%len(palette)]
			u := &image.Uniform{C: c}
			x0, y0 := b.Min.X+i, b.Min.Y+i
			x1, y1 := b.Max.X-i, b.Max.Y-i
			draw.Draw(out, image.Rect(x0, y0, x1, y0+1), u, image.Point{}, draw.Src) // top
			draw.Draw(out, image.Rect(x0, y1-1, x1, y1), u, image.Point{}, draw.Src) // bottom
			draw.Draw(out, image.Rect(x0, y0, x0+1, y1), u, image.Point{}, draw.Src) // left
			draw.Draw(out, image.Rect(x1-1, y0, x1, y1), u, image.Point{}, draw.Src) // right
		}
		return out
	}
}

// Easterify washes the image in pastel tones and, when egg is not nil,
// composites it into the bottom-right corner.
func Easterify(egg image.Image) func(image.Image) image.Image {
	return func(img image.Image) image.Image {
		b := img.Bounds()
		out := image.NewRGBA(b)
		for y := b.Min.Y; y < b.Max.Y; y++ {
			for x := b.Min.X; x < b.Max.X; x++ {
				out.Set(x, y, pastel(img.At(x, y)))
			}
		}

		if egg != nil {
			size := minInt(b.Dx(), b.Dy()) / 2
			scaled := scaleNearest(egg, size, size)
			target := image.Rect(b.Max.X-size, b.Max.Y-size, b.Max.X, b.Max.Y)
			draw.Draw(out, target, scaled, scaled.Bounds().Min, draw.Over)
		}
		return out
	}
}

// DecorateEgg renders a 256x256 egg striped with the given colours.
func DecorateEgg(colours []color.Color) image.Image {
	const size = 256
	out := image.NewRGBA(image.Rect(0, 0, size, size))
	if len(colours) == 0 {
		colours = []color.Color{color.RGBA{R: 0x8b, G: 0x5a, B: 0x2b, A: 0xff}} // chocolate
	}

	const rx, ry = 88.0, 118.0
	stripe := size / len(colours)
	if stripe < 1 {
		stripe = 1
	}

	for y := 0; y < size; y++ {
		for x := 0; x < size; x++ {
			dx := (float64(x) - size/2) / rx
			dy := (float64(y) - size/2) / ry
			if dx*dx+dy*dy > 1 {
				continue
			}
			out.Set(x, y, colours[(y/stripe)%len(colours)])
		}
	}
	return out
}

func posterize(c color.Color) color.Color {
	r, g, b, a := c.RGBA()
	return color.RGBA{
		R: uint8(r>>8) & 0xc0,
		G: uint8(g>>8) & 0xc0,
		B: uint8(b>>8) & 0xc0,
		A: uint8(a >> 8),
	}
}

func pastel(c color.Color) color.Color {
	r, g, b, a := c.RGBA()
	lift := func(v uint32) uint8 {
		n := uint32(uint8(v >> 8))
		return uint8(n + (255-n)/2)
	}
	return color.RGBA{R: lift(r), G: lift(g), B: lift(b), A: uint8(a >> 8)}
}

// scaleNearest resizes img to w x h with nearest-neighbour sampling.
func scaleNearest(img image.Image, w, h int) *image.RGBA {
	src := img.Bounds()
	out := image.NewRGBA(image.Rect(0, 0, w, h))
	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			sx := src.Min.X + x*src.Dx()/w
			sy := src.Min.Y + y*src.Dy()/h
			out.Set(x, y, img.At(sx, sy))
		}
	}
	return out
}

func minInt(a, b int) int {
	if a < b {
		return a
	}
	return b
}
