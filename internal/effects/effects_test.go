package effects

import (
	"bytes"
	"image"
	"image/color"
	"image/png"
	"testing"
)

func encodePNG(t *testing.T, img image.Image) []byte {
	t.Helper()
	var buf bytes.Buffer
	if err := png.Encode(&buf, img); err != nil {
		t.Fatal(err)
	}
	return buf.Bytes()
}

func solid(w, h int, c color.Color) *image.RGBA {
	img := image.NewRGBA(image.Rect(0, 0, w, h))
	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			img.Set(x, y, c)
		}
	}
	return img
}

func TestApplyRoundTrip(t *testing.T) {
	raw := encodePNG(t, solid(64, 64, color.RGBA{R: 10, G: 200, B: 30, A: 255}))

	out, err := Apply(raw, func(img image.Image) image.Image { return img })
	if err != nil {
		t.Fatalf("Apply: %v", err)
	}

	img, err := png.Decode(bytes.NewReader(out))
	if err != nil {
		t.Fatalf("output is not a png: %v", err)
	}
	if img.Bounds().Dx() != 64 || img.Bounds().Dy() != 64 {
		t.Fatalf("unexpected bounds %v", img.Bounds())
	}
}

func TestApplyRejectsEmptyInput(t *testing.T) {
	if _, err := Apply(nil, EightBit); err == nil {
		t.Fatal("expected error for empty input")
	}
}

func TestApplyRejectsGarbage(t *testing.T) {
	if _, err := Apply([]byte("not an image"), EightBit); err == nil {
		t.Fatal("expected error for undecodable input")
	}
}

func TestEightBitCrushesPalette(t *testing.T) {
	src := solid(64, 64, color.RGBA{R: 0xcd, G: 0x6d, B: 0x6d, A: 0xff})
	out := EightBit(src)

	r, g, b, _ := out.At(10, 10).RGBA()
	for _, v := range []uint8{uint8(r >> 8), uint8(g >> 8), uint8(b >> 8)} {
		if v&0x3f != 0 {
			t.Fatalf("channel %#x not posterized to two bits", v)
		}
	}
	if out.Bounds() != src.Bounds() {
		t.Fatalf("bounds changed: %v", out.Bounds())
	}
}

func TestPridifyDrawsBorder(t *testing.T) {
	src := solid(100, 100, color.White)
	out := Pridify(12, "LGBT")(src)

	// The outermost ring carries the first stripe colour.
	r, g, b, _ := out.At(0, 0).RGBA()
	if uint8(r>>8) != 0xe4 || uint8(g>>8) != 0x03 || uint8(b>>8) != 0x03 {
		t.Fatalf("corner = %#x %#x %#x, want first stripe", r>>8, g>>8, b>>8)
	}

	// The centre is untouched.
	r, g, b, _ = out.At(50, 50).RGBA()
	if uint8(r>>8) != 0xff || uint8(g>>8) != 0xff || uint8(b>>8) != 0xff {
		t.Fatalf("centre was painted over: %#x %#x %#x", r>>8, g>>8, b>>8)
	}
}

func TestPridifyZeroPixelsLeavesImageAlone(t *testing.T) {
	src := solid(32, 32, color.RGBA{R: 1, G: 2, B: 3, A: 255})
	out := Pridify(0, "LGBT")(src)

	r, g, b, _ := out.At(0, 0).RGBA()
	if uint8(r>>8) != 1 || uint8(g>>8) != 2 || uint8(b>>8) != 3 {
		t.Fatalf("zero-width border modified the image: %#x %#x %#x", r>>8, g>>8, b>>8)
	}
}

func TestPridifyUnknownFlagFallsBack(t *testing.T) {
	src := solid(100, 100, color.White)
	out := Pridify(12, "NoSuchFlag")(src)

	r, g, b, _ := out.At(0, 0).RGBA()
	if uint8(r>>8) != 0xe4 || uint8(g>>8) != 0x03 || uint8(b>>8) != 0x03 {
		t.Fatalf("expected rainbow fallback, got %#x %#x %#x", r>>8, g>>8, b>>8)
	}
}

func TestPridifyBorderNeverCrossesCentre(t *testing.T) {
	src := solid(16, 16, color.White)
	// Thicker than the image itself; the border must stop at the midpoint.
	out := Pridify(512, "Transgender")(src)
	if out.Bounds() != src.Bounds() {
		t.Fatalf("bounds changed: %v", out.Bounds())
	}
}

func TestEasterifyLiftsTowardPastel(t *testing.T) {
	src := solid(32, 32, color.RGBA{R: 0, G: 0, B: 0, A: 255})
	out := Easterify(nil)(src)

	r, g, b, _ := out.At(5, 5).RGBA()
	for _, v := range []uint8{uint8(r >> 8), uint8(g >> 8), uint8(b >> 8)} {
		if v < 100 {
			t.Fatalf("channel %d not lifted toward pastel", v)
		}
	}
}

func TestEasterifyCompositesEgg(t *testing.T) {
	src := solid(64, 64, color.White)
	egg := solid(8, 8, color.RGBA{R: 0xff, G: 0x00, B: 0x00, A: 0xff})
	out := Easterify(egg)(src)

	// Bottom-right corner comes from the egg, not the pastel wash.
	r, _, _, _ := out.At(60, 60).RGBA()
	if uint8(r>>8) != 0xff {
		t.Fatalf("egg not composited, corner red channel %#x", r>>8)
	}
}

func TestDecorateEggShape(t *testing.T) {
	egg := DecorateEgg([]color.Color{color.RGBA{R: 0xff, A: 0xff}})

	// Inside the ellipse.
	_, _, _, a := egg.At(128, 128).RGBA()
	if a == 0 {
		t.Fatal("egg centre is transparent")
	}
	// Outside the ellipse.
	_, _, _, a = egg.At(0, 0).RGBA()
	if a != 0 {
		t.Fatal("egg corner should be transparent")
	}
}

func TestDecorateEggDefaultsToChocolate(t *testing.T) {
	egg := DecorateEgg(nil)
	r, g, b, _ := egg.At(128, 128).RGBA()
	if uint8(r>>8) != 0x8b || uint8(g>>8) != 0x5a || uint8(b>>8) != 0x2b {
		t.Fatalf("expected chocolate fill, got %#x %#x %#x", r>>8, g>>8, b>>8)
	}
}

func TestDecorateEggStripes(t *testing.T) {
	red := color.RGBA{R: 0xff, A: 0xff}
	blue := color.RGBA{B: 0xff, A: 0xff}
	egg := DecorateEgg([]color.Color{red, blue})

	// Two colours split the egg at the horizontal midline.
	r, _, _, _ := egg.At(128, 64).RGBA()
	if uint8(r>>8) != 0xff {
		t.Fatalf("top stripe should be red, red channel %#x", r>>8)
	}
	_, _, b, _ := egg.At(128, 192).RGBA()
	if uint8(b>>8) != 0xff {
		t.Fatalf("bottom stripe should be blue, blue channel %#x", b>>8)
	}
}

func TestSpookyTransformsPreserveBounds(t *testing.T) {
	src := solid(32, 32, color.RGBA{R: 120, G: 80, B: 40, A: 255})
	for _, fn := range []func(image.Image) image.Image{Invert, Ghostify, NightVision} {
		out := fn(src)
		if out.Bounds() != src.Bounds() {
			t.Fatalf("bounds changed: %v", out.Bounds())
		}
	}
}

func TestInvert(t *testing.T) {
	src := solid(4, 4, color.RGBA{R: 0x10, G: 0x20, B: 0x30, A: 0xff})
	out := Invert(src)
	r, g, b, _ := out.At(0, 0).RGBA()
	if uint8(r>>8) != 0xef || uint8(g>>8) != 0xdf || uint8(b>>8) != 0xcf {
		t.Fatalf("invert wrong: %#x %#x %#x", r>>8, g>>8, b>>8)
	}
}
