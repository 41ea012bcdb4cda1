package sprite

import (
	"image"
	"image/color"
	"testing"
)

func TestPalettize(t *testing.T) {
	src := image.NewNRGBA(image.Rect(0, 0, 8, 8))
	for y := 0; y < 8; y++ {
		for x := 0; x < 8; x++ {
			switch {
			case y < 2:
				// transparent
			case x < 4:
				src.SetNRGBA(x, y, color.NRGBA{0xff, 0, 0, 0xff})
			default:
				src.SetNRGBA(x, y, color.NRGBA{0, 0, 0xff, 0xff})
			}
		}
	}

	for _, dither := range []bool{false, true} {
		dst := palettize(src, 4, dither)
		if len(dst.Palette) > 5 {
			t.Fatalf("expected at most 5 colors, got %d", len(dst.Palette))
		}
		if dst.ColorIndexAt(0, 0) != 0 {
			t.Errorf("dither %v: transparent pixel not mapped to index 0", dither)
		}
		for _, p := range []image.Point{{0, 4}, {7, 7}} {
			want := color.NRGBAModel.Convert(src.At(p.X, p.Y))
			got := color.NRGBAModel.Convert(dst.At(p.X, p.Y))
			if got != want {
				t.Errorf("dither %v: %v expected %v, got %v", dither, p, want, got)
			}
		}
	}
}
