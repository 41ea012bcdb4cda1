// Package display implements a pix.Driver on top of the drawing instructions,
// so the display of the processor can be used with
// github.com/embeddedgo/display/pix.
//
// Images are addressed with the origin in the top left corner, as usual in Go.
// The driver flips them to the bottom left origin of the host.
package display

import (
	"image"
	"image/color"
	"image/draw"

	"golang.org/x/image/font"
	"golang.org/x/image/font/basicfont"
	"golang.org/x/image/math/fixed"

	mdraw "github.com/clktmr/mlogv32/draw"
	"github.com/clktmr/mlogv32/sys"
)

var bounds = image.Rect(0, 0, mdraw.Width, mdraw.Height)

// Driver draws to the display attached to the processor. Drawing is queued by
// the host until Flush.
type Driver struct {
	fill color.Color

	// Last color sent to the host. Only valid within a single call, other
	// code may change the host color in between.
	col   uint32
	valid bool
}

func New() *Driver {
	return &Driver{fill: color.White}
}

func (d *Driver) setCol(packed uint32) {
	if d.valid && d.col == packed {
		return
	}
	mdraw.Col(packed)
	d.col, d.valid = packed, true
}

// rect fills r, which must be inside bounds, with the current color.
func (d *Driver) rect(r image.Rectangle) {
	mdraw.Rect(uint32(r.Min.X), uint32(mdraw.Height-r.Max.Y), uint32(r.Dx()), uint32(r.Dy()))
}

func (d *Driver) Draw(r image.Rectangle, src image.Image, sp image.Point, mask image.Image, mp image.Point, op draw.Op) {
	d.valid = false
	d.draw(r, src, sp, mask, mp, op)
}

func (d *Driver) draw(r image.Rectangle, src image.Image, sp image.Point, mask image.Image, mp image.Point, op draw.Op) {
	clipped := r.Intersect(bounds)
	if clipped.Empty() {
		return
	}
	sp = sp.Add(clipped.Min.Sub(r.Min))
	mp = mp.Add(clipped.Min.Sub(r.Min))
	r = clipped

	if u, ok := src.(*image.Uniform); ok && mask == nil {
		packed := mdraw.Pack(u.C)
		if packed&0xff == 0 && op == draw.Over {
			return
		}
		d.setCol(packed)
		d.rect(r)
		return
	}

	// Everything else is drawn as horizontal runs of equal color.
	for y := r.Min.Y; y < r.Max.Y; y++ {
		runStart, run := r.Min.X, uint32(0)
		flush := func(end int) {
			if end > runStart && (run&0xff != 0 || op == draw.Src) {
				d.setCol(run)
				d.rect(image.Rect(runStart, y, end, y+1))
			}
		}
		for x := r.Min.X; x < r.Max.X; x++ {
			c := pixel(src, sp.X+x-r.Min.X, sp.Y+y-r.Min.Y, mask, mp.X+x-r.Min.X, mp.Y+y-r.Min.Y)
			if x == r.Min.X {
				run = c
			} else if c != run {
				flush(x)
				runStart, run = x, c
			}
		}
		flush(r.Max.X)
	}
}

// pixel returns the packed color of src at (sx, sy) with the alpha of mask at
// (mx, my) applied.
func pixel(src image.Image, sx, sy int, mask image.Image, mx, my int) uint32 {
	c := color.NRGBAModel.Convert(src.At(sx, sy)).(color.NRGBA)
	if mask != nil {
		_, _, _, ma := mask.At(mx, my).RGBA()
		c.A = uint8(uint32(c.A) * ma / 0xffff)
	}
	return mdraw.Pack(c)
}

func (d *Driver) Fill(r image.Rectangle) {
	d.Draw(r, image.NewUniform(d.fill), image.Point{}, nil, image.Point{}, draw.Over)
}

func (d *Driver) SetColor(c color.Color) {
	d.fill = c
}

// SetDir returns the display bounds. The host display can't be rotated.
func (d *Driver) SetDir(dir int) image.Rectangle {
	return bounds
}

func (d *Driver) Flush() {
	mdraw.Flush()
}

func (d *Driver) Err(clear bool) error {
	return nil
}

// Clear fills the whole display with c, ignoring its alpha.
func (d *Driver) Clear(c color.Color) {
	n := color.NRGBAModel.Convert(c).(color.NRGBA)
	mdraw.Clear(uint32(n.R), uint32(n.G), uint32(n.B))
}

// Text draws s with its baseline starting at dot using face, which defaults to
// basicfont.Face7x13 if nil. It returns the dot after the last glyph.
func (d *Driver) Text(dot image.Point, face font.Face, c color.Color, s string) image.Point {
	if face == nil {
		face = basicfont.Face7x13
	}
	d.valid = false
	src := image.NewUniform(c)
	pos := fixed.P(dot.X, dot.Y)
	prev := rune(-1)
	for _, r := range s {
		if prev >= 0 {
			pos.X += face.Kern(prev, r)
		}
		dr, mask, mp, advance, ok := face.Glyph(pos, r)
		if ok {
			d.draw(dr, src, image.Point{}, mask, mp, draw.Over)
		}
		pos.X += advance
		prev = r
	}
	return image.Point{X: pos.X.Round(), Y: pos.Y.Round()}
}

// Print draws s with the host's font, its top left corner at p.
func (d *Driver) Print(p image.Point, s string) {
	for _, r := range s {
		sys.PrintCharInsn(r)
	}
	mdraw.Print(uint32(p.X), uint32(mdraw.Height-p.Y))
}
