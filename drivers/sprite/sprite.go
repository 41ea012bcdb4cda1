// Package sprite implements a compact run-length image format that is drawn
// with few instructions.
//
// A sprite consists of a palette of packed colors and horizontal runs of a
// single palette entry. Transparent pixels are not stored. Runs are grouped by
// palette index, so drawing changes the color at most once per entry.
//
// The encoding is little endian:
//
//	magic   [4]byte "MSPR"
//	width   uint16
//	height  uint16
//	ncolors uint8
//	palette [ncolors]uint32 // 0xRRGGBBAA
//	nruns   uint32
//	runs    [nruns]struct{ x, y, len uint16; index uint8 }
//	crc     uint8 // CRC-8 of all preceding bytes
package sprite

import (
	"encoding/binary"
	"errors"
	"fmt"
	"image"
	"image/color"
	"slices"

	"github.com/sigurn/crc8"

	"github.com/clktmr/mlogv32/draw"
)

var (
	ErrFormat   = errors.New("sprite: invalid format")
	ErrChecksum = errors.New("sprite: checksum mismatch")
)

const magic = "MSPR"

const (
	headerSize = len(magic) + 2 + 2 + 1
	runSize    = 2 + 2 + 2 + 1
)

var crcTable = crc8.MakeTable(crc8.CRC8)

// Run is a horizontal line of Len pixels starting at X, Y, with Y growing
// downwards.
type Run struct {
	X, Y, Len uint16
	Index     uint8
}

type Sprite struct {
	Width, Height int
	Palette       []uint32
	Runs          []Run
}

// FromPaletted converts img into a sprite. Palette entries with zero alpha are
// treated as transparent.
func FromPaletted(img *image.Paletted) (*Sprite, error) {
	b := img.Bounds()
	if b.Dx() > 0xffff || b.Dy() > 0xffff || len(img.Palette) > 0xff {
		return nil, fmt.Errorf("%w: %v with %d colors", ErrFormat, b.Size(), len(img.Palette))
	}

	s := &Sprite{Width: b.Dx(), Height: b.Dy()}
	for _, c := range img.Palette {
		s.Palette = append(s.Palette, draw.Pack(c))
	}

	for y := 0; y < b.Dy(); y++ {
		start := 0
		for x := 1; x <= b.Dx(); x++ {
			idx := img.ColorIndexAt(b.Min.X+start, b.Min.Y+y)
			if x < b.Dx() && img.ColorIndexAt(b.Min.X+x, b.Min.Y+y) == idx {
				continue
			}
			if int(idx) < len(s.Palette) && s.Palette[idx]&0xff != 0 {
				s.Runs = append(s.Runs, Run{uint16(start), uint16(y), uint16(x - start), idx})
			}
			start = x
		}
	}
	slices.SortStableFunc(s.Runs, func(a, b Run) int {
		return int(a.Index) - int(b.Index)
	})
	return s, nil
}

func (s *Sprite) MarshalBinary() ([]byte, error) {
	if s.Width > 0xffff || s.Height > 0xffff || len(s.Palette) > 0xff {
		return nil, fmt.Errorf("%w: %dx%d with %d colors", ErrFormat, s.Width, s.Height, len(s.Palette))
	}

	b := make([]byte, 0, headerSize+4*len(s.Palette)+4+runSize*len(s.Runs)+1)
	b = append(b, magic...)
	b = binary.LittleEndian.AppendUint16(b, uint16(s.Width))
	b = binary.LittleEndian.AppendUint16(b, uint16(s.Height))
	b = append(b, uint8(len(s.Palette)))
	for _, c := range s.Palette {
		b = binary.LittleEndian.AppendUint32(b, c)
	}
	b = binary.LittleEndian.AppendUint32(b, uint32(len(s.Runs)))
	for _, r := range s.Runs {
		b = binary.LittleEndian.AppendUint16(b, r.X)
		b = binary.LittleEndian.AppendUint16(b, r.Y)
		b = binary.LittleEndian.AppendUint16(b, r.Len)
		b = append(b, r.Index)
	}
	return append(b, crc8.Checksum(b, crcTable)), nil
}

func (s *Sprite) UnmarshalBinary(b []byte) error {
	if len(b) < headerSize+4+1 || string(b[:len(magic)]) != magic {
		return fmt.Errorf("%w: bad header", ErrFormat)
	}
	data, sum := b[:len(b)-1], b[len(b)-1]
	if crc8.Checksum(data, crcTable) != sum {
		return ErrChecksum
	}

	p := data[len(magic):]
	width := int(binary.LittleEndian.Uint16(p))
	height := int(binary.LittleEndian.Uint16(p[2:]))
	ncolors := int(p[4])
	p = p[5:]
	if len(p) < 4*ncolors+4 {
		return fmt.Errorf("%w: truncated palette", ErrFormat)
	}
	palette := make([]uint32, ncolors)
	for i := range palette {
		palette[i] = binary.LittleEndian.Uint32(p[4*i:])
	}
	p = p[4*ncolors:]

	nruns := binary.LittleEndian.Uint32(p)
	p = p[4:]
	if uint64(len(p)) != uint64(nruns)*runSize {
		return fmt.Errorf("%w: %d bytes for %d runs", ErrFormat, len(p), nruns)
	}
	runs := make([]Run, nruns)
	for i := range runs {
		r := p[runSize*i:]
		runs[i] = Run{
			X:     binary.LittleEndian.Uint16(r),
			Y:     binary.LittleEndian.Uint16(r[2:]),
			Len:   binary.LittleEndian.Uint16(r[4:]),
			Index: r[6],
		}
		run := runs[i]
		if int(run.Index) >= ncolors || int(run.X)+int(run.Len) > width || int(run.Y) >= height {
			return fmt.Errorf("%w: run %d out of bounds", ErrFormat, i)
		}
	}

	*s = Sprite{Width: width, Height: height, Palette: palette, Runs: runs}
	return nil
}

// Draw draws s with its bottom left corner at x, y in display coordinates.
func (s *Sprite) Draw(x, y uint32) {
	idx := -1
	for _, r := range s.Runs {
		if int(r.Index) != idx {
			idx = int(r.Index)
			draw.Col(s.Palette[idx])
		}
		draw.Rect(x+uint32(r.X), y+uint32(s.Height-1-int(r.Y)), uint32(r.Len), 1)
	}
}

// Image renders s into an image, e.g. for previews.
func (s *Sprite) Image() *image.NRGBA {
	img := image.NewNRGBA(image.Rect(0, 0, s.Width, s.Height))
	for _, r := range s.Runs {
		c := s.Palette[r.Index]
		nc := color.NRGBA{uint8(c >> 24), uint8(c >> 16), uint8(c >> 8), uint8(c)}
		for x := int(r.X); x < int(r.X)+int(r.Len); x++ {
			img.SetNRGBA(x, int(r.Y), nc)
		}
	}
	return img
}
