// Package draw provides the drawing instructions of the mlogv32 host.
//
// Drawing dominates the traffic to the host, typically tens of calls per frame.
// Instead of going through the generic gateway in package sys, each operation
// has its own instruction whose immediate selects the operation, so only the
// actual arguments occupy registers. All arguments are plain 32 bit values
// interpreted by the host; nothing is checked here. Operations are queued by the
// host and become visible on Flush.
//
// Coordinates are in display pixels with the origin in the bottom left corner.
package draw

import (
	"image/color"

	"github.com/clktmr/mlogv32/sys"
)

//go:generate go run gen.go

// ImageType selects the content category of an Image.
type ImageType uint32

const (
	Block ImageType = iota
	Unit
	Item
	Liquid
)

// Size of the display attached to the processor.
const (
	WidthTiles  = 16
	HeightTiles = 16

	TileSize = 32
	Width    = TileSize * WidthTiles
	Height   = TileSize * HeightTiles
)

// Pack converts c into the 0xRRGGBBAA format expected by Col.
func Pack(c color.Color) uint32 {
	n := color.NRGBAModel.Convert(c).(color.NRGBA)
	return uint32(n.R)<<24 | uint32(n.G)<<16 | uint32(n.B)<<8 | uint32(n.A)
}

// SetColor sets the colour of subsequent operations.
func SetColor(c color.Color) { Col(Pack(c)) }

// Flush makes all queued operations visible.
func Flush() { sys.DrawFlushInsn() }
