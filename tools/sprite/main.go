package sprite

import (
	"flag"
	"fmt"
	"image"
	"image/color"
	"image/draw"
	_ "image/gif"
	_ "image/jpeg"
	"image/png"
	"log"
	"os"
	"path/filepath"
	"strings"

	"github.com/ericpauley/go-quantize/quantize"

	"github.com/clktmr/mlogv32/drivers/sprite"
)

var (
	flags = flag.NewFlagSet("sprite", flag.ExitOnError)

	colors  = flags.Int("colors", 16, "number of opaque colors, at most 254")
	dither  = flags.Bool("dither", false, "enable Floyd-Steinberg error diffusion")
	preview = flags.Bool("preview", false, "also write the converted sprite as png")

	imagefile string
)

const usageString = `Image to mlogv32 sprite converter.

Usage: %s [flags] <image>

`

func usage() {
	fmt.Fprintf(flags.Output(), usageString, "sprite")
	flags.PrintDefaults()
}

// palettize reduces src to at most n opaque colors plus transparency.
func palettize(src image.Image, n int, dither bool) *image.Paletted {
	q := quantize.MedianCutQuantizer{}
	p := q.Quantize(make([]color.Color, 0, n), src)
	p = append(color.Palette{color.Transparent}, p...)

	dst := image.NewPaletted(src.Bounds(), p)
	var d draw.Drawer = draw.Src
	if dither {
		d = draw.FloydSteinberg
	}
	d.Draw(dst, dst.Bounds(), src, src.Bounds().Min)
	return dst
}

func Main(args []string) {
	flags.Usage = usage
	flags.Parse(args[1:])

	if flags.NArg() == 1 {
		imagefile = flags.Arg(0)
	} else {
		flags.Usage()
		os.Exit(1)
	}
	if *colors < 1 || *colors > 254 {
		log.Fatalln("colors out of range:", *colors)
	}

	r, err := os.Open(imagefile)
	if err != nil {
		log.Fatalln(err)
	}
	defer r.Close()

	src, _, err := image.Decode(r)
	if err != nil {
		log.Fatalln(err)
	}

	s, err := sprite.FromPaletted(palettize(src, *colors, *dither))
	if err != nil {
		log.Fatalln(err)
	}
	data, err := s.MarshalBinary()
	if err != nil {
		log.Fatalln(err)
	}

	outfile := strings.TrimSuffix(imagefile, filepath.Ext(imagefile))
	err = os.WriteFile(outfile+".mspr", data, 0644)
	if err != nil {
		log.Fatalln(err)
	}
	log.Printf("%s: %d colors, %d runs, %d bytes", outfile+".mspr", len(s.Palette), len(s.Runs), len(data))

	if *preview {
		w, err := os.Create(outfile + ".preview.png")
		if err != nil {
			log.Fatalln(err)
		}
		defer w.Close()
		err = png.Encode(w, s.Image())
		if err != nil {
			log.Fatalln(err)
		}
	}
}
