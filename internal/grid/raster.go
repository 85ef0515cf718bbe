package grid

import (
	"image"
	"image/color"

	"github.com/anthonynsimon/bild/parallel"
	"github.com/disintegration/imaging"

	"github.com/ironsheep/image-transformer/internal/pixel"
)

// Sample is one raw decoded pixel. Channels are straight, not premultiplied.
type Sample struct {
	X, Y       int
	R, G, B, A uint8
}

// Load builds a grid from raw samples, one plain pixel per sample, in the
// order given.
//
// Parameters:
//   - samples: Decoded pixels in enumeration order. Coordinates may be sparse.
//
// Returns:
//   - *Grid: The grid, pixels unguarded.
//   - error: ErrDuplicateCoordinate if two samples share an (x,y).
func Load(samples []Sample) (*Grid, error) {
	pixels := make([]pixel.Pixel, len(samples))
	for i, s := range samples {
		pixels[i] = pixel.New(s.X, s.Y, color.NRGBA{R: s.R, G: s.G, B: s.B, A: s.A})
	}
	return New(pixels)
}

// FromImage builds a row-major grid from img.
//
// The image is first copied to straight-alpha NRGBA, so a translucent pixel
// keeps its colour channels exactly as encoded and fully transparent pixels
// of different colours stay distinct. Coordinates are relative to the image
// bounds: (0,0) is always the top-left pixel.
func FromImage(img image.Image) *Grid {
	src := imaging.Clone(img)
	w, h := src.Bounds().Dx(), src.Bounds().Dy()

	pixels := make([]pixel.Pixel, w*h)
	parallel.Line(h, func(start, end int) {
		for y := start; y < end; y++ {
			for x := 0; x < w; x++ {
				pixels[y*w+x] = pixel.New(x, y, src.NRGBAAt(x, y))
			}
		}
	})
	return fromRows(pixels, w, h)
}

// ApplyToRawBuffer writes each pixel's colour into buf at the matching
// coordinate, relative to buf's bounds.
//
// Buffer positions with no pixel, and pixels outside the buffer, are left
// alone. Colours are stored unpremultiplied, byte for byte.
//
// Returns buf for chaining.
func (g *Grid) ApplyToRawBuffer(buf *image.NRGBA) *image.NRGBA {
	bounds := buf.Bounds()
	for _, p := range g.pixels {
		pt := image.Pt(bounds.Min.X+p.X(), bounds.Min.Y+p.Y())
		if !pt.In(bounds) {
			continue
		}
		buf.SetNRGBA(pt.X, pt.Y, p.Color())
	}
	return buf
}

// ToImage renders the grid into a copy of base. base supplies the size and
// the colour of any position the grid does not cover.
func (g *Grid) ToImage(base image.Image) *image.NRGBA {
	return g.ApplyToRawBuffer(imaging.Clone(base))
}
