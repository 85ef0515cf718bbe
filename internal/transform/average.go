package transform

import (
	"image/color"

	"github.com/ironsheep/image-transformer/internal/grid"
	"github.com/ironsheep/image-transformer/internal/pixel"
)

// Average sets each pixel and its neighbours to their mean colour. Channels
// are averaged independently with integer truncation.
//
// Average ignores guard state. Neighbourhoods overlap, so a pixel can be
// rewritten several times in one pass; run it on an unguarded grid.
type Average struct {
	Width      int
	Directions grid.Directions
}

// Apply implements Strategy.
func (a *Average) Apply(g *grid.Grid, current pixel.Pixel) error {
	set := append(g.Neighbours(current, a.Width, a.Directions), current)
	c := mean(set)
	for _, p := range set {
		p.SetColor(c)
	}
	return nil
}

// mean returns the per-channel truncated average of the pixels' colours.
func mean(pixels []pixel.Pixel) color.NRGBA {
	var r, g, b, a int
	for _, p := range pixels {
		c := p.Color()
		r += int(c.R)
		g += int(c.G)
		b += int(c.B)
		a += int(c.A)
	}
	n := len(pixels)
	return color.NRGBA{R: uint8(r / n), G: uint8(g / n), B: uint8(b / n), A: uint8(a / n)}
}
