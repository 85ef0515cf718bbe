package transform

import (
	"image/color"

	"github.com/ironsheep/image-transformer/internal/grid"
	"github.com/ironsheep/image-transformer/internal/pixel"
)

// BiModal rewrites every pixel that is neither the background (most frequent)
// nor the foreground (second most frequent) colour to the background colour.
//
// The modes are computed from the grid on the first call and reused for the
// rest of the pass. Use a fresh BiModal for each pass.
type BiModal struct {
	modes *[2]color.NRGBA
}

// NewBiModal returns a BiModal with no modes computed yet.
func NewBiModal() *BiModal {
	return &BiModal{}
}

// Modes returns the cached modes, or false before the first Apply.
func (b *BiModal) Modes() ([2]color.NRGBA, bool) {
	if b.modes == nil {
		return [2]color.NRGBA{}, false
	}
	return *b.modes, true
}

// Apply implements Strategy.
func (b *BiModal) Apply(g *grid.Grid, current pixel.Pixel) error {
	if b.modes == nil {
		modes, err := g.BiModes()
		if err != nil {
			return err
		}
		b.modes = &modes
	}

	background, foreground := b.modes[0], b.modes[1]
	switch current.Color() {
	case background, foreground:
		return nil
	}
	current.SetColor(background)
	return nil
}
