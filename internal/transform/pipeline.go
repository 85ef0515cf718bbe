package transform

import (
	"fmt"
	"image/color"

	"github.com/ironsheep/image-transformer/internal/grid"
	"github.com/ironsheep/image-transformer/internal/pixel"
)

// Strategy is applied to one pixel of a grid at a time.
type Strategy interface {
	Apply(g *grid.Grid, current pixel.Pixel) error
}

// StrategyFunc adapts a function to Strategy.
type StrategyFunc func(g *grid.Grid, current pixel.Pixel) error

// Apply calls f.
func (f StrategyFunc) Apply(g *grid.Grid, current pixel.Pixel) error {
	return f(g, current)
}

// Apply runs s once for every pixel of g in enumeration order.
//
// Apply does not guard g; callers that need the one-write-per-pass rule wrap
// the grid first (see Grid.Guard).
//
// Parameters:
//   - g: The grid, mutated in place.
//   - s: The per-pixel strategy.
//
// Returns:
//   - *grid.Grid: g itself.
//   - error: The first strategy error, wrapped with the failing pixel. The
//     pass stops there and earlier writes are kept.
func Apply(g *grid.Grid, s Strategy) (*grid.Grid, error) {
	for i := 0; i < g.Len(); i++ {
		p := g.At(i)
		if err := s.Apply(g, p); err != nil {
			return g, fmt.Errorf("pixel %s: %w", pixel.Format(p), err)
		}
	}
	return g, nil
}

// Report summarises one pass.
type Report struct {
	Pixels  int `json:"pixels"`
	Changed int `json:"changed"`

	// Target is the colour a neighbour operation spread, whether it came from
	// NeighbourOptions.Target or from the grid's modes. Nil for operations
	// that have no target.
	Target *color.NRGBA `json:"-"`
}

// applyGuarded wraps g, runs one pass of s, counts the pixels written and
// unwraps g again, including when the pass fails.
func applyGuarded(g *grid.Grid, s Strategy) (Report, error) {
	g.Guard()
	defer g.Unguard()

	_, err := Apply(g, s)
	return Report{Pixels: g.Len(), Changed: g.ChangedCount()}, err
}
