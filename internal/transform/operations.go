package transform

import (
	"fmt"
	"image/color"

	"github.com/ironsheep/image-transformer/internal/grid"
)

// NeighbourOptions configures the neighbour based operations.
type NeighbourOptions struct {
	// Width is how many steps along each enabled direction are visited.
	Width int

	// Directions selects the arms around each pixel.
	Directions grid.Directions

	// Target overrides the colour being spread. When nil the grid's second
	// most frequent colour (the foreground) is used.
	Target *color.NRGBA
}

// target resolves the colour to spread on g.
func (o NeighbourOptions) target(g *grid.Grid) (color.NRGBA, error) {
	if o.Target != nil {
		return *o.Target, nil
	}
	modes, err := g.BiModes()
	if err != nil {
		return color.NRGBA{}, fmt.Errorf("failed to find foreground color: %w", err)
	}
	return modes[1], nil
}

// ConvertBiModal reduces g to its two most frequent colours in one guarded
// pass. It fails with grid.ErrInsufficientColors when g has fewer than two.
func ConvertBiModal(g *grid.Grid) (Report, error) {
	return applyGuarded(g, NewBiModal())
}

// ConvertNeighboursToMode2 spreads the foreground colour into neighbouring
// pixels in one guarded pass.
//
// Parameters:
//   - g: The grid, mutated in place and left unguarded.
//   - opts: Width, arms and an optional target colour.
//
// Returns:
//   - Report: Pixel and change counts, plus the resolved Target.
//   - error: grid.ErrInsufficientColors (wrapped) when opts.Target is nil and
//     g has fewer than two colours.
func ConvertNeighboursToMode2(g *grid.Grid, opts NeighbourOptions) (Report, error) {
	target, err := opts.target(g)
	if err != nil {
		return Report{}, err
	}
	report, err := applyGuarded(g, NeighboursToColor(target, opts.Width, opts.Directions))
	report.Target = &target
	return report, err
}

// ConvertBetweenNeighboursToMode2 fills the gaps between foreground pixels
// that share a row or column, in one guarded pass. Target resolution and
// errors are as for ConvertNeighboursToMode2.
func ConvertBetweenNeighboursToMode2(g *grid.Grid, opts NeighbourOptions) (Report, error) {
	target, err := opts.target(g)
	if err != nil {
		return Report{}, err
	}
	report, err := applyGuarded(g, BetweenToColor(target, opts.Width, opts.Directions))
	report.Target = &target
	return report, err
}

// AverageNeighbours averages each pixel's neighbourhood in one unguarded
// pass. Report.Changed counts pixels whose colour differs afterwards.
func AverageNeighbours(g *grid.Grid, width int, dirs grid.Directions) (Report, error) {
	before := g.Clone()
	if _, err := Apply(g, &Average{Width: width, Directions: dirs}); err != nil {
		return Report{}, err
	}

	changed := 0
	for i := 0; i < g.Len(); i++ {
		if g.At(i).Color() != before.At(i).Color() {
			changed++
		}
	}
	return Report{Pixels: g.Len(), Changed: changed}, nil
}
