package transform

import (
	"image/color"

	"github.com/ironsheep/image-transformer/internal/grid"
	"github.com/ironsheep/image-transformer/internal/pixel"
)

// AccumulateFunc selects candidate pixels for a (current, neighbour) pair.
type AccumulateFunc func(g *grid.Grid, current, neighbour pixel.Pixel) []pixel.Pixel

// MutateFunc applies an effect to the accumulated candidates.
type MutateFunc func(current, neighbour pixel.Pixel, candidates []pixel.Pixel)

// NeighbourAccumulator visits the neighbours of each pixel, asks Accumulate
// for candidates and hands them to Mutate.
//
// Pixels already written this pass never take part: a changed current pixel
// is skipped, a pair with a changed member is skipped, and changed pixels are
// dropped from the candidates. Mutate is not called with an empty list.
type NeighbourAccumulator struct {
	Width      int
	Directions grid.Directions
	Accumulate AccumulateFunc
	Mutate     MutateFunc
}

// Apply implements Strategy.
func (n *NeighbourAccumulator) Apply(g *grid.Grid, current pixel.Pixel) error {
	if pixel.Changed(current) {
		return nil
	}

	for _, neighbour := range g.Neighbours(current, n.Width, n.Directions) {
		if pixel.Changed(current) || pixel.Changed(neighbour) {
			continue
		}

		candidates := unchanged(n.Accumulate(g, current, neighbour))
		if len(candidates) == 0 {
			continue
		}
		n.Mutate(current, neighbour, candidates)
	}
	return nil
}

// unchanged filters out pixels already written this pass, reusing the
// backing array.
func unchanged(pixels []pixel.Pixel) []pixel.Pixel {
	out := pixels[:0]
	for _, p := range pixels {
		if !pixel.Changed(p) {
			out = append(out, p)
		}
	}
	return out
}

// paint returns a MutateFunc that sets every candidate to c.
func paint(c color.NRGBA) MutateFunc {
	return func(_, _ pixel.Pixel, candidates []pixel.Pixel) {
		for _, p := range candidates {
			p.SetColor(c)
		}
	}
}

// NeighboursToColor spreads target from pixels that have it into their
// neighbours that do not.
func NeighboursToColor(target color.NRGBA, width int, dirs grid.Directions) *NeighbourAccumulator {
	return &NeighbourAccumulator{
		Width:      width,
		Directions: dirs,
		Accumulate: func(_ *grid.Grid, current, neighbour pixel.Pixel) []pixel.Pixel {
			if current.Color() != target || neighbour.Color() == target {
				return nil
			}
			return []pixel.Pixel{neighbour}
		},
		Mutate: paint(target),
	}
}

// BetweenToColor fills the pixels lying between two target-coloured pixels
// on a shared row or column.
func BetweenToColor(target color.NRGBA, width int, dirs grid.Directions) *NeighbourAccumulator {
	return &NeighbourAccumulator{
		Width:      width,
		Directions: dirs,
		Accumulate: func(g *grid.Grid, current, neighbour pixel.Pixel) []pixel.Pixel {
			if current.Color() != target || neighbour.Color() != target {
				return nil
			}
			return g.Between(current, neighbour)
		},
		Mutate: paint(target),
	}
}
