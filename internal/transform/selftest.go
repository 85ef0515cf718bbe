package transform

import (
	"fmt"

	"github.com/ironsheep/image-transformer/internal/grid"
	"github.com/ironsheep/image-transformer/internal/pixel"
)

// SelfTest runs the transforms over g and checks their post-conditions:
//
//  1. after a guarded bimodal pass every pixel is still guarded
//  2. every pixel the pass left alone already had one of the two modes
//  3. only the two modes remain
//  4. a clone equals the grid before it is mutated
//  5. a neighbour pass on the clone changes it, and never repaints a
//     foreground pixel
//
// g is left bimodal and unguarded. The returned grid is the clone after the
// neighbour pass. A failed check is reported as ErrInvariantViolation.
func SelfTest(g *grid.Grid) (*grid.Grid, error) {
	g.Guard()
	defer g.Unguard()

	if _, err := Apply(g, NewBiModal()); err != nil {
		return nil, err
	}
	if !g.Guarded() {
		return nil, violation(1, "pixels are not guarded after the bimodal pass")
	}

	modes, err := g.BiModes()
	if err != nil {
		return nil, err
	}
	for _, p := range g.Pixels() {
		if pixel.Changed(p) {
			continue
		}
		if c := p.Color(); c != modes[0] && c != modes[1] {
			return nil, violation(2, "unchanged pixel %s is not one of the modes", pixel.Format(p))
		}
	}
	if n := g.Histogram().Len(); n != 2 {
		return nil, violation(3, "bimodal grid has %d colors", n)
	}

	clone := g.Clone()
	if !grid.Equal(g, clone) {
		return nil, violation(4, "clone differs from its source")
	}

	report, err := ConvertNeighboursToMode2(clone, NeighbourOptions{
		Width:      1,
		Directions: grid.AllDirections,
		Target:     &modes[1],
	})
	if err != nil {
		return nil, err
	}
	for i := 0; i < g.Len(); i++ {
		if g.At(i).Color() == modes[1] && clone.At(i).Color() != modes[1] {
			return nil, violation(5, "foreground pixel %s was repainted", pixel.Format(clone.At(i)))
		}
	}
	if report.Changed > 0 && grid.Equal(g, clone) {
		return nil, violation(5, "clone still equals its source after %d changes", report.Changed)
	}

	return clone, nil
}

func violation(check int, format string, args ...interface{}) error {
	return fmt.Errorf("%w: check %d: %s", ErrInvariantViolation, check, fmt.Sprintf(format, args...))
}
