package grid

import "github.com/ironsheep/image-transformer/internal/pixel"

// Directions selects which arms of the cross around a pixel are enumerated.
//
// By default East and West run along the X axis. LegacyAxes reproduces the
// older geometry in which East used the South offset and West used the North
// offset, so only the vertical axis was ever visited.
type Directions struct {
	North, South, East, West bool
	LegacyAxes               bool
}

// AllDirections enables all four arms with true horizontal geometry.
var AllDirections = Directions{North: true, South: true, East: true, West: true}

// Any reports whether at least one arm is enabled.
func (d Directions) Any() bool {
	return d.North || d.South || d.East || d.West
}

// offsets returns the unit steps for the enabled arms in north, south, east,
// west order.
func (d Directions) offsets() [][2]int {
	var out [][2]int
	if d.North {
		out = append(out, [2]int{0, -1})
	}
	if d.South {
		out = append(out, [2]int{0, 1})
	}
	if d.East {
		if d.LegacyAxes {
			out = append(out, [2]int{0, 1})
		} else {
			out = append(out, [2]int{1, 0})
		}
	}
	if d.West {
		if d.LegacyAxes {
			out = append(out, [2]int{0, -1})
		} else {
			out = append(out, [2]int{-1, 0})
		}
	}
	return out
}

// Neighbours collects the pixels up to distance steps away from center along
// the enabled arms.
//
// Parameters:
//   - center: The pixel to walk out from. It need not belong to the grid.
//   - distance: The number of steps per arm. Values below 1 return nothing.
//     Steps that would leave the grid's bounds are not taken, so any distance
//     larger than the grid behaves like the grid's extent.
//   - dirs: The enabled arms.
//
// Returns:
//   - []pixel.Pixel: Neighbours grouped by step (every arm at distance 1, then
//     distance 2, ...), arms in N, S, E, W order. Missing coordinates are
//     skipped. Under LegacyAxes a pixel can appear twice, once per aliased arm.
func (g *Grid) Neighbours(center pixel.Pixel, distance int, dirs Directions) []pixel.Pixel {
	if g.bounds.Empty() {
		return nil
	}
	distance = min(distance, g.reach(center))
	var out []pixel.Pixel
	offsets := dirs.offsets()
	for i := 1; i <= distance; i++ {
		for _, o := range offsets {
			if p, ok := g.Lookup(center.X()+o[0]*i, center.Y()+o[1]*i); ok {
				out = append(out, p)
			}
		}
	}
	return out
}

// reach is the largest step from center that can still land inside bounds
// along either axis.
func (g *Grid) reach(center pixel.Pixel) int {
	b := g.bounds
	return max(
		abs(center.X()-b.Min.X), abs(center.X()-(b.Max.X-1)),
		abs(center.Y()-b.Min.Y), abs(center.Y()-(b.Max.Y-1)),
	)
}

// Between returns the pixels strictly between a and b.
//
// Parameters:
//   - a, b: The end points. Neither is included in the result.
//
// Returns:
//   - []pixel.Pixel: When a and b share a column or a row, the grid's pixels
//     between them ordered from the lower coordinate to the higher, whatever
//     the argument order. Diagonal and identical pairs yield nothing.
func (g *Grid) Between(a, b pixel.Pixel) []pixel.Pixel {
	var out []pixel.Pixel
	switch {
	case a.X() == b.X() && a.Y() != b.Y():
		lo, hi := minMax(a.Y(), b.Y())
		for y := lo + 1; y < hi; y++ {
			if p, ok := g.Lookup(a.X(), y); ok {
				out = append(out, p)
			}
		}
	case a.Y() == b.Y() && a.X() != b.X():
		lo, hi := minMax(a.X(), b.X())
		for x := lo + 1; x < hi; x++ {
			if p, ok := g.Lookup(x, a.Y()); ok {
				out = append(out, p)
			}
		}
	}
	return out
}

func abs(v int) int {
	if v < 0 {
		return -v
	}
	return v
}

func minMax(a, b int) (int, int) {
	if a < b {
		return a, b
	}
	return b, a
}
