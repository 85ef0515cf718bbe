package grid

import (
	"fmt"
	"image"
	"log"

	"github.com/ironsheep/image-transformer/internal/pixel"
)

// Grid is an ordered collection of pixels indexed by coordinate.
//
// The index maps a coordinate to a slice position, so guarding the grid in
// place keeps lookups pointing at the guards. bounds is the smallest
// rectangle holding every pixel; neighbour walks stop at its edge.
type Grid struct {
	pixels []pixel.Pixel
	index  map[image.Point]int
	bounds image.Rectangle
}

// New builds a grid over pixels, keeping their order.
//
// Parameters:
//   - pixels: The samples in enumeration order. The slice is owned by the
//     grid afterwards. Coordinates need not form a dense rectangle.
//
// Returns:
//   - *Grid: The indexed grid.
//   - error: ErrDuplicateCoordinate if two pixels share an (x,y).
func New(pixels []pixel.Pixel) (*Grid, error) {
	g := &Grid{
		pixels: pixels,
		index:  make(map[image.Point]int, len(pixels)),
	}
	for i, p := range pixels {
		pt := image.Pt(p.X(), p.Y())
		if j, ok := g.index[pt]; ok {
			return nil, fmt.Errorf("%w: (%d,%d) at positions %d and %d", ErrDuplicateCoordinate, pt.X, pt.Y, j, i)
		}
		g.index[pt] = i
		g.include(pt)
	}
	return g, nil
}

// fromRows builds a grid over a row-major width x height slice. A rectangle
// enumerated row by row cannot repeat a coordinate, so there is nothing to
// reject.
func fromRows(pixels []pixel.Pixel, width, height int) *Grid {
	g := &Grid{
		pixels: pixels,
		index:  make(map[image.Point]int, len(pixels)),
		bounds: image.Rect(0, 0, width, height),
	}
	for i := range pixels {
		g.index[image.Pt(i%width, i/width)] = i
	}
	return g
}

// include grows bounds to cover pt.
func (g *Grid) include(pt image.Point) {
	cell := image.Rectangle{Min: pt, Max: pt.Add(image.Pt(1, 1))}
	if g.bounds.Empty() {
		g.bounds = cell
		return
	}
	g.bounds = g.bounds.Union(cell)
}

// Len returns the number of pixels.
func (g *Grid) Len() int { return len(g.pixels) }

// At returns the i-th pixel in enumeration order.
func (g *Grid) At(i int) pixel.Pixel { return g.pixels[i] }

// Pixels returns the grid's backing slice. Writes through it are visible to
// the grid.
func (g *Grid) Pixels() []pixel.Pixel { return g.pixels }

// Bounds returns the smallest rectangle containing every pixel. Max is
// exclusive. An empty grid has empty bounds.
func (g *Grid) Bounds() image.Rectangle { return g.bounds }

// Lookup returns the pixel at (x, y), or false if the grid has none there.
// Absence is a normal result, not an error.
func (g *Grid) Lookup(x, y int) (pixel.Pixel, bool) {
	i, ok := g.index[image.Pt(x, y)]
	if !ok {
		return nil, false
	}
	return g.pixels[i], true
}

// Guard wraps every pixel in a one-time mutation guard, in place.
func (g *Grid) Guard() *Grid {
	pixel.WrapAll(g.pixels)
	return g
}

// Unguard removes the guards added by Guard, in place.
func (g *Grid) Unguard() *Grid {
	pixel.UnwrapAll(g.pixels)
	return g
}

// Guarded reports whether every pixel is currently guarded.
func (g *Grid) Guarded() bool {
	return pixel.AllGuarded(g.pixels)
}

// ChangedCount returns how many guarded pixels have been written this pass.
func (g *Grid) ChangedCount() int {
	n := 0
	for _, p := range g.pixels {
		if pixel.Changed(p) {
			n++
		}
	}
	return n
}

// Clone returns an independent copy made of plain pixels. Guard state is not
// copied.
func (g *Grid) Clone() *Grid {
	pixels := make([]pixel.Pixel, len(g.pixels))
	index := make(map[image.Point]int, len(g.index))
	for i, p := range g.pixels {
		pixels[i] = pixel.New(p.X(), p.Y(), p.Color())
		index[image.Pt(p.X(), p.Y())] = i
	}
	return &Grid{pixels: pixels, index: index, bounds: g.bounds}
}

// Equal compares a and b element by element in enumeration order.
//
// The comparison is positional, not by coordinate lookup, so it is only
// meaningful for grids enumerated the same way (a grid and its Clone, for
// instance). It stops at, and logs, the first mismatch.
//
// Returns false for grids of different length.
func Equal(a, b *Grid) bool {
	if a.Len() != b.Len() {
		log.Printf("grids differ in length: %d vs %d", a.Len(), b.Len())
		return false
	}
	for i := range a.pixels {
		pa, pb := a.pixels[i], b.pixels[i]
		switch {
		case pa.X() != pb.X():
			log.Printf("x mismatch at %d: %s vs %s", i, pixel.Format(pa), pixel.Format(pb))
			return false
		case pa.Y() != pb.Y():
			log.Printf("y mismatch at %d: %s vs %s", i, pixel.Format(pa), pixel.Format(pb))
			return false
		case pa.Color() != pb.Color():
			log.Printf("color mismatch at %d: %s vs %s", i, pixel.Format(pa), pixel.Format(pb))
			return false
		}
	}
	return true
}
