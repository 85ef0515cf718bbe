package pixel

import (
	"fmt"
	"image/color"
)

// Pixel is the capability set shared by plain pixels and guards.
type Pixel interface {
	X() int
	Y() int
	Color() color.NRGBA
	SetColor(c color.NRGBA)
}

// Plain is a free-standing pixel sample. Its coordinates are fixed at
// construction; only the colour changes.
type Plain struct {
	x, y  int
	color color.NRGBA
}

// New creates a pixel at (x, y). Coordinates are not range checked.
func New(x, y int, c color.NRGBA) *Plain {
	return &Plain{x: x, y: y, color: c}
}

// X returns the horizontal coordinate.
func (p *Plain) X() int { return p.x }

// Y returns the vertical coordinate.
func (p *Plain) Y() int { return p.y }

// Color returns the stored colour.
func (p *Plain) Color() color.NRGBA { return p.color }

// SetColor replaces the stored colour. It always succeeds.
func (p *Plain) SetColor(c color.NRGBA) { p.color = c }

func (p *Plain) String() string { return Format(p) }

// Key is the comparable identity of a pixel: position and colour.
// It can be used as a map key wherever pixels need hashing.
type Key struct {
	X, Y  int
	Color color.NRGBA
}

// KeyOf returns the identity tuple of p.
func KeyOf(p Pixel) Key {
	return Key{X: p.X(), Y: p.Y(), Color: p.Color()}
}

// Equal reports whether a and b share position and colour. A nil pixel is
// never equal to anything.
func Equal(a, b Pixel) bool {
	if a == nil || b == nil {
		return false
	}
	return KeyOf(a) == KeyOf(b)
}

// Format renders p as "x y #RRGGBBAA".
func Format(p Pixel) string {
	c := p.Color()
	return fmt.Sprintf("%d %d #%02X%02X%02X%02X", p.X(), p.Y(), c.R, c.G, c.B, c.A)
}
