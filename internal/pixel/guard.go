package pixel

import (
	"image/color"
	"log"
)

// Guard wraps a Pixel and lets exactly one SetColor through.
type Guard struct {
	inner   Pixel
	changed bool
}

// X forwards to the wrapped pixel.
func (g *Guard) X() int { return g.inner.X() }

// Y forwards to the wrapped pixel.
func (g *Guard) Y() int { return g.inner.Y() }

// Color forwards to the wrapped pixel.
func (g *Guard) Color() color.NRGBA { return g.inner.Color() }

// SetColor writes through on the first call and is a no-op afterwards.
func (g *Guard) SetColor(c color.NRGBA) {
	if g.changed {
		return
	}
	g.inner.SetColor(c)
	g.changed = true
}

// Changed reports whether the single permitted write has happened.
func (g *Guard) Changed() bool { return g.changed }

// Inner returns the wrapped pixel.
func (g *Guard) Inner() Pixel { return g.inner }

func (g *Guard) String() string { return Format(g) }

// Wrap guards p for one pass.
//
// Parameters:
//   - p: The pixel to protect. May itself be a Guard.
//
// Returns:
//   - *Guard: A fresh guard with Changed() == false, or p itself when p is
//     already a Guard. Wrapping twice never produces a guard of a guard, so
//     it is safe to call redundantly.
func Wrap(p Pixel) *Guard {
	if g, ok := p.(*Guard); ok {
		return g
	}
	return &Guard{inner: p}
}

// Unwrap returns the pixel inside a guard, or p itself if it is not guarded.
func Unwrap(p Pixel) Pixel {
	if g, ok := p.(*Guard); ok {
		return g.inner
	}
	return p
}

// WrapAll guards every element of pixels in place and returns the slice.
func WrapAll(pixels []Pixel) []Pixel {
	for i, p := range pixels {
		pixels[i] = Wrap(p)
	}
	return pixels
}

// UnwrapAll strips guards from every element of pixels in place and returns
// the slice.
func UnwrapAll(pixels []Pixel) []Pixel {
	for i, p := range pixels {
		pixels[i] = Unwrap(p)
	}
	return pixels
}

// IsGuarded reports whether p is a Guard.
func IsGuarded(p Pixel) bool {
	_, ok := p.(*Guard)
	return ok
}

// AllGuarded reports whether every pixel is guarded.
//
// It stops at the first unguarded pixel and logs it. The log line is a
// diagnostic only; an unguarded pixel is not an error.
func AllGuarded(pixels []Pixel) bool {
	for _, p := range pixels {
		if !IsGuarded(p) {
			log.Printf("pixel %s is not guarded", Format(p))
			return false
		}
	}
	return true
}

// Changed reports whether p is a guard whose write has already happened.
// Unguarded pixels are never considered changed.
func Changed(p Pixel) bool {
	g, ok := p.(*Guard)
	return ok && g.changed
}
