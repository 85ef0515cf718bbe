package grid

import (
	"fmt"
	"image/color"
	"sort"
)

// ColorCount pairs a colour with the number of pixels carrying it.
type ColorCount struct {
	Color color.NRGBA
	Count int
}

// Histogram counts colour occurrences and remembers the order in which each
// colour was first seen.
type Histogram struct {
	counts map[color.NRGBA]int
	order  []color.NRGBA
}

// Histogram counts the colours of every pixel in the grid.
func (g *Grid) Histogram() *Histogram {
	h := &Histogram{counts: make(map[color.NRGBA]int)}
	for _, p := range g.pixels {
		h.add(p.Color())
	}
	return h
}

func (h *Histogram) add(c color.NRGBA) {
	if _, ok := h.counts[c]; !ok {
		h.order = append(h.order, c)
	}
	h.counts[c]++
}

// Len returns the number of distinct colours.
func (h *Histogram) Len() int { return len(h.order) }

// Count returns how many pixels have colour c.
func (h *Histogram) Count(c color.NRGBA) int { return h.counts[c] }

// Entries returns the colours in first-seen order.
func (h *Histogram) Entries() []ColorCount {
	out := make([]ColorCount, len(h.order))
	for i, c := range h.order {
		out[i] = ColorCount{Color: c, Count: h.counts[c]}
	}
	return out
}

// Ranked returns the colours by descending count. Equal counts keep
// first-seen order.
func (h *Histogram) Ranked() []ColorCount {
	out := h.Entries()
	sort.SliceStable(out, func(i, j int) bool {
		return out[i].Count > out[j].Count
	})
	return out
}

// BiModes returns the two most frequent colours.
//
// Colours are compared on all four straight-alpha channels, so two fully
// transparent pixels with different RGB count as different colours.
//
// Returns:
//   - [2]color.NRGBA: The most frequent colour (background) then the second
//     most frequent (foreground). Ties keep first-seen order.
//   - error: ErrInsufficientColors when the grid holds fewer than two
//     distinct colours.
func (g *Grid) BiModes() ([2]color.NRGBA, error) {
	ranked := g.Histogram().Ranked()
	if len(ranked) < 2 {
		return [2]color.NRGBA{}, fmt.Errorf("%w: found %d", ErrInsufficientColors, len(ranked))
	}
	return [2]color.NRGBA{ranked[0].Color, ranked[1].Color}, nil
}
