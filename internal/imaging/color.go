package imaging

import (
	"fmt"
	"image/color"
	"math"
	"strconv"
	"strings"

	"github.com/lucasb-eyer/go-colorful"

	"github.com/ironsheep/image-transformer/internal/grid"
)

// RGBAColor represents an RGBA color with 8-bit components including alpha.
type RGBAColor struct {
	R uint8 `json:"r"` // Red component (0-255)
	G uint8 `json:"g"` // Green component (0-255)
	B uint8 `json:"b"` // Blue component (0-255)
	A uint8 `json:"a"` // Alpha/opacity component (0-255)
}

// HSLColor represents a color in HSL (Hue, Saturation, Lightness) color space.
type HSLColor struct {
	H int `json:"h"` // Hue: 0-360 degrees (0=red, 120=green, 240=blue)
	S int `json:"s"` // Saturation: 0-100 percent (0=gray, 100=vivid)
	L int `json:"l"` // Lightness: 0-100 percent (0=black, 50=normal, 100=white)
}

// ColorResult contains a color value in multiple representations.
type ColorResult struct {
	Hex  string    `json:"hex"`  // Hex format "#RRGGBBAA"
	RGBA RGBAColor `json:"rgba"` // RGBA components with alpha
	HSL  HSLColor  `json:"hsl"`  // HSL representation (alpha ignored)
}

// Describe returns c in hex, RGBA and HSL form.
func Describe(c color.NRGBA) ColorResult {
	cf := colorful.Color{R: float64(c.R) / 255, G: float64(c.G) / 255, B: float64(c.B) / 255}
	h, s, l := cf.Hsl()

	return ColorResult{
		Hex:  fmt.Sprintf("%s%02X", strings.ToUpper(cf.Hex()), c.A),
		RGBA: RGBAColor{R: c.R, G: c.G, B: c.B, A: c.A},
		HSL: HSLColor{
			H: int(math.Round(h)) % 360,
			S: int(math.Round(s * 100)),
			L: int(math.Round(l * 100)),
		},
	}
}

// ParseHexColor parses "#RRGGBB" or "#RRGGBBAA" (the leading '#' is
// optional). Without an alpha component the color is opaque.
func ParseHexColor(hex string) (color.NRGBA, error) {
	hex = strings.TrimPrefix(strings.TrimSpace(hex), "#")

	alpha := uint8(255)
	switch len(hex) {
	case 6:
	case 8:
		a, err := strconv.ParseUint(hex[6:], 16, 8)
		if err != nil {
			return color.NRGBA{}, fmt.Errorf("invalid alpha in color %q: %w", hex, err)
		}
		alpha = uint8(a)
		hex = hex[:6]
	default:
		return color.NRGBA{}, fmt.Errorf("invalid hex color length: %q", hex)
	}

	cf, err := colorful.Hex("#" + hex)
	if err != nil {
		return color.NRGBA{}, fmt.Errorf("invalid hex color %q: %w", hex, err)
	}
	r, g, b := cf.RGB255()
	return color.NRGBA{R: r, G: g, B: b, A: alpha}, nil
}

// ColorFrequency represents a color and its occurrence frequency in a grid.
type ColorFrequency struct {
	Color      ColorResult `json:"color"`
	Count      int         `json:"count"`
	Percentage float64     `json:"percentage"` // Percentage of pixels with this color (0-100)
}

// PaletteResult lists the most frequent colors of a grid, most frequent
// first. Equal counts keep the order in which the colors first appear.
type PaletteResult struct {
	Pixels         int              `json:"pixels"`
	DistinctColors int              `json:"distinct_colors"`
	Colors         []ColorFrequency `json:"colors"`
}

// Palette summarises the colour histogram of g. At most count colours are
// listed; count <= 0 lists all of them.
//
// Unlike a quantised palette every distinct RGBA value is its own entry, which
// is what the bimodal transforms count.
func Palette(g *grid.Grid, count int) *PaletteResult {
	ranked := g.Histogram().Ranked()
	result := &PaletteResult{
		Pixels:         g.Len(),
		DistinctColors: len(ranked),
	}
	if count > 0 && len(ranked) > count {
		ranked = ranked[:count]
	}

	result.Colors = make([]ColorFrequency, 0, len(ranked))
	for _, cc := range ranked {
		result.Colors = append(result.Colors, ColorFrequency{
			Color:      Describe(cc.Color),
			Count:      cc.Count,
			Percentage: float64(cc.Count) / float64(g.Len()) * 100,
		})
	}
	return result
}
