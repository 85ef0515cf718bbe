package transform

import (
	"image/color"
	"reflect"
	"testing"

	"github.com/ironsheep/image-transformer/internal/grid"
	"github.com/ironsheep/image-transformer/internal/pixel"
)

var (
	white = color.NRGBA{255, 255, 255, 255}
	black = color.NRGBA{0, 0, 0, 255}
	red   = color.NRGBA{255, 0, 0, 255}
	green = color.NRGBA{0, 255, 0, 255}
)

// rowGrid lays colors out left to right on row 0.
func rowGrid(t *testing.T, colors ...color.NRGBA) *grid.Grid {
	t.Helper()
	pixels := make([]pixel.Pixel, len(colors))
	for i, c := range colors {
		pixels[i] = pixel.New(i, 0, c)
	}
	g, err := grid.New(pixels)
	if err != nil {
		t.Fatalf("grid.New failed: %v", err)
	}
	return g
}

// columnGrid lays colors out top to bottom in column 0.
func columnGrid(t *testing.T, colors ...color.NRGBA) *grid.Grid {
	t.Helper()
	pixels := make([]pixel.Pixel, len(colors))
	for i, c := range colors {
		pixels[i] = pixel.New(0, i, c)
	}
	g, err := grid.New(pixels)
	if err != nil {
		t.Fatalf("grid.New failed: %v", err)
	}
	return g
}

// patternGrid builds a grid from rows of single-letter color codes:
// W white, B black, R red, G green.
func patternGrid(t *testing.T, rows ...string) *grid.Grid {
	t.Helper()
	codes := map[byte]color.NRGBA{'W': white, 'B': black, 'R': red, 'G': green}
	var pixels []pixel.Pixel
	for y, row := range rows {
		for x := 0; x < len(row); x++ {
			c, ok := codes[row[x]]
			if !ok {
				t.Fatalf("unknown color code %q", row[x])
			}
			pixels = append(pixels, pixel.New(x, y, c))
		}
	}
	g, err := grid.New(pixels)
	if err != nil {
		t.Fatalf("grid.New failed: %v", err)
	}
	return g
}

// render turns a grid back into the pattern notation, "?" for other colors.
func render(g *grid.Grid, width int) []string {
	names := map[color.NRGBA]byte{white: 'W', black: 'B', red: 'R', green: 'G'}
	var rows []string
	for start := 0; start < g.Len(); start += width {
		row := make([]byte, 0, width)
		for i := start; i < start+width && i < g.Len(); i++ {
			c, ok := names[g.At(i).Color()]
			if !ok {
				c = '?'
			}
			row = append(row, c)
		}
		rows = append(rows, string(row))
	}
	return rows
}

func colors(g *grid.Grid) []color.NRGBA {
	out := make([]color.NRGBA, g.Len())
	for i := range out {
		out[i] = g.At(i).Color()
	}
	return out
}

// checkColors fails t when g's colours, in enumeration order, are not want.
func checkColors(t *testing.T, g *grid.Grid, want ...color.NRGBA) {
	t.Helper()
	if got := colors(g); !reflect.DeepEqual(got, want) {
		t.Errorf("colors: got %v, want %v", got, want)
	}
}

// checkPattern fails t when g, rendered width pixels per row, is not want.
func checkPattern(t *testing.T, g *grid.Grid, width int, want ...string) {
	t.Helper()
	if got := render(g, width); !reflect.DeepEqual(got, want) {
		t.Errorf("pattern: got %q, want %q", got, want)
	}
}
