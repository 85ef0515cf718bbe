package transform

import (
	"image/color"
	"math"
	"testing"

	"github.com/ironsheep/image-transformer/internal/grid"
	"github.com/ironsheep/image-transformer/internal/pixel"
)

var (
	dark  = color.NRGBA{0, 0, 0, 255}
	mid   = color.NRGBA{100, 100, 100, 255}
	light = color.NRGBA{200, 200, 200, 255}
)

func TestAverage_MiddleOfColumn(t *testing.T) {
	g := columnGrid(t, dark, mid, light)
	a := &Average{Width: 1, Directions: grid.Directions{North: true, South: true}}

	if err := a.Apply(g, g.At(1)); err != nil {
		t.Fatalf("Apply failed: %v", err)
	}
	checkColors(t, g, mid, mid, mid)
}

func TestAverage_Truncates(t *testing.T) {
	g := rowGrid(t, color.NRGBA{0, 1, 2, 255}, color.NRGBA{1, 1, 2, 254})
	a := &Average{Width: 1, Directions: grid.Directions{East: true}}

	if err := a.Apply(g, g.At(0)); err != nil {
		t.Fatalf("Apply failed: %v", err)
	}
	want := color.NRGBA{0, 1, 2, 254}
	checkColors(t, g, want, want)
}

func TestAverage_NoNeighbours(t *testing.T) {
	g := rowGrid(t, light)
	a := &Average{Width: 3, Directions: grid.AllDirections}

	if err := a.Apply(g, g.At(0)); err != nil {
		t.Fatalf("Apply failed: %v", err)
	}
	checkColors(t, g, light)
}

func TestAverageNeighbours_FullPass(t *testing.T) {
	g := columnGrid(t, dark, mid, light)

	report, err := AverageNeighbours(g, 1, grid.Directions{North: true, South: true})
	if err != nil {
		t.Fatalf("AverageNeighbours failed: %v", err)
	}

	// (0,0): {0,100} -> 50, 50
	// (0,1): {50,200,50} -> 100 for all three
	// (0,2): {100,100} -> 100
	want := color.NRGBA{100, 100, 100, 255}
	checkColors(t, g, want, want, want)
	if wantReport := (Report{Pixels: 3, Changed: 2}); report != wantReport {
		t.Errorf("report: got %+v, want %+v", report, wantReport)
	}
	for i := 0; i < g.Len(); i++ {
		if pixel.IsGuarded(g.At(i)) {
			t.Errorf("pixel %d is guarded after an unguarded pass", i)
		}
	}
}

func TestAverageNeighbours_SingleColorIsFine(t *testing.T) {
	g := rowGrid(t, white, white, white)

	report, err := AverageNeighbours(g, 2, grid.AllDirections)
	if err != nil {
		t.Fatalf("AverageNeighbours failed: %v", err)
	}
	if report.Changed != 0 {
		t.Errorf("changed: got %d, want 0", report.Changed)
	}
}

func TestAverageNeighbours_HugeWidth(t *testing.T) {
	small := columnGrid(t, dark, mid, light, white)
	huge := columnGrid(t, dark, mid, light, white)

	if _, err := AverageNeighbours(small, 3, grid.AllDirections); err != nil {
		t.Fatalf("AverageNeighbours failed: %v", err)
	}
	if _, err := AverageNeighbours(huge, math.MaxInt, grid.AllDirections); err != nil {
		t.Fatalf("AverageNeighbours failed: %v", err)
	}
	checkColors(t, huge, colors(small)...)
}
