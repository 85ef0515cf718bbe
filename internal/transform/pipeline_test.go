package transform

import (
	"errors"
	"reflect"
	"testing"

	"github.com/ironsheep/image-transformer/internal/grid"
	"github.com/ironsheep/image-transformer/internal/pixel"
)

func TestApply_VisitsEveryPixelInOrder(t *testing.T) {
	g := rowGrid(t, white, black, red, green)

	var visited []int
	out, err := Apply(g, StrategyFunc(func(_ *grid.Grid, current pixel.Pixel) error {
		visited = append(visited, current.X())
		return nil
	}))
	if err != nil {
		t.Fatalf("Apply failed: %v", err)
	}
	if out != g {
		t.Error("Apply should return the grid it was given")
	}
	if want := []int{0, 1, 2, 3}; !reflect.DeepEqual(visited, want) {
		t.Errorf("visited: got %v, want %v", visited, want)
	}
}

func TestApply_StopsOnError(t *testing.T) {
	g := rowGrid(t, white, black, red)
	boom := errors.New("boom")

	calls := 0
	_, err := Apply(g, StrategyFunc(func(_ *grid.Grid, current pixel.Pixel) error {
		calls++
		if current.X() == 1 {
			return boom
		}
		return nil
	}))

	if !errors.Is(err, boom) {
		t.Errorf("Apply: got %v, want %v", err, boom)
	}
	if calls != 2 {
		t.Errorf("calls: got %d, want 2", calls)
	}
}

func TestApply_EmptyGrid(t *testing.T) {
	g := rowGrid(t)
	// an empty pass never asks for modes
	if _, err := Apply(g, NewBiModal()); err != nil {
		t.Errorf("Apply on an empty grid failed: %v", err)
	}
}

func TestApplyGuarded_UnwrapsAfterFailure(t *testing.T) {
	g := rowGrid(t, white, white)

	_, err := applyGuarded(g, NewBiModal())
	if !errors.Is(err, grid.ErrInsufficientColors) {
		t.Fatalf("applyGuarded: got %v, want ErrInsufficientColors", err)
	}
	for i := 0; i < g.Len(); i++ {
		if pixel.IsGuarded(g.At(i)) {
			t.Errorf("pixel %d still guarded after a failed pass", i)
		}
	}
}
