package grid

import "errors"

var (
	// ErrInsufficientColors indicates a grid has fewer than two distinct colours.
	ErrInsufficientColors = errors.New("grid: at least two distinct colors are required")
	// ErrDuplicateCoordinate indicates two pixels share the same (x,y).
	ErrDuplicateCoordinate = errors.New("grid: duplicate pixel coordinate")
)
