// Package commands maps the command-line operations of image-transform onto
// the transform engine.
//
// Each command decodes its source image, builds a grid, runs one engine
// operation, writes the result and prints a JSON summary to the configured
// output.
//
// # Available Commands
//
// Transforms (write a destination image):
//   - convertBiModal: reduce to the two most frequent colors
//   - convertNeighboursToMode2: spread the foreground color into neighbours
//   - convertBetweenNeighboursToMode2: fill gaps between foreground pixels
//   - averageNeighbours: average each neighbourhood
//
// Diagnostics:
//   - test: run the engine self-test against an image
//   - modes: list the most frequent colors
//   - info: print image dimensions and format
//
// Flags may appear before, between or after the positional arguments.
//
// # Error Handling
//
// Unknown commands return ErrUnknownCommand and malformed arguments return
// ErrUsage; both carry the command's usage line. Engine errors such as
// grid.ErrInsufficientColors and transform.ErrInvariantViolation are returned
// wrapped and can be matched with errors.Is.
package commands
