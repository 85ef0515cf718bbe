// Package transform implements the pixel transform strategies and the
// pipeline that runs them over a grid.
//
// A Strategy is invoked once per pixel of a grid and may rewrite any pixel
// of that grid. Apply runs one strategy over every pixel in enumeration
// order; that is a pass.
//
// # Strategies
//
//   - BiModal: collapse the grid to its two most frequent colours.
//   - NeighbourAccumulator: generic two-phase strategy. An accumulate function
//     picks candidate pixels around a (current, neighbour) pair and a mutate
//     function applies the effect. Pixels already written this pass (see
//     pixel.Guard) are filtered out before mutate runs.
//   - NeighboursToColor / BetweenToColor: accumulators that bleed a target
//     colour into adjacent pixels or into the gap between two target pixels.
//   - Average: replace each neighbourhood with its integer mean colour.
//
// # Operations
//
// ConvertBiModal, ConvertNeighboursToMode2, ConvertBetweenNeighboursToMode2,
// AverageNeighbours and SelfTest are the named operations behind the CLI.
// The guarded ones wrap the grid before their pass and unwrap it afterwards,
// so guard state never outlives a pass.
//
// The order in which pixels are visited matters for the guarded strategies:
// a pixel written early in a pass is frozen for the rest of it. No
// order-independent fixed point is promised.
package transform
