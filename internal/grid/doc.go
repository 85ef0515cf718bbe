// Package grid holds the pixels decoded from one image and the operations the
// transform engine runs over them: coordinate lookup, neighbour and in-between
// enumeration, colour histograms, cloning and comparison.
//
// # Coordinate System
//
// Coordinates are 0-based with (0,0) at the top-left corner; X grows
// rightward and Y grows downward. A Grid is conceptually one pixel per (x,y)
// of a width x height rectangle, but density is not enforced: lookups
// tolerate holes and report absence instead of failing. Bounds is the
// smallest rectangle covering every pixel, and neighbour walks never step
// past it, so an oversized width costs no more than the grid's own extent.
//
// # Colour
//
// Pixels carry straight-alpha color.NRGBA. FromImage copies the source through
// github.com/disintegration/imaging into an NRGBA buffer, splitting the rows
// across goroutines with github.com/anthonynsimon/bild/parallel, and ToImage
// writes back into NRGBA, so translucent colours survive a round trip byte
// for byte.
//
// # Ordering
//
// A Grid keeps the order its pixels were supplied in (row-major when built
// from an image). Equal compares positionally in that order, and Histogram
// remembers colours in first-seen order so that BiModes breaks ties
// deterministically.
//
// # Thread Safety
//
// A Grid is mutated in place by transform passes and is not safe for
// concurrent use.
package grid
