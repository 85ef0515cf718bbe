package commands

import (
	"encoding/json"
	"flag"
	"fmt"
	"image"
	"io"
	"log"

	"github.com/ironsheep/image-transformer/internal/grid"
	"github.com/ironsheep/image-transformer/internal/imaging"
)

// Runner executes commands and prints their results as JSON.
type Runner struct {
	out   io.Writer
	debug bool
}

// New creates a Runner that writes results to out. debug enables per-pass
// logging.
func New(out io.Writer, debug bool) *Runner {
	return &Runner{out: out, debug: debug}
}

// Execute runs the named command with its arguments.
func (r *Runner) Execute(name string, args []string) error {
	result, err := r.executeCommand(name, args)
	if err != nil {
		return err
	}
	_, err = fmt.Fprintln(r.out, mustMarshalJSON(result))
	return err
}

// executeCommand dispatches to the handler for name.
func (r *Runner) executeCommand(name string, args []string) (interface{}, error) {
	switch name {
	// Transforms
	case "convertBiModal":
		return r.handleConvertBiModal(args)
	case "convertNeighboursToMode2":
		return r.handleConvertNeighboursToMode2(args)
	case "convertBetweenNeighboursToMode2":
		return r.handleConvertBetweenNeighboursToMode2(args)
	case "averageNeighbours":
		return r.handleAverageNeighbours(args)

	// Diagnostics
	case "test":
		return r.handleTest(args)
	case "modes":
		return r.handleModes(args)
	case "info":
		return r.handleInfo(args)

	default:
		return nil, fmt.Errorf("%w: %s", ErrUnknownCommand, name)
	}
}

func (r *Runner) debugf(format string, args ...interface{}) {
	if r.debug {
		log.Printf(format, args...)
	}
}

// parseArgs parses fs over args, allowing flags and positional arguments to
// be interleaved, and requires exactly want positional arguments.
func parseArgs(name string, fs *flag.FlagSet, args []string, want int) ([]string, error) {
	fs.SetOutput(io.Discard)

	var positional []string
	for {
		if err := fs.Parse(args); err != nil {
			return nil, usageError(name, err)
		}
		args = fs.Args()
		if len(args) == 0 {
			break
		}
		positional = append(positional, args[0])
		args = args[1:]
	}

	if len(positional) != want {
		return nil, usageError(name, fmt.Errorf("expected %d positional arguments, got %d", want, len(positional)))
	}
	return positional, nil
}

func usageError(name string, err error) error {
	usage := name
	if def, ok := lookupDefinition(name); ok {
		usage = def.Usage
	}
	return fmt.Errorf("%w: %v (usage: %s)", ErrUsage, err, usage)
}

// directionArgs holds the neighbourhood flags shared by the neighbour commands.
type directionArgs struct {
	width      int
	north      bool
	south      bool
	east       bool
	west       bool
	legacyAxes bool
}

func (d *directionArgs) register(fs *flag.FlagSet) {
	fs.IntVar(&d.width, "width", 1, "how many pixels to visit along each direction")
	fs.BoolVar(&d.north, "north", false, "visit pixels above")
	fs.BoolVar(&d.south, "south", false, "visit pixels below")
	fs.BoolVar(&d.east, "east", false, "visit pixels to the right")
	fs.BoolVar(&d.west, "west", false, "visit pixels to the left")
	fs.BoolVar(&d.legacyAxes, "legacy-axes", false, "treat east as south and west as north")
}

func (d *directionArgs) validate(name string) error {
	if d.width < 0 {
		return usageError(name, fmt.Errorf("width must not be negative, got %d", d.width))
	}
	return nil
}

func (d *directionArgs) directions() grid.Directions {
	return grid.Directions{
		North:      d.north,
		South:      d.south,
		East:       d.east,
		West:       d.west,
		LegacyAxes: d.legacyAxes,
	}
}

// loadGrid decodes path and builds a grid from it.
func loadGrid(path string) (image.Image, *grid.Grid, error) {
	img, err := imaging.Open(path)
	if err != nil {
		return nil, nil, err
	}
	return img, grid.FromImage(img), nil
}

// saveGrid renders g over base and writes it to path.
func saveGrid(g *grid.Grid, base image.Image, path string) error {
	return imaging.Save(g.ToImage(base), path)
}

// mustMarshalJSON converts a value to pretty-printed JSON string.
// On marshal failure, returns an empty string.
func mustMarshalJSON(v interface{}) string {
	b, _ := json.MarshalIndent(v, "", "  ")
	return string(b)
}
