package commands

import (
	"flag"
	"fmt"

	"github.com/ironsheep/image-transformer/internal/grid"
	"github.com/ironsheep/image-transformer/internal/imaging"
	"github.com/ironsheep/image-transformer/internal/transform"
)

// TransformResult is printed after a transform command writes its output.
type TransformResult struct {
	Command string               `json:"command"`
	Source  string               `json:"source"`
	Dest    string               `json:"dest"`
	Width   int                  `json:"width"`
	Height  int                  `json:"height"`
	Report  transform.Report     `json:"report"`
	Target  *imaging.ColorResult `json:"target,omitempty"`
}

// === Transform Handlers ===

func (r *Runner) handleConvertBiModal(args []string) (interface{}, error) {
	const name = "convertBiModal"
	fs := flag.NewFlagSet(name, flag.ContinueOnError)
	pos, err := parseArgs(name, fs, args, 2)
	if err != nil {
		return nil, err
	}

	img, g, err := loadGrid(pos[0])
	if err != nil {
		return nil, err
	}
	report, err := transform.ConvertBiModal(g)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", name, err)
	}
	r.debugf("%s: %d of %d pixels changed", name, report.Changed, report.Pixels)

	if err := saveGrid(g, img, pos[1]); err != nil {
		return nil, err
	}
	return &TransformResult{
		Command: name,
		Source:  pos[0],
		Dest:    pos[1],
		Width:   img.Bounds().Dx(),
		Height:  img.Bounds().Dy(),
		Report:  report,
	}, nil
}

type neighbourOp func(*grid.Grid, transform.NeighbourOptions) (transform.Report, error)

func (r *Runner) handleConvertNeighboursToMode2(args []string) (interface{}, error) {
	return r.runNeighbourCommand("convertNeighboursToMode2", args, transform.ConvertNeighboursToMode2)
}

func (r *Runner) handleConvertBetweenNeighboursToMode2(args []string) (interface{}, error) {
	return r.runNeighbourCommand("convertBetweenNeighboursToMode2", args, transform.ConvertBetweenNeighboursToMode2)
}

// runNeighbourCommand runs op over the source image. The -color flag, when
// given, overrides the target; otherwise op picks the image's second mode
// and reports it back.
func (r *Runner) runNeighbourCommand(name string, args []string, op neighbourOp) (interface{}, error) {
	var dirs directionArgs
	var hex string
	fs := flag.NewFlagSet(name, flag.ContinueOnError)
	dirs.register(fs)
	fs.StringVar(&hex, "color", "", "target color as #RRGGBB or #RRGGBBAA (default: second most frequent color)")
	pos, err := parseArgs(name, fs, args, 2)
	if err != nil {
		return nil, err
	}
	if err := dirs.validate(name); err != nil {
		return nil, err
	}

	img, g, err := loadGrid(pos[0])
	if err != nil {
		return nil, err
	}

	opts := transform.NeighbourOptions{
		Width:      dirs.width,
		Directions: dirs.directions(),
	}
	if hex != "" {
		target, err := imaging.ParseHexColor(hex)
		if err != nil {
			return nil, usageError(name, err)
		}
		opts.Target = &target
	}

	report, err := op(g, opts)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", name, err)
	}
	r.debugf("%s: %d of %d pixels changed", name, report.Changed, report.Pixels)

	if err := saveGrid(g, img, pos[1]); err != nil {
		return nil, err
	}
	result := &TransformResult{
		Command: name,
		Source:  pos[0],
		Dest:    pos[1],
		Width:   img.Bounds().Dx(),
		Height:  img.Bounds().Dy(),
		Report:  report,
	}
	if report.Target != nil {
		described := imaging.Describe(*report.Target)
		result.Target = &described
	}
	return result, nil
}

func (r *Runner) handleAverageNeighbours(args []string) (interface{}, error) {
	const name = "averageNeighbours"
	var dirs directionArgs
	fs := flag.NewFlagSet(name, flag.ContinueOnError)
	dirs.register(fs)
	pos, err := parseArgs(name, fs, args, 2)
	if err != nil {
		return nil, err
	}
	if err := dirs.validate(name); err != nil {
		return nil, err
	}

	img, g, err := loadGrid(pos[0])
	if err != nil {
		return nil, err
	}
	report, err := transform.AverageNeighbours(g, dirs.width, dirs.directions())
	if err != nil {
		return nil, fmt.Errorf("%s: %w", name, err)
	}
	r.debugf("%s: %d of %d pixels changed", name, report.Changed, report.Pixels)

	if err := saveGrid(g, img, pos[1]); err != nil {
		return nil, err
	}
	return &TransformResult{
		Command: name,
		Source:  pos[0],
		Dest:    pos[1],
		Width:   img.Bounds().Dx(),
		Height:  img.Bounds().Dy(),
		Report:  report,
	}, nil
}

// === Diagnostic Handlers ===

// SelfTestResult is printed when the self-test passes.
type SelfTestResult struct {
	Command    string                 `json:"command"`
	Source     string                 `json:"source"`
	Pixels     int                    `json:"pixels"`
	Background imaging.ColorResult    `json:"background"`
	Foreground imaging.ColorResult    `json:"foreground"`
	Palette    *imaging.PaletteResult `json:"neighbour_pass_palette"`
	Output     string                 `json:"output,omitempty"`
	Passed     bool                   `json:"passed"`
}

func (r *Runner) handleTest(args []string) (interface{}, error) {
	const name = "test"
	var out string
	fs := flag.NewFlagSet(name, flag.ContinueOnError)
	fs.StringVar(&out, "out", "", "save the neighbour pass result to this path")
	pos, err := parseArgs(name, fs, args, 1)
	if err != nil {
		return nil, err
	}

	img, g, err := loadGrid(pos[0])
	if err != nil {
		return nil, err
	}
	result, err := transform.SelfTest(g)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", name, err)
	}
	modes, err := g.BiModes()
	if err != nil {
		return nil, fmt.Errorf("%s: %w", name, err)
	}
	r.debugf("%s: all checks passed on %d pixels", name, g.Len())

	if out != "" {
		if err := saveGrid(result, img, out); err != nil {
			return nil, err
		}
	}
	return &SelfTestResult{
		Command:    name,
		Source:     pos[0],
		Pixels:     g.Len(),
		Background: imaging.Describe(modes[0]),
		Foreground: imaging.Describe(modes[1]),
		Palette:    imaging.Palette(result, 0),
		Output:     out,
		Passed:     true,
	}, nil
}

func (r *Runner) handleModes(args []string) (interface{}, error) {
	const name = "modes"
	var count int
	fs := flag.NewFlagSet(name, flag.ContinueOnError)
	fs.IntVar(&count, "count", 5, "how many colors to list (0 for all)")
	pos, err := parseArgs(name, fs, args, 1)
	if err != nil {
		return nil, err
	}

	_, g, err := loadGrid(pos[0])
	if err != nil {
		return nil, err
	}
	return imaging.Palette(g, count), nil
}

func (r *Runner) handleInfo(args []string) (interface{}, error) {
	const name = "info"
	fs := flag.NewFlagSet(name, flag.ContinueOnError)
	pos, err := parseArgs(name, fs, args, 1)
	if err != nil {
		return nil, err
	}
	return imaging.LoadImageInfo(pos[0])
}
