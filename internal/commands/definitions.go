package commands

// Command describes one command for help output.
type Command struct {
	Name        string `json:"name"`
	Usage       string `json:"usage"`
	Description string `json:"description"`
}

const directionFlags = "[-width N] [-north] [-south] [-east] [-west] [-legacy-axes]"

// Definitions returns every available command.
func Definitions() []Command {
	return []Command{
		// Transforms
		{
			Name:        "convertBiModal",
			Usage:       "convertBiModal <source> <dest>",
			Description: "Set every pixel that is not one of the two most frequent colors to the most frequent color.",
		},
		{
			Name:        "convertNeighboursToMode2",
			Usage:       "convertNeighboursToMode2 <source> <dest> " + directionFlags + " [-color #RRGGBB[AA]]",
			Description: "Spread the second most frequent color (or -color) into neighbouring pixels. Each pixel changes at most once.",
		},
		{
			Name:        "convertBetweenNeighboursToMode2",
			Usage:       "convertBetweenNeighboursToMode2 <source> <dest> " + directionFlags + " [-color #RRGGBB[AA]]",
			Description: "Fill the pixels between two pixels of the second most frequent color (or -color) on the same row or column.",
		},
		{
			Name:        "averageNeighbours",
			Usage:       "averageNeighbours <source> <dest> " + directionFlags,
			Description: "Replace each pixel and its neighbours with their average color.",
		},

		// Diagnostics
		{
			Name:        "test",
			Usage:       "test <source> [-out <dest>]",
			Description: "Run the engine self-test against an image. -out saves the result of the neighbour pass.",
		},
		{
			Name:        "modes",
			Usage:       "modes <source> [-count N]",
			Description: "List the most frequent colors of an image (default 5, 0 for all).",
		},
		{
			Name:        "info",
			Usage:       "info <source>",
			Description: "Print image dimensions, format and file size.",
		},
	}
}

// lookupDefinition returns the definition for name.
func lookupDefinition(name string) (Command, bool) {
	for _, c := range Definitions() {
		if c.Name == name {
			return c, true
		}
	}
	return Command{}, false
}
