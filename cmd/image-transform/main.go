package main

import (
	"fmt"
	"log"
	"os"

	"github.com/ironsheep/image-transformer/internal/commands"
)

// Version information - set by ldflags during build
var (
	Version   = "dev"
	BuildTime = "unknown"
	GitCommit = "unknown"
)

func main() {
	if len(os.Args) < 2 {
		printHelp()
		os.Exit(2)
	}

	switch os.Args[1] {
	case "--version", "-v", "version":
		fmt.Printf("image-transform %s\n", Version)
		fmt.Printf("  Build time: %s\n", BuildTime)
		fmt.Printf("  Git commit: %s\n", GitCommit)
		return
	case "--help", "-h", "help":
		printHelp()
		return
	}

	// Results go to stdout, diagnostics to stderr
	log.SetOutput(os.Stderr)
	log.SetFlags(log.Ldate | log.Ltime | log.Lshortfile)

	debug := os.Getenv("IMAGE_TRANSFORM_LOG_LEVEL") == "debug"
	if debug {
		log.Printf("image-transform v%s (built %s, commit %s)", Version, BuildTime, GitCommit)
	}

	runner := commands.New(os.Stdout, debug)
	if err := runner.Execute(os.Args[1], os.Args[2:]); err != nil {
		log.Fatalf("%s: %v", os.Args[1], err)
	}
}

func printHelp() {
	fmt.Println("image-transform - pixel transforms for raster images")
	fmt.Println()
	fmt.Println("Usage: image-transform <command> [arguments]")
	fmt.Println()
	fmt.Println("Commands:")
	for _, c := range commands.Definitions() {
		fmt.Printf("  %s\n", c.Usage)
		fmt.Printf("      %s\n", c.Description)
	}
	fmt.Println()
	fmt.Println("Options:")
	fmt.Println("  --version, -v    Print version information")
	fmt.Println("  --help, -h       Print this help message")
	fmt.Println()
	fmt.Println("Environment variables:")
	fmt.Println("  IMAGE_TRANSFORM_LOG_LEVEL=debug    Enable debug logging")
}
