// Command contgen assembles the .s files in the working directory and
// writes each binary as an includable hex array.
//
// It is meant to run from src/<component>, e.g. through
//
//	//go:generate go run contgen/cmd -v
package main

import (
	"flag"
	"os"

	"contgen/internal/generator"
	"contgen/internal/logger"
)

func main() {
	var verbose bool
	flag.BoolVar(&verbose, "v", false, "Verbose mode")
	flag.Parse()

	l := logger.Init(verbose)

	sourceDir, err := os.Getwd()
	if err != nil {
		l.Fatal("Failed to resolve source directory", "error", err)
	}

	if err := generator.New(sourceDir, l).Generate(); err != nil {
		l.Fatal("Generation failed", "error", err)
	}
}
