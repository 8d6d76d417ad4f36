package main

import (
	"flag"
	"fmt"
	"os"

	"github.com/df07/go-sphere-raytracer/pkg/core"
	"github.com/df07/go-sphere-raytracer/pkg/output"
	"github.com/df07/go-sphere-raytracer/pkg/renderer"
	"github.com/df07/go-sphere-raytracer/pkg/scene"
)

func main() {
	// Parse command line flags
	outputPath := flag.String("output", "img.ppm", "Path of the rendered image")
	formatName := flag.String("format", "ppm", "Image format: 'ppm' or 'png'")
	help := flag.Bool("help", false, "Show help information")
	flag.Parse()

	if *help {
		fmt.Println("Sphere Raytracer")
		fmt.Println("Usage: raytracer [options]")
		fmt.Println()
		fmt.Println("Options:")
		flag.PrintDefaults()
		fmt.Println()
		fmt.Println("Renders a 512x512 diffuse sphere lit by a single point light.")
		return
	}

	format, err := output.ParseFormat(*formatName)
	if err != nil {
		fmt.Printf("Error: %v\n", err)
		os.Exit(1)
	}

	if err := run(*outputPath, format, renderer.NewDefaultLogger()); err != nil {
		fmt.Printf("Error: %v\n", err)
		os.Exit(1)
	}
}

// run renders the default scene into outputPath
func run(outputPath string, format output.Format, logger core.Logger) error {
	s := scene.NewDefaultScene()
	rt := renderer.NewRaytracer(s, logger)

	err := output.WriteFile(outputPath, format, s.Size(), func(sink renderer.PixelSink) error {
		_, err := rt.Render(sink)
		return err
	})
	if err != nil {
		return fmt.Errorf("failed to render %s: %w", outputPath, err)
	}

	logger.Printf("Render saved as %s\n", outputPath)
	return nil
}
