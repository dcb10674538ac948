// Command hungryseg segments pen strokes into lines and arcs.
//
// Usage:
//
//	hungryseg -in strokes.json -out segments.json -png preview.png
//
// The input holds either annotated samples or raw timed points per stroke.
// Strokes that cannot be segmented are reported and skipped.
package main

import (
	"context"
	"flag"
	"log"
	"log/slog"
	"os"

	"github.com/gogpu/strokeseg"
	"github.com/gogpu/strokeseg/internal/config"
	"github.com/gogpu/strokeseg/preview"
)

func main() {
	var (
		input      = flag.String("in", "-", "input strokes JSON file (- for stdin)")
		output     = flag.String("out", "-", "output segments JSON file (- for stdout)")
		configPath = flag.String("config", "", "YAML configuration file")
		initConfig = flag.String("init-config", "", "write a default configuration file and exit")
		pngPath    = flag.String("png", "", "write a preview PNG to this file")
		width      = flag.Int("width", 800, "preview width")
		height     = flag.Int("height", 600, "preview height")
		verbose    = flag.Bool("v", false, "log segmentation details to stderr")
	)
	flag.Parse()

	if *initConfig != "" {
		if err := config.WriteDefault(*initConfig); err != nil {
			log.Fatalf("Failed to write config: %v", err)
		}
		log.Printf("Configuration written to %s\n", *initConfig)
		return
	}

	cfg := strokeseg.DefaultConfig()
	if *configPath != "" {
		var err error
		if cfg, err = config.Load(*configPath); err != nil {
			log.Fatalf("Failed to load config: %v", err)
		}
	}

	level := slog.LevelWarn
	if *verbose {
		level = slog.LevelDebug
	}
	logger := slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: level}))

	opts := []strokeseg.Option{strokeseg.WithConfig(cfg), strokeseg.WithLogger(logger)}
	var canvas *preview.Canvas
	if *pngPath != "" {
		canvas = preview.NewCanvas(*width, *height, cfg.ShowRawInk)
		opts = append(opts, strokeseg.WithSink(canvas))
	}

	seg, err := strokeseg.New(opts...)
	if err != nil {
		log.Fatalf("Invalid configuration: %v", err)
	}

	in, err := readInput(*input)
	if err != nil {
		log.Fatalf("Failed to read input: %v", err)
	}

	out := run(context.Background(), seg, in)

	if err := writeOutput(*output, out); err != nil {
		log.Fatalf("Failed to write output: %v", err)
	}

	if canvas != nil {
		if err := savePNG(*pngPath, canvas); err != nil {
			log.Fatalf("Failed to save preview: %v", err)
		}
	}

	printSummary(os.Stderr, out)
}
