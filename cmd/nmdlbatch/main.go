package main

import (
	"flag"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"obj-nmdl/internal/batch"
	"obj-nmdl/internal/config"
)

func main() {
	configFile := flag.String("config", "", "Path to config.json file")
	outputDir := flag.String("output", "", "Output directory (default: next to each input)")
	workers := flag.Int("workers", 0, "Number of worker goroutines (default: NumCPU)")
	previewFormat := flag.String("preview-format", "", "Render previews as webp or tga")
	previewSize := flag.Int("preview-size", 0, "Preview edge length in pixels (default: 256)")
	strict := flag.Bool("strict", false, "Reject face indices with trailing non-digit characters")
	rangeCheck := flag.Bool("range-check", false, "Fail on coordinates outside the 4.12 fixed-point range")

	flag.Parse()

	if flag.NArg() == 0 {
		fmt.Printf("Usage: %s [flags] file.obj|dir ...\n", os.Args[0])
		flag.PrintDefaults()
		os.Exit(1)
	}

	var cfg config.Config
	if *configFile != "" {
		var err error
		cfg, err = config.Load(*configFile)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error loading config: %v\n", err)
			os.Exit(1)
		}
	}

	// CLI flags override config file
	cfg.Resolve(config.Flags{
		StrictIndices: *strict,
		RangeCheck:    *rangeCheck,
		OutputDir:     *outputDir,
		Workers:       *workers,
		PreviewFormat: *previewFormat,
		PreviewSize:   *previewSize,
	})
	if err := cfg.Validate(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	inputs, err := batch.Collect(flag.Args())
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
	if len(inputs) == 0 {
		fmt.Println("No OBJ files to convert.")
		os.Exit(0)
	}

	fmt.Printf("OBJ -> NMDL batch: %d files, %d workers\n", len(inputs), cfg.Workers)
	if cfg.OutputDir != "" {
		fmt.Printf("Output: %s\n", cfg.OutputDir)
	}
	fmt.Println("------------------------------------------------------------")

	start := time.Now()

	results := batch.Run(batch.Config{
		OutputDir:     cfg.OutputDir,
		Workers:       cfg.Workers,
		StrictIndices: cfg.StrictIndices,
		RangeCheck:    cfg.RangeCheck,
		PreviewFormat: cfg.PreviewFormat,
		PreviewSize:   cfg.PreviewSize,
		Supersample:   cfg.Supersample,
		Progress:      os.Stdout,
	}, inputs)

	elapsed := time.Since(start)
	fmt.Println("------------------------------------------------------------")
	fmt.Printf("Done in %.1fs\n", elapsed.Seconds())

	// Count results
	success, failed := 0, 0
	var errors []batch.Result
	for _, r := range results {
		if r.Success {
			success++
		} else {
			failed++
			errors = append(errors, r)
		}
	}

	fmt.Printf("Converted: %d/%d\n", success, len(inputs))

	if len(errors) > 0 {
		fmt.Printf("\nFailed (%d):\n", failed)
		limit := 20
		if len(errors) < limit {
			limit = len(errors)
		}
		for _, e := range errors[:limit] {
			fmt.Printf("  %s: %s\n", e.Input, e.Error)
		}
	}

	// Write manifest
	if cfg.OutputDir != "" {
		manifestPath := filepath.Join(cfg.OutputDir, "manifest.json")
		if err := batch.WriteManifest(manifestPath, results); err != nil {
			fmt.Fprintf(os.Stderr, "Warning: manifest write failed: %v\n", err)
		} else {
			fmt.Printf("Manifest: %s\n", manifestPath)
		}
	}

	if failed > 0 {
		os.Exit(1)
	}
}
