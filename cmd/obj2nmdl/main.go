package main

import (
	"flag"
	"fmt"
	"os"

	"obj-nmdl/internal/config"
	"obj-nmdl/internal/convert"
)

func main() {
	configFile := flag.String("config", "", "Path to config.json file")
	strict := flag.Bool("strict", false, "Reject face indices with trailing non-digit characters")
	rangeCheck := flag.Bool("range-check", false, "Fail on coordinates outside the 4.12 fixed-point range")
	previewPath := flag.String("preview", "", "Also render a preview image (.webp or .tga)")
	previewFormat := flag.String("preview-format", "", "Render a preview next to the output as webp or tga")
	previewSize := flag.Int("preview-size", 0, "Preview edge length in pixels (default: 256)")

	flag.CommandLine.SetOutput(os.Stdout)
	flag.Usage = func() {
		fmt.Printf("Usage: %s [flags] input.obj output.nmdl\n", os.Args[0])
		flag.PrintDefaults()
	}
	flag.Parse()

	if flag.NArg() != 2 {
		flag.Usage()
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

	cfg.Resolve(config.Flags{
		StrictIndices: *strict,
		RangeCheck:    *rangeCheck,
		PreviewFormat: *previewFormat,
		PreviewSize:   *previewSize,
	})
	if err := cfg.Validate(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	// An explicit -preview path wins over the configured format.
	preview := *previewPath
	if preview == "" {
		preview = cfg.PreviewPath(flag.Arg(1))
	}

	_, err := convert.Run(flag.Arg(0), flag.Arg(1), convert.Options{
		StrictIndices: cfg.StrictIndices,
		RangeCheck:    cfg.RangeCheck,
		Preview:       preview,
		PreviewSize:   cfg.PreviewSize,
		Supersample:   cfg.Supersample,
		Progress:      os.Stdout,
	})
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
