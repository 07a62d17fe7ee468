package config

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"runtime"
	"strings"
)

// Config holds converter settings shared by the command-line tools.
type Config struct {
	// Parsing and encoding
	StrictIndices bool `json:"strict_indices"`
	RangeCheck    bool `json:"range_check"`

	// Batch output
	OutputDir string `json:"output_dir"`
	Workers   int    `json:"workers"`

	// Preview settings
	PreviewFormat string `json:"preview_format"` // "", "webp" or "tga"
	PreviewSize   int    `json:"preview_size"`
	Supersample   int    `json:"supersample"`
}

// Load reads a JSON config file and returns Config.
// Fields not set in the file keep their zero values.
func Load(path string) (Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return Config{}, fmt.Errorf("config: read %s: %w", path, err)
	}

	var cfg Config
	if err := json.Unmarshal(data, &cfg); err != nil {
		return Config{}, fmt.Errorf("config: parse %s: %w", path, err)
	}

	return cfg, nil
}

// Flags holds CLI flag values that override config file settings.
type Flags struct {
	StrictIndices bool
	RangeCheck    bool
	OutputDir     string
	Workers       int
	PreviewFormat string
	PreviewSize   int
}

// Resolve applies CLI overrides and fills in defaults.
// Boolean flags can only switch a setting on.
func (c *Config) Resolve(flags Flags) {
	if flags.StrictIndices {
		c.StrictIndices = true
	}
	if flags.RangeCheck {
		c.RangeCheck = true
	}
	if flags.OutputDir != "" {
		c.OutputDir = flags.OutputDir
	}
	if flags.Workers > 0 {
		c.Workers = flags.Workers
	}
	if flags.PreviewFormat != "" {
		c.PreviewFormat = flags.PreviewFormat
	}
	if flags.PreviewSize > 0 {
		c.PreviewSize = flags.PreviewSize
	}

	c.PreviewFormat = strings.ToLower(strings.TrimPrefix(c.PreviewFormat, "."))

	if c.OutputDir != "" && !filepath.IsAbs(c.OutputDir) {
		if abs, err := filepath.Abs(c.OutputDir); err == nil {
			c.OutputDir = abs
		}
	}

	if c.PreviewSize <= 0 {
		c.PreviewSize = 256
	}
	if c.Supersample <= 0 {
		c.Supersample = 2
	}
	if c.Workers <= 0 {
		c.Workers = runtime.NumCPU()
	}
}

// Validate reports settings that no tool can honor.
func (c *Config) Validate() error {
	switch c.PreviewFormat {
	case "", "webp", "tga":
	default:
		return fmt.Errorf("config: unsupported preview format %q", c.PreviewFormat)
	}
	return nil
}

// PreviewPath returns the preview image written next to output, or "" when
// no preview format is configured.
func (c *Config) PreviewPath(output string) string {
	if c.PreviewFormat == "" {
		return ""
	}
	ext := filepath.Ext(output)
	if strings.EqualFold(ext, "."+c.PreviewFormat) {
		return output + "." + c.PreviewFormat
	}
	return strings.TrimSuffix(output, ext) + "." + c.PreviewFormat
}
