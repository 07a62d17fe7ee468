// Package preview renders a converted mesh to a small image file for quick
// visual inspection.
package preview

import (
	"fmt"
	"image"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/HugoSmits86/nativewebp"
	"github.com/ftrvxmtrx/tga"

	"obj-nmdl/internal/polygon"
	"obj-nmdl/internal/raster"
)

// Options controls preview rendering.
type Options struct {
	Size        int // output edge length in pixels, default 256
	Supersample int // render scale before downsampling, default 2
}

// Render rasterizes p and downsamples it to the requested size.
func Render(p polygon.Polygons, opts Options) *image.NRGBA {
	if opts.Size <= 0 {
		opts.Size = 256
	}
	if opts.Supersample <= 0 {
		opts.Supersample = 2
	}

	img := raster.RenderPolygons(p, opts.Size, opts.Supersample)
	if opts.Supersample > 1 {
		img = Downsample(img, opts.Size)
	}
	return img
}

// Format returns the image format implied by a file name: "webp" or "tga".
func Format(path string) (string, error) {
	switch ext := strings.ToLower(filepath.Ext(path)); ext {
	case ".webp":
		return "webp", nil
	case ".tga":
		return "tga", nil
	default:
		return "", fmt.Errorf("preview: unsupported image extension %q", ext)
	}
}

// Encode writes img to w in the given format.
func Encode(w io.Writer, img image.Image, format string) error {
	switch format {
	case "webp":
		if err := nativewebp.Encode(w, img, nil); err != nil {
			return fmt.Errorf("preview: webp encode: %w", err)
		}
	case "tga":
		if err := tga.Encode(w, img); err != nil {
			return fmt.Errorf("preview: tga encode: %w", err)
		}
	default:
		return fmt.Errorf("preview: unsupported format %q", format)
	}
	return nil
}

// Write encodes img to path, choosing the format from the extension.
func Write(path string, img image.Image) error {
	format, err := Format(path)
	if err != nil {
		return err
	}

	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("preview: create %s: %w", path, err)
	}

	if err := Encode(f, img, format); err != nil {
		f.Close()
		os.Remove(path)
		return err
	}
	if err := f.Close(); err != nil {
		return fmt.Errorf("preview: close %s: %w", path, err)
	}
	return nil
}
