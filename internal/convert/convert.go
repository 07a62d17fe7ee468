// Package convert runs the OBJ to NMDL pipeline for one file: read, parse,
// resolve faces, encode and write.
package convert

import (
	"errors"
	"fmt"
	"io"
	"os"

	"obj-nmdl/internal/nmdl"
	"obj-nmdl/internal/obj"
	"obj-nmdl/internal/polygon"
	"obj-nmdl/internal/preview"
)

// IOError reports a failure to read the input or write an output file.
type IOError struct {
	Op   string // "read", "write" or "preview"
	Path string
	Err  error
}

func (e *IOError) Error() string {
	return fmt.Sprintf("convert: %s %s: %v", e.Op, e.Path, e.Err)
}

func (e *IOError) Unwrap() error {
	return e.Err
}

// Options controls one conversion.
type Options struct {
	StrictIndices bool
	RangeCheck    bool

	// Preview, when set, is the path of a .webp or .tga rendering of the
	// converted mesh, written after the NMDL file.
	Preview     string
	PreviewSize int
	Supersample int

	// Progress receives human-readable progress lines. Nil discards them.
	Progress io.Writer
}

// Stats summarizes a successful conversion.
type Stats struct {
	InputBytes int
	Vertices   int
	UVs        int
	Normals    int
	Faces      int
	Corners    map[polygon.Arity]int
	OutputSize int
}

// Run converts the OBJ file at in and writes the NMDL file to out.
// Any failure aborts the conversion and leaves no output file behind: the
// NMDL file is only created once parsing and face resolution have succeeded,
// and it is removed again if the preview cannot be written.
func Run(in, out string, opts Options) (*Stats, error) {
	logw := opts.Progress
	if logw == nil {
		logw = io.Discard
	}

	if opts.Preview != "" {
		if _, err := preview.Format(opts.Preview); err != nil {
			return nil, &IOError{Op: "preview", Path: opts.Preview, Err: err}
		}
	}

	fmt.Fprintf(logw, "Reading file: '%s'\n", in)
	data, err := os.ReadFile(in)
	if err != nil {
		return nil, &IOError{Op: "read", Path: in, Err: err}
	}
	fmt.Fprintf(logw, "File length: %d\n", len(data))

	fmt.Fprintln(logw, "Parsing...")
	doc, err := obj.Parse(data, obj.Options{StrictIndices: opts.StrictIndices})
	if err != nil {
		return nil, err
	}

	fmt.Fprintln(logw, "Got:")
	fmt.Fprintf(logw, "Vertices: '%d'\n", len(doc.Vertices))
	fmt.Fprintf(logw, "UVs: '%d'\n", len(doc.UVs))
	fmt.Fprintf(logw, "Normals: '%d'\n", len(doc.Normals))
	fmt.Fprintf(logw, "Faces: '%d'\n", len(doc.Faces))

	stats := &Stats{
		InputBytes: len(data),
		Vertices:   len(doc.Vertices),
		UVs:        len(doc.UVs),
		Normals:    len(doc.Normals),
		Faces:      len(doc.Faces),
		Corners:    make(map[polygon.Arity]int),
	}

	fmt.Fprintln(logw, "Processing faces...")
	polys, err := polygon.Resolve(doc)
	if err != nil {
		return nil, err
	}

	for _, a := range polygon.Arities {
		soup, ok := polys[a]
		if !ok {
			continue
		}
		stats.Corners[a] = len(soup.Positions)
		fmt.Fprintf(logw, "Polygon type: %s\n", a)
		fmt.Fprintf(logw, "Vertices: '%d'\n", len(soup.Positions))
		fmt.Fprintf(logw, "UVs: '%d'\n", len(soup.UVs))
		fmt.Fprintf(logw, "Normals: '%d'\n", len(soup.Normals))
	}

	fmt.Fprintf(logw, "Writing to file '%s'\n", out)
	enc := nmdl.Encoder{RangeCheck: opts.RangeCheck}
	if err := enc.WriteFile(out, polys); err != nil {
		var re *nmdl.RangeError
		if errors.As(err, &re) {
			return nil, err
		}
		return nil, &IOError{Op: "write", Path: out, Err: err}
	}
	stats.OutputSize = nmdl.Size(polys)

	if opts.Preview != "" {
		fmt.Fprintf(logw, "Rendering preview '%s'\n", opts.Preview)
		img := preview.Render(polys, preview.Options{Size: opts.PreviewSize, Supersample: opts.Supersample})
		if err := preview.Write(opts.Preview, img); err != nil {
			os.Remove(out)
			return nil, &IOError{Op: "preview", Path: opts.Preview, Err: err}
		}
	}

	fmt.Fprintln(logw, "Done!")
	return stats, nil
}
