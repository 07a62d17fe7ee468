// Package obj reads the subset of Wavefront OBJ used by the converter:
// v, vt, vn and f lines. Every line, the last one included, must end in '\n'.
package obj

import "obj-nmdl/internal/scan"

// Parse reads an OBJ buffer and returns its attribute arrays and faces.
// The first malformed line aborts parsing with a *SyntaxError; lines with an
// unknown prefix are skipped.
func Parse(data []byte, opts Options) (*Document, error) {
	doc := &Document{}

	p := 0
	end := len(data)
	line := 1

	for p < end {
		newline := scan.FindNext(data, p, end, '\n')
		if newline == scan.NotFound {
			return nil, &SyntaxError{Line: line, Reason: "cannot find newline"}
		}

		// Tolerate CRLF line endings.
		lineEnd := newline
		if lineEnd > p && data[lineEnd-1] == '\r' {
			lineEnd--
		}

		d := scan.Distance(p, lineEnd)

		switch {
		case d > 2 && data[p] == 'v' && data[p+1] == ' ':
			if scan.Count(data, p, lineEnd, ' ') != 3 {
				return nil, &SyntaxError{Line: line, Reason: "vertex entry doesn't match syntax"}
			}
			v, err := readVector3(data, p+2, lineEnd)
			if err != nil {
				return nil, &SyntaxError{Line: line, Reason: "cannot read vertex", Err: err}
			}
			doc.Vertices = append(doc.Vertices, v)

		case d > 3 && data[p] == 'v' && data[p+1] == 't' && data[p+2] == ' ':
			if scan.Count(data, p, lineEnd, ' ') != 2 {
				return nil, &SyntaxError{Line: line, Reason: "UV entry doesn't match syntax"}
			}
			uv, err := readVector2(data, p+3, lineEnd)
			if err != nil {
				return nil, &SyntaxError{Line: line, Reason: "cannot read UV", Err: err}
			}
			doc.UVs = append(doc.UVs, uv)

		case d > 3 && data[p] == 'v' && data[p+1] == 'n' && data[p+2] == ' ':
			if scan.Count(data, p, lineEnd, ' ') != 3 {
				return nil, &SyntaxError{Line: line, Reason: "normal entry doesn't match syntax"}
			}
			n, err := readVector3(data, p+3, lineEnd)
			if err != nil {
				return nil, &SyntaxError{Line: line, Reason: "cannot read normal", Err: err}
			}
			doc.Normals = append(doc.Normals, n)

		case d > 2 && data[p] == 'f' && data[p+1] == ' ':
			face, err := readFace(data, p+2, lineEnd, opts.StrictIndices)
			if err != nil {
				return nil, &SyntaxError{Line: line, Reason: "cannot read face", Err: err}
			}
			doc.Faces = append(doc.Faces, face)
		}

		p = newline + 1
		line++
	}

	return doc, nil
}
