package obj

import (
	"strconv"
	"strings"

	"github.com/go-gl/mathgl/mgl32"
)

// Vector3 is a position or normal.
type Vector3 = mgl32.Vec3

// Vector2 is a texture coordinate.
type Vector2 = mgl32.Vec2

// FaceRecord holds the 1-based index triples of one polygon, one entry per
// corner in file order. The three slices have equal length in a valid face.
type FaceRecord struct {
	Vertex []uint32
	UV     []uint32
	Normal []uint32
}

// Corners returns the number of corners read from the face line.
func (f FaceRecord) Corners() int {
	return len(f.Vertex)
}

// String renders the index lists for error messages.
func (f FaceRecord) String() string {
	var sb strings.Builder
	writeList := func(name string, idx []uint32) {
		sb.WriteString(name)
		sb.WriteString(" indices '")
		for i, v := range idx {
			if i > 0 {
				sb.WriteByte(' ')
			}
			sb.WriteString(strconv.FormatUint(uint64(v), 10))
		}
		sb.WriteString("'")
	}
	writeList("vertex", f.Vertex)
	sb.WriteString("; ")
	writeList("uv", f.UV)
	sb.WriteString("; ")
	writeList("normal", f.Normal)
	return sb.String()
}

// Document holds the attribute arrays and faces of one OBJ file.
type Document struct {
	Vertices []Vector3
	UVs      []Vector2
	Normals  []Vector3
	Faces    []FaceRecord
}

// Options controls parsing.
type Options struct {
	// StrictIndices rejects face index fields that are not a plain run of
	// decimal digits. By default a field is read up to its first non-digit.
	StrictIndices bool
}
