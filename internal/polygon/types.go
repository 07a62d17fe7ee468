// Package polygon resolves OBJ face records into per-arity polygon soups.
package polygon

import "obj-nmdl/internal/obj"

// Arity classifies a face by its corner count.
type Arity int

const (
	Triangle Arity = 3
	Quad     Arity = 4
)

// Arities lists the supported arities in output order.
var Arities = [...]Arity{Triangle, Quad}

// Corners returns the number of corners of one face of this arity.
func (a Arity) Corners() int {
	return int(a)
}

func (a Arity) String() string {
	switch a {
	case Triangle:
		return "Triangle"
	case Quad:
		return "Quad"
	}
	return "error"
}

// Soup holds resolved attributes, one entry per corner, grouped face by face
// in the order the faces appear in the file.
type Soup struct {
	Positions []obj.Vector3
	UVs       []obj.Vector2
	Normals   []obj.Vector3
}

// Polygons maps each arity present in a document to its soup.
type Polygons map[Arity]Soup

// Corners returns the number of corners stored for arity a, 0 if absent.
func (p Polygons) Corners(a Arity) int {
	return len(p[a].Positions)
}

// Faces returns the number of faces of arity a.
func (p Polygons) Faces(a Arity) int {
	return p.Corners(a) / a.Corners()
}
