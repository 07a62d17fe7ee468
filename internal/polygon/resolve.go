package polygon

import (
	"fmt"

	"obj-nmdl/internal/obj"
)

// Resolve looks up every face corner in the document's attribute arrays and
// groups the results by arity. OBJ indices are 1-based; 0 and indices past
// the end of an array are rejected. The document is not modified.
func Resolve(doc *obj.Document) (Polygons, error) {
	soups := make(map[Arity]*Soup)

	for _, face := range doc.Faces {
		if len(face.Normal) != len(face.UV) || len(face.Normal) != len(face.Vertex) {
			return nil, &ConsistencyError{
				Reason: "sizes of face vertices, normals and UVs are different",
				Face:   face,
			}
		}

		arity, err := classify(face)
		if err != nil {
			return nil, err
		}

		s, ok := soups[arity]
		if !ok {
			s = &Soup{}
			soups[arity] = s
		}

		for i := range face.Vertex {
			vi, ti, ni := face.Vertex[i], face.UV[i], face.Normal[i]

			if !inRange(vi, len(doc.Vertices)) {
				return nil, invalidIndex("vertex", vi, face)
			}
			if !inRange(ti, len(doc.UVs)) {
				return nil, invalidIndex("UV", ti, face)
			}
			if !inRange(ni, len(doc.Normals)) {
				return nil, invalidIndex("normal", ni, face)
			}

			s.Positions = append(s.Positions, doc.Vertices[vi-1])
			s.UVs = append(s.UVs, doc.UVs[ti-1])
			s.Normals = append(s.Normals, doc.Normals[ni-1])
		}
	}

	out := make(Polygons, len(soups))
	for a, s := range soups {
		out[a] = *s
	}
	return out, nil
}

func classify(face obj.FaceRecord) (Arity, error) {
	switch n := face.Corners(); n {
	case 3:
		return Triangle, nil
	case 4:
		return Quad, nil
	default:
		return 0, &UnsupportedFaceError{Corners: n, Face: face}
	}
}

func inRange(index uint32, n int) bool {
	return index != 0 && uint64(index) <= uint64(n)
}

func invalidIndex(kind string, index uint32, face obj.FaceRecord) error {
	return &ConsistencyError{
		Reason: fmt.Sprintf("invalid %s index '%d'", kind, index),
		Face:   face,
	}
}
