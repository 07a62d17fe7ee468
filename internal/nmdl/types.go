package nmdl

import "obj-nmdl/internal/polygon"

// Corner holds one position in 4.12 fixed point.
type Corner [3]int16

// Block holds the corners written for one arity.
type Block struct {
	Arity   polygon.Arity
	Corners []Corner
}

// Faces returns the number of whole faces in the block.
func (b Block) Faces() int {
	return len(b.Corners) / b.Arity.Corners()
}

// File is a decoded NMDL file: a triangle block followed by a quad block.
type File struct {
	Blocks [len(polygon.Arities)]Block
}

// Block returns the block for arity a.
func (f *File) Block(a polygon.Arity) Block {
	for _, b := range f.Blocks {
		if b.Arity == a {
			return b
		}
	}
	return Block{Arity: a}
}
