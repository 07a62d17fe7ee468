package nmdl

import (
	"encoding/binary"
	"fmt"
	"os"

	"obj-nmdl/internal/polygon"
)

// ReadFile reads and decodes an NMDL file.
func ReadFile(path string) (*File, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("nmdl: read %s: %w", path, err)
	}
	f, err := Decode(raw)
	if err != nil {
		return nil, fmt.Errorf("%w (%s)", err, path)
	}
	return f, nil
}

// Decode parses an NMDL buffer. Trailing bytes after the quad block are an
// error, as is a corner word whose high halfword is neither zero nor the
// sign extension of a negative value.
func Decode(data []byte) (*File, error) {
	r := &reader{data: data}
	var f File

	for i, a := range polygon.Arities {
		count, err := r.readU32()
		if err != nil {
			return nil, fmt.Errorf("nmdl: truncated %s count", a)
		}
		if uint64(count)*recordSize > uint64(r.remaining()) {
			return nil, fmt.Errorf("nmdl: truncated %s block: %d corners declared, %d bytes left",
				a, count, r.remaining())
		}

		corners := make([]Corner, count)
		for j := range corners {
			for k := 0; k < 3; k++ {
				w, _ := r.readU32()
				v, ok := unpack(w)
				if !ok {
					return nil, fmt.Errorf("nmdl: %s corner %d: bad fixed-point word %#08x", a, j, w)
				}
				corners[j][k] = v
			}
		}
		f.Blocks[i] = Block{Arity: a, Corners: corners}
	}

	if r.remaining() != 0 {
		return nil, fmt.Errorf("nmdl: %d trailing bytes", r.remaining())
	}
	return &f, nil
}

// unpack extracts the fixed-point value from a corner word. Older writers
// sign-extended negative values into the high halfword; both forms are read.
func unpack(w uint32) (int16, bool) {
	v := int16(uint16(w))
	switch hi := w >> 16; {
	case hi == 0:
		return v, true
	case hi == 0xFFFF && v < 0:
		return v, true
	}
	return 0, false
}

type reader struct {
	data []byte
	off  int
}

func (r *reader) remaining() int {
	return len(r.data) - r.off
}

func (r *reader) readU32() (uint32, error) {
	if r.off+4 > len(r.data) {
		r.off = len(r.data)
		return 0, fmt.Errorf("nmdl: unexpected end of data")
	}
	v := binary.LittleEndian.Uint32(r.data[r.off:])
	r.off += 4
	return v, nil
}
