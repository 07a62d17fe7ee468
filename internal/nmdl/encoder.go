// Package nmdl writes and reads the NMDL binary mesh layout.
//
// An NMDL file is two blocks, triangles then quads. Each block is a uint32
// corner count followed by one 12-byte record per corner: x, y and z each in
// its own little-endian uint32 word, the 4.12 fixed-point value in bits 0-15
// and bits 16-31 zero. Only positions are stored.
package nmdl

import (
	"bufio"
	"bytes"
	"encoding/binary"
	"fmt"
	"io"
	"math"
	"os"

	"obj-nmdl/internal/obj"
	"obj-nmdl/internal/polygon"
)

const (
	// FractionBits is the number of fractional bits of a fixed-point value.
	FractionBits = 12
	// Scale converts between float and fixed point.
	Scale = 1 << FractionBits
	// Limit bounds the magnitude representable without wraparound.
	Limit = 8.0

	countSize  = 4
	recordSize = 12
)

// Quantize converts f to 4.12 fixed point. The product f*4096 is truncated
// toward zero and only its low 16 bits are kept, so magnitudes of 8 or more
// wrap around. NaN quantizes to 0.
func Quantize(f float32) int16 {
	v := float64(f) * Scale
	if math.IsNaN(v) || math.Abs(v) >= 1<<63 {
		return 0
	}
	return int16(int64(v))
}

// Dequantize converts a 4.12 fixed-point value back to float.
func Dequantize(v int16) float32 {
	return float32(v) / Scale
}

// RangeError reports a coordinate that cannot be stored without wraparound.
type RangeError struct {
	Value float32
}

func (e *RangeError) Error() string {
	return fmt.Sprintf("nmdl: coordinate %g outside fixed-point range (-%g, %g)", e.Value, Limit, Limit)
}

// Encoder writes polygon soups in NMDL layout.
type Encoder struct {
	// RangeCheck rejects coordinates with magnitude >= 8 instead of letting
	// them wrap.
	RangeCheck bool
}

// Size returns the encoded size of p in bytes.
func Size(p polygon.Polygons) int {
	n := 0
	for _, a := range polygon.Arities {
		n += countSize + recordSize*p.Corners(a)
	}
	return n
}

// Encode writes p to w. With RangeCheck set, every position is validated
// before the first byte is written.
func (e Encoder) Encode(w io.Writer, p polygon.Polygons) error {
	if e.RangeCheck {
		if err := checkRange(p); err != nil {
			return err
		}
	}

	bw := bufio.NewWriter(w)
	var word [4]byte
	put := func(v uint32) error {
		binary.LittleEndian.PutUint32(word[:], v)
		_, err := bw.Write(word[:])
		return err
	}

	for _, a := range polygon.Arities {
		soup := p[a]
		if err := put(uint32(len(soup.Positions))); err != nil {
			return fmt.Errorf("nmdl: write %s count: %w", a, err)
		}
		for _, pos := range soup.Positions {
			for k := 0; k < 3; k++ {
				if err := put(uint32(uint16(Quantize(pos[k])))); err != nil {
					return fmt.Errorf("nmdl: write %s corner: %w", a, err)
				}
			}
		}
	}

	if err := bw.Flush(); err != nil {
		return fmt.Errorf("nmdl: flush: %w", err)
	}
	return nil
}

func checkRange(p polygon.Polygons) error {
	for _, a := range polygon.Arities {
		for _, pos := range p[a].Positions {
			if err := checkVector(pos); err != nil {
				return err
			}
		}
	}
	return nil
}

func checkVector(v obj.Vector3) error {
	for _, c := range v {
		if !(c > -Limit && c < Limit) {
			return &RangeError{Value: c}
		}
	}
	return nil
}

// WriteFile encodes p and writes it to path. Encoding happens in memory, so
// an encoding failure leaves no file behind; a failed write removes the
// partial file.
func (e Encoder) WriteFile(path string, p polygon.Polygons) error {
	var buf bytes.Buffer
	buf.Grow(Size(p))
	if err := e.Encode(&buf, p); err != nil {
		return err
	}

	f, err := os.OpenFile(path, os.O_WRONLY|os.O_CREATE|os.O_TRUNC, 0644)
	if err != nil {
		return fmt.Errorf("nmdl: create %s: %w", path, err)
	}

	if _, err := f.Write(buf.Bytes()); err != nil {
		f.Close()
		os.Remove(path)
		return fmt.Errorf("nmdl: write %s: %w", path, err)
	}
	if err := f.Close(); err != nil {
		os.Remove(path)
		return fmt.Errorf("nmdl: close %s: %w", path, err)
	}
	return nil
}
