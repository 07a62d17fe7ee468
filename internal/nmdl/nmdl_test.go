package nmdl

import (
	"bytes"
	"encoding/binary"
	"errors"
	"math"
	"os"
	"path/filepath"
	"testing"

	"obj-nmdl/internal/obj"
	"obj-nmdl/internal/polygon"
)

func TestQuantize(t *testing.T) {
	tests := []struct {
		in   float32
		want int16
	}{
		{2.5, 10240},
		{-1.0, -4096},
		{0, 0},
		{1.0 / 4096, 1},
		{-1.0 / 4096, -1},
		{0.00012, 0},    // 0.49 -> 0
		{-0.00036, -1},  // -1.47 -> -1
		{7.9997, 32766}, // truncated, not rounded
		{8.0, -32768},   // wraps
		{-8.0, -32768},
		{9.0, -28672},
		{float32(math.NaN()), 0},
	}

	for _, tt := range tests {
		if got := Quantize(tt.in); got != tt.want {
			t.Errorf("Quantize(%v) = %d, want %d", tt.in, got, tt.want)
		}
	}
}

func TestQuantizeIdempotent(t *testing.T) {
	for f := float32(-7.99); f < 8; f += 0.0371 {
		q := Quantize(f)
		if again := Quantize(Dequantize(q)); again != q {
			t.Fatalf("Quantize(Dequantize(%d)) = %d for f=%v", q, again, f)
		}
	}
}

func triangleSoup() polygon.Polygons {
	return polygon.Polygons{
		polygon.Triangle: {
			Positions: []obj.Vector3{{2.5, -1, 0}, {1, 2, 3}, {0.5, 0.25, -0.125}},
			UVs:       make([]obj.Vector2, 3),
			Normals:   make([]obj.Vector3, 3),
		},
	}
}

func TestEncodeLayout(t *testing.T) {
	var buf bytes.Buffer
	if err := (Encoder{}).Encode(&buf, triangleSoup()); err != nil {
		t.Fatalf("Encode failed: %v", err)
	}

	data := buf.Bytes()
	if len(data) != 4+3*12+4 {
		t.Fatalf("Expected %d bytes, got %d", 4+3*12+4, len(data))
	}
	if len(data) != Size(triangleSoup()) {
		t.Errorf("Size() = %d, encoded %d", Size(triangleSoup()), len(data))
	}

	if c := binary.LittleEndian.Uint32(data[0:4]); c != 3 {
		t.Errorf("Expected triangle count 3, got %d", c)
	}

	// First corner: (2.5, -1, 0) with the high halfword cleared.
	want := []uint32{10240, 0xF000, 0}
	for k, w := range want {
		got := binary.LittleEndian.Uint32(data[4+k*4:])
		if got != w {
			t.Errorf("word %d: expected %#08x, got %#08x", k, w, got)
		}
	}

	if c := binary.LittleEndian.Uint32(data[len(data)-4:]); c != 0 {
		t.Errorf("Expected quad count 0, got %d", c)
	}
}

func TestEncodeEmpty(t *testing.T) {
	var buf bytes.Buffer
	if err := (Encoder{}).Encode(&buf, nil); err != nil {
		t.Fatalf("Encode failed: %v", err)
	}
	if !bytes.Equal(buf.Bytes(), make([]byte, 8)) {
		t.Errorf("Expected two zero counts, got %x", buf.Bytes())
	}
}

func TestEncodeRangeCheck(t *testing.T) {
	p := triangleSoup()
	p[polygon.Triangle].Positions[1] = obj.Vector3{1, 8, 0}

	var buf bytes.Buffer
	if err := (Encoder{}).Encode(&buf, p); err != nil {
		t.Fatalf("Encode without range check failed: %v", err)
	}

	buf.Reset()
	err := Encoder{RangeCheck: true}.Encode(&buf, p)
	var re *RangeError
	if !errors.As(err, &re) {
		t.Fatalf("Expected *RangeError, got %v", err)
	}
	if re.Value != 8 {
		t.Errorf("Expected value 8, got %v", re.Value)
	}
	if buf.Len() != 0 {
		t.Errorf("Expected nothing written, got %d bytes", buf.Len())
	}
}

func TestRoundTrip(t *testing.T) {
	p := triangleSoup()
	p[polygon.Quad] = polygon.Soup{
		Positions: []obj.Vector3{{-7.5, 0, 1}, {1, 1, 1}, {0, -0.5, 3}, {6, 6, 6}, {0, 0, 0}, {1, 0, 0}, {0, 1, 0}, {0, 0, 1}},
	}

	var buf bytes.Buffer
	if err := (Encoder{}).Encode(&buf, p); err != nil {
		t.Fatalf("Encode failed: %v", err)
	}

	f, err := Decode(buf.Bytes())
	if err != nil {
		t.Fatalf("Decode failed: %v", err)
	}

	for _, a := range polygon.Arities {
		b := f.Block(a)
		if len(b.Corners) != p.Corners(a) {
			t.Errorf("%s: expected %d corners, got %d", a, p.Corners(a), len(b.Corners))
		}
		if b.Faces() != p.Faces(a) {
			t.Errorf("%s: expected %d faces, got %d", a, p.Faces(a), b.Faces())
		}
		for i, c := range b.Corners {
			pos := p[a].Positions[i]
			for k := 0; k < 3; k++ {
				if c[k] != Quantize(pos[k]) {
					t.Errorf("%s corner %d[%d]: expected %d, got %d", a, i, k, Quantize(pos[k]), c[k])
				}
			}
		}
	}
}

func TestDecodeErrors(t *testing.T) {
	word := func(vals ...uint32) []byte {
		var out []byte
		for _, v := range vals {
			out = binary.LittleEndian.AppendUint32(out, v)
		}
		return out
	}

	tests := []struct {
		name string
		data []byte
	}{
		{"empty", nil},
		{"missing quad count", word(0)},
		{"truncated block", word(1, 1, 2)},
		{"bad high halfword", word(1, 0x00010001, 0, 0, 0)},
		{"sign extension on positive", word(1, 0xFFFF0001, 0, 0, 0)},
		{"trailing bytes", append(word(0, 0), 1)},
	}

	for _, tt := range tests {
		if _, err := Decode(tt.data); err == nil {
			t.Errorf("%s: expected error", tt.name)
		}
	}
}

func TestDecodeSignExtended(t *testing.T) {
	var data []byte
	for _, v := range []uint32{1, 0xFFFFF000, 10240, 0, 0} {
		data = binary.LittleEndian.AppendUint32(data, v)
	}

	f, err := Decode(data)
	if err != nil {
		t.Fatalf("Decode failed: %v", err)
	}
	c := f.Block(polygon.Triangle).Corners[0]
	if c != (Corner{-4096, 10240, 0}) {
		t.Errorf("Expected (-4096, 10240, 0), got %v", c)
	}
}

func TestWriteFile(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "out.nmdl")

	if err := (Encoder{}).WriteFile(path, triangleSoup()); err != nil {
		t.Fatalf("WriteFile failed: %v", err)
	}

	f, err := ReadFile(path)
	if err != nil {
		t.Fatalf("ReadFile failed: %v", err)
	}
	if len(f.Block(polygon.Triangle).Corners) != 3 || len(f.Block(polygon.Quad).Corners) != 0 {
		t.Errorf("Unexpected blocks: %+v", f.Blocks)
	}
}

func TestWriteFileOpenFailure(t *testing.T) {
	path := filepath.Join(t.TempDir(), "missing", "out.nmdl")
	if err := (Encoder{}).WriteFile(path, triangleSoup()); err == nil {
		t.Fatal("Expected error for missing directory")
	}
}

func TestWriteFileRangeErrorLeavesNoFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "out.nmdl")
	p := triangleSoup()
	p[polygon.Triangle].Positions[0] = obj.Vector3{100, 0, 0}

	if err := (Encoder{RangeCheck: true}).WriteFile(path, p); err == nil {
		t.Fatal("Expected range error")
	}
	if _, err := os.Stat(path); !os.IsNotExist(err) {
		t.Errorf("Expected no output file, stat returned %v", err)
	}
}
