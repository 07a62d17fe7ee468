package obj

import (
	"errors"
	"fmt"
	"math"
	"strconv"

	"obj-nmdl/internal/scan"
)

var (
	errMissingSpace = errors.New("cannot find space delimiter")
	errMissingSlash = errors.New("cannot find slash delimiter")
)

// readVector3 reads "x y z" from buf[start:end].
func readVector3(buf []byte, start, end int) (Vector3, error) {
	var f [3]float32
	if err := readFloats(buf, start, end, f[:]); err != nil {
		return Vector3{}, err
	}
	return Vector3{f[0], f[1], f[2]}, nil
}

// readVector2 reads "u v" from buf[start:end].
func readVector2(buf []byte, start, end int) (Vector2, error) {
	var f [2]float32
	if err := readFloats(buf, start, end, f[:]); err != nil {
		return Vector2{}, err
	}
	return Vector2{f[0], f[1]}, nil
}

// readFloats fills out with single-space separated floats. The last field
// runs to end.
func readFloats(buf []byte, start, end int, out []float32) error {
	p := start
	for i := range out {
		last := i == len(out)-1

		fieldEnd := end
		sp := scan.NotFound
		if !last {
			sp = scan.FindNext(buf, p, end, ' ')
			if sp != scan.NotFound {
				fieldEnd = sp
			}
		}

		v, err := parseFloat(buf[p:fieldEnd])
		if err != nil {
			return err
		}
		out[i] = v

		if last {
			break
		}
		if sp == scan.NotFound {
			return errMissingSpace
		}
		p = sp + 1
	}
	return nil
}

func parseFloat(field []byte) (float32, error) {
	v, err := strconv.ParseFloat(string(field), 32)
	if err != nil {
		return 0, fmt.Errorf("cannot convert %q to float: %w", field, err)
	}
	return float32(v), nil
}

// readFace reads "v/t/n v/t/n ..." from buf[start:end]. Corners are
// separated by exactly one space; a trailing space yields an empty corner
// and fails on the missing slash.
func readFace(buf []byte, start, end int, strict bool) (FaceRecord, error) {
	var face FaceRecord

	p := start
	for {
		cornerEnd := scan.FindNext(buf, p, end, ' ')
		last := cornerEnd == scan.NotFound
		if last {
			cornerEnd = end
		}

		s1 := scan.FindNext(buf, p, cornerEnd, '/')
		if s1 == scan.NotFound {
			return FaceRecord{}, errMissingSlash
		}
		s2 := scan.FindNext(buf, s1+1, cornerEnd, '/')
		if s2 == scan.NotFound {
			return FaceRecord{}, errMissingSlash
		}

		vi, err := parseIndex(buf[p:s1], strict)
		if err != nil {
			return FaceRecord{}, err
		}
		ti, err := parseIndex(buf[s1+1:s2], strict)
		if err != nil {
			return FaceRecord{}, err
		}
		ni, err := parseIndex(buf[s2+1:cornerEnd], strict)
		if err != nil {
			return FaceRecord{}, err
		}

		face.Vertex = append(face.Vertex, vi)
		face.UV = append(face.UV, ti)
		face.Normal = append(face.Normal, ni)

		if last {
			return face, nil
		}
		p = cornerEnd + 1
	}
}

func parseIndex(field []byte, strict bool) (uint32, error) {
	if !strict {
		return leadingIndex(field), nil
	}
	v, err := strconv.ParseUint(string(field), 10, 32)
	if err != nil {
		return 0, fmt.Errorf("invalid index %q: %w", field, err)
	}
	return uint32(v), nil
}

// leadingIndex reads the leading integer of field and ignores whatever
// follows it. No digits reads as 0, which the resolver rejects; negative
// values read as 0 too, and values past uint32 saturate.
func leadingIndex(field []byte) uint32 {
	i := 0
	for i < len(field) && (field[i] == ' ' || field[i] == '\t') {
		i++
	}

	neg := false
	if i < len(field) && (field[i] == '+' || field[i] == '-') {
		neg = field[i] == '-'
		i++
	}

	var n uint64
	for ; i < len(field) && field[i] >= '0' && field[i] <= '9'; i++ {
		if n < math.MaxUint32 {
			n = n*10 + uint64(field[i]-'0')
		}
	}

	if neg {
		return 0
	}
	if n > math.MaxUint32 {
		n = math.MaxUint32
	}
	return uint32(n)
}
