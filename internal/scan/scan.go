// Package scan holds the byte-level primitives the OBJ reader is built on.
// Positions are offsets into a caller-owned buffer; nothing here allocates.
package scan

import "bytes"

// NotFound is returned by FindNext when the target byte is absent.
const NotFound = -1

// FindNext returns the offset of the first target byte in buf[start:end],
// or NotFound. An empty range (start == end) is always NotFound.
func FindNext(buf []byte, start, end int, target byte) int {
	if start >= end {
		return NotFound
	}
	i := bytes.IndexByte(buf[start:end], target)
	if i < 0 {
		return NotFound
	}
	return start + i
}

// Count returns the number of target bytes in buf[start..end], end inclusive.
// The parser calls it with end pointing at the line terminator, so the
// terminator itself is examined but never matches a field delimiter.
func Count(buf []byte, start, end int, target byte) int {
	if end >= len(buf) {
		end = len(buf) - 1
	}
	n := 0
	for i := start; i <= end; i++ {
		if buf[i] == target {
			n++
		}
	}
	return n
}

// Distance returns the number of bytes between two offsets.
func Distance(start, end int) int {
	return end - start
}
