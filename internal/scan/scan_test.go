package scan

import "testing"

func TestFindNext(t *testing.T) {
	buf := []byte("v 1 2 3\n")

	tests := []struct {
		start, end int
		target     byte
		want       int
	}{
		{0, len(buf), ' ', 1},
		{2, len(buf), ' ', 3},
		{0, len(buf), '\n', 7},
		{0, 7, '\n', NotFound},
		{4, 4, '2', NotFound},
		{0, len(buf), '/', NotFound},
	}

	for _, tt := range tests {
		got := FindNext(buf, tt.start, tt.end, tt.target)
		if got != tt.want {
			t.Errorf("FindNext(%d, %d, %q) = %d, want %d", tt.start, tt.end, tt.target, got, tt.want)
		}
	}
}

func TestCountInclusive(t *testing.T) {
	buf := []byte("vt 0.1 0.2 \n")

	// The closing position is part of the range.
	if got := Count(buf, 0, 10, ' '); got != 3 {
		t.Errorf("Count(0, 10) = %d, want 3", got)
	}
	if got := Count(buf, 0, 9, ' '); got != 2 {
		t.Errorf("Count(0, 9) = %d, want 2", got)
	}
	if got := Count(buf, 0, 11, ' '); got != 3 {
		t.Errorf("Count(0, 11) = %d, want 3", got)
	}
	if got := Count(buf, 0, 100, '\n'); got != 1 {
		t.Errorf("Count past end = %d, want 1", got)
	}
	if got := Count(nil, 0, 0, ' '); got != 0 {
		t.Errorf("Count(nil) = %d, want 0", got)
	}
}

func TestDistance(t *testing.T) {
	if d := Distance(3, 10); d != 7 {
		t.Errorf("Expected 7, got %d", d)
	}
	if d := Distance(5, 5); d != 0 {
		t.Errorf("Expected 0, got %d", d)
	}
}
