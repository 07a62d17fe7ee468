package obj

import "fmt"

// SyntaxError reports the first malformed line of an OBJ file.
type SyntaxError struct {
	Line   int    // 1-based
	Reason string // e.g. "cannot read vertex"
	Err    error  // underlying reader failure, may be nil
}

func (e *SyntaxError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("obj: line %d: %s: %v", e.Line, e.Reason, e.Err)
	}
	return fmt.Sprintf("obj: line %d: %s", e.Line, e.Reason)
}

func (e *SyntaxError) Unwrap() error {
	return e.Err
}
