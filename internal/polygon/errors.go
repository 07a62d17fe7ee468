package polygon

import (
	"fmt"

	"obj-nmdl/internal/obj"
)

// ConsistencyError reports a face whose index lists disagree in length or
// reference an element outside the attribute arrays.
type ConsistencyError struct {
	Reason string
	Face   obj.FaceRecord
}

func (e *ConsistencyError) Error() string {
	return fmt.Sprintf("polygon: %s. Face: %s", e.Reason, e.Face)
}

// UnsupportedFaceError reports a face that is neither a triangle nor a quad.
type UnsupportedFaceError struct {
	Corners int
	Face    obj.FaceRecord
}

func (e *UnsupportedFaceError) Error() string {
	return fmt.Sprintf("polygon: face with %d vertices is unsupported. Face: %s", e.Corners, e.Face)
}
