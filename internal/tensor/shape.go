package tensor

import (
	"fmt"
	"math"
)

// Shape represents the dimensions of an array.
type Shape []int

// NumElements returns the total number of elements described by the shape.
func (s Shape) NumElements() int {
	if len(s) == 0 {
		return 1 // Scalar has 1 element
	}
	n := 1
	for _, dim := range s {
		n *= dim
	}
	return n
}

// Validate checks that no dimension is negative and that the element count fits in an int.
// Zero-length axes are allowed.
func (s Shape) Validate() error {
	for i, dim := range s {
		if dim < 0 {
			return fmt.Errorf("%w: dimension at index %d is %d", ErrInvalidShape, i, dim)
		}
	}
	n := 1
	for _, dim := range s {
		if dim == 0 {
			return nil
		}
		if n > math.MaxInt/dim {
			return fmt.Errorf("%w: %v has more elements than fit in an int", ErrInvalidShape, []int(s))
		}
		n *= dim
	}
	return nil
}

// Equal checks if two shapes are equal.
func (s Shape) Equal(other Shape) bool {
	if len(s) != len(other) {
		return false
	}
	for i := range s {
		if s[i] != other[i] {
			return false
		}
	}
	return true
}

// Clone returns a copy of the shape.
func (s Shape) Clone() Shape {
	clone := make(Shape, len(s))
	copy(clone, s)
	return clone
}

// Strides calculates the element strides for the shape.
//
// The first axis varies fastest: stride[0] = 1 and
// stride[k] = stride[k-1] * shape[k-1]. Matrix constants rely on this
// mapping between coordinates and buffer positions.
func (s Shape) Strides() []int {
	strides := make([]int, len(s))
	multiplier := 1
	for k := range s {
		strides[k] = multiplier
		multiplier *= s[k]
	}
	return strides
}

// Offset converts coordinates into a linear buffer position.
// Coordinates must already be validated against the shape.
func (s Shape) Offset(coords []int) int {
	multiplier := 1
	position := 0
	for k := range s {
		position += multiplier * coords[k]
		multiplier *= s[k]
	}
	return position
}

// checkCoords validates coordinates against the shape.
func (s Shape) checkCoords(coords []int) error {
	if len(coords) != len(s) {
		return &CoordinateError{Coords: coords, Shape: s, Axis: -1, Reason: fmt.Sprintf("want %d coordinates, got %d", len(s), len(coords))}
	}
	for axis, c := range coords {
		if c < 0 {
			return &CoordinateError{Coords: coords, Shape: s, Axis: axis, Reason: "negative coordinate"}
		}
		if c >= s[axis] {
			return &CoordinateError{Coords: coords, Shape: s, Axis: axis, Reason: "coordinate out of range"}
		}
	}
	return nil
}
