package tensor

import (
	"errors"
	"fmt"
)

// Common errors.
var (
	ErrInvalidShape      = errors.New("invalid shape")
	ErrInvalidCoordinate = errors.New("invalid coordinate")
	ErrInvalidAxis       = errors.New("invalid axis")
	ErrSealed            = errors.New("array is sealed")
	ErrShapeMismatch     = errors.New("shape mismatch")
	ErrUnsupported       = errors.New("unsupported type combination")
	ErrDivisionByZero    = errors.New("integer division by zero")
)

// CoordinateError describes coordinates rejected by GetValue or SetValue.
type CoordinateError struct {
	Coords []int
	Shape  Shape
	Axis   int // -1 when the coordinate count is wrong
	Reason string
}

// Error implements the error interface.
func (e *CoordinateError) Error() string {
	if e.Axis < 0 {
		return fmt.Sprintf("%s: %v for shape %v: %s", ErrInvalidCoordinate, e.Coords, e.Shape, e.Reason)
	}
	return fmt.Sprintf("%s: %v for shape %v (axis %d): %s", ErrInvalidCoordinate, e.Coords, e.Shape, e.Axis, e.Reason)
}

// Is matches ErrInvalidCoordinate.
func (e *CoordinateError) Is(target error) bool {
	return target == ErrInvalidCoordinate
}

// UnsupportedError is the explicit outcome of an operation that has no
// arithmetic registered for the requested element types.
type UnsupportedError struct {
	Op     string
	Input  string // Go element type of the operands
	Result string // Go element type requested for the result
}

// Error implements the error interface.
func (e *UnsupportedError) Error() string {
	return fmt.Sprintf("%s: %s(%s) -> %s", ErrUnsupported, e.Op, e.Input, e.Result)
}

// Is matches ErrUnsupported.
func (e *UnsupportedError) Is(target error) bool {
	return target == ErrUnsupported
}
