// Copyright 2025 Born ML Framework. All rights reserved.
// Use of this source code is governed by an Apache 2.0
// license that can be found in the LICENSE file.

package tensor

import (
	"github.com/born-ml/lazor/internal/parallel"
	"github.com/born-ml/lazor/internal/tensor"
)

// Type aliases for public API

// DenseArray is a dense N-dimensional array of elements of type T.
//
// Arrays support element access via GetValue/SetValue, one-way sealing via
// Seal, and element-wise Add, Subtract, Multiply, Divide and Negate.
//
// Example:
//
//	a := tensor.VectorOf(1, 2)
//	b := tensor.VectorOf(10, 20)
//	c, err := a.Add(b) // [11 22]
type DenseArray[T any] = tensor.DenseArray[T]

// Shape represents the dimensions of an array.
// Example: Shape{2, 3} represents a matrix with 2 rows and 3 columns.
type Shape = tensor.Shape

// DataType represents the runtime element type of an array.
type DataType = tensor.DataType

// Data type constants.
const (
	Invalid DataType = tensor.Invalid
	Int     DataType = tensor.Int
	Int8    DataType = tensor.Int8
	Int16   DataType = tensor.Int16
	Int32   DataType = tensor.Int32
	Int64   DataType = tensor.Int64
	Uint8   DataType = tensor.Uint8
	Uint16  DataType = tensor.Uint16
	Uint32  DataType = tensor.Uint32
	Uint64  DataType = tensor.Uint64
	Float32 DataType = tensor.Float32
	Float64 DataType = tensor.Float64
)

// Numeric is the constraint satisfied by element types with arithmetic.
type Numeric = tensor.Numeric

// BinaryOp identifies an element-wise binary operation.
type BinaryOp = tensor.BinaryOp

// Binary operations.
const (
	OpAdd BinaryOp = tensor.OpAdd
	OpSub BinaryOp = tensor.OpSub
	OpMul BinaryOp = tensor.OpMul
	OpDiv BinaryOp = tensor.OpDiv
)

// UnaryOp identifies an element-wise unary operation.
type UnaryOp = tensor.UnaryOp

// OpNeg negates every element.
const OpNeg UnaryOp = tensor.OpNeg

// CoordinateError describes coordinates rejected by GetValue or SetValue.
type CoordinateError = tensor.CoordinateError

// UnsupportedError is returned when no arithmetic matches the requested element types.
type UnsupportedError = tensor.UnsupportedError

// ParallelConfig controls how element loops are split across goroutines.
type ParallelConfig = parallel.Config

// Errors returned by array operations. Match them with errors.Is.
var (
	ErrInvalidShape      = tensor.ErrInvalidShape
	ErrInvalidCoordinate = tensor.ErrInvalidCoordinate
	ErrInvalidAxis       = tensor.ErrInvalidAxis
	ErrSealed            = tensor.ErrSealed
	ErrShapeMismatch     = tensor.ErrShapeMismatch
	ErrUnsupported       = tensor.ErrUnsupported
	ErrDivisionByZero    = tensor.ErrDivisionByZero
)

// Creation functions

// NewArray creates an array with the given shape.
//
// Example:
//
//	a, err := tensor.NewArray[float64](2, 3)
func NewArray[T any](shape ...int) (*DenseArray[T], error) {
	return tensor.NewArray[T](shape...)
}

// NewVector creates a rank-1 array of the given length.
func NewVector[T any](length int) (*DenseArray[T], error) {
	return tensor.NewVector[T](length)
}

// VectorOf creates a rank-1 array holding a copy of values.
func VectorOf[T any](values ...T) *DenseArray[T] {
	return tensor.VectorOf(values...)
}

// Scalar creates a rank-0 array holding value.
func Scalar[T any](value T) *DenseArray[T] {
	return tensor.Scalar(value)
}

// Full creates an array with every element set to value.
func Full[T any](shape Shape, value T) (*DenseArray[T], error) {
	return tensor.Full(shape, value)
}

// DataTypeOf returns the runtime type tag for T.
func DataTypeOf[T any]() DataType {
	return tensor.DataTypeOf[T]()
}

// Arithmetic functions

// Binary applies op element-wise and returns an array of element type S.
// Unsupported (T, S) combinations return nil and an error matching ErrUnsupported.
func Binary[S, T any](op BinaryOp, a, b *DenseArray[T]) (*DenseArray[S], error) {
	return tensor.Binary[S](op, a, b)
}

// Unary applies op element-wise.
func Unary[T any](op UnaryOp, a *DenseArray[T]) (*DenseArray[T], error) {
	return tensor.Unary(op, a)
}

// Add returns a + b as an array of element type S.
//
// Example:
//
//	sum, err := tensor.Add[int](a, b)
//	_, err = tensor.Add[string](a, b) // errors.Is(err, tensor.ErrUnsupported)
func Add[S, T any](a, b *DenseArray[T]) (*DenseArray[S], error) {
	return tensor.Add[S](a, b)
}

// Subtract returns a - b as an array of element type S.
func Subtract[S, T any](a, b *DenseArray[T]) (*DenseArray[S], error) {
	return tensor.Subtract[S](a, b)
}

// Multiply returns a * b as an array of element type S.
func Multiply[S, T any](a, b *DenseArray[T]) (*DenseArray[S], error) {
	return tensor.Multiply[S](a, b)
}

// Divide returns a / b as an array of element type S.
func Divide[S, T any](a, b *DenseArray[T]) (*DenseArray[S], error) {
	return tensor.Divide[S](a, b)
}

// Negate returns -a.
func Negate[T any](a *DenseArray[T]) (*DenseArray[T], error) {
	return tensor.Negate(a)
}

// Configuration

// DefaultParallelConfig returns the CPU-count based defaults.
func DefaultParallelConfig() ParallelConfig {
	return parallel.DefaultConfig()
}

// SetParallelConfig replaces the configuration used by element loops.
// It must not be called while operations are running.
func SetParallelConfig(cfg ParallelConfig) {
	tensor.SetKernelConfig(cfg)
}

// GetParallelConfig returns the configuration used by element loops.
func GetParallelConfig() ParallelConfig {
	return tensor.KernelConfig()
}
