// Copyright 2025 Born ML Framework. All rights reserved.
// Use of this source code is governed by an Apache 2.0
// license that can be found in the LICENSE file.

// Package tensor provides an eagerly evaluated dense N-dimensional array.
//
// # Overview
//
// DenseArray[T] owns a flat element buffer and a shape. The package provides:
//   - Element access by coordinates (GetValue, SetValue)
//   - One-way sealing that rejects further writes
//   - Element-wise Add, Subtract, Multiply, Divide and Negate
//
// # Basic Usage
//
//	import "github.com/born-ml/lazor/tensor"
//
//	func main() {
//	    a, _ := tensor.NewArray[int](2)
//	    _ = a.SetValue(1, 0)
//	    _ = a.SetValue(2, 1)
//
//	    b := tensor.VectorOf(10, 20)
//	    c, _ := a.Add(b) // [11 22]
//	}
//
// # Storage Order
//
// Coordinates map to buffer positions with the first axis varying fastest:
// offset = c0 + c1*shape[0] + c2*shape[0]*shape[1] + ...
//
// # Supported Data Types
//
// Arithmetic is registered for int, int8, int16, int32, int64, uint8, uint16,
// uint32, uint64, float32 and float64. Arrays of other element types can be
// created and indexed, but arithmetic on them returns an error matching
// ErrUnsupported and a nil array. The same happens when the requested result
// type differs from the operand type:
//
//	_, err := tensor.Add[string](a, b) // errors.Is(err, tensor.ErrUnsupported)
//
// # Errors
//
// Negative or out-of-range coordinates fail with ErrInvalidCoordinate, writes
// to a sealed array with ErrSealed, operands of different shapes with
// ErrShapeMismatch, and integer division by zero with ErrDivisionByZero.
package tensor
