package flow

import (
	"fmt"

	"github.com/born-ml/lazor/internal/tensor"
	"go.uber.org/multierr"
)

// Constant creates a rank-0 leaf holding value.
//
// Example:
//
//	n := flow.Constant(42)
//	v, _ := n.GetValue() // 42
func Constant[T any](value T) Node[T] {
	return NewSingleValue(value)
}

// ConstantVector creates a rank-1 leaf with shape [len(values)].
// Element i of values is read back at coordinate (i). The values are copied.
func ConstantVector[T any](values []T) Node[T] {
	a := tensor.VectorOf(values...)
	a.Seal()
	return &ArrayLeaf[T]{array: a}
}

// ConstantMatrix creates a rank-2 leaf from rows of equal length.
// The result has shape [len(rows), len(rows[0])] and GetValue(r, c) returns rows[r][c].
//
// Rows of different lengths fail with ErrRaggedRows; every offending row is reported.
func ConstantMatrix[T any](rows [][]T) (Node[T], error) {
	cols := 0
	if len(rows) > 0 {
		cols = len(rows[0])
	}

	var err error
	for r, row := range rows {
		if len(row) != cols {
			err = multierr.Append(err, fmt.Errorf("row %d has %d columns, want %d: %w", r, len(row), cols, ErrRaggedRows))
		}
	}
	if err != nil {
		return nil, fmt.Errorf("flow: constant matrix: %w", err)
	}

	a, err := tensor.NewArray[T](len(rows), cols)
	if err != nil {
		return nil, err
	}
	for r, row := range rows {
		for c, v := range row {
			if err := a.SetValue(v, r, c); err != nil {
				return nil, err
			}
		}
	}
	a.Seal()
	return &ArrayLeaf[T]{array: a}, nil
}

// FromArray creates a leaf holding a sealed copy of a.
// Later writes to a do not affect the leaf.
func FromArray[T any](a *tensor.DenseArray[T]) Node[T] {
	c := a.CloneWithNewValues(a.Values())
	c.Seal()
	return &ArrayLeaf[T]{array: c}
}

// Add creates an unevaluated node computing left + right.
// Both operands must have the same shape when evaluated; a nil operand fails
// evaluation with ErrNilNode.
//
// Example:
//
//	sum := flow.Add(flow.Constant(1), flow.Constant(41))
//	result, _ := sum.Evaluate()
//	v, _ := result.GetValue() // 42
func Add[T any](left, right Node[T]) Node[T] {
	return binary(tensor.OpAdd, left, right)
}

// Subtract creates an unevaluated node computing left - right.
func Subtract[T any](left, right Node[T]) Node[T] {
	return binary(tensor.OpSub, left, right)
}

// Multiply creates an unevaluated node computing left * right.
func Multiply[T any](left, right Node[T]) Node[T] {
	return binary(tensor.OpMul, left, right)
}

// Divide creates an unevaluated node computing left / right.
func Divide[T any](left, right Node[T]) Node[T] {
	return binary(tensor.OpDiv, left, right)
}

// Negate creates an unevaluated node computing -operand.
func Negate[T any](operand Node[T]) Node[T] {
	return &UnaryNode[T]{op: tensor.OpNeg, operand: operand}
}

func binary[T any](op tensor.BinaryOp, left, right Node[T]) Node[T] {
	return &BinaryNode[T]{op: op, left: left, right: right}
}
