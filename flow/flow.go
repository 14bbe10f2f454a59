// Copyright 2025 Born ML Framework. All rights reserved.
// Use of this source code is governed by an Apache 2.0
// license that can be found in the LICENSE file.

package flow

import (
	"github.com/born-ml/lazor/internal/flow"
	"github.com/born-ml/lazor/tensor"
	"github.com/go-logr/logr"
)

// Node is a rank- and shape-bearing value that may not have been computed yet.
//
// Example:
//
//	sum := flow.Add(flow.Constant(1), flow.Constant(41))
//	result, err := sum.Evaluate()
//	v, _ := result.GetValue() // 42
type Node[T any] = flow.Node[T]

// SingleValue is a rank-0 leaf.
type SingleValue[T any] = flow.SingleValue[T]

// ArrayLeaf is a leaf wrapping a sealed dense array.
type ArrayLeaf[T any] = flow.ArrayLeaf[T]

// BinaryNode is an unevaluated element-wise operation over two nodes.
type BinaryNode[T any] = flow.BinaryNode[T]

// UnaryNode is an unevaluated element-wise operation over one node.
type UnaryNode[T any] = flow.UnaryNode[T]

// Evaluator reduces graphs to leaves.
type Evaluator = flow.Evaluator

// Option configures an Evaluator.
type Option = flow.Option

// ErrRaggedRows is returned by ConstantMatrix for rows of different lengths.
var ErrRaggedRows = flow.ErrRaggedRows

// ErrNilNode is returned when a nil node is evaluated or used as an operand.
var ErrNilNode = flow.ErrNilNode

// Leaf constructors

// NewSingleValue creates a rank-0 leaf.
func NewSingleValue[T any](value T) *SingleValue[T] {
	return flow.NewSingleValue(value)
}

// Constant creates a rank-0 leaf holding value.
func Constant[T any](value T) Node[T] {
	return flow.Constant(value)
}

// ConstantVector creates a rank-1 leaf with shape [len(values)].
func ConstantVector[T any](values []T) Node[T] {
	return flow.ConstantVector(values)
}

// ConstantMatrix creates a rank-2 leaf where GetValue(r, c) returns rows[r][c].
//
// Example:
//
//	m, err := flow.ConstantMatrix([][]int{{1, 2, 3}, {4, 5, 6}}) // Shape: [2, 3]
func ConstantMatrix[T any](rows [][]T) (Node[T], error) {
	return flow.ConstantMatrix(rows)
}

// FromArray creates a leaf holding a sealed copy of a.
func FromArray[T any](a *tensor.DenseArray[T]) Node[T] {
	return flow.FromArray(a)
}

// Operation constructors

// Add creates an unevaluated node computing left + right.
func Add[T any](left, right Node[T]) Node[T] {
	return flow.Add(left, right)
}

// Subtract creates an unevaluated node computing left - right.
func Subtract[T any](left, right Node[T]) Node[T] {
	return flow.Subtract(left, right)
}

// Multiply creates an unevaluated node computing left * right.
func Multiply[T any](left, right Node[T]) Node[T] {
	return flow.Multiply(left, right)
}

// Divide creates an unevaluated node computing left / right.
func Divide[T any](left, right Node[T]) Node[T] {
	return flow.Divide(left, right)
}

// Negate creates an unevaluated node computing -operand.
func Negate[T any](operand Node[T]) Node[T] {
	return flow.Negate(operand)
}

// Evaluation

// NewEvaluator creates an Evaluator. By default it is sequential and does not log.
//
// Example:
//
//	e := flow.NewEvaluator(flow.WithConcurrency(true), flow.WithLogger(log))
//	result, err := flow.Evaluate(e, expr)
func NewEvaluator(opts ...Option) *Evaluator {
	return flow.NewEvaluator(opts...)
}

// WithLogger sets the logger used for evaluation traces (V(1)).
func WithLogger(log logr.Logger) Option {
	return flow.WithLogger(log)
}

// WithConcurrency evaluates the operands of binary nodes concurrently.
func WithConcurrency(enabled bool) Option {
	return flow.WithConcurrency(enabled)
}

// Evaluate reduces n to a leaf using e. A nil Evaluator uses the defaults.
func Evaluate[T any](e *Evaluator, n Node[T]) (Node[T], error) {
	return flow.Evaluate(e, n)
}

// Walk calls fn for every distinct node reachable from n, operands first.
func Walk[T any](n Node[T], fn func(Node[T])) {
	flow.Walk(n, fn)
}

// Count returns the number of distinct nodes reachable from n.
func Count[T any](n Node[T]) int {
	return flow.Count(n)
}

// Depth returns the length of the longest path from n to a leaf.
func Depth[T any](n Node[T]) int {
	return flow.Depth(n)
}
