// Package flow implements lazily evaluated computation graphs over dense arrays.
//
// A graph is built from leaves (values that are already materialized) and
// operation nodes that reference their operands. Nothing is computed until
// Evaluate is called; evaluation never mutates the graph, so subgraphs can be
// shared between expressions and evaluated any number of times.
package flow

import (
	"fmt"

	"github.com/born-ml/lazor/internal/tensor"
)

// Node is a rank- and shape-bearing value that may or may not have been computed yet.
//
// Implementations: *SingleValue, *ArrayLeaf, *BinaryNode, *UnaryNode.
type Node[T any] interface {
	// Rank returns the number of axes. Operation nodes answer without evaluating.
	Rank() int

	// Shape returns the per-axis lengths. Operation nodes answer without evaluating.
	Shape() tensor.Shape

	// GetValue returns the element at coords, evaluating the node first if needed.
	GetValue(coords ...int) (T, error)

	// Evaluate reduces the node to a leaf. Leaves return themselves.
	Evaluate() (Node[T], error)

	// Evaluated reports whether the node is a leaf.
	Evaluated() bool

	reduce(e *Evaluator) (Node[T], error)
	operands() []Node[T]
}

// leaf is a node holding a materialized value.
type leaf[T any] interface {
	Node[T]
	dense() *tensor.DenseArray[T]
}

// SingleValue is a rank-0 leaf wrapping one value.
type SingleValue[T any] struct {
	value T
}

// NewSingleValue creates a rank-0 leaf.
func NewSingleValue[T any](value T) *SingleValue[T] {
	return &SingleValue[T]{value: value}
}

// Rank returns 0.
func (s *SingleValue[T]) Rank() int { return 0 }

// Shape returns an empty shape.
func (s *SingleValue[T]) Shape() tensor.Shape { return tensor.Shape{} }

// Value returns the wrapped value.
func (s *SingleValue[T]) Value() T { return s.value }

// GetValue returns the wrapped value. No coordinates are accepted.
func (s *SingleValue[T]) GetValue(coords ...int) (T, error) {
	if len(coords) != 0 {
		var zero T
		return zero, &tensor.CoordinateError{
			Coords: coords,
			Shape:  tensor.Shape{},
			Axis:   -1,
			Reason: fmt.Sprintf("want 0 coordinates, got %d", len(coords)),
		}
	}
	return s.value, nil
}

// Evaluate returns s.
func (s *SingleValue[T]) Evaluate() (Node[T], error) { return s, nil }

// Evaluated returns true.
func (s *SingleValue[T]) Evaluated() bool { return true }

func (s *SingleValue[T]) String() string { return fmt.Sprint(s.value) }

func (s *SingleValue[T]) reduce(*Evaluator) (Node[T], error) { return s, nil }
func (s *SingleValue[T]) operands() []Node[T]                { return nil }
func (s *SingleValue[T]) dense() *tensor.DenseArray[T]       { return tensor.Scalar(s.value) }

// ArrayLeaf is a leaf wrapping a sealed dense array.
type ArrayLeaf[T any] struct {
	array *tensor.DenseArray[T]
}

// Rank returns the array's rank.
func (l *ArrayLeaf[T]) Rank() int { return l.array.Rank() }

// Shape returns the array's shape.
func (l *ArrayLeaf[T]) Shape() tensor.Shape { return l.array.Shape() }

// Array returns the wrapped array. It is sealed.
func (l *ArrayLeaf[T]) Array() *tensor.DenseArray[T] { return l.array }

// GetValue returns the element at coords.
func (l *ArrayLeaf[T]) GetValue(coords ...int) (T, error) {
	return l.array.GetValue(coords...)
}

// Evaluate returns l.
func (l *ArrayLeaf[T]) Evaluate() (Node[T], error) { return l, nil }

// Evaluated returns true.
func (l *ArrayLeaf[T]) Evaluated() bool { return true }

func (l *ArrayLeaf[T]) String() string { return l.array.String() }

func (l *ArrayLeaf[T]) reduce(*Evaluator) (Node[T], error) { return l, nil }
func (l *ArrayLeaf[T]) operands() []Node[T]                { return nil }
func (l *ArrayLeaf[T]) dense() *tensor.DenseArray[T]       { return l.array }

// leafOf wraps an operation result. Rank-0 results become a SingleValue.
func leafOf[T any](a *tensor.DenseArray[T]) (Node[T], error) {
	if a.Rank() == 0 {
		v, err := a.GetValue()
		if err != nil {
			return nil, err
		}
		return NewSingleValue(v), nil
	}
	a.Seal()
	return &ArrayLeaf[T]{array: a}, nil
}
