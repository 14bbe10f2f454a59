package flow

import (
	"fmt"

	"github.com/born-ml/lazor/internal/tensor"
)

// BinaryNode is an unevaluated element-wise operation over two nodes of equal shape.
type BinaryNode[T any] struct {
	op          tensor.BinaryOp
	left, right Node[T]
}

// Op returns the operation kind.
func (n *BinaryNode[T]) Op() tensor.BinaryOp { return n.op }

// Left returns the left operand.
func (n *BinaryNode[T]) Left() Node[T] { return n.left }

// Right returns the right operand.
func (n *BinaryNode[T]) Right() Node[T] { return n.right }

// Rank returns the operands' common rank, or 0 if the left operand is nil.
func (n *BinaryNode[T]) Rank() int {
	if n.left == nil {
		return 0
	}
	return n.left.Rank()
}

// Shape returns the operands' common shape, or nil if the left operand is nil.
func (n *BinaryNode[T]) Shape() tensor.Shape {
	if n.left == nil {
		return nil
	}
	return n.left.Shape()
}

// GetValue evaluates the node and reads the element at coords.
func (n *BinaryNode[T]) GetValue(coords ...int) (T, error) {
	return getValue[T](n, coords)
}

// Evaluate computes the operation and returns a new leaf.
// The node itself is left unchanged; every call recomputes.
func (n *BinaryNode[T]) Evaluate() (Node[T], error) {
	return Evaluate[T](defaultEvaluator, n)
}

// Evaluated returns false.
func (n *BinaryNode[T]) Evaluated() bool { return false }

func (n *BinaryNode[T]) String() string {
	return fmt.Sprintf("%s(%v, %v)", n.op, n.left, n.right)
}

func (n *BinaryNode[T]) operands() []Node[T] { return []Node[T]{n.left, n.right} }

func (n *BinaryNode[T]) reduce(e *Evaluator) (Node[T], error) {
	if n.left == nil || n.right == nil {
		return nil, fmt.Errorf("flow: %s operand: %w", n.op, ErrNilNode)
	}
	left, right, err := reducePair(e, n.left, n.right)
	if err != nil {
		return nil, err
	}
	ls, rs := left.Shape(), right.Shape()
	if !ls.Equal(rs) {
		return nil, fmt.Errorf("flow: %s operands %v and %v: %w", n.op, ls, rs, tensor.ErrShapeMismatch)
	}

	result, err := tensor.Binary[T](n.op, denseOf(left), denseOf(right))
	if err != nil {
		return nil, fmt.Errorf("flow: evaluate %s: %w", n.op, err)
	}
	e.log.V(1).Info("reduced node", "op", n.op.String(), "shape", []int(ls))
	return leafOf(result)
}

// UnaryNode is an unevaluated element-wise operation over one node.
type UnaryNode[T any] struct {
	op      tensor.UnaryOp
	operand Node[T]
}

// Op returns the operation kind.
func (n *UnaryNode[T]) Op() tensor.UnaryOp { return n.op }

// Operand returns the operand.
func (n *UnaryNode[T]) Operand() Node[T] { return n.operand }

// Rank returns the operand's rank, or 0 if the operand is nil.
func (n *UnaryNode[T]) Rank() int {
	if n.operand == nil {
		return 0
	}
	return n.operand.Rank()
}

// Shape returns the operand's shape, or nil if the operand is nil.
func (n *UnaryNode[T]) Shape() tensor.Shape {
	if n.operand == nil {
		return nil
	}
	return n.operand.Shape()
}

// GetValue evaluates the node and reads the element at coords.
func (n *UnaryNode[T]) GetValue(coords ...int) (T, error) {
	return getValue[T](n, coords)
}

// Evaluate computes the operation and returns a new leaf.
func (n *UnaryNode[T]) Evaluate() (Node[T], error) {
	return Evaluate[T](defaultEvaluator, n)
}

// Evaluated returns false.
func (n *UnaryNode[T]) Evaluated() bool { return false }

func (n *UnaryNode[T]) String() string {
	return fmt.Sprintf("%s(%v)", n.op, n.operand)
}

func (n *UnaryNode[T]) operands() []Node[T] { return []Node[T]{n.operand} }

func (n *UnaryNode[T]) reduce(e *Evaluator) (Node[T], error) {
	if n.operand == nil {
		return nil, fmt.Errorf("flow: %s operand: %w", n.op, ErrNilNode)
	}
	operand, err := n.operand.reduce(e)
	if err != nil {
		return nil, err
	}
	result, err := tensor.Unary(n.op, denseOf(operand))
	if err != nil {
		return nil, fmt.Errorf("flow: evaluate %s: %w", n.op, err)
	}
	e.log.V(1).Info("reduced node", "op", n.op.String(), "shape", []int(result.Shape()))
	return leafOf(result)
}

// denseOf extracts the materialized value of an evaluated node.
func denseOf[T any](n Node[T]) *tensor.DenseArray[T] {
	return n.(leaf[T]).dense()
}

func getValue[T any](n Node[T], coords []int) (T, error) {
	evaluated, err := n.Evaluate()
	if err != nil {
		var zero T
		return zero, err
	}
	return evaluated.GetValue(coords...)
}
