package tensor

import (
	"fmt"

	"github.com/born-ml/lazor/internal/parallel"
)

// BinaryOp identifies an element-wise binary operation.
type BinaryOp int

// Supported binary operations.
const (
	OpAdd BinaryOp = iota
	OpSub
	OpMul
	OpDiv
)

// String returns the operation name.
func (op BinaryOp) String() string {
	switch op {
	case OpAdd:
		return "add"
	case OpSub:
		return "sub"
	case OpMul:
		return "mul"
	case OpDiv:
		return "div"
	default:
		return fmt.Sprintf("BinaryOp(%d)", int(op))
	}
}

// UnaryOp identifies an element-wise unary operation.
type UnaryOp int

// Supported unary operations.
const (
	OpNeg UnaryOp = iota
)

// String returns the operation name.
func (op UnaryOp) String() string {
	if op == OpNeg {
		return "neg"
	}
	return fmt.Sprintf("UnaryOp(%d)", int(op))
}

// kernelConfig controls how element loops are split across goroutines.
var kernelConfig = func() parallel.Config {
	cfg := parallel.DefaultConfig()
	cfg.MinChunkSize = 4096
	return cfg
}()

// SetKernelConfig replaces the parallel configuration used by element loops.
// It is not safe to call while operations are running.
func SetKernelConfig(cfg parallel.Config) {
	kernelConfig = cfg
}

// KernelConfig returns the parallel configuration used by element loops.
func KernelConfig() parallel.Config {
	return kernelConfig
}

// Binary applies op element-wise to a and b and returns an array of element type S.
//
// When no arithmetic is registered for T producing S, the result is nil and the
// error is an *UnsupportedError matching ErrUnsupported. Operands must share
// the same shape.
//
// Example:
//
//	sum, err := tensor.Binary[int](tensor.OpAdd, a, b)
func Binary[S, T any](op BinaryOp, a, b *DenseArray[T]) (*DenseArray[S], error) {
	if op < OpAdd || op > OpDiv {
		return nil, fmt.Errorf("%w: unknown operation %s", ErrUnsupported, op)
	}
	arith, ok := resolve[S, T]()
	if !ok {
		return nil, unsupported[S, T](op.String())
	}
	if !a.shape.Equal(b.shape) {
		return nil, fmt.Errorf("%s %v and %v: %w", op, a.shape, b.shape, ErrShapeMismatch)
	}
	left, right := a.buffer(), b.buffer()
	if len(left) != a.size || len(right) != b.size {
		return nil, fmt.Errorf("%s: buffers hold %d and %d elements, shape %v needs %d: %w",
			op, len(left), len(right), a.shape, a.size, ErrShapeMismatch)
	}
	if op == OpDiv && a.dtype.IsInteger() {
		for i, v := range right {
			if arith.IsZero(v) {
				return nil, fmt.Errorf("%s: divisor at position %d: %w", op, i, ErrDivisionByZero)
			}
		}
	}

	fn := binaryKernel(arith, op)
	out := make([]T, a.size)
	parallel.For(a.size, func(lo, hi int) {
		for i := lo; i < hi; i++ {
			out[i] = fn(left[i], right[i])
		}
	}, kernelConfig)

	return any(a.CloneWithNewValues(out)).(*DenseArray[S]), nil
}

// Unary applies op element-wise to a.
// Unsupported element types yield nil and an *UnsupportedError.
func Unary[T any](op UnaryOp, a *DenseArray[T]) (*DenseArray[T], error) {
	if op != OpNeg {
		return nil, fmt.Errorf("%w: unknown operation %s", ErrUnsupported, op)
	}
	arith, ok := resolve[T, T]()
	if !ok {
		return nil, unsupported[T, T](op.String())
	}
	in := a.buffer()
	if len(in) != a.size {
		return nil, fmt.Errorf("%s: buffer holds %d elements, shape %v needs %d: %w",
			op, len(in), a.shape, a.size, ErrShapeMismatch)
	}

	out := make([]T, a.size)
	parallel.For(a.size, func(lo, hi int) {
		for i := lo; i < hi; i++ {
			out[i] = arith.Neg(in[i])
		}
	}, kernelConfig)

	return a.CloneWithNewValues(out), nil
}

// Add returns a + b as an array of element type S.
func Add[S, T any](a, b *DenseArray[T]) (*DenseArray[S], error) {
	return Binary[S](OpAdd, a, b)
}

// Subtract returns a - b as an array of element type S.
func Subtract[S, T any](a, b *DenseArray[T]) (*DenseArray[S], error) {
	return Binary[S](OpSub, a, b)
}

// Multiply returns a * b as an array of element type S.
func Multiply[S, T any](a, b *DenseArray[T]) (*DenseArray[S], error) {
	return Binary[S](OpMul, a, b)
}

// Divide returns a / b as an array of element type S.
func Divide[S, T any](a, b *DenseArray[T]) (*DenseArray[S], error) {
	return Binary[S](OpDiv, a, b)
}

// Negate returns -a.
func Negate[T any](a *DenseArray[T]) (*DenseArray[T], error) {
	return Unary(OpNeg, a)
}

// Add performs element-wise addition.
//
// Example:
//
//	a := tensor.VectorOf(1, 2)
//	b := tensor.VectorOf(10, 20)
//	c, _ := a.Add(b) // [11 22]
func (a *DenseArray[T]) Add(other *DenseArray[T]) (*DenseArray[T], error) {
	return Binary[T](OpAdd, a, other)
}

// Subtract performs element-wise subtraction.
func (a *DenseArray[T]) Subtract(other *DenseArray[T]) (*DenseArray[T], error) {
	return Binary[T](OpSub, a, other)
}

// Multiply performs element-wise multiplication.
func (a *DenseArray[T]) Multiply(other *DenseArray[T]) (*DenseArray[T], error) {
	return Binary[T](OpMul, a, other)
}

// Divide performs element-wise division.
// Integer arrays fail with ErrDivisionByZero if any divisor is zero.
func (a *DenseArray[T]) Divide(other *DenseArray[T]) (*DenseArray[T], error) {
	return Binary[T](OpDiv, a, other)
}

// Negate returns a new array with every element negated.
func (a *DenseArray[T]) Negate() (*DenseArray[T], error) {
	return Unary(OpNeg, a)
}

// resolve selects the arithmetic for operands of type T producing S.
// Only same-type pairs are registered.
func resolve[S, T any]() (Arithmetic[T], bool) {
	in, out := DataTypeOf[T](), DataTypeOf[S]()
	if in == Invalid || in != out {
		return nil, false
	}
	return arithmeticFor[T](in)
}

func binaryKernel[T any](arith Arithmetic[T], op BinaryOp) func(a, b T) T {
	switch op {
	case OpAdd:
		return arith.Add
	case OpSub:
		return arith.Sub
	case OpMul:
		return arith.Mul
	default:
		return arith.Div
	}
}

func unsupported[S, T any](op string) error {
	return &UnsupportedError{
		Op:     op,
		Input:  fmt.Sprintf("%T", *new(T)),
		Result: fmt.Sprintf("%T", *new(S)),
	}
}
