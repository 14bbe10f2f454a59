package tensor

import (
	"fmt"
	"strings"
)

// DenseArray is a dense N-dimensional array of elements of type T.
//
// The buffer is allocated on the first write; reads before that return the
// zero value of T. Once sealed, the array rejects every further write.
//
// Example:
//
//	a, _ := tensor.NewArray[int](2, 3)
//	_ = a.SetValue(7, 1, 2)
//	v, _ := a.GetValue(1, 2) // 7
type DenseArray[T any] struct {
	shape  Shape
	size   int
	dtype  DataType // resolved once at construction
	values []T      // nil until the first write
	sealed bool
}

// NewArray creates an array with the given shape.
// The shape is copied, so later changes to the caller's slice have no effect.
func NewArray[T any](shape ...int) (*DenseArray[T], error) {
	s := Shape(shape).Clone()
	if err := s.Validate(); err != nil {
		return nil, err
	}
	return newArray[T](s), nil
}

func newArray[T any](s Shape) *DenseArray[T] {
	return &DenseArray[T]{
		shape: s,
		size:  s.NumElements(),
		dtype: DataTypeOf[T](),
	}
}

// Rank returns the number of axes.
func (a *DenseArray[T]) Rank() int {
	return len(a.shape)
}

// Shape returns a copy of the array's shape.
func (a *DenseArray[T]) Shape() Shape {
	return a.shape.Clone()
}

// Size returns the total number of elements.
func (a *DenseArray[T]) Size() int {
	return a.size
}

// DType returns the runtime element type tag.
func (a *DenseArray[T]) DType() DataType {
	return a.dtype
}

// Sealed reports whether the array has been sealed.
func (a *DenseArray[T]) Sealed() bool {
	return a.sealed
}

// Seal makes the array immutable. There is no way back.
func (a *DenseArray[T]) Seal() {
	a.sealed = true
}

// GetDimensionLength returns the length of the given axis.
func (a *DenseArray[T]) GetDimensionLength(axis int) (int, error) {
	if axis < 0 || axis >= len(a.shape) {
		return 0, fmt.Errorf("%w: %d for rank %d", ErrInvalidAxis, axis, len(a.shape))
	}
	return a.shape[axis], nil
}

// GetValue returns the element at the given coordinates.
func (a *DenseArray[T]) GetValue(coords ...int) (T, error) {
	var zero T
	if err := a.shape.checkCoords(coords); err != nil {
		return zero, err
	}
	if a.values == nil {
		return zero, nil
	}
	if err := a.checkBuffer(); err != nil {
		return zero, err
	}
	return a.values[a.shape.Offset(coords)], nil
}

// SetValue writes value at the given coordinates.
func (a *DenseArray[T]) SetValue(value T, coords ...int) error {
	if err := a.shape.checkCoords(coords); err != nil {
		return err
	}
	if a.sealed {
		return fmt.Errorf("set %v: %w", coords, ErrSealed)
	}
	if a.values == nil {
		a.values = make([]T, a.size)
	}
	if err := a.checkBuffer(); err != nil {
		return err
	}
	a.values[a.shape.Offset(coords)] = value
	return nil
}

// checkBuffer reports a buffer whose length does not match the shape.
func (a *DenseArray[T]) checkBuffer() error {
	if len(a.values) != a.size {
		return fmt.Errorf("buffer holds %d elements, shape %v needs %d: %w",
			len(a.values), a.shape, a.size, ErrShapeMismatch)
	}
	return nil
}

// CloneWithNewValues returns a new, unsealed array with the same shape backed by values.
// The slice is used as is and its length is not checked here; any access to an
// array whose buffer does not match its size fails with ErrShapeMismatch.
func (a *DenseArray[T]) CloneWithNewValues(values []T) *DenseArray[T] {
	clone := newArray[T](a.shape.Clone())
	clone.values = values
	return clone
}

// Values returns a copy of the buffer in storage order.
// An array that was never written yields zero values.
func (a *DenseArray[T]) Values() []T {
	out := make([]T, a.size)
	copy(out, a.values)
	return out
}

// buffer returns the backing slice, materializing zeros for an unwritten array.
// The result must not be modified.
func (a *DenseArray[T]) buffer() []T {
	if a.values == nil {
		return make([]T, a.size)
	}
	return a.values
}

// String renders the array's metadata and up to 8 leading elements.
func (a *DenseArray[T]) String() string {
	var sb strings.Builder
	fmt.Fprintf(&sb, "DenseArray[%T]%v", *new(T), []int(a.shape))
	if a.sealed {
		sb.WriteString(" sealed")
	}
	vals := a.buffer()
	const limit = 8
	sb.WriteString(" [")
	for i, v := range vals {
		if i == limit {
			sb.WriteString(" ...")
			break
		}
		if i > 0 {
			sb.WriteByte(' ')
		}
		fmt.Fprint(&sb, v)
	}
	sb.WriteByte(']')
	return sb.String()
}
