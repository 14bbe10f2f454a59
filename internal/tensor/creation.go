package tensor

// NewVector creates a rank-1 array of the given length filled with zero values.
//
// Example:
//
//	v, _ := tensor.NewVector[float64](3)
func NewVector[T any](length int) (*DenseArray[T], error) {
	return NewArray[T](length)
}

// VectorOf creates a rank-1 array holding a copy of values.
//
// Example:
//
//	v := tensor.VectorOf(1, 2, 3) // Shape: [3]
func VectorOf[T any](values ...T) *DenseArray[T] {
	a := newArray[T](Shape{len(values)})
	a.values = make([]T, len(values))
	copy(a.values, values)
	return a
}

// Scalar creates a rank-0 array holding a single value.
func Scalar[T any](value T) *DenseArray[T] {
	a := newArray[T](Shape{})
	a.values = []T{value}
	return a
}

// Full creates an array with every element set to value.
//
// Example:
//
//	a, _ := tensor.Full(tensor.Shape{2, 2}, 1.5)
func Full[T any](shape Shape, value T) (*DenseArray[T], error) {
	a, err := NewArray[T](shape...)
	if err != nil {
		return nil, err
	}
	a.values = make([]T, a.size)
	for i := range a.values {
		a.values[i] = value
	}
	return a, nil
}
