package tensor

// Arithmetic is the element-level arithmetic the dispatcher applies to arrays.
type Arithmetic[T any] interface {
	Add(a, b T) T
	Sub(a, b T) T
	Mul(a, b T) T
	Div(a, b T) T
	Neg(a T) T
	IsZero(a T) bool
}

// numeric implements Arithmetic once for every Numeric type.
type numeric[T Numeric] struct{}

func (numeric[T]) Add(a, b T) T    { return a + b }
func (numeric[T]) Sub(a, b T) T    { return a - b }
func (numeric[T]) Mul(a, b T) T    { return a * b }
func (numeric[T]) Div(a, b T) T    { return a / b }
func (numeric[T]) Neg(a T) T       { return -a }
func (numeric[T]) IsZero(a T) bool { return a == 0 }

// registry maps each supported DataType to its Arithmetic implementation.
var registry = map[DataType]any{
	Int:     numeric[int]{},
	Int8:    numeric[int8]{},
	Int16:   numeric[int16]{},
	Int32:   numeric[int32]{},
	Int64:   numeric[int64]{},
	Uint8:   numeric[uint8]{},
	Uint16:  numeric[uint16]{},
	Uint32:  numeric[uint32]{},
	Uint64:  numeric[uint64]{},
	Float32: numeric[float32]{},
	Float64: numeric[float64]{},
}

// arithmeticFor returns the implementation registered for dt, if it operates on T.
func arithmeticFor[T any](dt DataType) (Arithmetic[T], bool) {
	impl, ok := registry[dt]
	if !ok {
		return nil, false
	}
	arith, ok := impl.(Arithmetic[T])
	return arith, ok
}
