package tensor

import (
	"math"
	"testing"

	"github.com/born-ml/lazor/internal/parallel"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func vectorInt(t *testing.T, values ...int) *DenseArray[int] {
	t.Helper()
	a, err := NewArray[int](len(values))
	require.NoError(t, err)
	for i, v := range values {
		require.NoError(t, a.SetValue(v, i))
	}
	return a
}

func TestAddIntegerVectors(t *testing.T) {
	a := vectorInt(t, 1, 2)
	b := vectorInt(t, 10, 20)

	c, err := Add[int](a, b)
	require.NoError(t, err)
	require.NotNil(t, c)

	assert.Equal(t, Shape{2}, c.Shape())
	assert.Equal(t, []int{11, 22}, c.Values())
	assert.False(t, c.Sealed())
}

func TestBinaryOps(t *testing.T) {
	a := VectorOf(6.0, 9.0, -4.0)
	b := VectorOf(2.0, 3.0, 8.0)

	tests := []struct {
		name string
		fn   func(x, y *DenseArray[float64]) (*DenseArray[float64], error)
		want []float64
	}{
		{"add", (*DenseArray[float64]).Add, []float64{8, 12, 4}},
		{"subtract", (*DenseArray[float64]).Subtract, []float64{4, 6, -12}},
		{"multiply", (*DenseArray[float64]).Multiply, []float64{12, 27, -32}},
		{"divide", (*DenseArray[float64]).Divide, []float64{3, 3, -0.5}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := tt.fn(a, b)
			require.NoError(t, err)
			assert.Equal(t, tt.want, got.Values())
		})
	}
}

func TestBinaryOps_Matrix(t *testing.T) {
	a, err := NewArray[int32](2, 2)
	require.NoError(t, err)
	b, err := NewArray[int32](2, 2)
	require.NoError(t, err)

	for i := 0; i < 2; i++ {
		for j := 0; j < 2; j++ {
			require.NoError(t, a.SetValue(int32(i*2+j+1), i, j))
			require.NoError(t, b.SetValue(2, i, j))
		}
	}

	prod, err := Multiply[int32](a, b)
	require.NoError(t, err)

	for i := 0; i < 2; i++ {
		for j := 0; j < 2; j++ {
			v, err := prod.GetValue(i, j)
			require.NoError(t, err)
			assert.Equal(t, int32((i*2+j+1)*2), v)
		}
	}
}

func TestSubtractDivideIntegers(t *testing.T) {
	a := vectorInt(t, 7, 9)
	b := vectorInt(t, 2, 3)

	diff, err := Subtract[int](a, b)
	require.NoError(t, err)
	assert.Equal(t, []int{5, 6}, diff.Values())

	quot, err := Divide[int](a, b)
	require.NoError(t, err)
	assert.Equal(t, []int{3, 3}, quot.Values(), "integer division truncates")
}

func TestNegate(t *testing.T) {
	a := vectorInt(t, 1, -2, 0)

	n, err := a.Negate()
	require.NoError(t, err)
	assert.Equal(t, []int{-1, 2, 0}, n.Values())

	f, err := Negate(VectorOf[float32](1.5))
	require.NoError(t, err)
	assert.Equal(t, []float32{-1.5}, f.Values())
}

func TestOpsDoNotMutateOperands(t *testing.T) {
	a := vectorInt(t, 1, 2)
	b := vectorInt(t, 3, 4)

	_, err := a.Add(b)
	require.NoError(t, err)
	_, err = a.Negate()
	require.NoError(t, err)

	assert.Equal(t, []int{1, 2}, a.Values())
	assert.Equal(t, []int{3, 4}, b.Values())
}

func TestOps_UnwrittenOperands(t *testing.T) {
	a, err := NewArray[int](3)
	require.NoError(t, err)
	b := vectorInt(t, 1, 2, 3)

	c, err := a.Add(b)
	require.NoError(t, err)
	assert.Equal(t, []int{1, 2, 3}, c.Values())
}

func TestUnsupportedResultType(t *testing.T) {
	a := vectorInt(t, 1, 2)
	b := vectorInt(t, 3, 4)

	result, err := Add[string](a, b)
	assert.Nil(t, result)
	require.ErrorIs(t, err, ErrUnsupported)

	var unsupportedErr *UnsupportedError
	require.ErrorAs(t, err, &unsupportedErr)
	assert.Equal(t, "add", unsupportedErr.Op)
	assert.Equal(t, "int", unsupportedErr.Input)
	assert.Equal(t, "string", unsupportedErr.Result)

	mixed, err := Multiply[float64](a, b)
	assert.Nil(t, mixed)
	require.ErrorIs(t, err, ErrUnsupported)
}

func TestUnsupportedElementType(t *testing.T) {
	a := VectorOf("x", "y")
	b := VectorOf("z", "w")

	_, err := a.Add(b)
	require.ErrorIs(t, err, ErrUnsupported)

	_, err = a.Negate()
	require.ErrorIs(t, err, ErrUnsupported)
}

func TestUnknownOperation(t *testing.T) {
	a := vectorInt(t, 1)

	_, err := Binary[int](BinaryOp(42), a, a)
	require.ErrorIs(t, err, ErrUnsupported)

	_, err = Unary(UnaryOp(7), a)
	require.ErrorIs(t, err, ErrUnsupported)
}

func TestShapeMismatch(t *testing.T) {
	a := vectorInt(t, 1, 2)
	b := vectorInt(t, 1, 2, 3)

	_, err := a.Add(b)
	require.ErrorIs(t, err, ErrShapeMismatch)

	m, err := NewArray[int](2, 1)
	require.NoError(t, err)
	_, err = a.Subtract(m)
	require.ErrorIs(t, err, ErrShapeMismatch)
}

func TestShapeMismatch_BufferLength(t *testing.T) {
	a := vectorInt(t, 1, 2)
	short := a.CloneWithNewValues([]int{1})

	_, err := a.Add(short)
	require.ErrorIs(t, err, ErrShapeMismatch)

	_, err = short.Negate()
	require.ErrorIs(t, err, ErrShapeMismatch)
}

func TestShapeMismatch_BufferLengthAccess(t *testing.T) {
	short := vectorInt(t, 1, 2).CloneWithNewValues([]int{1})

	_, err := short.GetValue(1)
	require.ErrorIs(t, err, ErrShapeMismatch)

	_, err = short.GetValue(0)
	require.ErrorIs(t, err, ErrShapeMismatch)

	require.ErrorIs(t, short.SetValue(5, 1), ErrShapeMismatch)
	require.ErrorIs(t, short.SetValue(5, 0), ErrShapeMismatch)

	// A nil buffer is still treated as unwritten.
	empty := vectorInt(t, 1, 2).CloneWithNewValues(nil)
	v, err := empty.GetValue(1)
	require.NoError(t, err)
	assert.Equal(t, 0, v)
	require.NoError(t, empty.SetValue(7, 1))
	assert.Equal(t, []int{0, 7}, empty.Values())
}

func TestDivisionByZero(t *testing.T) {
	a := vectorInt(t, 4, 5)
	b := vectorInt(t, 2, 0)

	_, err := a.Divide(b)
	require.ErrorIs(t, err, ErrDivisionByZero)

	// Floats follow IEEE 754.
	f, err := VectorOf(1.0).Divide(VectorOf(0.0))
	require.NoError(t, err)
	assert.True(t, math.IsInf(f.Values()[0], 1))
}

func TestBinaryOpString(t *testing.T) {
	assert.Equal(t, "add", OpAdd.String())
	assert.Equal(t, "sub", OpSub.String())
	assert.Equal(t, "mul", OpMul.String())
	assert.Equal(t, "div", OpDiv.String())
	assert.Equal(t, "BinaryOp(9)", BinaryOp(9).String())
	assert.Equal(t, "neg", OpNeg.String())
	assert.Equal(t, "UnaryOp(3)", UnaryOp(3).String())
}

func TestParallelKernels(t *testing.T) {
	saved := KernelConfig()
	t.Cleanup(func() { SetKernelConfig(saved) })
	SetKernelConfig(parallel.Config{Enabled: true, NumWorkers: 4, MinChunkSize: 16})

	const n = 1000
	left := make([]int64, n)
	right := make([]int64, n)
	for i := range left {
		left[i] = int64(i)
		right[i] = int64(2 * i)
	}
	a := VectorOf(left...)
	b := VectorOf(right...)

	sum, err := a.Add(b)
	require.NoError(t, err)
	neg, err := sum.Negate()
	require.NoError(t, err)

	for i, v := range neg.Values() {
		require.Equal(t, int64(-3*i), v)
	}
}

func BenchmarkAdd(b *testing.B) {
	values := make([]float32, 1<<16)
	for i := range values {
		values[i] = float32(i)
	}
	x := VectorOf(values...)
	y := VectorOf(values...)

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_, _ = x.Add(y)
	}
}
