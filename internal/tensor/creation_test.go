package tensor

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewVector(t *testing.T) {
	v, err := NewVector[float64](4)
	require.NoError(t, err)

	assert.Equal(t, 1, v.Rank())
	assert.Equal(t, Shape{4}, v.Shape())
	assert.Equal(t, []float64{0, 0, 0, 0}, v.Values())

	_, err = NewVector[float64](-1)
	require.ErrorIs(t, err, ErrInvalidShape)
}

func TestVectorOf(t *testing.T) {
	src := []int{1, 2, 3}
	v := VectorOf(src...)

	assert.Equal(t, Shape{3}, v.Shape())
	for i, want := range src {
		got, err := v.GetValue(i)
		require.NoError(t, err)
		assert.Equal(t, want, got)
	}

	src[0] = 100
	got, err := v.GetValue(0)
	require.NoError(t, err)
	assert.Equal(t, 1, got, "VectorOf must copy its input")
}

func TestVectorOf_Empty(t *testing.T) {
	v := VectorOf[int]()
	assert.Equal(t, Shape{0}, v.Shape())
	assert.Equal(t, 0, v.Size())
}

func TestScalar(t *testing.T) {
	s := Scalar(42)

	assert.Equal(t, 0, s.Rank())
	assert.Equal(t, 1, s.Size())

	v, err := s.GetValue()
	require.NoError(t, err)
	assert.Equal(t, 42, v)

	_, err = s.GetValue(0)
	require.ErrorIs(t, err, ErrInvalidCoordinate)
}

func TestFull(t *testing.T) {
	a, err := Full(Shape{2, 2}, 1.5)
	require.NoError(t, err)
	assert.Equal(t, []float64{1.5, 1.5, 1.5, 1.5}, a.Values())

	_, err = Full(Shape{-2}, 1.5)
	require.ErrorIs(t, err, ErrInvalidShape)
}
