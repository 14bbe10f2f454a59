package flow

import (
	"strings"
	"sync"
	"testing"

	"github.com/born-ml/lazor/internal/tensor"
	"github.com/go-logr/logr/funcr"
	"github.com/go-logr/logr/testr"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// deepSum builds ((v + v) + (v + v)) ... with the given number of levels.
func deepSum(leaf Node[int], levels int) Node[int] {
	n := leaf
	for i := 0; i < levels; i++ {
		n = Add(n, n)
	}
	return n
}

func TestEvaluator_Sequential(t *testing.T) {
	e := NewEvaluator(WithLogger(testr.NewWithOptions(t, testr.Options{Verbosity: 1})))

	result, err := Evaluate(e, deepSum(ConstantVector([]int{1, 2}), 4))
	require.NoError(t, err)
	assert.Equal(t, []int{16, 32}, result.(*ArrayLeaf[int]).Array().Values())
}

func TestEvaluator_Concurrent(t *testing.T) {
	e := NewEvaluator(
		WithConcurrency(true),
		WithLogger(testr.NewWithOptions(t, testr.Options{Verbosity: 1})),
	)

	a := ConstantVector([]int{1, 2, 3})
	b := ConstantVector([]int{4, 5, 6})
	expr := Multiply(Add(a, b), Subtract(b, a))

	result, err := Evaluate(e, expr)
	require.NoError(t, err)
	assert.Equal(t, []int{15, 21, 27}, result.(*ArrayLeaf[int]).Array().Values())
}

func TestEvaluator_ConcurrentError(t *testing.T) {
	e := NewEvaluator(WithConcurrency(true))

	good := Add(ConstantVector([]int{1}), ConstantVector([]int{2}))
	bad := Add(ConstantVector([]int{1}), ConstantVector([]int{1, 2}))

	_, err := Evaluate(e, Add(good, bad))
	require.ErrorIs(t, err, tensor.ErrShapeMismatch)
}

func TestEvaluator_SharedAcrossGoroutines(t *testing.T) {
	e := NewEvaluator(WithConcurrency(true))
	expr := deepSum(Constant(1), 6)

	var wg sync.WaitGroup
	results := make([]int, 8)
	errs := make([]error, 8)
	for i := range results {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			var r Node[int]
			r, errs[i] = Evaluate(e, expr)
			if errs[i] == nil {
				results[i], errs[i] = r.GetValue()
			}
		}(i)
	}
	wg.Wait()

	for i := range results {
		require.NoError(t, errs[i])
		assert.Equal(t, 64, results[i])
	}
}

func TestEvaluator_NilUsesDefaults(t *testing.T) {
	result, err := Evaluate[int](nil, Add(Constant(2), Constant(3)))
	require.NoError(t, err)

	v, err := result.GetValue()
	require.NoError(t, err)
	assert.Equal(t, 5, v)
}

func TestEvaluator_LeafIsReturned(t *testing.T) {
	leaf := Constant(1.5)
	result, err := Evaluate(NewEvaluator(), leaf)
	require.NoError(t, err)
	assert.Same(t, leaf, result)
}

func TestEvaluator_Logging(t *testing.T) {
	var mu sync.Mutex
	var lines []string
	log := funcr.New(func(prefix, args string) {
		mu.Lock()
		defer mu.Unlock()
		lines = append(lines, args)
	}, funcr.Options{Verbosity: 1})

	e := NewEvaluator(WithLogger(log))
	_, err := Evaluate(e, Negate(Add(Constant(1), Constant(2))))
	require.NoError(t, err)

	require.Len(t, lines, 3)
	assert.Contains(t, lines[0], `"msg"="evaluating graph"`)
	assert.Contains(t, lines[0], `"nodes"=4`)
	assert.Contains(t, lines[0], `"depth"=3`)
	assert.Contains(t, lines[1], `"op"="add"`)
	assert.Contains(t, lines[2], `"op"="neg"`)
}

func TestEvaluator_QuietByDefault(t *testing.T) {
	var lines []string
	log := funcr.New(func(_, args string) {
		lines = append(lines, args)
	}, funcr.Options{})

	_, err := Evaluate(NewEvaluator(WithLogger(log)), Add(Constant(1), Constant(2)))
	require.NoError(t, err)
	assert.Empty(t, strings.Join(lines, ""), "traces are V(1)")
}

func TestWalk(t *testing.T) {
	a := Constant(1)
	b := Constant(2)
	sum := Add(a, b)
	expr := Multiply(sum, sum)

	var visited []Node[int]
	Walk(expr, func(n Node[int]) {
		visited = append(visited, n)
	})

	require.Len(t, visited, 4)
	assert.Same(t, a, visited[0])
	assert.Same(t, b, visited[1])
	assert.Same(t, sum, visited[2])
	assert.Same(t, expr, visited[3])
}

func TestCountDepth(t *testing.T) {
	leaf := Constant(1)
	assert.Equal(t, 1, Count(leaf))
	assert.Equal(t, 1, Depth(leaf))

	expr := deepSum(leaf, 10)
	assert.Equal(t, 11, Count(expr))
	assert.Equal(t, 11, Depth(expr))

	lopsided := Add(Negate(Negate(Constant(1))), Constant(2))
	assert.Equal(t, 5, Count(lopsided))
	assert.Equal(t, 4, Depth(lopsided))
}
