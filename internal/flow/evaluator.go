package flow

import (
	"github.com/born-ml/lazor/internal/parallel"
	"github.com/go-logr/logr"
)

// Option configures an Evaluator.
type Option func(*Evaluator)

// WithLogger sets the logger used for evaluation traces (V(1)).
func WithLogger(log logr.Logger) Option {
	return func(e *Evaluator) {
		e.log = log
	}
}

// WithConcurrency evaluates the two operands of a binary node concurrently when enabled.
func WithConcurrency(enabled bool) Option {
	return func(e *Evaluator) {
		e.concurrent = enabled
	}
}

// Evaluator reduces graphs to leaves.
//
// Graph nodes are never mutated during evaluation, so one Evaluator may be
// used from several goroutines and shared subgraphs need no locking.
type Evaluator struct {
	log        logr.Logger
	concurrent bool
}

// NewEvaluator creates an Evaluator. By default it is sequential and does not log.
func NewEvaluator(opts ...Option) *Evaluator {
	e := &Evaluator{
		log: logr.Discard(),
	}
	for _, opt := range opts {
		opt(e)
	}
	return e
}

var defaultEvaluator = NewEvaluator()

// Evaluate reduces n to a leaf using e. A nil Evaluator uses the defaults.
// A nil n, or a nil operand anywhere in the graph, fails with ErrNilNode.
//
// Example:
//
//	e := flow.NewEvaluator(flow.WithConcurrency(true))
//	result, err := flow.Evaluate(e, flow.Add(a, b))
func Evaluate[T any](e *Evaluator, n Node[T]) (Node[T], error) {
	if e == nil {
		e = defaultEvaluator
	}
	if n == nil {
		return nil, ErrNilNode
	}
	if n.Evaluated() {
		return n, nil
	}
	if v := e.log.V(1); v.Enabled() {
		v.Info("evaluating graph", "nodes", Count(n), "depth", Depth(n), "concurrent", e.concurrent)
	}
	return n.reduce(e)
}

// reducePair reduces both operands of a binary node.
func reducePair[T any](e *Evaluator, left, right Node[T]) (Node[T], Node[T], error) {
	if !e.concurrent || left.Evaluated() || right.Evaluated() {
		l, err := left.reduce(e)
		if err != nil {
			return nil, nil, err
		}
		r, err := right.reduce(e)
		if err != nil {
			return nil, nil, err
		}
		return l, r, nil
	}

	var l, r Node[T]
	err := parallel.Go(
		func() (err error) {
			l, err = left.reduce(e)
			return err
		},
		func() (err error) {
			r, err = right.reduce(e)
			return err
		},
	)
	if err != nil {
		return nil, nil, err
	}
	return l, r, nil
}
