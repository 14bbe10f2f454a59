// Copyright 2025 Born ML Framework. All rights reserved.
// Use of this source code is governed by an Apache 2.0
// license that can be found in the LICENSE file.

// Package flow provides lazily evaluated computation graphs over dense arrays.
//
// # Overview
//
// Graphs are built from leaves and operation nodes:
//   - Constant, ConstantVector, ConstantMatrix, FromArray create leaves
//   - Add, Subtract, Multiply, Divide, Negate create operation nodes
//
// Nothing is computed when an operation node is built. Rank and Shape are
// available immediately; Evaluate reduces the node to a new leaf and leaves
// the graph untouched, so subgraphs can be reused.
//
// # Basic Usage
//
//	import "github.com/born-ml/lazor/flow"
//
//	func main() {
//	    left := flow.NewSingleValue(1)
//	    right := flow.NewSingleValue(41)
//
//	    add := flow.Add[int](left, right)
//	    result, _ := add.Evaluate()
//	    v, _ := result.GetValue() // 42
//	}
//
// # Matrices
//
// ConstantMatrix takes rows of equal length; GetValue(r, c) returns rows[r][c].
// Ragged input fails with ErrRaggedRows.
//
// # Concurrent Evaluation
//
// An Evaluator created WithConcurrency(true) evaluates the two operands of a
// binary node on separate goroutines. Evaluation traces are logged at V(1) to
// the logr.Logger passed with WithLogger.
package flow
