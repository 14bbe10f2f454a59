package flow

import "errors"

// ErrRaggedRows is returned when nested rows passed to ConstantMatrix differ in length.
var ErrRaggedRows = errors.New("flow: ragged rows")

// ErrNilNode is returned when a nil node is evaluated or used as an operand.
var ErrNilNode = errors.New("flow: nil node")
