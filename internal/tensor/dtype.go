// Package tensor provides the dense N-dimensional array and the typed arithmetic behind it.
package tensor

import "golang.org/x/exp/constraints"

// Numeric is a constraint for element types that support arithmetic.
//
// Named types such as `type Celsius float64` satisfy the constraint, but
// arithmetic is registered only for the predeclared types. DataTypeOf maps
// named types to Invalid and operations on them fail with ErrUnsupported.
type Numeric interface {
	constraints.Integer | constraints.Float
}

// DataType represents runtime type information for arrays.
type DataType int

// Supported data types. Invalid marks element types without arithmetic.
const (
	Invalid DataType = iota
	Int
	Int8
	Int16
	Int32
	Int64
	Uint8
	Uint16
	Uint32
	Uint64
	Float32
	Float64
)

// Size returns the byte size of the data type, or 0 for Invalid.
func (dt DataType) Size() int {
	switch dt {
	case Int8, Uint8:
		return 1
	case Int16, Uint16:
		return 2
	case Int32, Uint32, Float32:
		return 4
	case Int, Int64, Uint64, Float64:
		return 8
	default:
		return 0
	}
}

// String returns a human-readable name for the data type.
func (dt DataType) String() string {
	switch dt {
	case Int:
		return "int"
	case Int8:
		return "int8"
	case Int16:
		return "int16"
	case Int32:
		return "int32"
	case Int64:
		return "int64"
	case Uint8:
		return "uint8"
	case Uint16:
		return "uint16"
	case Uint32:
		return "uint32"
	case Uint64:
		return "uint64"
	case Float32:
		return "float32"
	case Float64:
		return "float64"
	default:
		return "invalid"
	}
}

// IsInteger reports whether the data type is a signed or unsigned integer.
func (dt DataType) IsInteger() bool {
	return dt >= Int && dt <= Uint64
}

// IsFloat reports whether the data type is a floating-point type.
func (dt DataType) IsFloat() bool {
	return dt == Float32 || dt == Float64
}

// DataTypeOf infers the DataType of the element type T.
// Types without registered arithmetic map to Invalid, including named types
// whose underlying type is numeric (convert to the predeclared type first).
func DataTypeOf[T any]() DataType {
	var dummy T
	switch any(dummy).(type) {
	case int:
		return Int
	case int8:
		return Int8
	case int16:
		return Int16
	case int32:
		return Int32
	case int64:
		return Int64
	case uint8:
		return Uint8
	case uint16:
		return Uint16
	case uint32:
		return Uint32
	case uint64:
		return Uint64
	case float32:
		return Float32
	case float64:
		return Float64
	default:
		return Invalid
	}
}
