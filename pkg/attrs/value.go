// ABOUTME: Tagged value type for attribute stores
// ABOUTME: Supports strings, integers, floats, booleans and string lists

package attrs

import (
	"fmt"
	"strings"
)

// Value types for attributes
const (
	TYPE_STRING = 1
	TYPE_INT    = 2
	TYPE_FLOAT  = 3
	TYPE_BOOL   = 4
	TYPE_LIST   = 5
)

// Value represents a single attribute value
type Value struct {
	Type uint8
	Str  string
	I64  int64
	F64  float64
	Bool bool
	List []string
}

// NewStringValue creates a string value
func NewStringValue(s string) Value {
	return Value{Type: TYPE_STRING, Str: s}
}

// NewIntValue creates an int64 value
func NewIntValue(i int64) Value {
	return Value{Type: TYPE_INT, I64: i}
}

// NewFloatValue creates a float64 value
func NewFloatValue(f float64) Value {
	return Value{Type: TYPE_FLOAT, F64: f}
}

// NewBoolValue creates a boolean value
func NewBoolValue(b bool) Value {
	return Value{Type: TYPE_BOOL, Bool: b}
}

// NewListValue creates a string-list value. The slice is copied so the
// caller cannot mutate the stored value afterwards.
func NewListValue(items []string) Value {
	list := make([]string, len(items))
	copy(list, items)
	return Value{Type: TYPE_LIST, List: list}
}

// String renders the value for display
func (v Value) String() string {
	switch v.Type {
	case TYPE_STRING:
		return v.Str
	case TYPE_INT:
		return fmt.Sprintf("%d", v.I64)
	case TYPE_FLOAT:
		return fmt.Sprintf("%.2f", v.F64)
	case TYPE_BOOL:
		return fmt.Sprintf("%t", v.Bool)
	case TYPE_LIST:
		return "[" + strings.Join(v.List, ", ") + "]"
	default:
		return ""
	}
}

// Equal reports whether two values have the same type and contents
func (v Value) Equal(other Value) bool {
	if v.Type != other.Type {
		return false
	}
	switch v.Type {
	case TYPE_STRING:
		return v.Str == other.Str
	case TYPE_INT:
		return v.I64 == other.I64
	case TYPE_FLOAT:
		return v.F64 == other.F64
	case TYPE_BOOL:
		return v.Bool == other.Bool
	case TYPE_LIST:
		if len(v.List) != len(other.List) {
			return false
		}
		for i := range v.List {
			if v.List[i] != other.List[i] {
				return false
			}
		}
		return true
	default:
		return false
	}
}
