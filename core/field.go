package core

import (
	"fmt"
	"strconv"
	"time"
)

// FieldType selects which member of a Field holds the value.
type FieldType uint8

const (
	StringType FieldType = iota
	IntType
	Int64Type
	Float64Type
	BoolType
	TimeType
	DurationType
	ErrorType
	AnyType
)

// Field is one structured key/value pair. Scalars live in Int64, Float64
// or Str depending on Type so building a field does not allocate; error
// fields keep the error itself in Any for processors to inspect.
type Field struct {
	Key     string
	Type    FieldType
	Int64   int64
	Float64 float64
	Str     string
	Any     interface{}
}

// Bool reports the value of a BoolType field.
func (f Field) Bool() bool { return f.Int64 == 1 }

// Time reports the value of a TimeType field in UTC.
func (f Field) Time() time.Time { return time.Unix(0, f.Int64).UTC() }

// AppendValue appends the plain text rendering of the value to dst.
func (f Field) AppendValue(dst []byte) []byte {
	switch f.Type {
	case StringType, ErrorType:
		return append(dst, f.Str...)
	case IntType, Int64Type:
		return strconv.AppendInt(dst, f.Int64, 10)
	case Float64Type:
		return strconv.AppendFloat(dst, f.Float64, 'f', -1, 64)
	case BoolType:
		return strconv.AppendBool(dst, f.Bool())
	case TimeType:
		return f.Time().AppendFormat(dst, time.RFC3339)
	case DurationType:
		return append(dst, time.Duration(f.Int64).String()...)
	case AnyType:
		return fmt.Append(dst, f.Any)
	}
	return dst
}

// StringValue is AppendValue as a string.
func (f Field) StringValue() string {
	if f.Type == StringType || f.Type == ErrorType {
		return f.Str
	}
	return string(f.AppendValue(nil))
}

// Error returns the error carried by an ErrorType field, if any.
func (f Field) Error() (error, bool) {
	if f.Type != ErrorType {
		return nil, false
	}
	err, ok := f.Any.(error)
	return err, ok && err != nil
}
