// Package sources provides the backend connectors and the canonical value
// model they translate native database types into. Every backend (mysql,
// postgres, sqlite, mssql) speaks the same three-stage contract: connect,
// open a batch iterator, pull batches of canonical rows.
package sources

import (
	"strconv"
	"time"
)

// ColumnType is the canonical semantic type of a result column. It is
// assigned once per column from backend metadata and stays authoritative
// for the lifetime of the result stream.
type ColumnType int

const (
	TypeNone ColumnType = iota
	TypeI8
	TypeI16
	TypeI32
	TypeI64
	TypeU8
	TypeU16
	TypeU32
	TypeU64
	TypeF32
	TypeF64
	TypeBool
	TypeString
	TypeBytes
	TypeDate
	TypeTime
	TypeDateTime
	TypeTimestamp
	TypeDecimal
	TypeJSON
)

var columnTypeNames = map[ColumnType]string{
	TypeNone:      "none",
	TypeI8:        "i8",
	TypeI16:       "i16",
	TypeI32:       "i32",
	TypeI64:       "i64",
	TypeU8:        "u8",
	TypeU16:       "u16",
	TypeU32:       "u32",
	TypeU64:       "u64",
	TypeF32:       "f32",
	TypeF64:       "f64",
	TypeBool:      "bool",
	TypeString:    "string",
	TypeBytes:     "bytes",
	TypeDate:      "date",
	TypeTime:      "time",
	TypeDateTime:  "datetime",
	TypeTimestamp: "timestamp",
	TypeDecimal:   "decimal",
	TypeJSON:      "json",
}

func (t ColumnType) String() string {
	if name, ok := columnTypeNames[t]; ok {
		return name
	}
	return "unknown(" + strconv.Itoa(int(t)) + ")"
}

// ColumnInfo describes one result-set column.
type ColumnInfo struct {
	Name string
	Type ColumnType
}

// Value is one cell of a result set, tagged with its canonical type.
// Which of the payload fields is meaningful depends on Type; a Value with
// TypeNone carries no payload and represents SQL NULL.
type Value struct {
	Type  ColumnType
	Int   int64     // TypeI8..TypeI64, TypeBool (0 or 1)
	Uint  uint64    // TypeU8..TypeU64
	Float float64   // TypeF32, TypeF64
	Str   string    // TypeString, TypeDecimal, TypeJSON
	Raw   []byte    // TypeBytes
	Time  time.Time // TypeDate, TypeTime, TypeDateTime, TypeTimestamp
}

// Row is an ordered sequence of values, one per result-set column.
type Row []Value

func None() Value                         { return Value{Type: TypeNone} }
func Int(t ColumnType, v int64) Value     { return Value{Type: t, Int: v} }
func Uint(t ColumnType, v uint64) Value   { return Value{Type: t, Uint: v} }
func Float(t ColumnType, v float64) Value { return Value{Type: t, Float: v} }
func Str(v string) Value                  { return Value{Type: TypeString, Str: v} }
func Decimal(v string) Value              { return Value{Type: TypeDecimal, Str: v} }
func JSON(v string) Value                 { return Value{Type: TypeJSON, Str: v} }
func Bytes(v []byte) Value                { return Value{Type: TypeBytes, Raw: v} }
func Date(v time.Time) Value              { return Value{Type: TypeDate, Time: v} }
func Clock(v time.Time) Value             { return Value{Type: TypeTime, Time: v} }
func DateTime(v time.Time) Value          { return Value{Type: TypeDateTime, Time: v} }
func Timestamp(v time.Time) Value         { return Value{Type: TypeTimestamp, Time: v} }

func Bool(v bool) Value {
	val := Value{Type: TypeBool}
	if v {
		val.Int = 1
	}
	return val
}

// IsNone reports whether the value represents SQL NULL.
func (v Value) IsNone() bool { return v.Type == TypeNone }

// Format renders the value as text, the representation sinks use for
// csv and text output. NULL renders as the empty string.
func (v Value) Format() string {
	switch v.Type {
	case TypeNone:
		return ""
	case TypeI8, TypeI16, TypeI32, TypeI64:
		return strconv.FormatInt(v.Int, 10)
	case TypeU8, TypeU16, TypeU32, TypeU64:
		return strconv.FormatUint(v.Uint, 10)
	case TypeF32:
		return strconv.FormatFloat(v.Float, 'g', -1, 32)
	case TypeF64:
		return strconv.FormatFloat(v.Float, 'g', -1, 64)
	case TypeBool:
		if v.Int != 0 {
			return "true"
		}
		return "false"
	case TypeString, TypeDecimal, TypeJSON:
		return v.Str
	case TypeBytes:
		return string(v.Raw)
	case TypeDate:
		return v.Time.Format("2006-01-02")
	case TypeTime:
		return v.Time.Format("15:04:05")
	case TypeDateTime, TypeTimestamp:
		return v.Time.Format("2006-01-02 15:04:05")
	}
	return ""
}

// Arg converts the value into an argument acceptable by database/sql
// drivers, for sinks that insert rows into another database.
func (v Value) Arg() interface{} {
	switch v.Type {
	case TypeNone:
		return nil
	case TypeI8, TypeI16, TypeI32, TypeI64:
		return v.Int
	case TypeU8, TypeU16, TypeU32:
		return int64(v.Uint)
	case TypeU64:
		if v.Uint > 1<<63-1 {
			return strconv.FormatUint(v.Uint, 10)
		}
		return int64(v.Uint)
	case TypeF32, TypeF64:
		return v.Float
	case TypeBool:
		return v.Int != 0
	case TypeString, TypeDecimal, TypeJSON:
		return v.Str
	case TypeBytes:
		return v.Raw
	case TypeDate, TypeTime, TypeDateTime, TypeTimestamp:
		return v.Time
	}
	return nil
}
