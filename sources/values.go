package sources

import (
	"fmt"
	"strconv"
	"strings"
	"time"
	"unicode/utf8"
)

// convertValue converts one native value, as surfaced by database/sql,
// into the canonical Value for its column. The interpretation of
// date/time wire values is taken from the precomputed ColumnType of the
// column, not from the native value alone. Most drivers deliver numbers
// either natively or as byte strings (text protocols), so every numeric
// target also accepts []byte.
func convertValue(kind Kind, col ColumnInfo, raw interface{}) (Value, error) {
	if raw == nil {
		return None(), nil
	}
	fail := func(format string, args ...interface{}) (Value, error) {
		return Value{}, &ConversionError{
			Backend: kind.String(),
			Column:  col.Name,
			Type:    col.Type,
			Reason:  fmt.Sprintf(format, args...),
		}
	}

	switch col.Type {
	case TypeI8, TypeI16, TypeI32, TypeI64:
		switch v := raw.(type) {
		case int64:
			return Int(col.Type, v), nil
		case []byte:
			n, err := strconv.ParseInt(string(v), 10, 64)
			if err != nil {
				return fail("invalid integer %q", v)
			}
			return Int(col.Type, n), nil
		}
	case TypeU8, TypeU16, TypeU32, TypeU64:
		switch v := raw.(type) {
		case uint64:
			return Uint(col.Type, v), nil
		case int64:
			if v < 0 {
				return fail("negative value %d for unsigned column", v)
			}
			return Uint(col.Type, uint64(v)), nil
		case []byte:
			n, err := strconv.ParseUint(string(v), 10, 64)
			if err != nil {
				return fail("invalid unsigned integer %q", v)
			}
			return Uint(col.Type, n), nil
		}
	case TypeF32, TypeF64:
		switch v := raw.(type) {
		case float64:
			return Float(col.Type, v), nil
		case []byte:
			f, err := strconv.ParseFloat(string(v), 64)
			if err != nil {
				return fail("invalid float %q", v)
			}
			return Float(col.Type, f), nil
		}
	case TypeBool:
		switch v := raw.(type) {
		case bool:
			return Bool(v), nil
		case int64:
			return Bool(v != 0), nil
		case []byte:
			s := string(v)
			if s == "1" || strings.EqualFold(s, "true") || strings.EqualFold(s, "t") {
				return Bool(true), nil
			}
			if s == "0" || strings.EqualFold(s, "false") || strings.EqualFold(s, "f") {
				return Bool(false), nil
			}
			return fail("invalid bool %q", v)
		}
	case TypeString, TypeDecimal, TypeJSON:
		switch v := raw.(type) {
		case string:
			return Value{Type: col.Type, Str: v}, nil
		case []byte:
			if !utf8.Valid(v) {
				return fail("invalid utf8 in %q", v)
			}
			return Value{Type: col.Type, Str: string(v)}, nil
		case int64:
			return Value{Type: col.Type, Str: strconv.FormatInt(v, 10)}, nil
		case float64:
			return Value{Type: col.Type, Str: strconv.FormatFloat(v, 'g', -1, 64)}, nil
		}
	case TypeBytes:
		switch v := raw.(type) {
		case []byte:
			buf := make([]byte, len(v))
			copy(buf, v)
			return Bytes(buf), nil
		case string:
			return Bytes([]byte(v)), nil
		}
	case TypeDate, TypeDateTime, TypeTimestamp:
		switch v := raw.(type) {
		case time.Time:
			return temporalValue(col.Type, v), nil
		case []byte:
			t, err := parseTemporal(string(v))
			if err != nil {
				return fail("%v", err)
			}
			return temporalValue(col.Type, t), nil
		case string:
			t, err := parseTemporal(v)
			if err != nil {
				return fail("%v", err)
			}
			return temporalValue(col.Type, t), nil
		}
	case TypeTime:
		switch v := raw.(type) {
		case time.Time:
			return Clock(v), nil
		case []byte:
			t, err := parseClock(string(v))
			if err != nil {
				return fail("%v", err)
			}
			return Clock(t), nil
		case string:
			t, err := parseClock(v)
			if err != nil {
				return fail("%v", err)
			}
			return Clock(t), nil
		}
	}
	return fail("unexpected native value of type %T", raw)
}

func temporalValue(t ColumnType, v time.Time) Value {
	switch t {
	case TypeDate:
		return Date(v)
	case TypeTimestamp:
		return Timestamp(v)
	default:
		return DateTime(v)
	}
}

var temporalLayouts = []string{
	"2006-01-02 15:04:05.999999999",
	"2006-01-02T15:04:05.999999999Z07:00",
	"2006-01-02 15:04:05.999999999Z07:00",
	"2006-01-02",
}

func parseTemporal(s string) (time.Time, error) {
	for _, layout := range temporalLayouts {
		if t, err := time.Parse(layout, s); err == nil {
			return t, nil
		}
	}
	return time.Time{}, fmt.Errorf("invalid date/time %q", s)
}

// parseClock parses a wall-clock TIME value. Negative intervals, which
// MySQL TIME columns can hold, have no canonical representation and are
// rejected explicitly rather than truncated.
func parseClock(s string) (time.Time, error) {
	if strings.HasPrefix(s, "-") {
		return time.Time{}, fmt.Errorf("negative time interval %q is not supported", s)
	}
	for _, layout := range []string{"15:04:05.999999999", "15:04:05", "15:04"} {
		if t, err := time.Parse(layout, s); err == nil {
			return t, nil
		}
	}
	return time.Time{}, fmt.Errorf("invalid time %q", s)
}
