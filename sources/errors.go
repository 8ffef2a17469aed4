package sources

import "fmt"

// QueryError reports a failed statement together with the literal query
// text, so the user sees exactly what was sent to the backend.
type QueryError struct {
	Query string
	Err   error
}

func (e *QueryError) Error() string {
	return fmt.Sprintf("query failed: %s: %v", e.Query, e.Err)
}

func (e *QueryError) Unwrap() error { return e.Err }

// UnsupportedColumnTypeError is returned by the native-type mapping
// functions when a backend reports a column type outside the canonical
// model. The caller decides what to do with it; the export driver treats
// it as fatal.
type UnsupportedColumnTypeError struct {
	Backend string
	Column  string
	Native  string
}

func (e *UnsupportedColumnTypeError) Error() string {
	return fmt.Sprintf("%s: unsupported column type %q for column %q", e.Backend, e.Native, e.Column)
}

// ConversionError reports a native value that could not be converted to
// the canonical type computed for its column.
type ConversionError struct {
	Backend string
	Column  string
	Type    ColumnType
	Reason  string
}

func (e *ConversionError) Error() string {
	return fmt.Sprintf("%s: cannot convert column %q to %s: %s", e.Backend, e.Column, e.Type, e.Reason)
}
