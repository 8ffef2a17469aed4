package sources

import (
	"strings"

	_ "github.com/mattn/go-sqlite3" // registers the sqlite3 driver
)

func sqliteDSN(opts *SqliteOptions) string {
	return opts.File
}

// sqliteColumnType maps a declared sqlite column type to its canonical
// type. SQLite typing is dynamic; the declared type is normalized by
// stripping any length suffix, and columns without a declared type
// (expressions) are treated as text.
func sqliteColumnType(column, nativeType string) (ColumnType, error) {
	native := strings.ToUpper(strings.TrimSpace(nativeType))
	if idx := strings.IndexByte(native, '('); idx >= 0 {
		native = strings.TrimSpace(native[:idx])
	}
	switch native {
	case "", "TEXT", "CHAR", "VARCHAR", "NCHAR", "NVARCHAR", "CLOB", "CHARACTER":
		return TypeString, nil
	case "INT", "INTEGER", "TINYINT", "SMALLINT", "MEDIUMINT", "BIGINT", "INT2", "INT8":
		return TypeI64, nil
	case "REAL", "FLOAT", "DOUBLE", "DOUBLE PRECISION":
		return TypeF64, nil
	case "NUMERIC", "DECIMAL":
		return TypeDecimal, nil
	case "BLOB":
		return TypeBytes, nil
	case "BOOLEAN", "BOOL":
		return TypeBool, nil
	case "DATE":
		return TypeDate, nil
	case "TIME":
		return TypeTime, nil
	case "DATETIME":
		return TypeDateTime, nil
	case "TIMESTAMP":
		return TypeTimestamp, nil
	case "JSON":
		return TypeJSON, nil
	}
	return TypeNone, &UnsupportedColumnTypeError{Backend: "sqlite", Column: column, Native: native}
}
