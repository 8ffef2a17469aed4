package sources

import (
	"fmt"
	"strings"

	"github.com/go-sql-driver/mysql"
)

func mysqlDSN(opts *MysqlOptions) string {
	cfg := mysql.NewConfig()
	cfg.User = opts.User
	cfg.Passwd = opts.Password
	cfg.Net = "tcp"
	host := opts.Host
	if host == "" {
		host = "localhost"
	}
	port := opts.Port
	if port == 0 {
		port = 3306
	}
	cfg.Addr = fmt.Sprintf("%s:%d", host, port)
	cfg.DBName = opts.Database
	// Date, time and datetime columns arrive as time.Time instead of raw
	// byte strings.
	cfg.ParseTime = true
	return cfg.FormatDSN()
}

// mysqlColumnType maps a MySQL native column type, including the
// signedness the driver folds into the type name, to its canonical type.
func mysqlColumnType(column, nativeType string) (ColumnType, error) {
	native := strings.ToUpper(nativeType)
	unsigned := strings.HasPrefix(native, "UNSIGNED ")
	base := strings.TrimPrefix(native, "UNSIGNED ")

	signed := func(s, u ColumnType) (ColumnType, error) {
		if unsigned {
			return u, nil
		}
		return s, nil
	}

	switch base {
	case "TINYINT":
		return signed(TypeI8, TypeU8)
	case "SMALLINT":
		return signed(TypeI16, TypeU16)
	case "MEDIUMINT", "INT":
		return signed(TypeI32, TypeU32)
	case "BIGINT":
		return signed(TypeI64, TypeU64)
	case "YEAR":
		return TypeI64, nil
	case "FLOAT":
		return TypeF32, nil
	case "DOUBLE":
		return TypeF64, nil
	case "DECIMAL":
		return TypeDecimal, nil
	case "CHAR", "VARCHAR", "TEXT", "TINYTEXT", "MEDIUMTEXT", "LONGTEXT":
		return TypeString, nil
	case "BLOB", "TINYBLOB", "MEDIUMBLOB", "LONGBLOB", "BINARY", "VARBINARY":
		return TypeBytes, nil
	case "JSON":
		return TypeJSON, nil
	case "DATE":
		return TypeDate, nil
	case "TIME":
		return TypeTime, nil
	case "DATETIME":
		return TypeDateTime, nil
	case "TIMESTAMP":
		return TypeTimestamp, nil
	}
	// BIT, ENUM, SET and GEOMETRY have no canonical representation.
	return TypeNone, &UnsupportedColumnTypeError{Backend: "mysql", Column: column, Native: native}
}
