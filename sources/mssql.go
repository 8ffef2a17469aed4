package sources

import (
	"fmt"
	"net/url"
	"strings"

	_ "github.com/denisenkom/go-mssqldb" // registers the sqlserver driver
)

func mssqlDSN(opts *MssqlOptions) string {
	u := url.URL{Scheme: "sqlserver"}
	if opts.User != "" {
		if opts.Password != "" {
			u.User = url.UserPassword(opts.User, opts.Password)
		} else {
			u.User = url.User(opts.User)
		}
	}
	host := opts.Host
	if host == "" {
		host = "localhost"
	}
	port := opts.Port
	if port == 0 {
		port = 1433
	}
	u.Host = fmt.Sprintf("%s:%d", host, port)
	query := url.Values{}
	if opts.Database != "" {
		query.Set("database", opts.Database)
	}
	query.Set("encrypt", "disable")
	u.RawQuery = query.Encode()
	return u.String()
}

// mssqlColumnType maps a SQL Server native type name to its canonical
// type. TINYINT is unsigned in T-SQL.
func mssqlColumnType(column, nativeType string) (ColumnType, error) {
	native := strings.ToUpper(nativeType)
	switch native {
	case "TINYINT":
		return TypeU8, nil
	case "SMALLINT":
		return TypeI16, nil
	case "INT":
		return TypeI32, nil
	case "BIGINT":
		return TypeI64, nil
	case "REAL":
		return TypeF32, nil
	case "FLOAT":
		return TypeF64, nil
	case "DECIMAL", "NUMERIC", "MONEY", "SMALLMONEY":
		return TypeDecimal, nil
	case "BIT":
		return TypeBool, nil
	case "CHAR", "VARCHAR", "NCHAR", "NVARCHAR", "TEXT", "NTEXT", "UNIQUEIDENTIFIER", "XML":
		return TypeString, nil
	case "BINARY", "VARBINARY", "IMAGE":
		return TypeBytes, nil
	case "DATE":
		return TypeDate, nil
	case "TIME":
		return TypeTime, nil
	case "DATETIME", "DATETIME2", "SMALLDATETIME":
		return TypeDateTime, nil
	case "DATETIMEOFFSET":
		return TypeTimestamp, nil
	}
	return TypeNone, &UnsupportedColumnTypeError{Backend: "mssql", Column: column, Native: native}
}
