package sources

import (
	"fmt"
	"net/url"
	"strings"

	_ "github.com/lib/pq" // registers the postgres driver
)

func postgresDSN(opts *PostgresOptions) string {
	u := url.URL{Scheme: "postgres"}
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
		port = 5432
	}
	u.Host = fmt.Sprintf("%s:%d", host, port)
	if opts.Database != "" {
		u.Path = "/" + opts.Database
	}
	u.RawQuery = "sslmode=disable"
	return u.String()
}

// postgresColumnType maps a postgres native type name (as reported by
// lib/pq, e.g. INT4, FLOAT8, BPCHAR) to its canonical type.
func postgresColumnType(column, nativeType string) (ColumnType, error) {
	native := strings.ToUpper(nativeType)
	switch native {
	case "INT2":
		return TypeI16, nil
	case "INT4":
		return TypeI32, nil
	case "INT8":
		return TypeI64, nil
	case "FLOAT4":
		return TypeF32, nil
	case "FLOAT8":
		return TypeF64, nil
	case "NUMERIC":
		return TypeDecimal, nil
	case "BOOL":
		return TypeBool, nil
	case "TEXT", "VARCHAR", "BPCHAR", "CHAR", "NAME", "UUID":
		return TypeString, nil
	case "BYTEA":
		return TypeBytes, nil
	case "JSON", "JSONB":
		return TypeJSON, nil
	case "DATE":
		return TypeDate, nil
	case "TIME", "TIMETZ":
		return TypeTime, nil
	case "TIMESTAMP":
		return TypeDateTime, nil
	case "TIMESTAMPTZ":
		return TypeTimestamp, nil
	}
	return TypeNone, &UnsupportedColumnTypeError{Backend: "postgres", Column: column, Native: native}
}
