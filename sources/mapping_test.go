package sources

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestMysqlColumnType(t *testing.T) {
	tests := []struct {
		native string
		want   ColumnType
	}{
		{"TINYINT", TypeI8},
		{"UNSIGNED TINYINT", TypeU8},
		{"SMALLINT", TypeI16},
		{"UNSIGNED SMALLINT", TypeU16},
		{"MEDIUMINT", TypeI32},
		{"INT", TypeI32},
		{"UNSIGNED INT", TypeU32},
		{"BIGINT", TypeI64},
		{"UNSIGNED BIGINT", TypeU64},
		{"YEAR", TypeI64},
		{"FLOAT", TypeF32},
		{"DOUBLE", TypeF64},
		{"DECIMAL", TypeDecimal},
		{"VARCHAR", TypeString},
		{"TEXT", TypeString},
		{"BLOB", TypeBytes},
		{"VARBINARY", TypeBytes},
		{"JSON", TypeJSON},
		{"DATE", TypeDate},
		{"TIME", TypeTime},
		{"DATETIME", TypeDateTime},
		{"TIMESTAMP", TypeTimestamp},
	}
	for _, tt := range tests {
		got, err := mysqlColumnType("c", tt.native)
		assert.NoError(t, err, tt.native)
		assert.Equal(t, tt.want, got, tt.native)
	}
}

func TestMysqlColumnTypeUnsupported(t *testing.T) {
	for _, native := range []string{"GEOMETRY", "ENUM", "SET", "BIT"} {
		_, err := mysqlColumnType("c", native)
		var unsupported *UnsupportedColumnTypeError
		if !errors.As(err, &unsupported) {
			t.Fatalf("%s: expected UnsupportedColumnTypeError, got %v", native, err)
		}
		assert.Equal(t, "mysql", unsupported.Backend)
		assert.Equal(t, native, unsupported.Native)
	}
}

func TestPostgresColumnType(t *testing.T) {
	tests := []struct {
		native string
		want   ColumnType
	}{
		{"INT2", TypeI16},
		{"INT4", TypeI32},
		{"INT8", TypeI64},
		{"FLOAT4", TypeF32},
		{"FLOAT8", TypeF64},
		{"NUMERIC", TypeDecimal},
		{"BOOL", TypeBool},
		{"TEXT", TypeString},
		{"VARCHAR", TypeString},
		{"BPCHAR", TypeString},
		{"BYTEA", TypeBytes},
		{"JSONB", TypeJSON},
		{"DATE", TypeDate},
		{"TIME", TypeTime},
		{"TIMESTAMP", TypeDateTime},
		{"TIMESTAMPTZ", TypeTimestamp},
	}
	for _, tt := range tests {
		got, err := postgresColumnType("c", tt.native)
		assert.NoError(t, err, tt.native)
		assert.Equal(t, tt.want, got, tt.native)
	}

	_, err := postgresColumnType("c", "POINT")
	var unsupported *UnsupportedColumnTypeError
	assert.ErrorAs(t, err, &unsupported)
}

func TestSqliteColumnType(t *testing.T) {
	tests := []struct {
		native string
		want   ColumnType
	}{
		{"INTEGER", TypeI64},
		{"integer", TypeI64},
		{"BIGINT", TypeI64},
		{"REAL", TypeF64},
		{"TEXT", TypeString},
		{"VARCHAR(40)", TypeString},
		{"", TypeString},
		{"BLOB", TypeBytes},
		{"NUMERIC", TypeDecimal},
		{"BOOLEAN", TypeBool},
		{"DATE", TypeDate},
		{"DATETIME", TypeDateTime},
		{"TIMESTAMP", TypeTimestamp},
	}
	for _, tt := range tests {
		got, err := sqliteColumnType("c", tt.native)
		assert.NoError(t, err, tt.native)
		assert.Equal(t, tt.want, got, tt.native)
	}
}

func TestMssqlColumnType(t *testing.T) {
	tests := []struct {
		native string
		want   ColumnType
	}{
		{"TINYINT", TypeU8}, // tinyint is unsigned in T-SQL
		{"SMALLINT", TypeI16},
		{"INT", TypeI32},
		{"BIGINT", TypeI64},
		{"REAL", TypeF32},
		{"FLOAT", TypeF64},
		{"DECIMAL", TypeDecimal},
		{"MONEY", TypeDecimal},
		{"BIT", TypeBool},
		{"NVARCHAR", TypeString},
		{"VARBINARY", TypeBytes},
		{"DATE", TypeDate},
		{"TIME", TypeTime},
		{"DATETIME2", TypeDateTime},
		{"DATETIMEOFFSET", TypeTimestamp},
	}
	for _, tt := range tests {
		got, err := mssqlColumnType("c", tt.native)
		assert.NoError(t, err, tt.native)
		assert.Equal(t, tt.want, got, tt.native)
	}

	_, err := mssqlColumnType("c", "GEOGRAPHY")
	var unsupported *UnsupportedColumnTypeError
	assert.ErrorAs(t, err, &unsupported)
}
