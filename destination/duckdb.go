package destination

import (
	"database/sql"
	"fmt"
	"strings"

	_ "github.com/marcboeker/go-duckdb" // registers the duckdb driver

	"github.com/Fiedzia/dbexport/sources"
)

// DuckDB writes the stream into a table of a duckdb database file, the
// same way the SQLite sink does but with duckdb identifier quoting.
type DuckDB struct {
	filename string
	table    string
	db       *sql.DB
	insert   string
}

func NewDuckDB(filename, table string) *DuckDB {
	if table == "" {
		table = "data"
	}
	return &DuckDB{filename: filename, table: table}
}

func (d *DuckDB) WriteColumns(cols []sources.ColumnInfo) error {
	db, err := sql.Open("duckdb", d.filename)
	if err != nil {
		return fmt.Errorf("cannot open duckdb file: %w", err)
	}
	d.db = db
	if _, err := db.Exec(fmt.Sprintf("DROP TABLE IF EXISTS %q", d.table)); err != nil {
		return fmt.Errorf("cannot drop table: %w", err)
	}
	colDefs := make([]string, len(cols))
	for i, col := range cols {
		colDefs[i] = fmt.Sprintf("%q %s", col.Name, duckdbTypeName(col.Type))
	}
	create := fmt.Sprintf("CREATE TABLE %q (%s)", d.table, strings.Join(colDefs, ", "))
	if _, err := db.Exec(create); err != nil {
		return fmt.Errorf("cannot create table: %w", err)
	}
	d.insert = fmt.Sprintf("INSERT INTO %q VALUES (%s)",
		d.table, strings.TrimRight(strings.Repeat("?,", len(cols)), ","))
	return nil
}

func (d *DuckDB) WriteBatch(batch []sources.Row) error {
	tx, err := d.db.Begin()
	if err != nil {
		return fmt.Errorf("cannot begin transaction: %w", err)
	}
	stmt, err := tx.Prepare(d.insert)
	if err != nil {
		tx.Rollback()
		return fmt.Errorf("cannot prepare insert: %w", err)
	}
	defer stmt.Close()
	args := make([]interface{}, 0, 16)
	for _, row := range batch {
		args = args[:0]
		for _, value := range row {
			args = append(args, value.Arg())
		}
		if _, err := stmt.Exec(args...); err != nil {
			tx.Rollback()
			return fmt.Errorf("cannot insert row: %w", err)
		}
	}
	return tx.Commit()
}

func (d *DuckDB) Close() error {
	if d.db == nil {
		return nil
	}
	return d.db.Close()
}

func duckdbTypeName(t sources.ColumnType) string {
	switch t {
	case sources.TypeI8:
		return "TINYINT"
	case sources.TypeI16:
		return "SMALLINT"
	case sources.TypeI32:
		return "INTEGER"
	case sources.TypeI64:
		return "BIGINT"
	case sources.TypeU8:
		return "UTINYINT"
	case sources.TypeU16:
		return "USMALLINT"
	case sources.TypeU32:
		return "UINTEGER"
	case sources.TypeU64:
		return "UBIGINT"
	case sources.TypeF32:
		return "FLOAT"
	case sources.TypeF64:
		return "DOUBLE"
	case sources.TypeBool:
		return "BOOLEAN"
	case sources.TypeBytes:
		return "BLOB"
	case sources.TypeDecimal:
		return "DECIMAL(38,9)"
	case sources.TypeDate:
		return "DATE"
	case sources.TypeTime:
		return "TIME"
	case sources.TypeDateTime, sources.TypeTimestamp:
		return "TIMESTAMP"
	default:
		return "VARCHAR"
	}
}
