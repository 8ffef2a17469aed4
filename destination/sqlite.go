package destination

import (
	"database/sql"
	"fmt"
	"strings"

	_ "github.com/mattn/go-sqlite3" // registers the sqlite3 driver

	"github.com/Fiedzia/dbexport/sources"
)

// SQLite writes the stream into a table of a sqlite database file. An
// existing table with the same name is dropped and recreated. Every
// batch is inserted inside one transaction through a prepared statement.
type SQLite struct {
	filename string
	table    string
	db       *sql.DB
	insert   string
}

func NewSQLite(filename, table string) *SQLite {
	if table == "" {
		table = "data"
	}
	return &SQLite{filename: filename, table: table}
}

func (d *SQLite) WriteColumns(cols []sources.ColumnInfo) error {
	db, err := sql.Open("sqlite3", d.filename)
	if err != nil {
		return fmt.Errorf("cannot open sqlite file: %w", err)
	}
	d.db = db
	if _, err := db.Exec(fmt.Sprintf("DROP TABLE IF EXISTS [%s]", d.table)); err != nil {
		return fmt.Errorf("cannot drop table: %w", err)
	}
	colDefs := make([]string, len(cols))
	for i, col := range cols {
		colDefs[i] = fmt.Sprintf("[%s] %s", col.Name, sqliteTypeName(col.Type))
	}
	create := fmt.Sprintf("CREATE TABLE [%s] (%s)", d.table, strings.Join(colDefs, ", "))
	if _, err := db.Exec(create); err != nil {
		return fmt.Errorf("cannot create table: %w", err)
	}
	d.insert = fmt.Sprintf("INSERT INTO [%s] VALUES (%s)",
		d.table, strings.TrimRight(strings.Repeat("?,", len(cols)), ","))
	return nil
}

func (d *SQLite) WriteBatch(batch []sources.Row) error {
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

func (d *SQLite) Close() error {
	if d.db == nil {
		return nil
	}
	return d.db.Close()
}

func sqliteTypeName(t sources.ColumnType) string {
	switch t {
	case sources.TypeI8, sources.TypeI16, sources.TypeI32, sources.TypeI64,
		sources.TypeU8, sources.TypeU16, sources.TypeU32, sources.TypeU64,
		sources.TypeBool:
		return "INTEGER"
	case sources.TypeF32, sources.TypeF64:
		return "REAL"
	case sources.TypeBytes:
		return "BLOB"
	case sources.TypeDecimal:
		return "NUMERIC"
	default:
		return "TEXT"
	}
}
