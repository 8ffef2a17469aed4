package schematree

import (
	"database/sql"
	"fmt"

	"github.com/Fiedzia/dbexport/sources"
)

const mysqlSchemaQuery = `
select
    t.table_schema, t.table_name, coalesce(c.column_name, '')
from
    information_schema.tables t
left join
    information_schema.columns c
on
    t.table_schema = c.table_schema
    and t.table_name = c.table_name
%s
order by t.table_schema, t.table_name, c.column_name`

const postgresSchemaQuery = `
select
    t.table_schema, t.table_name, coalesce(c.column_name, '')
from
    information_schema.tables t
left join
    information_schema.columns c
on
    t.table_schema = c.table_schema
    and t.table_name = c.table_name
where
    t.table_schema not in ('pg_catalog', 'information_schema')%s
order by t.table_schema, t.table_name, c.column_name`

const mssqlSchemaQuery = `
select
    t.TABLE_SCHEMA, t.TABLE_NAME, coalesce(c.COLUMN_NAME, '')
from
    INFORMATION_SCHEMA.TABLES t
left join
    INFORMATION_SCHEMA.COLUMNS c
on
    t.TABLE_SCHEMA = c.TABLE_SCHEMA
    and t.TABLE_NAME = c.TABLE_NAME
order by t.TABLE_SCHEMA, t.TABLE_NAME, c.COLUMN_NAME`

const sqliteSchemaQuery = `
select
    m.name as table_name,
    p.name as column_name
from
    sqlite_master as m
join
    pragma_table_info(m.name) as p
where
    m.type = 'table'
order by m.name, p.cid`

// Load runs the backend's introspection query over an open connection
// and builds the schema tree from it. For backends with schema
// namespaces the configured database, when set, restricts the result.
func Load(conn *sources.Connection) (*Tree, error) {
	query, args := introspectionQuery(conn)
	rows, err := conn.DB().Query(query, args...)
	if err != nil {
		return nil, &sources.QueryError{Query: query, Err: err}
	}
	defer rows.Close()

	var items []Item
	for rows.Next() {
		item, err := scanItem(conn.Kind(), rows)
		if err != nil {
			return nil, err
		}
		items = append(items, item)
	}
	if err := rows.Err(); err != nil {
		return nil, &sources.QueryError{Query: query, Err: err}
	}
	return Build(items)
}

func introspectionQuery(conn *sources.Connection) (string, []interface{}) {
	switch conn.Kind() {
	case sources.Mysql:
		where := ""
		var args []interface{}
		if db := conn.Database(); db != "" {
			where = "where t.table_schema = ?"
			args = append(args, db)
		}
		return fmt.Sprintf(mysqlSchemaQuery, where), args
	case sources.Postgres:
		where := ""
		var args []interface{}
		if db := conn.Database(); db != "" {
			where = "\n    and t.table_catalog = $1"
			args = append(args, db)
		}
		return fmt.Sprintf(postgresSchemaQuery, where), args
	case sources.Mssql:
		return mssqlSchemaQuery, nil
	default:
		return sqliteSchemaQuery, nil
	}
}

func scanItem(kind sources.Kind, rows *sql.Rows) (Item, error) {
	var item Item
	if kind == sources.Sqlite {
		// No schema level; tables hang directly off the root.
		if err := rows.Scan(&item.Table, &item.Column); err != nil {
			return Item{}, fmt.Errorf("cannot scan metadata row: %w", err)
		}
		return item, nil
	}
	if err := rows.Scan(&item.Schema, &item.Table, &item.Column); err != nil {
		return Item{}, fmt.Errorf("cannot scan metadata row: %w", err)
	}
	return item, nil
}
