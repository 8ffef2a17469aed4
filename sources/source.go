package sources

import (
	"database/sql"
	"fmt"
	"os"

	"github.com/rs/zerolog/log"
)

// Kind identifies a backend family. The set is closed; every operation on
// a Source dispatches on it.
type Kind int

const (
	Mysql Kind = iota
	Postgres
	Sqlite
	Mssql
)

func (k Kind) String() string {
	switch k {
	case Mysql:
		return "mysql"
	case Postgres:
		return "postgres"
	case Sqlite:
		return "sqlite"
	case Mssql:
		return "mssql"
	}
	return fmt.Sprintf("kind(%d)", int(k))
}

// MysqlOptions holds connection parameters for a MySQL server.
type MysqlOptions struct {
	Host     string
	User     string
	Password string
	Port     int
	Database string
	Init     []string
}

// PostgresOptions holds connection parameters for a PostgreSQL server.
type PostgresOptions struct {
	Host     string
	User     string
	Password string
	Port     int
	Database string
	Init     []string
}

// SqliteOptions holds connection parameters for a SQLite database file.
type SqliteOptions struct {
	File string
	Init []string
}

// MssqlOptions holds connection parameters for a SQL Server instance.
type MssqlOptions struct {
	Host     string
	User     string
	Password string
	Port     int
	Database string
	Init     []string
}

// Source is a closed variant over the supported backend kinds. Exactly
// one of the options fields matching Kind is set.
type Source struct {
	Kind     Kind
	Mysql    *MysqlOptions
	Postgres *PostgresOptions
	Sqlite   *SqliteOptions
	Mssql    *MssqlOptions

	// Query is the statement to export; QueryFile names a file holding it
	// instead. Count requests an exact row count before the export starts.
	Query     string
	QueryFile string
	Count     bool
}

func NewMysqlSource(opts *MysqlOptions) *Source { return &Source{Kind: Mysql, Mysql: opts} }

func NewPostgresSource(opts *PostgresOptions) *Source {
	return &Source{Kind: Postgres, Postgres: opts}
}

func NewSqliteSource(opts *SqliteOptions) *Source { return &Source{Kind: Sqlite, Sqlite: opts} }

func NewMssqlSource(opts *MssqlOptions) *Source { return &Source{Kind: Mssql, Mssql: opts} }

func (s *Source) driverName() string {
	switch s.Kind {
	case Mysql:
		return "mysql"
	case Postgres:
		return "postgres"
	case Sqlite:
		return "sqlite3"
	case Mssql:
		return "sqlserver"
	}
	return ""
}

func (s *Source) dsn() (string, error) {
	switch s.Kind {
	case Mysql:
		return mysqlDSN(s.Mysql), nil
	case Postgres:
		return postgresDSN(s.Postgres), nil
	case Sqlite:
		return sqliteDSN(s.Sqlite), nil
	case Mssql:
		return mssqlDSN(s.Mssql), nil
	}
	return "", fmt.Errorf("unknown backend kind %v", s.Kind)
}

func (s *Source) initStatements() []string {
	switch s.Kind {
	case Mysql:
		return s.Mysql.Init
	case Postgres:
		return s.Postgres.Init
	case Sqlite:
		return s.Sqlite.Init
	case Mssql:
		return s.Mssql.Init
	}
	return nil
}

// mapColumn translates one native column-type tag into the canonical
// ColumnType. The mapping is total per backend; anything outside it
// yields UnsupportedColumnTypeError.
func (s *Source) mapColumn(column, native string) (ColumnType, error) {
	switch s.Kind {
	case Mysql:
		return mysqlColumnType(column, native)
	case Postgres:
		return postgresColumnType(column, native)
	case Sqlite:
		return sqliteColumnType(column, native)
	case Mssql:
		return mssqlColumnType(column, native)
	}
	return TypeNone, fmt.Errorf("unknown backend kind %v", s.Kind)
}

// Connection wraps an open connection pool. It is owned by a single
// caller; nothing here is safe for concurrent use.
type Connection struct {
	source *Source
	db     *sql.DB
}

// Connect opens the connection, verifies it with a ping and runs the
// configured init statements. A failing init statement is reported with
// its text and aborts the connection; no partial init.
func (s *Source) Connect() (*Connection, error) {
	dsn, err := s.dsn()
	if err != nil {
		return nil, err
	}
	db, err := sql.Open(s.driverName(), dsn)
	if err != nil {
		return nil, fmt.Errorf("%s: cannot open connection: %w", s.Kind, err)
	}
	if err := db.Ping(); err != nil {
		db.Close()
		return nil, fmt.Errorf("%s: cannot connect: %w", s.Kind, err)
	}
	log.Debug().Str("backend", s.Kind.String()).Msg("connected")
	for _, stmt := range s.initStatements() {
		if _, err := db.Exec(stmt); err != nil {
			db.Close()
			return nil, &QueryError{Query: stmt, Err: err}
		}
	}
	return &Connection{source: s, db: db}, nil
}

// DB exposes the underlying pool for metadata queries (schema browsing).
func (c *Connection) DB() *sql.DB { return c.db }

// Kind returns the backend family of the connection.
func (c *Connection) Kind() Kind { return c.source.Kind }

// Database returns the configured database name, if any.
func (c *Connection) Database() string {
	switch c.source.Kind {
	case Mysql:
		return c.source.Mysql.Database
	case Postgres:
		return c.source.Postgres.Database
	case Mssql:
		return c.source.Mssql.Database
	}
	return ""
}

func (c *Connection) Close() error { return c.db.Close() }

// query resolves the export statement from Query or QueryFile.
func (c *Connection) query() (string, error) {
	if c.source.Query != "" {
		return c.source.Query, nil
	}
	if c.source.QueryFile != "" {
		data, err := os.ReadFile(c.source.QueryFile)
		if err != nil {
			return "", fmt.Errorf("cannot read query file: %w", err)
		}
		return string(data), nil
	}
	return "", fmt.Errorf("no query given: pass --query or --query-file")
}
