// dbexport streams query results out of SQL databases into files and
// browses database schemas.
//
// Usage:
//
//	dbexport export [--batch-size N] <backend> [connection flags] <destination> <file>
//	  Stream the result of a query into a sqlite, duckdb, csv or text-vertical file
//	dbexport schema [--query <q>] [--regex] <backend> [connection flags]
//	  Print the schema tree (schemas, tables, columns), optionally filtered
//	dbexport shell [--client <client>] <backend> [connection flags]
//	  Spawn an interactive client for the database
//
// Backends: mysql, postgres, sqlite, mssql.
package main

import "github.com/Fiedzia/dbexport/cmd"

func main() {
	cmd.Execute()
}
