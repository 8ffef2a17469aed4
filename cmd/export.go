package cmd

import (
	"github.com/spf13/cobra"

	"github.com/Fiedzia/dbexport/destination"
	"github.com/Fiedzia/dbexport/export"
	"github.com/Fiedzia/dbexport/sources"
)

var batchSize int

var exportCmd = &cobra.Command{
	Use:   "export <backend>",
	Short: "Export data from a database to a file",
}

// queryFlags are the export-only flags every backend command carries on
// top of its connection flags.
type queryFlags struct {
	query     string
	queryFile string
	count     bool
}

func addQueryFlags(cmd *cobra.Command) *queryFlags {
	qf := &queryFlags{}
	f := cmd.PersistentFlags()
	f.StringVarP(&qf.query, "query", "q", "", "Sql query to export")
	f.StringVar(&qf.queryFile, "query-file", "", "File containing the sql query to export")
	f.BoolVarP(&qf.count, "count", "c", false, "Run another query to get the exact row count first")
	return qf
}

func (qf *queryFlags) apply(src *sources.Source) *sources.Source {
	src.Query = qf.query
	src.QueryFile = qf.queryFile
	src.Count = qf.count
	return src
}

// addDestinationCommands attaches the destination leaf commands to a
// backend command. makeSource is evaluated at run time, after flags have
// been parsed.
func addDestinationCommands(backend *cobra.Command, makeSource func() *sources.Source) {
	sqliteCmd := &cobra.Command{
		Use:   "sqlite <file> [table]",
		Short: "Write to a table of a sqlite file (default table: data)",
		Args:  cobra.RangeArgs(1, 2),
		RunE: func(cmd *cobra.Command, args []string) error {
			table := ""
			if len(args) > 1 {
				table = args[1]
			}
			return export.Run(makeSource(), destination.NewSQLite(args[0], table), batchSize)
		},
	}

	duckdbCmd := &cobra.Command{
		Use:   "duckdb <file> [table]",
		Short: "Write to a table of a duckdb file (default table: data)",
		Args:  cobra.RangeArgs(1, 2),
		RunE: func(cmd *cobra.Command, args []string) error {
			table := ""
			if len(args) > 1 {
				table = args[1]
			}
			return export.Run(makeSource(), destination.NewDuckDB(args[0], table), batchSize)
		},
	}

	csvCmd := &cobra.Command{
		Use:   "csv <file>",
		Short: "Write to a csv file",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			dest, err := destination.NewCSV(args[0])
			if err != nil {
				return err
			}
			return export.Run(makeSource(), dest, batchSize)
		},
	}

	var truncate int
	textVerticalCmd := &cobra.Command{
		Use:   "text-vertical <file>",
		Short: "Write to a text file, one line per column",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			dest, err := destination.NewTextVertical(args[0], truncate)
			if err != nil {
				return err
			}
			return export.Run(makeSource(), dest, batchSize)
		},
	}
	textVerticalCmd.Flags().IntVarP(&truncate, "truncate", "t", 0, "Truncate values to this many characters (0: no truncation)")

	backend.AddCommand(sqliteCmd, duckdbCmd, csvCmd, textVerticalCmd)
}

func init() {
	exportCmd.PersistentFlags().IntVarP(&batchSize, "batch-size", "b", 500, "Number of rows fetched per batch")

	mysqlCmd := &cobra.Command{Use: "mysql <destination>", Short: "Export from a mysql database"}
	mysqlOpts := addMysqlFlags(mysqlCmd)
	mysqlQuery := addQueryFlags(mysqlCmd)
	addDestinationCommands(mysqlCmd, func() *sources.Source {
		mysqlOpts.Password = envPassword(mysqlOpts.Password, "DBEXPORT_MYSQL_PASSWORD")
		return mysqlQuery.apply(sources.NewMysqlSource(mysqlOpts))
	})

	postgresCmd := &cobra.Command{Use: "postgres <destination>", Short: "Export from a postgres database"}
	postgresOpts := addPostgresFlags(postgresCmd)
	postgresQuery := addQueryFlags(postgresCmd)
	addDestinationCommands(postgresCmd, func() *sources.Source {
		postgresOpts.Password = envPassword(postgresOpts.Password, "DBEXPORT_POSTGRES_PASSWORD")
		return postgresQuery.apply(sources.NewPostgresSource(postgresOpts))
	})

	sqliteCmd := &cobra.Command{Use: "sqlite <destination>", Short: "Export from a sqlite database file"}
	sqliteOpts := addSqliteFlags(sqliteCmd)
	sqliteQuery := addQueryFlags(sqliteCmd)
	addDestinationCommands(sqliteCmd, func() *sources.Source {
		return sqliteQuery.apply(sources.NewSqliteSource(sqliteOpts))
	})

	mssqlCmd := &cobra.Command{Use: "mssql <destination>", Short: "Export from a sql server database"}
	mssqlOpts := addMssqlFlags(mssqlCmd)
	mssqlQuery := addQueryFlags(mssqlCmd)
	addDestinationCommands(mssqlCmd, func() *sources.Source {
		mssqlOpts.Password = envPassword(mssqlOpts.Password, "DBEXPORT_MSSQL_PASSWORD")
		return mssqlQuery.apply(sources.NewMssqlSource(mssqlOpts))
	})

	exportCmd.AddCommand(mysqlCmd, postgresCmd, sqliteCmd, mssqlCmd)
	rootCmd.AddCommand(exportCmd)
}
