package cmd

import (
	"os"

	"github.com/spf13/cobra"

	"github.com/Fiedzia/dbexport/schematree"
	"github.com/Fiedzia/dbexport/sources"
)

var (
	schemaRegex bool
	schemaQuery string
)

var schemaCmd = &cobra.Command{
	Use:   "schema <backend>",
	Short: "Print the schema tree of a database",
}

// runSchema builds the schema tree over an open connection, filters it
// when a search query was given and prints it to stdout. The matcher is
// built first so a bad regex fails before any connection is opened.
func runSchema(src *sources.Source) error {
	var matcher *schematree.Matcher
	if schemaQuery != "" {
		m, err := schematree.NewMatcher(schemaQuery, schemaRegex)
		if err != nil {
			return err
		}
		matcher = m
	}
	conn, err := src.Connect()
	if err != nil {
		return err
	}
	defer conn.Close()
	tree, err := schematree.Load(conn)
	if err != nil {
		return err
	}
	if matcher != nil {
		tree = tree.SubtreeMatching(matcher)
	}
	tree.Print(os.Stdout)
	return nil
}

func init() {
	schemaCmd.PersistentFlags().BoolVarP(&schemaRegex, "regex", "r", false, "Use regular expression engine")
	schemaCmd.PersistentFlags().StringVarP(&schemaQuery, "query", "q", "", "Show items matching query")

	mysqlCmd := &cobra.Command{Use: "mysql", Short: "Browse a mysql schema"}
	mysqlOpts := addMysqlFlags(mysqlCmd)
	mysqlCmd.RunE = func(cmd *cobra.Command, args []string) error {
		mysqlOpts.Password = envPassword(mysqlOpts.Password, "DBEXPORT_MYSQL_PASSWORD")
		return runSchema(sources.NewMysqlSource(mysqlOpts))
	}

	postgresCmd := &cobra.Command{Use: "postgres", Short: "Browse a postgres schema"}
	postgresOpts := addPostgresFlags(postgresCmd)
	postgresCmd.RunE = func(cmd *cobra.Command, args []string) error {
		postgresOpts.Password = envPassword(postgresOpts.Password, "DBEXPORT_POSTGRES_PASSWORD")
		return runSchema(sources.NewPostgresSource(postgresOpts))
	}

	sqliteCmd := &cobra.Command{Use: "sqlite", Short: "Browse a sqlite schema"}
	sqliteOpts := addSqliteFlags(sqliteCmd)
	sqliteCmd.RunE = func(cmd *cobra.Command, args []string) error {
		return runSchema(sources.NewSqliteSource(sqliteOpts))
	}

	mssqlCmd := &cobra.Command{Use: "mssql", Short: "Browse a sql server schema"}
	mssqlOpts := addMssqlFlags(mssqlCmd)
	mssqlCmd.RunE = func(cmd *cobra.Command, args []string) error {
		mssqlOpts.Password = envPassword(mssqlOpts.Password, "DBEXPORT_MSSQL_PASSWORD")
		return runSchema(sources.NewMssqlSource(mssqlOpts))
	}

	schemaCmd.AddCommand(mysqlCmd, postgresCmd, sqliteCmd, mssqlCmd)
	rootCmd.AddCommand(schemaCmd)
}
