package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/Fiedzia/dbexport/shell"
)

var shellClient string

var shellCmd = &cobra.Command{
	Use:   "shell <backend>",
	Short: "Spawn an interactive client for a database",
}

func init() {
	shellCmd.PersistentFlags().StringVarP(&shellClient, "client", "c", "", "Select client (mysql: mysql, mycli, python; postgres: psql; sqlite: sqlite3)")

	mysqlCmd := &cobra.Command{Use: "mysql", Short: "Open a mysql shell"}
	mysqlOpts := addMysqlFlags(mysqlCmd)
	mysqlCmd.RunE = func(cmd *cobra.Command, args []string) error {
		mysqlOpts.Password = envPassword(mysqlOpts.Password, "DBEXPORT_MYSQL_PASSWORD")
		switch shellClient {
		case "", "mysql":
			return shell.Mysql(mysqlOpts)
		case "mycli":
			return shell.Mycli(mysqlOpts)
		case "python":
			return shell.PythonMysql(mysqlOpts)
		}
		return fmt.Errorf("unknown client: %s", shellClient)
	}

	postgresCmd := &cobra.Command{Use: "postgres", Short: "Open a postgres shell"}
	postgresOpts := addPostgresFlags(postgresCmd)
	postgresCmd.RunE = func(cmd *cobra.Command, args []string) error {
		postgresOpts.Password = envPassword(postgresOpts.Password, "DBEXPORT_POSTGRES_PASSWORD")
		switch shellClient {
		case "", "psql":
			return shell.Psql(postgresOpts)
		}
		return fmt.Errorf("unknown client: %s", shellClient)
	}

	sqliteCmd := &cobra.Command{Use: "sqlite", Short: "Open a sqlite shell"}
	sqliteOpts := addSqliteFlags(sqliteCmd)
	sqliteCmd.RunE = func(cmd *cobra.Command, args []string) error {
		switch shellClient {
		case "", "sqlite3":
			return shell.Sqlite(sqliteOpts)
		}
		return fmt.Errorf("unknown client: %s", shellClient)
	}

	shellCmd.AddCommand(mysqlCmd, postgresCmd, sqliteCmd)
	rootCmd.AddCommand(shellCmd)
}
