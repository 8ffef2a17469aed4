package cmd

import (
	"os"

	"github.com/spf13/cobra"

	"github.com/Fiedzia/dbexport/sources"
)

// Connection flags are registered as persistent flags so that the
// destination subcommands nested under a backend command inherit them.

func addMysqlFlags(cmd *cobra.Command) *sources.MysqlOptions {
	opts := &sources.MysqlOptions{}
	f := cmd.PersistentFlags()
	f.StringVar(&opts.Host, "host", "localhost", "Hostname")
	f.StringVarP(&opts.User, "user", "u", "", "Username")
	f.StringVarP(&opts.Password, "password", "p", "", "Password (env: DBEXPORT_MYSQL_PASSWORD)")
	f.IntVarP(&opts.Port, "port", "P", 3306, "Port")
	f.StringVarP(&opts.Database, "database", "D", "", "Database name")
	f.StringArrayVarP(&opts.Init, "init", "i", nil, "Initial sql commands (repeatable)")
	return opts
}

func addPostgresFlags(cmd *cobra.Command) *sources.PostgresOptions {
	opts := &sources.PostgresOptions{}
	f := cmd.PersistentFlags()
	f.StringVar(&opts.Host, "host", "localhost", "Hostname")
	f.StringVarP(&opts.User, "user", "u", "", "Username")
	f.StringVarP(&opts.Password, "password", "p", "", "Password (env: DBEXPORT_POSTGRES_PASSWORD)")
	f.IntVarP(&opts.Port, "port", "P", 5432, "Port")
	f.StringVarP(&opts.Database, "database", "D", "", "Database name")
	f.StringArrayVarP(&opts.Init, "init", "i", nil, "Initial sql commands (repeatable)")
	return opts
}

func addSqliteFlags(cmd *cobra.Command) *sources.SqliteOptions {
	opts := &sources.SqliteOptions{}
	f := cmd.PersistentFlags()
	f.StringVarP(&opts.File, "file", "f", "", "Sqlite database file")
	f.StringArrayVarP(&opts.Init, "init", "i", nil, "Initial sql commands (repeatable)")
	cmd.MarkPersistentFlagRequired("file")
	return opts
}

func addMssqlFlags(cmd *cobra.Command) *sources.MssqlOptions {
	opts := &sources.MssqlOptions{}
	f := cmd.PersistentFlags()
	f.StringVar(&opts.Host, "host", "localhost", "Hostname")
	f.StringVarP(&opts.User, "user", "u", "", "Username")
	f.StringVarP(&opts.Password, "password", "p", "", "Password (env: DBEXPORT_MSSQL_PASSWORD)")
	f.IntVarP(&opts.Port, "port", "P", 1433, "Port")
	f.StringVarP(&opts.Database, "database", "D", "", "Database name")
	f.StringArrayVarP(&opts.Init, "init", "i", nil, "Initial sql commands (repeatable)")
	return opts
}

// envPassword falls back to an environment variable when a password flag
// was left empty; .env files are loaded by the root command.
func envPassword(flagValue, envVar string) string {
	if flagValue != "" {
		return flagValue
	}
	return os.Getenv(envVar)
}
