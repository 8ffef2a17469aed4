// Package cmd contains the command-line interface of dbexport: the
// export, schema and shell commands with their backend and destination
// subcommands.
package cmd

import (
	"fmt"
	"os"

	"github.com/joho/godotenv"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"
)

var verbose bool

var rootCmd = &cobra.Command{
	Use:   "dbexport",
	Short: "Export data from databases to sqlite/duckdb/csv/text files",
	Long:  `A CLI tool to stream query results out of MySQL, PostgreSQL, SQLite or SQL Server into sqlite, duckdb, csv or text-vertical files, and to browse database schemas.`,
	PersistentPreRun: func(cmd *cobra.Command, args []string) {
		// Connection parameters may live in a .env file.
		_ = godotenv.Load()
		log.Logger = log.Output(zerolog.ConsoleWriter{Out: os.Stderr})
		if verbose {
			zerolog.SetGlobalLevel(zerolog.DebugLevel)
		} else {
			zerolog.SetGlobalLevel(zerolog.InfoLevel)
		}
	},
}

func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func init() {
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "Be verbose")
}
