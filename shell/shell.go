// Package shell spawns interactive database clients with already
// validated connection options. It is pure process orchestration; the
// core export and schema code never touches it.
package shell

import (
	"fmt"
	"os"
	"os/exec"
	"strconv"

	"github.com/Fiedzia/dbexport/sources"
)

func run(name string, args []string, env []string) error {
	cmd := exec.Command(name, args...)
	cmd.Stdin = os.Stdin
	cmd.Stdout = os.Stdout
	cmd.Stderr = os.Stderr
	cmd.Env = append(os.Environ(), env...)
	if err := cmd.Run(); err != nil {
		return fmt.Errorf("failed to run %s: %w", name, err)
	}
	return nil
}

func mysqlArgs(opts *sources.MysqlOptions) []string {
	var args []string
	if opts.Host != "" {
		args = append(args, "-h", opts.Host)
	}
	if opts.User != "" {
		args = append(args, "-u", opts.User)
	}
	if opts.Port != 0 {
		args = append(args, "-P", strconv.Itoa(opts.Port))
	}
	if opts.Password != "" {
		args = append(args, "-p"+opts.Password)
	}
	if opts.Database != "" {
		args = append(args, opts.Database)
	}
	return args
}

// Mysql spawns the stock mysql command-line client.
func Mysql(opts *sources.MysqlOptions) error {
	return run("mysql", mysqlArgs(opts), nil)
}

// Mycli spawns the mycli client; it takes the same flags as mysql.
func Mycli(opts *sources.MysqlOptions) error {
	return run("mycli", mysqlArgs(opts), nil)
}

// Psql spawns the stock postgres client.
func Psql(opts *sources.PostgresOptions) error {
	var args []string
	var env []string
	if opts.Host != "" {
		args = append(args, "-h", opts.Host)
	}
	if opts.User != "" {
		args = append(args, "-U", opts.User)
	}
	if opts.Port != 0 {
		args = append(args, "-p", strconv.Itoa(opts.Port))
	}
	if opts.Database != "" {
		args = append(args, opts.Database)
	}
	if opts.Password != "" {
		env = append(env, "PGPASSWORD="+opts.Password)
	}
	return run("psql", args, env)
}

// Sqlite spawns the sqlite3 client on the database file.
func Sqlite(opts *sources.SqliteOptions) error {
	return run("sqlite3", []string{opts.File}, nil)
}
