package cmd

import (
	"os"
	"path/filepath"
	"testing"
)

func TestCommandTree(t *testing.T) {
	want := map[string][]string{
		"export": {"mysql", "postgres", "sqlite", "mssql"},
		"schema": {"mysql", "postgres", "sqlite", "mssql"},
		"shell":  {"mysql", "postgres", "sqlite"},
	}
	for name, subs := range want {
		cmd, _, err := rootCmd.Find([]string{name})
		if err != nil || cmd.Name() != name {
			t.Fatalf("command %q not registered: %v", name, err)
		}
		for _, sub := range subs {
			if c, _, err := rootCmd.Find([]string{name, sub}); err != nil || c.Name() != sub {
				t.Errorf("command %q has no %q subcommand", name, sub)
			}
		}
	}
	for _, dest := range []string{"sqlite", "duckdb", "csv", "text-vertical"} {
		c, _, err := rootCmd.Find([]string{"export", "mysql", dest})
		if err != nil || c.Name() != dest {
			t.Errorf("export mysql has no %q destination", dest)
		}
	}
}

func TestEnvPassword(t *testing.T) {
	t.Setenv("DBEXPORT_MYSQL_PASSWORD", "fromenv")
	if got := envPassword("fromflag", "DBEXPORT_MYSQL_PASSWORD"); got != "fromflag" {
		t.Errorf("envPassword with flag = %q, want fromflag", got)
	}
	if got := envPassword("", "DBEXPORT_MYSQL_PASSWORD"); got != "fromenv" {
		t.Errorf("envPassword without flag = %q, want fromenv", got)
	}
	os.Unsetenv("DBEXPORT_MYSQL_PASSWORD")
	if got := envPassword("", "DBEXPORT_MYSQL_PASSWORD"); got != "" {
		t.Errorf("envPassword without flag or env = %q, want empty", got)
	}
}

func TestExportSqliteToCSV(t *testing.T) {
	dir := t.TempDir()
	dbFile := filepath.Join(dir, "src.db")
	outFile := filepath.Join(dir, "out.csv")

	rootCmd.SetArgs([]string{
		"export", "sqlite",
		"-f", dbFile,
		"-i", "create table t (id integer, name text)",
		"-i", "insert into t values (1, 'alice')",
		"-q", "select id, name from t",
		"csv", outFile,
	})
	if err := rootCmd.Execute(); err != nil {
		t.Fatalf("Execute: %v", err)
	}

	data, err := os.ReadFile(outFile)
	if err != nil {
		t.Fatalf("ReadFile: %v", err)
	}
	want := "id,name\n1,alice\n"
	if string(data) != want {
		t.Errorf("csv output = %q, want %q", data, want)
	}
}
