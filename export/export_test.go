package export_test

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/Fiedzia/dbexport/destination"
	"github.com/Fiedzia/dbexport/export"
	"github.com/Fiedzia/dbexport/sources"
)

// recorder captures everything the pipeline forwards.
type recorder struct {
	cols    []sources.ColumnInfo
	colCall int
	batches [][]sources.Row
	closed  bool
}

func (r *recorder) WriteColumns(cols []sources.ColumnInfo) error {
	r.colCall++
	r.cols = cols
	return nil
}

func (r *recorder) WriteBatch(batch []sources.Row) error {
	r.batches = append(r.batches, batch)
	return nil
}

func (r *recorder) Close() error {
	r.closed = true
	return nil
}

func newSqliteSource(t *testing.T) *sources.Source {
	t.Helper()
	src := sources.NewSqliteSource(&sources.SqliteOptions{
		File: filepath.Join(t.TempDir(), "input.db"),
		Init: []string{
			"create table users (id integer, name text)",
			"insert into users values (1, 'alice')",
			"insert into users values (2, 'bob')",
		},
	})
	src.Query = "select id, name from users order by id"
	return src
}

func TestRunForwardsStreamToDestination(t *testing.T) {
	src := newSqliteSource(t)
	src.Count = true
	rec := &recorder{}
	if err := export.Run(src, rec, 1); err != nil {
		t.Fatalf("Run: %v", err)
	}
	if rec.colCall != 1 {
		t.Errorf("column metadata sent %d times, want exactly once", rec.colCall)
	}
	if len(rec.cols) != 2 || rec.cols[0].Type != sources.TypeI64 || rec.cols[1].Type != sources.TypeString {
		t.Errorf("unexpected column info: %+v", rec.cols)
	}
	if len(rec.batches) != 2 {
		t.Fatalf("expected 2 single-row batches, got %d", len(rec.batches))
	}
	for _, batch := range rec.batches {
		if len(batch) != 1 {
			t.Errorf("batch has %d rows, want 1", len(batch))
		}
		for _, row := range batch {
			if len(row) != len(rec.cols) {
				t.Errorf("row length %d != column count %d", len(row), len(rec.cols))
			}
		}
	}
	if rec.batches[0][0][1].Str != "alice" || rec.batches[1][0][1].Str != "bob" {
		t.Errorf("rows out of order: %+v", rec.batches)
	}
	if !rec.closed {
		t.Error("destination was not closed")
	}
}

func TestRunToCSVFile(t *testing.T) {
	src := newSqliteSource(t)
	outFile := filepath.Join(t.TempDir(), "out.csv")
	dest, err := destination.NewCSV(outFile)
	if err != nil {
		t.Fatalf("NewCSV: %v", err)
	}
	if err := export.Run(src, dest, 500); err != nil {
		t.Fatalf("Run: %v", err)
	}
	data, err := os.ReadFile(outFile)
	if err != nil {
		t.Fatalf("ReadFile: %v", err)
	}
	want := "id,name\n1,alice\n2,bob\n"
	if string(data) != want {
		t.Errorf("csv output = %q, want %q", data, want)
	}
}

func TestRunReportsFailingQueryText(t *testing.T) {
	src := sources.NewSqliteSource(&sources.SqliteOptions{
		File: filepath.Join(t.TempDir(), "input.db"),
	})
	src.Query = "select * from missing_table"
	err := export.Run(src, &recorder{}, 500)
	if err == nil {
		t.Fatal("expected error for missing table")
	}
	if !strings.Contains(err.Error(), "select * from missing_table") {
		t.Errorf("error does not contain the query text: %v", err)
	}
}

func TestRunReportsFailingInitStatement(t *testing.T) {
	src := sources.NewSqliteSource(&sources.SqliteOptions{
		File: filepath.Join(t.TempDir(), "input.db"),
		Init: []string{"create broken syntax"},
	})
	src.Query = "select 1"
	err := export.Run(src, &recorder{}, 500)
	if err == nil {
		t.Fatal("expected error for failing init statement")
	}
	if !strings.Contains(err.Error(), "create broken syntax") {
		t.Errorf("error does not contain the statement text: %v", err)
	}
}
