package destination

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/Fiedzia/dbexport/sources"
)

func writeVertical(t *testing.T, truncate int) string {
	t.Helper()
	outFile := filepath.Join(t.TempDir(), "out.txt")
	dest, err := NewTextVertical(outFile, truncate)
	if err != nil {
		t.Fatalf("NewTextVertical: %v", err)
	}
	cols := []sources.ColumnInfo{
		{Name: "id", Type: sources.TypeI64},
		{Name: "note", Type: sources.TypeString},
	}
	if err := dest.WriteColumns(cols); err != nil {
		t.Fatalf("WriteColumns: %v", err)
	}
	batch := []sources.Row{
		{sources.Int(sources.TypeI64, 1), sources.Str("a very long note")},
		{sources.Int(sources.TypeI64, 2), sources.Str("x")},
	}
	if err := dest.WriteBatch(batch); err != nil {
		t.Fatalf("WriteBatch: %v", err)
	}
	if err := dest.Close(); err != nil {
		t.Fatalf("Close: %v", err)
	}
	data, err := os.ReadFile(outFile)
	if err != nil {
		t.Fatalf("ReadFile: %v", err)
	}
	return string(data)
}

func TestTextVertical(t *testing.T) {
	got := writeVertical(t, 0)
	want := strings.Join([]string{
		"*** 1. row ***",
		"id: 1",
		"note: a very long note",
		"*** 2. row ***",
		"id: 2",
		"note: x",
	}, "\n") + "\n"
	if got != want {
		t.Errorf("output = %q, want %q", got, want)
	}
}

func TestTextVerticalTruncates(t *testing.T) {
	got := writeVertical(t, 6)
	if !strings.Contains(got, "note: a very\n") {
		t.Errorf("value was not truncated to 6 runes:\n%s", got)
	}
	if strings.Contains(got, "a very long note") {
		t.Errorf("untruncated value leaked into output:\n%s", got)
	}
}
