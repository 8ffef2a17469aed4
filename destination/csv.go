// Package destination implements the file sinks the export pipeline
// writes to: csv, sqlite, duckdb and vertical text.
package destination

import (
	"encoding/csv"
	"fmt"
	"os"

	"github.com/Fiedzia/dbexport/sources"
)

// CSV writes the stream as an RFC 4180 csv file with a header row.
type CSV struct {
	file   *os.File
	writer *csv.Writer
	record []string
}

func NewCSV(filename string) (*CSV, error) {
	file, err := os.Create(filename)
	if err != nil {
		return nil, fmt.Errorf("cannot create csv file: %w", err)
	}
	return &CSV{file: file, writer: csv.NewWriter(file)}, nil
}

func (d *CSV) WriteColumns(cols []sources.ColumnInfo) error {
	d.record = make([]string, len(cols))
	for i, col := range cols {
		d.record[i] = col.Name
	}
	return d.writer.Write(d.record)
}

func (d *CSV) WriteBatch(batch []sources.Row) error {
	for _, row := range batch {
		for i, value := range row {
			d.record[i] = value.Format()
		}
		if err := d.writer.Write(d.record); err != nil {
			return err
		}
	}
	return nil
}

func (d *CSV) Close() error {
	d.writer.Flush()
	if err := d.writer.Error(); err != nil {
		d.file.Close()
		return err
	}
	return d.file.Close()
}
