package destination

import (
	"bufio"
	"fmt"
	"os"

	"github.com/Fiedzia/dbexport/sources"
)

// TextVertical writes one block per row with every column on its own
// line, mysql \G style. Truncate, when positive, limits each rendered
// value to that many runes.
type TextVertical struct {
	file     *os.File
	writer   *bufio.Writer
	cols     []sources.ColumnInfo
	truncate int
	rowNum   uint64
}

func NewTextVertical(filename string, truncate int) (*TextVertical, error) {
	file, err := os.Create(filename)
	if err != nil {
		return nil, fmt.Errorf("cannot create text file: %w", err)
	}
	return &TextVertical{file: file, writer: bufio.NewWriter(file), truncate: truncate}, nil
}

func (d *TextVertical) WriteColumns(cols []sources.ColumnInfo) error {
	d.cols = cols
	return nil
}

func (d *TextVertical) WriteBatch(batch []sources.Row) error {
	for _, row := range batch {
		d.rowNum++
		if _, err := fmt.Fprintf(d.writer, "*** %d. row ***\n", d.rowNum); err != nil {
			return err
		}
		for i, col := range d.cols {
			text := row[i].Format()
			if d.truncate > 0 {
				runes := []rune(text)
				if len(runes) > d.truncate {
					text = string(runes[:d.truncate])
				}
			}
			if _, err := fmt.Fprintf(d.writer, "%s: %s\n", col.Name, text); err != nil {
				return err
			}
		}
	}
	return nil
}

func (d *TextVertical) Close() error {
	if err := d.writer.Flush(); err != nil {
		d.file.Close()
		return err
	}
	return d.file.Close()
}
