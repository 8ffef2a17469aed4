// Package export drives a backend connector end-to-end and forwards
// column metadata and row batches to a destination sink.
package export

import (
	"fmt"

	"github.com/rs/zerolog/log"

	"github.com/Fiedzia/dbexport/sources"
)

// Destination consumes the canonical stream: column metadata exactly
// once, then an ordered sequence of batches whose rows all have length
// equal to the column count. Destinations own every file-format concern.
type Destination interface {
	WriteColumns(cols []sources.ColumnInfo) error
	WriteBatch(batch []sources.Row) error
	Close() error
}

// Run connects the source, streams its result through the destination
// batch by batch and closes the destination. It holds at most one batch
// in memory, never reorders and never retries; the first error aborts
// the export.
func Run(src *sources.Source, dest Destination, batchSize int) error {
	conn, err := src.Connect()
	if err != nil {
		return err
	}
	defer conn.Close()

	it, err := conn.BatchIterator(batchSize)
	if err != nil {
		return err
	}
	if total, ok := it.Count(); ok {
		log.Info().Uint64("total", total).Msg("rows to export")
	}
	if err := dest.WriteColumns(it.ColumnInfo()); err != nil {
		return fmt.Errorf("destination rejected column metadata: %w", err)
	}
	var exported uint64
	for {
		batch, err := it.Next()
		if err != nil {
			return err
		}
		if batch == nil {
			break
		}
		if err := dest.WriteBatch(batch); err != nil {
			return fmt.Errorf("destination rejected batch: %w", err)
		}
		exported += uint64(len(batch))
		log.Debug().Uint64("exported", exported).Msg("batch written")
	}
	if err := dest.Close(); err != nil {
		return fmt.Errorf("cannot finalize destination: %w", err)
	}
	log.Info().Uint64("rows", exported).Msg("export finished")
	return nil
}
