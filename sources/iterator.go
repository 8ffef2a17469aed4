package sources

import (
	"database/sql"
	"fmt"

	"github.com/rs/zerolog/log"
)

// BatchIterator is a streaming cursor over an executed query. It is
// driven by exactly one caller; batches are strictly sequential and
// preserve the source result-set order.
type BatchIterator struct {
	conn      *Connection
	rows      *sql.Rows
	cols      []ColumnInfo
	batchSize int
	count     uint64
	hasCount  bool
	done      bool
}

// BatchIterator executes the configured query and returns a streaming
// cursor over its result. If Count was requested, an exact total is
// computed first by wrapping the query in select count(*); that is a full
// extra round trip.
func (c *Connection) BatchIterator(batchSize int) (*BatchIterator, error) {
	if batchSize < 1 {
		return nil, fmt.Errorf("batch size must be positive, got %d", batchSize)
	}
	query, err := c.query()
	if err != nil {
		return nil, err
	}
	it := &BatchIterator{conn: c, batchSize: batchSize}
	if c.source.Count {
		countQuery := fmt.Sprintf("select count(*) from (%s) q", query)
		if err := c.db.QueryRow(countQuery).Scan(&it.count); err != nil {
			return nil, &QueryError{Query: countQuery, Err: err}
		}
		it.hasCount = true
		log.Debug().Uint64("rows", it.count).Msg("counted result rows")
	}
	rows, err := c.db.Query(query)
	if err != nil {
		return nil, &QueryError{Query: query, Err: err}
	}
	columnTypes, err := rows.ColumnTypes()
	if err != nil {
		rows.Close()
		return nil, fmt.Errorf("cannot read column metadata: %w", err)
	}
	cols := make([]ColumnInfo, len(columnTypes))
	for i, ct := range columnTypes {
		dataType, err := c.source.mapColumn(ct.Name(), ct.DatabaseTypeName())
		if err != nil {
			rows.Close()
			return nil, err
		}
		cols[i] = ColumnInfo{Name: ct.Name(), Type: dataType}
	}
	it.rows = rows
	it.cols = cols
	return it, nil
}

// ColumnInfo returns the ordered column metadata, derived once from the
// open result set.
func (it *BatchIterator) ColumnInfo() []ColumnInfo { return it.cols }

// Count returns the pre-computed exact row count. ok is false when
// counting was not requested; database/sql exposes no cheap size hint.
func (it *BatchIterator) Count() (count uint64, ok bool) {
	return it.count, it.hasCount
}

// Next pulls up to batchSize rows from the open cursor and converts them
// to canonical rows. It returns nil once the cursor is exhausted, and nil
// on every call after that. Memory use is O(batchSize).
func (it *BatchIterator) Next() ([]Row, error) {
	if it.done {
		return nil, nil
	}
	batch := make([]Row, 0, it.batchSize)
	scan := make([]interface{}, len(it.cols))
	ptrs := make([]interface{}, len(it.cols))
	for i := range scan {
		ptrs[i] = &scan[i]
	}
	for len(batch) < it.batchSize && it.rows.Next() {
		if err := it.rows.Scan(ptrs...); err != nil {
			return nil, fmt.Errorf("cannot scan row: %w", err)
		}
		row := make(Row, len(it.cols))
		for i, col := range it.cols {
			value, err := convertValue(it.conn.source.Kind, col, scan[i])
			if err != nil {
				return nil, err
			}
			row[i] = value
		}
		batch = append(batch, row)
	}
	if len(batch) < it.batchSize {
		if err := it.rows.Err(); err != nil {
			return nil, fmt.Errorf("cursor failed: %w", err)
		}
		it.done = true
		it.rows.Close()
	}
	if len(batch) == 0 {
		return nil, nil
	}
	return batch, nil
}

// Close releases the cursor early. Safe to call after exhaustion.
func (it *BatchIterator) Close() error {
	it.done = true
	return it.rows.Close()
}
