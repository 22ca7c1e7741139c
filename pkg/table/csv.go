package table

import (
	"encoding/csv"
	"fmt"
	"io"
	"strconv"
)

// WriteCSV writes the table as CSV: a header row of column names followed by
// one record per row.
func (t *Table) WriteCSV(w io.Writer) error {
	cw := csv.NewWriter(w)
	if err := cw.Write(t.names); err != nil {
		return fmt.Errorf("write header: %w", err)
	}
	rec := make([]string, len(t.names))
	for i := 0; i < t.Len(); i++ {
		for j, name := range t.names {
			rec[j] = strconv.FormatFloat(t.cols[name][i], 'g', -1, 64)
		}
		if err := cw.Write(rec); err != nil {
			return fmt.Errorf("write row %d: %w", i, err)
		}
	}
	cw.Flush()
	return cw.Error()
}

// ReadCSV reads a table written by WriteCSV: a header row naming the columns,
// then float64 records. Malformed values are an error, not skipped.
func ReadCSV(r io.Reader) (*Table, error) {
	cr := csv.NewReader(r)
	header, err := cr.Read()
	if err != nil {
		return nil, fmt.Errorf("read header: %w", err)
	}
	cols := make([][]float64, len(header))
	row := 0
	for {
		rec, err := cr.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("read row %d: %w", row, err)
		}
		if len(rec) != len(header) {
			return nil, fmt.Errorf("row %d has %d fields, header has %d", row, len(rec), len(header))
		}
		for j, s := range rec {
			v, err := strconv.ParseFloat(s, 64)
			if err != nil {
				return nil, fmt.Errorf("row %d column %q: %w", row, header[j], err)
			}
			cols[j] = append(cols[j], v)
		}
		row++
	}
	t := New()
	for j, name := range header {
		if err := t.AddColumn(name, cols[j]); err != nil {
			return nil, err
		}
	}
	return t, nil
}
