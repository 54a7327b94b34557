package frame

import (
	"encoding/csv"
	"errors"
	"fmt"
	"io"

	"github.com/9seconds/geoframe/geolib"
)

// newCSVReader returns a reader which requires every record to have as
// many cells as a header. encoding/csv skips empty lines on its own.
func newCSVReader(r io.Reader) *csv.Reader {
	reader := csv.NewReader(r)
	reader.FieldsPerRecord = 0

	return reader
}

// ReadCSV reads a frame from CSV. The first record is a header, every
// cell becomes a string value. Empty lines are skipped.
func ReadCSV(r io.Reader) (*Frame, error) {
	reader := newCSVReader(r)

	header, err := reader.Read()

	switch {
	case errors.Is(err, io.EOF):
		return New(), nil
	case err != nil:
		return nil, fmt.Errorf("cannot read a header: %w", err)
	}

	seen := make(map[string]bool, len(header))

	for i, v := range header {
		switch {
		case v == "":
			return nil, fmt.Errorf("%w: column #%d", ErrEmptyColumnName, i)
		case seen[v]:
			return nil, fmt.Errorf("%w: %s", ErrDuplicateColumn, v)
		}

		seen[v] = true
	}

	columns := make([][]geolib.Value, len(header))

	for {
		data, err := reader.Read()

		switch {
		case errors.Is(err, io.EOF):
			rv := New()

			for i, name := range header {
				rv.setColumn(name, columns[i])
			}

			return rv, nil
		case err != nil:
			return nil, fmt.Errorf("cannot read a record: %w", err)
		}

		for i, v := range data {
			columns[i] = append(columns[i], geolib.NewString(v))
		}
	}
}

// WriteCSV writes a header and then rows. Nulls are rendered as empty
// cells.
func (f *Frame) WriteCSV(w io.Writer) error {
	writer := csv.NewWriter(w)

	if err := writer.Write(f.names); err != nil {
		return fmt.Errorf("cannot write a header: %w", err)
	}

	record := make([]string, len(f.names))

	for row := 0; row < f.length; row++ {
		for i := range f.columns {
			record[i] = f.columns[i][row].String()
		}

		if err := writer.Write(record); err != nil {
			return fmt.Errorf("cannot write row %d: %w", row, err)
		}
	}

	writer.Flush()

	if err := writer.Error(); err != nil {
		return fmt.Errorf("cannot flush csv: %w", err)
	}

	return nil
}
