package frame

import (
	"fmt"

	"github.com/9seconds/geoframe/geolib"
)

// Frame is a set of named columns of the same length. Columns keep an
// order they were added in.
type Frame struct {
	names   []string
	columns [][]geolib.Value
	index   map[string]int
	length  int
}

// Len returns a number of rows.
func (f *Frame) Len() int {
	return f.length
}

// Names returns column names in order.
func (f *Frame) Names() []string {
	rv := make([]string, len(f.names))
	copy(rv, f.names)

	return rv
}

// Column returns values of the named column.
func (f *Frame) Column(name string) ([]geolib.Value, bool) {
	idx, ok := f.index[name]
	if !ok {
		return nil, false
	}

	return f.columns[idx], true
}

// Strings renders a column as strings. Nulls become empty strings.
func (f *Frame) Strings(name string) ([]string, error) {
	column, ok := f.Column(name)
	if !ok {
		return nil, fmt.Errorf("%w: %s", ErrNoSuchColumn, name)
	}

	rv := make([]string, len(column))

	for i, v := range column {
		rv[i] = v.String()
	}

	return rv, nil
}

// AddColumn appends a new column or replaces existing one with the same
// name in place. The first column defines a length of the frame.
func (f *Frame) AddColumn(name string, values []geolib.Value) error {
	if name == "" {
		return ErrEmptyColumnName
	}

	if len(f.names) > 0 && len(values) != f.length {
		return fmt.Errorf("%w: column %s has %d rows, frame has %d",
			ErrLengthMismatch, name, len(values), f.length)
	}

	f.setColumn(name, values)

	return nil
}

func (f *Frame) setColumn(name string, values []geolib.Value) {
	if idx, ok := f.index[name]; ok {
		f.columns[idx] = values

		return
	}

	f.index[name] = len(f.names)
	f.names = append(f.names, name)
	f.columns = append(f.columns, values)
	f.length = len(values)
}

// New creates an empty frame.
func New() *Frame {
	return &Frame{
		index: map[string]int{},
	}
}

// FromStrings creates a frame with a single column of strings.
func FromStrings(name string, values []string) (*Frame, error) {
	column := make([]geolib.Value, len(values))

	for i, v := range values {
		column[i] = geolib.NewString(v)
	}

	rv := New()

	if err := rv.AddColumn(name, column); err != nil {
		return nil, err
	}

	return rv, nil
}
