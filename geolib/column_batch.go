package geolib

import "encoding/json"

// ColumnBatch is a result of geolocation: one column per requested
// field, every column has exactly as many values as there were input
// rows. Row i of every column corresponds to input row i.
type ColumnBatch struct {
	fields  []Field
	columns [][]Value
	length  int
}

func newColumnBatch(fields []Field, length int) *ColumnBatch {
	rv := &ColumnBatch{
		fields:  fields,
		columns: make([][]Value, len(fields)),
		length:  length,
	}

	for i := range rv.columns {
		rv.columns[i] = make([]Value, length)
	}

	return rv
}

// Fields returns fields in the order caller has requested them.
func (c *ColumnBatch) Fields() []Field {
	return c.fields
}

// Len returns a number of rows.
func (c *ColumnBatch) Len() int {
	return c.length
}

// Column returns values of the field. It returns nil and false if
// field was not requested.
func (c *ColumnBatch) Column(field Field) ([]Value, bool) {
	for i, v := range c.fields {
		if v == field {
			return c.columns[i], true
		}
	}

	return nil, false
}

// Row assembles values of a single row.
func (c *ColumnBatch) Row(idx int) Row {
	rv := Row{
		Fields: c.fields,
		Values: make([]Value, len(c.fields)),
	}

	for i := range c.fields {
		rv.Values[i] = c.columns[i][idx]
	}

	return rv
}

// Each iterates columns in the field order.
func (c *ColumnBatch) Each(callback func(Field, []Value)) {
	for i, v := range c.fields {
		callback(v, c.columns[i])
	}
}

// MarshalJSON renders a batch as an object of field name to column.
func (c *ColumnBatch) MarshalJSON() ([]byte, error) {
	rv := make(map[string][]Value, len(c.fields))

	c.Each(func(field Field, values []Value) {
		rv[field.String()] = values
	})

	return json.Marshal(rv)
}

// setRow writes projection of a row directly into column buffers. Each
// chunk owns a disjoint range of indexes so no locking is required.
func (c *ColumnBatch) setRow(idx int, record Record, scratch []Value) {
	projectInto(record, c.fields, scratch)

	for i := range c.columns {
		c.columns[i][idx] = scratch[i]
	}
}
