// This package resolves columns of IP addresses into columns of geo
// data.
//
// geolib is a core of the geoframe project. Input is a slice of raw
// strings as they come from a table, output is a ColumnBatch: one
// column of optional scalars per requested field, every column as long
// as the input. Rows are independent: a malformed address or an
// address which is absent in the database only nulls its own row.
//
// Resolver is a main entity of the geolib. It owns a worker pool and
// can process a batch either sequentially or in parallel, splitting
// rows into chunks. Results are always in input order, both modes
// produce identical output.
//
// Reader is an interface to the database. Implementations for MaxMind
// DB files live in readers package.
package geolib
