// Geoframe adds geolocation columns to tabular data.
//
// Idea is simple: you have a CSV with a column of IP addresses like
// 1.2.3.4 and you want to know where each of them comes from: country,
// city, coordinates. Geoframe resolves the whole column against a
// MaxMind DB file in one batch and appends one column per requested
// field.
//
// Tool itself is organized into 3 logical parts:
//
// Geolib
//
// geolib is a main package of the application. It parses addresses,
// looks them up in a Reader, projects nested records into flat fields
// and runs whole batches either sequentially or on a worker pool.
// Unresolvable rows become nulls, they never fail a batch.
//
// Readers
//
// This package has an implementation of geolib.Reader for MaxMind DB
// files with two storage strategies: a file can be read into memory or
// memory-mapped.
//
// Frame
//
// A minimal host table: named columns which can be read from CSV,
// geolocated and written back.
//
// A main package itself is an example of how to wire all of them. It
// is a CLI which reads CSV from a file or stdin and writes the
// extended CSV to a file or stdout.
package main
