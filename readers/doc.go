// Package readers has implementations of geolib.Reader for MaxMind DB
// files.
//
// There is a single reader type, MaxmindReader, with two constructors:
// NewMemory loads a file into memory, NewMmap maps it. Both have the
// same read semantics; pick one based on file size and expected number
// of lookups.
package readers
