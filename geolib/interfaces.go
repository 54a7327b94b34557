package geolib

import (
	"net"
	"time"
)

// Reader is a read-only access to a geolocation database. Lookup has
// to be safe for concurrent use: the same reader is shared by all
// workers of a parallel batch.
//
// If there is no record for the given address, Lookup returns nil
// record and nil error. Errors are reserved for cases where database
// cannot answer at all.
type Reader interface {
	Lookup(ip net.IP) (Record, error)
	Ready() error
}

// Logger receives events from the resolver. Library does not log
// anything on its own.
type Logger interface {
	LookupError(ip net.IP, err error)
	BatchDone(summary BatchSummary)
}

// BatchSummary describes a single finished batch.
type BatchSummary struct {
	Rows        int
	Found       int
	NotFound    int
	Malformed   int
	LookupError int
	Chunks      int
	Parallel    bool
	Elapsed     time.Duration
}

func (b *BatchSummary) merge(other *BatchSummary) {
	b.Rows += other.Rows
	b.Found += other.Found
	b.NotFound += other.NotFound
	b.Malformed += other.Malformed
	b.LookupError += other.LookupError
}

type nopLogger struct{}

func (nopLogger) LookupError(net.IP, error) {}
func (nopLogger) BatchDone(BatchSummary)    {}
