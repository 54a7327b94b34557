package geolib

import (
	"encoding/json"
	"sync"
	"time"
)

// BatchStats accumulates statistics of all batches processed by a
// resolver. It is safe for concurrent use.
type BatchStats struct {
	mutex       sync.Mutex
	lastUsed    time.Time
	lastElapsed time.Duration
	batches     uint64
	rows        uint64
	found       uint64
	notFound    uint64
	malformed   uint64
	lookupError uint64
}

// Add merges summary of a finished batch.
func (b *BatchStats) Add(summary BatchSummary) {
	now := time.Now()

	b.mutex.Lock()
	defer b.mutex.Unlock()

	b.lastUsed = now
	b.lastElapsed = summary.Elapsed
	b.batches++
	b.rows += uint64(summary.Rows)
	b.found += uint64(summary.Found)
	b.notFound += uint64(summary.NotFound)
	b.malformed += uint64(summary.Malformed)
	b.lookupError += uint64(summary.LookupError)
}

// Batches returns a number of finished batches.
func (b *BatchStats) Batches() uint64 {
	b.mutex.Lock()
	defer b.mutex.Unlock()

	return b.batches
}

// Snapshot returns totals as a single summary.
func (b *BatchStats) Snapshot() BatchSummary {
	b.mutex.Lock()
	defer b.mutex.Unlock()

	return BatchSummary{
		Rows:        int(b.rows),
		Found:       int(b.found),
		NotFound:    int(b.notFound),
		Malformed:   int(b.malformed),
		LookupError: int(b.lookupError),
		Elapsed:     b.lastElapsed,
	}
}

func (b *BatchStats) MarshalJSON() ([]byte, error) {
	var lastUsedTime int64

	b.mutex.Lock()

	if !b.lastUsed.IsZero() {
		lastUsedTime = b.lastUsed.Unix()
	}

	rawStruct := struct {
		LastUsed    int64   `json:"last_used"`
		LastElapsed float64 `json:"last_elapsed"`
		Batches     uint64  `json:"batches"`
		Rows        uint64  `json:"rows"`
		Found       uint64  `json:"found"`
		NotFound    uint64  `json:"not_found"`
		Malformed   uint64  `json:"malformed"`
		LookupError uint64  `json:"lookup_error"`
	}{
		LastUsed:    lastUsedTime,
		LastElapsed: b.lastElapsed.Seconds(),
		Batches:     b.batches,
		Rows:        b.rows,
		Found:       b.found,
		NotFound:    b.notFound,
		Malformed:   b.malformed,
		LookupError: b.lookupError,
	}

	b.mutex.Unlock()

	return json.Marshal(&rawStruct)
}
