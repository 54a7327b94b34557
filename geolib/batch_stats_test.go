package geolib_test

import (
	"encoding/json"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"github.com/9seconds/geoframe/geolib"
)

func TestBatchStatsEmpty(t *testing.T) {
	stats := &geolib.BatchStats{}

	data, err := json.Marshal(stats)

	assert.NoError(t, err)
	assert.JSONEq(t, `{
        "last_used": 0,
        "last_elapsed": 0,
        "batches": 0,
        "rows": 0,
        "found": 0,
        "not_found": 0,
        "malformed": 0,
        "lookup_error": 0
    }`, string(data))
}

func TestBatchStatsAddConcurrently(t *testing.T) {
	stats := &geolib.BatchStats{}
	wg := &sync.WaitGroup{}

	for i := 0; i < 10; i++ {
		wg.Add(1)

		go func() {
			defer wg.Done()

			stats.Add(geolib.BatchSummary{
				Rows:        10,
				Found:       4,
				NotFound:    3,
				Malformed:   2,
				LookupError: 1,
				Elapsed:     time.Second,
			})
		}()
	}

	wg.Wait()

	snapshot := stats.Snapshot()

	assert.EqualValues(t, 10, stats.Batches())
	assert.Equal(t, 100, snapshot.Rows)
	assert.Equal(t, 40, snapshot.Found)
	assert.Equal(t, 30, snapshot.NotFound)
	assert.Equal(t, 20, snapshot.Malformed)
	assert.Equal(t, 10, snapshot.LookupError)
	assert.Equal(t, time.Second, snapshot.Elapsed)

	data, err := json.Marshal(stats)
	assert.NoError(t, err)

	decoded := map[string]interface{}{}

	assert.NoError(t, json.Unmarshal(data, &decoded))
	assert.EqualValues(t, 100, decoded["rows"])
	assert.EqualValues(t, 1, decoded["last_elapsed"])
	assert.NotZero(t, decoded["last_used"])
}
