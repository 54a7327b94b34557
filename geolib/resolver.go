package geolib

import (
	"fmt"
	"runtime"
	"sync"
	"time"

	"github.com/panjf2000/ants/v2"
)

const (
	// DefaultChunkSize is a number of rows which are given to a single
	// worker in parallel mode.
	DefaultChunkSize = 1024

	workerPoolExpireTime = time.Minute
)

// Opts defines how batches are executed.
type Opts struct {
	// Parallel enables chunked execution on a worker pool.
	Parallel bool

	// ChunkSize is a number of rows per worker task. 0 means
	// DefaultChunkSize. It never changes results, only performance.
	ChunkSize int

	// Workers is a size of the pool. 0 means a number of logical
	// cores.
	Workers int

	// Logger receives lookup errors and batch summaries. Can be nil.
	Logger Logger
}

// GetChunkSize returns a chunk size with defaults applied.
func (o Opts) GetChunkSize() int {
	if o.ChunkSize == 0 {
		return DefaultChunkSize
	}

	return o.ChunkSize
}

// GetWorkers returns a pool size with defaults applied.
func (o Opts) GetWorkers() int {
	if o.Workers <= 0 {
		return runtime.NumCPU()
	}

	return o.Workers
}

// Resolver geolocates columns of addresses against a single reader.
// A worker pool is created with the first parallel batch and kept
// between batches so it is recommended to reuse a resolver if many
// batches are expected.
type Resolver struct {
	reader     Reader
	logger     Logger
	stats      BatchStats
	workers    int
	rwmutex    sync.RWMutex
	closeOnce  sync.Once
	poolOnce   sync.Once
	workerPool *ants.PoolWithFunc
	poolErr    error
	closed     bool
}

// Geolocate resolves ips and projects named fields. It checks that all
// field names are known, reader is usable and chunk size is correct
// before processing any row. Rows which cannot be resolved get null
// values, they never fail a batch.
func (r *Resolver) Geolocate(ips []string,
	fieldNames []string,
	parallel bool,
	chunkSize int) (*ColumnBatch, error) {
	fields, err := ParseFields(fieldNames)
	if err != nil {
		return nil, err
	}

	return r.GeolocateFields(ips, fields, parallel, chunkSize)
}

// GeolocateFields is the same as Geolocate but works with already
// parsed fields.
func (r *Resolver) GeolocateFields(ips []string,
	fields []Field,
	parallel bool,
	chunkSize int) (*ColumnBatch, error) {
	r.rwmutex.RLock()
	defer r.rwmutex.RUnlock()

	if r.closed {
		return nil, ErrResolverShutdown
	}

	if err := validateFields(fields); err != nil {
		return nil, err
	}

	if parallel && chunkSize < 1 {
		return nil, ErrInvalidChunkSize
	}

	if err := r.reader.Ready(); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrReaderUnusable, err)
	}

	started := time.Now()
	batch := newColumnBatch(uniqueFields(fields), len(ips))

	var summary BatchSummary

	if parallel {
		if err := r.ensureWorkerPool(); err != nil {
			return nil, err
		}

		chunks := splitChunks(len(ips), chunkSize)
		groupRequest := newPoolChunkRequest(r, ips, batch, len(chunks))

		for i, v := range chunks {
			groupRequest.Do(i, v)
		}

		summary = groupRequest.Wait()
		summary.Chunks = len(chunks)
	} else {
		r.resolveRange(ips, batch, chunk{start: 0, end: len(ips)}, &summary)
		summary.Chunks = 1
	}

	summary.Parallel = parallel
	summary.Elapsed = time.Since(started)

	r.stats.Add(summary)
	r.logger.BatchDone(summary)

	return batch, nil
}

// Stats returns accumulated statistics of this resolver.
func (r *Resolver) Stats() *BatchStats {
	return &r.stats
}

// Shutdown releases a worker pool. All subsequent batches fail with
// ErrResolverShutdown. A reader is not closed: resolver does not own
// it.
func (r *Resolver) Shutdown() {
	r.rwmutex.Lock()
	defer r.rwmutex.Unlock()

	r.closed = true

	r.closeOnce.Do(func() {
		if r.workerPool != nil {
			r.workerPool.Release()
		}
	})
}

// ensureWorkerPool is called under the read lock so Shutdown cannot
// interleave with pool creation.
func (r *Resolver) ensureWorkerPool() error {
	r.poolOnce.Do(func() {
		pool, err := ants.NewPoolWithFunc(r.workers, r.resolveChunk,
			ants.WithExpiryDuration(workerPoolExpireTime))
		if err != nil {
			r.poolErr = fmt.Errorf("cannot create a worker pool: %w", err)

			return
		}

		r.workerPool = pool
	})

	return r.poolErr
}

func (r *Resolver) resolveChunk(args interface{}) {
	params := args.(*resolveChunkRequest)
	defer params.wg.Done()

	r.resolveRange(params.ips, params.batch, params.chunk, params.summary)
}

func (r *Resolver) resolveRange(ips []string, batch *ColumnBatch, c chunk, summary *BatchSummary) {
	scratch := make([]Value, len(batch.fields))

	for i := c.start; i < c.end; i++ {
		batch.setRow(i, r.lookup(ips[i], summary), scratch)
	}

	summary.Rows += c.Len()
}

func (r *Resolver) lookup(raw string, summary *BatchSummary) Record {
	addr := ParseAddress(raw)
	if addr.Malformed() {
		summary.Malformed++

		return nil
	}

	record, err := r.reader.Lookup(addr.IP())

	switch {
	case err != nil:
		r.logger.LookupError(addr.IP(), err)
		summary.LookupError++

		return nil
	case record == nil:
		summary.NotFound++
	default:
		summary.Found++
	}

	return record
}

// NewResolver creates a new resolver for the given reader.
func NewResolver(reader Reader, opts Opts) (*Resolver, error) {
	if reader == nil {
		return nil, ErrReaderIsNil
	}

	rv := &Resolver{
		reader:  reader,
		logger:  opts.Logger,
		workers: opts.GetWorkers(),
	}

	if rv.logger == nil {
		rv.logger = nopLogger{}
	}

	return rv, nil
}

// Geolocate is a one-shot version of Resolver.Geolocate. It creates a
// resolver, runs a single batch and releases it. Sequential batches
// never start a worker pool.
//
// Zero ChunkSize in opts means DefaultChunkSize, negative one is an
// error in parallel mode.
func Geolocate(ips []string, reader Reader, fieldNames []string, opts Opts) (*ColumnBatch, error) {
	fields, err := ParseFields(fieldNames)
	if err != nil {
		return nil, err
	}

	if err := validateFields(fields); err != nil {
		return nil, err
	}

	resolver, err := NewResolver(reader, opts)
	if err != nil {
		return nil, err
	}

	defer resolver.Shutdown()

	return resolver.GeolocateFields(ips, fields, opts.Parallel, opts.GetChunkSize())
}

func uniqueFields(fields []Field) []Field {
	seen := make(map[Field]bool, len(fields))
	rv := make([]Field, 0, len(fields))

	for _, v := range fields {
		if !seen[v] {
			seen[v] = true
			rv = append(rv, v)
		}
	}

	return rv
}
