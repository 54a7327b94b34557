package geolib

import (
	"sync"
)

// resolveChunkRequest is a task for a worker of the pool. Worker
// writes into its own range of batch columns and into its own summary
// so nothing here is shared with other workers except a reader.
type resolveChunkRequest struct {
	ips     []string
	batch   *ColumnBatch
	chunk   chunk
	summary *BatchSummary
	wg      *sync.WaitGroup
}

type poolChunkRequest struct {
	resolver  *Resolver
	ips       []string
	batch     *ColumnBatch
	summaries []BatchSummary
	wg        *sync.WaitGroup
}

// Do schedules a chunk. If pool cannot accept a task, chunk is
// resolved in the calling goroutine: a batch is never returned with
// holes.
func (p *poolChunkRequest) Do(idx int, c chunk) {
	p.wg.Add(1)

	req := &resolveChunkRequest{
		ips:     p.ips,
		batch:   p.batch,
		chunk:   c,
		summary: &p.summaries[idx],
		wg:      p.wg,
	}

	if err := p.resolver.workerPool.Invoke(req); err != nil {
		p.resolver.resolveChunk(req)
	}
}

// Wait blocks until all scheduled chunks are done and returns merged
// summary.
func (p *poolChunkRequest) Wait() BatchSummary {
	p.wg.Wait()

	rv := BatchSummary{}

	for i := range p.summaries {
		rv.merge(&p.summaries[i])
	}

	return rv
}

func newPoolChunkRequest(resolver *Resolver,
	ips []string,
	batch *ColumnBatch,
	chunksCount int) *poolChunkRequest {
	return &poolChunkRequest{
		resolver:  resolver,
		ips:       ips,
		batch:     batch,
		summaries: make([]BatchSummary, chunksCount),
		wg:        &sync.WaitGroup{},
	}
}
