// Package worker provides a worker pool for fingerprinting many inputs in
// parallel.
package worker

import (
	"sort"
	"sync"
	"sync/atomic"

	"github.com/lgbarn/chesscodec-go/internal/hashing"
)

// WorkItem names one input to fingerprint.
type WorkItem struct {
	Path  string
	Index int // Original index for tracking
}

// Result is the outcome of processing one WorkItem.
type Result struct {
	Path   string
	Index  int
	Digest hashing.Digest
	Err    error

	// DuplicateOf is the earlier source with the same digest, if any.
	DuplicateOf string
}

// ProcessFunc is the function signature for processing a work item.
type ProcessFunc func(item WorkItem) Result

// Pool runs a fixed number of workers over submitted items.
type Pool struct {
	numWorkers  int
	bufferSize  int
	workChan    chan WorkItem
	resultChan  chan Result
	processFunc ProcessFunc
	wg          sync.WaitGroup
	stopped     atomic.Bool
}

// PoolOption configures a Pool.
type PoolOption func(*Pool)

// WithWorkers sets the number of worker goroutines.
func WithWorkers(n int) PoolOption {
	return func(p *Pool) {
		if n >= 1 {
			p.numWorkers = n
		}
	}
}

// WithBufferSize sets the channel buffer size.
func WithBufferSize(size int) PoolOption {
	return func(p *Pool) {
		if size >= 1 {
			p.bufferSize = size
		}
	}
}

// NewPool creates a worker pool. processFunc is required; by default there
// is one worker and a buffer of 10 items.
func NewPool(processFunc ProcessFunc, opts ...PoolOption) *Pool {
	p := &Pool{
		numWorkers:  1,
		bufferSize:  10,
		processFunc: processFunc,
	}
	for _, opt := range opts {
		opt(p)
	}
	p.workChan = make(chan WorkItem, p.bufferSize)
	p.resultChan = make(chan Result, p.bufferSize)
	return p
}

// Start starts the worker goroutines.
func (p *Pool) Start() {
	for i := 0; i < p.numWorkers; i++ {
		p.wg.Add(1)
		go p.worker()
	}
}

func (p *Pool) worker() {
	defer p.wg.Done()

	for item := range p.workChan {
		if p.IsStopped() {
			continue // Drain channel without processing
		}
		p.resultChan <- p.processFunc(item)
	}
}

// Submit queues an item, blocking while the buffer is full.
func (p *Pool) Submit(item WorkItem) {
	p.workChan <- item
}

// Stop makes workers skip items not yet started.
func (p *Pool) Stop() {
	p.stopped.Store(true)
}

// IsStopped returns true if the pool has been stopped.
func (p *Pool) IsStopped() bool {
	return p.stopped.Load()
}

// Close closes the work channel and waits for all workers to finish,
// then closes the result channel.
func (p *Pool) Close() {
	close(p.workChan)
	p.wg.Wait()
	close(p.resultChan)
}

// Results returns the result channel for reading processed results.
func (p *Pool) Results() <-chan Result {
	return p.resultChan
}

// HashOption configures HashFiles.
type HashOption func(*hashConfig)

type hashConfig struct {
	detector *hashing.ThreadSafeDuplicateDetector
	failFast bool
}

// WithDetector records every successful digest in d from inside the
// workers. Result.DuplicateOf names the source d saw first.
func WithDetector(d *hashing.ThreadSafeDuplicateDetector) HashOption {
	return func(c *hashConfig) {
		c.detector = d
	}
}

// WithFailFast stops the pool at the first error. Items not yet started
// produce no result.
func WithFailFast() HashOption {
	return func(c *hashConfig) {
		c.failFast = true
	}
}

// HashFiles fingerprints every path with h using the given number of
// workers and returns the results in input order.
func HashFiles(h *hashing.Hasher, paths []string, workers int, opts ...HashOption) []Result {
	var cfg hashConfig
	for _, opt := range opts {
		opt(&cfg)
	}

	var pool *Pool
	pool = NewPool(func(item WorkItem) Result {
		d, err := h.SumFile(item.Path)
		r := Result{Path: item.Path, Index: item.Index, Digest: d, Err: err}
		switch {
		case err != nil && cfg.failFast:
			pool.Stop()
		case err == nil && cfg.detector != nil:
			if first, dup := cfg.detector.CheckAndAdd(d, item.Path); dup {
				r.DuplicateOf = first
			}
		}
		return r
	}, WithWorkers(workers), WithBufferSize(workers*2))
	pool.Start()

	go func() {
		for i, path := range paths {
			pool.Submit(WorkItem{Path: path, Index: i})
		}
		pool.Close()
	}()

	results := make([]Result, 0, len(paths))
	for r := range pool.Results() {
		results = append(results, r)
	}
	sort.Slice(results, func(i, j int) bool { return results[i].Index < results[j].Index })
	return results
}
