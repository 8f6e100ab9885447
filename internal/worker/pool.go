// Package worker provides a worker pool for running move scripts in parallel.
// Each work item owns its own position; nothing mutable is shared.
package worker

import (
	"sync"
	"sync/atomic"

	"github.com/lgbarn/chessmoves-go/internal/script"
)

// WorkItem names one script and its position on the command line.
type WorkItem struct {
	Path  string
	Index int
}

// ProcessResult represents the result of running a script.
type ProcessResult struct {
	Path    string
	Index   int
	Summary script.Summary
	Output  []byte // Rendered positions, written by the consumer in Index order
	Error   error

	// Skipped is set when the pool stopped before the script was run.
	Skipped bool
}

// ProcessFunc runs one work item.
type ProcessFunc func(item WorkItem) ProcessResult

// Pool runs work items on a fixed set of goroutines. Every submitted item
// yields exactly one result, including items skipped after a stop.
type Pool struct {
	workers     int
	bufferSize  int
	stopOnError bool
	items       chan WorkItem
	results     chan ProcessResult
	process     ProcessFunc
	wg          sync.WaitGroup
	stopped     atomic.Bool
}

// PoolOption configures a Pool.
type PoolOption func(*Pool)

// WithWorkers sets the number of worker goroutines.
func WithWorkers(n int) PoolOption {
	return func(p *Pool) {
		if n >= 1 {
			p.workers = n
		}
	}
}

// WithBufferSize sets the item and result channel capacity.
func WithBufferSize(size int) PoolOption {
	return func(p *Pool) {
		if size >= 1 {
			p.bufferSize = size
		}
	}
}

// WithStopOnError makes the first failed item skip every item not yet started.
func WithStopOnError(stop bool) PoolOption {
	return func(p *Pool) {
		p.stopOnError = stop
	}
}

// NewPool creates a pool running process. Default: 1 worker, buffer size of 10.
func NewPool(process ProcessFunc, opts ...PoolOption) *Pool {
	p := &Pool{
		workers:    1,
		bufferSize: 10,
		process:    process,
	}
	for _, opt := range opts {
		opt(p)
	}
	p.items = make(chan WorkItem, p.bufferSize)
	p.results = make(chan ProcessResult, p.bufferSize)
	return p
}

// Start starts the worker goroutines.
func (p *Pool) Start() {
	for i := 0; i < p.workers; i++ {
		p.wg.Add(1)
		go p.run()
	}
}

func (p *Pool) run() {
	defer p.wg.Done()

	for item := range p.items {
		if p.stopped.Load() {
			p.results <- ProcessResult{Path: item.Path, Index: item.Index, Skipped: true}
			continue
		}
		result := p.process(item)
		if result.Error != nil && p.stopOnError {
			p.stopped.Store(true)
		}
		p.results <- result
	}
}

// Submit queues an item, blocking while the buffer is full.
func (p *Pool) Submit(item WorkItem) {
	p.items <- item
}

// Close stops accepting items, waits for the workers and then closes the
// result channel.
func (p *Pool) Close() {
	close(p.items)
	p.wg.Wait()
	close(p.results)
}

// Results returns the result channel.
func (p *Pool) Results() <-chan ProcessResult {
	return p.results
}

// Workers returns the number of worker goroutines.
func (p *Pool) Workers() int {
	return p.workers
}
