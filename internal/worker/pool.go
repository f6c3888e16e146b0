// Package worker provides a worker pool for classifying positions in
// parallel. Every item builds its own board; boards never cross goroutines.
package worker

import (
	"slices"
	"sync"
	"sync/atomic"

	"github.com/lgbarn/tilechess-go/internal/processing"
)

// WorkItem represents a position to be analyzed.
type WorkItem struct {
	FEN   string
	Index int // Original index for tracking
}

// ProcessResult represents the result of analyzing a position.
type ProcessResult struct {
	FEN      string
	Index    int
	Analysis *processing.PositionAnalysis
	Error    error
}

// ProcessFunc is the function signature for processing a work item.
type ProcessFunc func(item WorkItem) ProcessResult

// AnalyzeItem is the standard ProcessFunc: decode the FEN and analyze it.
func AnalyzeItem(item WorkItem) ProcessResult {
	pa, err := processing.AnalyzeFEN(item.FEN)
	return ProcessResult{FEN: item.FEN, Index: item.Index, Analysis: pa, Error: err}
}

// Pool manages a pool of workers for parallel position analysis.
type Pool struct {
	numWorkers  int
	bufferSize  int
	workChan    chan WorkItem
	resultChan  chan ProcessResult
	processFunc ProcessFunc
	wg          sync.WaitGroup
	stopFlag    atomic.Bool
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

// NewPool creates a worker pool. processFunc defaults to AnalyzeItem when
// nil. Default: 1 worker, buffer size of 10.
func NewPool(processFunc ProcessFunc, opts ...PoolOption) *Pool {
	if processFunc == nil {
		processFunc = AnalyzeItem
	}
	p := &Pool{
		numWorkers:  1,
		bufferSize:  10,
		processFunc: processFunc,
	}
	for _, opt := range opts {
		opt(p)
	}
	// Create channels after options are applied
	p.workChan = make(chan WorkItem, p.bufferSize)
	p.resultChan = make(chan ProcessResult, p.bufferSize)
	return p
}

// Start starts the worker goroutines.
func (p *Pool) Start() {
	for i := 0; i < p.numWorkers; i++ {
		p.wg.Add(1)
		go p.worker()
	}
}

// worker processes items from the work channel until it is closed.
func (p *Pool) worker() {
	defer p.wg.Done()

	for item := range p.workChan {
		if p.IsStopped() {
			continue // Drain channel without processing
		}
		p.resultChan <- p.processFunc(item)
	}
}

// Submit submits a work item for processing.
// This may block if the work channel buffer is full.
func (p *Pool) Submit(item WorkItem) {
	p.workChan <- item
}

// TrySubmit attempts to submit a work item without blocking.
// Returns false if the work channel is full or the pool is stopped.
func (p *Pool) TrySubmit(item WorkItem) bool {
	if p.IsStopped() {
		return false
	}
	select {
	case p.workChan <- item:
		return true
	default:
		return false
	}
}

// Stop signals workers to stop processing new items.
// Items already in the channel will be drained but not processed.
func (p *Pool) Stop() {
	p.stopFlag.Store(true)
}

// IsStopped returns true if the pool has been stopped.
func (p *Pool) IsStopped() bool {
	return p.stopFlag.Load()
}

// Close closes the work channel and waits for all workers to finish.
// After calling Close, the result channel will be closed when all workers are done.
func (p *Pool) Close() {
	close(p.workChan)
	p.wg.Wait()
	close(p.resultChan)
}

// Results returns the result channel for reading processed results.
func (p *Pool) Results() <-chan ProcessResult {
	return p.resultChan
}

// NumWorkers returns the number of workers in the pool.
func (p *Pool) NumWorkers() int {
	return p.numWorkers
}

// AnalyzeAll runs fens through a fresh pool and returns the results in
// input order.
func AnalyzeAll(fens []string, opts ...PoolOption) []ProcessResult {
	pool := NewPool(AnalyzeItem, opts...)
	pool.Start()

	go func() {
		for i, fen := range fens {
			pool.Submit(WorkItem{FEN: fen, Index: i})
		}
		pool.Close()
	}()

	results := make([]ProcessResult, 0, len(fens))
	for r := range pool.Results() {
		results = append(results, r)
	}
	slices.SortFunc(results, func(a, b ProcessResult) int { return a.Index - b.Index })
	return results
}
