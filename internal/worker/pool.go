// Package worker replays independent games in parallel. Each game is owned
// by exactly one worker; nothing is shared between jobs.
package worker

import (
	"sort"
	"sync"

	"github.com/lgbarn/chessrules-go/internal/engine"
)

// Job is one move list to replay.
type Job struct {
	Index  int    // Position in the batch, used to restore order
	Source string // Where the moves came from, e.g. a file name
	Moves  []string
}

// Result is the outcome of replaying a Job.
type Result struct {
	Index  int
	Source string
	Game   *engine.Game // Game after the last accepted move
	Log    string       // Diagnostics written while replaying
	Err    error        // First rejected move, or nil
}

// ReplayFunc replays one job.
type ReplayFunc func(job Job) Result

// Pool runs a fixed number of workers over a job channel.
type Pool struct {
	numWorkers int
	bufferSize int
	jobs       chan Job
	results    chan Result
	replay     ReplayFunc
	wg         sync.WaitGroup
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

// NewPool creates a pool around replay. Default: 1 worker, buffer size of 10.
func NewPool(replay ReplayFunc, opts ...PoolOption) *Pool {
	p := &Pool{
		numWorkers: 1,
		bufferSize: 10,
		replay:     replay,
	}
	for _, opt := range opts {
		opt(p)
	}
	p.jobs = make(chan Job, p.bufferSize)
	p.results = make(chan Result, p.bufferSize)
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
	for job := range p.jobs {
		p.results <- p.replay(job)
	}
}

// Submit queues a job. It blocks while the buffer is full.
func (p *Pool) Submit(job Job) {
	p.jobs <- job
}

// Close stops accepting jobs, waits for the workers and then closes the
// result channel.
func (p *Pool) Close() {
	close(p.jobs)
	p.wg.Wait()
	close(p.results)
}

// Results returns the result channel. Results arrive in completion order.
func (p *Pool) Results() <-chan Result {
	return p.results
}

// NumWorkers returns the number of workers in the pool.
func (p *Pool) NumWorkers() int {
	return p.numWorkers
}

// ReplayAll runs every job through a pool and returns the results in job
// order.
func ReplayAll(jobs []Job, replay ReplayFunc, opts ...PoolOption) []Result {
	pool := NewPool(replay, opts...)
	pool.Start()

	go func() {
		for _, job := range jobs {
			pool.Submit(job)
		}
		pool.Close()
	}()

	out := make([]Result, 0, len(jobs))
	for r := range pool.Results() {
		out = append(out, r)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Index < out[j].Index })
	return out
}
