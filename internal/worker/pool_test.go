package worker

import (
	"sync/atomic"
	"testing"
	"time"

	"github.com/lgbarn/chessrules-go/internal/config"
	"github.com/lgbarn/chessrules-go/internal/engine"
)

// noopReplay returns a replay function that does nothing.
func noopReplay() ReplayFunc {
	return func(job Job) Result {
		return Result{Index: job.Index, Source: job.Source}
	}
}

// countingReplay returns a replay function that increments a counter.
func countingReplay(counter *int32) ReplayFunc {
	return func(job Job) Result {
		atomic.AddInt32(counter, 1)
		return Result{Index: job.Index}
	}
}

// gameReplay plays each job on a fresh silent game.
func gameReplay(job Job) Result {
	cfg := config.NewConfigBuilder().WithVerbosity(0).Build()
	g := engine.NewGame(cfg)
	for _, m := range job.Moves {
		if _, err := g.ApplyAlgebraic(m); err != nil {
			return Result{Index: job.Index, Source: job.Source, Game: g, Err: err}
		}
	}
	return Result{Index: job.Index, Source: job.Source, Game: g}
}

func collectResults(pool *Pool) int {
	count := 0
	for range pool.Results() {
		count++
	}
	return count
}

func TestPoolBasic(t *testing.T) {
	var processed int32
	pool := NewPool(countingReplay(&processed), WithWorkers(4))
	pool.Start()

	const numJobs = 10
	go func() {
		for i := 0; i < numJobs; i++ {
			pool.Submit(Job{Index: i})
		}
		pool.Close()
	}()

	if got := collectResults(pool); got != numJobs {
		t.Errorf("results = %d; want %d", got, numJobs)
	}
	if got := atomic.LoadInt32(&processed); got != numJobs {
		t.Errorf("processed = %d; want %d", got, numJobs)
	}
}

func TestNewPoolOptions(t *testing.T) {
	tests := []struct {
		name        string
		opts        []PoolOption
		wantWorkers int
		wantBuffer  int
	}{
		{"defaults", nil, 1, 10},
		{"with workers", []PoolOption{WithWorkers(4)}, 4, 10},
		{"with buffer size", []PoolOption{WithBufferSize(50)}, 1, 50},
		{"with multiple options", []PoolOption{WithWorkers(8), WithBufferSize(100)}, 8, 100},
		{"invalid workers ignored", []PoolOption{WithWorkers(0)}, 1, 10},
		{"invalid buffer size ignored", []PoolOption{WithBufferSize(-5)}, 1, 10},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			pool := NewPool(noopReplay(), tt.opts...)
			if got := pool.NumWorkers(); got != tt.wantWorkers {
				t.Errorf("NumWorkers() = %d; want %d", got, tt.wantWorkers)
			}
			if pool.bufferSize != tt.wantBuffer {
				t.Errorf("bufferSize = %d; want %d", pool.bufferSize, tt.wantBuffer)
			}
		})
	}
}

func TestReplayAllKeepsJobOrder(t *testing.T) {
	slowEven := func(job Job) Result {
		if job.Index%2 == 0 {
			time.Sleep(5 * time.Millisecond)
		}
		return Result{Index: job.Index, Source: job.Source}
	}

	jobs := make([]Job, 10)
	for i := range jobs {
		jobs[i] = Job{Index: i, Source: string(rune('a' + i))}
	}

	results := ReplayAll(jobs, slowEven, WithWorkers(4), WithBufferSize(2))
	if len(results) != len(jobs) {
		t.Fatalf("ReplayAll() returned %d results; want %d", len(results), len(jobs))
	}
	for i, r := range results {
		if r.Index != i || r.Source != jobs[i].Source {
			t.Errorf("results[%d] = {%d %q}; want {%d %q}", i, r.Index, r.Source, i, jobs[i].Source)
		}
	}
}

func TestReplayAllGames(t *testing.T) {
	jobs := []Job{
		{Index: 0, Source: "mate", Moves: []string{"f7f6", "e2e4", "g7g5", "d1h5"}},
		{Index: 1, Source: "illegal", Moves: []string{"e7e5", "e5e3"}},
		{Index: 2, Source: "empty"},
	}

	results := ReplayAll(jobs, gameReplay, WithWorkers(3))

	if got := results[0].Game.Status(); got != engine.Checkmate {
		t.Errorf("mate Status() = %v; want %v", got, engine.Checkmate)
	}
	if results[1].Err == nil {
		t.Error("illegal replay returned no error")
	}
	if got := results[1].Game.History().MoveCount(); got != 1 {
		t.Errorf("illegal MoveCount() = %d; want 1", got)
	}
	if results[2].Err != nil || results[2].Game.Status() != engine.Ongoing {
		t.Errorf("empty replay = %v, %v; want nil, ongoing", results[2].Err, results[2].Game.Status())
	}
}

// TestPoolNoRace is designed to be run with -race flag.
func TestPoolNoRace(t *testing.T) {
	jobs := make([]Job, 40)
	for i := range jobs {
		jobs[i] = Job{Index: i, Moves: []string{"g8f6", "g1f3", "f6g8", "f3g1"}}
	}

	for _, r := range ReplayAll(jobs, gameReplay, WithWorkers(8)) {
		if r.Err != nil {
			t.Fatalf("job %d: %v", r.Index, r.Err)
		}
		if got := r.Game.History().RepetitionCount(); got != 2 {
			t.Errorf("job %d RepetitionCount() = %d; want 2", r.Index, got)
		}
	}
}
