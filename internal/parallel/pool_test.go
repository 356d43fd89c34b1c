package parallel

import (
	"runtime"
	"sync"
	"sync/atomic"
	"testing"
	"time"
)

// =============================================================================
// Creation
// =============================================================================

func TestPool_Create(t *testing.T) {
	pool := NewPool(4)
	defer pool.Close()

	if pool.Workers() != 4 {
		t.Errorf("Workers() = %d, want 4", pool.Workers())
	}
	if !pool.IsRunning() {
		t.Error("Pool should be running after creation")
	}
}

func TestPool_CreateDefaultWorkers(t *testing.T) {
	for _, n := range []int{0, -5} {
		pool := NewPool(n)
		want := runtime.GOMAXPROCS(0)
		if pool.Workers() != want {
			t.Errorf("NewPool(%d).Workers() = %d, want %d (GOMAXPROCS)", n, pool.Workers(), want)
		}
		pool.Close()
	}
}

// =============================================================================
// ExecuteAll
// =============================================================================

func TestPool_ExecuteAll(t *testing.T) {
	pool := NewPool(4)
	defer pool.Close()

	var counter atomic.Int64
	const numJobs = 100

	jobs := make([]func(), numJobs)
	for i := range jobs {
		jobs[i] = func() { counter.Add(1) }
	}

	if !pool.ExecuteAll(jobs) {
		t.Fatal("ExecuteAll() = false on a running pool")
	}
	if counter.Load() != numJobs {
		t.Errorf("counter = %d, want %d", counter.Load(), numJobs)
	}
}

func TestPool_ExecuteAll_Empty(t *testing.T) {
	pool := NewPool(2)
	defer pool.Close()

	if !pool.ExecuteAll(nil) {
		t.Error("ExecuteAll(nil) = false, want true")
	}
}

func TestPool_ExecuteAll_WritesVisible(t *testing.T) {
	pool := NewPool(3)
	defer pool.Close()

	results := make([]int, 50)
	jobs := make([]func(), len(results))
	for i := range jobs {
		jobs[i] = func() { results[i] = i * i }
	}
	pool.ExecuteAll(jobs)

	for i, v := range results {
		if v != i*i {
			t.Fatalf("results[%d] = %d, want %d", i, v, i*i)
		}
	}
}

func TestPool_MoreJobsThanQueueSpace(t *testing.T) {
	pool := NewPool(1)
	defer pool.Close()

	var counter atomic.Int64
	jobs := make([]func(), 1000)
	for i := range jobs {
		jobs[i] = func() { counter.Add(1) }
	}
	pool.ExecuteAll(jobs)

	if counter.Load() != 1000 {
		t.Errorf("counter = %d, want 1000", counter.Load())
	}
}

// =============================================================================
// Close
// =============================================================================

func TestPool_CloseIdempotent(t *testing.T) {
	pool := NewPool(2)
	pool.Close()
	pool.Close()

	if pool.IsRunning() {
		t.Error("Pool should not be running after Close")
	}
}

func TestPool_ExecuteAfterClose(t *testing.T) {
	pool := NewPool(2)
	pool.Close()

	ran := false
	if pool.ExecuteAll([]func(){func() { ran = true }}) {
		t.Error("ExecuteAll() after Close = true, want false")
	}
	if ran {
		t.Error("job ran after Close")
	}
}

func TestPool_CloseRacesExecute(t *testing.T) {
	pool := NewPool(4)

	var counter atomic.Int64
	jobs := make([]func(), 200)
	for i := range jobs {
		jobs[i] = func() { counter.Add(1) }
	}

	var wg sync.WaitGroup
	var executed atomic.Bool
	wg.Add(2)
	go func() {
		defer wg.Done()
		executed.Store(pool.ExecuteAll(jobs))
	}()
	go func() {
		defer wg.Done()
		pool.Close()
	}()
	wg.Wait()

	want := int64(0)
	if executed.Load() {
		want = int64(len(jobs))
	}
	if counter.Load() != want {
		t.Errorf("counter = %d, want %d (executed=%v)", counter.Load(), want, executed.Load())
	}
}

// =============================================================================
// Concurrency
// =============================================================================

func TestPool_ConcurrentCallers(t *testing.T) {
	pool := NewPool(4)
	defer pool.Close()

	var counter atomic.Int64
	var wg sync.WaitGroup
	for range 8 {
		wg.Add(1)
		go func() {
			defer wg.Done()
			jobs := make([]func(), 25)
			for i := range jobs {
				jobs[i] = func() { counter.Add(1) }
			}
			pool.ExecuteAll(jobs)
		}()
	}
	wg.Wait()

	if counter.Load() != 200 {
		t.Errorf("counter = %d, want 200", counter.Load())
	}
}

func TestPool_WorkStealing(t *testing.T) {
	pool := NewPool(4)
	defer pool.Close()

	// Jobs 0, 4, 8, ... land on worker 0 and are slow; the others are
	// fast. With stealing the batch finishes well before the serial
	// time of worker 0's share.
	const numJobs = 16
	jobs := make([]func(), numJobs)
	for i := range jobs {
		if i%4 == 0 {
			jobs[i] = func() { time.Sleep(20 * time.Millisecond) }
		} else {
			jobs[i] = func() {}
		}
	}

	start := time.Now()
	pool.ExecuteAll(jobs)
	elapsed := time.Since(start)

	if elapsed > 2*time.Second {
		t.Errorf("ExecuteAll took %v, expected well under 2s", elapsed)
	}
}

func TestPool_NoGoroutineLeak(t *testing.T) {
	before := runtime.NumGoroutine()

	for range 10 {
		pool := NewPool(4)
		pool.ExecuteAll([]func(){func() {}})
		pool.Close()
	}

	// Give exiting goroutines a moment to be reaped.
	deadline := time.Now().Add(time.Second)
	for runtime.NumGoroutine() > before+2 && time.Now().Before(deadline) {
		time.Sleep(10 * time.Millisecond)
	}
	if after := runtime.NumGoroutine(); after > before+2 {
		t.Errorf("goroutines before=%d after=%d, pool leaked workers", before, after)
	}
}

func BenchmarkPool_ExecuteAll(b *testing.B) {
	pool := NewPool(0)
	defer pool.Close()

	jobs := make([]func(), 256)
	for i := range jobs {
		jobs[i] = func() {}
	}

	b.ReportAllocs()
	for b.Loop() {
		pool.ExecuteAll(jobs)
	}
}
