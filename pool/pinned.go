// File: pool/pinned.go
// Author: momentics <momentics@gmail.com>
// License: Apache-2.0
//
// PinnedExecutor dispatches tasks across worker OS threads restricted
// to a fixed core set. Pending tasks sit in a single FIFO queue guarded
// by a mutex; workers park on a condition variable when it runs dry.

package pool

import (
	"errors"
	"fmt"
	"log"
	"runtime"
	"sync"
	"sync/atomic"

	"github.com/eapache/queue"

	"github.com/momentics/hioload-affinity/affinity"
	"github.com/momentics/hioload-affinity/api"
)

// Task is a unit of work to execute.
type Task func()

// ErrExecutorClosed is returned by Submit after Close.
var ErrExecutorClosed = errors.New("pool: executor closed")

// PinnedExecutor manages a pool of worker OS threads whose affinity is
// restricted to the core list given at construction.
type PinnedExecutor struct {
	cores []int

	mu      sync.Mutex
	cond    *sync.Cond
	pending *queue.Queue
	closed  bool
	wg      sync.WaitGroup

	// statistics
	submitted int64
	completed int64
}

// NewPinnedExecutor creates an executor with numWorkers worker threads,
// each restricted to the given cores. If numWorkers <= 0 it defaults to
// len(cores), or runtime.NumCPU() when cores is empty. An empty cores
// list leaves workers unrestricted. Core ids outside [0,63] are
// rejected up front.
func NewPinnedExecutor(numWorkers int, cores []int) (*PinnedExecutor, error) {
	for _, id := range cores {
		if id < 0 || id >= api.MaxCores {
			return nil, fmt.Errorf("pool: core id %d outside [0,%d]", id, api.MaxCores-1)
		}
	}
	if numWorkers <= 0 {
		numWorkers = len(cores)
		if numWorkers == 0 {
			numWorkers = runtime.NumCPU()
		}
	}
	e := &PinnedExecutor{
		cores:   append([]int(nil), cores...),
		pending: queue.New(),
	}
	e.cond = sync.NewCond(&e.mu)
	e.wg.Add(numWorkers)
	for i := 0; i < numWorkers; i++ {
		go e.run(i)
	}
	return e, nil
}

// Submit enqueues a task, returning ErrExecutorClosed if the executor
// is closed.
func (e *PinnedExecutor) Submit(task Task) error {
	e.mu.Lock()
	if e.closed {
		e.mu.Unlock()
		return ErrExecutorClosed
	}
	e.pending.Add(task)
	atomic.AddInt64(&e.submitted, 1)
	e.cond.Signal()
	e.mu.Unlock()
	return nil
}

// Close stops accepting tasks, drains the queue and waits for workers
// to exit.
func (e *PinnedExecutor) Close() {
	e.mu.Lock()
	if e.closed {
		e.mu.Unlock()
		return
	}
	e.closed = true
	e.cond.Broadcast()
	e.mu.Unlock()
	e.wg.Wait()
}

// Cores returns a copy of the core list workers are restricted to.
func (e *PinnedExecutor) Cores() []int {
	return append([]int(nil), e.cores...)
}

// Stats returns basic executor metrics.
func (e *PinnedExecutor) Stats() map[string]int64 {
	sub := atomic.LoadInt64(&e.submitted)
	done := atomic.LoadInt64(&e.completed)
	return map[string]int64{
		"submitted_tasks": sub,
		"completed_tasks": done,
		"pending_tasks":   sub - done,
	}
}

// run is the main loop for a worker thread.
func (e *PinnedExecutor) run(id int) {
	defer e.wg.Done()
	runtime.LockOSThread()
	defer runtime.UnlockOSThread()
	if len(e.cores) > 0 {
		// Best effort: on macOS the scheduler may ignore the request,
		// on failure the thread simply keeps its inherited affinity.
		if !affinity.SetForCurrent(e.cores) {
			log.Printf("pool: worker %d: affinity request for cores %v not applied", id, e.cores)
		}
	}
	for {
		e.mu.Lock()
		for e.pending.Length() == 0 && !e.closed {
			e.cond.Wait()
		}
		if e.pending.Length() == 0 {
			e.mu.Unlock()
			return
		}
		task := e.pending.Remove().(Task)
		e.mu.Unlock()
		e.executeTask(task)
	}
}

// executeTask runs the task and updates statistics, recovering from
// panics to keep the worker alive.
func (e *PinnedExecutor) executeTask(task Task) {
	defer func() {
		if r := recover(); r != nil {
			log.Printf("pool: task panic: %v", r)
		}
		atomic.AddInt64(&e.completed, 1)
	}()
	task()
}
