package tasks

import (
	"context"
	"errors"
	"log/slog"
	"sync"
	"sync/atomic"
)

type Task = func()

var ErrPoolClosed = errors.New("worker pool is shut down")

// Pool runs tasks on a fixed number of workers fed from a bounded queue.
type Pool struct {
	log     *slog.Logger
	tasks   chan Task
	workers int
	wg      sync.WaitGroup
	mu      sync.RWMutex
	closed  bool
}

func New(log *slog.Logger, workers int, queueSize int) *Pool {
	if workers < 1 {
		workers = 1
	}
	return &Pool{
		log:     log,
		workers: workers,
		tasks:   make(chan Task, queueSize),
	}
}

func (p *Pool) Run() {
	p.wg.Add(p.workers)
	for i := 0; i < p.workers; i++ {
		go func() {
			defer p.wg.Done()
			log := p.log.With("worker", i)
			for task := range p.tasks {
				p.exec(log, task)
			}
		}()
	}
}

func (p *Pool) exec(log *slog.Logger, task Task) {
	defer func() {
		if err := recover(); err != nil {
			log.Error("panic", "err", err)
		}
	}()
	task()
}

const (
	queued int32 = iota
	running
	abandoned
)

// Do runs task on a worker and waits for it. If ctx ends before a worker
// picks the task up, the task is dropped and ctx.Err() is returned. A task
// that has started is always waited for.
func (p *Pool) Do(ctx context.Context, task Task) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	var state atomic.Int32
	done := make(chan struct{})
	wrapped := func() {
		if !state.CompareAndSwap(queued, running) {
			return
		}
		defer close(done)
		task()
	}

	p.mu.RLock()
	if p.closed {
		p.mu.RUnlock()
		return ErrPoolClosed
	}
	select {
	case p.tasks <- wrapped:
		p.mu.RUnlock()
	case <-ctx.Done():
		p.mu.RUnlock()
		return ctx.Err()
	}

	select {
	case <-done:
		return nil
	case <-ctx.Done():
		if state.CompareAndSwap(queued, abandoned) {
			return ctx.Err()
		}
		<-done
		return nil
	}
}

// Shutdown stops accepting tasks and waits for queued ones to finish.
func (p *Pool) Shutdown(ctx context.Context) error {
	const op = "tasks.Pool.Shutdown"
	log := p.log.With("op", op)
	log.Info("shutting down worker pool")
	p.mu.Lock()
	if !p.closed {
		p.closed = true
		close(p.tasks)
	}
	p.mu.Unlock()
	shutdownCh := make(chan struct{})
	go func() {
		p.wg.Wait()
		close(shutdownCh)
	}()
	select {
	case <-ctx.Done():
		log.Warn("graceful shutdown timed out.. forcing exit", "timeout", ctx.Err())
		return ctx.Err()
	case <-shutdownCh:
		log.Info("worker pool successfully stopped")
		return nil
	}
}
