package settlement

import (
	"context"
	"errors"
	"sync"

	"go.uber.org/zap"
)

type WorkerPoolI interface {
	AddTask(ctx context.Context, task Task) error
	Close()
}

type Task func() error

var ErrPoolClosed = errors.New("worker pool is closed")

type WorkerPool struct {
	pool chan Task
	done chan struct{}
	once sync.Once
}

func NewWorkerPool(size int) *WorkerPool {
	wp := &WorkerPool{
		pool: make(chan Task, size),
		done: make(chan struct{}),
	}

	for i := 0; i < size; i++ {
		go wp.worker()
	}
	return wp
}

func (wp *WorkerPool) worker() {
	for {
		select {
		case <-wp.done:
			return
		case task := <-wp.pool:
			if err := task(); err != nil {
				zap.L().Error("Task execution failed", zap.Error(err))
			}
		}
	}
}

func (wp *WorkerPool) AddTask(ctx context.Context, task Task) error {
	select {
	case <-ctx.Done():
		return ctx.Err()
	case <-wp.done:
		return ErrPoolClosed
	case wp.pool <- task:
		return nil
	}
}

// Close releases the worker goroutines. Queued tasks that no worker has
// picked up yet are dropped; the next poll re-fetches them. Safe to call
// more than once.
func (wp *WorkerPool) Close() {
	wp.once.Do(func() {
		close(wp.done)
	})
}
