package ledgerservice

import "context"

type WorkerPoolI interface {
	AddTask(ctx context.Context, task Task) error
}

type Task func() error

// WorkerPool bounds how many tasks run at once. AddTask blocks until a slot
// is free (or the context ends), runs the task and returns its error.
type WorkerPool struct {
	slots chan struct{}
}

func NewWorkerPool(size int) *WorkerPool {
	return &WorkerPool{
		slots: make(chan struct{}, size),
	}
}

func (wp *WorkerPool) AddTask(ctx context.Context, task Task) error {
	select {
	case <-ctx.Done():
		return ctx.Err()
	case wp.slots <- struct{}{}:
	}
	defer func() { <-wp.slots }()
	return task()
}
