package login

import "context"

// Dispatcher is a UI-thread task queue. Background work posts its results
// back with Post; the owner of the UI thread runs them with RunUntil.
type Dispatcher struct {
	tasks chan func()
}

// NewDispatcher creates a dispatcher holding up to size pending tasks.
func NewDispatcher(size int) *Dispatcher {
	return &Dispatcher{tasks: make(chan func(), size)}
}

// Post queues fn. It is safe to call from any goroutine and blocks while
// the queue is full.
func (d *Dispatcher) Post(fn func()) {
	d.tasks <- fn
}

// RunUntil runs queued tasks on the calling goroutine until done reports
// true or ctx ends.
func (d *Dispatcher) RunUntil(ctx context.Context, done func() bool) error {
	for !done() {
		select {
		case fn := <-d.tasks:
			fn()
		case <-ctx.Done():
			return ctx.Err()
		}
	}
	return nil
}
