// Package queue serializes inventory writes in the background.
package queue

import (
	"context"
	"errors"
	"sync"

	"github.com/fwojciec/inventory"
	"golang.org/x/sync/errgroup"
)

// ErrClosed is returned by Submit after Close has been called.
var ErrClosed = inventory.Errorf(inventory.EINTERNAL, "save queue closed")

// Queue writes submitted snapshots to a store one at a time, in submission
// order. Submit never waits for a write. A failed write is retried once;
// if the retry fails too, the error is passed to OnError and returned from
// Close.
type Queue struct {
	// OnError is called from the worker goroutine for each snapshot that
	// could not be saved. Set before the first Submit.
	OnError func(err error)

	store inventory.Store
	ctx   context.Context
	g     errgroup.Group

	mu      sync.Mutex
	pending []inventory.Inventory
	closed  bool
	wake    chan struct{}
	saved   int
	errs    []error
}

// New starts a queue writing to store. ctx is passed to every Save.
func New(ctx context.Context, store inventory.Store) *Queue {
	q := &Queue{
		store: store,
		ctx:   ctx,
		wake:  make(chan struct{}, 1),
	}
	q.g.Go(q.run)
	return q
}

// Submit enqueues inv for saving. The caller must not modify inv afterwards.
func (q *Queue) Submit(inv inventory.Inventory) error {
	q.mu.Lock()
	if q.closed {
		q.mu.Unlock()
		return ErrClosed
	}
	q.pending = append(q.pending, inv)
	q.mu.Unlock()

	q.signal()
	return nil
}

// Pending returns the number of snapshots waiting for the worker.
func (q *Queue) Pending() int {
	q.mu.Lock()
	defer q.mu.Unlock()
	return len(q.pending)
}

// Saved returns the number of snapshots written successfully.
func (q *Queue) Saved() int {
	q.mu.Lock()
	defer q.mu.Unlock()
	return q.saved
}

// Close stops accepting snapshots, waits for every pending write to finish
// and returns the errors of the writes that failed.
func (q *Queue) Close() error {
	q.mu.Lock()
	q.closed = true
	q.mu.Unlock()

	q.signal()
	return q.g.Wait()
}

func (q *Queue) signal() {
	select {
	case q.wake <- struct{}{}:
	default:
	}
}

func (q *Queue) run() error {
	for {
		q.mu.Lock()
		if len(q.pending) == 0 {
			if q.closed {
				err := errors.Join(q.errs...)
				q.mu.Unlock()
				return err
			}
			q.mu.Unlock()
			<-q.wake
			continue
		}
		inv := q.pending[0]
		q.pending[0] = nil
		q.pending = q.pending[1:]
		q.mu.Unlock()

		q.save(inv)
	}
}

func (q *Queue) save(inv inventory.Inventory) {
	err := q.store.Save(q.ctx, inv)
	if err != nil {
		err = q.store.Save(q.ctx, inv)
	}

	q.mu.Lock()
	if err == nil {
		q.saved++
	} else {
		q.errs = append(q.errs, err)
	}
	q.mu.Unlock()

	if err != nil && q.OnError != nil {
		q.OnError(err)
	}
}
