// Package memstore is an in-process implementation of the store
// contract. It backs unit tests and STORE_DRIVER=memory runs; snapshot
// fan-out is synchronous, which keeps tests deterministic.
package memstore

import (
	"context"
	"fmt"
	"sync"

	"github.com/Ckopin0130/PrintManage-sub000/internal/store"
)

type subscriber[T any] struct {
	onSnapshot func([]T)
	onError    func(error)
}

type Collection[T any] struct {
	mu    sync.Mutex
	docs  map[string]T
	order []string

	subs    map[int]subscriber[T]
	nextSub int

	// failErr, when set, makes every write fail with it. Used by tests
	// exercising the best-effort remote phase.
	failErr error
}

func NewCollection[T any]() *Collection[T] {
	return &Collection[T]{
		docs: make(map[string]T),
		subs: make(map[int]subscriber[T]),
	}
}

// FailWith makes subsequent writes return err; pass nil to heal.
func (c *Collection[T]) FailWith(err error) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.failErr = err
}

func (c *Collection[T]) GetAll(_ context.Context) ([]T, error) {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.snapshotLocked(), nil
}

func (c *Collection[T]) Upsert(_ context.Context, id string, doc T) error {
	c.mu.Lock()
	if c.failErr != nil {
		defer c.mu.Unlock()
		return c.failErr
	}
	c.setLocked(id, doc)
	c.mu.Unlock()

	c.broadcast()
	return nil
}

func (c *Collection[T]) Delete(_ context.Context, id string) error {
	c.mu.Lock()
	if c.failErr != nil {
		defer c.mu.Unlock()
		return c.failErr
	}
	c.deleteLocked(id)
	c.mu.Unlock()

	c.broadcast()
	return nil
}

func (c *Collection[T]) BatchWrite(_ context.Context, ops []store.WriteOp[T]) error {
	if len(ops) == 0 {
		return nil
	}

	c.mu.Lock()
	if c.failErr != nil {
		defer c.mu.Unlock()
		return c.failErr
	}
	for _, w := range ops {
		switch w.Op {
		case store.OpSet, store.OpUpdate:
			c.setLocked(w.ID, w.Document)
		case store.OpDelete:
			c.deleteLocked(w.ID)
		default:
			c.mu.Unlock()
			return fmt.Errorf("memstore.BatchWrite: unknown op %q", w.Op)
		}
	}
	c.mu.Unlock()

	c.broadcast()
	return nil
}

func (c *Collection[T]) Subscribe(
	ctx context.Context,
	onSnapshot func(docs []T),
	onError func(err error),
) (store.Unsubscribe, error) {
	c.mu.Lock()
	id := c.nextSub
	c.nextSub++
	c.subs[id] = subscriber[T]{onSnapshot: onSnapshot, onError: onError}
	snap := c.snapshotLocked()
	c.mu.Unlock()

	onSnapshot(snap)

	var once sync.Once
	unsub := func() {
		once.Do(func() {
			c.mu.Lock()
			delete(c.subs, id)
			c.mu.Unlock()
		})
	}

	if ctx != nil && ctx.Done() != nil {
		go func() {
			<-ctx.Done()
			unsub()
		}()
	}

	return unsub, nil
}

func (c *Collection[T]) setLocked(id string, doc T) {
	if _, ok := c.docs[id]; !ok {
		c.order = append(c.order, id)
	}
	c.docs[id] = doc
}

func (c *Collection[T]) deleteLocked(id string) {
	if _, ok := c.docs[id]; !ok {
		return
	}
	delete(c.docs, id)
	for i, existing := range c.order {
		if existing == id {
			c.order = append(c.order[:i], c.order[i+1:]...)
			break
		}
	}
}

func (c *Collection[T]) snapshotLocked() []T {
	out := make([]T, 0, len(c.order))
	for _, id := range c.order {
		out = append(out, c.docs[id])
	}
	return out
}

func (c *Collection[T]) broadcast() {
	c.mu.Lock()
	snap := c.snapshotLocked()
	subs := make([]subscriber[T], 0, len(c.subs))
	for _, s := range c.subs {
		subs = append(subs, s)
	}
	c.mu.Unlock()

	for _, s := range subs {
		s.onSnapshot(snap)
	}
}
