// Package store defines the remote document-store contract the entity
// repositories depend on. A collection is an opaque set of documents
// keyed by id; a live subscription redelivers the entire collection on
// every remote change, never a diff.
package store

import "context"

type Op string

const (
	OpSet    Op = "set"
	OpUpdate Op = "update"
	OpDelete Op = "delete"
)

// WriteOp is one entry of a batched write.
type WriteOp[T any] struct {
	ID       string
	Document T
	Op       Op
}

// Unsubscribe tears down a live subscription. Safe to call more than
// once.
type Unsubscribe func()

// Collection is one remote document collection. Upsert replaces the
// whole document stored under id, or inserts it when absent.
type Collection[T any] interface {
	GetAll(ctx context.Context) ([]T, error)
	Upsert(ctx context.Context, id string, doc T) error
	Delete(ctx context.Context, id string) error
	BatchWrite(ctx context.Context, ops []WriteOp[T]) error

	// Subscribe delivers the current collection immediately, then again
	// after every remote change. onError reports subscription failures;
	// the subscription keeps trying to recover until the context is
	// cancelled or the returned Unsubscribe is called.
	Subscribe(ctx context.Context, onSnapshot func(docs []T), onError func(err error)) (Unsubscribe, error)
}
