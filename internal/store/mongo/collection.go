// Package mongostore implements the store contract on top of a MongoDB
// collection. The snapshot subscription is driven by a change stream:
// every stream event triggers a full re-fetch of the collection.
package mongostore

import (
	"context"
	"fmt"
	"time"

	"go.mongodb.org/mongo-driver/v2/bson"
	"go.mongodb.org/mongo-driver/v2/mongo"
	"go.mongodb.org/mongo-driver/v2/mongo/options"

	"github.com/Ckopin0130/PrintManage-sub000/internal/store"
)

const defaultResubscribeDelay = 3 * time.Second

type Collection[T any] struct {
	coll    *mongo.Collection
	resubIn time.Duration
}

func NewCollection[T any](coll *mongo.Collection) *Collection[T] {
	return &Collection[T]{coll: coll, resubIn: defaultResubscribeDelay}
}

func (c *Collection[T]) GetAll(ctx context.Context) ([]T, error) {
	const op = "mongostore.GetAll"

	cur, err := c.coll.Find(ctx, bson.D{})
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	defer func() { _ = cur.Close(ctx) }()

	out := make([]T, 0)
	for cur.Next(ctx) {
		var doc T
		if err := cur.Decode(&doc); err != nil {
			return nil, fmt.Errorf("%s decode: %w", op, err)
		}
		out = append(out, doc)
	}
	if err := cur.Err(); err != nil {
		return nil, fmt.Errorf("%s cursor: %w", op, err)
	}

	return out, nil
}

func (c *Collection[T]) Upsert(ctx context.Context, id string, doc T) error {
	const op = "mongostore.Upsert"

	_, err := c.coll.ReplaceOne(ctx,
		bson.M{"_id": id},
		doc,
		options.Replace().SetUpsert(true),
	)
	if err != nil {
		return fmt.Errorf("%s: %w", op, err)
	}
	return nil
}

func (c *Collection[T]) Delete(ctx context.Context, id string) error {
	const op = "mongostore.Delete"

	if _, err := c.coll.DeleteOne(ctx, bson.M{"_id": id}); err != nil {
		return fmt.Errorf("%s: %w", op, err)
	}
	return nil
}

func (c *Collection[T]) BatchWrite(ctx context.Context, ops []store.WriteOp[T]) error {
	const op = "mongostore.BatchWrite"

	if len(ops) == 0 {
		return nil
	}

	models := make([]mongo.WriteModel, 0, len(ops))
	for _, w := range ops {
		filter := bson.M{"_id": w.ID}
		switch w.Op {
		case store.OpSet:
			models = append(models, mongo.NewReplaceOneModel().
				SetFilter(filter).
				SetReplacement(w.Document).
				SetUpsert(true))
		case store.OpUpdate:
			models = append(models, mongo.NewUpdateOneModel().
				SetFilter(filter).
				SetUpdate(bson.M{"$set": w.Document}))
		case store.OpDelete:
			models = append(models, mongo.NewDeleteOneModel().
				SetFilter(filter))
		default:
			return fmt.Errorf("%s: unknown op %q", op, w.Op)
		}
	}

	_, err := c.coll.BulkWrite(ctx, models, options.BulkWrite().SetOrdered(false))
	if err != nil {
		return fmt.Errorf("%s: %w", op, err)
	}
	return nil
}

func (c *Collection[T]) Subscribe(
	ctx context.Context,
	onSnapshot func(docs []T),
	onError func(err error),
) (store.Unsubscribe, error) {
	const op = "mongostore.Subscribe"

	subCtx, cancel := context.WithCancel(ctx)

	// Open the stream before the initial fetch: writes landing between
	// the fetch and the stream start surface as events instead of being
	// missed until the next change.
	stream, err := c.coll.Watch(subCtx, mongo.Pipeline{})
	if err != nil {
		cancel()
		return nil, fmt.Errorf("%s open stream: %w", op, err)
	}

	docs, err := c.GetAll(subCtx)
	if err != nil {
		_ = stream.Close(context.WithoutCancel(subCtx))
		cancel()
		return nil, fmt.Errorf("%s initial snapshot: %w", op, err)
	}
	onSnapshot(docs)

	go c.watch(subCtx, stream, onSnapshot, onError)

	return store.Unsubscribe(cancel), nil
}

func (c *Collection[T]) watch(
	ctx context.Context,
	stream *mongo.ChangeStream,
	onSnapshot func([]T),
	onError func(error),
) {
	for {
		if stream == nil {
			if ctx.Err() != nil {
				return
			}
			var err error
			stream, err = c.coll.Watch(ctx, mongo.Pipeline{})
			if err != nil {
				onError(fmt.Errorf("mongostore.watch open: %w", err))
				if !c.sleep(ctx) {
					return
				}
				continue
			}
		}

		for stream.Next(ctx) {
			docs, err := c.GetAll(ctx)
			if err != nil {
				onError(fmt.Errorf("mongostore.watch refetch: %w", err))
				continue
			}
			onSnapshot(docs)
		}

		streamErr := stream.Err()
		_ = stream.Close(context.WithoutCancel(ctx))
		stream = nil

		if ctx.Err() != nil {
			return
		}
		if streamErr != nil {
			onError(fmt.Errorf("mongostore.watch stream: %w", streamErr))
		}
		if !c.sleep(ctx) {
			return
		}
	}
}

func (c *Collection[T]) sleep(ctx context.Context) bool {
	select {
	case <-ctx.Done():
		return false
	case <-time.After(c.resubIn):
		return true
	}
}
