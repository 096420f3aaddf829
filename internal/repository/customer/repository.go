// Package repository keeps the in-memory customer roster mirrored from
// the remote store. Mutations commit locally first and persist
// remotely best-effort.
package repository

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/Ckopin0130/PrintManage-sub000/internal/model"
	"github.com/Ckopin0130/PrintManage-sub000/internal/store"
	"github.com/Ckopin0130/PrintManage-sub000/pkg/logger"
)

const collectionName = "customers"

type repository struct {
	store        store.Collection[CustomerEntity]
	observe      model.RemoteObserver
	writeTimeout time.Duration

	mu        sync.RWMutex
	customers []*model.Customer
	health    model.Health
	// bootstrapped flips once the first snapshot lands. The display-only
	// default roster shows only for an empty first snapshot; a later
	// empty snapshot means the user emptied the collection. Unlike
	// inventory, the defaults are never written back.
	bootstrapped bool

	wg    sync.WaitGroup
	unsub store.Unsubscribe
}

func NewCustomerRepository(
	st store.Collection[CustomerEntity],
	writeTimeout time.Duration,
	observe model.RemoteObserver,
) *repository {
	if observe == nil {
		observe = logRemoteWrite
	}
	return &repository{
		store:        st,
		observe:      observe,
		writeTimeout: writeTimeout,
		health:       model.HealthConnecting,
		customers:    make([]*model.Customer, 0),
	}
}

func (r *repository) Start(ctx context.Context) error {
	const op = "customer.repository.Start"

	unsub, err := r.store.Subscribe(ctx, r.applySnapshot, r.onSubscribeError)
	if err != nil {
		r.setHealth(model.HealthError)
		return fmt.Errorf("%s: %w", op, err)
	}
	r.unsub = unsub
	return nil
}

func (r *repository) Stop() {
	if r.unsub != nil {
		r.unsub()
	}
	r.setHealth(model.HealthOffline)
}

func (r *repository) Wait() { r.wg.Wait() }

func (r *repository) Health() model.Health {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return r.health
}

func (r *repository) applySnapshot(ents []CustomerEntity) {
	customers := make([]*model.Customer, 0, len(ents))
	for i := range ents {
		customers = append(customers, EntityToModel(&ents[i]))
	}

	r.mu.Lock()
	if !r.bootstrapped && len(customers) == 0 {
		r.customers = DefaultCustomers()
	} else {
		r.customers = customers
	}
	r.bootstrapped = true
	r.health = model.HealthOnline
	r.mu.Unlock()
}

func (r *repository) onSubscribeError(err error) {
	r.setHealth(model.HealthError)
	logger.Error(context.Background(), "customers subscription",
		logger.ErrorF(err),
	)
}

func (r *repository) All() []*model.Customer {
	r.mu.RLock()
	defer r.mu.RUnlock()
	out := make([]*model.Customer, len(r.customers))
	copy(out, r.customers)
	return out
}

func (r *repository) ByID(id string) (*model.Customer, bool) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	for _, c := range r.customers {
		if c.ID == id {
			return c, true
		}
	}
	return nil, false
}

func (r *repository) Upsert(c *model.Customer) {
	r.mu.Lock()
	replaced := false
	for i, existing := range r.customers {
		if existing.ID == c.ID {
			r.customers[i] = c
			replaced = true
			break
		}
	}
	if !replaced {
		r.customers = append(r.customers, c)
	}
	ent := EntityFromModel(c)
	r.mu.Unlock()

	r.async("upsert", c.ID, func(ctx context.Context) error {
		return r.store.Upsert(ctx, ent.ID, ent)
	})
}

func (r *repository) Delete(id string) {
	r.mu.Lock()
	for i, c := range r.customers {
		if c.ID == id {
			r.customers = append(r.customers[:i], r.customers[i+1:]...)
			break
		}
	}
	r.mu.Unlock()

	r.async("delete", id, func(ctx context.Context) error {
		return r.store.Delete(ctx, id)
	})
}

// ReplaceAll swaps the whole cache. Local only; used by the import flow.
func (r *repository) ReplaceAll(customers []*model.Customer) {
	if customers == nil {
		customers = make([]*model.Customer, 0)
	}
	r.mu.Lock()
	r.customers = customers
	r.mu.Unlock()
}

func (r *repository) setHealth(h model.Health) {
	r.mu.Lock()
	r.health = h
	r.mu.Unlock()
}

func (r *repository) async(op, id string, fn func(ctx context.Context) error) {
	r.wg.Add(1)
	go func() {
		defer r.wg.Done()
		ctx, cancel := context.WithTimeout(context.Background(), r.writeTimeout)
		defer cancel()
		r.observe(model.RemoteWrite{
			Collection: collectionName,
			Op:         op,
			ID:         id,
			Err:        fn(ctx),
		})
	}()
}

func logRemoteWrite(w model.RemoteWrite) {
	if w.Err == nil {
		return
	}
	logger.Error(context.Background(), "remote write failed",
		logger.String("collection", w.Collection),
		logger.String("op", w.Op),
		logger.String("id", w.ID),
		logger.ErrorF(w.Err),
	)
}
