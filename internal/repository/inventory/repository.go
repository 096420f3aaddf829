// Package repository keeps the in-memory inventory collection mirrored
// from the remote store. Reads are served from the cache; mutations
// commit locally first and persist remotely best-effort. It also hosts
// the consumption engine (ApplyUsage) and the first-run seeding of an
// empty remote collection.
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

const collectionName = "inventory"

type repository struct {
	store        store.Collection[ItemEntity]
	observe      model.RemoteObserver
	writeTimeout time.Duration

	mu     sync.RWMutex
	items  []*model.InventoryItem
	health model.Health
	// bootstrapped flips once the first snapshot lands. Only an empty
	// first snapshot seeds the catalog; a later empty snapshot means
	// the user emptied the collection and is mirrored as-is. Default
	// items carry fixed ids, so a seed racing another process stays
	// idempotent anyway.
	bootstrapped bool

	wg    sync.WaitGroup
	unsub store.Unsubscribe
}

func NewInventoryRepository(
	st store.Collection[ItemEntity],
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
		items:        make([]*model.InventoryItem, 0),
	}
}

// Start opens the live subscription. The first snapshot is applied
// before Start returns.
func (r *repository) Start(ctx context.Context) error {
	const op = "inventory.repository.Start"

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

// Wait blocks until every in-flight remote write has completed.
func (r *repository) Wait() { r.wg.Wait() }

func (r *repository) Health() model.Health {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return r.health
}

func (r *repository) applySnapshot(ents []ItemEntity) {
	items := make([]*model.InventoryItem, 0, len(ents))
	for i := range ents {
		items = append(items, EntityToModel(&ents[i]))
	}

	r.mu.Lock()
	seedNow := !r.bootstrapped && len(items) == 0
	r.bootstrapped = true
	if seedNow {
		r.items = DefaultItems()
	} else {
		r.items = items
	}
	r.health = model.HealthOnline
	r.mu.Unlock()

	if seedNow {
		r.seedRemote()
	}
}

// seedRemote writes the default catalog back in one batch. Fire and
// forget: the cache already holds the defaults, a failure only costs
// durability.
func (r *repository) seedRemote() {
	defaults := DefaultItems()
	ops := make([]store.WriteOp[ItemEntity], 0, len(defaults))
	for _, it := range defaults {
		ops = append(ops, store.WriteOp[ItemEntity]{
			ID:       it.ID,
			Document: EntityFromModel(it),
			Op:       store.OpSet,
		})
	}

	r.async("seed", "", func(ctx context.Context) error {
		return r.store.BatchWrite(ctx, ops)
	})
}

func (r *repository) onSubscribeError(err error) {
	r.setHealth(model.HealthError)
	logger.Error(context.Background(), "inventory subscription",
		logger.ErrorF(err),
	)
}

func (r *repository) All() []*model.InventoryItem {
	r.mu.RLock()
	defer r.mu.RUnlock()
	out := make([]*model.InventoryItem, len(r.items))
	copy(out, r.items)
	return out
}

func (r *repository) ByID(id string) (*model.InventoryItem, bool) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	for _, it := range r.items {
		if it.ID == id {
			return it, true
		}
	}
	return nil, false
}

// Upsert replaces the item with the same id or appends it, then
// persists remotely best-effort.
func (r *repository) Upsert(item *model.InventoryItem) {
	r.mu.Lock()
	replaced := false
	for i, it := range r.items {
		if it.ID == item.ID {
			r.items[i] = item
			replaced = true
			break
		}
	}
	if !replaced {
		r.items = append(r.items, item)
	}
	ent := EntityFromModel(item)
	r.mu.Unlock()

	r.async("upsert", item.ID, func(ctx context.Context) error {
		return r.store.Upsert(ctx, ent.ID, ent)
	})
}

func (r *repository) Delete(id string) {
	r.mu.Lock()
	for i, it := range r.items {
		if it.ID == id {
			r.items = append(r.items[:i], r.items[i+1:]...)
			break
		}
	}
	r.mu.Unlock()

	r.async("delete", id, func(ctx context.Context) error {
		return r.store.Delete(ctx, id)
	})
}

// ReplaceAll swaps the whole cache. Local only; used by the import
// flow, which relies on subsequent edits to persist individual items.
func (r *repository) ReplaceAll(items []*model.InventoryItem) {
	if items == nil {
		items = make([]*model.InventoryItem, 0)
	}
	r.mu.Lock()
	r.items = items
	r.mu.Unlock()
}

// RenameModelGroup rewrites the model grouping key on every matching
// item, locally and in one remote batch. Returns the number of items
// touched; zero means the batch was skipped entirely.
func (r *repository) RenameModelGroup(oldName, newName string) int {
	r.mu.Lock()
	var ops []store.WriteOp[ItemEntity]
	for i, it := range r.items {
		if it.Model != oldName {
			continue
		}
		// Pointers handed out by All/ByID stay stable; swap in a copy.
		cp := *it
		cp.Model = newName
		r.items[i] = &cp
		ops = append(ops, store.WriteOp[ItemEntity]{
			ID:       cp.ID,
			Document: EntityFromModel(&cp),
			Op:       store.OpSet,
		})
	}
	r.mu.Unlock()

	if len(ops) == 0 {
		return 0
	}

	r.async("rename_group", "", func(ctx context.Context) error {
		return r.store.BatchWrite(ctx, ops)
	})
	return len(ops)
}

// ApplyUsage decrements stock for every consumed-part entry, floored at
// zero. Entries are applied independently in list order against the
// first item whose name matches exactly; unmatched names are skipped.
// All affected items go to the remote store in a single batch, one
// final write per item. Returns the items that changed.
func (r *repository) ApplyUsage(parts []model.PartUsage) []*model.InventoryItem {
	r.mu.Lock()
	touched := make(map[string]struct{})
	var changed []*model.InventoryItem
	for _, p := range parts {
		if p.Qty <= 0 {
			continue
		}
		idx := r.indexByNameLocked(p.Name)
		if idx < 0 {
			continue
		}
		item := r.items[idx]
		newQty := item.Qty - p.Qty
		if newQty < 0 {
			newQty = 0
		}
		if _, ok := touched[item.ID]; ok {
			// Already swapped for a copy private to this call.
			item.Qty = newQty
			continue
		}
		// Pointers handed out by All/ByID stay stable; swap in a copy.
		cp := *item
		cp.Qty = newQty
		r.items[idx] = &cp
		touched[item.ID] = struct{}{}
		changed = append(changed, &cp)
	}
	ops := make([]store.WriteOp[ItemEntity], 0, len(changed))
	for _, it := range changed {
		ops = append(ops, store.WriteOp[ItemEntity]{
			ID:       it.ID,
			Document: EntityFromModel(it),
			Op:       store.OpSet,
		})
	}
	r.mu.Unlock()

	if len(ops) == 0 {
		return nil
	}

	r.async("apply_usage", "", func(ctx context.Context) error {
		return r.store.BatchWrite(ctx, ops)
	})
	return changed
}

func (r *repository) indexByNameLocked(name string) int {
	for i, it := range r.items {
		if it.Name == name {
			return i
		}
	}
	return -1
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
