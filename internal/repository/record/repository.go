// Package repository keeps the in-memory repair-record collection
// mirrored from the remote store. Mutations commit locally first and
// persist remotely best-effort. Orphaned records, whose customer no
// longer exists, stay readable; the join to a customer name happens in
// the record service.
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

const collectionName = "records"

type repository struct {
	store        store.Collection[RecordEntity]
	observe      model.RemoteObserver
	writeTimeout time.Duration

	mu      sync.RWMutex
	records []*model.RepairRecord
	health  model.Health
	// bootstrapped flips once the first snapshot lands; only an empty
	// first snapshot shows the display-only demo log.
	bootstrapped bool

	wg    sync.WaitGroup
	unsub store.Unsubscribe
}

func NewRecordRepository(
	st store.Collection[RecordEntity],
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
		records:      make([]*model.RepairRecord, 0),
	}
}

func (r *repository) Start(ctx context.Context) error {
	const op = "record.repository.Start"

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

func (r *repository) applySnapshot(ents []RecordEntity) {
	records := make([]*model.RepairRecord, 0, len(ents))
	for i := range ents {
		records = append(records, EntityToModel(&ents[i]))
	}

	r.mu.Lock()
	if !r.bootstrapped && len(records) == 0 {
		r.records = DefaultRecords()
	} else {
		r.records = records
	}
	r.bootstrapped = true
	r.health = model.HealthOnline
	r.mu.Unlock()
}

func (r *repository) onSubscribeError(err error) {
	r.setHealth(model.HealthError)
	logger.Error(context.Background(), "records subscription",
		logger.ErrorF(err),
	)
}

func (r *repository) All() []*model.RepairRecord {
	r.mu.RLock()
	defer r.mu.RUnlock()
	out := make([]*model.RepairRecord, len(r.records))
	copy(out, r.records)
	return out
}

func (r *repository) ByID(id string) (*model.RepairRecord, bool) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	for _, rec := range r.records {
		if rec.ID == id {
			return rec, true
		}
	}
	return nil, false
}

func (r *repository) Upsert(rec *model.RepairRecord) {
	r.mu.Lock()
	replaced := false
	for i, existing := range r.records {
		if existing.ID == rec.ID {
			r.records[i] = rec
			replaced = true
			break
		}
	}
	if !replaced {
		r.records = append(r.records, rec)
	}
	ent := EntityFromModel(rec)
	r.mu.Unlock()

	r.async("upsert", rec.ID, func(ctx context.Context) error {
		return r.store.Upsert(ctx, ent.ID, ent)
	})
}

func (r *repository) Delete(id string) {
	r.mu.Lock()
	for i, rec := range r.records {
		if rec.ID == id {
			r.records = append(r.records[:i], r.records[i+1:]...)
			break
		}
	}
	r.mu.Unlock()

	r.async("delete", id, func(ctx context.Context) error {
		return r.store.Delete(ctx, id)
	})
}

// ReplaceAll swaps the whole cache. Local only; used by the import flow.
func (r *repository) ReplaceAll(records []*model.RepairRecord) {
	if records == nil {
		records = make([]*model.RepairRecord, 0)
	}
	r.mu.Lock()
	r.records = records
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
