package repository

import (
	"context"
	"errors"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Ckopin0130/PrintManage-sub000/internal/model"
	memstore "github.com/Ckopin0130/PrintManage-sub000/internal/store/memory"
)

const testWriteTimeout = time.Second

// writeRecorder collects remote-write results from the background
// goroutines so tests can assert on them after Wait.
type writeRecorder struct {
	mu     sync.Mutex
	writes []model.RemoteWrite
}

func (w *writeRecorder) observe(res model.RemoteWrite) {
	w.mu.Lock()
	defer w.mu.Unlock()
	w.writes = append(w.writes, res)
}

func (w *writeRecorder) failed() []model.RemoteWrite {
	w.mu.Lock()
	defer w.mu.Unlock()
	out := make([]model.RemoteWrite, 0)
	for _, res := range w.writes {
		if !res.Ok() {
			out = append(out, res)
		}
	}
	return out
}

func seedStore(t *testing.T, st *memstore.Collection[ItemEntity], items ...ItemEntity) {
	t.Helper()
	for _, it := range items {
		require.NoError(t, st.Upsert(context.Background(), it.ID, it))
	}
}

func TestRepositorySeedsEmptyStore(t *testing.T) {
	t.Parallel()

	st := memstore.NewCollection[ItemEntity]()
	rec := &writeRecorder{}
	repo := NewInventoryRepository(st, testWriteTimeout, rec.observe)

	require.NoError(t, repo.Start(context.Background()))
	t.Cleanup(repo.Stop)

	require.Len(t, repo.All(), len(defaultCatalog))
	assert.Equal(t, model.HealthOnline, repo.Health())

	repo.Wait()
	assert.Empty(t, rec.failed())

	docs, err := st.GetAll(context.Background())
	require.NoError(t, err)
	assert.Len(t, docs, len(defaultCatalog))

	item, ok := repo.ByID("itm-0006")
	require.True(t, ok)
	assert.Equal(t, "Toner MP 3352", item.Name)
	assert.EqualValues(t, 5, item.Qty)
	// Classification reads the model string, not the display name.
	assert.Equal(t, model.ItemCategoryMono, item.CategoryID)
}

func TestRepositorySeedsOnce(t *testing.T) {
	t.Parallel()

	st := memstore.NewCollection[ItemEntity]()
	rec := &writeRecorder{}
	repo := NewInventoryRepository(st, testWriteTimeout, rec.observe)

	// Only the first empty snapshot seeds; the second one means the
	// collection was emptied and is mirrored as-is.
	repo.applySnapshot(nil)
	require.Len(t, repo.All(), len(defaultCatalog))
	repo.applySnapshot(nil)
	assert.Empty(t, repo.All())
	repo.Wait()

	seeds := 0
	rec.mu.Lock()
	for _, w := range rec.writes {
		if w.Op == "seed" {
			seeds++
		}
	}
	rec.mu.Unlock()
	assert.Equal(t, 1, seeds)

	docs, err := st.GetAll(context.Background())
	require.NoError(t, err)
	assert.Len(t, docs, len(defaultCatalog))
}

func TestRepositoryDeletingLastItemDoesNotReseed(t *testing.T) {
	t.Parallel()

	st := memstore.NewCollection[ItemEntity]()
	seedStore(t, st, ItemEntity{ID: "itm-x", Name: "Fuser Unit", Qty: 1})

	rec := &writeRecorder{}
	repo := NewInventoryRepository(st, testWriteTimeout, rec.observe)
	require.NoError(t, repo.Start(context.Background()))
	t.Cleanup(repo.Stop)

	repo.Delete("itm-x")
	repo.Wait()

	// The emptied collection stays empty, locally and remotely.
	assert.Empty(t, repo.All())
	docs, err := st.GetAll(context.Background())
	require.NoError(t, err)
	assert.Empty(t, docs)

	rec.mu.Lock()
	for _, w := range rec.writes {
		assert.NotEqual(t, "seed", w.Op)
	}
	rec.mu.Unlock()
}

func TestRepositoryDoesNotSeedPopulatedStore(t *testing.T) {
	t.Parallel()

	st := memstore.NewCollection[ItemEntity]()
	seedStore(t, st, ItemEntity{ID: "itm-x", Name: "Fuser Unit", Qty: 1})

	repo := NewInventoryRepository(st, testWriteTimeout, nil)
	require.NoError(t, repo.Start(context.Background()))
	t.Cleanup(repo.Stop)

	items := repo.All()
	require.Len(t, items, 1)
	assert.Equal(t, "itm-x", items[0].ID)
}

func TestRepositoryUpsertAndDelete(t *testing.T) {
	t.Parallel()

	st := memstore.NewCollection[ItemEntity]()
	seedStore(t, st, ItemEntity{ID: "itm-1", Name: "Drum Unit", Qty: 2})

	rec := &writeRecorder{}
	repo := NewInventoryRepository(st, testWriteTimeout, rec.observe)
	require.NoError(t, repo.Start(context.Background()))
	t.Cleanup(repo.Stop)

	// Replace by id keeps the collection size. Drain between mutations
	// so the remote writes land in a fixed order.
	repo.Upsert(&model.InventoryItem{ID: "itm-1", Name: "Drum Unit", Qty: 7})
	require.Len(t, repo.All(), 1)
	got, ok := repo.ByID("itm-1")
	require.True(t, ok)
	assert.EqualValues(t, 7, got.Qty)
	repo.Wait()

	// New id appends.
	repo.Upsert(&model.InventoryItem{ID: "itm-2", Name: "Transfer Belt", Qty: 1})
	require.Len(t, repo.All(), 2)
	repo.Wait()

	repo.Delete("itm-1")
	require.Len(t, repo.All(), 1)
	_, ok = repo.ByID("itm-1")
	assert.False(t, ok)

	repo.Wait()
	assert.Empty(t, rec.failed())

	docs, err := st.GetAll(context.Background())
	require.NoError(t, err)
	require.Len(t, docs, 1)
	assert.Equal(t, "itm-2", docs[0].ID)
}

func TestRepositoryApplyUsage(t *testing.T) {
	t.Parallel()

	newRepo := func(t *testing.T) (*repository, *memstore.Collection[ItemEntity]) {
		st := memstore.NewCollection[ItemEntity]()
		seedStore(t, st,
			ItemEntity{ID: "itm-1", Name: "Toner MP 3352", Qty: 5},
			ItemEntity{ID: "itm-2", Name: "Drum Unit MP 3352", Qty: 2},
		)
		repo := NewInventoryRepository(st, testWriteTimeout, nil)
		require.NoError(t, repo.Start(context.Background()))
		t.Cleanup(repo.Stop)
		return repo, st
	}

	tests := []struct {
		name        string
		parts       []model.PartUsage
		wantChanged int
		wantQty     map[string]int64
	}{
		{
			name:        "plain decrement",
			parts:       []model.PartUsage{{Name: "Toner MP 3352", Qty: 2}},
			wantChanged: 1,
			wantQty:     map[string]int64{"itm-1": 3, "itm-2": 2},
		},
		{
			name:        "clamps at zero instead of going negative",
			parts:       []model.PartUsage{{Name: "Drum Unit MP 3352", Qty: 10}},
			wantChanged: 1,
			wantQty:     map[string]int64{"itm-1": 5, "itm-2": 0},
		},
		{
			name: "duplicate entries apply independently in order",
			parts: []model.PartUsage{
				{Name: "Toner MP 3352", Qty: 2},
				{Name: "Toner MP 3352", Qty: 2},
			},
			wantChanged: 1,
			wantQty:     map[string]int64{"itm-1": 1, "itm-2": 2},
		},
		{
			name: "unknown names and non-positive quantities are skipped",
			parts: []model.PartUsage{
				{Name: "No Such Part", Qty: 3},
				{Name: "Toner MP 3352", Qty: 0},
				{Name: "Drum Unit MP 3352", Qty: -1},
			},
			wantChanged: 0,
			wantQty:     map[string]int64{"itm-1": 5, "itm-2": 2},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			repo, st := newRepo(t)

			changed := repo.ApplyUsage(tt.parts)
			assert.Len(t, changed, tt.wantChanged)

			for id, want := range tt.wantQty {
				item, ok := repo.ByID(id)
				require.True(t, ok, id)
				assert.EqualValues(t, want, item.Qty, id)
			}

			repo.Wait()
			docs, err := st.GetAll(context.Background())
			require.NoError(t, err)
			for _, doc := range docs {
				assert.EqualValues(t, tt.wantQty[doc.ID], doc.Qty, doc.ID)
			}
		})
	}
}

func TestRepositoryRenameModelGroup(t *testing.T) {
	t.Parallel()

	st := memstore.NewCollection[ItemEntity]()
	seedStore(t, st,
		ItemEntity{ID: "itm-1", Name: "Black Toner", Model: "MP C3003/C3503", Qty: 4},
		ItemEntity{ID: "itm-2", Name: "Cyan Toner", Model: "MP C3003/C3503", Qty: 3},
		ItemEntity{ID: "itm-3", Name: "Drum Unit", Model: "MP C3003/C3503", Qty: 2},
		ItemEntity{ID: "itm-4", Name: "Toner MP 3352", Model: "MP 3352", Qty: 5},
		ItemEntity{ID: "itm-5", Name: "Staple Cartridge", Model: "common consumable", Qty: 9},
	)

	repo := NewInventoryRepository(st, testWriteTimeout, nil)
	require.NoError(t, repo.Start(context.Background()))
	t.Cleanup(repo.Stop)

	n := repo.RenameModelGroup("MP C3003/C3503", "MP C3004/C3504")
	assert.Equal(t, 3, n)

	assert.Equal(t, 0, repo.RenameModelGroup("No Such Group", "Whatever"))

	repo.Wait()
	docs, err := st.GetAll(context.Background())
	require.NoError(t, err)

	renamed := 0
	for _, doc := range docs {
		if doc.Model == "MP C3004/C3504" {
			renamed++
		}
		assert.NotEqual(t, "MP C3003/C3503", doc.Model)
	}
	assert.Equal(t, 3, renamed)
}

func TestRepositoryRemoteFailureKeepsLocalWrite(t *testing.T) {
	t.Parallel()

	st := memstore.NewCollection[ItemEntity]()
	seedStore(t, st, ItemEntity{ID: "itm-1", Name: "Drum Unit", Qty: 2})

	rec := &writeRecorder{}
	repo := NewInventoryRepository(st, testWriteTimeout, rec.observe)
	require.NoError(t, repo.Start(context.Background()))
	t.Cleanup(repo.Stop)

	wantErr := errors.New("connection reset")
	st.FailWith(wantErr)

	repo.Upsert(&model.InventoryItem{ID: "itm-1", Name: "Drum Unit", Qty: 9})
	repo.Wait()

	// The optimistic local commit survives the failed remote phase.
	got, ok := repo.ByID("itm-1")
	require.True(t, ok)
	assert.EqualValues(t, 9, got.Qty)

	failed := rec.failed()
	require.Len(t, failed, 1)
	assert.Equal(t, "upsert", failed[0].Op)
	assert.Equal(t, "itm-1", failed[0].ID)
	assert.ErrorIs(t, failed[0].Err, wantErr)

	// The store still holds the pre-failure document.
	docs, err := st.GetAll(context.Background())
	require.NoError(t, err)
	require.Len(t, docs, 1)
	assert.EqualValues(t, 2, docs[0].Qty)
}

func TestRepositoryReadsStayStableAcrossMutations(t *testing.T) {
	t.Parallel()

	st := memstore.NewCollection[ItemEntity]()
	seedStore(t, st,
		ItemEntity{ID: "itm-1", Name: "Toner MP 3352", Model: "MP 3352", Qty: 5},
	)

	repo := NewInventoryRepository(st, testWriteTimeout, nil)
	require.NoError(t, repo.Start(context.Background()))
	t.Cleanup(repo.Stop)

	held, ok := repo.ByID("itm-1")
	require.True(t, ok)

	// Mutations swap in copies; an item handed out earlier keeps the
	// values it was read with.
	changed := repo.ApplyUsage([]model.PartUsage{{Name: "Toner MP 3352", Qty: 2}})
	require.Len(t, changed, 1)
	assert.EqualValues(t, 3, changed[0].Qty)
	assert.EqualValues(t, 5, held.Qty)
	repo.Wait()

	repo.RenameModelGroup("MP 3352", "MP 3352 SP")
	assert.Equal(t, "MP 3352", held.Model)
	repo.Wait()

	now, ok := repo.ByID("itm-1")
	require.True(t, ok)
	assert.EqualValues(t, 3, now.Qty)
	assert.Equal(t, "MP 3352 SP", now.Model)
}

func TestRepositorySnapshotReplacesCache(t *testing.T) {
	t.Parallel()

	st := memstore.NewCollection[ItemEntity]()
	seedStore(t, st, ItemEntity{ID: "itm-1", Name: "Drum Unit", Qty: 2})

	repo := NewInventoryRepository(st, testWriteTimeout, nil)
	require.NoError(t, repo.Start(context.Background()))
	t.Cleanup(repo.Stop)

	// A write from elsewhere lands as a wholesale snapshot replace.
	require.NoError(t, st.Upsert(context.Background(),
		"itm-2", ItemEntity{ID: "itm-2", Name: "Transfer Belt", Qty: 1}))

	items := repo.All()
	require.Len(t, items, 2)
	_, ok := repo.ByID("itm-2")
	assert.True(t, ok)
}
