package repository

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	memstore "github.com/Ckopin0130/PrintManage-sub000/internal/store/memory"
)

const testWriteTimeout = time.Second

func TestRepositoryShowsDemoLogOnEmptyStore(t *testing.T) {
	t.Parallel()

	st := memstore.NewCollection[RecordEntity]()
	repo := NewRecordRepository(st, testWriteTimeout, nil)

	require.NoError(t, repo.Start(context.Background()))
	t.Cleanup(repo.Stop)

	// Display-only: visible in the cache, never written back.
	require.Len(t, repo.All(), 2)

	repo.Wait()
	docs, err := st.GetAll(context.Background())
	require.NoError(t, err)
	assert.Empty(t, docs)
}

func TestRepositoryDeletingLastRecordDoesNotRestoreDemoLog(t *testing.T) {
	t.Parallel()

	st := memstore.NewCollection[RecordEntity]()
	require.NoError(t, st.Upsert(context.Background(), "rec-1",
		RecordEntity{ID: "rec-1", CustomerID: "cus-1", Status: "completed"}))

	repo := NewRecordRepository(st, testWriteTimeout, nil)
	require.NoError(t, repo.Start(context.Background()))
	t.Cleanup(repo.Stop)

	require.Len(t, repo.All(), 1)

	repo.Delete("rec-1")
	repo.Wait()

	assert.Empty(t, repo.All())
	docs, err := st.GetAll(context.Background())
	require.NoError(t, err)
	assert.Empty(t, docs)
}

func TestRepositoryCoalescesLegacyDocumentsOnRead(t *testing.T) {
	t.Parallel()

	st := memstore.NewCollection[RecordEntity]()
	require.NoError(t, st.Upsert(context.Background(), "rec-1",
		RecordEntity{
			ID:          "rec-1",
			CustomerID:  "cus-1",
			Status:      legacyStatusPending,
			Fault:       "SC542 fuser error",
			Solution:    "reset, ordered thermistor",
			PhotoBefore: "https://example.invalid/before.jpg",
		}))

	repo := NewRecordRepository(st, testWriteTimeout, nil)
	require.NoError(t, repo.Start(context.Background()))
	t.Cleanup(repo.Stop)

	rec, ok := repo.ByID("rec-1")
	require.True(t, ok)
	assert.Equal(t, "SC542 fuser error", rec.Symptom)
	assert.Equal(t, "reset, ordered thermistor", rec.Action)
	assert.Equal(t, []string{"https://example.invalid/before.jpg"}, rec.PhotosBefore)
}
