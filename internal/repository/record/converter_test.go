package repository

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Ckopin0130/PrintManage-sub000/internal/model"
)

func TestEntityToModel(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name   string
		entity RecordEntity
		assert func(t *testing.T, rec *model.RepairRecord)
	}{
		{
			name: "canonical shape passes through",
			entity: RecordEntity{
				ID:            "rec-1",
				CustomerID:    "cus-1",
				Status:        "completed",
				Symptom:       "paper jam",
				Action:        "cleaned rollers",
				ServiceSource: "customer_call",
				PhotosBefore:  []string{"https://example.invalid/a.jpg"},
			},
			assert: func(t *testing.T, rec *model.RepairRecord) {
				assert.Equal(t, model.StatusCompleted, rec.Status)
				assert.Equal(t, "paper jam", rec.Symptom)
				assert.Equal(t, "cleaned rollers", rec.Action)
				assert.Equal(t, []string{"https://example.invalid/a.jpg"}, rec.PhotosBefore)
			},
		},
		{
			name: "legacy fault and solution fill missing canonical fields",
			entity: RecordEntity{
				ID:       "rec-2",
				Fault:    "SC542 fuser error",
				Solution: "reset and replaced thermistor",
			},
			assert: func(t *testing.T, rec *model.RepairRecord) {
				assert.Equal(t, "SC542 fuser error", rec.Symptom)
				assert.Equal(t, "reset and replaced thermistor", rec.Action)
			},
		},
		{
			name: "canonical fields win over legacy ones",
			entity: RecordEntity{
				ID:      "rec-3",
				Symptom: "streaks on copies",
				Fault:   "old fault text",
			},
			assert: func(t *testing.T, rec *model.RepairRecord) {
				assert.Equal(t, "streaks on copies", rec.Symptom)
			},
		},
		{
			name:   "legacy pending status reads as tracking",
			entity: RecordEntity{ID: "rec-4", Status: legacyStatusPending},
			assert: func(t *testing.T, rec *model.RepairRecord) {
				assert.Equal(t, model.StatusTracking, rec.Status)
			},
		},
		{
			name: "single legacy photo becomes a one-element array",
			entity: RecordEntity{
				ID:          "rec-5",
				PhotoBefore: "https://example.invalid/before.jpg",
			},
			assert: func(t *testing.T, rec *model.RepairRecord) {
				assert.Equal(t, []string{"https://example.invalid/before.jpg"}, rec.PhotosBefore)
				assert.Empty(t, rec.PhotosAfter)
				assert.NotNil(t, rec.PhotosAfter)
			},
		},
		{
			name: "photo array wins over the single legacy field",
			entity: RecordEntity{
				ID:          "rec-6",
				PhotoBefore: "https://example.invalid/old.jpg",
				PhotosBefore: []string{
					"https://example.invalid/1.jpg",
					"https://example.invalid/2.jpg",
				},
			},
			assert: func(t *testing.T, rec *model.RepairRecord) {
				assert.Len(t, rec.PhotosBefore, 2)
				assert.NotContains(t, rec.PhotosBefore, "https://example.invalid/old.jpg")
			},
		},
		{
			name:   "nil parts become an empty slice",
			entity: RecordEntity{ID: "rec-7"},
			assert: func(t *testing.T, rec *model.RepairRecord) {
				assert.NotNil(t, rec.Parts)
				assert.Empty(t, rec.Parts)
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			rec := EntityToModel(&tt.entity)
			require.NotNil(t, rec)
			tt.assert(t, rec)
		})
	}
}

func TestEntityFromModelMirrorsLegacyPhotoFields(t *testing.T) {
	t.Parallel()

	rec := &model.RepairRecord{
		ID:         "rec-1",
		CustomerID: "cus-1",
		Status:     model.StatusCompleted,
		PhotosBefore: []string{
			"https://example.invalid/1.jpg",
			"https://example.invalid/2.jpg",
		},
	}

	ent := EntityFromModel(rec)
	assert.Equal(t, "https://example.invalid/1.jpg", ent.PhotoBefore)
	assert.Equal(t, rec.PhotosBefore, ent.PhotosBefore)
	assert.Empty(t, ent.PhotoAfter)
}

func TestDefaultRecordsExerciseLegacyShape(t *testing.T) {
	t.Parallel()

	recs := DefaultRecords()
	require.Len(t, recs, 2)

	legacy := recs[1]
	assert.Equal(t, model.StatusTracking, legacy.Status)
	assert.Equal(t, "SC542 fuser thermistor error", legacy.Symptom)
	assert.Equal(t, "reset error code, ordered replacement thermistor", legacy.Action)
	require.Len(t, legacy.PhotosBefore, 1)
	assert.NotEmpty(t, legacy.NextVisitDate)
}
