package service

import (
	"context"
	"encoding/base64"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/Ckopin0130/PrintManage-sub000/internal/model"
	"github.com/Ckopin0130/PrintManage-sub000/internal/service/mocks"
)

type recordDeps struct {
	records   *mocks.MockRecordRepository
	customers *mocks.MockCustomerRepository
	inventory *mocks.MockInventoryRepository
	photos    *mocks.MockPhotoStore
}

func newRecordDeps(t *testing.T) recordDeps {
	return recordDeps{
		records:   mocks.NewMockRecordRepository(t),
		customers: mocks.NewMockCustomerRepository(t),
		inventory: mocks.NewMockInventoryRepository(t),
		photos:    mocks.NewMockPhotoStore(t),
	}
}

func newRecordSvc(d recordDeps) *service {
	svc := NewRecordService(d.records, d.customers, d.inventory, d.photos)
	svc.now = func() time.Time {
		return time.Date(2025, time.November, 10, 9, 30, 0, 0, time.UTC)
	}
	return svc
}

func TestServiceSave(t *testing.T) {
	t.Parallel()

	type testCase struct {
		name   string
		record *model.RepairRecord
		setup  func(d recordDeps)
		assert func(t *testing.T, res *model.RepairRecord, err error, d recordDeps)
	}

	tests := []testCase{
		{
			name:   "validation error: empty customer id",
			record: &model.RepairRecord{Status: model.StatusCompleted, ServiceSource: model.SourceCustomerCall},
			assert: func(t *testing.T, res *model.RepairRecord, err error, d recordDeps) {
				require.Error(t, err)
				assert.ErrorIs(t, err, model.ErrValidation)
				d.records.AssertNotCalled(t, "Upsert", mock.Anything)
			},
		},
		{
			name: "validation error: unknown status",
			record: &model.RepairRecord{
				CustomerID:    "cus-1",
				Status:        "done",
				ServiceSource: model.SourceCustomerCall,
			},
			assert: func(t *testing.T, res *model.RepairRecord, err error, d recordDeps) {
				require.Error(t, err)
				assert.ErrorIs(t, err, model.ErrValidation)
			},
		},
		{
			name: "validation error: unknown service source",
			record: &model.RepairRecord{
				CustomerID:    "cus-1",
				Status:        model.StatusCompleted,
				ServiceSource: "walk_in",
			},
			assert: func(t *testing.T, res *model.RepairRecord, err error, d recordDeps) {
				require.Error(t, err)
				assert.ErrorIs(t, err, model.ErrValidation)
			},
		},
		{
			name: "validation error: tracking without next visit date",
			record: &model.RepairRecord{
				CustomerID:    "cus-1",
				Status:        model.StatusTracking,
				ServiceSource: model.SourceCustomerCall,
			},
			assert: func(t *testing.T, res *model.RepairRecord, err error, d recordDeps) {
				require.Error(t, err)
				assert.ErrorIs(t, err, model.ErrValidation)
			},
		},
		{
			name: "creation: assigns id and dates, no parts means no stock touch",
			record: &model.RepairRecord{
				CustomerID:    "cus-1",
				Status:        model.StatusCompleted,
				ServiceSource: model.SourceCustomerCall,
			},
			setup: func(d recordDeps) {
				d.records.On("Upsert", mock.Anything).Once()
			},
			assert: func(t *testing.T, res *model.RepairRecord, err error, d recordDeps) {
				require.NoError(t, err)
				assert.NotEmpty(t, res.ID)
				assert.Equal(t, "2025-11-10", res.Date)
				assert.Equal(t, "2025-11-10", res.CompletedDate)
				assert.NotNil(t, res.Parts)

				d.inventory.AssertNotCalled(t, "ApplyUsage", mock.Anything)
			},
		},
		{
			name: "consumed parts decrement stock after the record commits",
			record: &model.RepairRecord{
				CustomerID:    "cus-1",
				Status:        model.StatusCompleted,
				ServiceSource: model.SourceCompanyDispatch,
				Parts: []model.PartUsage{
					{Name: "Toner MP 3352", Qty: 2},
				},
			},
			setup: func(d recordDeps) {
				d.records.On("Upsert", mock.Anything).Once()
				d.inventory.
					On("ApplyUsage", []model.PartUsage{{Name: "Toner MP 3352", Qty: 2}}).
					Return([]*model.InventoryItem{{ID: "itm-1", Qty: 3}}).
					Once()
			},
			assert: func(t *testing.T, res *model.RepairRecord, err error, d recordDeps) {
				require.NoError(t, err)
			},
		},
		{
			name: "tracking with a next visit date keeps completedDate empty",
			record: &model.RepairRecord{
				CustomerID:    "cus-1",
				Status:        model.StatusTracking,
				ServiceSource: model.SourceInvoiceCheck,
				NextVisitDate: "2025-11-17",
			},
			setup: func(d recordDeps) {
				d.records.On("Upsert", mock.Anything).Once()
			},
			assert: func(t *testing.T, res *model.RepairRecord, err error, d recordDeps) {
				require.NoError(t, err)
				assert.Empty(t, res.CompletedDate)
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			d := newRecordDeps(t)
			if tt.setup != nil {
				tt.setup(d)
			}

			res, err := newRecordSvc(d).Save(context.Background(), tt.record)
			tt.assert(t, res, err, d)
		})
	}
}

func TestServiceSaveUploadsInlinePhotos(t *testing.T) {
	t.Parallel()

	inline := "data:image/jpeg;base64," +
		base64.StdEncoding.EncodeToString([]byte("jpeg-bytes"))

	type testCase struct {
		name   string
		photos []string
		setup  func(d recordDeps)
		assert func(t *testing.T, res *model.RepairRecord, err error)
	}

	tests := []testCase{
		{
			name:   "inline payload is uploaded and replaced by its url",
			photos: []string{inline, "https://example.invalid/kept.jpg"},
			setup: func(d recordDeps) {
				d.photos.
					On("Save", mock.Anything, mock.MatchedBy(func(path string) bool {
						return len(path) > 0
					}), []byte("jpeg-bytes")).
					Return("https://example.invalid/uploaded.jpg", nil).
					Once()
			},
			assert: func(t *testing.T, res *model.RepairRecord, err error) {
				require.NoError(t, err)
				assert.Equal(t, []string{
					"https://example.invalid/uploaded.jpg",
					"https://example.invalid/kept.jpg",
				}, res.PhotosBefore)
			},
		},
		{
			name:   "upload failure drops the photo instead of failing the save",
			photos: []string{inline},
			setup: func(d recordDeps) {
				d.photos.
					On("Save", mock.Anything, mock.Anything, mock.Anything).
					Return("", errors.New("bucket unavailable")).
					Once()
			},
			assert: func(t *testing.T, res *model.RepairRecord, err error) {
				require.NoError(t, err)
				assert.Empty(t, res.PhotosBefore)
			},
		},
		{
			name:   "undecodable payload is dropped without an upload",
			photos: []string{"data:image/jpeg;rawgarbage"},
			assert: func(t *testing.T, res *model.RepairRecord, err error) {
				require.NoError(t, err)
				assert.Empty(t, res.PhotosBefore)
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			d := newRecordDeps(t)
			d.records.On("Upsert", mock.Anything).Once()
			if tt.setup != nil {
				tt.setup(d)
			}

			res, err := newRecordSvc(d).Save(context.Background(), &model.RepairRecord{
				CustomerID:    "cus-1",
				Status:        model.StatusCompleted,
				ServiceSource: model.SourceCustomerCall,
				PhotosBefore:  tt.photos,
			})
			tt.assert(t, res, err)
		})
	}
}

func TestServiceListJoinsCustomerNames(t *testing.T) {
	t.Parallel()

	d := newRecordDeps(t)

	d.records.On("All").Return([]*model.RepairRecord{
		{ID: "rec-1", CustomerID: "cus-1"},
		{ID: "rec-2", CustomerID: "cus-gone"},
	}).Once()
	d.customers.On("ByID", "cus-1").
		Return(&model.Customer{ID: "cus-1", Name: "Harbor Trading Co."}, true).
		Once()
	d.customers.On("ByID", "cus-gone").Return(nil, false).Once()

	views := newRecordSvc(d).List(context.Background())
	require.Len(t, views, 2)
	assert.Equal(t, "Harbor Trading Co.", views[0].CustomerName)
	assert.Equal(t, model.UnknownCustomerLabel, views[1].CustomerName)
}

func TestServiceDailySummary(t *testing.T) {
	t.Parallel()

	d := newRecordDeps(t)

	d.records.On("All").Return([]*model.RepairRecord{
		{ID: "rec-1", CustomerID: "cus-1", Date: "2025-11-10", Status: model.StatusCompleted},
		{ID: "rec-2", CustomerID: "cus-1", Date: "2025-11-10", Status: model.StatusTracking},
		{ID: "rec-3", CustomerID: "cus-1", Date: "2025-11-09", Status: model.StatusCompleted},
	}).Once()
	d.customers.On("ByID", "cus-1").
		Return(&model.Customer{ID: "cus-1", Name: "Harbor Trading Co."}, true).
		Twice()

	sum, err := newRecordSvc(d).DailySummary(context.Background(), "2025-11-10")
	require.NoError(t, err)
	assert.Equal(t, 2, sum.Total)
	assert.Equal(t, 1, sum.Completed)
	assert.Equal(t, 1, sum.FollowUps)
	assert.Len(t, sum.Records, 2)
}

func TestServiceDelete(t *testing.T) {
	t.Parallel()

	d := newRecordDeps(t)
	svc := newRecordSvc(d)

	d.records.On("ByID", "missing").Return(nil, false).Once()
	err := svc.Delete(context.Background(), "missing")
	assert.ErrorIs(t, err, model.ErrRecordNotFound)

	d.records.On("ByID", "rec-1").
		Return(&model.RepairRecord{ID: "rec-1"}, true).
		Once()
	d.records.On("Delete", "rec-1").Once()
	require.NoError(t, svc.Delete(context.Background(), "rec-1"))
}
