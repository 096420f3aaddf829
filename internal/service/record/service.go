package service

import (
	"context"
	"encoding/base64"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/samber/lo"

	"github.com/Ckopin0130/PrintManage-sub000/internal/model"
	"github.com/Ckopin0130/PrintManage-sub000/pkg/logger"
)

type RecordRepository interface {
	All() []*model.RepairRecord
	ByID(id string) (*model.RepairRecord, bool)
	Upsert(rec *model.RepairRecord)
	Delete(id string)
}

type CustomerReader interface {
	ByID(id string) (*model.Customer, bool)
}

// InventoryConsumer is the consumption engine: it decrements stock for
// the consumed parts and reports which items changed.
type InventoryConsumer interface {
	ApplyUsage(parts []model.PartUsage) []*model.InventoryItem
}

// PhotoStore persists one photo blob and returns its retrieval URL.
type PhotoStore interface {
	Save(ctx context.Context, path string, data []byte) (string, error)
}

type service struct {
	records   RecordRepository
	customers CustomerReader
	inventory InventoryConsumer
	photos    PhotoStore
	now       func() time.Time
}

func NewRecordService(
	records RecordRepository,
	customers CustomerReader,
	inventory InventoryConsumer,
	photos PhotoStore,
) *service {
	return &service{
		records:   records,
		customers: customers,
		inventory: inventory,
		photos:    photos,
		now:       time.Now,
	}
}

// Save validates a record, uploads any inline photos, commits the
// record, then runs the consumption engine for its parts list. The
// inventory decrement is deliberately permissive: it clamps at zero and
// never blocks the save.
func (s *service) Save(ctx context.Context, rec *model.RepairRecord) (*model.RepairRecord, error) {
	const op = "record.service.Save"
	log := logger.With(
		logger.String("record_id", rec.ID),
		logger.String("customer_id", rec.CustomerID),
	)

	rec.CustomerID = strings.TrimSpace(rec.CustomerID)
	if rec.CustomerID == "" {
		log.Error(ctx, "validation: empty customer id")
		return nil, errors.Join(model.ErrValidation, errors.New("customerId must be non-empty"))
	}
	if !rec.Status.Valid() {
		log.Error(ctx, "validation: bad status", logger.String("status", string(rec.Status)))
		return nil, errors.Join(model.ErrValidation, fmt.Errorf("unknown status %q", rec.Status))
	}
	if !rec.ServiceSource.Valid() {
		log.Error(ctx, "validation: bad service source", logger.String("service_source", string(rec.ServiceSource)))
		return nil, errors.Join(model.ErrValidation, fmt.Errorf("unknown service source %q", rec.ServiceSource))
	}
	if rec.Status.NeedsFollowUp() && strings.TrimSpace(rec.NextVisitDate) == "" {
		log.Error(ctx, "validation: missing next visit date")
		return nil, errors.Join(model.ErrValidation, errors.New("nextVisitDate is required for tracking/monitor records"))
	}

	if rec.ID == "" {
		rec.ID = uuid.NewString()
	}
	if rec.Date == "" {
		rec.Date = s.now().Format("2006-01-02")
	}
	if rec.Status == model.StatusCompleted && rec.CompletedDate == "" {
		rec.CompletedDate = rec.Date
	}
	if rec.Parts == nil {
		rec.Parts = make([]model.PartUsage, 0)
	}

	rec.PhotosBefore = s.uploadInline(ctx, rec.PhotosBefore, "before")
	rec.PhotosAfter = s.uploadInline(ctx, rec.PhotosAfter, "after")

	s.records.Upsert(rec)

	if len(rec.Parts) > 0 {
		changed := s.inventory.ApplyUsage(rec.Parts)
		log.Info(ctx, "stock decremented",
			logger.Int("parts", len(rec.Parts)),
			logger.Int("items_changed", len(changed)),
		)
	}

	return rec, nil
}

const inlinePhotoPrefix = "data:"

// uploadInline replaces inline base64 photo payloads with blob-store
// URLs. Entries that are already URLs pass through; an entry that fails
// to decode or upload is dropped, raw payloads never reach the record
// document.
func (s *service) uploadInline(ctx context.Context, photos []string, phase string) []string {
	if len(photos) == 0 {
		return make([]string, 0)
	}

	out := make([]string, 0, len(photos))
	stamp := s.now().UnixMilli()
	for i, p := range photos {
		if !strings.HasPrefix(p, inlinePhotoPrefix) {
			out = append(out, p)
			continue
		}

		data, err := decodeInlinePhoto(p)
		if err != nil {
			logger.Error(ctx, "photo decode", logger.String("phase", phase), logger.ErrorF(err))
			continue
		}

		path := fmt.Sprintf("repairs/%d_%s_%d.jpg", stamp, phase, i)
		url, err := s.photos.Save(ctx, path, data)
		if err != nil {
			logger.Error(ctx, "photo upload",
				logger.String("phase", phase),
				logger.String("path", path),
				logger.ErrorF(err),
			)
			continue
		}
		out = append(out, url)
	}
	return out
}

func decodeInlinePhoto(p string) ([]byte, error) {
	_, payload, found := strings.Cut(p, ";base64,")
	if !found {
		return nil, errors.New("inline photo is not base64-encoded")
	}
	return base64.StdEncoding.DecodeString(payload)
}

// List returns every record joined with its customer's name. Orphans
// render with the unknown-customer sentinel instead of failing.
func (s *service) List(_ context.Context) []model.RecordView {
	return lo.Map(s.records.All(), func(rec *model.RepairRecord, _ int) model.RecordView {
		return s.view(rec)
	})
}

func (s *service) ByID(ctx context.Context, id string) (model.RecordView, error) {
	const op = "record.service.ByID"

	rec, ok := s.records.ByID(strings.TrimSpace(id))
	if !ok {
		logger.Error(ctx, "record lookup", logger.String("record_id", id))
		return model.RecordView{}, fmt.Errorf("%s: %w", op, model.ErrRecordNotFound)
	}
	return s.view(rec), nil
}

func (s *service) Delete(ctx context.Context, id string) error {
	const op = "record.service.Delete"

	if _, ok := s.records.ByID(id); !ok {
		logger.Error(ctx, "delete: record lookup", logger.String("record_id", id))
		return fmt.Errorf("%s: %w", op, model.ErrRecordNotFound)
	}
	s.records.Delete(id)
	return nil
}

// DailySummary collects the raw data behind a day's work-log report.
func (s *service) DailySummary(ctx context.Context, date string) (*model.DailySummary, error) {
	const op = "record.service.DailySummary"

	date = strings.TrimSpace(date)
	if date == "" {
		logger.Error(ctx, "validation: empty date")
		return nil, errors.Join(model.ErrValidation, errors.New("date must be non-empty"))
	}

	sum := &model.DailySummary{Date: date, Records: make([]model.RecordView, 0)}
	for _, rec := range s.records.All() {
		if rec.Date != date {
			continue
		}
		sum.Total++
		if rec.Status == model.StatusCompleted {
			sum.Completed++
		}
		if rec.Status.NeedsFollowUp() {
			sum.FollowUps++
		}
		sum.Records = append(sum.Records, s.view(rec))
	}
	return sum, nil
}

func (s *service) view(rec *model.RepairRecord) model.RecordView {
	name := model.UnknownCustomerLabel
	if c, ok := s.customers.ByID(rec.CustomerID); ok {
		name = c.Name
	}
	return model.RecordView{Record: rec, CustomerName: name}
}
