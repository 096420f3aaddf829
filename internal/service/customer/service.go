package service

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/google/uuid"

	"github.com/Ckopin0130/PrintManage-sub000/internal/classify"
	"github.com/Ckopin0130/PrintManage-sub000/internal/model"
	"github.com/Ckopin0130/PrintManage-sub000/pkg/logger"
)

type CustomerRepository interface {
	All() []*model.Customer
	ByID(id string) (*model.Customer, bool)
	Upsert(c *model.Customer)
	Delete(id string)
}

type RecordRepository interface {
	All() []*model.RepairRecord
	Delete(id string)
}

type service struct {
	customers CustomerRepository
	records   RecordRepository
}

func NewCustomerService(customers CustomerRepository, records RecordRepository) *service {
	return &service{customers: customers, records: records}
}

func (s *service) List(_ context.Context) []*model.Customer {
	return s.customers.All()
}

func (s *service) ByID(ctx context.Context, id string) (*model.Customer, error) {
	const op = "customer.service.ByID"

	c, ok := s.customers.ByID(strings.TrimSpace(id))
	if !ok {
		logger.Error(ctx, "customer lookup", logger.String("customer_id", id))
		return nil, fmt.Errorf("%s: %w", op, model.ErrCustomerNotFound)
	}
	return c, nil
}

// Save validates and upserts a customer. An empty id means creation and
// gets a fresh one assigned. The category is recomputed so that an
// explicit edit persists what the classifier had been deriving.
func (s *service) Save(ctx context.Context, c *model.Customer) (*model.Customer, error) {
	const op = "customer.service.Save"
	log := logger.With(
		logger.String("customer_id", c.ID),
	)

	c.Name = strings.TrimSpace(c.Name)
	c.Region = strings.TrimSpace(c.Region)
	if c.Name == "" {
		log.Error(ctx, "validation: empty name")
		return nil, errors.Join(model.ErrValidation, errors.New("name must be non-empty"))
	}
	if c.Region == "" {
		log.Error(ctx, "validation: empty region")
		return nil, errors.Join(model.ErrValidation, errors.New("region must be non-empty"))
	}

	if c.ID == "" {
		c.ID = uuid.NewString()
	}
	if c.Phones == nil {
		c.Phones = make([]model.Phone, 0)
	}
	if c.Assets == nil {
		c.Assets = make([]model.Asset, 0)
	}
	c.CategoryID = classify.CustomerCategory(c.CategoryID, c.Region)

	s.customers.Upsert(c)
	return c, nil
}

func (s *service) Delete(ctx context.Context, id string) error {
	const op = "customer.service.Delete"

	if _, ok := s.customers.ByID(id); !ok {
		logger.Error(ctx, "delete: customer lookup", logger.String("customer_id", id))
		return fmt.Errorf("%s: %w", op, model.ErrCustomerNotFound)
	}
	s.customers.Delete(id)
	return nil
}

// DeleteRegion removes every customer of a region together with their
// repair records. Destructive enough that the caller has to type the
// region name back as confirmation.
func (s *service) DeleteRegion(ctx context.Context, region, confirmation string) (customersRemoved, recordsRemoved int, err error) {
	const op = "customer.service.DeleteRegion"
	log := logger.With(
		logger.String("region", region),
	)

	region = strings.TrimSpace(region)
	if region == "" {
		log.Error(ctx, "validation: empty region")
		return 0, 0, errors.Join(model.ErrValidation, errors.New("region must be non-empty"))
	}
	if confirmation != region {
		log.Error(ctx, "confirmation mismatch")
		return 0, 0, fmt.Errorf("%s: %w", op, model.ErrConfirmationMismatch)
	}

	doomed := make(map[string]struct{})
	for _, c := range s.customers.All() {
		if c.Region == region {
			doomed[c.ID] = struct{}{}
		}
	}

	for _, rec := range s.records.All() {
		if _, ok := doomed[rec.CustomerID]; ok {
			s.records.Delete(rec.ID)
			recordsRemoved++
		}
	}
	for id := range doomed {
		s.customers.Delete(id)
	}

	log.Info(ctx, "region removed",
		logger.Int("customers", len(doomed)),
		logger.Int("records", recordsRemoved),
	)
	return len(doomed), recordsRemoved, nil
}
