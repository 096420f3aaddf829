// Package service implements whole-dataset export and import. Export
// serializes the three in-memory collections; import replaces them
// wholesale, locally only — nothing is written to the remote store
// until individual entities are edited again.
package service

import (
	"context"
	"errors"

	"github.com/Ckopin0130/PrintManage-sub000/internal/model"
	"github.com/Ckopin0130/PrintManage-sub000/pkg/logger"
)

type CustomerStore interface {
	All() []*model.Customer
	ReplaceAll(customers []*model.Customer)
}

type RecordStore interface {
	All() []*model.RepairRecord
	ReplaceAll(records []*model.RepairRecord)
}

type InventoryStore interface {
	All() []*model.InventoryItem
	ReplaceAll(items []*model.InventoryItem)
}

type service struct {
	customers CustomerStore
	records   RecordStore
	inventory InventoryStore
}

func NewTransferService(customers CustomerStore, records RecordStore, inventory InventoryStore) *service {
	return &service{customers: customers, records: records, inventory: inventory}
}

func (s *service) Export(_ context.Context) *model.Archive {
	return &model.Archive{
		Customers: s.customers.All(),
		Inventory: s.inventory.All(),
		Records:   s.records.All(),
	}
}

func (s *service) Import(ctx context.Context, a *model.Archive) error {
	if a == nil {
		logger.Error(ctx, "validation: nil archive")
		return errors.Join(model.ErrValidation, errors.New("archive must be non-nil"))
	}

	s.customers.ReplaceAll(a.Customers)
	s.inventory.ReplaceAll(a.Inventory)
	s.records.ReplaceAll(a.Records)

	logger.Info(ctx, "archive imported",
		logger.Int("customers", len(a.Customers)),
		logger.Int("inventory", len(a.Inventory)),
		logger.Int("records", len(a.Records)),
	)
	return nil
}
