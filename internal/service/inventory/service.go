package service

import (
	"context"
	"errors"
	"strings"

	"github.com/google/uuid"

	"github.com/Ckopin0130/PrintManage-sub000/internal/classify"
	"github.com/Ckopin0130/PrintManage-sub000/internal/model"
	"github.com/Ckopin0130/PrintManage-sub000/pkg/logger"
)

type InventoryRepository interface {
	All() []*model.InventoryItem
	ByID(id string) (*model.InventoryItem, bool)
	Upsert(item *model.InventoryItem)
	Delete(id string)
	RenameModelGroup(oldName, newName string) int
}

type service struct {
	repo InventoryRepository
}

func NewInventoryService(repo InventoryRepository) *service {
	return &service{repo: repo}
}

func (s *service) List(_ context.Context) []*model.InventoryItem {
	return s.repo.All()
}

func (s *service) ByID(ctx context.Context, id string) (*model.InventoryItem, error) {
	const op = "inventory.service.ByID"

	item, ok := s.repo.ByID(strings.TrimSpace(id))
	if !ok {
		logger.Error(ctx, "item lookup", logger.String("item_id", id))
		return nil, errors.Join(model.ErrItemNotFound, errors.New(op))
	}
	return item, nil
}

// Save validates and upserts an item. Negative quantities are clamped
// to zero rather than rejected; the category is recomputed so an
// explicit edit persists the derived value.
func (s *service) Save(ctx context.Context, item *model.InventoryItem) (*model.InventoryItem, error) {
	log := logger.With(
		logger.String("item_id", item.ID),
	)

	item.Name = strings.TrimSpace(item.Name)
	if item.Name == "" {
		log.Error(ctx, "validation: empty name")
		return nil, errors.Join(model.ErrValidation, errors.New("name must be non-empty"))
	}

	if item.ID == "" {
		item.ID = uuid.NewString()
	}
	if item.Qty < 0 {
		item.Qty = 0
	}
	if item.Max < 0 {
		item.Max = 0
	}
	item.CategoryID = classify.ItemCategory(item.CategoryID, item.LegacyTag, item.Model)

	s.repo.Upsert(item)
	return item, nil
}

func (s *service) Delete(ctx context.Context, id string) error {
	const op = "inventory.service.Delete"

	if _, ok := s.repo.ByID(id); !ok {
		logger.Error(ctx, "delete: item lookup", logger.String("item_id", id))
		return errors.Join(model.ErrItemNotFound, errors.New(op))
	}
	s.repo.Delete(id)
	return nil
}

// RenameGroup rewrites the model grouping key across every member
// item. Returns how many items were touched; renaming a group nobody
// uses is a no-op, not an error.
func (s *service) RenameGroup(ctx context.Context, oldName, newName string) (int, error) {
	log := logger.With(
		logger.String("old_name", oldName),
		logger.String("new_name", newName),
	)

	oldName = strings.TrimSpace(oldName)
	newName = strings.TrimSpace(newName)
	if oldName == "" || newName == "" {
		log.Error(ctx, "validation: empty group name")
		return 0, errors.Join(model.ErrValidation, errors.New("group names must be non-empty"))
	}
	if oldName == newName {
		return 0, nil
	}

	n := s.repo.RenameModelGroup(oldName, newName)
	log.Info(ctx, "group renamed", logger.Int("items", n))
	return n, nil
}

// LowStock lists items under their target restock level.
func (s *service) LowStock(_ context.Context) []*model.InventoryItem {
	out := make([]*model.InventoryItem, 0)
	for _, item := range s.repo.All() {
		if item.BelowMax() {
			out = append(out, item)
		}
	}
	return out
}

// SuggestForModel lists items compatible with a customer's machine:
// members of a matching model group plus the common consumables.
func (s *service) SuggestForModel(ctx context.Context, machineModel string) ([]*model.InventoryItem, error) {
	machineModel = strings.TrimSpace(machineModel)
	if machineModel == "" {
		logger.Error(ctx, "validation: empty machine model")
		return nil, errors.Join(model.ErrValidation, errors.New("model must be non-empty"))
	}

	out := make([]*model.InventoryItem, 0)
	for _, item := range s.repo.All() {
		if item.CategoryID == model.ItemCategoryCommon || classify.IsModelMatch(item.Model, machineModel) {
			out = append(out, item)
		}
	}
	return out, nil
}
