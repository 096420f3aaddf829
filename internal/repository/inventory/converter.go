package repository

import (
	"github.com/Ckopin0130/PrintManage-sub000/internal/classify"
	"github.com/Ckopin0130/PrintManage-sub000/internal/model"
)

// EntityToModel produces the canonical in-memory shape. The category is
// derived from legacy fields on every read when the stored document has
// none; storage is not touched until the user edits the item.
func EntityToModel(e *ItemEntity) *model.InventoryItem {
	if e == nil {
		return nil
	}

	qty := e.Qty
	if qty < 0 {
		qty = 0
	}

	return &model.InventoryItem{
		ID:         e.ID,
		Name:       e.Name,
		Model:      e.Model,
		Qty:        qty,
		Max:        e.Max,
		Unit:       e.Unit,
		CategoryID: classify.ItemCategory(model.ItemCategory(e.CategoryID), e.LegacyTag, e.Model),
		LegacyTag:  e.LegacyTag,
	}
}

func EntityFromModel(i *model.InventoryItem) ItemEntity {
	return ItemEntity{
		ID:         i.ID,
		Name:       i.Name,
		Model:      i.Model,
		Qty:        i.Qty,
		Max:        i.Max,
		Unit:       i.Unit,
		CategoryID: string(i.CategoryID),
		LegacyTag:  i.LegacyTag,
	}
}
