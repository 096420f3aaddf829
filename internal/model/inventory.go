package model

// InventoryItem is one stocked part or consumable.
type InventoryItem struct {
	ID   string `json:"id"`
	Name string `json:"name"`
	// Free-text grouping key: a machine family or a common-consumable
	// group. Renaming a group rewrites this field on every member.
	Model string `json:"model,omitempty"`
	// Current stock. Clamped to [0, inf); decrements beyond available
	// stock floor at zero.
	Qty int64 `json:"qty"`
	// Target restock level.
	Max  int64  `json:"max,omitempty"`
	Unit string `json:"unit,omitempty"`
	// Classification of the item. Derived from Model and the legacy
	// category tag when the stored document predates this field.
	CategoryID ItemCategory `json:"categoryId"`
	// Legacy free-form category tag kept for classification of old
	// documents.
	LegacyTag string `json:"categoryType,omitempty"`
}

// BelowMax reports whether the item is under its target restock level.
func (i *InventoryItem) BelowMax() bool {
	return i.Qty < i.Max
}

type ItemCategory string

const (
	ItemCategoryToner  ItemCategory = "toner"
	ItemCategoryColor  ItemCategory = "color"
	ItemCategoryMono   ItemCategory = "mono"
	ItemCategoryCommon ItemCategory = "common"
	ItemCategoryOther  ItemCategory = "other"
)
