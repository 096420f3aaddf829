package classify

import (
	"strings"

	"github.com/Ckopin0130/PrintManage-sub000/internal/model"
)

// Legacy tag values written by old clients map straight to a category.
var legacyTags = map[string]model.ItemCategory{
	"toner":  model.ItemCategoryToner,
	"color":  model.ItemCategoryColor,
	"mono":   model.ItemCategoryMono,
	"common": model.ItemCategoryCommon,
}

type itemRule struct {
	keywords []string
	category model.ItemCategory
}

// Ordered: first matching rule wins. Matching is case-insensitive
// containment against the item's model string.
var itemRules = []itemRule{
	{keywords: []string{"toner", "ink", "developer", "cartridge"}, category: model.ItemCategoryToner},
	{keywords: []string{"mp c", "im c", "sp c", "color"}, category: model.ItemCategoryColor},
	{keywords: []string{"mp", "im", "sp", "mono"}, category: model.ItemCategoryMono},
	{keywords: []string{"common", "shared", "universal", "consumable"}, category: model.ItemCategoryCommon},
}

// ItemCategory classifies an inventory item. Priority: explicitly stored
// category, then the legacy tag, then keyword heuristics over the model
// string, then other.
func ItemCategory(categoryID model.ItemCategory, legacyTag, machineModel string) model.ItemCategory {
	if categoryID != "" {
		return categoryID
	}

	if cat, ok := legacyTags[strings.ToLower(strings.TrimSpace(legacyTag))]; ok {
		return cat
	}

	lower := strings.ToLower(machineModel)
	for _, r := range itemRules {
		for _, kw := range r.keywords {
			if strings.Contains(lower, kw) {
				return r.category
			}
		}
	}
	return model.ItemCategoryOther
}
