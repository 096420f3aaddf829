// Package classify holds the pure classification rules that derive
// missing fields from legacy document shapes at read time. Nothing in
// this package mutates storage; derived values are only persisted when
// the user explicitly edits the entity.
package classify

import (
	"strings"

	"github.com/Ckopin0130/PrintManage-sub000/internal/model"
)

type customerRule struct {
	match    func(region string) bool
	category model.CustomerCategory
}

// Ordered: first matching rule wins.
var customerRules = []customerRule{
	{match: equalsFold("Region A"), category: model.CustomerCategoryRegionA},
	{match: equalsFold("Region B"), category: model.CustomerCategoryRegionB},
	{match: containsFold("school"), category: model.CustomerCategorySchool},
	{match: containsFold("military"), category: model.CustomerCategoryMilitary},
}

// CustomerCategory returns the canonical category for a customer. An
// explicitly stored category always wins; otherwise the category is
// inferred from the region name. Pure and deterministic, recomputed on
// every read.
func CustomerCategory(categoryID model.CustomerCategory, region string) model.CustomerCategory {
	if categoryID != "" {
		return categoryID
	}

	region = strings.TrimSpace(region)
	for _, r := range customerRules {
		if r.match(region) {
			return r.category
		}
	}
	return model.CustomerCategoryOther
}

func equalsFold(want string) func(string) bool {
	return func(s string) bool { return strings.EqualFold(s, want) }
}

func containsFold(keyword string) func(string) bool {
	return func(s string) bool {
		return strings.Contains(strings.ToLower(s), keyword)
	}
}
