package repository

import (
	"github.com/Ckopin0130/PrintManage-sub000/internal/classify"
	"github.com/Ckopin0130/PrintManage-sub000/internal/model"
)

// EntityToModel normalizes a stored document into the canonical shape:
// phones/assets are never nil and the category is derived from the
// region when the document predates classification.
func EntityToModel(e *CustomerEntity) *model.Customer {
	if e == nil {
		return nil
	}

	phones := make([]model.Phone, 0, len(e.Phones))
	for _, p := range e.Phones {
		phones = append(phones, model.Phone{Label: p.Label, Number: p.Number})
	}

	assets := make([]model.Asset, 0, len(e.Assets))
	for _, a := range e.Assets {
		assets = append(assets, model.Asset{Model: a.Model})
	}

	return &model.Customer{
		ID:            e.ID,
		Name:          e.Name,
		Region:        e.Region,
		District:      e.District,
		Address:       e.Address,
		AddressNote:   e.AddressNote,
		ContactPerson: e.ContactPerson,
		Phones:        phones,
		Assets:        assets,
		Notes:         e.Notes,
		CategoryID:    classify.CustomerCategory(model.CustomerCategory(e.CategoryID), e.Region),
	}
}

func EntityFromModel(c *model.Customer) CustomerEntity {
	phones := make([]PhoneEntity, 0, len(c.Phones))
	for _, p := range c.Phones {
		phones = append(phones, PhoneEntity{Label: p.Label, Number: p.Number})
	}

	assets := make([]AssetEntity, 0, len(c.Assets))
	for _, a := range c.Assets {
		assets = append(assets, AssetEntity{Model: a.Model})
	}

	return CustomerEntity{
		ID:            c.ID,
		Name:          c.Name,
		Region:        c.Region,
		District:      c.District,
		Address:       c.Address,
		AddressNote:   c.AddressNote,
		ContactPerson: c.ContactPerson,
		Phones:        phones,
		Assets:        assets,
		Notes:         c.Notes,
		CategoryID:    string(c.CategoryID),
	}
}
