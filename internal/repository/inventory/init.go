package repository

import (
	"github.com/google/uuid"

	"github.com/Ckopin0130/PrintManage-sub000/internal/model"
)

// seedDefault is one row of the baked-in parts catalog. Ids are fixed
// literals so that racing seed attempts write the same documents; an
// entry without an id gets a random one at seed time.
type seedDefault struct {
	ID    string
	Name  string
	Model string
	Qty   int64
	Max   int64
	Unit  string
}

var defaultCatalog = []seedDefault{
	{ID: "itm-0001", Name: "Black Toner MP C3003", Model: "MP C3003/C3503", Qty: 4, Max: 6, Unit: "pcs"},
	{ID: "itm-0002", Name: "Cyan Toner MP C3003", Model: "MP C3003/C3503", Qty: 3, Max: 4, Unit: "pcs"},
	{ID: "itm-0003", Name: "Magenta Toner MP C3003", Model: "MP C3003/C3503", Qty: 3, Max: 4, Unit: "pcs"},
	{ID: "itm-0004", Name: "Yellow Toner MP C3003", Model: "MP C3003/C3503", Qty: 3, Max: 4, Unit: "pcs"},
	{ID: "itm-0005", Name: "Drum Unit MP 3352", Model: "MP 3352", Qty: 2, Max: 3, Unit: "pcs"},
	{ID: "itm-0006", Name: "Toner MP 3352", Model: "MP 3352", Qty: 5, Max: 8, Unit: "pcs"},
	{ID: "itm-0007", Name: "Fuser Cleaning Web", Model: "common consumable", Qty: 6, Max: 10, Unit: "pcs"},
	{ID: "itm-0008", Name: "Paper Feed Roller", Model: "common consumable", Qty: 8, Max: 12, Unit: "pcs"},
	{ID: "itm-0009", Name: "Staple Cartridge", Model: "common consumable", Qty: 10, Max: 15, Unit: "box"},
	{ID: "itm-0010", Name: "Black Toner IM C2000", Model: "IM C2000/C2500", Qty: 2, Max: 4, Unit: "pcs"},
}

// DefaultItems returns a fresh copy of the baked-in catalog, classified
// the same way stored documents are on read.
func DefaultItems() []*model.InventoryItem {
	out := make([]*model.InventoryItem, 0, len(defaultCatalog))
	for _, d := range defaultCatalog {
		id := d.ID
		if id == "" {
			id = uuid.NewString()
		}
		ent := ItemEntity{
			ID:    id,
			Name:  d.Name,
			Model: d.Model,
			Qty:   d.Qty,
			Max:   d.Max,
			Unit:  d.Unit,
		}
		out = append(out, EntityToModel(&ent))
	}
	return out
}
