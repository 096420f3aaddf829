package repository

import "github.com/Ckopin0130/PrintManage-sub000/internal/model"

// DefaultCustomers is the display-only roster shown when the remote
// collection is empty on first snapshot. It is never written back.
func DefaultCustomers() []*model.Customer {
	ents := []CustomerEntity{
		{
			ID:            "cus-demo-001",
			Name:          "Lakeside Elementary School",
			Region:        "Region A",
			District:      "North",
			Address:       "12 Lakeside Rd",
			ContactPerson: "Office Admin",
			Phones:        []PhoneEntity{{Label: "office", Number: "04-2233-1100"}},
			Assets:        []AssetEntity{{Model: "MP C3003"}},
		},
		{
			ID:            "cus-demo-002",
			Name:          "Harbor Trading Co.",
			Region:        "Region B",
			District:      "Pier 3",
			Address:       "88 Harbor Ave",
			AddressNote:   "loading dock entrance, watch forklifts",
			ContactPerson: "Ms. Lin",
			Phones: []PhoneEntity{
				{Label: "front desk", Number: "07-5566-7788"},
				{Label: "mobile", Number: "0912-345-678"},
			},
			Assets: []AssetEntity{{Model: "MP 3352"}, {Model: "IM C2000"}},
		},
	}

	out := make([]*model.Customer, 0, len(ents))
	for i := range ents {
		out = append(out, EntityToModel(&ents[i]))
	}
	return out
}
