package model

// Customer is one serviced site in the roster. The json tags match the
// camelCase document keys so archives round-trip the stored shape.
type Customer struct {
	// Globally unique identifier, assigned at creation, never reused.
	ID string `json:"id"`
	// Display name of the customer/site.
	Name string `json:"name"`
	// Top-level grouping, one of a small extensible set of areas.
	Region string `json:"region"`
	// Free-text sub-grouping within the region.
	District string `json:"district,omitempty"`
	// Street address.
	Address string `json:"address,omitempty"`
	// Optional hazard or special-instruction flag shown next to the address.
	AddressNote string `json:"addressNote,omitempty"`
	// On-site contact person.
	ContactPerson string `json:"contactPerson,omitempty"`
	// Ordered phone list; the first entry is the primary number.
	// Never nil, may be empty.
	Phones []Phone `json:"phones"`
	// Registered machines; the first entry is the primary machine.
	// Never nil, may be empty.
	Assets []Asset `json:"assets"`
	// Free-form notes.
	Notes string `json:"notes,omitempty"`
	// Classification of the customer. Derived from Region by the
	// classifier when the stored document predates this field.
	CategoryID CustomerCategory `json:"categoryId"`
}

type Phone struct {
	Label  string `json:"label,omitempty"`
	Number string `json:"number"`
}

type Asset struct {
	Model string `json:"model"`
}

// PrimaryAsset returns the model of the first registered machine, or ""
// when the customer has none.
func (c *Customer) PrimaryAsset() string {
	if c == nil || len(c.Assets) == 0 {
		return ""
	}
	return c.Assets[0].Model
}

type CustomerCategory string

const (
	CustomerCategoryRegionA  CustomerCategory = "region_a"
	CustomerCategoryRegionB  CustomerCategory = "region_b"
	CustomerCategorySchool   CustomerCategory = "school"
	CustomerCategoryMilitary CustomerCategory = "military"
	CustomerCategoryOther    CustomerCategory = "other"
)
