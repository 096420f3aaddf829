package repository

// CustomerEntity is the stored shape of a customer document. Field
// names mirror what the web clients have always written; categoryId is
// absent on documents that predate classification.
type CustomerEntity struct {
	ID            string        `bson:"_id"`
	Name          string        `bson:"name"`
	Region        string        `bson:"region,omitempty"`
	District      string        `bson:"district,omitempty"`
	Address       string        `bson:"address,omitempty"`
	AddressNote   string        `bson:"addressNote,omitempty"`
	ContactPerson string        `bson:"contactPerson,omitempty"`
	Phones        []PhoneEntity `bson:"phones,omitempty"`
	Assets        []AssetEntity `bson:"assets,omitempty"`
	Notes         string        `bson:"notes,omitempty"`
	CategoryID    string        `bson:"categoryId,omitempty"`
}

type PhoneEntity struct {
	Label  string `bson:"label,omitempty"`
	Number string `bson:"number"`
}

type AssetEntity struct {
	Model string `bson:"model"`
}
