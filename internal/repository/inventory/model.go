package repository

// ItemEntity is the stored shape of an inventory item. Field names
// mirror the documents written by older clients; categoryType is the
// legacy classification tag that predates categoryId.
type ItemEntity struct {
	ID         string `bson:"_id"`
	Name       string `bson:"name"`
	Model      string `bson:"model,omitempty"`
	Qty        int64  `bson:"qty"`
	Max        int64  `bson:"max,omitempty"`
	Unit       string `bson:"unit,omitempty"`
	CategoryID string `bson:"categoryId,omitempty"`
	LegacyTag  string `bson:"categoryType,omitempty"`
}
