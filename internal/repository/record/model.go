package repository

// RecordEntity is the stored shape of a repair record. It carries both
// historical namings for the same concepts: fault/symptom,
// solution/action, and the single-photo fields that predate the photo
// arrays. The converter coalesces them on read; new writes keep the
// single-photo mirror filled for old clients.
type RecordEntity struct {
	ID            string       `bson:"_id"`
	CustomerID    string       `bson:"customerId"`
	Date          string       `bson:"date,omitempty"`
	Status        string       `bson:"status,omitempty"`
	Symptom       string       `bson:"symptom,omitempty"`
	Fault         string       `bson:"fault,omitempty"`
	Action        string       `bson:"action,omitempty"`
	Solution      string       `bson:"solution,omitempty"`
	ServiceSource string       `bson:"serviceSource,omitempty"`
	ErrorCode     string       `bson:"errorCode,omitempty"`
	Parts         []PartEntity `bson:"parts,omitempty"`
	PhotoBefore   string       `bson:"photoBefore,omitempty"`
	PhotosBefore  []string     `bson:"photosBefore,omitempty"`
	PhotoAfter    string       `bson:"photoAfter,omitempty"`
	PhotosAfter   []string     `bson:"photosAfter,omitempty"`
	CompletedDate string       `bson:"completedDate,omitempty"`
	NextVisitDate string       `bson:"nextVisitDate,omitempty"`
}

type PartEntity struct {
	Name string `bson:"name"`
	Qty  int64  `bson:"qty"`
}
