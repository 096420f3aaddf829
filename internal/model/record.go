package model

type RecordStatus string

const (
	StatusCompleted RecordStatus = "completed"
	StatusTracking  RecordStatus = "tracking"
	StatusMonitor   RecordStatus = "monitor"
)

func (s RecordStatus) Valid() bool {
	switch s {
	case StatusCompleted, StatusTracking, StatusMonitor:
		return true
	}
	return false
}

// NeedsFollowUp reports whether the status requires a next-visit date.
func (s RecordStatus) NeedsFollowUp() bool {
	return s == StatusTracking || s == StatusMonitor
}

type ServiceSource string

const (
	SourceCustomerCall    ServiceSource = "customer_call"
	SourceCompanyDispatch ServiceSource = "company_dispatch"
	SourceInvoiceCheck    ServiceSource = "invoice_check"
)

func (s ServiceSource) Valid() bool {
	switch s {
	case SourceCustomerCall, SourceCompanyDispatch, SourceInvoiceCheck:
		return true
	}
	return false
}

// PartUsage is one consumed-part line on a repair record. Entries with
// the same name are applied independently in list order, they are not
// merged before the inventory decrement.
type PartUsage struct {
	Name string `json:"name"`
	Qty  int64  `json:"qty"`
}

// RepairRecord is the canonical in-memory shape of a repair log entry.
// Legacy dual-named fields (fault/symptom, solution/action, single photo
// vs photo array) are coalesced at the repository boundary; the rest of
// the system only ever sees this shape.
type RepairRecord struct {
	ID string `json:"id"`
	// Foreign key into the customer roster. Orphans are tolerated and
	// rendered with UnknownCustomerLabel.
	CustomerID string `json:"customerId"`
	// Creation date, ISO-style string.
	Date          string        `json:"date"`
	Status        RecordStatus  `json:"status"`
	Symptom       string        `json:"symptom,omitempty"`
	Action        string        `json:"action,omitempty"`
	ServiceSource ServiceSource `json:"serviceSource"`
	ErrorCode     string        `json:"errorCode,omitempty"`
	Parts         []PartUsage   `json:"parts"`
	// Photo URLs; raw base64 payloads are uploaded to blob storage and
	// replaced with URLs before the record is persisted.
	PhotosBefore  []string `json:"photosBefore"`
	PhotosAfter   []string `json:"photosAfter"`
	CompletedDate string   `json:"completedDate,omitempty"`
	// Required when Status needs a follow-up visit.
	NextVisitDate string `json:"nextVisitDate,omitempty"`
}

// UnknownCustomerLabel is the sentinel shown for records whose customer
// no longer exists.
const UnknownCustomerLabel = "unknown customer"

// RecordView is a record joined with its customer's display name for
// list rendering.
type RecordView struct {
	Record       *RepairRecord
	CustomerName string
}

// DailySummary is the raw data behind a daily work-log report.
type DailySummary struct {
	Date      string
	Total     int
	Completed int
	FollowUps int
	Records   []RecordView
}
