package repository

import "github.com/Ckopin0130/PrintManage-sub000/internal/model"

// DefaultRecords is the display-only work log shown when the remote
// collection is empty on first snapshot. Never written back. It
// deliberately keeps one entry in the legacy shape so the coalescing
// read path is exercised on a fresh install too.
func DefaultRecords() []*model.RepairRecord {
	ents := []RecordEntity{
		{
			ID:            "rec-demo-001",
			CustomerID:    "cus-demo-001",
			Date:          "2025-11-03",
			Status:        "completed",
			Symptom:       "paper jam at duplex unit",
			Action:        "removed torn sheet, cleaned feed rollers",
			ServiceSource: string(model.SourceCustomerCall),
			Parts:         []PartEntity{{Name: "Paper Feed Roller", Qty: 1}},
			CompletedDate: "2025-11-03",
		},
		{
			ID:            "rec-demo-002",
			CustomerID:    "cus-demo-002",
			Date:          "2025-11-05",
			Status:        legacyStatusPending,
			Fault:         "SC542 fuser thermistor error",
			Solution:      "reset error code, ordered replacement thermistor",
			ServiceSource: string(model.SourceCompanyDispatch),
			ErrorCode:     "SC542",
			PhotoBefore:   "https://example.invalid/photos/rec-demo-002_before.jpg",
			NextVisitDate: "2025-11-12",
		},
	}

	out := make([]*model.RepairRecord, 0, len(ents))
	for i := range ents {
		out = append(out, EntityToModel(&ents[i]))
	}
	return out
}
