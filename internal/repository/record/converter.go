package repository

import (
	"github.com/Ckopin0130/PrintManage-sub000/internal/model"
)

// legacyStatusPending predates the tracking status and reads as it.
const legacyStatusPending = "pending"

// EntityToModel coalesces the historical field shapes into the
// canonical one. All legacy-field knowledge stays here; the rest of the
// system only ever sees the canonical record.
func EntityToModel(e *RecordEntity) *model.RepairRecord {
	if e == nil {
		return nil
	}

	status := model.RecordStatus(e.Status)
	if e.Status == legacyStatusPending {
		status = model.StatusTracking
	}

	parts := make([]model.PartUsage, 0, len(e.Parts))
	for _, p := range e.Parts {
		parts = append(parts, model.PartUsage{Name: p.Name, Qty: p.Qty})
	}

	return &model.RepairRecord{
		ID:            e.ID,
		CustomerID:    e.CustomerID,
		Date:          e.Date,
		Status:        status,
		Symptom:       coalesce(e.Symptom, e.Fault),
		Action:        coalesce(e.Action, e.Solution),
		ServiceSource: model.ServiceSource(e.ServiceSource),
		ErrorCode:     e.ErrorCode,
		Parts:         parts,
		PhotosBefore:  coalescePhotos(e.PhotosBefore, e.PhotoBefore),
		PhotosAfter:   coalescePhotos(e.PhotosAfter, e.PhotoAfter),
		CompletedDate: e.CompletedDate,
		NextVisitDate: e.NextVisitDate,
	}
}

// EntityFromModel writes the canonical fields and mirrors the first
// photo of each array into the legacy single-photo field so that old
// clients keep rendering something.
func EntityFromModel(r *model.RepairRecord) RecordEntity {
	parts := make([]PartEntity, 0, len(r.Parts))
	for _, p := range r.Parts {
		parts = append(parts, PartEntity{Name: p.Name, Qty: p.Qty})
	}

	return RecordEntity{
		ID:            r.ID,
		CustomerID:    r.CustomerID,
		Date:          r.Date,
		Status:        string(r.Status),
		Symptom:       r.Symptom,
		Action:        r.Action,
		ServiceSource: string(r.ServiceSource),
		ErrorCode:     r.ErrorCode,
		Parts:         parts,
		PhotoBefore:   firstOf(r.PhotosBefore),
		PhotosBefore:  r.PhotosBefore,
		PhotoAfter:    firstOf(r.PhotosAfter),
		PhotosAfter:   r.PhotosAfter,
		CompletedDate: r.CompletedDate,
		NextVisitDate: r.NextVisitDate,
	}
}

func coalesce(canonical, legacy string) string {
	if canonical != "" {
		return canonical
	}
	return legacy
}

// coalescePhotos prefers the array; a lone single-photo field becomes a
// one-element array. Result is never nil.
func coalescePhotos(arr []string, single string) []string {
	if len(arr) > 0 {
		return arr
	}
	if single != "" {
		return []string{single}
	}
	return make([]string, 0)
}

func firstOf(arr []string) string {
	if len(arr) == 0 {
		return ""
	}
	return arr[0]
}
