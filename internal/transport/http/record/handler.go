package handler

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/Ckopin0130/PrintManage-sub000/internal/model"
)

type RecordService interface {
	List(ctx context.Context) []model.RecordView
	ByID(ctx context.Context, id string) (model.RecordView, error)
	Save(ctx context.Context, rec *model.RepairRecord) (*model.RepairRecord, error)
	Delete(ctx context.Context, id string) error
	DailySummary(ctx context.Context, date string) (*model.DailySummary, error)
}

type handler struct {
	svc RecordService
}

func NewRecordHandler(svc RecordService) *handler {
	return &handler{svc: svc}
}

func (h *handler) Register(r chi.Router) {
	r.Route("/records", func(r chi.Router) {
		r.Get("/", h.list)
		r.Post("/", h.save)
		r.Get("/daily/{date}", h.dailySummary)
		r.Get("/{id}", h.byID)
		r.Put("/{id}", h.save)
		r.Delete("/{id}", h.delete)
	})
}

type recordDTO struct {
	ID            string    `json:"id"`
	CustomerID    string    `json:"customerId"`
	CustomerName  string    `json:"customerName,omitempty"`
	Date          string    `json:"date"`
	Status        string    `json:"status"`
	Symptom       string    `json:"symptom,omitempty"`
	Action        string    `json:"action,omitempty"`
	ServiceSource string    `json:"serviceSource"`
	ErrorCode     string    `json:"errorCode,omitempty"`
	Parts         []partDTO `json:"parts"`
	PhotosBefore  []string  `json:"photosBefore"`
	PhotosAfter   []string  `json:"photosAfter"`
	CompletedDate string    `json:"completedDate,omitempty"`
	NextVisitDate string    `json:"nextVisitDate,omitempty"`
}

type partDTO struct {
	Name string `json:"name"`
	Qty  int64  `json:"qty"`
}

type dailySummaryDTO struct {
	Date      string      `json:"date"`
	Total     int         `json:"total"`
	Completed int         `json:"completed"`
	FollowUps int         `json:"followUps"`
	Records   []recordDTO `json:"records"`
}

func (h *handler) list(w http.ResponseWriter, r *http.Request) {
	views := h.svc.List(r.Context())
	out := make([]recordDTO, 0, len(views))
	for _, v := range views {
		out = append(out, toDTO(v))
	}
	respondJSON(w, http.StatusOK, out)
}

func (h *handler) byID(w http.ResponseWriter, r *http.Request) {
	v, err := h.svc.ByID(r.Context(), chi.URLParam(r, "id"))
	if err != nil {
		writeError(w, err)
		return
	}
	respondJSON(w, http.StatusOK, toDTO(v))
}

func (h *handler) save(w http.ResponseWriter, r *http.Request) {
	var dto recordDTO
	if err := json.NewDecoder(r.Body).Decode(&dto); err != nil {
		writeError(w, errors.Join(model.ErrValidation, err))
		return
	}
	if id := chi.URLParam(r, "id"); id != "" {
		dto.ID = id
	}

	saved, err := h.svc.Save(r.Context(), fromDTO(&dto))
	if err != nil {
		writeError(w, err)
		return
	}
	respondJSON(w, http.StatusOK, toDTO(model.RecordView{Record: saved, CustomerName: dto.CustomerName}))
}

func (h *handler) delete(w http.ResponseWriter, r *http.Request) {
	if err := h.svc.Delete(r.Context(), chi.URLParam(r, "id")); err != nil {
		writeError(w, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

func (h *handler) dailySummary(w http.ResponseWriter, r *http.Request) {
	sum, err := h.svc.DailySummary(r.Context(), chi.URLParam(r, "date"))
	if err != nil {
		writeError(w, err)
		return
	}

	records := make([]recordDTO, 0, len(sum.Records))
	for _, v := range sum.Records {
		records = append(records, toDTO(v))
	}
	respondJSON(w, http.StatusOK, dailySummaryDTO{
		Date:      sum.Date,
		Total:     sum.Total,
		Completed: sum.Completed,
		FollowUps: sum.FollowUps,
		Records:   records,
	})
}

func toDTO(v model.RecordView) recordDTO {
	rec := v.Record
	parts := make([]partDTO, 0, len(rec.Parts))
	for _, p := range rec.Parts {
		parts = append(parts, partDTO{Name: p.Name, Qty: p.Qty})
	}
	return recordDTO{
		ID:            rec.ID,
		CustomerID:    rec.CustomerID,
		CustomerName:  v.CustomerName,
		Date:          rec.Date,
		Status:        string(rec.Status),
		Symptom:       rec.Symptom,
		Action:        rec.Action,
		ServiceSource: string(rec.ServiceSource),
		ErrorCode:     rec.ErrorCode,
		Parts:         parts,
		PhotosBefore:  rec.PhotosBefore,
		PhotosAfter:   rec.PhotosAfter,
		CompletedDate: rec.CompletedDate,
		NextVisitDate: rec.NextVisitDate,
	}
}

func fromDTO(dto *recordDTO) *model.RepairRecord {
	parts := make([]model.PartUsage, 0, len(dto.Parts))
	for _, p := range dto.Parts {
		parts = append(parts, model.PartUsage{Name: p.Name, Qty: p.Qty})
	}
	return &model.RepairRecord{
		ID:            dto.ID,
		CustomerID:    dto.CustomerID,
		Date:          dto.Date,
		Status:        model.RecordStatus(dto.Status),
		Symptom:       dto.Symptom,
		Action:        dto.Action,
		ServiceSource: model.ServiceSource(dto.ServiceSource),
		ErrorCode:     dto.ErrorCode,
		Parts:         parts,
		PhotosBefore:  dto.PhotosBefore,
		PhotosAfter:   dto.PhotosAfter,
		CompletedDate: dto.CompletedDate,
		NextVisitDate: dto.NextVisitDate,
	}
}

type errorResponse struct {
	Code    int    `json:"code"`
	Message string `json:"message"`
}

func writeError(w http.ResponseWriter, err error) {
	status := http.StatusInternalServerError
	switch {
	case errors.Is(err, model.ErrValidation):
		status = http.StatusBadRequest
	case errors.Is(err, model.ErrRecordNotFound):
		status = http.StatusNotFound
	}
	respondJSON(w, status, errorResponse{Code: status, Message: err.Error()})
}

func respondJSON(w http.ResponseWriter, status int, body any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(body)
}
