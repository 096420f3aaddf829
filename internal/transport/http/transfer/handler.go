package handler

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/Ckopin0130/PrintManage-sub000/internal/model"
)

type TransferService interface {
	Export(ctx context.Context) *model.Archive
	Import(ctx context.Context, a *model.Archive) error
}

type handler struct {
	svc TransferService
}

func NewTransferHandler(svc TransferService) *handler {
	return &handler{svc: svc}
}

func (h *handler) Register(r chi.Router) {
	r.Get("/export", h.export)
	r.Post("/import", h.importArchive)
}

// export streams the whole dataset as a downloadable backup document.
// Importing the exact same document reproduces the three collections.
func (h *handler) export(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")
	w.Header().Set("Content-Disposition", `attachment; filename="printmanage-backup.json"`)
	_ = json.NewEncoder(w).Encode(h.svc.Export(r.Context()))
}

func (h *handler) importArchive(w http.ResponseWriter, r *http.Request) {
	var a model.Archive
	if err := json.NewDecoder(r.Body).Decode(&a); err != nil {
		writeError(w, errors.Join(model.ErrValidation, err))
		return
	}

	if err := h.svc.Import(r.Context(), &a); err != nil {
		writeError(w, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

type errorResponse struct {
	Code    int    `json:"code"`
	Message string `json:"message"`
}

func writeError(w http.ResponseWriter, err error) {
	status := http.StatusInternalServerError
	if errors.Is(err, model.ErrValidation) {
		status = http.StatusBadRequest
	}
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(errorResponse{Code: status, Message: err.Error()})
}
