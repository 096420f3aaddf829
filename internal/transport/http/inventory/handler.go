package handler

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/Ckopin0130/PrintManage-sub000/internal/model"
)

type InventoryService interface {
	List(ctx context.Context) []*model.InventoryItem
	ByID(ctx context.Context, id string) (*model.InventoryItem, error)
	Save(ctx context.Context, item *model.InventoryItem) (*model.InventoryItem, error)
	Delete(ctx context.Context, id string) error
	RenameGroup(ctx context.Context, oldName, newName string) (int, error)
	LowStock(ctx context.Context) []*model.InventoryItem
	SuggestForModel(ctx context.Context, machineModel string) ([]*model.InventoryItem, error)
}

type handler struct {
	svc InventoryService
}

func NewInventoryHandler(svc InventoryService) *handler {
	return &handler{svc: svc}
}

func (h *handler) Register(r chi.Router) {
	r.Route("/inventory", func(r chi.Router) {
		r.Get("/", h.list)
		r.Post("/", h.save)
		r.Get("/low-stock", h.lowStock)
		r.Get("/suggest", h.suggest)
		r.Post("/groups/rename", h.renameGroup)
		r.Get("/{id}", h.byID)
		r.Put("/{id}", h.save)
		r.Delete("/{id}", h.delete)
	})
}

type itemDTO struct {
	ID         string `json:"id"`
	Name       string `json:"name"`
	Model      string `json:"model,omitempty"`
	Qty        int64  `json:"qty"`
	Max        int64  `json:"max,omitempty"`
	Unit       string `json:"unit,omitempty"`
	CategoryID string `json:"categoryId"`
}

func (h *handler) list(w http.ResponseWriter, r *http.Request) {
	respondJSON(w, http.StatusOK, toDTOs(h.svc.List(r.Context())))
}

func (h *handler) lowStock(w http.ResponseWriter, r *http.Request) {
	respondJSON(w, http.StatusOK, toDTOs(h.svc.LowStock(r.Context())))
}

func (h *handler) suggest(w http.ResponseWriter, r *http.Request) {
	items, err := h.svc.SuggestForModel(r.Context(), r.URL.Query().Get("model"))
	if err != nil {
		writeError(w, err)
		return
	}
	respondJSON(w, http.StatusOK, toDTOs(items))
}

func (h *handler) byID(w http.ResponseWriter, r *http.Request) {
	item, err := h.svc.ByID(r.Context(), chi.URLParam(r, "id"))
	if err != nil {
		writeError(w, err)
		return
	}
	respondJSON(w, http.StatusOK, toDTO(item))
}

func (h *handler) save(w http.ResponseWriter, r *http.Request) {
	var dto itemDTO
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
	respondJSON(w, http.StatusOK, toDTO(saved))
}

func (h *handler) delete(w http.ResponseWriter, r *http.Request) {
	if err := h.svc.Delete(r.Context(), chi.URLParam(r, "id")); err != nil {
		writeError(w, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

type renameGroupRequest struct {
	OldName string `json:"oldName"`
	NewName string `json:"newName"`
}

type renameGroupResponse struct {
	ItemsRenamed int `json:"itemsRenamed"`
}

func (h *handler) renameGroup(w http.ResponseWriter, r *http.Request) {
	var req renameGroupRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, errors.Join(model.ErrValidation, err))
		return
	}

	n, err := h.svc.RenameGroup(r.Context(), req.OldName, req.NewName)
	if err != nil {
		writeError(w, err)
		return
	}
	respondJSON(w, http.StatusOK, renameGroupResponse{ItemsRenamed: n})
}

func toDTO(i *model.InventoryItem) itemDTO {
	return itemDTO{
		ID:         i.ID,
		Name:       i.Name,
		Model:      i.Model,
		Qty:        i.Qty,
		Max:        i.Max,
		Unit:       i.Unit,
		CategoryID: string(i.CategoryID),
	}
}

func toDTOs(items []*model.InventoryItem) []itemDTO {
	out := make([]itemDTO, 0, len(items))
	for _, i := range items {
		out = append(out, toDTO(i))
	}
	return out
}

func fromDTO(dto *itemDTO) *model.InventoryItem {
	return &model.InventoryItem{
		ID:         dto.ID,
		Name:       dto.Name,
		Model:      dto.Model,
		Qty:        dto.Qty,
		Max:        dto.Max,
		Unit:       dto.Unit,
		CategoryID: model.ItemCategory(dto.CategoryID),
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
	case errors.Is(err, model.ErrItemNotFound):
		status = http.StatusNotFound
	}
	respondJSON(w, status, errorResponse{Code: status, Message: err.Error()})
}

func respondJSON(w http.ResponseWriter, status int, body any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(body)
}
