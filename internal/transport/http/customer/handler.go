package handler

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/Ckopin0130/PrintManage-sub000/internal/model"
)

type CustomerService interface {
	List(ctx context.Context) []*model.Customer
	ByID(ctx context.Context, id string) (*model.Customer, error)
	Save(ctx context.Context, c *model.Customer) (*model.Customer, error)
	Delete(ctx context.Context, id string) error
	DeleteRegion(ctx context.Context, region, confirmation string) (int, int, error)
}

type handler struct {
	svc CustomerService
}

func NewCustomerHandler(svc CustomerService) *handler {
	return &handler{svc: svc}
}

func (h *handler) Register(r chi.Router) {
	r.Route("/customers", func(r chi.Router) {
		r.Get("/", h.list)
		r.Post("/", h.save)
		r.Get("/{id}", h.byID)
		r.Put("/{id}", h.save)
		r.Delete("/{id}", h.delete)
	})
	r.Delete("/regions/{region}", h.deleteRegion)
}

type customerDTO struct {
	ID            string     `json:"id"`
	Name          string     `json:"name"`
	Region        string     `json:"region"`
	District      string     `json:"district,omitempty"`
	Address       string     `json:"address,omitempty"`
	AddressNote   string     `json:"addressNote,omitempty"`
	ContactPerson string     `json:"contactPerson,omitempty"`
	Phones        []phoneDTO `json:"phones"`
	Assets        []assetDTO `json:"assets"`
	Notes         string     `json:"notes,omitempty"`
	CategoryID    string     `json:"categoryId"`
}

type phoneDTO struct {
	Label  string `json:"label,omitempty"`
	Number string `json:"number"`
}

type assetDTO struct {
	Model string `json:"model"`
}

func (h *handler) list(w http.ResponseWriter, r *http.Request) {
	customers := h.svc.List(r.Context())
	out := make([]customerDTO, 0, len(customers))
	for _, c := range customers {
		out = append(out, toDTO(c))
	}
	respondJSON(w, http.StatusOK, out)
}

func (h *handler) byID(w http.ResponseWriter, r *http.Request) {
	c, err := h.svc.ByID(r.Context(), chi.URLParam(r, "id"))
	if err != nil {
		writeError(w, err)
		return
	}
	respondJSON(w, http.StatusOK, toDTO(c))
}

func (h *handler) save(w http.ResponseWriter, r *http.Request) {
	var dto customerDTO
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

type deleteRegionRequest struct {
	Confirmation string `json:"confirmation"`
}

type deleteRegionResponse struct {
	CustomersRemoved int `json:"customersRemoved"`
	RecordsRemoved   int `json:"recordsRemoved"`
}

func (h *handler) deleteRegion(w http.ResponseWriter, r *http.Request) {
	var req deleteRegionRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, errors.Join(model.ErrValidation, err))
		return
	}

	customers, records, err := h.svc.DeleteRegion(r.Context(), chi.URLParam(r, "region"), req.Confirmation)
	if err != nil {
		writeError(w, err)
		return
	}
	respondJSON(w, http.StatusOK, deleteRegionResponse{
		CustomersRemoved: customers,
		RecordsRemoved:   records,
	})
}

func toDTO(c *model.Customer) customerDTO {
	phones := make([]phoneDTO, 0, len(c.Phones))
	for _, p := range c.Phones {
		phones = append(phones, phoneDTO{Label: p.Label, Number: p.Number})
	}
	assets := make([]assetDTO, 0, len(c.Assets))
	for _, a := range c.Assets {
		assets = append(assets, assetDTO{Model: a.Model})
	}
	return customerDTO{
		ID:            c.ID,
		Name:          c.Name,
		Region:        c.Region,
		District:      c.District,
		Address:       c.Address,
		AddressNote:   c.AddressNote,
		ContactPerson: c.ContactPerson,
		Phones:        phones,
		Assets:        assets,
		Notes:         c.Notes,
		CategoryID:    string(c.CategoryID),
	}
}

func fromDTO(dto *customerDTO) *model.Customer {
	phones := make([]model.Phone, 0, len(dto.Phones))
	for _, p := range dto.Phones {
		phones = append(phones, model.Phone{Label: p.Label, Number: p.Number})
	}
	assets := make([]model.Asset, 0, len(dto.Assets))
	for _, a := range dto.Assets {
		assets = append(assets, model.Asset{Model: a.Model})
	}
	return &model.Customer{
		ID:            dto.ID,
		Name:          dto.Name,
		Region:        dto.Region,
		District:      dto.District,
		Address:       dto.Address,
		AddressNote:   dto.AddressNote,
		ContactPerson: dto.ContactPerson,
		Phones:        phones,
		Assets:        assets,
		Notes:         dto.Notes,
		CategoryID:    model.CustomerCategory(dto.CategoryID),
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
	case errors.Is(err, model.ErrConfirmationMismatch):
		status = http.StatusConflict
	case errors.Is(err, model.ErrCustomerNotFound):
		status = http.StatusNotFound
	}
	respondJSON(w, status, errorResponse{Code: status, Message: err.Error()})
}

func respondJSON(w http.ResponseWriter, status int, body any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(body)
}
