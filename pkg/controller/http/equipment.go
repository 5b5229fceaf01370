package http

import (
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"

	"github.com/hotelops-lab/upkeep/pkg/domain/model"
	"github.com/hotelops-lab/upkeep/pkg/domain/types"
	"github.com/hotelops-lab/upkeep/pkg/usecase"
)

type equipmentResponse struct {
	ID          string    `json:"id"`
	Name        string    `json:"name"`
	Category    string    `json:"category"`
	Location    string    `json:"location"`
	Description string    `json:"description,omitempty"`
	Status      string    `json:"status"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}

func toEquipmentResponse(e *model.Equipment) equipmentResponse {
	return equipmentResponse{
		ID:          e.ID.String(),
		Name:        e.Name,
		Category:    e.Category,
		Location:    e.Location,
		Description: e.Description,
		Status:      e.Status.String(),
		CreatedAt:   e.CreatedAt,
		UpdatedAt:   e.UpdatedAt,
	}
}

type createEquipmentRequest struct {
	Name        string `json:"name"`
	Category    string `json:"category"`
	Location    string `json:"location"`
	Description string `json:"description"`
	Status      string `json:"status"`
}

func (s *Server) createEquipment(w http.ResponseWriter, r *http.Request) {
	var req createEquipmentRequest
	if err := decodeJSON(r, &req); err != nil {
		s.handleError(w, r, err, nil)
		return
	}

	created, err := s.uc.Equipment.Create(r.Context(), usecase.CreateEquipmentInput{
		Name:        req.Name,
		Category:    req.Category,
		Location:    req.Location,
		Description: req.Description,
		Status:      types.EquipmentStatus(req.Status),
	})
	if s.handleError(w, r, err, nil) {
		return
	}

	s.writeJSON(w, r, http.StatusCreated, toEquipmentResponse(created))
}

func (s *Server) listEquipments(w http.ResponseWriter, r *http.Request) {
	items, err := s.uc.Equipment.List(r.Context())
	if s.handleError(w, r, err, nil) {
		return
	}

	resp := make([]equipmentResponse, len(items))
	for i, e := range items {
		resp[i] = toEquipmentResponse(e)
	}
	s.writeJSON(w, r, http.StatusOK, resp)
}

func (s *Server) getEquipment(w http.ResponseWriter, r *http.Request) {
	id := types.EquipmentID(chi.URLParam(r, "id"))

	e, err := s.uc.Equipment.Get(r.Context(), id)
	if s.handleError(w, r, err, nil) {
		return
	}

	s.writeJSON(w, r, http.StatusOK, toEquipmentResponse(e))
}

type updateEquipmentRequest struct {
	Name        *string `json:"name"`
	Category    *string `json:"category"`
	Location    *string `json:"location"`
	Description *string `json:"description"`
	Status      *string `json:"status"`
}

func (s *Server) updateEquipment(w http.ResponseWriter, r *http.Request) {
	id := types.EquipmentID(chi.URLParam(r, "id"))

	var req updateEquipmentRequest
	if err := decodeJSON(r, &req); err != nil {
		s.handleError(w, r, err, nil)
		return
	}

	patch := model.EquipmentPatch{
		Name:        req.Name,
		Category:    req.Category,
		Location:    req.Location,
		Description: req.Description,
	}
	if req.Status != nil {
		status := types.EquipmentStatus(*req.Status)
		patch.Status = &status
	}

	updated, err := s.uc.Equipment.Update(r.Context(), id, patch)
	if s.handleError(w, r, err, nil) {
		return
	}

	s.writeJSON(w, r, http.StatusOK, toEquipmentResponse(updated))
}

func (s *Server) deleteEquipment(w http.ResponseWriter, r *http.Request) {
	id := types.EquipmentID(chi.URLParam(r, "id"))

	if s.handleError(w, r, s.uc.Equipment.Delete(r.Context(), id), nil) {
		return
	}

	w.WriteHeader(http.StatusNoContent)
}
