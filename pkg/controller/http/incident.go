package http

import (
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/m-mizutani/goerr/v2"

	"github.com/hotelops-lab/upkeep/pkg/domain/model"
	"github.com/hotelops-lab/upkeep/pkg/domain/types"
)

type incidentResponse struct {
	ID          string    `json:"id"`
	EquipmentID string    `json:"equipment_id"`
	Title       string    `json:"title"`
	Description string    `json:"description,omitempty"`
	Severity    string    `json:"severity"`
	Status      string    `json:"status"`
	ReportedAt  time.Time `json:"reported_at"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}

func toIncidentResponse(i *model.Incident) incidentResponse {
	return incidentResponse{
		ID:          i.ID.String(),
		EquipmentID: i.EquipmentID.String(),
		Title:       i.Title,
		Description: i.Description,
		Severity:    i.Severity.String(),
		Status:      i.Status.String(),
		ReportedAt:  i.ReportedAt,
		CreatedAt:   i.CreatedAt,
		UpdatedAt:   i.UpdatedAt,
	}
}

type reportIncidentRequest struct {
	EquipmentID string `json:"equipment_id"`
	Title       string `json:"title"`
	Description string `json:"description"`
	Severity    string `json:"severity"`
}

func (s *Server) reportIncident(w http.ResponseWriter, r *http.Request) {
	var req reportIncidentRequest
	if err := decodeJSON(r, &req); err != nil {
		s.handleError(w, r, err, nil)
		return
	}

	created, err := s.uc.Incident.Report(r.Context(),
		types.EquipmentID(req.EquipmentID),
		req.Title,
		req.Description,
		types.Severity(req.Severity),
	)
	if s.handleError(w, r, err, nil) {
		return
	}

	s.writeJSON(w, r, http.StatusCreated, toIncidentResponse(created))
}

func (s *Server) listIncidents(w http.ResponseWriter, r *http.Request) {
	var items []*model.Incident
	var err error

	switch {
	case r.URL.Query().Get("equipment_id") != "":
		equipmentID := types.EquipmentID(r.URL.Query().Get("equipment_id"))
		items, err = s.uc.Incident.ListByEquipment(r.Context(), equipmentID)
	case r.URL.Query().Get("open") == "true":
		items, err = s.uc.Incident.ListOpen(r.Context())
	default:
		err = goerr.New("either equipment_id or open=true is required",
			goerr.T(types.TagValidation))
	}
	if s.handleError(w, r, err, nil) {
		return
	}

	resp := make([]incidentResponse, len(items))
	for i, inc := range items {
		resp[i] = toIncidentResponse(inc)
	}
	s.writeJSON(w, r, http.StatusOK, resp)
}

func (s *Server) getIncident(w http.ResponseWriter, r *http.Request) {
	id := types.IncidentID(chi.URLParam(r, "id"))

	incident, err := s.uc.Incident.Get(r.Context(), id)
	if s.handleError(w, r, err, nil) {
		return
	}

	s.writeJSON(w, r, http.StatusOK, toIncidentResponse(incident))
}

func (s *Server) closeIncident(w http.ResponseWriter, r *http.Request) {
	id := types.IncidentID(chi.URLParam(r, "id"))

	closed, err := s.uc.Incident.Close(r.Context(), id)
	if s.handleError(w, r, err, nil) {
		return
	}

	s.writeJSON(w, r, http.StatusOK, toIncidentResponse(closed))
}
