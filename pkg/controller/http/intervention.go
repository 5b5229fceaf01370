package http

import (
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/m-mizutani/goerr/v2"

	"github.com/hotelops-lab/upkeep/pkg/domain/model"
	"github.com/hotelops-lab/upkeep/pkg/domain/types"
	"github.com/hotelops-lab/upkeep/pkg/usecase"
)

type interventionResponse struct {
	ID          string    `json:"id"`
	IncidentID  string    `json:"incident_id"`
	PersonnelID string    `json:"personnel_id"`
	ScheduledAt time.Time `json:"scheduled_at"`
	Description string    `json:"description,omitempty"`
	Status      string    `json:"status"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}

func toInterventionResponse(iv *model.Intervention) interventionResponse {
	return interventionResponse{
		ID:          iv.ID.String(),
		IncidentID:  iv.IncidentID.String(),
		PersonnelID: iv.PersonnelID.String(),
		ScheduledAt: iv.ScheduledAt,
		Description: iv.Description,
		Status:      iv.Status.String(),
		CreatedAt:   iv.CreatedAt,
		UpdatedAt:   iv.UpdatedAt,
	}
}

type scheduleInterventionRequest struct {
	IncidentID  string    `json:"incident_id"`
	PersonnelID string    `json:"personnel_id"`
	ScheduledAt time.Time `json:"scheduled_at"`
	Description string    `json:"description"`
}

func (s *Server) scheduleIntervention(w http.ResponseWriter, r *http.Request) {
	var req scheduleInterventionRequest
	if err := decodeJSON(r, &req); err != nil {
		s.handleError(w, r, err, nil)
		return
	}

	created, err := s.uc.Intervention.Schedule(r.Context(), usecase.ScheduleInput{
		IncidentID:  types.IncidentID(req.IncidentID),
		PersonnelID: types.PersonnelID(req.PersonnelID),
		ScheduledAt: req.ScheduledAt,
		Description: req.Description,
	})
	if s.handleError(w, r, err, nil) {
		return
	}

	s.writeJSON(w, r, http.StatusCreated, toInterventionResponse(created))
}

func (s *Server) listInterventions(w http.ResponseWriter, r *http.Request) {
	incidentID := r.URL.Query().Get("incident_id")
	if incidentID == "" {
		err := goerr.New("incident_id is required", goerr.T(types.TagValidation))
		s.handleError(w, r, err, nil)
		return
	}

	items, err := s.uc.Intervention.ListByIncident(r.Context(), types.IncidentID(incidentID))
	if s.handleError(w, r, err, nil) {
		return
	}

	resp := make([]interventionResponse, len(items))
	for i, iv := range items {
		resp[i] = toInterventionResponse(iv)
	}
	s.writeJSON(w, r, http.StatusOK, resp)
}

func (s *Server) getIntervention(w http.ResponseWriter, r *http.Request) {
	id := types.InterventionID(chi.URLParam(r, "id"))

	iv, err := s.uc.Intervention.Get(r.Context(), id)
	if s.handleError(w, r, err, nil) {
		return
	}

	s.writeJSON(w, r, http.StatusOK, toInterventionResponse(iv))
}

// transition handlers share the idempotent handling: an already-applied
// transition responds 200 with the current state and a flag

func (s *Server) startIntervention(w http.ResponseWriter, r *http.Request) {
	id := types.InterventionID(chi.URLParam(r, "id"))

	iv, err := s.uc.Intervention.Start(r.Context(), id)
	if err != nil && types.IsIdempotent(err) {
		s.handleError(w, r, err, toInterventionResponse(iv))
		return
	}
	if s.handleError(w, r, err, nil) {
		return
	}

	s.writeJSON(w, r, http.StatusOK, toInterventionResponse(iv))
}

func (s *Server) completeIntervention(w http.ResponseWriter, r *http.Request) {
	id := types.InterventionID(chi.URLParam(r, "id"))

	iv, err := s.uc.Intervention.Complete(r.Context(), id)
	if err != nil && types.IsIdempotent(err) {
		s.handleError(w, r, err, toInterventionResponse(iv))
		return
	}
	if s.handleError(w, r, err, nil) {
		return
	}

	s.writeJSON(w, r, http.StatusOK, toInterventionResponse(iv))
}

func (s *Server) cancelIntervention(w http.ResponseWriter, r *http.Request) {
	id := types.InterventionID(chi.URLParam(r, "id"))

	iv, err := s.uc.Intervention.Cancel(r.Context(), id)
	if err != nil && types.IsIdempotent(err) {
		s.handleError(w, r, err, toInterventionResponse(iv))
		return
	}
	if s.handleError(w, r, err, nil) {
		return
	}

	s.writeJSON(w, r, http.StatusOK, toInterventionResponse(iv))
}
