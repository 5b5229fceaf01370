package memory

import (
	"context"
	"sync"
	"time"

	"github.com/m-mizutani/goerr/v2"

	"github.com/hotelops-lab/upkeep/pkg/domain/model"
	"github.com/hotelops-lab/upkeep/pkg/domain/types"
)

type interventionRepository struct {
	mu    sync.RWMutex
	items map[types.InterventionID]*model.Intervention
}

func newInterventionRepository() *interventionRepository {
	return &interventionRepository{
		items: make(map[types.InterventionID]*model.Intervention),
	}
}

func copyIntervention(iv *model.Intervention) *model.Intervention {
	copied := *iv
	return &copied
}

// activeForIncident must be called with the lock held
func (r *interventionRepository) activeForIncident(incidentID types.IncidentID) *model.Intervention {
	for _, iv := range r.items {
		if iv.IncidentID == incidentID && iv.Status.IsActive() {
			return iv
		}
	}
	return nil
}

func (r *interventionRepository) Create(ctx context.Context, iv *model.Intervention) (*model.Intervention, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	// Check-then-create under the write lock: the storage-level guard
	// against two technicians owning the same repair.
	if active := r.activeForIncident(iv.IncidentID); active != nil {
		return nil, goerr.Wrap(ErrActiveIntervention, "cannot schedule intervention",
			goerr.V("incident_id", iv.IncidentID),
			goerr.V("active_intervention_id", active.ID))
	}

	now := time.Now().UTC()
	created := copyIntervention(iv)
	if created.ID == "" {
		created.ID = types.NewInterventionID()
	}
	created.CreatedAt = now
	created.UpdatedAt = now

	r.items[created.ID] = created
	return copyIntervention(created), nil
}

func (r *interventionRepository) Get(ctx context.Context, id types.InterventionID) (*model.Intervention, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	iv, exists := r.items[id]
	if !exists {
		return nil, goerr.Wrap(ErrNotFound, "intervention not found", goerr.V("id", id))
	}

	return copyIntervention(iv), nil
}

func (r *interventionRepository) Update(ctx context.Context, iv *model.Intervention) (*model.Intervention, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	existing, exists := r.items[iv.ID]
	if !exists {
		return nil, goerr.Wrap(ErrNotFound, "intervention not found", goerr.V("id", iv.ID))
	}

	updated := copyIntervention(iv)
	updated.CreatedAt = existing.CreatedAt
	updated.UpdatedAt = time.Now().UTC()

	r.items[updated.ID] = updated
	return copyIntervention(updated), nil
}

func (r *interventionRepository) ListByIncident(ctx context.Context, incidentID types.IncidentID) ([]*model.Intervention, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	interventions := make([]*model.Intervention, 0)
	for _, iv := range r.items {
		if iv.IncidentID == incidentID {
			interventions = append(interventions, copyIntervention(iv))
		}
	}

	return interventions, nil
}

func (r *interventionRepository) GetActiveByIncident(ctx context.Context, incidentID types.IncidentID) (*model.Intervention, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	if active := r.activeForIncident(incidentID); active != nil {
		return copyIntervention(active), nil
	}
	return nil, nil
}
