package memory

import (
	"context"
	"sync"
	"time"

	"github.com/m-mizutani/goerr/v2"

	"github.com/hotelops-lab/upkeep/pkg/domain/model"
	"github.com/hotelops-lab/upkeep/pkg/domain/types"
)

type incidentRepository struct {
	mu    sync.RWMutex
	items map[types.IncidentID]*model.Incident
}

func newIncidentRepository() *incidentRepository {
	return &incidentRepository{
		items: make(map[types.IncidentID]*model.Incident),
	}
}

func copyIncident(i *model.Incident) *model.Incident {
	copied := *i
	return &copied
}

func (r *incidentRepository) Create(ctx context.Context, i *model.Incident) (*model.Incident, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	now := time.Now().UTC()
	created := copyIncident(i)
	if created.ID == "" {
		created.ID = types.NewIncidentID()
	}
	created.CreatedAt = now
	created.UpdatedAt = now

	r.items[created.ID] = created
	return copyIncident(created), nil
}

func (r *incidentRepository) Get(ctx context.Context, id types.IncidentID) (*model.Incident, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	i, exists := r.items[id]
	if !exists {
		return nil, goerr.Wrap(ErrNotFound, "incident not found", goerr.V("id", id))
	}

	return copyIncident(i), nil
}

func (r *incidentRepository) Update(ctx context.Context, i *model.Incident) (*model.Incident, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	existing, exists := r.items[i.ID]
	if !exists {
		return nil, goerr.Wrap(ErrNotFound, "incident not found", goerr.V("id", i.ID))
	}

	updated := copyIncident(i)
	updated.CreatedAt = existing.CreatedAt
	updated.UpdatedAt = time.Now().UTC()

	r.items[updated.ID] = updated
	return copyIncident(updated), nil
}

func (r *incidentRepository) ListByEquipment(ctx context.Context, equipmentID types.EquipmentID) ([]*model.Incident, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	incidents := make([]*model.Incident, 0)
	for _, i := range r.items {
		if i.EquipmentID == equipmentID {
			incidents = append(incidents, copyIncident(i))
		}
	}

	return incidents, nil
}

func (r *incidentRepository) ListOpenByEquipment(ctx context.Context, equipmentID types.EquipmentID) ([]*model.Incident, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	incidents := make([]*model.Incident, 0)
	for _, i := range r.items {
		if i.EquipmentID == equipmentID && i.Status.IsOpen() {
			incidents = append(incidents, copyIncident(i))
		}
	}

	return incidents, nil
}

func (r *incidentRepository) ListOpen(ctx context.Context) ([]*model.Incident, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	incidents := make([]*model.Incident, 0)
	for _, i := range r.items {
		if i.Status.IsOpen() {
			incidents = append(incidents, copyIncident(i))
		}
	}

	return incidents, nil
}
