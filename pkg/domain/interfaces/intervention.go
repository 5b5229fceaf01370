package interfaces

import (
	"context"

	"github.com/hotelops-lab/upkeep/pkg/domain/model"
	"github.com/hotelops-lab/upkeep/pkg/domain/types"
)

// InterventionRepository defines the interface for Intervention data
// access. The one-active-intervention-per-incident invariant is
// enforced here, at the storage boundary, so two concurrent schedule
// calls cannot both succeed.
type InterventionRepository interface {
	// Create stores a new active intervention. It must atomically
	// verify that no other intervention on the same incident is
	// Planned or InProgress, and return a conflict tagged error
	// otherwise.
	Create(ctx context.Context, iv *model.Intervention) (*model.Intervention, error)

	// Get retrieves an intervention by ID
	Get(ctx context.Context, id types.InterventionID) (*model.Intervention, error)

	// Update replaces an existing intervention record. Moving to a
	// terminal status releases the incident's active slot in the same
	// atomic step.
	Update(ctx context.Context, iv *model.Intervention) (*model.Intervention, error)

	// ListByIncident retrieves all interventions referencing one incident
	ListByIncident(ctx context.Context, incidentID types.IncidentID) ([]*model.Intervention, error)

	// GetActiveByIncident retrieves the Planned or InProgress
	// intervention for an incident. Returns nil, nil when none exists.
	GetActiveByIncident(ctx context.Context, incidentID types.IncidentID) (*model.Intervention, error)
}
