package interfaces

import (
	"context"

	"github.com/hotelops-lab/upkeep/pkg/domain/model"
	"github.com/hotelops-lab/upkeep/pkg/domain/types"
)

// IncidentRepository defines the interface for Incident data access
type IncidentRepository interface {
	// Create stores a new incident record
	Create(ctx context.Context, i *model.Incident) (*model.Incident, error)

	// Get retrieves an incident by ID
	Get(ctx context.Context, id types.IncidentID) (*model.Incident, error)

	// Update replaces an existing incident record
	Update(ctx context.Context, i *model.Incident) (*model.Incident, error)

	// ListByEquipment retrieves all incidents referencing one equipment
	ListByEquipment(ctx context.Context, equipmentID types.EquipmentID) ([]*model.Incident, error)

	// ListOpenByEquipment retrieves the incidents referencing one
	// equipment whose status is Open or InProgress. The coordinator's
	// equipment recompute reads through this method immediately after
	// the incident write so it never acts on a stale incident list.
	ListOpenByEquipment(ctx context.Context, equipmentID types.EquipmentID) ([]*model.Incident, error)

	// ListOpen retrieves all incidents whose status is Open or InProgress
	ListOpen(ctx context.Context) ([]*model.Incident, error)
}
