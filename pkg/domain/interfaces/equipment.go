package interfaces

import (
	"context"

	"github.com/hotelops-lab/upkeep/pkg/domain/model"
	"github.com/hotelops-lab/upkeep/pkg/domain/types"
)

// EquipmentRepository defines the interface for Equipment data access
type EquipmentRepository interface {
	// Create stores a new equipment record
	Create(ctx context.Context, e *model.Equipment) (*model.Equipment, error)

	// Get retrieves an equipment by ID. Returns a not_found tagged
	// error when the ID is unknown.
	Get(ctx context.Context, id types.EquipmentID) (*model.Equipment, error)

	// List retrieves all equipment records
	List(ctx context.Context) ([]*model.Equipment, error)

	// Update replaces an existing equipment record
	Update(ctx context.Context, e *model.Equipment) (*model.Equipment, error)

	// Delete removes an equipment by ID
	Delete(ctx context.Context, id types.EquipmentID) error
}
