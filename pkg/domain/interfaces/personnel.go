package interfaces

import (
	"context"

	"github.com/hotelops-lab/upkeep/pkg/domain/model"
	"github.com/hotelops-lab/upkeep/pkg/domain/types"
)

// PersonnelRepository defines the interface for Personnel data access.
// Records are upserted from the roster config and the optional Slack
// sync worker.
type PersonnelRepository interface {
	// Put creates or replaces a personnel record keyed by ID
	Put(ctx context.Context, p *model.Personnel) error

	// Get retrieves a personnel by ID
	Get(ctx context.Context, id types.PersonnelID) (*model.Personnel, error)

	// List retrieves all personnel records
	List(ctx context.Context) ([]*model.Personnel, error)
}
