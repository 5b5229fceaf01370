package directory

import (
	"context"

	"github.com/m-mizutani/goerr/v2"

	"github.com/hotelops-lab/upkeep/pkg/domain/interfaces"
	"github.com/hotelops-lab/upkeep/pkg/domain/model"
	"github.com/hotelops-lab/upkeep/pkg/domain/types"
)

// Directory resolves personnel IDs for intervention assignment. The
// lifecycle engine only ever reads from it.
type Directory interface {
	// GetPersonnel retrieves a personnel record, returning a not_found
	// tagged error for unknown IDs
	GetPersonnel(ctx context.Context, id types.PersonnelID) (*model.Personnel, error)
}

type repoDirectory struct {
	repo interfaces.Repository
}

// New returns a Directory backed by the personnel repository. Records
// arrive there from the roster config and the optional Slack sync
// worker.
func New(repo interfaces.Repository) Directory {
	return &repoDirectory{repo: repo}
}

func (d *repoDirectory) GetPersonnel(ctx context.Context, id types.PersonnelID) (*model.Personnel, error) {
	if id == "" {
		return nil, goerr.New("personnel ID is required", goerr.T(types.TagValidation))
	}

	p, err := d.repo.Personnel().Get(ctx, id)
	if err != nil {
		return nil, goerr.Wrap(err, "failed to resolve personnel", goerr.V("id", id))
	}
	return p, nil
}

// Seed upserts roster entries into the personnel repository. Called at
// startup with the entries from the app config.
func Seed(ctx context.Context, repo interfaces.Repository, roster []*model.Personnel) error {
	for _, p := range roster {
		if err := repo.Personnel().Put(ctx, p); err != nil {
			return goerr.Wrap(err, "failed to seed personnel roster", goerr.V("id", p.ID))
		}
	}
	return nil
}
