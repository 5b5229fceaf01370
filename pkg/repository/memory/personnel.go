package memory

import (
	"context"
	"sync"
	"time"

	"github.com/m-mizutani/goerr/v2"

	"github.com/hotelops-lab/upkeep/pkg/domain/model"
	"github.com/hotelops-lab/upkeep/pkg/domain/types"
)

type personnelRepository struct {
	mu    sync.RWMutex
	items map[types.PersonnelID]*model.Personnel
}

func newPersonnelRepository() *personnelRepository {
	return &personnelRepository{
		items: make(map[types.PersonnelID]*model.Personnel),
	}
}

func copyPersonnel(p *model.Personnel) *model.Personnel {
	copied := *p
	return &copied
}

func (r *personnelRepository) Put(ctx context.Context, p *model.Personnel) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	now := time.Now().UTC()
	stored := copyPersonnel(p)
	if existing, exists := r.items[stored.ID]; exists {
		stored.CreatedAt = existing.CreatedAt
	} else {
		stored.CreatedAt = now
	}
	stored.UpdatedAt = now

	r.items[stored.ID] = stored
	return nil
}

func (r *personnelRepository) Get(ctx context.Context, id types.PersonnelID) (*model.Personnel, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	p, exists := r.items[id]
	if !exists {
		return nil, goerr.Wrap(ErrNotFound, "personnel not found", goerr.V("id", id))
	}

	return copyPersonnel(p), nil
}

func (r *personnelRepository) List(ctx context.Context) ([]*model.Personnel, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	items := make([]*model.Personnel, 0, len(r.items))
	for _, p := range r.items {
		items = append(items, copyPersonnel(p))
	}

	return items, nil
}
