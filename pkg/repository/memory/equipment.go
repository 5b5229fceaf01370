package memory

import (
	"context"
	"sync"
	"time"

	"github.com/m-mizutani/goerr/v2"

	"github.com/hotelops-lab/upkeep/pkg/domain/model"
	"github.com/hotelops-lab/upkeep/pkg/domain/types"
)

type equipmentRepository struct {
	mu    sync.RWMutex
	items map[types.EquipmentID]*model.Equipment
}

func newEquipmentRepository() *equipmentRepository {
	return &equipmentRepository{
		items: make(map[types.EquipmentID]*model.Equipment),
	}
}

func copyEquipment(e *model.Equipment) *model.Equipment {
	copied := *e
	return &copied
}

func (r *equipmentRepository) Create(ctx context.Context, e *model.Equipment) (*model.Equipment, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	now := time.Now().UTC()
	created := copyEquipment(e)
	if created.ID == "" {
		created.ID = types.NewEquipmentID()
	}
	created.CreatedAt = now
	created.UpdatedAt = now

	r.items[created.ID] = created
	return copyEquipment(created), nil
}

func (r *equipmentRepository) Get(ctx context.Context, id types.EquipmentID) (*model.Equipment, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	e, exists := r.items[id]
	if !exists {
		return nil, goerr.Wrap(ErrNotFound, "equipment not found", goerr.V("id", id))
	}

	return copyEquipment(e), nil
}

func (r *equipmentRepository) List(ctx context.Context) ([]*model.Equipment, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	items := make([]*model.Equipment, 0, len(r.items))
	for _, e := range r.items {
		items = append(items, copyEquipment(e))
	}

	return items, nil
}

func (r *equipmentRepository) Update(ctx context.Context, e *model.Equipment) (*model.Equipment, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	existing, exists := r.items[e.ID]
	if !exists {
		return nil, goerr.Wrap(ErrNotFound, "equipment not found", goerr.V("id", e.ID))
	}

	updated := copyEquipment(e)
	updated.CreatedAt = existing.CreatedAt
	updated.UpdatedAt = time.Now().UTC()

	r.items[updated.ID] = updated
	return copyEquipment(updated), nil
}

func (r *equipmentRepository) Delete(ctx context.Context, id types.EquipmentID) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, exists := r.items[id]; !exists {
		return goerr.Wrap(ErrNotFound, "equipment not found", goerr.V("id", id))
	}

	delete(r.items, id)
	return nil
}
