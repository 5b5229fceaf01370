package firestore

import (
	"context"
	"time"

	"cloud.google.com/go/firestore"
	"github.com/m-mizutani/goerr/v2"
	"google.golang.org/api/iterator"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"

	"github.com/hotelops-lab/upkeep/pkg/domain/model"
	"github.com/hotelops-lab/upkeep/pkg/domain/types"
)

type equipmentRepository struct {
	client           *firestore.Client
	collectionPrefix string
}

func newEquipmentRepository(client *firestore.Client) *equipmentRepository {
	return &equipmentRepository{client: client}
}

func (r *equipmentRepository) collection() string {
	return prefixed(r.collectionPrefix, "equipments")
}

func (r *equipmentRepository) Create(ctx context.Context, e *model.Equipment) (*model.Equipment, error) {
	now := time.Now().UTC()
	created := *e
	if created.ID == "" {
		created.ID = types.NewEquipmentID()
	}
	created.CreatedAt = now
	created.UpdatedAt = now

	_, err := r.client.Collection(r.collection()).Doc(created.ID.String()).Set(ctx, &created)
	if err != nil {
		return nil, goerr.Wrap(err, "failed to create equipment",
			goerr.T(types.TagStorage), goerr.V("id", created.ID))
	}

	return &created, nil
}

func (r *equipmentRepository) Get(ctx context.Context, id types.EquipmentID) (*model.Equipment, error) {
	docSnap, err := r.client.Collection(r.collection()).Doc(id.String()).Get(ctx)
	if err != nil {
		if status.Code(err) == codes.NotFound {
			return nil, goerr.Wrap(ErrNotFound, "equipment not found", goerr.V("id", id))
		}
		return nil, goerr.Wrap(err, "failed to get equipment",
			goerr.T(types.TagStorage), goerr.V("id", id))
	}

	var e model.Equipment
	if err := docSnap.DataTo(&e); err != nil {
		return nil, goerr.Wrap(err, "failed to decode equipment",
			goerr.T(types.TagStorage), goerr.V("id", id))
	}

	return &e, nil
}

func (r *equipmentRepository) List(ctx context.Context) ([]*model.Equipment, error) {
	iter := r.client.Collection(r.collection()).Documents(ctx)
	defer iter.Stop()

	var items []*model.Equipment
	for {
		docSnap, err := iter.Next()
		if err == iterator.Done {
			break
		}
		if err != nil {
			return nil, goerr.Wrap(err, "failed to list equipments", goerr.T(types.TagStorage))
		}

		var e model.Equipment
		if err := docSnap.DataTo(&e); err != nil {
			return nil, goerr.Wrap(err, "failed to decode equipment", goerr.T(types.TagStorage))
		}
		items = append(items, &e)
	}

	return items, nil
}

func (r *equipmentRepository) Update(ctx context.Context, e *model.Equipment) (*model.Equipment, error) {
	docRef := r.client.Collection(r.collection()).Doc(e.ID.String())

	updated := *e
	err := r.client.RunTransaction(ctx, func(ctx context.Context, tx *firestore.Transaction) error {
		docSnap, err := tx.Get(docRef)
		if err != nil {
			if status.Code(err) == codes.NotFound {
				return goerr.Wrap(ErrNotFound, "equipment not found", goerr.V("id", e.ID))
			}
			return goerr.Wrap(err, "failed to get equipment", goerr.T(types.TagStorage))
		}

		var existing model.Equipment
		if err := docSnap.DataTo(&existing); err != nil {
			return goerr.Wrap(err, "failed to decode equipment", goerr.T(types.TagStorage))
		}

		updated.CreatedAt = existing.CreatedAt
		updated.UpdatedAt = time.Now().UTC()
		return tx.Set(docRef, &updated)
	})
	if err != nil {
		if types.IsNotFound(err) {
			return nil, err
		}
		return nil, goerr.Wrap(err, "failed to update equipment",
			goerr.T(types.TagStorage), goerr.V("id", e.ID))
	}

	return &updated, nil
}

func (r *equipmentRepository) Delete(ctx context.Context, id types.EquipmentID) error {
	docRef := r.client.Collection(r.collection()).Doc(id.String())

	if _, err := docRef.Get(ctx); err != nil {
		if status.Code(err) == codes.NotFound {
			return goerr.Wrap(ErrNotFound, "equipment not found", goerr.V("id", id))
		}
		return goerr.Wrap(err, "failed to get equipment",
			goerr.T(types.TagStorage), goerr.V("id", id))
	}

	if _, err := docRef.Delete(ctx); err != nil {
		return goerr.Wrap(err, "failed to delete equipment",
			goerr.T(types.TagStorage), goerr.V("id", id))
	}

	return nil
}
