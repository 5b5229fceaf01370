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

type personnelRepository struct {
	client           *firestore.Client
	collectionPrefix string
}

func newPersonnelRepository(client *firestore.Client) *personnelRepository {
	return &personnelRepository{client: client}
}

func (r *personnelRepository) collection() string {
	return prefixed(r.collectionPrefix, "personnel")
}

func (r *personnelRepository) Put(ctx context.Context, p *model.Personnel) error {
	docRef := r.client.Collection(r.collection()).Doc(p.ID.String())

	stored := *p
	err := r.client.RunTransaction(ctx, func(ctx context.Context, tx *firestore.Transaction) error {
		now := time.Now().UTC()
		docSnap, err := tx.Get(docRef)
		if err != nil && status.Code(err) != codes.NotFound {
			return goerr.Wrap(err, "failed to get personnel", goerr.T(types.TagStorage))
		}

		if err == nil && docSnap.Exists() {
			var existing model.Personnel
			if decodeErr := docSnap.DataTo(&existing); decodeErr != nil {
				return goerr.Wrap(decodeErr, "failed to decode personnel", goerr.T(types.TagStorage))
			}
			stored.CreatedAt = existing.CreatedAt
		} else {
			stored.CreatedAt = now
		}
		stored.UpdatedAt = now

		return tx.Set(docRef, &stored)
	})
	if err != nil {
		return goerr.Wrap(err, "failed to put personnel",
			goerr.T(types.TagStorage), goerr.V("id", p.ID))
	}

	return nil
}

func (r *personnelRepository) Get(ctx context.Context, id types.PersonnelID) (*model.Personnel, error) {
	docSnap, err := r.client.Collection(r.collection()).Doc(id.String()).Get(ctx)
	if err != nil {
		if status.Code(err) == codes.NotFound {
			return nil, goerr.Wrap(ErrNotFound, "personnel not found", goerr.V("id", id))
		}
		return nil, goerr.Wrap(err, "failed to get personnel",
			goerr.T(types.TagStorage), goerr.V("id", id))
	}

	var p model.Personnel
	if err := docSnap.DataTo(&p); err != nil {
		return nil, goerr.Wrap(err, "failed to decode personnel",
			goerr.T(types.TagStorage), goerr.V("id", id))
	}

	return &p, nil
}

func (r *personnelRepository) List(ctx context.Context) ([]*model.Personnel, error) {
	iter := r.client.Collection(r.collection()).Documents(ctx)
	defer iter.Stop()

	items := []*model.Personnel{}
	for {
		docSnap, err := iter.Next()
		if err == iterator.Done {
			break
		}
		if err != nil {
			return nil, goerr.Wrap(err, "failed to list personnel", goerr.T(types.TagStorage))
		}

		var p model.Personnel
		if err := docSnap.DataTo(&p); err != nil {
			return nil, goerr.Wrap(err, "failed to decode personnel", goerr.T(types.TagStorage))
		}
		items = append(items, &p)
	}

	return items, nil
}
