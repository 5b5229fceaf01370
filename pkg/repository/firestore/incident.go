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

type incidentRepository struct {
	client           *firestore.Client
	collectionPrefix string
}

func newIncidentRepository(client *firestore.Client) *incidentRepository {
	return &incidentRepository{client: client}
}

func (r *incidentRepository) collection() string {
	return prefixed(r.collectionPrefix, "incidents")
}

func openStatuses() []string {
	return []string{
		types.IncidentStatusOpen.String(),
		types.IncidentStatusInProgress.String(),
	}
}

func (r *incidentRepository) Create(ctx context.Context, i *model.Incident) (*model.Incident, error) {
	now := time.Now().UTC()
	created := *i
	if created.ID == "" {
		created.ID = types.NewIncidentID()
	}
	created.CreatedAt = now
	created.UpdatedAt = now

	_, err := r.client.Collection(r.collection()).Doc(created.ID.String()).Set(ctx, &created)
	if err != nil {
		return nil, goerr.Wrap(err, "failed to create incident",
			goerr.T(types.TagStorage), goerr.V("id", created.ID))
	}

	return &created, nil
}

func (r *incidentRepository) Get(ctx context.Context, id types.IncidentID) (*model.Incident, error) {
	docSnap, err := r.client.Collection(r.collection()).Doc(id.String()).Get(ctx)
	if err != nil {
		if status.Code(err) == codes.NotFound {
			return nil, goerr.Wrap(ErrNotFound, "incident not found", goerr.V("id", id))
		}
		return nil, goerr.Wrap(err, "failed to get incident",
			goerr.T(types.TagStorage), goerr.V("id", id))
	}

	var i model.Incident
	if err := docSnap.DataTo(&i); err != nil {
		return nil, goerr.Wrap(err, "failed to decode incident",
			goerr.T(types.TagStorage), goerr.V("id", id))
	}

	return &i, nil
}

func (r *incidentRepository) Update(ctx context.Context, i *model.Incident) (*model.Incident, error) {
	docRef := r.client.Collection(r.collection()).Doc(i.ID.String())

	updated := *i
	err := r.client.RunTransaction(ctx, func(ctx context.Context, tx *firestore.Transaction) error {
		docSnap, err := tx.Get(docRef)
		if err != nil {
			if status.Code(err) == codes.NotFound {
				return goerr.Wrap(ErrNotFound, "incident not found", goerr.V("id", i.ID))
			}
			return goerr.Wrap(err, "failed to get incident", goerr.T(types.TagStorage))
		}

		var existing model.Incident
		if err := docSnap.DataTo(&existing); err != nil {
			return goerr.Wrap(err, "failed to decode incident", goerr.T(types.TagStorage))
		}

		updated.CreatedAt = existing.CreatedAt
		updated.UpdatedAt = time.Now().UTC()
		return tx.Set(docRef, &updated)
	})
	if err != nil {
		if types.IsNotFound(err) {
			return nil, err
		}
		return nil, goerr.Wrap(err, "failed to update incident",
			goerr.T(types.TagStorage), goerr.V("id", i.ID))
	}

	return &updated, nil
}

func (r *incidentRepository) queryIncidents(ctx context.Context, query firestore.Query) ([]*model.Incident, error) {
	iter := query.Documents(ctx)
	defer iter.Stop()

	var incidents []*model.Incident
	for {
		docSnap, err := iter.Next()
		if err == iterator.Done {
			break
		}
		if err != nil {
			return nil, goerr.Wrap(err, "failed to query incidents", goerr.T(types.TagStorage))
		}

		var i model.Incident
		if err := docSnap.DataTo(&i); err != nil {
			return nil, goerr.Wrap(err, "failed to decode incident", goerr.T(types.TagStorage))
		}
		incidents = append(incidents, &i)
	}

	if incidents == nil {
		incidents = []*model.Incident{}
	}
	return incidents, nil
}

func (r *incidentRepository) ListByEquipment(ctx context.Context, equipmentID types.EquipmentID) ([]*model.Incident, error) {
	query := r.client.Collection(r.collection()).
		Where("EquipmentID", "==", equipmentID.String())
	return r.queryIncidents(ctx, query)
}

func (r *incidentRepository) ListOpenByEquipment(ctx context.Context, equipmentID types.EquipmentID) ([]*model.Incident, error) {
	query := r.client.Collection(r.collection()).
		Where("EquipmentID", "==", equipmentID.String()).
		Where("Status", "in", openStatuses())
	return r.queryIncidents(ctx, query)
}

func (r *incidentRepository) ListOpen(ctx context.Context) ([]*model.Incident, error) {
	query := r.client.Collection(r.collection()).
		Where("Status", "in", openStatuses())
	return r.queryIncidents(ctx, query)
}
