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

type interventionRepository struct {
	client           *firestore.Client
	collectionPrefix string
}

func newInterventionRepository(client *firestore.Client) *interventionRepository {
	return &interventionRepository{client: client}
}

func (r *interventionRepository) collection() string {
	return prefixed(r.collectionPrefix, "interventions")
}

func (r *interventionRepository) markerCollection() string {
	return prefixed(r.collectionPrefix, "active_interventions")
}

// activeMarker is the per-incident claim document. Its existence is
// the unique constraint behind the one-active-intervention invariant:
// a transaction that finds the marker present must not create another
// intervention for the same incident.
type activeMarker struct {
	InterventionID types.InterventionID
	ClaimedAt      time.Time
}

func (r *interventionRepository) Create(ctx context.Context, iv *model.Intervention) (*model.Intervention, error) {
	now := time.Now().UTC()
	created := *iv
	if created.ID == "" {
		created.ID = types.NewInterventionID()
	}
	created.CreatedAt = now
	created.UpdatedAt = now

	markerRef := r.client.Collection(r.markerCollection()).Doc(created.IncidentID.String())
	docRef := r.client.Collection(r.collection()).Doc(created.ID.String())

	err := r.client.RunTransaction(ctx, func(ctx context.Context, tx *firestore.Transaction) error {
		markerSnap, err := tx.Get(markerRef)
		if err != nil && status.Code(err) != codes.NotFound {
			return goerr.Wrap(err, "failed to read active intervention marker", goerr.T(types.TagStorage))
		}
		if err == nil && markerSnap.Exists() {
			var marker activeMarker
			if decodeErr := markerSnap.DataTo(&marker); decodeErr != nil {
				return goerr.Wrap(decodeErr, "failed to decode active intervention marker", goerr.T(types.TagStorage))
			}
			return goerr.Wrap(ErrActiveIntervention, "cannot schedule intervention",
				goerr.V("incident_id", created.IncidentID),
				goerr.V("active_intervention_id", marker.InterventionID))
		}

		if err := tx.Set(markerRef, &activeMarker{
			InterventionID: created.ID,
			ClaimedAt:      now,
		}); err != nil {
			return goerr.Wrap(err, "failed to claim active intervention marker", goerr.T(types.TagStorage))
		}
		return tx.Set(docRef, &created)
	})
	if err != nil {
		if types.IsConflict(err) {
			return nil, err
		}
		return nil, goerr.Wrap(err, "failed to create intervention",
			goerr.T(types.TagStorage), goerr.V("id", created.ID))
	}

	return &created, nil
}

func (r *interventionRepository) Get(ctx context.Context, id types.InterventionID) (*model.Intervention, error) {
	docSnap, err := r.client.Collection(r.collection()).Doc(id.String()).Get(ctx)
	if err != nil {
		if status.Code(err) == codes.NotFound {
			return nil, goerr.Wrap(ErrNotFound, "intervention not found", goerr.V("id", id))
		}
		return nil, goerr.Wrap(err, "failed to get intervention",
			goerr.T(types.TagStorage), goerr.V("id", id))
	}

	var iv model.Intervention
	if err := docSnap.DataTo(&iv); err != nil {
		return nil, goerr.Wrap(err, "failed to decode intervention",
			goerr.T(types.TagStorage), goerr.V("id", id))
	}

	return &iv, nil
}

func (r *interventionRepository) Update(ctx context.Context, iv *model.Intervention) (*model.Intervention, error) {
	docRef := r.client.Collection(r.collection()).Doc(iv.ID.String())
	markerRef := r.client.Collection(r.markerCollection()).Doc(iv.IncidentID.String())

	updated := *iv
	err := r.client.RunTransaction(ctx, func(ctx context.Context, tx *firestore.Transaction) error {
		docSnap, err := tx.Get(docRef)
		if err != nil {
			if status.Code(err) == codes.NotFound {
				return goerr.Wrap(ErrNotFound, "intervention not found", goerr.V("id", iv.ID))
			}
			return goerr.Wrap(err, "failed to get intervention", goerr.T(types.TagStorage))
		}

		var existing model.Intervention
		if err := docSnap.DataTo(&existing); err != nil {
			return goerr.Wrap(err, "failed to decode intervention", goerr.T(types.TagStorage))
		}

		// All transaction reads must happen before the first write
		var marker *activeMarker
		markerSnap, err := tx.Get(markerRef)
		if err != nil && status.Code(err) != codes.NotFound {
			return goerr.Wrap(err, "failed to read active intervention marker", goerr.T(types.TagStorage))
		}
		if err == nil && markerSnap.Exists() {
			marker = &activeMarker{}
			if decodeErr := markerSnap.DataTo(marker); decodeErr != nil {
				return goerr.Wrap(decodeErr, "failed to decode active intervention marker", goerr.T(types.TagStorage))
			}
		}

		updated.CreatedAt = existing.CreatedAt
		updated.UpdatedAt = time.Now().UTC()
		if err := tx.Set(docRef, &updated); err != nil {
			return goerr.Wrap(err, "failed to update intervention", goerr.T(types.TagStorage))
		}

		// A terminal transition releases the incident's active slot so
		// a replacement intervention can be scheduled
		if updated.Status.IsTerminal() && marker != nil && marker.InterventionID == updated.ID {
			if err := tx.Delete(markerRef); err != nil {
				return goerr.Wrap(err, "failed to release active intervention marker", goerr.T(types.TagStorage))
			}
		}
		return nil
	})
	if err != nil {
		if types.IsNotFound(err) {
			return nil, err
		}
		return nil, goerr.Wrap(err, "failed to update intervention",
			goerr.T(types.TagStorage), goerr.V("id", iv.ID))
	}

	return &updated, nil
}

func (r *interventionRepository) ListByIncident(ctx context.Context, incidentID types.IncidentID) ([]*model.Intervention, error) {
	iter := r.client.Collection(r.collection()).
		Where("IncidentID", "==", incidentID.String()).
		Documents(ctx)
	defer iter.Stop()

	interventions := []*model.Intervention{}
	for {
		docSnap, err := iter.Next()
		if err == iterator.Done {
			break
		}
		if err != nil {
			return nil, goerr.Wrap(err, "failed to query interventions", goerr.T(types.TagStorage))
		}

		var iv model.Intervention
		if err := docSnap.DataTo(&iv); err != nil {
			return nil, goerr.Wrap(err, "failed to decode intervention", goerr.T(types.TagStorage))
		}
		interventions = append(interventions, &iv)
	}

	return interventions, nil
}

func (r *interventionRepository) GetActiveByIncident(ctx context.Context, incidentID types.IncidentID) (*model.Intervention, error) {
	markerSnap, err := r.client.Collection(r.markerCollection()).Doc(incidentID.String()).Get(ctx)
	if err != nil {
		if status.Code(err) == codes.NotFound {
			return nil, nil
		}
		return nil, goerr.Wrap(err, "failed to read active intervention marker",
			goerr.T(types.TagStorage), goerr.V("incident_id", incidentID))
	}

	var marker activeMarker
	if err := markerSnap.DataTo(&marker); err != nil {
		return nil, goerr.Wrap(err, "failed to decode active intervention marker", goerr.T(types.TagStorage))
	}

	return r.Get(ctx, marker.InterventionID)
}
