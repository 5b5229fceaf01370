package firestore

import (
	"context"

	"cloud.google.com/go/firestore"
	"github.com/m-mizutani/goerr/v2"

	"github.com/hotelops-lab/upkeep/pkg/domain/interfaces"
)

type Firestore struct {
	client       *firestore.Client
	equipment    *equipmentRepository
	incident     *incidentRepository
	intervention *interventionRepository
	personnel    *personnelRepository
}

var _ interfaces.Repository = &Firestore{}

type Option func(*Firestore)

// WithCollectionPrefix namespaces every collection, mainly for tests
// sharing one project
func WithCollectionPrefix(prefix string) Option {
	return func(f *Firestore) {
		f.equipment.collectionPrefix = prefix
		f.incident.collectionPrefix = prefix
		f.intervention.collectionPrefix = prefix
		f.personnel.collectionPrefix = prefix
	}
}

func New(ctx context.Context, projectID, databaseID string, opts ...Option) (*Firestore, error) {
	var client *firestore.Client
	var err error
	if databaseID != "" {
		client, err = firestore.NewClientWithDatabase(ctx, projectID, databaseID)
	} else {
		client, err = firestore.NewClient(ctx, projectID)
	}
	if err != nil {
		return nil, goerr.Wrap(err, "failed to create firestore client",
			goerr.V("projectID", projectID),
			goerr.V("databaseID", databaseID))
	}

	f := &Firestore{
		client:       client,
		equipment:    newEquipmentRepository(client),
		incident:     newIncidentRepository(client),
		intervention: newInterventionRepository(client),
		personnel:    newPersonnelRepository(client),
	}

	for _, opt := range opts {
		opt(f)
	}

	return f, nil
}

func (f *Firestore) Equipment() interfaces.EquipmentRepository {
	return f.equipment
}

func (f *Firestore) Incident() interfaces.IncidentRepository {
	return f.incident
}

func (f *Firestore) Intervention() interfaces.InterventionRepository {
	return f.intervention
}

func (f *Firestore) Personnel() interfaces.PersonnelRepository {
	return f.personnel
}

func (f *Firestore) Close() error {
	if f.client != nil {
		return f.client.Close()
	}
	return nil
}

func prefixed(prefix, name string) string {
	if prefix != "" {
		return prefix + "_" + name
	}
	return name
}
