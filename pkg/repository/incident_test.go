package repository_test

import (
	"context"
	"testing"
	"time"

	"github.com/m-mizutani/gt"

	"github.com/hotelops-lab/upkeep/pkg/domain/interfaces"
	"github.com/hotelops-lab/upkeep/pkg/domain/model"
	"github.com/hotelops-lab/upkeep/pkg/domain/types"
	"github.com/hotelops-lab/upkeep/pkg/repository/memory"
)

func runIncidentRepositoryTest(t *testing.T, newRepo func(t *testing.T) interfaces.Repository) {
	t.Helper()

	newIncident := func(equipmentID types.EquipmentID, status types.IncidentStatus) *model.Incident {
		return &model.Incident{
			EquipmentID: equipmentID,
			Title:       "Compressor rattling",
			Severity:    types.SeverityMedium,
			Status:      status,
			ReportedAt:  time.Now().UTC(),
		}
	}

	t.Run("Create assigns ID and timestamps", func(t *testing.T) {
		repo := newRepo(t)
		ctx := context.Background()

		equipmentID := types.NewEquipmentID()
		created, err := repo.Incident().Create(ctx, newIncident(equipmentID, types.IncidentStatusOpen))
		gt.NoError(t, err).Required()

		gt.Value(t, created.ID).NotEqual(types.IncidentID(""))
		gt.Value(t, created.EquipmentID).Equal(equipmentID)
		gt.Value(t, created.Status).Equal(types.IncidentStatusOpen)
		gt.B(t, created.CreatedAt.IsZero()).False()
	})

	t.Run("Get returns not_found for unknown ID", func(t *testing.T) {
		repo := newRepo(t)
		ctx := context.Background()

		_, err := repo.Incident().Get(ctx, types.NewIncidentID())
		gt.Error(t, err)
		gt.B(t, types.IsNotFound(err)).True()
	})

	t.Run("Update replaces the status", func(t *testing.T) {
		repo := newRepo(t)
		ctx := context.Background()

		created, err := repo.Incident().Create(ctx, newIncident(types.NewEquipmentID(), types.IncidentStatusOpen))
		gt.NoError(t, err).Required()

		created.Status = types.IncidentStatusInProgress
		updated, err := repo.Incident().Update(ctx, created)
		gt.NoError(t, err).Required()

		gt.Value(t, updated.Status).Equal(types.IncidentStatusInProgress)

		got, err := repo.Incident().Get(ctx, created.ID)
		gt.NoError(t, err).Required()
		gt.Value(t, got.Status).Equal(types.IncidentStatusInProgress)
	})

	t.Run("ListByEquipment returns incidents of one equipment only", func(t *testing.T) {
		repo := newRepo(t)
		ctx := context.Background()

		target := types.NewEquipmentID()
		other := types.NewEquipmentID()

		for i := 0; i < 2; i++ {
			_, err := repo.Incident().Create(ctx, newIncident(target, types.IncidentStatusOpen))
			gt.NoError(t, err).Required()
		}
		_, err := repo.Incident().Create(ctx, newIncident(other, types.IncidentStatusOpen))
		gt.NoError(t, err).Required()

		incidents, err := repo.Incident().ListByEquipment(ctx, target)
		gt.NoError(t, err).Required()
		gt.Array(t, incidents).Length(2)
		for _, i := range incidents {
			gt.Value(t, i.EquipmentID).Equal(target)
		}
	})

	t.Run("ListOpenByEquipment excludes closed incidents", func(t *testing.T) {
		repo := newRepo(t)
		ctx := context.Background()

		equipmentID := types.NewEquipmentID()
		_, err := repo.Incident().Create(ctx, newIncident(equipmentID, types.IncidentStatusOpen))
		gt.NoError(t, err).Required()
		_, err = repo.Incident().Create(ctx, newIncident(equipmentID, types.IncidentStatusInProgress))
		gt.NoError(t, err).Required()
		_, err = repo.Incident().Create(ctx, newIncident(equipmentID, types.IncidentStatusClosed))
		gt.NoError(t, err).Required()

		open, err := repo.Incident().ListOpenByEquipment(ctx, equipmentID)
		gt.NoError(t, err).Required()
		gt.Array(t, open).Length(2)
		for _, i := range open {
			gt.B(t, i.IsOpen()).True()
		}
	})

	t.Run("ListOpen returns open incidents across equipments", func(t *testing.T) {
		repo := newRepo(t)
		ctx := context.Background()

		_, err := repo.Incident().Create(ctx, newIncident(types.NewEquipmentID(), types.IncidentStatusOpen))
		gt.NoError(t, err).Required()
		_, err = repo.Incident().Create(ctx, newIncident(types.NewEquipmentID(), types.IncidentStatusClosed))
		gt.NoError(t, err).Required()

		open, err := repo.Incident().ListOpen(ctx)
		gt.NoError(t, err).Required()
		gt.Array(t, open).Length(1)
		gt.Value(t, open[0].Status).Equal(types.IncidentStatusOpen)
	})
}

func TestMemoryIncidentRepository(t *testing.T) {
	runIncidentRepositoryTest(t, func(t *testing.T) interfaces.Repository {
		return memory.New()
	})
}

func TestFirestoreIncidentRepository(t *testing.T) {
	runIncidentRepositoryTest(t, newFirestoreRepository)
}
