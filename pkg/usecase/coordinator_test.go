package usecase_test

import (
	"context"
	"testing"

	"github.com/m-mizutani/gt"

	"github.com/hotelops-lab/upkeep/pkg/domain/types"
	"github.com/hotelops-lab/upkeep/pkg/usecase"
)

func TestCascadeRetry(t *testing.T) {
	t.Run("transient storage failures are retried", func(t *testing.T) {
		repo := newFaultyRepository(2)
		uc := usecase.New(repo)

		eq, err := uc.Equipment.Create(context.Background(), usecase.CreateEquipmentInput{
			Name:     "Boiler",
			Category: "heating",
			Location: "basement",
		})
		gt.NoError(t, err).Required()

		// The equipment recompute write fails twice and succeeds on
		// the third attempt
		incident, err := uc.Incident.Report(context.Background(), eq.ID, "Leak", "", types.SeverityHigh)
		gt.NoError(t, err).Required()
		gt.Value(t, incident.Status).Equal(types.IncidentStatusOpen)
		gt.Value(t, equipmentStatus(t, repo, eq.ID)).Equal(types.EquipmentStatusFaulty)
	})

	t.Run("exhausted retries surface a cascade failure naming the entity", func(t *testing.T) {
		repo := newFaultyRepository(0)
		uc := usecase.New(repo)

		eq, err := uc.Equipment.Create(context.Background(), usecase.CreateEquipmentInput{
			Name:     "Boiler",
			Category: "heating",
			Location: "basement",
		})
		gt.NoError(t, err).Required()

		repo.equipment.updateFailures = 10

		_, err = uc.Incident.Report(context.Background(), eq.ID, "Leak", "", types.SeverityHigh)
		gt.Error(t, err)
		gt.B(t, types.IsCascadeFailed(err)).True()
		gt.B(t, types.IsStorage(err)).True()

		// The incident write landed before the equipment step failed;
		// retrying the trigger after the outage must converge.
		open, err := repo.Incident().ListOpenByEquipment(context.Background(), eq.ID)
		gt.NoError(t, err).Required()
		gt.Array(t, open).Length(1)
	})

	t.Run("non-storage errors are not retried", func(t *testing.T) {
		uc, _ := newTestUseCases(t)

		// An unknown equipment is a final error, never a retry loop
		_, err := uc.Incident.Report(context.Background(), types.NewEquipmentID(), "Leak", "", types.SeverityLow)
		gt.Error(t, err)
		gt.B(t, types.IsNotFound(err)).True()
		gt.B(t, types.IsCascadeFailed(err)).False()
	})
}

func TestOutOfServiceIsSticky(t *testing.T) {
	uc, repo := newTestUseCases(t)
	eq := createEquipment(t, uc)

	setOutOfService(t, uc, eq.ID, types.EquipmentStatusOutOfService)

	incident := reportIncident(t, uc, eq.ID)
	gt.Value(t, equipmentStatus(t, repo, eq.ID)).Equal(types.EquipmentStatusOutOfService)

	iv := scheduleIntervention(t, uc, incident.ID)
	gt.Value(t, equipmentStatus(t, repo, eq.ID)).Equal(types.EquipmentStatusOutOfService)

	_, err := uc.Intervention.Start(context.Background(), iv.ID)
	gt.NoError(t, err).Required()
	_, err = uc.Intervention.Complete(context.Background(), iv.ID)
	gt.NoError(t, err).Required()

	// The cascade ran to completion without ever touching the
	// decommissioned equipment
	got, err := repo.Incident().Get(context.Background(), incident.ID)
	gt.NoError(t, err).Required()
	gt.Value(t, got.Status).Equal(types.IncidentStatusClosed)
	gt.Value(t, equipmentStatus(t, repo, eq.ID)).Equal(types.EquipmentStatusOutOfService)
}
