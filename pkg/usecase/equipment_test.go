package usecase_test

import (
	"context"
	"testing"

	"github.com/m-mizutani/gt"

	"github.com/hotelops-lab/upkeep/pkg/domain/model"
	"github.com/hotelops-lab/upkeep/pkg/domain/types"
	"github.com/hotelops-lab/upkeep/pkg/usecase"
)

func TestEquipmentCreate(t *testing.T) {
	t.Run("defaults to Functional", func(t *testing.T) {
		uc, _ := newTestUseCases(t)
		eq := createEquipment(t, uc)
		gt.Value(t, eq.Status).Equal(types.EquipmentStatusFunctional)
		gt.Value(t, eq.ID).NotEqual(types.EquipmentID(""))
	})

	t.Run("rejects missing fields", func(t *testing.T) {
		uc, _ := newTestUseCases(t)
		ctx := context.Background()

		cases := []usecase.CreateEquipmentInput{
			{Category: "hvac", Location: "roof"},
			{Name: "Boiler", Location: "basement"},
			{Name: "Boiler", Category: "heating"},
		}
		for _, input := range cases {
			_, err := uc.Equipment.Create(ctx, input)
			gt.Error(t, err)
			gt.B(t, types.IsValidation(err)).True()
		}
	})

	t.Run("rejects an invalid status", func(t *testing.T) {
		uc, _ := newTestUseCases(t)

		_, err := uc.Equipment.Create(context.Background(), usecase.CreateEquipmentInput{
			Name:     "Boiler",
			Category: "heating",
			Location: "basement",
			Status:   types.EquipmentStatus("BROKEN"),
		})
		gt.Error(t, err)
		gt.B(t, types.IsValidation(err)).True()
	})

	t.Run("rejects a category outside the catalog", func(t *testing.T) {
		catalog := &model.Catalog{
			Categories: []model.CatalogEntry{{ID: "hvac", Name: "HVAC"}},
		}
		uc, _ := newTestUseCases(t, usecase.WithCatalog(catalog))

		_, err := uc.Equipment.Create(context.Background(), usecase.CreateEquipmentInput{
			Name:     "Fryer",
			Category: "kitchen",
			Location: "kitchen",
		})
		gt.Error(t, err)
		gt.B(t, types.IsValidation(err)).True()
	})
}

func TestEquipmentUpdate(t *testing.T) {
	t.Run("merges partial patch", func(t *testing.T) {
		uc, _ := newTestUseCases(t)
		eq := createEquipment(t, uc)

		location := "roof-south"
		updated, err := uc.Equipment.Update(context.Background(), eq.ID, model.EquipmentPatch{
			Location: &location,
		})
		gt.NoError(t, err).Required()
		gt.Value(t, updated.Location).Equal("roof-south")
		gt.Value(t, updated.Name).Equal(eq.Name)
	})

	t.Run("allows status edit while no incident is open", func(t *testing.T) {
		uc, _ := newTestUseCases(t)
		eq := createEquipment(t, uc)

		status := types.EquipmentStatusOutOfService
		updated, err := uc.Equipment.Update(context.Background(), eq.ID, model.EquipmentPatch{
			Status: &status,
		})
		gt.NoError(t, err).Required()
		gt.Value(t, updated.Status).Equal(types.EquipmentStatusOutOfService)
	})

	t.Run("rejects status edit while an incident is open", func(t *testing.T) {
		uc, _ := newTestUseCases(t)
		eq := createEquipment(t, uc)
		reportIncident(t, uc, eq.ID)

		status := types.EquipmentStatusFunctional
		_, err := uc.Equipment.Update(context.Background(), eq.ID, model.EquipmentPatch{
			Status: &status,
		})
		gt.Error(t, err)
		gt.B(t, types.IsConflict(err)).True()
	})

	t.Run("returns not_found for unknown equipment", func(t *testing.T) {
		uc, _ := newTestUseCases(t)

		name := "Ghost"
		_, err := uc.Equipment.Update(context.Background(), types.NewEquipmentID(), model.EquipmentPatch{
			Name: &name,
		})
		gt.Error(t, err)
		gt.B(t, types.IsNotFound(err)).True()
	})
}

func TestEquipmentDelete(t *testing.T) {
	t.Run("deletes equipment without incidents", func(t *testing.T) {
		uc, _ := newTestUseCases(t)
		eq := createEquipment(t, uc)

		gt.NoError(t, uc.Equipment.Delete(context.Background(), eq.ID)).Required()

		_, err := uc.Equipment.Get(context.Background(), eq.ID)
		gt.Error(t, err)
		gt.B(t, types.IsNotFound(err)).True()
	})

	t.Run("rejects deletion while an incident is open", func(t *testing.T) {
		uc, _ := newTestUseCases(t)
		eq := createEquipment(t, uc)
		reportIncident(t, uc, eq.ID)

		err := uc.Equipment.Delete(context.Background(), eq.ID)
		gt.Error(t, err)
		gt.B(t, types.IsConflict(err)).True()
	})

	t.Run("allows deletion after all incidents are closed", func(t *testing.T) {
		uc, _ := newTestUseCases(t)
		eq := createEquipment(t, uc)
		incident := reportIncident(t, uc, eq.ID)

		_, err := uc.Incident.Close(context.Background(), incident.ID)
		gt.NoError(t, err).Required()

		gt.NoError(t, uc.Equipment.Delete(context.Background(), eq.ID))
	})
}
