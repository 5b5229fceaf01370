package repository_test

import (
	"context"
	"testing"

	"github.com/m-mizutani/gt"

	"github.com/hotelops-lab/upkeep/pkg/domain/interfaces"
	"github.com/hotelops-lab/upkeep/pkg/domain/model"
	"github.com/hotelops-lab/upkeep/pkg/domain/types"
	"github.com/hotelops-lab/upkeep/pkg/repository/memory"
)

func runEquipmentRepositoryTest(t *testing.T, newRepo func(t *testing.T) interfaces.Repository) {
	t.Helper()

	t.Run("Create assigns ID and timestamps", func(t *testing.T) {
		repo := newRepo(t)
		ctx := context.Background()

		created, err := repo.Equipment().Create(ctx, &model.Equipment{
			Name:     "Rooftop HVAC Unit 3",
			Category: "hvac",
			Location: "roof-north",
			Status:   types.EquipmentStatusFunctional,
		})
		gt.NoError(t, err).Required()

		gt.Value(t, created.ID).NotEqual(types.EquipmentID(""))
		gt.Value(t, created.Name).Equal("Rooftop HVAC Unit 3")
		gt.Value(t, created.Status).Equal(types.EquipmentStatusFunctional)
		gt.B(t, created.CreatedAt.IsZero()).False()
		gt.B(t, created.UpdatedAt.IsZero()).False()
	})

	t.Run("Get retrieves a created equipment", func(t *testing.T) {
		repo := newRepo(t)
		ctx := context.Background()

		created, err := repo.Equipment().Create(ctx, &model.Equipment{
			Name:     "Walk-in Freezer",
			Category: "refrigeration",
			Location: "kitchen",
			Status:   types.EquipmentStatusFunctional,
		})
		gt.NoError(t, err).Required()

		got, err := repo.Equipment().Get(ctx, created.ID)
		gt.NoError(t, err).Required()

		gt.Value(t, got.ID).Equal(created.ID)
		gt.Value(t, got.Name).Equal(created.Name)
		gt.Value(t, got.Category).Equal(created.Category)
	})

	t.Run("Get returns not_found for unknown ID", func(t *testing.T) {
		repo := newRepo(t)
		ctx := context.Background()

		_, err := repo.Equipment().Get(ctx, types.NewEquipmentID())
		gt.Error(t, err)
		gt.B(t, types.IsNotFound(err)).True()
	})

	t.Run("List returns all equipments", func(t *testing.T) {
		repo := newRepo(t)
		ctx := context.Background()

		for _, name := range []string{"Elevator A", "Elevator B", "Boiler"} {
			_, err := repo.Equipment().Create(ctx, &model.Equipment{
				Name:   name,
				Status: types.EquipmentStatusFunctional,
			})
			gt.NoError(t, err).Required()
		}

		items, err := repo.Equipment().List(ctx)
		gt.NoError(t, err).Required()
		gt.Array(t, items).Length(3)
	})

	t.Run("Update replaces fields and keeps CreatedAt", func(t *testing.T) {
		repo := newRepo(t)
		ctx := context.Background()

		created, err := repo.Equipment().Create(ctx, &model.Equipment{
			Name:   "Dishwasher",
			Status: types.EquipmentStatusFunctional,
		})
		gt.NoError(t, err).Required()

		created.Status = types.EquipmentStatusFaulty
		created.Location = "kitchen-east"
		updated, err := repo.Equipment().Update(ctx, created)
		gt.NoError(t, err).Required()

		gt.Value(t, updated.Status).Equal(types.EquipmentStatusFaulty)
		gt.Value(t, updated.Location).Equal("kitchen-east")
		gt.Value(t, updated.CreatedAt).Equal(created.CreatedAt)
	})

	t.Run("Update returns not_found for unknown ID", func(t *testing.T) {
		repo := newRepo(t)
		ctx := context.Background()

		_, err := repo.Equipment().Update(ctx, &model.Equipment{
			ID:     types.NewEquipmentID(),
			Name:   "Ghost",
			Status: types.EquipmentStatusFunctional,
		})
		gt.Error(t, err)
		gt.B(t, types.IsNotFound(err)).True()
	})

	t.Run("Delete removes the equipment", func(t *testing.T) {
		repo := newRepo(t)
		ctx := context.Background()

		created, err := repo.Equipment().Create(ctx, &model.Equipment{
			Name:   "Ice Machine",
			Status: types.EquipmentStatusFunctional,
		})
		gt.NoError(t, err).Required()

		gt.NoError(t, repo.Equipment().Delete(ctx, created.ID)).Required()

		_, err = repo.Equipment().Get(ctx, created.ID)
		gt.Error(t, err)
		gt.B(t, types.IsNotFound(err)).True()
	})

	t.Run("Delete returns not_found for unknown ID", func(t *testing.T) {
		repo := newRepo(t)
		ctx := context.Background()

		err := repo.Equipment().Delete(ctx, types.NewEquipmentID())
		gt.Error(t, err)
		gt.B(t, types.IsNotFound(err)).True()
	})
}

func TestMemoryEquipmentRepository(t *testing.T) {
	runEquipmentRepositoryTest(t, func(t *testing.T) interfaces.Repository {
		return memory.New()
	})
}

func TestFirestoreEquipmentRepository(t *testing.T) {
	runEquipmentRepositoryTest(t, newFirestoreRepository)
}
