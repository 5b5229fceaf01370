package usecase

import (
	"context"

	"github.com/m-mizutani/goerr/v2"

	"github.com/hotelops-lab/upkeep/pkg/domain/interfaces"
	"github.com/hotelops-lab/upkeep/pkg/domain/model"
	"github.com/hotelops-lab/upkeep/pkg/domain/types"
	"github.com/hotelops-lab/upkeep/pkg/utils/logging"
)

// EquipmentUseCase manages the equipment registry. Status writes
// triggered by incident and intervention transitions go through the
// coordinator; the direct update path only accepts status edits while
// no incident is open.
type EquipmentUseCase struct {
	repo    interfaces.Repository
	coord   *coordinator
	catalog *model.Catalog
}

// checkCatalog validates category and location against the configured
// catalog; a nil catalog leaves both unrestricted
func (uc *EquipmentUseCase) checkCatalog(category, location string) error {
	if uc.catalog == nil {
		return nil
	}
	if !uc.catalog.HasCategory(category) {
		return goerr.New("equipment category is not declared in the catalog",
			goerr.T(types.TagValidation), goerr.V("category", category))
	}
	if !uc.catalog.HasLocation(location) {
		return goerr.New("equipment location is not declared in the catalog",
			goerr.T(types.TagValidation), goerr.V("location", location))
	}
	return nil
}

// CreateEquipmentInput carries the operator-provided fields for a new
// equipment
type CreateEquipmentInput struct {
	Name        string
	Category    string
	Location    string
	Description string
	Status      types.EquipmentStatus
}

func (uc *EquipmentUseCase) Create(ctx context.Context, input CreateEquipmentInput) (*model.Equipment, error) {
	if input.Name == "" {
		return nil, goerr.New("equipment name is required", goerr.T(types.TagValidation))
	}
	if input.Category == "" {
		return nil, goerr.New("equipment category is required", goerr.T(types.TagValidation))
	}
	if input.Location == "" {
		return nil, goerr.New("equipment location is required", goerr.T(types.TagValidation))
	}

	if err := uc.checkCatalog(input.Category, input.Location); err != nil {
		return nil, err
	}

	status := input.Status
	if status == "" {
		status = types.EquipmentStatusFunctional
	}
	if !status.IsValid() {
		return nil, goerr.New("invalid equipment status",
			goerr.T(types.TagValidation), goerr.V("status", input.Status))
	}

	created, err := uc.repo.Equipment().Create(ctx, &model.Equipment{
		Name:        input.Name,
		Category:    input.Category,
		Location:    input.Location,
		Description: input.Description,
		Status:      status,
	})
	if err != nil {
		return nil, goerr.Wrap(err, "failed to create equipment")
	}

	return created, nil
}

func (uc *EquipmentUseCase) Get(ctx context.Context, id types.EquipmentID) (*model.Equipment, error) {
	return uc.repo.Equipment().Get(ctx, id)
}

func (uc *EquipmentUseCase) List(ctx context.Context) ([]*model.Equipment, error) {
	return uc.repo.Equipment().List(ctx)
}

// Update merges a partial patch into an equipment. A status edit is a
// manual correction path and is rejected while any incident on the
// equipment is open: during that window the status belongs to the
// coordinator.
func (uc *EquipmentUseCase) Update(ctx context.Context, id types.EquipmentID, patch model.EquipmentPatch) (*model.Equipment, error) {
	eq, err := uc.repo.Equipment().Get(ctx, id)
	if err != nil {
		return nil, goerr.Wrap(err, "failed to get equipment", goerr.V(EquipmentIDKey, id))
	}

	if patch.Status != nil {
		if !patch.Status.IsValid() {
			return nil, goerr.New("invalid equipment status",
				goerr.T(types.TagValidation), goerr.V("status", *patch.Status))
		}
		if *patch.Status != eq.Status {
			open, err := uc.repo.Incident().ListOpenByEquipment(ctx, id)
			if err != nil {
				return nil, goerr.Wrap(err, "failed to list open incidents", goerr.V(EquipmentIDKey, id))
			}
			if len(open) > 0 {
				return nil, goerr.Wrap(ErrStatusOwned, "direct status edit rejected",
					goerr.V(EquipmentIDKey, id),
					goerr.V("open_incidents", len(open)))
			}
			logging.From(ctx).Info("manual equipment status edit",
				EquipmentIDKey, id,
				"previous", eq.Status,
				"requested", *patch.Status,
			)
		}
	}

	if patch.Category != nil || patch.Location != nil {
		category := eq.Category
		if patch.Category != nil {
			category = *patch.Category
		}
		location := eq.Location
		if patch.Location != nil {
			location = *patch.Location
		}
		if err := uc.checkCatalog(category, location); err != nil {
			return nil, err
		}
	}

	if !patch.Apply(eq) {
		return eq, nil
	}

	updated, err := uc.repo.Equipment().Update(ctx, eq)
	if err != nil {
		return nil, goerr.Wrap(err, "failed to update equipment", goerr.V(EquipmentIDKey, id))
	}

	return updated, nil
}

// Delete removes an equipment. Rejected while any incident referencing
// it is not Closed.
func (uc *EquipmentUseCase) Delete(ctx context.Context, id types.EquipmentID) error {
	if _, err := uc.repo.Equipment().Get(ctx, id); err != nil {
		return goerr.Wrap(err, "failed to get equipment", goerr.V(EquipmentIDKey, id))
	}

	incidents, err := uc.repo.Incident().ListByEquipment(ctx, id)
	if err != nil {
		return goerr.Wrap(err, "failed to list incidents", goerr.V(EquipmentIDKey, id))
	}
	for _, inc := range incidents {
		if inc.Status != types.IncidentStatusClosed {
			return goerr.Wrap(ErrOpenIncidents, "cannot delete equipment",
				goerr.V(EquipmentIDKey, id),
				goerr.V(IncidentIDKey, inc.ID),
				goerr.V("incident_status", inc.Status))
		}
	}

	if err := uc.repo.Equipment().Delete(ctx, id); err != nil {
		return goerr.Wrap(err, "failed to delete equipment", goerr.V(EquipmentIDKey, id))
	}

	return nil
}
