package usecase

import (
	"context"
	"time"

	"github.com/m-mizutani/goerr/v2"

	"github.com/hotelops-lab/upkeep/pkg/domain/interfaces"
	"github.com/hotelops-lab/upkeep/pkg/domain/model"
	"github.com/hotelops-lab/upkeep/pkg/domain/types"
	"github.com/hotelops-lab/upkeep/pkg/utils/logging"
)

// IncidentUseCase tracks reported faults and drives the incident side
// of the lifecycle cascade
type IncidentUseCase struct {
	repo  interfaces.Repository
	coord *coordinator
}

// Report records a new fault against an equipment and cascades the
// equipment to Faulty. The incident starts Open.
func (uc *IncidentUseCase) Report(ctx context.Context, equipmentID types.EquipmentID, title, description string, severity types.Severity) (*model.Incident, error) {
	if title == "" {
		return nil, goerr.New("incident title is required", goerr.T(types.TagValidation))
	}
	if !severity.IsValid() {
		return nil, goerr.New("invalid severity",
			goerr.T(types.TagValidation), goerr.V("severity", severity))
	}

	eq, err := uc.repo.Equipment().Get(ctx, equipmentID)
	if err != nil {
		return nil, goerr.Wrap(err, "failed to get equipment", goerr.V(EquipmentIDKey, equipmentID))
	}

	now := time.Now().UTC()
	incident := &model.Incident{
		EquipmentID: equipmentID,
		Title:       title,
		Description: description,
		Severity:    severity,
		Status:      types.IncidentStatusOpen,
		ReportedAt:  now,
	}

	var created *model.Incident
	if err := uc.coord.retryStep(ctx, "incident", func(ctx context.Context) error {
		i, err := uc.repo.Incident().Create(ctx, incident)
		if err != nil {
			return err
		}
		created = i
		return nil
	}); err != nil {
		return nil, err
	}

	// Equipment write follows the durable incident write so the
	// recompute observes the new open incident
	if err := uc.coord.recomputeEquipmentStatus(ctx, equipmentID); err != nil {
		return nil, err
	}

	uc.coord.emit(ctx, &model.Event{
		Kind:          model.EventIncidentOpened,
		EquipmentID:   equipmentID,
		IncidentID:    created.ID,
		EquipmentName: eq.Name,
		Title:         created.Title,
		Detail:        severity.String(),
	})

	return created, nil
}

func (uc *IncidentUseCase) Get(ctx context.Context, id types.IncidentID) (*model.Incident, error) {
	return uc.repo.Incident().Get(ctx, id)
}

func (uc *IncidentUseCase) ListByEquipment(ctx context.Context, equipmentID types.EquipmentID) ([]*model.Incident, error) {
	return uc.repo.Incident().ListByEquipment(ctx, equipmentID)
}

func (uc *IncidentUseCase) ListOpen(ctx context.Context) ([]*model.Incident, error) {
	return uc.repo.Incident().ListOpen(ctx)
}

// Close is the operator override path. The normal route to a closed
// incident is completing its intervention; an operator closing one
// directly (wrong report, duplicate, written-off repair) is logged
// distinctly so the audit trail shows it was not a cascade.
func (uc *IncidentUseCase) Close(ctx context.Context, id types.IncidentID) (*model.Incident, error) {
	incident, err := uc.repo.Incident().Get(ctx, id)
	if err != nil {
		return nil, goerr.Wrap(err, "failed to get incident", goerr.V(IncidentIDKey, id))
	}

	if incident.Status == types.IncidentStatusClosed {
		return nil, goerr.Wrap(ErrInvalidTransition, "incident is already closed",
			goerr.V(IncidentIDKey, id))
	}

	logging.From(ctx).Info("incident closed by operator override",
		IncidentIDKey, id,
		EquipmentIDKey, incident.EquipmentID,
		"operator_override", true,
	)

	incident.Status = types.IncidentStatusClosed
	updated, err := uc.repo.Incident().Update(ctx, incident)
	if err != nil {
		return nil, goerr.Wrap(err, "failed to close incident", goerr.V(IncidentIDKey, id))
	}

	if err := uc.coord.recomputeEquipmentStatus(ctx, incident.EquipmentID); err != nil {
		return nil, err
	}

	uc.coord.emit(ctx, &model.Event{
		Kind:        model.EventIncidentClosed,
		EquipmentID: updated.EquipmentID,
		IncidentID:  updated.ID,
		Title:       updated.Title,
		Detail:      "operator override",
	})

	return updated, nil
}

// MarkInProgress moves an Open incident to InProgress. The coordinator
// calls this implicitly when the first intervention is scheduled; the
// direct path rejects any other starting state.
func (uc *IncidentUseCase) MarkInProgress(ctx context.Context, id types.IncidentID) (*model.Incident, error) {
	incident, err := uc.repo.Incident().Get(ctx, id)
	if err != nil {
		return nil, goerr.Wrap(err, "failed to get incident", goerr.V(IncidentIDKey, id))
	}

	if incident.Status != types.IncidentStatusOpen {
		return nil, goerr.Wrap(ErrInvalidTransition, "incident cannot move to InProgress",
			goerr.V(IncidentIDKey, id),
			goerr.V("status", incident.Status))
	}

	incident.Status = types.IncidentStatusInProgress
	updated, err := uc.repo.Incident().Update(ctx, incident)
	if err != nil {
		return nil, goerr.Wrap(err, "failed to update incident", goerr.V(IncidentIDKey, id))
	}

	return updated, nil
}
