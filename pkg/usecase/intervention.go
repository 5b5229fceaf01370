package usecase

import (
	"context"
	"time"

	"github.com/m-mizutani/goerr/v2"

	"github.com/hotelops-lab/upkeep/pkg/domain/interfaces"
	"github.com/hotelops-lab/upkeep/pkg/domain/model"
	"github.com/hotelops-lab/upkeep/pkg/domain/types"
	"github.com/hotelops-lab/upkeep/pkg/service/directory"
)

// InterventionUseCase schedules and progresses corrective actions.
// Completing or cancelling one runs the full cascade through the
// coordinator.
type InterventionUseCase struct {
	repo      interfaces.Repository
	coord     *coordinator
	directory directory.Directory
}

// ScheduleInput carries the fields for a new intervention
type ScheduleInput struct {
	IncidentID  types.IncidentID
	PersonnelID types.PersonnelID
	ScheduledAt time.Time
	Description string
}

// Schedule creates a Planned intervention against an open incident.
// The storage layer atomically rejects a second active intervention on
// the same incident; on success the cascade moves an Open incident to
// InProgress and the equipment to UnderMaintenance.
func (uc *InterventionUseCase) Schedule(ctx context.Context, input ScheduleInput) (*model.Intervention, error) {
	if input.ScheduledAt.IsZero() {
		return nil, goerr.New("scheduled date is required", goerr.T(types.TagValidation))
	}

	incident, err := uc.repo.Incident().Get(ctx, input.IncidentID)
	if err != nil {
		return nil, goerr.Wrap(err, "failed to get incident", goerr.V(IncidentIDKey, input.IncidentID))
	}
	if !incident.Status.IsOpen() {
		return nil, goerr.Wrap(ErrInvalidTransition, "cannot schedule intervention on a closed incident",
			goerr.V(IncidentIDKey, input.IncidentID),
			goerr.V("status", incident.Status))
	}

	personnel, err := uc.directory.GetPersonnel(ctx, input.PersonnelID)
	if err != nil {
		return nil, goerr.Wrap(err, "failed to validate personnel", goerr.V(PersonnelIDKey, input.PersonnelID))
	}

	created, err := uc.repo.Intervention().Create(ctx, &model.Intervention{
		IncidentID:  input.IncidentID,
		PersonnelID: personnel.ID,
		ScheduledAt: input.ScheduledAt.UTC(),
		Description: input.Description,
		Status:      types.InterventionStatusPlanned,
	})
	if err != nil {
		return nil, goerr.Wrap(err, "failed to create intervention", goerr.V(IncidentIDKey, input.IncidentID))
	}

	if _, err := uc.coord.markIncidentInProgress(ctx, input.IncidentID); err != nil {
		return nil, err
	}
	if err := uc.coord.recomputeEquipmentStatus(ctx, incident.EquipmentID); err != nil {
		return nil, err
	}

	uc.coord.emit(ctx, &model.Event{
		Kind:           model.EventInterventionScheduled,
		EquipmentID:    incident.EquipmentID,
		IncidentID:     incident.ID,
		InterventionID: created.ID,
		Title:          incident.Title,
		Detail:         personnel.Name,
	})

	return created, nil
}

func (uc *InterventionUseCase) Get(ctx context.Context, id types.InterventionID) (*model.Intervention, error) {
	return uc.repo.Intervention().Get(ctx, id)
}

func (uc *InterventionUseCase) ListByIncident(ctx context.Context, incidentID types.IncidentID) ([]*model.Intervention, error) {
	return uc.repo.Intervention().ListByIncident(ctx, incidentID)
}

// Start moves a Planned intervention to InProgress
func (uc *InterventionUseCase) Start(ctx context.Context, id types.InterventionID) (*model.Intervention, error) {
	iv, err := uc.repo.Intervention().Get(ctx, id)
	if err != nil {
		return nil, goerr.Wrap(err, "failed to get intervention", goerr.V(InterventionIDKey, id))
	}

	if iv.Status == types.InterventionStatusInProgress {
		return iv, goerr.Wrap(ErrAlreadyApplied, "intervention already started",
			goerr.V(InterventionIDKey, id))
	}
	if !iv.Status.CanTransitionTo(types.InterventionStatusInProgress) {
		return nil, goerr.Wrap(ErrInvalidTransition, "intervention cannot start",
			goerr.V(InterventionIDKey, id),
			goerr.V("status", iv.Status))
	}

	iv.Status = types.InterventionStatusInProgress
	updated, err := uc.repo.Intervention().Update(ctx, iv)
	if err != nil {
		return nil, goerr.Wrap(err, "failed to start intervention", goerr.V(InterventionIDKey, id))
	}

	return updated, nil
}

// Complete finishes an InProgress intervention and runs the success
// cascade: intervention Completed, incident Closed, equipment
// recomputed from the remaining open incidents. Re-invoking it on a
// Completed intervention re-runs the idempotent cascade steps and
// reports an idempotent tagged error alongside the final state, so a
// retried trigger converges instead of failing.
func (uc *InterventionUseCase) Complete(ctx context.Context, id types.InterventionID) (*model.Intervention, error) {
	iv, err := uc.repo.Intervention().Get(ctx, id)
	if err != nil {
		return nil, goerr.Wrap(err, "failed to get intervention", goerr.V(InterventionIDKey, id))
	}

	incidentID := iv.IncidentID

	switch iv.Status {
	case types.InterventionStatusCompleted:
		// The intervention write already landed; finish any cascade
		// step a previous attempt may have left unapplied.
		if err := uc.finishCompletionCascade(ctx, incidentID); err != nil {
			return nil, err
		}
		return iv, goerr.Wrap(ErrAlreadyApplied, "intervention already completed",
			goerr.V(InterventionIDKey, id))
	case types.InterventionStatusInProgress:
		// fall through to the cascade
	default:
		return nil, goerr.Wrap(ErrInvalidTransition, "intervention cannot complete",
			goerr.V(InterventionIDKey, id),
			goerr.V("status", iv.Status))
	}

	iv.Status = types.InterventionStatusCompleted
	if err := uc.coord.retryStep(ctx, "intervention", func(ctx context.Context) error {
		updated, err := uc.repo.Intervention().Update(ctx, iv)
		if err != nil {
			return err
		}
		iv = updated
		return nil
	}); err != nil {
		return nil, err
	}

	if err := uc.finishCompletionCascade(ctx, incidentID); err != nil {
		return nil, err
	}

	uc.coord.emit(ctx, &model.Event{
		Kind:           model.EventInterventionCompleted,
		IncidentID:     incidentID,
		InterventionID: iv.ID,
	})

	return iv, nil
}

// finishCompletionCascade applies the incident and equipment effects
// of a completed intervention. Both steps are idempotent, so it can
// re-run after a partial failure.
func (uc *InterventionUseCase) finishCompletionCascade(ctx context.Context, incidentID types.IncidentID) error {
	incident, err := uc.coord.closeIncident(ctx, incidentID)
	if err != nil {
		return err
	}
	return uc.coord.recomputeEquipmentStatus(ctx, incident.EquipmentID)
}

// Cancel abandons a Planned or InProgress intervention. The incident
// keeps its current status and needs a replacement intervention or an
// operator close; the equipment recompute reflects the now-unattended
// incident.
func (uc *InterventionUseCase) Cancel(ctx context.Context, id types.InterventionID) (*model.Intervention, error) {
	iv, err := uc.repo.Intervention().Get(ctx, id)
	if err != nil {
		return nil, goerr.Wrap(err, "failed to get intervention", goerr.V(InterventionIDKey, id))
	}

	switch iv.Status {
	case types.InterventionStatusCancelled:
		return iv, goerr.Wrap(ErrAlreadyApplied, "intervention already cancelled",
			goerr.V(InterventionIDKey, id))
	case types.InterventionStatusCompleted:
		return nil, goerr.Wrap(ErrInvalidTransition, "completed intervention cannot be cancelled",
			goerr.V(InterventionIDKey, id))
	}

	incident, err := uc.repo.Incident().Get(ctx, iv.IncidentID)
	if err != nil {
		return nil, goerr.Wrap(err, "failed to get incident", goerr.V(IncidentIDKey, iv.IncidentID))
	}

	iv.Status = types.InterventionStatusCancelled
	if err := uc.coord.retryStep(ctx, "intervention", func(ctx context.Context) error {
		updated, err := uc.repo.Intervention().Update(ctx, iv)
		if err != nil {
			return err
		}
		iv = updated
		return nil
	}); err != nil {
		return nil, err
	}

	if err := uc.coord.recomputeEquipmentStatus(ctx, incident.EquipmentID); err != nil {
		return nil, err
	}

	uc.coord.emit(ctx, &model.Event{
		Kind:           model.EventInterventionCancelled,
		EquipmentID:    incident.EquipmentID,
		IncidentID:     incident.ID,
		InterventionID: iv.ID,
		Title:          incident.Title,
	})

	return iv, nil
}
