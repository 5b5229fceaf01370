package usecase

import (
	"context"
	"time"

	"github.com/m-mizutani/goerr/v2"

	"github.com/hotelops-lab/upkeep/pkg/domain/interfaces"
	"github.com/hotelops-lab/upkeep/pkg/domain/model"
	"github.com/hotelops-lab/upkeep/pkg/domain/types"
	"github.com/hotelops-lab/upkeep/pkg/utils/async"
	"github.com/hotelops-lab/upkeep/pkg/utils/errutil"
	"github.com/hotelops-lab/upkeep/pkg/utils/logging"
)

// maxStepAttempts bounds the retries of one cascade sub-write on
// transient storage failures
const maxStepAttempts = 3

// coordinator applies the multi-entity cascades of the lifecycle
// transition table. Each trigger's writes are applied as one logical
// unit: failed sub-writes are retried, already-applied sub-writes are
// detected by state checks and skipped, so re-invoking a trigger is
// safe.
//
// Transition table (trigger -> effects):
//
//	incident reported        equipment <- recompute (Faulty)
//	intervention scheduled   incident <- InProgress, equipment <- recompute (UnderMaintenance)
//	intervention completed   incident <- Closed, equipment <- recompute
//	intervention cancelled   incident unchanged, equipment <- recompute
//
// Any future cascade rule belongs here, not in a caller.
type coordinator struct {
	repo     interfaces.Repository
	notifier interfaces.Notifier
}

func newCoordinator(repo interfaces.Repository, notifier interfaces.Notifier) *coordinator {
	return &coordinator{repo: repo, notifier: notifier}
}

// retryStep runs one cascade sub-write, retrying transient storage
// failures. Non-storage errors are final and returned as-is. When
// retries are exhausted the error is tagged cascade_failed and names
// the entity that could not be updated, for manual reconciliation.
func (c *coordinator) retryStep(ctx context.Context, entity string, fn func(ctx context.Context) error) error {
	var err error
	for attempt := 1; attempt <= maxStepAttempts; attempt++ {
		err = fn(ctx)
		if err == nil {
			return nil
		}
		if !types.IsStorage(err) {
			return err
		}
		logging.From(ctx).Warn("cascade step failed, retrying",
			"entity", entity,
			"attempt", attempt,
			"error", err.Error(),
		)
	}

	return goerr.Wrap(err, "cascade step failed after retries",
		goerr.T(types.TagCascadeFailed),
		goerr.V("entity", entity),
		goerr.V("attempts", maxStepAttempts))
}

// emit delivers a lifecycle event to the notifier without blocking the
// cascade. Correctness never depends on delivery.
func (c *coordinator) emit(ctx context.Context, ev *model.Event) {
	if c.notifier == nil {
		return
	}
	ev.OccurredAt = time.Now().UTC()
	async.Dispatch(ctx, func(ctx context.Context) error {
		return errutil.Handle(ctx, c.notifier.Notify(ctx, ev), "failed to deliver lifecycle event")
	})
}

// recomputeEquipmentStatus derives the equipment status from its open
// incidents and their active interventions, and writes it when it
// changed. The rule: equipment must never look healthier than its
// worst open incident.
//
//	no open incident                          -> Functional
//	any open incident without an active
//	intervention (unattended fault)           -> Faulty
//	every open incident under repair          -> UnderMaintenance
//
// OutOfService is sticky: decommissioned equipment is excluded from
// the cascade and only leaves that state through a manual update.
func (c *coordinator) recomputeEquipmentStatus(ctx context.Context, equipmentID types.EquipmentID) error {
	var eq *model.Equipment
	if err := c.retryStep(ctx, "equipment", func(ctx context.Context) error {
		e, err := c.repo.Equipment().Get(ctx, equipmentID)
		if err != nil {
			return err
		}
		eq = e
		return nil
	}); err != nil {
		return err
	}

	if eq.Status == types.EquipmentStatusOutOfService {
		return nil
	}

	var open []*model.Incident
	if err := c.retryStep(ctx, "incident", func(ctx context.Context) error {
		incidents, err := c.repo.Incident().ListOpenByEquipment(ctx, equipmentID)
		if err != nil {
			return err
		}
		open = incidents
		return nil
	}); err != nil {
		return err
	}

	target := types.EquipmentStatusFunctional
	if len(open) > 0 {
		target = types.EquipmentStatusUnderMaintenance
		for _, inc := range open {
			var active *model.Intervention
			if err := c.retryStep(ctx, "intervention", func(ctx context.Context) error {
				iv, err := c.repo.Intervention().GetActiveByIncident(ctx, inc.ID)
				if err != nil {
					return err
				}
				active = iv
				return nil
			}); err != nil {
				return err
			}
			if active == nil {
				target = types.EquipmentStatusFaulty
				break
			}
		}
	}

	if eq.Status == target {
		return nil
	}

	previous := eq.Status
	eq.Status = target
	if err := c.retryStep(ctx, "equipment", func(ctx context.Context) error {
		updated, err := c.repo.Equipment().Update(ctx, eq)
		if err != nil {
			return err
		}
		eq = updated
		return nil
	}); err != nil {
		return err
	}

	logging.From(ctx).Info("equipment status recomputed",
		EquipmentIDKey, equipmentID,
		"previous", previous,
		"current", target,
		"open_incidents", len(open),
	)

	c.emit(ctx, &model.Event{
		Kind:          model.EventEquipmentStatusChanged,
		EquipmentID:   equipmentID,
		EquipmentName: eq.Name,
		Detail:        target.String(),
	})

	return nil
}

// closeIncident is the cascade step that closes an incident after its
// intervention completed. An already-closed incident is a no-op, which
// is what makes re-invoking a completed trigger safe.
func (c *coordinator) closeIncident(ctx context.Context, incidentID types.IncidentID) (*model.Incident, error) {
	var incident *model.Incident
	if err := c.retryStep(ctx, "incident", func(ctx context.Context) error {
		i, err := c.repo.Incident().Get(ctx, incidentID)
		if err != nil {
			return err
		}
		incident = i
		return nil
	}); err != nil {
		return nil, err
	}

	if incident.Status == types.IncidentStatusClosed {
		return incident, nil
	}

	incident.Status = types.IncidentStatusClosed
	if err := c.retryStep(ctx, "incident", func(ctx context.Context) error {
		updated, err := c.repo.Incident().Update(ctx, incident)
		if err != nil {
			return err
		}
		incident = updated
		return nil
	}); err != nil {
		return nil, err
	}

	c.emit(ctx, &model.Event{
		Kind:        model.EventIncidentClosed,
		EquipmentID: incident.EquipmentID,
		IncidentID:  incident.ID,
		Title:       incident.Title,
	})

	return incident, nil
}

// markIncidentInProgress is the cascade step that moves an incident to
// InProgress when its first active intervention is scheduled. An
// incident already InProgress is a no-op.
func (c *coordinator) markIncidentInProgress(ctx context.Context, incidentID types.IncidentID) (*model.Incident, error) {
	var incident *model.Incident
	if err := c.retryStep(ctx, "incident", func(ctx context.Context) error {
		i, err := c.repo.Incident().Get(ctx, incidentID)
		if err != nil {
			return err
		}
		incident = i
		return nil
	}); err != nil {
		return nil, err
	}

	switch incident.Status {
	case types.IncidentStatusInProgress:
		return incident, nil
	case types.IncidentStatusOpen:
		// fall through to the write
	default:
		return nil, goerr.Wrap(ErrInvalidTransition, "incident cannot move to InProgress",
			goerr.V(IncidentIDKey, incidentID),
			goerr.V("status", incident.Status))
	}

	incident.Status = types.IncidentStatusInProgress
	if err := c.retryStep(ctx, "incident", func(ctx context.Context) error {
		updated, err := c.repo.Incident().Update(ctx, incident)
		if err != nil {
			return err
		}
		incident = updated
		return nil
	}); err != nil {
		return nil, err
	}

	return incident, nil
}
