package types_test

import (
	"testing"

	"github.com/m-mizutani/gt"

	"github.com/hotelops-lab/upkeep/pkg/domain/types"
)

func TestIncidentStatusTransitions(t *testing.T) {
	cases := []struct {
		from    types.IncidentStatus
		to      types.IncidentStatus
		allowed bool
	}{
		{types.IncidentStatusOpen, types.IncidentStatusInProgress, true},
		{types.IncidentStatusOpen, types.IncidentStatusClosed, true},
		{types.IncidentStatusInProgress, types.IncidentStatusClosed, true},
		{types.IncidentStatusInProgress, types.IncidentStatusOpen, false},
		{types.IncidentStatusClosed, types.IncidentStatusOpen, false},
		{types.IncidentStatusClosed, types.IncidentStatusInProgress, false},
		{types.IncidentStatusOpen, types.IncidentStatusOpen, false},
	}

	for _, tc := range cases {
		t.Run(tc.from.String()+"_to_"+tc.to.String(), func(t *testing.T) {
			gt.Value(t, tc.from.CanTransitionTo(tc.to)).Equal(tc.allowed)
		})
	}
}

func TestIncidentStatusIsOpen(t *testing.T) {
	gt.B(t, types.IncidentStatusOpen.IsOpen()).True()
	gt.B(t, types.IncidentStatusInProgress.IsOpen()).True()
	gt.B(t, types.IncidentStatusClosed.IsOpen()).False()
}

func TestInterventionStatusTransitions(t *testing.T) {
	cases := []struct {
		from    types.InterventionStatus
		to      types.InterventionStatus
		allowed bool
	}{
		{types.InterventionStatusPlanned, types.InterventionStatusInProgress, true},
		{types.InterventionStatusPlanned, types.InterventionStatusCancelled, true},
		{types.InterventionStatusPlanned, types.InterventionStatusCompleted, false},
		{types.InterventionStatusInProgress, types.InterventionStatusCompleted, true},
		{types.InterventionStatusInProgress, types.InterventionStatusCancelled, true},
		{types.InterventionStatusInProgress, types.InterventionStatusPlanned, false},
		{types.InterventionStatusCompleted, types.InterventionStatusCancelled, false},
		{types.InterventionStatusCancelled, types.InterventionStatusInProgress, false},
	}

	for _, tc := range cases {
		t.Run(tc.from.String()+"_to_"+tc.to.String(), func(t *testing.T) {
			gt.Value(t, tc.from.CanTransitionTo(tc.to)).Equal(tc.allowed)
		})
	}
}

func TestInterventionStatusPredicates(t *testing.T) {
	gt.B(t, types.InterventionStatusPlanned.IsActive()).True()
	gt.B(t, types.InterventionStatusInProgress.IsActive()).True()
	gt.B(t, types.InterventionStatusCompleted.IsActive()).False()
	gt.B(t, types.InterventionStatusCancelled.IsActive()).False()

	gt.B(t, types.InterventionStatusCompleted.IsTerminal()).True()
	gt.B(t, types.InterventionStatusCancelled.IsTerminal()).True()
	gt.B(t, types.InterventionStatusPlanned.IsTerminal()).False()
}

func TestParseStatuses(t *testing.T) {
	t.Run("valid values round-trip", func(t *testing.T) {
		for _, s := range types.AllEquipmentStatuses() {
			parsed, err := types.ParseEquipmentStatus(s.String())
			gt.NoError(t, err)
			gt.Value(t, parsed).Equal(s)
		}
		for _, s := range types.AllSeverities() {
			parsed, err := types.ParseSeverity(s.String())
			gt.NoError(t, err)
			gt.Value(t, parsed).Equal(s)
		}
	})

	t.Run("invalid values are rejected", func(t *testing.T) {
		_, err := types.ParseEquipmentStatus("BROKEN")
		gt.Error(t, err)
		_, err = types.ParseIncidentStatus("open")
		gt.Error(t, err)
		_, err = types.ParseInterventionStatus("")
		gt.Error(t, err)
		_, err = types.ParseSeverity("CRITICAL")
		gt.Error(t, err)
	})
}
