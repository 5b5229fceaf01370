package types

import "fmt"

// InterventionStatus represents the status of a corrective intervention
type InterventionStatus string

const (
	InterventionStatusPlanned    InterventionStatus = "PLANNED"
	InterventionStatusInProgress InterventionStatus = "IN_PROGRESS"
	InterventionStatusCompleted  InterventionStatus = "COMPLETED"
	InterventionStatusCancelled  InterventionStatus = "CANCELLED"
)

// AllInterventionStatuses returns all valid intervention statuses
func AllInterventionStatuses() []InterventionStatus {
	return []InterventionStatus{
		InterventionStatusPlanned,
		InterventionStatusInProgress,
		InterventionStatusCompleted,
		InterventionStatusCancelled,
	}
}

// IsValid checks if the intervention status is valid
func (s InterventionStatus) IsValid() bool {
	switch s {
	case InterventionStatusPlanned,
		InterventionStatusInProgress,
		InterventionStatusCompleted,
		InterventionStatusCancelled:
		return true
	default:
		return false
	}
}

// IsActive reports whether the intervention still owns its incident's
// repair. At most one active intervention may exist per incident.
func (s InterventionStatus) IsActive() bool {
	return s == InterventionStatusPlanned || s == InterventionStatusInProgress
}

// IsTerminal reports whether no further transition is allowed
func (s InterventionStatus) IsTerminal() bool {
	return s == InterventionStatusCompleted || s == InterventionStatusCancelled
}

// CanTransitionTo reports whether the status may move to next
func (s InterventionStatus) CanTransitionTo(next InterventionStatus) bool {
	switch s {
	case InterventionStatusPlanned:
		return next == InterventionStatusInProgress || next == InterventionStatusCancelled
	case InterventionStatusInProgress:
		return next == InterventionStatusCompleted || next == InterventionStatusCancelled
	default:
		return false
	}
}

// String returns the string representation of the intervention status
func (s InterventionStatus) String() string {
	return string(s)
}

// ParseInterventionStatus parses a string into an InterventionStatus
func ParseInterventionStatus(s string) (InterventionStatus, error) {
	status := InterventionStatus(s)
	if !status.IsValid() {
		return "", fmt.Errorf("invalid intervention status: %s", s)
	}
	return status, nil
}
