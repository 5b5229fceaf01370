package types

import "fmt"

// IncidentStatus represents the status of a reported incident.
// Transitions are monotonic: Open -> InProgress -> Closed. A closed
// incident is never reopened; a recurring fault is a new incident.
type IncidentStatus string

const (
	IncidentStatusOpen       IncidentStatus = "OPEN"
	IncidentStatusInProgress IncidentStatus = "IN_PROGRESS"
	IncidentStatusClosed     IncidentStatus = "CLOSED"
)

// AllIncidentStatuses returns all valid incident statuses
func AllIncidentStatuses() []IncidentStatus {
	return []IncidentStatus{
		IncidentStatusOpen,
		IncidentStatusInProgress,
		IncidentStatusClosed,
	}
}

// IsValid checks if the incident status is valid
func (s IncidentStatus) IsValid() bool {
	switch s {
	case IncidentStatusOpen, IncidentStatusInProgress, IncidentStatusClosed:
		return true
	default:
		return false
	}
}

// IsOpen reports whether the incident still needs attention
func (s IncidentStatus) IsOpen() bool {
	return s == IncidentStatusOpen || s == IncidentStatusInProgress
}

// CanTransitionTo reports whether the status may move to next
func (s IncidentStatus) CanTransitionTo(next IncidentStatus) bool {
	switch s {
	case IncidentStatusOpen:
		return next == IncidentStatusInProgress || next == IncidentStatusClosed
	case IncidentStatusInProgress:
		return next == IncidentStatusClosed
	default:
		return false
	}
}

// String returns the string representation of the incident status
func (s IncidentStatus) String() string {
	return string(s)
}

// ParseIncidentStatus parses a string into an IncidentStatus
func ParseIncidentStatus(s string) (IncidentStatus, error) {
	status := IncidentStatus(s)
	if !status.IsValid() {
		return "", fmt.Errorf("invalid incident status: %s", s)
	}
	return status, nil
}
