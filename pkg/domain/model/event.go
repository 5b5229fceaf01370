package model

import (
	"time"

	"github.com/hotelops-lab/upkeep/pkg/domain/types"
)

// EventKind identifies a domain event emitted by the lifecycle
// coordinator. Events are fire-and-forget; lifecycle correctness never
// depends on their delivery.
type EventKind string

const (
	EventIncidentOpened         EventKind = "incident_opened"
	EventIncidentClosed         EventKind = "incident_closed"
	EventEquipmentStatusChanged EventKind = "equipment_status_changed"
	EventInterventionScheduled  EventKind = "intervention_scheduled"
	EventInterventionCompleted  EventKind = "intervention_completed"
	EventInterventionCancelled  EventKind = "intervention_cancelled"
)

// Event is a lifecycle notification for reporting and UI layers
type Event struct {
	Kind           EventKind
	EquipmentID    types.EquipmentID
	IncidentID     types.IncidentID
	InterventionID types.InterventionID
	EquipmentName  string
	Title          string
	Detail         string
	OccurredAt     time.Time
}
