package model

import (
	"time"

	"github.com/hotelops-lab/upkeep/pkg/domain/types"
)

// Intervention represents a scheduled or performed corrective action
// against one incident, owned by one technician
type Intervention struct {
	ID           types.InterventionID
	IncidentID   types.IncidentID
	PersonnelID  types.PersonnelID
	ScheduledAt  time.Time
	Description  string
	Status       types.InterventionStatus
	CreatedAt    time.Time
	UpdatedAt    time.Time
}

// IsActive reports whether this intervention currently owns its
// incident's repair
func (iv *Intervention) IsActive() bool {
	return iv.Status.IsActive()
}
