package model

import (
	"time"

	"github.com/hotelops-lab/upkeep/pkg/domain/types"
)

// Incident represents a reported fault against one equipment
type Incident struct {
	ID          types.IncidentID
	EquipmentID types.EquipmentID
	Title       string
	Description string
	Severity    types.Severity
	Status      types.IncidentStatus
	ReportedAt  time.Time
	CreatedAt   time.Time
	UpdatedAt   time.Time
}

// IsOpen reports whether the incident still needs attention
func (i *Incident) IsOpen() bool {
	return i.Status.IsOpen()
}
