package model

import (
	"time"

	"github.com/hotelops-lab/upkeep/pkg/domain/types"
)

// Equipment represents a tracked physical asset (HVAC unit, appliance,
// kitchen hardware). Its status is owned by the lifecycle coordinator
// while any open incident references it.
type Equipment struct {
	ID          types.EquipmentID
	Name        string
	Category    string
	Location    string
	Description string
	Status      types.EquipmentStatus
	CreatedAt   time.Time
	UpdatedAt   time.Time
}

// EquipmentPatch carries the fields an update may merge into an
// existing equipment. Nil fields are left untouched.
type EquipmentPatch struct {
	Name        *string
	Category    *string
	Location    *string
	Description *string
	Status      *types.EquipmentStatus
}

// Apply merges the patch into e and reports whether anything changed
func (p *EquipmentPatch) Apply(e *Equipment) bool {
	changed := false
	if p.Name != nil && *p.Name != e.Name {
		e.Name = *p.Name
		changed = true
	}
	if p.Category != nil && *p.Category != e.Category {
		e.Category = *p.Category
		changed = true
	}
	if p.Location != nil && *p.Location != e.Location {
		e.Location = *p.Location
		changed = true
	}
	if p.Description != nil && *p.Description != e.Description {
		e.Description = *p.Description
		changed = true
	}
	if p.Status != nil && *p.Status != e.Status {
		e.Status = *p.Status
		changed = true
	}
	return changed
}
