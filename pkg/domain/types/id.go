package types

import "github.com/google/uuid"

// EquipmentID identifies a tracked physical asset
type EquipmentID string

// NewEquipmentID generates a new random equipment ID
func NewEquipmentID() EquipmentID {
	return EquipmentID(uuid.NewString())
}

func (id EquipmentID) String() string { return string(id) }

// IncidentID identifies a reported fault against one equipment
type IncidentID string

// NewIncidentID generates a new random incident ID
func NewIncidentID() IncidentID {
	return IncidentID(uuid.NewString())
}

func (id IncidentID) String() string { return string(id) }

// InterventionID identifies a corrective action against one incident
type InterventionID string

// NewInterventionID generates a new random intervention ID
func NewInterventionID() InterventionID {
	return InterventionID(uuid.NewString())
}

func (id InterventionID) String() string { return string(id) }

// PersonnelID identifies a technician in the personnel directory
type PersonnelID string

func (id PersonnelID) String() string { return string(id) }
