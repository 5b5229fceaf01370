package types

import "fmt"

// EquipmentStatus represents the operational status of an equipment
type EquipmentStatus string

const (
	EquipmentStatusFunctional       EquipmentStatus = "FUNCTIONAL"
	EquipmentStatusUnderMaintenance EquipmentStatus = "UNDER_MAINTENANCE"
	EquipmentStatusOutOfService     EquipmentStatus = "OUT_OF_SERVICE"
	EquipmentStatusFaulty           EquipmentStatus = "FAULTY"
)

// AllEquipmentStatuses returns all valid equipment statuses
func AllEquipmentStatuses() []EquipmentStatus {
	return []EquipmentStatus{
		EquipmentStatusFunctional,
		EquipmentStatusUnderMaintenance,
		EquipmentStatusOutOfService,
		EquipmentStatusFaulty,
	}
}

// IsValid checks if the equipment status is valid
func (s EquipmentStatus) IsValid() bool {
	switch s {
	case EquipmentStatusFunctional,
		EquipmentStatusUnderMaintenance,
		EquipmentStatusOutOfService,
		EquipmentStatusFaulty:
		return true
	default:
		return false
	}
}

// String returns the string representation of the equipment status
func (s EquipmentStatus) String() string {
	return string(s)
}

// ParseEquipmentStatus parses a string into an EquipmentStatus
func ParseEquipmentStatus(s string) (EquipmentStatus, error) {
	status := EquipmentStatus(s)
	if !status.IsValid() {
		return "", fmt.Errorf("invalid equipment status: %s", s)
	}
	return status, nil
}
