package interfaces

// Repository defines the interface for data persistence
type Repository interface {
	Equipment() EquipmentRepository
	Incident() IncidentRepository
	Intervention() InterventionRepository
	Personnel() PersonnelRepository

	Close() error
}
