package memory

import (
	"github.com/hotelops-lab/upkeep/pkg/domain/interfaces"
)

// Repository is an alias for Memory to match the pattern
type Repository = Memory

// Memory is the in-memory repository used by tests and development
// mode. All sub-repositories guard their maps with their own mutex and
// hand out deep copies, so callers can never mutate stored state
// behind the repository's back.
type Memory struct {
	equipment    *equipmentRepository
	incident     *incidentRepository
	intervention *interventionRepository
	personnel    *personnelRepository
}

var _ interfaces.Repository = &Memory{}

func New() *Memory {
	return &Memory{
		equipment:    newEquipmentRepository(),
		incident:     newIncidentRepository(),
		intervention: newInterventionRepository(),
		personnel:    newPersonnelRepository(),
	}
}

func (m *Memory) Equipment() interfaces.EquipmentRepository {
	return m.equipment
}

func (m *Memory) Incident() interfaces.IncidentRepository {
	return m.incident
}

func (m *Memory) Intervention() interfaces.InterventionRepository {
	return m.intervention
}

func (m *Memory) Personnel() interfaces.PersonnelRepository {
	return m.personnel
}

func (m *Memory) Close() error {
	return nil
}
