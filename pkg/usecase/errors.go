package usecase

import (
	"github.com/m-mizutani/goerr/v2"

	"github.com/hotelops-lab/upkeep/pkg/domain/types"
)

// Sentinel errors for the lifecycle usecases. Each carries the error
// tag the HTTP layer maps to a status code.
var (
	ErrInvalidTransition = goerr.New("state transition not allowed", goerr.T(types.TagInvalidTransition))
	ErrAlreadyApplied    = goerr.New("operation already applied", goerr.T(types.TagIdempotent))
	ErrOpenIncidents     = goerr.New("equipment has open incidents", goerr.T(types.TagConflict))
	ErrStatusOwned       = goerr.New("equipment status is owned by the lifecycle coordinator while incidents are open", goerr.T(types.TagConflict))
)

// Context keys for error values
const (
	EquipmentIDKey    = "equipment_id"
	IncidentIDKey     = "incident_id"
	InterventionIDKey = "intervention_id"
	PersonnelIDKey    = "personnel_id"
)
