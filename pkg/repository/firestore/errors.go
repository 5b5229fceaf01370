package firestore

import (
	"github.com/m-mizutani/goerr/v2"

	"github.com/hotelops-lab/upkeep/pkg/domain/types"
)

// Sentinel errors shared by the Firestore sub-repositories
var (
	ErrNotFound           = goerr.New("record not found", goerr.T(types.TagNotFound))
	ErrActiveIntervention = goerr.New("incident already has an active intervention", goerr.T(types.TagConflict))
)
