package model

import (
	"time"

	"github.com/hotelops-lab/upkeep/pkg/domain/types"
)

// Personnel represents a technician who can be assigned to an
// intervention. Records come from the roster config or from the
// optional Slack sync worker.
type Personnel struct {
	ID        types.PersonnelID
	Name      string
	Email     string
	Role      string
	SyncedAt  time.Time
	CreatedAt time.Time
	UpdatedAt time.Time
}
