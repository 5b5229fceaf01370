package slack

import (
	"context"

	"github.com/hotelops-lab/upkeep/pkg/domain/interfaces"
	"github.com/hotelops-lab/upkeep/pkg/domain/model"
)

// Service provides the interface to the Slack API used by the
// lifecycle engine: event notification and the user listing behind the
// personnel sync worker.
type Service interface {
	// Notify posts a lifecycle event message to the configured
	// maintenance channel
	Notify(ctx context.Context, ev *model.Event) error

	// ListUsers retrieves all non-deleted, non-bot users in the
	// workspace, mapped to personnel records
	ListUsers(ctx context.Context) ([]*model.Personnel, error)
}

var _ interfaces.Notifier = Service(nil)
