package interfaces

import (
	"context"

	"github.com/hotelops-lab/upkeep/pkg/domain/model"
)

// Notifier delivers lifecycle events to an external sink. Delivery is
// best-effort; callers dispatch asynchronously and only log failures.
type Notifier interface {
	Notify(ctx context.Context, ev *model.Event) error
}
