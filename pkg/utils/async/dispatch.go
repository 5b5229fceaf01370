package async

import (
	"context"

	"github.com/hotelops-lab/upkeep/pkg/utils/logging"
)

// Dispatch executes a handler function asynchronously in a new
// goroutine. The handler gets a fresh background context that keeps
// the caller's logger, so a cancelled request cannot abort an
// in-flight notification.
func Dispatch(ctx context.Context, handler func(ctx context.Context) error) {
	bgCtx := logging.With(context.Background(), logging.From(ctx))

	go func() {
		defer func() {
			if r := recover(); r != nil {
				logging.From(bgCtx).Error("panic in async handler", "panic", r)
			}
		}()

		if err := handler(bgCtx); err != nil {
			logging.From(bgCtx).Error("async handler failed", "error", err.Error())
		}
	}()
}
