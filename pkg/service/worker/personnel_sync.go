package worker

import (
	"context"
	"time"

	"github.com/m-mizutani/goerr/v2"

	"github.com/hotelops-lab/upkeep/pkg/domain/interfaces"
	"github.com/hotelops-lab/upkeep/pkg/service/slack"
	"github.com/hotelops-lab/upkeep/pkg/utils/logging"
)

// PersonnelSyncWorker manages background refresh of personnel records
// from the Slack workspace into the repository, so intervention
// scheduling can validate assignees without hitting the Slack API.
//
// Architecture assumptions:
// - Single server instance (no distributed locking)
// - For future horizontal scaling, implement distributed locking or leader election
type PersonnelSyncWorker struct {
	repo         interfaces.Repository
	slackService slack.Service
	interval     time.Duration
	stopCh       chan struct{}
	doneCh       chan struct{}
}

// NewPersonnelSyncWorker creates a new worker for refreshing personnel
func NewPersonnelSyncWorker(repo interfaces.Repository, slackSvc slack.Service, interval time.Duration) *PersonnelSyncWorker {
	return &PersonnelSyncWorker{
		repo:         repo,
		slackService: slackSvc,
		interval:     interval,
		stopCh:       make(chan struct{}),
		doneCh:       make(chan struct{}),
	}
}

// Start begins the background refresh loop
// - Initial sync and periodic refresh both run in a background goroutine
// - Does not block server startup
func (w *PersonnelSyncWorker) Start(ctx context.Context) error {
	logging.Default().Info("personnel sync worker starting",
		"interval", w.interval.String())

	go w.run(ctx)

	return nil
}

// Stop signals the worker to stop and waits for completion
func (w *PersonnelSyncWorker) Stop() {
	logging.Default().Info("personnel sync worker stopping")
	close(w.stopCh)
	<-w.doneCh
	logging.Default().Info("personnel sync worker stopped")
}

// run is the main worker loop (runs in goroutine)
func (w *PersonnelSyncWorker) run(ctx context.Context) {
	defer close(w.doneCh)

	if err := w.refresh(ctx); err != nil {
		logging.Default().Error("initial personnel sync failed (will retry next interval)",
			"error", err.Error())
	}

	ticker := time.NewTicker(w.interval)
	defer ticker.Stop()

	for {
		select {
		case <-ticker.C:
			if err := w.refresh(ctx); err != nil {
				logging.Default().Error("personnel sync failed (will retry next interval)",
					"error", err.Error())
			}

		case <-w.stopCh:
			return

		case <-ctx.Done():
			return
		}
	}
}

// refresh pulls the current Slack user list and upserts each record
func (w *PersonnelSyncWorker) refresh(ctx context.Context) error {
	personnel, err := w.slackService.ListUsers(ctx)
	if err != nil {
		return goerr.Wrap(err, "failed to list Slack users")
	}

	for _, p := range personnel {
		if err := w.repo.Personnel().Put(ctx, p); err != nil {
			return goerr.Wrap(err, "failed to upsert personnel", goerr.V("id", p.ID))
		}
	}

	logging.Default().Info("personnel sync completed", "count", len(personnel))
	return nil
}
