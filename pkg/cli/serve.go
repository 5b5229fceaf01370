package cli

import (
	"context"
	"net/http"
	"os/signal"
	"syscall"
	"time"

	"github.com/m-mizutani/goerr/v2"
	"github.com/urfave/cli/v3"
	"golang.org/x/sync/errgroup"

	"github.com/hotelops-lab/upkeep/pkg/cli/config"
	httpctrl "github.com/hotelops-lab/upkeep/pkg/controller/http"
	"github.com/hotelops-lab/upkeep/pkg/service/directory"
	"github.com/hotelops-lab/upkeep/pkg/service/slack"
	"github.com/hotelops-lab/upkeep/pkg/service/worker"
	"github.com/hotelops-lab/upkeep/pkg/usecase"
	"github.com/hotelops-lab/upkeep/pkg/utils/logging"
	"github.com/hotelops-lab/upkeep/pkg/utils/safe"
)

func cmdServe() *cli.Command {
	var addr string
	var appCfg config.App
	var repoCfg config.Repository
	var slackCfg config.Slack

	flags := []cli.Flag{
		&cli.StringFlag{
			Name:        "addr",
			Usage:       "HTTP server address",
			Value:       ":8080",
			Sources:     cli.EnvVars("UPKEEP_ADDR"),
			Destination: &addr,
		},
	}
	flags = append(flags, appCfg.Flags()...)
	flags = append(flags, repoCfg.Flags()...)
	flags = append(flags, slackCfg.Flags()...)

	return &cli.Command{
		Name:    "serve",
		Aliases: []string{"s"},
		Usage:   "Start HTTP server",
		Flags:   flags,
		Action: func(ctx context.Context, c *cli.Command) error {
			if err := appCfg.Load(); err != nil {
				return goerr.Wrap(err, "failed to load application config")
			}

			repo, err := repoCfg.Configure(ctx)
			if err != nil {
				return goerr.Wrap(err, "failed to initialize repository")
			}
			defer safe.Close(ctx, repo)

			if roster := appCfg.Roster(); len(roster) > 0 {
				if err := directory.Seed(ctx, repo, roster); err != nil {
					return goerr.Wrap(err, "failed to seed personnel roster")
				}
				logging.Default().Info("Seeded personnel roster", "count", len(roster))
			}

			ucOpts := []usecase.Option{
				usecase.WithDirectory(directory.New(repo)),
				usecase.WithCatalog(appCfg.Catalog()),
			}

			var slackSvc slack.Service
			if slackCfg.IsConfigured() {
				svc, err := slackCfg.Configure()
				if err != nil {
					return goerr.Wrap(err, "failed to initialize slack service")
				}
				slackSvc = svc
				ucOpts = append(ucOpts, usecase.WithNotifier(svc))
				logging.Default().Info("Slack notifier enabled", "slack", &slackCfg)
			} else {
				logging.Default().Info("Slack not configured, lifecycle events will only be logged")
			}

			uc := usecase.New(repo, ucOpts...)

			var syncWorker *worker.PersonnelSyncWorker
			if slackSvc != nil {
				syncWorker = worker.NewPersonnelSyncWorker(repo, slackSvc, slackCfg.SyncInterval())
				if err := syncWorker.Start(ctx); err != nil {
					return goerr.Wrap(err, "failed to start personnel sync worker")
				}
			}

			server := &http.Server{
				Addr:              addr,
				Handler:           httpctrl.New(uc),
				ReadHeaderTimeout: 30 * time.Second,
			}

			sigCtx, stop := signal.NotifyContext(ctx, syscall.SIGINT, syscall.SIGTERM)
			defer stop()

			var eg errgroup.Group
			eg.Go(func() error {
				logging.Default().Info("Starting HTTP server", "addr", addr)
				if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
					return goerr.Wrap(err, "failed to start server")
				}
				return nil
			})
			eg.Go(func() error {
				<-sigCtx.Done()
				logging.Default().Info("Received shutdown signal")

				if syncWorker != nil {
					syncWorker.Stop()
				}

				shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
				defer cancel()

				if err := server.Shutdown(shutdownCtx); err != nil {
					return goerr.Wrap(err, "failed to shutdown server gracefully")
				}
				return nil
			})

			if err := eg.Wait(); err != nil {
				return err
			}

			logging.Default().Info("Server shutdown completed")
			return nil
		},
	}
}
