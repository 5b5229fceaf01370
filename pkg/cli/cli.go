package cli

import (
	"context"

	"github.com/urfave/cli/v3"

	"github.com/hotelops-lab/upkeep/pkg/cli/config"
	"github.com/hotelops-lab/upkeep/pkg/utils/logging"
)

func Run(ctx context.Context, args []string, version string) error {
	var loggerCfg config.Logger

	app := &cli.Command{
		Name:    "upkeep",
		Usage:   "Upkeep equipment maintenance lifecycle service",
		Version: version,
		Flags:   loggerCfg.Flags(),
		Before: func(ctx context.Context, c *cli.Command) (context.Context, error) {
			if err := loggerCfg.Configure(); err != nil {
				return ctx, err
			}

			logging.Default().Info("Starting upkeep", "logger", &loggerCfg)
			return ctx, nil
		},
		Commands: []*cli.Command{
			cmdServe(),
			cmdMigrate(),
			cmdValidate(),
		},
	}

	if err := app.Run(ctx, args); err != nil {
		logging.Default().Error("failed to run app", "error", err)
		return err
	}

	return nil
}
