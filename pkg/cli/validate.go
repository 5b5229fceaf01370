package cli

import (
	"context"
	"fmt"

	"github.com/fatih/color"
	"github.com/m-mizutani/goerr/v2"
	"github.com/urfave/cli/v3"

	"github.com/hotelops-lab/upkeep/pkg/cli/config"
)

func cmdValidate() *cli.Command {
	var appCfg config.App

	return &cli.Command{
		Name:    "validate",
		Aliases: []string{"v"},
		Usage:   "Validate the application configuration file",
		Flags:   appCfg.Flags(),
		Action: func(ctx context.Context, c *cli.Command) error {
			if appCfg.Path() == "" {
				return goerr.New("config file path is required (--config)")
			}

			if err := appCfg.Load(); err != nil {
				color.Red("✗ %s: invalid", appCfg.Path())
				return err
			}

			catalog := appCfg.Catalog()
			roster := appCfg.Roster()

			color.Green("✓ %s: valid", appCfg.Path())
			fmt.Printf("  categories: %d\n", len(catalog.Categories))
			fmt.Printf("  locations:  %d\n", len(catalog.Locations))
			fmt.Printf("  personnel:  %d\n", len(roster))

			return nil
		},
	}
}
