package config

import (
	"os"

	"github.com/m-mizutani/goerr/v2"
	"github.com/pelletier/go-toml/v2"
	"github.com/urfave/cli/v3"

	"github.com/hotelops-lab/upkeep/pkg/domain/model"
	"github.com/hotelops-lab/upkeep/pkg/domain/types"
)

// App holds the CLI flag for the application config file and its
// parsed contents after Load.
type App struct {
	path string
	data appData
}

type appData struct {
	Categories []catalogEntry  `toml:"category"`
	Locations  []catalogEntry  `toml:"location"`
	Personnel  []personnelItem `toml:"personnel"`
}

type catalogEntry struct {
	ID    string `toml:"id"`
	Label string `toml:"label"`
}

type personnelItem struct {
	ID    string `toml:"id"`
	Name  string `toml:"name"`
	Email string `toml:"email"`
}

// Flags returns CLI flags for the application config
func (a *App) Flags() []cli.Flag {
	return []cli.Flag{
		&cli.StringFlag{
			Name:        "config",
			Aliases:     []string{"c"},
			Usage:       "Path to application config file (TOML)",
			Sources:     cli.EnvVars("UPKEEP_CONFIG"),
			Destination: &a.path,
		},
	}
}

// Path returns the configured config file path
func (a *App) Path() string {
	return a.path
}

// Load reads and validates the config file. When no path is set the
// config stays empty, which means no catalog restrictions and no
// seeded personnel.
func (a *App) Load() error {
	if a.path == "" {
		return nil
	}

	raw, err := os.ReadFile(a.path)
	if err != nil {
		return goerr.Wrap(err, "failed to read config file", goerr.V("path", a.path))
	}

	var data appData
	if err := toml.Unmarshal(raw, &data); err != nil {
		return goerr.Wrap(err, "failed to parse config file", goerr.V("path", a.path))
	}

	if err := validateAppData(&data); err != nil {
		return goerr.Wrap(err, "invalid config file", goerr.V("path", a.path))
	}

	a.data = data
	return nil
}

func validateAppData(data *appData) error {
	if err := validateEntries("category", data.Categories); err != nil {
		return err
	}
	if err := validateEntries("location", data.Locations); err != nil {
		return err
	}

	seen := map[string]struct{}{}
	for _, p := range data.Personnel {
		if p.ID == "" {
			return goerr.Wrap(ErrMissingID, "personnel entry without id", goerr.V("name", p.Name))
		}
		if p.Name == "" {
			return goerr.Wrap(ErrMissingLabel, "personnel entry without name", goerr.V("id", p.ID))
		}
		if _, ok := seen[p.ID]; ok {
			return goerr.Wrap(ErrDuplicateID, "duplicate personnel id", goerr.V("id", p.ID))
		}
		seen[p.ID] = struct{}{}
	}
	return nil
}

func validateEntries(kind string, entries []catalogEntry) error {
	seen := map[string]struct{}{}
	for _, e := range entries {
		if e.ID == "" {
			return goerr.Wrap(ErrMissingID, "catalog entry without id", goerr.V("kind", kind), goerr.V("label", e.Label))
		}
		if e.Label == "" {
			return goerr.Wrap(ErrMissingLabel, "catalog entry without label", goerr.V("kind", kind), goerr.V("id", e.ID))
		}
		if _, ok := seen[e.ID]; ok {
			return goerr.Wrap(ErrDuplicateID, "duplicate catalog id", goerr.V("kind", kind), goerr.V("id", e.ID))
		}
		seen[e.ID] = struct{}{}
	}
	return nil
}

// Catalog returns the parsed catalog for equipment validation
func (a *App) Catalog() *model.Catalog {
	c := &model.Catalog{}
	for _, e := range a.data.Categories {
		c.Categories = append(c.Categories, model.CatalogEntry{ID: e.ID, Name: e.Label})
	}
	for _, e := range a.data.Locations {
		c.Locations = append(c.Locations, model.CatalogEntry{ID: e.ID, Name: e.Label})
	}
	return c
}

// Roster returns personnel records defined in the config file
func (a *App) Roster() []*model.Personnel {
	var roster []*model.Personnel
	for _, p := range a.data.Personnel {
		roster = append(roster, &model.Personnel{
			ID:    types.PersonnelID(p.ID),
			Name:  p.Name,
			Email: p.Email,
		})
	}
	return roster
}
