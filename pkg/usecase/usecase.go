package usecase

import (
	"github.com/hotelops-lab/upkeep/pkg/domain/interfaces"
	"github.com/hotelops-lab/upkeep/pkg/domain/model"
	"github.com/hotelops-lab/upkeep/pkg/service/directory"
)

// UseCases bundles the lifecycle engine's public operations. The
// coordinator behind them is stateless; all state lives in the
// injected repository.
type UseCases struct {
	repo      interfaces.Repository
	notifier  interfaces.Notifier
	directory directory.Directory
	catalog   *model.Catalog

	Equipment    *EquipmentUseCase
	Incident     *IncidentUseCase
	Intervention *InterventionUseCase
}

type Option func(*UseCases)

// WithNotifier attaches a fire-and-forget event sink
func WithNotifier(n interfaces.Notifier) Option {
	return func(uc *UseCases) {
		uc.notifier = n
	}
}

// WithDirectory overrides the personnel directory. Defaults to the
// repository-backed directory.
func WithDirectory(d directory.Directory) Option {
	return func(uc *UseCases) {
		uc.directory = d
	}
}

// WithCatalog restricts equipment categories and locations to the
// entries declared in the app config
func WithCatalog(c *model.Catalog) Option {
	return func(uc *UseCases) {
		uc.catalog = c
	}
}

func New(repo interfaces.Repository, opts ...Option) *UseCases {
	uc := &UseCases{
		repo: repo,
	}

	for _, opt := range opts {
		opt(uc)
	}

	if uc.directory == nil {
		uc.directory = directory.New(repo)
	}

	coord := newCoordinator(repo, uc.notifier)
	uc.Equipment = &EquipmentUseCase{repo: repo, coord: coord, catalog: uc.catalog}
	uc.Incident = &IncidentUseCase{repo: repo, coord: coord}
	uc.Intervention = &InterventionUseCase{repo: repo, coord: coord, directory: uc.directory}

	return uc
}
