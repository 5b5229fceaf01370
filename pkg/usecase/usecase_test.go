package usecase_test

import (
	"context"
	"testing"
	"time"

	"github.com/m-mizutani/goerr/v2"
	"github.com/m-mizutani/gt"

	"github.com/hotelops-lab/upkeep/pkg/domain/interfaces"
	"github.com/hotelops-lab/upkeep/pkg/domain/model"
	"github.com/hotelops-lab/upkeep/pkg/domain/types"
	"github.com/hotelops-lab/upkeep/pkg/repository/memory"
	"github.com/hotelops-lab/upkeep/pkg/usecase"
)

func newTestUseCases(t *testing.T, opts ...usecase.Option) (*usecase.UseCases, interfaces.Repository) {
	t.Helper()

	repo := memory.New()
	ctx := context.Background()
	gt.NoError(t, repo.Personnel().Put(ctx, &model.Personnel{
		ID:   "tech-1",
		Name: "Sam Ito",
		Role: "technician",
	})).Required()

	return usecase.New(repo, opts...), repo
}

func createEquipment(t *testing.T, uc *usecase.UseCases) *model.Equipment {
	t.Helper()

	eq, err := uc.Equipment.Create(context.Background(), usecase.CreateEquipmentInput{
		Name:     "Rooftop HVAC Unit 3",
		Category: "hvac",
		Location: "roof-north",
	})
	gt.NoError(t, err).Required()
	return eq
}

func reportIncident(t *testing.T, uc *usecase.UseCases, equipmentID types.EquipmentID) *model.Incident {
	t.Helper()

	incident, err := uc.Incident.Report(context.Background(), equipmentID,
		"Compressor rattling", "loud noise on startup", types.SeverityMedium)
	gt.NoError(t, err).Required()
	return incident
}

func scheduleIntervention(t *testing.T, uc *usecase.UseCases, incidentID types.IncidentID) *model.Intervention {
	t.Helper()

	iv, err := uc.Intervention.Schedule(context.Background(), usecase.ScheduleInput{
		IncidentID:  incidentID,
		PersonnelID: "tech-1",
		ScheduledAt: time.Now().UTC().Add(24 * time.Hour),
		Description: "Replace compressor belt",
	})
	gt.NoError(t, err).Required()
	return iv
}

func setOutOfService(t *testing.T, uc *usecase.UseCases, id types.EquipmentID, status types.EquipmentStatus) {
	t.Helper()

	_, err := uc.Equipment.Update(context.Background(), id, model.EquipmentPatch{Status: &status})
	gt.NoError(t, err).Required()
}

func equipmentStatus(t *testing.T, repo interfaces.Repository, id types.EquipmentID) types.EquipmentStatus {
	t.Helper()

	eq, err := repo.Equipment().Get(context.Background(), id)
	gt.NoError(t, err).Required()
	return eq.Status
}

// faultyEquipmentRepository injects storage failures into Update to
// exercise the cascade retry path
type faultyEquipmentRepository struct {
	interfaces.EquipmentRepository
	updateFailures int
}

func (r *faultyEquipmentRepository) Update(ctx context.Context, e *model.Equipment) (*model.Equipment, error) {
	if r.updateFailures != 0 {
		r.updateFailures--
		return nil, goerr.New("simulated backend outage", goerr.T(types.TagStorage))
	}
	return r.EquipmentRepository.Update(ctx, e)
}

type faultyRepository struct {
	interfaces.Repository
	equipment *faultyEquipmentRepository
}

func (r *faultyRepository) Equipment() interfaces.EquipmentRepository {
	return r.equipment
}

func newFaultyRepository(updateFailures int) *faultyRepository {
	base := memory.New()
	return &faultyRepository{
		Repository: base,
		equipment: &faultyEquipmentRepository{
			EquipmentRepository: base.Equipment(),
			updateFailures:      updateFailures,
		},
	}
}
