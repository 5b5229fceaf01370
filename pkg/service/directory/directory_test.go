package directory_test

import (
	"context"
	"testing"

	"github.com/m-mizutani/gt"

	"github.com/hotelops-lab/upkeep/pkg/domain/model"
	"github.com/hotelops-lab/upkeep/pkg/domain/types"
	"github.com/hotelops-lab/upkeep/pkg/repository/memory"
	"github.com/hotelops-lab/upkeep/pkg/service/directory"
)

func TestDirectory(t *testing.T) {
	repo := memory.New()
	ctx := context.Background()

	roster := []*model.Personnel{
		{ID: "tech-1", Name: "Sam Ito", Role: "electrician"},
		{ID: "tech-2", Name: "Robin Vale", Role: "plumber"},
	}
	gt.NoError(t, directory.Seed(ctx, repo, roster)).Required()

	dir := directory.New(repo)

	t.Run("resolves a seeded technician", func(t *testing.T) {
		p, err := dir.GetPersonnel(ctx, "tech-1")
		gt.NoError(t, err).Required()
		gt.Value(t, p.Name).Equal("Sam Ito")
	})

	t.Run("unknown ID is not_found", func(t *testing.T) {
		_, err := dir.GetPersonnel(ctx, "nobody")
		gt.Error(t, err)
		gt.B(t, types.IsNotFound(err)).True()
	})

	t.Run("empty ID is a validation error", func(t *testing.T) {
		_, err := dir.GetPersonnel(ctx, "")
		gt.Error(t, err)
		gt.B(t, types.IsValidation(err)).True()
	})
}
