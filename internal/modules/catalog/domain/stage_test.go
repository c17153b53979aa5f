package domain_test

import (
	"errors"
	"testing"

	"roadmap/internal/modules/catalog/domain"
	apperrors "roadmap/internal/platform/errors"
)

func sampleStages() []domain.Stage {
	return []domain.Stage{
		{ID: 2, Title: "Libraries", Resources: []domain.Resource{
			{ID: "lib-1", Name: "NumPy", Type: domain.ResourceTypePlaylist},
			{ID: "lib-2", Name: "Pandas", Type: domain.ResourceTypePlaylist},
			{ID: "lib-3", Name: "Matplotlib", Type: domain.ResourceTypePlaylist},
		}},
		{ID: 1, Title: "Python", Resources: []domain.Resource{
			{ID: "py-1", Name: "Beginners", Type: domain.ResourceTypeVideo},
			{ID: "py-2", Name: "Full Course", Type: domain.ResourceTypeVideo},
		}},
	}
}

func TestNewCatalogOrdersAndIndexesStages(t *testing.T) {
	t.Parallel()
	c, err := domain.NewCatalog(sampleStages())
	if err != nil {
		t.Fatalf("new catalog: %v", err)
	}
	stages := c.Stages()
	if len(stages) != 2 || stages[0].ID != 1 || stages[1].ID != 2 {
		t.Fatalf("stages must be ordered by id, got %+v", stages)
	}
	if c.TotalResources() != 5 {
		t.Fatalf("expected 5 resources, got %d", c.TotalResources())
	}
	per := c.ResourcesPerStage()
	if per[1] != 2 || per[2] != 3 {
		t.Fatalf("unexpected per-stage counts %v", per)
	}
	if c.StageNames()[2] != "Libraries" {
		t.Fatalf("unexpected stage names %v", c.StageNames())
	}
	if _, res, err := c.FindResource(2, "lib-2"); err != nil || res.Name != "Pandas" {
		t.Fatalf("find resource: %+v %v", res, err)
	}
}

func TestCatalogLookupsReportNotFound(t *testing.T) {
	t.Parallel()
	c, err := domain.NewCatalog(sampleStages())
	if err != nil {
		t.Fatalf("new catalog: %v", err)
	}
	if _, err := c.Stage(99); !errors.Is(err, apperrors.ErrNotFound) {
		t.Fatalf("expected not found for unknown stage, got %v", err)
	}
	if _, _, err := c.FindResource(1, "lib-1"); !errors.Is(err, apperrors.ErrNotFound) {
		t.Fatalf("resource ids are scoped to their stage, got %v", err)
	}
}

func TestNewCatalogRejectsInvalidStages(t *testing.T) {
	t.Parallel()
	dupStage := append(sampleStages(), domain.Stage{ID: 1, Title: "Again"})
	if _, err := domain.NewCatalog(dupStage); err == nil {
		t.Fatalf("duplicate stage id should fail")
	}
	dupResource := []domain.Stage{{ID: 1, Title: "Python", Resources: []domain.Resource{
		{ID: "py-1", Name: "a", Type: domain.ResourceTypeVideo},
		{ID: "py-1", Name: "b", Type: domain.ResourceTypeVideo},
	}}}
	if _, err := domain.NewCatalog(dupResource); err == nil {
		t.Fatalf("duplicate resource id should fail")
	}
	badType := []domain.Stage{{ID: 1, Title: "Python", Resources: []domain.Resource{
		{ID: "py-1", Name: "a", Type: "podcast"},
	}}}
	if _, err := domain.NewCatalog(badType); err == nil {
		t.Fatalf("unknown resource type should fail")
	}
	if _, err := domain.NewCatalog([]domain.Stage{{ID: 0, Title: "zero"}}); err == nil {
		t.Fatalf("non-positive stage id should fail")
	}
}
