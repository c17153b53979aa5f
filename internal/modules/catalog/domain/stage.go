package domain

import (
	"fmt"
	"sort"
	"strings"

	apperrors "roadmap/internal/platform/errors"
)

type ResourceType string

const (
	ResourceTypeVideo    ResourceType = "video"
	ResourceTypePlaylist ResourceType = "playlist"
)

func (t ResourceType) Validate() error {
	switch t {
	case ResourceTypeVideo, ResourceTypePlaylist:
		return nil
	default:
		return fmt.Errorf("unsupported resource type %q", string(t))
	}
}

type Resource struct {
	ID   string       `yaml:"id"`
	Name string       `yaml:"name"`
	URL  string       `yaml:"url"`
	Type ResourceType `yaml:"type"`
}

type Stage struct {
	ID              int        `yaml:"id"`
	Title           string     `yaml:"title"`
	Description     string     `yaml:"description"`
	Resources       []Resource `yaml:"resources"`
	Icon            string     `yaml:"icon"`
	Color           string     `yaml:"color"`
	BackgroundImage string     `yaml:"backgroundImage"`
}

func (s Stage) Validate() error {
	if s.ID < 1 {
		return fmt.Errorf("stage id must be positive, got %d", s.ID)
	}
	if strings.TrimSpace(s.Title) == "" {
		return fmt.Errorf("stage %d: title is required", s.ID)
	}
	seen := make(map[string]struct{}, len(s.Resources))
	for _, r := range s.Resources {
		if strings.TrimSpace(r.ID) == "" {
			return fmt.Errorf("stage %d: resource id is required", s.ID)
		}
		if _, dup := seen[r.ID]; dup {
			return fmt.Errorf("stage %d: duplicate resource id %q", s.ID, r.ID)
		}
		seen[r.ID] = struct{}{}
		if strings.TrimSpace(r.Name) == "" {
			return fmt.Errorf("stage %d resource %s: name is required", s.ID, r.ID)
		}
		if err := r.Type.Validate(); err != nil {
			return fmt.Errorf("stage %d resource %s: %w", s.ID, r.ID, err)
		}
	}
	return nil
}

// Resource returns the resource with the given id.
func (s Stage) Resource(resourceID string) (Resource, bool) {
	for _, r := range s.Resources {
		if r.ID == resourceID {
			return r, true
		}
	}
	return Resource{}, false
}

// Catalog is the immutable, id-ordered list of stages.
type Catalog struct {
	stages []Stage
	index  map[int]int
}

func NewCatalog(stages []Stage) (Catalog, error) {
	ordered := make([]Stage, len(stages))
	copy(ordered, stages)
	sort.SliceStable(ordered, func(i, j int) bool { return ordered[i].ID < ordered[j].ID })

	index := make(map[int]int, len(ordered))
	for i, stage := range ordered {
		if err := stage.Validate(); err != nil {
			return Catalog{}, err
		}
		if _, dup := index[stage.ID]; dup {
			return Catalog{}, fmt.Errorf("duplicate stage id %d", stage.ID)
		}
		index[stage.ID] = i
	}
	return Catalog{stages: ordered, index: index}, nil
}

func (c Catalog) Stages() []Stage {
	out := make([]Stage, len(c.stages))
	copy(out, c.stages)
	return out
}

func (c Catalog) Len() int { return len(c.stages) }

func (c Catalog) Stage(id int) (Stage, error) {
	i, ok := c.index[id]
	if !ok {
		return Stage{}, fmt.Errorf("stage %d: %w", id, apperrors.ErrNotFound)
	}
	return c.stages[i], nil
}

func (c Catalog) FindResource(stageID int, resourceID string) (Stage, Resource, error) {
	stage, err := c.Stage(stageID)
	if err != nil {
		return Stage{}, Resource{}, err
	}
	res, ok := stage.Resource(resourceID)
	if !ok {
		return Stage{}, Resource{}, fmt.Errorf("resource %q in stage %d: %w", resourceID, stageID, apperrors.ErrNotFound)
	}
	return stage, res, nil
}

func (c Catalog) ResourcesPerStage() map[int]int {
	out := make(map[int]int, len(c.stages))
	for _, s := range c.stages {
		out[s.ID] = len(s.Resources)
	}
	return out
}

func (c Catalog) TotalResources() int {
	total := 0
	for _, s := range c.stages {
		total += len(s.Resources)
	}
	return total
}

func (c Catalog) StageNames() map[int]string {
	out := make(map[int]string, len(c.stages))
	for _, s := range c.stages {
		out[s.ID] = s.Title
	}
	return out
}
