package out

import (
	"bytes"
	"context"
	_ "embed"
	"fmt"
	"os"
	"strings"

	"gopkg.in/yaml.v3"

	"roadmap/internal/modules/catalog/domain"
	catalogout "roadmap/internal/modules/catalog/port/out"
)

//go:embed roadmap.yaml
var defaultRoadmap []byte

type catalogDocument struct {
	Stages []domain.Stage `yaml:"stages"`
}

// YAMLCatalogSource decodes the roadmap from an override file when one is
// configured and from the embedded default otherwise.
type YAMLCatalogSource struct {
	overridePath string
}

func NewYAMLCatalogSource(overridePath string) catalogout.CatalogSource {
	return &YAMLCatalogSource{overridePath: strings.TrimSpace(overridePath)}
}

func (s *YAMLCatalogSource) Load(_ context.Context) (domain.Catalog, error) {
	payload := defaultRoadmap
	origin := "embedded roadmap"
	if s.overridePath != "" {
		raw, err := os.ReadFile(s.overridePath)
		if err != nil {
			return domain.Catalog{}, fmt.Errorf("read catalog %s: %w", s.overridePath, err)
		}
		payload = raw
		origin = s.overridePath
	}
	return decodeCatalog(payload, origin)
}

func decodeCatalog(payload []byte, origin string) (domain.Catalog, error) {
	doc := catalogDocument{}
	dec := yaml.NewDecoder(bytes.NewReader(payload))
	dec.KnownFields(true)
	if err := dec.Decode(&doc); err != nil {
		return domain.Catalog{}, fmt.Errorf("decode %s: %w", origin, err)
	}
	if len(doc.Stages) == 0 {
		return domain.Catalog{}, fmt.Errorf("decode %s: no stages defined", origin)
	}
	catalog, err := domain.NewCatalog(doc.Stages)
	if err != nil {
		return domain.Catalog{}, fmt.Errorf("validate %s: %w", origin, err)
	}
	return catalog, nil
}
