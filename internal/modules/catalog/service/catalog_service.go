package service

import (
	"context"
	"sync"

	"roadmap/internal/modules/catalog/domain"
	catalogout "roadmap/internal/modules/catalog/port/out"
)

// CatalogService loads the roadmap once and serves it from memory afterwards.
type CatalogService struct {
	source catalogout.CatalogSource

	mu      sync.Mutex
	loaded  bool
	catalog domain.Catalog
}

func NewCatalogService(source catalogout.CatalogSource) *CatalogService {
	return &CatalogService{source: source}
}

func (s *CatalogService) Catalog(ctx context.Context) (domain.Catalog, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.loaded {
		return s.catalog, nil
	}
	c, err := s.source.Load(ctx)
	if err != nil {
		return domain.Catalog{}, err
	}
	s.catalog = c
	s.loaded = true
	return c, nil
}
