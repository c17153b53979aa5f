package out

import (
	"context"

	"roadmap/internal/modules/catalog/domain"
)

type CatalogSource interface {
	Load(ctx context.Context) (domain.Catalog, error)
}
