package ports

import (
	"context"
	"logistics-seed-service/internal/domain"
)

// Port: pushes a generated dataset into the logistics application,
// either through its network API or by writing storage directly.
type Importer interface {
	Import(ctx context.Context, ds *domain.Dataset) error
}
