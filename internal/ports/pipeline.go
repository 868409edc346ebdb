package ports

import (
	"context"
	"logistics-seed-service/internal/domain"
)

// Port: model training step. Training is an external black box; the
// adapter decides whether artifacts already exist and training can be
// skipped.
type Trainer interface {
	Train(ctx context.Context) error
}

// Port: dataset generation step.
type Generator interface {
	Generate(ctx context.Context) (*domain.Dataset, error)
}
