package ports

import (
	"context"
	"logistics-seed-service/internal/domain"
)

// Port: a boundary for loading geographic reference points.
type CitySource interface {
	// Return up to limit city locations.
	LoadCities(ctx context.Context, limit int) ([]domain.Location, error)
}
