package cities

import (
	"context"
	"fmt"
	"logistics-seed-service/internal/domain"
	"math/rand"
)

// SyntheticCitySource fabricates uniformly distributed city locations.
// It backs the pipeline when the CSV source is missing or unreadable and
// never fails.
type SyntheticCitySource struct {
	Rng *rand.Rand
}

func NewSyntheticCitySource(rng *rand.Rand) *SyntheticCitySource {
	return &SyntheticCitySource{Rng: rng}
}

func (s *SyntheticCitySource) LoadCities(ctx context.Context, limit int) ([]domain.Location, error) {
	if limit <= 0 {
		return nil, fmt.Errorf("synthetic cities: limit must be positive, got %d", limit)
	}

	locations := make([]domain.Location, 0, limit)
	for i := 0; i < limit; i++ {
		locations = append(locations, domain.Location{
			ID:        i,
			Name:      fmt.Sprintf("City %d", i),
			Country:   "Test Country",
			State:     "Test State",
			Latitude:  -90 + s.Rng.Float64()*180,
			Longitude: -180 + s.Rng.Float64()*360,
		})
	}
	return locations, nil
}
