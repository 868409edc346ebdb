package services

import (
	"errors"
	"fmt"
	"logistics-seed-service/internal/domain"
	"math/rand"
	"sort"
)

// AssignDrivers gives floor(len(orders)*fraction) randomly selected orders
// a driver, one driver per cluster.
//
// Selection is uniform without replacement. Selected orders are grouped by
// cluster id and every order in a group receives the same uniformly drawn
// agent, so routing stays proximity-consistent within a run. Unselected
// orders keep a nil DriverID and an unchanged status. Returns the number
// of orders assigned.
func AssignDrivers(orders []*domain.Order, agents []domain.Agent, fraction float64, rng *rand.Rand) (int, error) {
	if len(agents) == 0 {
		return 0, errors.New("assign drivers: agent pool must not be empty")
	}
	if fraction <= 0 || fraction > 1 {
		return 0, fmt.Errorf("assign drivers: fraction must be in (0,1], got %v", fraction)
	}

	total := len(orders)
	target := int(float64(total) * fraction)
	if target == 0 {
		return 0, nil
	}

	selected := make([]*domain.Order, 0, target)
	for _, idx := range rng.Perm(total)[:target] {
		selected = append(selected, orders[idx])
	}

	byCluster := make(map[int][]*domain.Order)
	for _, o := range selected {
		if o.ClusterID == nil {
			return 0, fmt.Errorf("assign drivers: order %d has no cluster", o.ID)
		}
		byCluster[*o.ClusterID] = append(byCluster[*o.ClusterID], o)
	}

	// Draw per-cluster drivers in cluster-id order so a fixed seed
	// reproduces identical assignments.
	clusterIDs := make([]int, 0, len(byCluster))
	for id := range byCluster {
		clusterIDs = append(clusterIDs, id)
	}
	sort.Ints(clusterIDs)

	for _, id := range clusterIDs {
		driver := agents[rng.Intn(len(agents))]
		for _, o := range byCluster[id] {
			o.AssignDriver(driver.ID)
		}
	}

	return target, nil
}
