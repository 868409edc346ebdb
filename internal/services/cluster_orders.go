package services

import (
	"errors"
	"fmt"
	"logistics-seed-service/internal/domain"
	"math"
	"sort"
)

// ClusterOrders partitions orders into at most k spatial clusters using a
// uniform grid over the delivery-coordinate bounding box.
//
// The grid has ceil(sqrt(k)) cells per axis. Cluster ids are derived purely
// from delivery coordinates, so re-running with the same k reproduces the
// same assignments. An order sitting exactly on the max edge of an axis
// computes a bin one past the grid (floor((max-min)/step) equals the cell
// count there); such bins are folded into the last cell of that axis so
// boundary orders stay with their geometric neighbors. Ids are still
// clamped to [1, k] for grids where side*side exceeds k. Only non-empty
// cells produce a cluster descriptor, so fewer than k clusters is a
// normal outcome.
func ClusterOrders(orders []*domain.Order, k int) ([]domain.Cluster, error) {
	if k <= 0 {
		return nil, fmt.Errorf("cluster orders: cluster count must be positive, got %d", k)
	}
	if len(orders) == 0 {
		return nil, errors.New("cluster orders: order list must not be empty")
	}

	minLat, maxLat := orders[0].DeliveryLatitude, orders[0].DeliveryLatitude
	minLon, maxLon := orders[0].DeliveryLongitude, orders[0].DeliveryLongitude
	for _, o := range orders[1:] {
		minLat = math.Min(minLat, o.DeliveryLatitude)
		maxLat = math.Max(maxLat, o.DeliveryLatitude)
		minLon = math.Min(minLon, o.DeliveryLongitude)
		maxLon = math.Max(maxLon, o.DeliveryLongitude)
	}

	side := int(math.Ceil(math.Sqrt(float64(k))))
	latStep := (maxLat - minLat) / float64(side)
	lonStep := (maxLon - minLon) / float64(side)

	for _, o := range orders {
		// A zero-width axis (all orders on one line) skips binning on
		// that axis instead of dividing by zero.
		binLat := 0
		if latStep > 0 {
			binLat = int((o.DeliveryLatitude - minLat) / latStep)
		}
		binLon := 0
		if lonStep > 0 {
			binLon = int((o.DeliveryLongitude - minLon) / lonStep)
		}

		// Exact-boundary inclusion: the max edge belongs to the last cell.
		if binLat >= side {
			binLat = side - 1
		}
		if binLon >= side {
			binLon = side - 1
		}

		id := binLat*side + binLon + 1
		if id > k {
			id = k
		}
		o.ClusterID = &id
	}

	type accum struct {
		latSum, lonSum float64
		count          int
	}
	groups := make(map[int]*accum, k)
	for _, o := range orders {
		g, ok := groups[*o.ClusterID]
		if !ok {
			g = &accum{}
			groups[*o.ClusterID] = g
		}
		g.latSum += o.DeliveryLatitude
		g.lonSum += o.DeliveryLongitude
		g.count++
	}

	ids := make([]int, 0, len(groups))
	for id := range groups {
		ids = append(ids, id)
	}
	sort.Ints(ids)

	clusters := make([]domain.Cluster, 0, len(ids))
	for _, id := range ids {
		g := groups[id]
		clusters = append(clusters, domain.Cluster{
			ID:          id,
			Name:        fmt.Sprintf("Cluster %d", id),
			Latitude:    g.latSum / float64(g.count),
			Longitude:   g.lonSum / float64(g.count),
			OrderCount:  g.count,
			Description: fmt.Sprintf("Automatically generated cluster with %d orders", g.count),
		})
	}

	return clusters, nil
}
