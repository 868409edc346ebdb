package services

import (
	"context"
	"fmt"
	"log"
	"logistics-seed-service/internal/domain"
	"logistics-seed-service/internal/platform/obs"
	"logistics-seed-service/internal/ports"
	"math/rand"
	"time"

	"github.com/jaswdr/faker"
)

type GenerateDatasetRequest struct {
	NumAgents      int
	NumStores      int
	NumCustomers   int
	NumOrders      int
	NumClusters    int
	CityLimit      int
	AssignFraction float64
	Seed           int64
}

// GenerateDataset runs the full generation pipeline: load cities, generate
// entities and orders, cluster, snapshot, assign drivers, re-snapshot.
//
// All randomness flows from a single seeded source, so two runs with the
// same request produce the same dataset. A failing city source is not
// fatal: the pipeline logs it and continues on the fallback source.
func GenerateDataset(
	ctx context.Context,
	req GenerateDatasetRequest,
	citySource ports.CitySource,
	fallback ports.CitySource,
	snapshots ports.SnapshotStore,
) (_ *domain.Dataset, err error) {
	defer obs.Time(ctx, "generate.dataset")(&err)

	src := rand.NewSource(req.Seed)
	rng := rand.New(src)
	fake := faker.NewWithSeed(src)
	now := time.Now()

	cities, err := citySource.LoadCities(ctx, req.CityLimit)
	if err != nil {
		log.Printf("city source failed, falling back to synthetic locations: %v", err)
		cities, err = fallback.LoadCities(ctx, req.CityLimit)
		if err != nil {
			return nil, fmt.Errorf("generate dataset: fallback city source: %w", err)
		}
	}
	log.Printf("stage=cities loaded=%d", len(cities))

	agents := GenerateAgents(req.NumAgents, cities, now, fake, rng)
	stores := GenerateStores(req.NumStores, cities, fake, rng)
	customers := GenerateCustomers(req.NumCustomers, cities, now, fake, rng)
	log.Printf("stage=entities agents=%d stores=%d customers=%d", len(agents), len(stores), len(customers))

	orders, err := GenerateOrders(req.NumOrders, customers, stores, now, fake, rng)
	if err != nil {
		return nil, fmt.Errorf("generate dataset: %w", err)
	}
	log.Printf("stage=orders generated=%d", len(orders))

	clusters, err := ClusterOrders(orders, req.NumClusters)
	if err != nil {
		return nil, fmt.Errorf("generate dataset: %w", err)
	}

	// Fill in descriptor metadata the clusterer does not compute.
	day := now.Format(dateLayout)
	for i := range clusters {
		clusters[i].Radius = round2(2 + rng.Float64()*8)
		clusters[i].CreatedAt = day
		clusters[i].LastUpdated = day
		clusters[i].Status = "Active"
	}
	log.Printf("stage=clusters created=%d requested=%d", len(clusters), req.NumClusters)

	ds := &domain.Dataset{
		Agents:    agents,
		Stores:    stores,
		Customers: customers,
		Orders:    orders,
		Clusters:  clusters,
	}

	if err := writeSnapshots(ctx, snapshots, ds); err != nil {
		return nil, fmt.Errorf("generate dataset: %w", err)
	}

	assigned, err := AssignDrivers(orders, agents, req.AssignFraction, rng)
	if err != nil {
		return nil, fmt.Errorf("generate dataset: %w", err)
	}
	log.Printf("stage=assignment assigned=%d fraction=%v", assigned, req.AssignFraction)

	// Orders changed during assignment; replace their snapshot.
	if err := snapshots.WriteOrders(ctx, orders); err != nil {
		return nil, fmt.Errorf("generate dataset: rewrite orders snapshot: %w", err)
	}

	return ds, nil
}

func writeSnapshots(ctx context.Context, snapshots ports.SnapshotStore, ds *domain.Dataset) error {
	if err := snapshots.WriteAgents(ctx, ds.Agents); err != nil {
		return fmt.Errorf("write agents snapshot: %w", err)
	}
	if err := snapshots.WriteStores(ctx, ds.Stores); err != nil {
		return fmt.Errorf("write stores snapshot: %w", err)
	}
	if err := snapshots.WriteCustomers(ctx, ds.Customers); err != nil {
		return fmt.Errorf("write customers snapshot: %w", err)
	}
	if err := snapshots.WriteOrders(ctx, ds.Orders); err != nil {
		return fmt.Errorf("write orders snapshot: %w", err)
	}
	if err := snapshots.WriteClusters(ctx, ds.Clusters); err != nil {
		return fmt.Errorf("write clusters snapshot: %w", err)
	}
	return nil
}

// DatasetGenerator adapts GenerateDataset to the Generator port so the
// setup pipeline can run it as a stage.
type DatasetGenerator struct {
	Req       GenerateDatasetRequest
	Cities    ports.CitySource
	Fallback  ports.CitySource
	Snapshots ports.SnapshotStore
}

func (g *DatasetGenerator) Generate(ctx context.Context) (*domain.Dataset, error) {
	return GenerateDataset(ctx, g.Req, g.Cities, g.Fallback, g.Snapshots)
}
