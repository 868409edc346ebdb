package main

import (
	"context"
	"flag"
	"log"
	"logistics-seed-service/internal/adapters/cities"
	"logistics-seed-service/internal/adapters/snapshot"
	"logistics-seed-service/internal/config"
	"logistics-seed-service/internal/platform/obs"
	"logistics-seed-service/internal/services"
	"math/rand"
	"time"

	"github.com/google/uuid"
	"github.com/joho/godotenv"
)

// main is the generation composition root: it wires the city sources and
// snapshot store behind ports and runs the dataset pipeline once.
func main() {
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found (using environment variables)")
	}

	numAgents := flag.Int("num-agents", 50, "number of field agents to generate")
	numStores := flag.Int("num-stores", 100, "number of stores to generate")
	numCustomers := flag.Int("num-customers", 2000, "number of customers to generate")
	numOrders := flag.Int("num-orders", 5000, "number of orders to generate")
	numClusters := flag.Int("num-clusters", 20, "number of clusters to create")
	cityLimit := flag.Int("city-limit", 1000, "maximum number of cities to load from CSV")
	assignFraction := flag.Float64("assign-fraction", 0.6, "fraction of orders to assign drivers to")
	seed := flag.Int64("seed", 0, "random seed (0 derives one from the current time)")
	citiesPath := flag.String("cities", config.Get("CITIES_CSV_PATH", "attached_assets/cities.csv"), "path to the cities CSV file")
	outDir := flag.String("out", config.Get("OUTPUT_DIR", "server/test_data"), "snapshot output directory")
	flag.Parse()

	if *seed == 0 {
		*seed = time.Now().UnixNano()
	}
	log.Printf("generating dataset orders=%d seed=%d", *numOrders, *seed)

	ctx := context.WithValue(context.Background(), obs.RunIDKey, uuid.NewString())

	req := services.GenerateDatasetRequest{
		NumAgents:      *numAgents,
		NumStores:      *numStores,
		NumCustomers:   *numCustomers,
		NumOrders:      *numOrders,
		NumClusters:    *numClusters,
		CityLimit:      *cityLimit,
		AssignFraction: *assignFraction,
		Seed:           *seed,
	}

	citySource := cities.NewCSVCitySource(*citiesPath)
	fallback := cities.NewSyntheticCitySource(rand.New(rand.NewSource(*seed + 1)))
	snapshots := snapshot.NewJSONSnapshotStore(*outDir)

	ds, err := services.GenerateDataset(ctx, req, citySource, fallback, snapshots)
	if err != nil {
		log.Fatal(err)
	}

	log.Printf(
		"generation complete agents=%d stores=%d customers=%d orders=%d clusters=%d out=%s",
		len(ds.Agents), len(ds.Stores), len(ds.Customers), len(ds.Orders), len(ds.Clusters), *outDir,
	)
}
