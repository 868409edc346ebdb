package main

import (
	"context"
	"flag"
	"log"
	"logistics-seed-service/internal/adapters/cities"
	"logistics-seed-service/internal/adapters/importing"
	"logistics-seed-service/internal/adapters/snapshot"
	"logistics-seed-service/internal/adapters/training"
	"logistics-seed-service/internal/config"
	"logistics-seed-service/internal/platform/db"
	"logistics-seed-service/internal/platform/obs"
	"logistics-seed-service/internal/ports"
	"logistics-seed-service/internal/services"
	"math/rand"
	"os"
	"strings"
	"time"

	"github.com/google/uuid"
	_ "github.com/jackc/pgx/v5/stdlib"
	"github.com/joho/godotenv"
	_ "modernc.org/sqlite"
)

// main orchestrates the full setup workflow: train models, generate the
// dataset, and import it, each as an independently skippable stage.
// Exit code is 0 on success and 1 when any non-skipped stage fails.
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

	importMethod := flag.String("import-method", "direct", "import mechanism: api or direct")
	batchSize := flag.Int("batch-size", 10, "batch size for API imports")
	maxOrders := flag.Int("max-orders", 0, "maximum number of orders to import (0 for all)")

	skipTraining := flag.Bool("skip-training", false, "skip model training")
	skipGeneration := flag.Bool("skip-generation", false, "skip data generation")
	skipImport := flag.Bool("skip-import", false, "skip data import")
	flag.Parse()

	if *importMethod != "api" && *importMethod != "direct" {
		log.Fatalf("invalid -import-method %q (want api or direct)", *importMethod)
	}
	if *seed == 0 {
		*seed = time.Now().UnixNano()
	}

	outDir := config.Get("OUTPUT_DIR", "server/test_data")
	snapshots := snapshot.NewJSONSnapshotStore(outDir)

	trainer := &training.FileCheckTrainer{
		ModelsDir: config.Get("MODELS_DIR", "server/models"),
		Artifacts: []string{"clustering_model.pkl", "distance_prediction_model.pkl"},
		Command:   strings.Fields(config.Get("TRAIN_CMD", "python server/geomodels.py")),
	}

	generator := &services.DatasetGenerator{
		Req: services.GenerateDatasetRequest{
			NumAgents:      *numAgents,
			NumStores:      *numStores,
			NumCustomers:   *numCustomers,
			NumOrders:      *numOrders,
			NumClusters:    *numClusters,
			CityLimit:      *cityLimit,
			AssignFraction: *assignFraction,
			Seed:           *seed,
		},
		Cities:    cities.NewCSVCitySource(config.Get("CITIES_CSV_PATH", "attached_assets/cities.csv")),
		Fallback:  cities.NewSyntheticCitySource(rand.New(rand.NewSource(*seed + 1))),
		Snapshots: snapshots,
	}

	var importer ports.Importer
	if !*skipImport {
		var err error
		importer, err = buildImporter(*importMethod, *batchSize, *maxOrders)
		if err != nil {
			log.Fatal(err)
		}
	}

	pipeline := &services.SetupPipeline{
		Trainer:   trainer,
		Generator: generator,
		Loader:    snapshots,
		Importer:  importer,
	}

	ctx := context.WithValue(context.Background(), obs.RunIDKey, uuid.NewString())

	start := time.Now()
	if err := pipeline.Run(ctx, services.SetupRequest{
		SkipTraining:   *skipTraining,
		SkipGeneration: *skipGeneration,
		SkipImport:     *skipImport,
	}); err != nil {
		log.Printf("setup failed: %v", err)
		os.Exit(1)
	}

	log.Printf("setup complete dur=%dms", time.Since(start).Milliseconds())
}

func buildImporter(method string, batchSize, maxOrders int) (ports.Importer, error) {
	if method == "api" {
		return importing.NewAPIImporter(config.Get("API_BASE_URL", "http://localhost:5000"), batchSize, maxOrders)
	}

	// Direct import: Postgres when a DATABASE_URL is configured,
	// otherwise the local SQLite file.
	if dsn := strings.TrimSpace(os.Getenv("DATABASE_URL")); dsn != "" {
		conn, err := db.Open(dsn)
		if err != nil {
			return nil, err
		}
		return importing.NewPostgresImporter(conn, maxOrders), nil
	}

	conn, err := db.OpenSQLite(config.Get("DB_PATH", "data/app.db"))
	if err != nil {
		return nil, err
	}
	return importing.NewSQLiteImporter(conn, maxOrders), nil
}
