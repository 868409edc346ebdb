package services

import (
	"context"
	"fmt"
	"log"
	"logistics-seed-service/internal/domain"
	"logistics-seed-service/internal/ports"
)

type SetupRequest struct {
	SkipTraining   bool
	SkipGeneration bool
	SkipImport     bool
}

// SetupPipeline sequences the three external steps of a full data setup:
// model training, dataset generation, and import. Stages run strictly in
// order; the first failing non-skipped stage aborts the rest.
type SetupPipeline struct {
	Trainer   ports.Trainer
	Generator ports.Generator
	Loader    ports.DatasetLoader
	Importer  ports.Importer
}

// Run executes the pipeline. When generation is skipped, the dataset for
// the import stage is loaded from the existing snapshots instead.
func (p *SetupPipeline) Run(ctx context.Context, req SetupRequest) error {
	if req.SkipTraining {
		log.Printf("stage=training skipped=true")
	} else {
		if err := p.Trainer.Train(ctx); err != nil {
			return fmt.Errorf("setup: train models: %w", err)
		}
	}

	var ds *domain.Dataset
	if req.SkipGeneration {
		log.Printf("stage=generation skipped=true")
	} else {
		var err error
		ds, err = p.Generator.Generate(ctx)
		if err != nil {
			return fmt.Errorf("setup: generate dataset: %w", err)
		}
	}

	if req.SkipImport {
		log.Printf("stage=import skipped=true")
		return nil
	}

	if ds == nil {
		var err error
		ds, err = p.Loader.Load(ctx)
		if err != nil {
			return fmt.Errorf("setup: load dataset snapshots: %w", err)
		}
	}

	if err := p.Importer.Import(ctx, ds); err != nil {
		return fmt.Errorf("setup: import dataset: %w", err)
	}

	logSummary(ds)
	return nil
}

func logSummary(ds *domain.Dataset) {
	log.Printf(
		"summary agents=%d stores=%d customers=%d orders=%d clusters=%d assigned=%d",
		len(ds.Agents), len(ds.Stores), len(ds.Customers), len(ds.Orders), len(ds.Clusters), ds.AssignedOrders(),
	)
	total := len(ds.Orders)
	if total == 0 {
		return
	}
	for status, count := range ds.StatusCounts() {
		log.Printf("summary status=%s count=%d pct=%.1f", status, count, float64(count)/float64(total)*100)
	}
}
