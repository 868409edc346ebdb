package ports

import (
	"context"
	"logistics-seed-service/internal/domain"
)

// Port: persistence boundary for entity snapshots.
//
// Each Write replaces the complete document for that entity type;
// snapshots are overwritten, never appended.
type SnapshotStore interface {
	WriteAgents(ctx context.Context, agents []domain.Agent) error
	WriteStores(ctx context.Context, stores []domain.Store) error
	WriteCustomers(ctx context.Context, customers []domain.Customer) error
	WriteOrders(ctx context.Context, orders []*domain.Order) error
	WriteClusters(ctx context.Context, clusters []domain.Cluster) error
}

// Port: read side of the snapshot store, used when the import stage runs
// without a preceding generation stage.
type DatasetLoader interface {
	Load(ctx context.Context) (*domain.Dataset, error)
}
