package snapshot

import (
	"context"
	"encoding/json"
	"fmt"
	"logistics-seed-service/internal/domain"
	"os"
	"path/filepath"
)

const (
	agentsFile    = "test_agents.json"
	storesFile    = "test_stores.json"
	customersFile = "test_customers.json"
	ordersFile    = "test_orders.json"
	clustersFile  = "test_clusters.json"
)

// JSONSnapshotStore persists entity snapshots as one JSON array document
// per entity type under a single directory.
//
// Writes are atomic: the document is written to a temp file in the target
// directory and renamed over the destination, so readers never observe a
// partially written snapshot.
type JSONSnapshotStore struct {
	Dir string
}

func NewJSONSnapshotStore(dir string) *JSONSnapshotStore {
	return &JSONSnapshotStore{Dir: dir}
}

func (s *JSONSnapshotStore) WriteAgents(ctx context.Context, agents []domain.Agent) error {
	return s.write(ctx, agentsFile, agents)
}

func (s *JSONSnapshotStore) WriteStores(ctx context.Context, stores []domain.Store) error {
	return s.write(ctx, storesFile, stores)
}

func (s *JSONSnapshotStore) WriteCustomers(ctx context.Context, customers []domain.Customer) error {
	return s.write(ctx, customersFile, customers)
}

func (s *JSONSnapshotStore) WriteOrders(ctx context.Context, orders []*domain.Order) error {
	return s.write(ctx, ordersFile, orders)
}

func (s *JSONSnapshotStore) WriteClusters(ctx context.Context, clusters []domain.Cluster) error {
	return s.write(ctx, clustersFile, clusters)
}

func (s *JSONSnapshotStore) write(ctx context.Context, name string, v any) error {
	if err := ctx.Err(); err != nil {
		return fmt.Errorf("write snapshot %s: %w", name, err)
	}

	if err := os.MkdirAll(s.Dir, 0o755); err != nil {
		return fmt.Errorf("write snapshot %s: create dir %q: %w", name, s.Dir, err)
	}

	data, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return fmt.Errorf("write snapshot %s: marshal: %w", name, err)
	}

	tmp, err := os.CreateTemp(s.Dir, name+".tmp-*")
	if err != nil {
		return fmt.Errorf("write snapshot %s: create temp file: %w", name, err)
	}
	tmpName := tmp.Name()

	if _, err := tmp.Write(data); err != nil {
		tmp.Close()
		os.Remove(tmpName)
		return fmt.Errorf("write snapshot %s: write temp file: %w", name, err)
	}
	if err := tmp.Close(); err != nil {
		os.Remove(tmpName)
		return fmt.Errorf("write snapshot %s: close temp file: %w", name, err)
	}

	if err := os.Rename(tmpName, filepath.Join(s.Dir, name)); err != nil {
		os.Remove(tmpName)
		return fmt.Errorf("write snapshot %s: rename into place: %w", name, err)
	}

	return nil
}

// Load reads all five snapshot documents back into a Dataset. Used by the
// import stage when generation was skipped in the current run.
func (s *JSONSnapshotStore) Load(ctx context.Context) (*domain.Dataset, error) {
	if err := ctx.Err(); err != nil {
		return nil, fmt.Errorf("load snapshots: %w", err)
	}

	ds := &domain.Dataset{}
	if err := s.read(agentsFile, &ds.Agents); err != nil {
		return nil, err
	}
	if err := s.read(storesFile, &ds.Stores); err != nil {
		return nil, err
	}
	if err := s.read(customersFile, &ds.Customers); err != nil {
		return nil, err
	}
	if err := s.read(ordersFile, &ds.Orders); err != nil {
		return nil, err
	}
	if err := s.read(clustersFile, &ds.Clusters); err != nil {
		return nil, err
	}
	return ds, nil
}

func (s *JSONSnapshotStore) read(name string, v any) error {
	data, err := os.ReadFile(filepath.Join(s.Dir, name))
	if err != nil {
		return fmt.Errorf("load snapshots: read %s: %w", name, err)
	}
	if err := json.Unmarshal(data, v); err != nil {
		return fmt.Errorf("load snapshots: parse %s: %w", name, err)
	}
	return nil
}
