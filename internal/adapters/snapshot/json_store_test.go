package snapshot

import (
	"context"
	"encoding/json"
	"logistics-seed-service/internal/domain"
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func TestJSONSnapshotStoreRoundTrip(t *testing.T) {
	dir := t.TempDir()
	store := NewJSONSnapshotStore(dir)
	ctx := context.Background()

	clusterID := 3
	driverID := 7

	agents := []domain.Agent{{ID: 7, Username: "agent7", Role: "driver"}}
	stores := []domain.Store{{ID: 2, Name: "Store A", IsActive: true}}
	customers := []domain.Customer{{ID: 5, Name: "Ayse Kaya"}}
	orders := []*domain.Order{{
		ID:        1,
		UUID:      "u-1",
		Status:    domain.StatusAssigned,
		ClusterID: &clusterID,
		DriverID:  &driverID,
	}}
	clusters := []domain.Cluster{{ID: 3, Name: "Cluster 3", OrderCount: 1}}

	if err := store.WriteAgents(ctx, agents); err != nil {
		t.Fatalf("write agents: %v", err)
	}
	if err := store.WriteStores(ctx, stores); err != nil {
		t.Fatalf("write stores: %v", err)
	}
	if err := store.WriteCustomers(ctx, customers); err != nil {
		t.Fatalf("write customers: %v", err)
	}
	if err := store.WriteOrders(ctx, orders); err != nil {
		t.Fatalf("write orders: %v", err)
	}
	if err := store.WriteClusters(ctx, clusters); err != nil {
		t.Fatalf("write clusters: %v", err)
	}

	ds, err := store.Load(ctx)
	if err != nil {
		t.Fatalf("load: %v", err)
	}

	if len(ds.Agents) != 1 || ds.Agents[0].Username != "agent7" {
		t.Fatalf("agents round trip failed: %+v", ds.Agents)
	}
	if len(ds.Orders) != 1 {
		t.Fatalf("orders round trip failed: %+v", ds.Orders)
	}
	o := ds.Orders[0]
	if o.ClusterID == nil || *o.ClusterID != 3 {
		t.Fatalf("order cluster id not preserved: %v", o.ClusterID)
	}
	if o.DriverID == nil || *o.DriverID != 7 {
		t.Fatalf("order driver id not preserved: %v", o.DriverID)
	}
}

func TestJSONSnapshotStoreOverwrites(t *testing.T) {
	dir := t.TempDir()
	store := NewJSONSnapshotStore(dir)
	ctx := context.Background()

	if err := store.WriteAgents(ctx, []domain.Agent{{ID: 1}, {ID: 2}}); err != nil {
		t.Fatalf("first write: %v", err)
	}
	if err := store.WriteAgents(ctx, []domain.Agent{{ID: 9}}); err != nil {
		t.Fatalf("second write: %v", err)
	}

	data, err := os.ReadFile(filepath.Join(dir, "test_agents.json"))
	if err != nil {
		t.Fatalf("read snapshot: %v", err)
	}

	var agents []domain.Agent
	if err := json.Unmarshal(data, &agents); err != nil {
		t.Fatalf("parse snapshot: %v", err)
	}
	if len(agents) != 1 || agents[0].ID != 9 {
		t.Fatalf("snapshot not replaced, got %+v", agents)
	}
}

func TestJSONSnapshotStoreLeavesNoTempFiles(t *testing.T) {
	dir := t.TempDir()
	store := NewJSONSnapshotStore(dir)

	if err := store.WriteClusters(context.Background(), []domain.Cluster{{ID: 1}}); err != nil {
		t.Fatalf("write clusters: %v", err)
	}

	entries, err := os.ReadDir(dir)
	if err != nil {
		t.Fatalf("read dir: %v", err)
	}
	for _, e := range entries {
		if strings.Contains(e.Name(), ".tmp") {
			t.Fatalf("temp file left behind: %s", e.Name())
		}
	}
}

func TestJSONSnapshotStoreNullFields(t *testing.T) {
	dir := t.TempDir()
	store := NewJSONSnapshotStore(dir)

	// Unclustered, unassigned orders serialize with explicit nulls for
	// the application to detect.
	orders := []*domain.Order{{ID: 1, UUID: "u-1", Status: domain.StatusPending}}
	if err := store.WriteOrders(context.Background(), orders); err != nil {
		t.Fatalf("write orders: %v", err)
	}

	data, err := os.ReadFile(filepath.Join(dir, "test_orders.json"))
	if err != nil {
		t.Fatalf("read snapshot: %v", err)
	}
	s := string(data)
	if !strings.Contains(s, `"clusterId": null`) {
		t.Error("clusterId not serialized as null")
	}
	if !strings.Contains(s, `"driverId": null`) {
		t.Error("driverId not serialized as null")
	}
}
