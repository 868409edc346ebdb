package importing

import (
	"context"
	"encoding/json"
	"io"
	"logistics-seed-service/internal/domain"
	"net/http"
	"net/http/httptest"
	"sync"
	"testing"
)

func sampleDataset(orderCount int) *domain.Dataset {
	ds := &domain.Dataset{
		Agents:    []domain.Agent{{ID: 1, Username: "agent1"}},
		Stores:    []domain.Store{{ID: 1, Name: "Store 1"}},
		Customers: []domain.Customer{{ID: 1, Name: "Customer"}},
		Clusters:  []domain.Cluster{{ID: 1, Name: "Cluster 1", OrderCount: orderCount}},
	}
	clusterID := 1
	for i := 1; i <= orderCount; i++ {
		ds.Orders = append(ds.Orders, &domain.Order{
			ID:        i,
			UUID:      "u",
			Status:    domain.StatusPending,
			ClusterID: &clusterID,
		})
	}
	return ds
}

func TestAPIImporterBatchesOrders(t *testing.T) {
	var mu sync.Mutex
	batches := map[string][]int{}

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		body, err := io.ReadAll(r.Body)
		if err != nil {
			t.Errorf("read body: %v", err)
		}
		var records []json.RawMessage
		if err := json.Unmarshal(body, &records); err != nil {
			t.Errorf("payload for %s is not a JSON array: %v", r.URL.Path, err)
		}

		mu.Lock()
		batches[r.URL.Path] = append(batches[r.URL.Path], len(records))
		mu.Unlock()

		w.WriteHeader(http.StatusOK)
	}))
	defer srv.Close()

	imp, err := NewAPIImporter(srv.URL, 4, 0)
	if err != nil {
		t.Fatalf("new importer: %v", err)
	}

	if err := imp.Import(context.Background(), sampleDataset(10)); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	orderBatches := batches["/api/orders"]
	if len(orderBatches) != 3 {
		t.Fatalf("order batches = %d, want 3", len(orderBatches))
	}
	total := 0
	for _, n := range orderBatches {
		if n > 4 {
			t.Fatalf("batch of %d exceeds batch size 4", n)
		}
		total += n
	}
	if total != 10 {
		t.Fatalf("imported %d orders, want 10", total)
	}

	for _, path := range []string{"/api/agents", "/api/stores", "/api/customers", "/api/clusters"} {
		if len(batches[path]) == 0 {
			t.Errorf("no requests made to %s", path)
		}
	}
}

func TestAPIImporterMaxOrdersCap(t *testing.T) {
	var mu sync.Mutex
	orderCount := 0

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path == "/api/orders" {
			var records []json.RawMessage
			body, _ := io.ReadAll(r.Body)
			_ = json.Unmarshal(body, &records)
			mu.Lock()
			orderCount += len(records)
			mu.Unlock()
		}
		w.WriteHeader(http.StatusOK)
	}))
	defer srv.Close()

	imp, err := NewAPIImporter(srv.URL, 10, 7)
	if err != nil {
		t.Fatalf("new importer: %v", err)
	}
	if err := imp.Import(context.Background(), sampleDataset(20)); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if orderCount != 7 {
		t.Fatalf("imported %d orders, want 7 (capped)", orderCount)
	}
}

func TestAPIImporterPropagatesFailure(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		// 400 is not retryable, so the importer must fail immediately.
		http.Error(w, "bad payload", http.StatusBadRequest)
	}))
	defer srv.Close()

	imp, err := NewAPIImporter(srv.URL, 5, 0)
	if err != nil {
		t.Fatalf("new importer: %v", err)
	}

	if err := imp.Import(context.Background(), sampleDataset(3)); err == nil {
		t.Fatal("expected error from failing API")
	}
}

func TestAPIImporterRetriesServerErrors(t *testing.T) {
	var mu sync.Mutex
	attempts := 0

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		mu.Lock()
		attempts++
		n := attempts
		mu.Unlock()

		if n == 1 {
			http.Error(w, "transient", http.StatusServiceUnavailable)
			return
		}
		w.WriteHeader(http.StatusOK)
	}))
	defer srv.Close()

	imp, err := NewAPIImporter(srv.URL, 100, 0)
	if err != nil {
		t.Fatalf("new importer: %v", err)
	}

	ds := &domain.Dataset{Agents: []domain.Agent{{ID: 1}}}
	if err := imp.Import(context.Background(), ds); err != nil {
		t.Fatalf("unexpected error after retry: %v", err)
	}
	if attempts < 2 {
		t.Fatalf("attempts = %d, want at least 2", attempts)
	}
}

func TestNewAPIImporterValidation(t *testing.T) {
	if _, err := NewAPIImporter("", 10, 0); err == nil {
		t.Fatal("expected error for empty base URL")
	}
	if _, err := NewAPIImporter("http://localhost", 0, 0); err == nil {
		t.Fatal("expected error for zero batch size")
	}
	if _, err := NewAPIImporter("http://localhost", 10, -1); err == nil {
		t.Fatal("expected error for negative max orders")
	}
}
