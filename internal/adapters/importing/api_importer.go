package importing

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log"
	"logistics-seed-service/internal/domain"
	"net/http"
	"strings"
	"time"
)

// APIImporter pushes a dataset into the logistics application through its
// network API, one entity collection at a time in fixed-size batches.
type APIImporter struct {
	baseURL   string
	session   *http.Client
	batchSize int
	maxOrders int
}

// NewAPIImporter builds an importer for the API at baseURL. batchSize
// bounds the records per request; maxOrders caps imported orders
// (0 imports all).
func NewAPIImporter(baseURL string, batchSize, maxOrders int) (*APIImporter, error) {
	baseURL = strings.TrimRight(strings.TrimSpace(baseURL), "/")
	if baseURL == "" {
		return nil, errors.New("api importer: base URL must not be empty")
	}
	if batchSize <= 0 {
		return nil, fmt.Errorf("api importer: batch size must be positive, got %d", batchSize)
	}
	if maxOrders < 0 {
		return nil, fmt.Errorf("api importer: max orders must not be negative, got %d", maxOrders)
	}

	return &APIImporter{
		baseURL:   baseURL,
		session:   &http.Client{Timeout: 30 * time.Second},
		batchSize: batchSize,
		maxOrders: maxOrders,
	}, nil
}

func (a *APIImporter) Import(ctx context.Context, ds *domain.Dataset) error {
	orders := ds.Orders
	if a.maxOrders > 0 && len(orders) > a.maxOrders {
		orders = orders[:a.maxOrders]
	}

	if err := postBatches(ctx, a, "/api/agents", ds.Agents); err != nil {
		return fmt.Errorf("api import: agents: %w", err)
	}
	if err := postBatches(ctx, a, "/api/stores", ds.Stores); err != nil {
		return fmt.Errorf("api import: stores: %w", err)
	}
	if err := postBatches(ctx, a, "/api/customers", ds.Customers); err != nil {
		return fmt.Errorf("api import: customers: %w", err)
	}
	if err := postBatches(ctx, a, "/api/clusters", ds.Clusters); err != nil {
		return fmt.Errorf("api import: clusters: %w", err)
	}
	if err := postBatches(ctx, a, "/api/orders", orders); err != nil {
		return fmt.Errorf("api import: orders: %w", err)
	}

	log.Printf(
		"api import complete agents=%d stores=%d customers=%d clusters=%d orders=%d",
		len(ds.Agents), len(ds.Stores), len(ds.Customers), len(ds.Clusters), len(orders),
	)
	return nil
}

func postBatches[T any](ctx context.Context, a *APIImporter, path string, records []T) error {
	for start := 0; start < len(records); start += a.batchSize {
		end := start + a.batchSize
		if end > len(records) {
			end = len(records)
		}

		if err := a.postJSON(ctx, path, records[start:end]); err != nil {
			return fmt.Errorf("batch %d-%d: %w", start, end, err)
		}
	}
	return nil
}

func (a *APIImporter) postJSON(ctx context.Context, path string, payload any) error {
	body, err := json.Marshal(payload)
	if err != nil {
		return fmt.Errorf("marshal payload: %w", err)
	}

	resp, err := a.doWithRetry(ctx, func() (*http.Request, error) {
		return a.newRequest(ctx, http.MethodPost, a.baseURL+path, bytes.NewReader(body))
	})
	if err != nil {
		return fmt.Errorf("post %s: %w", path, err)
	}
	defer resp.Body.Close()

	return nil
}
