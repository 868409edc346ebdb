package services

import (
	"logistics-seed-service/internal/domain"
	"math"
	"math/rand"
	"testing"
	"time"

	"github.com/jaswdr/faker"
)

func testCities(n int) []domain.Location {
	cities := make([]domain.Location, 0, n)
	for i := 0; i < n; i++ {
		cities = append(cities, domain.Location{
			ID:        i,
			Name:      "Town",
			Country:   "Country",
			State:     "State",
			Latitude:  float64(i),
			Longitude: float64(-i),
		})
	}
	return cities
}

func TestGenerateAgents(t *testing.T) {
	cities := testCities(3)
	now := time.Date(2026, 8, 1, 0, 0, 0, 0, time.UTC)
	fake := faker.NewWithSeed(rand.NewSource(1))
	rng := rand.New(rand.NewSource(1))

	agents := GenerateAgents(5, cities, now, fake, rng)
	if len(agents) != 5 {
		t.Fatalf("got %d agents, want 5", len(agents))
	}

	// First agents are homed on the loaded cities, the rest get random
	// coordinates.
	for i := 0; i < 3; i++ {
		if agents[i].Latitude != cities[i].Latitude || agents[i].Longitude != cities[i].Longitude {
			t.Errorf("agent %d not homed on city %d", agents[i].ID, i)
		}
	}

	for _, a := range agents {
		if a.ID < 1 || a.ID > 5 {
			t.Errorf("agent id %d out of range", a.ID)
		}
		if a.Role != "driver" {
			t.Errorf("agent %d role = %q, want driver", a.ID, a.Role)
		}
		if a.Rating < 3.0 || a.Rating > 5.0 {
			t.Errorf("agent %d rating %v out of [3,5]", a.ID, a.Rating)
		}
		if a.MaxCapacity < 5 || a.MaxCapacity > 50 {
			t.Errorf("agent %d capacity %d out of [5,50]", a.ID, a.MaxCapacity)
		}
		if _, err := time.Parse("2006-01-02", a.JoinDate); err != nil {
			t.Errorf("agent %d join date %q: %v", a.ID, a.JoinDate, err)
		}
	}
}

func TestGenerateCustomersJitter(t *testing.T) {
	cities := testCities(4)
	now := time.Date(2026, 8, 1, 0, 0, 0, 0, time.UTC)
	fake := faker.NewWithSeed(rand.NewSource(2))
	rng := rand.New(rand.NewSource(2))

	customers := GenerateCustomers(40, cities, now, fake, rng)
	if len(customers) != 40 {
		t.Fatalf("got %d customers, want 40", len(customers))
	}

	for _, c := range customers {
		base := cities[c.ID%len(cities)]
		if math.Abs(c.Latitude-base.Latitude) > 0.02 {
			t.Errorf("customer %d latitude jitter %v exceeds 0.02", c.ID, c.Latitude-base.Latitude)
		}
		if math.Abs(c.Longitude-base.Longitude) > 0.02 {
			t.Errorf("customer %d longitude jitter %v exceeds 0.02", c.ID, c.Longitude-base.Longitude)
		}
	}
}

func TestGenerateStores(t *testing.T) {
	cities := testCities(2)
	fake := faker.NewWithSeed(rand.NewSource(3))
	rng := rand.New(rand.NewSource(3))

	stores := GenerateStores(10, cities, fake, rng)
	if len(stores) != 10 {
		t.Fatalf("got %d stores, want 10", len(stores))
	}

	for _, s := range stores {
		if s.Capacity < 1000 || s.Capacity > 10000 {
			t.Errorf("store %d capacity %d out of [1000,10000]", s.ID, s.Capacity)
		}
		if s.Latitude < -90 || s.Latitude > 90 || s.Longitude < -180 || s.Longitude > 180 {
			t.Errorf("store %d coordinates out of range: (%v,%v)", s.ID, s.Latitude, s.Longitude)
		}
	}
}

func TestGenerateOrders(t *testing.T) {
	cities := testCities(3)
	now := time.Date(2026, 8, 1, 0, 0, 0, 0, time.UTC)
	fake := faker.NewWithSeed(rand.NewSource(4))
	rng := rand.New(rand.NewSource(4))

	stores := GenerateStores(5, cities, fake, rng)
	customers := GenerateCustomers(20, cities, now, fake, rng)

	orders, err := GenerateOrders(100, customers, stores, now, fake, rng)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(orders) != 100 {
		t.Fatalf("got %d orders, want 100", len(orders))
	}

	validStatus := map[domain.OrderStatus]bool{
		domain.StatusPending: true, domain.StatusAssigned: true,
		domain.StatusInTransit: true, domain.StatusDelivered: true,
		domain.StatusFailed: true, domain.StatusCancelled: true,
		domain.StatusReturned: true, domain.StatusOnHold: true,
	}

	customerByID := map[int]domain.Customer{}
	for _, c := range customers {
		customerByID[c.ID] = c
	}
	storeByID := map[int]domain.Store{}
	for _, s := range stores {
		storeByID[s.ID] = s
	}

	for _, o := range orders {
		customer, ok := customerByID[o.CustomerID]
		if !ok {
			t.Fatalf("order %d references unknown customer %d", o.ID, o.CustomerID)
		}
		store, ok := storeByID[o.StoreID]
		if !ok {
			t.Fatalf("order %d references unknown store %d", o.ID, o.StoreID)
		}

		if o.DeliveryLatitude != customer.Latitude || o.DeliveryLongitude != customer.Longitude {
			t.Errorf("order %d delivery coordinates do not match customer", o.ID)
		}
		if o.PickupLatitude != store.Latitude || o.PickupLongitude != store.Longitude {
			t.Errorf("order %d pickup coordinates do not match store", o.ID)
		}

		if !validStatus[o.Status] {
			t.Errorf("order %d has invalid status %q", o.ID, o.Status)
		}
		if o.ClusterID != nil || o.DriverID != nil {
			t.Errorf("order %d already has cluster or driver", o.ID)
		}
		if o.UUID == "" {
			t.Errorf("order %d has empty uuid", o.ID)
		}

		placed, err := time.Parse("2006-01-02", o.OrderDate)
		if err != nil {
			t.Fatalf("order %d order date %q: %v", o.ID, o.OrderDate, err)
		}
		due, err := time.Parse("2006-01-02", o.ExpectedDeliveryDate)
		if err != nil {
			t.Fatalf("order %d delivery date %q: %v", o.ID, o.ExpectedDeliveryDate, err)
		}
		if due.Before(placed) {
			t.Errorf("order %d expected delivery %s before order date %s", o.ID, o.ExpectedDeliveryDate, o.OrderDate)
		}
	}
}

func TestGenerateOrdersRequiresReferences(t *testing.T) {
	now := time.Now()
	fake := faker.NewWithSeed(rand.NewSource(5))
	rng := rand.New(rand.NewSource(5))

	if _, err := GenerateOrders(10, nil, []domain.Store{{ID: 1}}, now, fake, rng); err == nil {
		t.Fatal("expected error for empty customers")
	}
	if _, err := GenerateOrders(10, []domain.Customer{{ID: 1}}, nil, now, fake, rng); err == nil {
		t.Fatal("expected error for empty stores")
	}
}
