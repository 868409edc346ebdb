package services

import (
	"errors"
	"fmt"
	"logistics-seed-service/internal/domain"
	"math/rand"
	"time"

	"github.com/google/uuid"
	"github.com/jaswdr/faker"
)

// Weighted status distribution for freshly generated orders.
var orderStatusWeights = []struct {
	Status domain.OrderStatus
	Weight float64
}{
	{domain.StatusPending, 0.30},
	{domain.StatusAssigned, 0.20},
	{domain.StatusInTransit, 0.20},
	{domain.StatusDelivered, 0.10},
	{domain.StatusFailed, 0.05},
	{domain.StatusCancelled, 0.05},
	{domain.StatusReturned, 0.05},
	{domain.StatusOnHold, 0.05},
}

func randomOrderStatus(rng *rand.Rand) domain.OrderStatus {
	r := rng.Float64()
	acc := 0.0
	for _, sw := range orderStatusWeights {
		acc += sw.Weight
		if r < acc {
			return sw.Status
		}
	}
	return orderStatusWeights[len(orderStatusWeights)-1].Status
}

// GenerateOrders produces n orders referencing random customers and stores.
// Pickup coordinates come from the store, delivery coordinates from the
// customer. ClusterID and DriverID stay nil; later stages set them.
func GenerateOrders(n int, customers []domain.Customer, stores []domain.Store, now time.Time, fake faker.Faker, rng *rand.Rand) ([]*domain.Order, error) {
	if len(customers) == 0 || len(stores) == 0 {
		return nil, errors.New("generate orders: customers and stores must not be empty")
	}

	orders := make([]*domain.Order, 0, n)
	for i := 1; i <= n; i++ {
		customer := customers[rng.Intn(len(customers))]
		store := stores[rng.Intn(len(stores))]

		orderDate := now.AddDate(0, 0, -fake.IntBetween(1, 60))
		deliveryDate := orderDate.AddDate(0, 0, fake.IntBetween(1, 15))

		trackingUUID := uuid.NewString()

		orders = append(orders, &domain.Order{
			ID:                   i,
			UUID:                 trackingUUID,
			CustomerID:           customer.ID,
			StoreID:              store.ID,
			Status:               randomOrderStatus(rng),
			Priority:             fake.RandomStringElement([]string{"Low", "Medium", "High", "Urgent"}),
			OrderDate:            orderDate.Format(dateLayout),
			ExpectedDeliveryDate: deliveryDate.Format(dateLayout),
			Items:                fake.IntBetween(1, 10),
			TotalWeight:          round2(0.5 + rng.Float64()*49.5),
			Value:                round2(10 + rng.Float64()*490),
			Currency:             "USD",
			QRCode:               fmt.Sprintf("https://api.qrserver.com/v1/create-qr-code/?size=200x200&data=%s", trackingUUID),
			Notes:                fmt.Sprintf("Test order %d", i),
			PickupLatitude:       store.Latitude,
			PickupLongitude:      store.Longitude,
			DeliveryLatitude:     customer.Latitude,
			DeliveryLongitude:    customer.Longitude,
		})
	}

	return orders, nil
}
