package domain

// OrderStatus is the lifecycle state of an order.
type OrderStatus string

const (
	StatusPending   OrderStatus = "Pending"
	StatusAssigned  OrderStatus = "Assigned"
	StatusInTransit OrderStatus = "InTransit"
	StatusDelivered OrderStatus = "Delivered"
	StatusFailed    OrderStatus = "Failed"
	StatusCancelled OrderStatus = "Cancelled"
	StatusReturned  OrderStatus = "Returned"
	StatusOnHold    OrderStatus = "OnHold"
)

// Order is a delivery request from a store to a customer.
//
// An order is mutated exactly twice after generation: the grid clusterer
// sets ClusterID, and the driver assigner sets DriverID (promoting a
// Pending order to Assigned). ClusterID and DriverID stay nil until then.
type Order struct {
	ID                   int         `json:"id"`
	UUID                 string      `json:"uuid"`
	CustomerID           int         `json:"customerId"`
	StoreID              int         `json:"storeId"`
	Status               OrderStatus `json:"status"`
	Priority             string      `json:"priority"`
	OrderDate            string      `json:"orderDate"`
	ExpectedDeliveryDate string      `json:"expectedDeliveryDate"`
	Items                int         `json:"items"`
	TotalWeight          float64     `json:"totalWeight"`
	Value                float64     `json:"value"`
	Currency             string      `json:"currency"`
	QRCode               string      `json:"qrCode"`
	Notes                string      `json:"notes"`
	PickupLatitude       float64     `json:"pickupLatitude"`
	PickupLongitude      float64     `json:"pickupLongitude"`
	DeliveryLatitude     float64     `json:"deliveryLatitude"`
	DeliveryLongitude    float64     `json:"deliveryLongitude"`
	ClusterID            *int        `json:"clusterId"`
	DriverID             *int        `json:"driverId"`
}

// AssignDriver sets the order's driver and promotes a Pending order to
// Assigned. Orders in any other status keep their status unchanged.
func (o *Order) AssignDriver(driverID int) {
	o.DriverID = &driverID
	if o.Status == StatusPending {
		o.Status = StatusAssigned
	}
}
