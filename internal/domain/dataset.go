package domain

// Dataset is the complete output of one generation run: every entity
// snapshot the pipeline produces, held in memory between stages.
type Dataset struct {
	Agents    []Agent
	Stores    []Store
	Customers []Customer
	Orders    []*Order
	Clusters  []Cluster
}

// StatusCounts tallies orders per status.
func (d *Dataset) StatusCounts() map[OrderStatus]int {
	counts := make(map[OrderStatus]int, 8)
	for _, o := range d.Orders {
		counts[o.Status]++
	}
	return counts
}

// AssignedOrders counts orders that have a driver.
func (d *Dataset) AssignedOrders() int {
	n := 0
	for _, o := range d.Orders {
		if o.DriverID != nil {
			n++
		}
	}
	return n
}
