package domain

// Cluster is a derived grouping of orders sharing a spatial grid cell.
// Clusters are recomputed each run and replaced wholesale, never mutated.
// Centroid coordinates are the arithmetic mean of the member orders'
// delivery coordinates.
type Cluster struct {
	ID          int     `json:"id"`
	Name        string  `json:"name"`
	Latitude    float64 `json:"latitude"`
	Longitude   float64 `json:"longitude"`
	Radius      float64 `json:"radius"`
	OrderCount  int     `json:"orderCount"`
	CreatedAt   string  `json:"createdAt"`
	LastUpdated string  `json:"lastUpdated"`
	Status      string  `json:"status"`
	Description string  `json:"description"`
}
