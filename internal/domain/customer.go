package domain

// Customer record. The location is jittered from a base city so that
// customers in the same city do not collapse onto a single coordinate.
// Immutable post-creation.
type Customer struct {
	ID            int     `json:"id"`
	Name          string  `json:"name"`
	Email         string  `json:"email"`
	Phone         string  `json:"phone"`
	Address       string  `json:"address"`
	City          string  `json:"city"`
	Country       string  `json:"country"`
	Latitude      float64 `json:"latitude"`
	Longitude     float64 `json:"longitude"`
	CustomerSince string  `json:"customerSince"`
	Type          string  `json:"type"`
	PriorityLevel string  `json:"priorityLevel"`
}
