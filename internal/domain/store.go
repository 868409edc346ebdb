package domain

// Store or warehouse acting as an order pickup point.
// Immutable post-creation.
type Store struct {
	ID             int     `json:"id"`
	Name           string  `json:"name"`
	Type           string  `json:"type"`
	Address        string  `json:"address"`
	City           string  `json:"city"`
	Country        string  `json:"country"`
	Latitude       float64 `json:"latitude"`
	Longitude      float64 `json:"longitude"`
	Capacity       int     `json:"capacity"`
	Manager        string  `json:"manager"`
	Contact        string  `json:"contact"`
	Email          string  `json:"email"`
	OperatingHours string  `json:"operatingHours"`
	IsActive       bool    `json:"isActive"`
}
