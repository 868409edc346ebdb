package domain

// Geographic reference point sourced from the cities dataset.
// Locations are immutable once loaded.
type Location struct {
	ID        int     `json:"id"`
	Name      string  `json:"name"`
	Country   string  `json:"country"`
	State     string  `json:"state"`
	Latitude  float64 `json:"latitude"`
	Longitude float64 `json:"longitude"`
}

// ValidCoordinates reports whether the location lies inside the
// lat [-90,90] / lon [-180,180] envelope.
func (l Location) ValidCoordinates() bool {
	return l.Latitude >= -90 && l.Latitude <= 90 &&
		l.Longitude >= -180 && l.Longitude <= 180
}
