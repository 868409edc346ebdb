package domain

// Field agent (driver) record. Created once per generation run and not
// mutated afterward; orders reference agents through their DriverID field.
type Agent struct {
	ID            int     `json:"id"`
	Username      string  `json:"username"`
	Password      string  `json:"password"`
	Email         string  `json:"email"`
	Phone         string  `json:"phone"`
	FullName      string  `json:"fullName"`
	Role          string  `json:"role"`
	Status        string  `json:"status"`
	HomeBase      string  `json:"homeBase"`
	Latitude      float64 `json:"latitude"`
	Longitude     float64 `json:"longitude"`
	LicenseNumber string  `json:"licenseNumber"`
	VehicleType   string  `json:"vehicleType"`
	MaxCapacity   int     `json:"maxCapacity"`
	Availability  string  `json:"availability"`
	Rating        float64 `json:"rating"`
	JoinDate      string  `json:"joinDate"`
}
