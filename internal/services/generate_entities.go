package services

import (
	"fmt"
	"logistics-seed-service/internal/domain"
	"math/rand"
	"strings"
	"time"

	"github.com/jaswdr/faker"
)

const dateLayout = "2006-01-02"

var emailDomains = []string{"gmail.com", "yahoo.com", "outlook.com", "company.com"}

func emailFor(name string, fake faker.Faker) string {
	user := strings.ToLower(strings.ReplaceAll(name, " ", "."))
	return user + "@" + fake.RandomStringElement(emailDomains)
}

// round2 keeps monetary and weight values at two decimals, matching the
// snapshot documents consumed by the application.
func round2(v float64) float64 {
	return float64(int(v*100+0.5)) / 100
}

// GenerateAgents produces n field agents. The first len(cities) agents are
// homed on the loaded cities; the rest fall back to random coordinates.
func GenerateAgents(n int, cities []domain.Location, now time.Time, fake faker.Faker, rng *rand.Rand) []domain.Agent {
	agents := make([]domain.Agent, 0, n)
	for i := 1; i <= n; i++ {
		var lat, lon float64
		var home string
		if i <= len(cities) {
			city := cities[i-1]
			lat, lon, home = city.Latitude, city.Longitude, city.Name
		} else {
			lat = -80 + rng.Float64()*160
			lon = -170 + rng.Float64()*340
			home = fmt.Sprintf("City %d", i)
		}

		fullName := fake.Person().FirstName() + " " + fake.Person().LastName()

		agents = append(agents, domain.Agent{
			ID:            i,
			Username:      fmt.Sprintf("agent%d", i),
			Password:      "password123",
			Email:         emailFor(fullName, fake),
			Phone:         fake.Phone().Number(),
			FullName:      fullName,
			Role:          "driver",
			Status:        fake.RandomStringElement([]string{"Active", "Inactive", "On Leave"}),
			HomeBase:      home,
			Latitude:      lat,
			Longitude:     lon,
			LicenseNumber: fmt.Sprintf("DL%d", fake.IntBetween(100000, 999999)),
			VehicleType:   fake.RandomStringElement([]string{"Car", "Van", "Motorcycle", "Truck"}),
			MaxCapacity:   fake.IntBetween(5, 50),
			Availability:  fake.RandomStringElement([]string{"Full-time", "Part-time", "Weekends Only"}),
			Rating:        fake.Float64(1, 3, 5),
			JoinDate:      now.AddDate(0, 0, -fake.IntBetween(30, 1000)).Format(dateLayout),
		})
	}
	return agents
}

// GenerateStores produces n stores and warehouses on the loaded cities,
// falling back to random coordinates once the city sample is exhausted.
func GenerateStores(n int, cities []domain.Location, fake faker.Faker, rng *rand.Rand) []domain.Store {
	stores := make([]domain.Store, 0, n)
	for i := 1; i <= n; i++ {
		var lat, lon float64
		cityName, state, country := fmt.Sprintf("City %d", i), "State", "Country"
		if i <= len(cities) {
			city := cities[i-1]
			lat, lon = city.Latitude, city.Longitude
			cityName, state, country = city.Name, city.State, city.Country
		} else {
			lat = -80 + rng.Float64()*160
			lon = -170 + rng.Float64()*340
		}

		stores = append(stores, domain.Store{
			ID:             i,
			Name:           fmt.Sprintf("Store %s #%d", cityName, i),
			Type:           fake.RandomStringElement([]string{"Warehouse", "Retail Store", "Distribution Center", "Fulfillment Center"}),
			Address:        fmt.Sprintf("%d %s, %s, %s", fake.IntBetween(100, 9999), fake.Address().StreetName(), cityName, state),
			City:           cityName,
			Country:        country,
			Latitude:       lat,
			Longitude:      lon,
			Capacity:       fake.IntBetween(1000, 10000),
			Manager:        fake.Person().Name(),
			Contact:        fake.Phone().Number(),
			Email:          fmt.Sprintf("store%d@company.com", i),
			OperatingHours: "8:00 AM - 6:00 PM",
			IsActive:       fake.Boolean().BoolWithChance(90),
		})
	}
	return stores
}

// GenerateCustomers produces n customers, cycling through the city sample
// for large counts and jittering each delivery point within its base city.
func GenerateCustomers(n int, cities []domain.Location, now time.Time, fake faker.Faker, rng *rand.Rand) []domain.Customer {
	customers := make([]domain.Customer, 0, n)
	for i := 1; i <= n; i++ {
		var lat, lon float64
		var cityName, country string
		if len(cities) > 0 {
			city := cities[i%len(cities)]
			// Jitter keeps customers inside their city but off the
			// exact city coordinate.
			lat = city.Latitude + (rng.Float64()*0.04 - 0.02)
			lon = city.Longitude + (rng.Float64()*0.04 - 0.02)
			cityName, country = city.Name, city.Country
		} else {
			lat = -80 + rng.Float64()*160
			lon = -170 + rng.Float64()*340
			cityName, country = fmt.Sprintf("City %d", i%100+1), "Country"
		}

		fullName := fake.Person().FirstName() + " " + fake.Person().LastName()

		customers = append(customers, domain.Customer{
			ID:            i,
			Name:          fullName,
			Email:         emailFor(fullName, fake),
			Phone:         fake.Phone().Number(),
			Address:       fmt.Sprintf("%d %s St, %s", fake.IntBetween(100, 9999), fake.RandomStringElement([]string{"Main", "Oak", "Pine", "Maple", "Cedar"}), cityName),
			City:          cityName,
			Country:       country,
			Latitude:      lat,
			Longitude:     lon,
			CustomerSince: now.AddDate(0, 0, -fake.IntBetween(1, 700)).Format(dateLayout),
			Type:          fake.RandomStringElement([]string{"Residential", "Business", "Government", "Educational"}),
			PriorityLevel: fake.RandomStringElement([]string{"Standard", "High", "Premium"}),
		})
	}
	return customers
}
