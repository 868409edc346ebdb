package cities

import (
	"context"
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"log"
	"logistics-seed-service/internal/domain"
	"os"
	"strconv"
	"strings"
)

// CSVCitySource loads city records from a CSV file with a header row.
// Rows with malformed or out-of-range values are skipped and logged;
// failure to open or read the file is returned to the caller so it can
// fall back to a synthetic source.
type CSVCitySource struct {
	Path string
}

func NewCSVCitySource(path string) *CSVCitySource {
	return &CSVCitySource{Path: path}
}

func (s *CSVCitySource) LoadCities(ctx context.Context, limit int) ([]domain.Location, error) {
	if limit <= 0 {
		return nil, fmt.Errorf("load cities: limit must be positive, got %d", limit)
	}

	f, err := os.Open(s.Path)
	if err != nil {
		return nil, fmt.Errorf("load cities: open %q: %w", s.Path, err)
	}
	defer f.Close()

	r := csv.NewReader(f)
	r.FieldsPerRecord = -1

	header, err := r.Read()
	if err != nil {
		return nil, fmt.Errorf("load cities: read header from %q: %w", s.Path, err)
	}

	col := make(map[string]int, len(header))
	for i, name := range header {
		col[strings.TrimSpace(name)] = i
	}
	for _, required := range []string{"latitude", "longitude"} {
		if _, ok := col[required]; !ok {
			return nil, fmt.Errorf("load cities: %q missing column %q", s.Path, required)
		}
	}

	locations := make([]domain.Location, 0, limit)
	skipped := 0
	for i := 0; len(locations)+skipped < limit; i++ {
		if err := ctx.Err(); err != nil {
			return nil, fmt.Errorf("load cities: %w", err)
		}

		row, err := r.Read()
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			// Malformed CSV rows are a per-row concern, not a file-level one.
			skipped++
			log.Printf("skipping city row %d: %v", i+1, err)
			continue
		}

		loc, err := parseRow(row, col, i)
		if err != nil {
			skipped++
			log.Printf("skipping city row %d: %v", i+1, err)
			continue
		}
		locations = append(locations, loc)
	}

	if skipped > 0 {
		log.Printf("loaded %d cities from %s (skipped %d rows)", len(locations), s.Path, skipped)
	}
	return locations, nil
}

func parseRow(row []string, col map[string]int, idx int) (domain.Location, error) {
	field := func(name, fallback string) string {
		i, ok := col[name]
		if !ok || i >= len(row) {
			return fallback
		}
		if v := strings.TrimSpace(row[i]); v != "" {
			return v
		}
		return fallback
	}

	id, err := strconv.Atoi(field("id", strconv.Itoa(idx)))
	if err != nil {
		return domain.Location{}, fmt.Errorf("invalid id: %w", err)
	}

	lat, err := strconv.ParseFloat(field("latitude", ""), 64)
	if err != nil {
		return domain.Location{}, fmt.Errorf("invalid latitude: %w", err)
	}
	lon, err := strconv.ParseFloat(field("longitude", ""), 64)
	if err != nil {
		return domain.Location{}, fmt.Errorf("invalid longitude: %w", err)
	}

	loc := domain.Location{
		ID:        id,
		Name:      field("name", fmt.Sprintf("City %d", idx)),
		Country:   field("country_name", "Unknown"),
		State:     field("state_name", "Unknown"),
		Latitude:  lat,
		Longitude: lon,
	}
	if !loc.ValidCoordinates() {
		return domain.Location{}, fmt.Errorf("coordinates out of range: lat=%v lon=%v", lat, lon)
	}
	return loc, nil
}
