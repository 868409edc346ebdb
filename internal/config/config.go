package config

import "os"

// Get returns the environment value for key, or fallback when unset or
// empty. Explicit per-run knobs belong in flags; Get covers deployment
// paths and endpoints.
func Get(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}
