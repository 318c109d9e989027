package env

import (
	"os"
	"strings"
)

// Get returns the value of the given environment variable or a
// fallback. Values that are blank after trimming count as unset.
func Get(key, fallback string) string {
	if val := strings.TrimSpace(os.Getenv(key)); val != "" {
		return val
	}
	return fallback
}
