package utils

import (
	"fmt"
	"strings"

	"github.com/google/uuid"
)

// GenerateOrderNumber produces a short human-readable order reference.
// Format: OM-XXXXXXXX (first uuid segment, uppercased).
func GenerateOrderNumber() string {
	prefix := strings.ToUpper(strings.SplitN(uuid.New().String(), "-", 2)[0])
	return fmt.Sprintf("OM-%s", prefix)
}

// GenerateLoanID produces a demo-mode loan reference in the financing
// provider's format: TSTT-ML-<year>-XXXXXXXX.
func GenerateLoanID(year int) string {
	suffix := strings.ToUpper(strings.SplitN(uuid.New().String(), "-", 2)[0])
	return fmt.Sprintf("TSTT-ML-%d-%s", year, suffix)
}
