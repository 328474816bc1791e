// Package validate provides shared validation functions.
package validate

import (
	"strings"

	"github.com/colonyops/accessihome/internal/core/analysis"
)

// ListingURL validates a listing URL is non-empty after trimming whitespace.
// Any other text is accepted; the analyzer never inspects it.
func ListingURL(url string) error {
	if strings.TrimSpace(url) == "" {
		return analysis.ErrEmptyInput
	}
	return nil
}
