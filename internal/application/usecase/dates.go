package usecase

import (
	"time"

	"github.com/Wesley1888/InvenMate/internal/domain"
)

// parseDate acepta fechas YYYY-MM-DD o RFC3339 en los bodies de la API.
func parseDate(s string) (time.Time, error) {
	if t, err := time.Parse("2006-01-02", s); err == nil {
		return t, nil
	}
	if t, err := time.Parse(time.RFC3339, s); err == nil {
		return t, nil
	}
	return time.Time{}, domain.ErrInvalidInput
}
