package usecase

import (
	"time"

	domainErrors "github.com/polkiloo/fintrack/internal/domain/errors"
)

var dateLayouts = []string{"2006-01-02", time.RFC3339}

// ParseDate accepts plain calendar dates and RFC3339 timestamps.
func ParseDate(value string) (time.Time, error) {
	for _, layout := range dateLayouts {
		if t, err := time.Parse(layout, value); err == nil {
			return t, nil
		}
	}
	return time.Time{}, domainErrors.ErrInvalidDate
}
