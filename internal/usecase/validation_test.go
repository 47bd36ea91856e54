package usecase

import (
	"testing"
	"time"

	domainErrors "github.com/polkiloo/fintrack/internal/domain/errors"
)

func TestParseDateCalendar(t *testing.T) {
	got, err := ParseDate("2024-01-01")
	if err != nil {
		t.Fatalf("parse returned error: %v", err)
	}
	want := time.Date(2024, time.January, 1, 0, 0, 0, 0, time.UTC)
	if !got.Equal(want) {
		t.Fatalf("expected %v, got %v", want, got)
	}
}

func TestParseDateRFC3339(t *testing.T) {
	got, err := ParseDate("2024-03-05T14:30:00Z")
	if err != nil {
		t.Fatalf("parse returned error: %v", err)
	}
	if got.Year() != 2024 || got.Month() != time.March || got.Day() != 5 {
		t.Fatalf("unexpected date %v", got)
	}
}

func TestParseDateRejectsGarbage(t *testing.T) {
	for _, value := range []string{"", "not-a-date", "01/02/2024", "2024-13-40"} {
		if _, err := ParseDate(value); err != domainErrors.ErrInvalidDate {
			t.Fatalf("expected ErrInvalidDate for %q, got %v", value, err)
		}
	}
}
