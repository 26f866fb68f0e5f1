package api_test

import (
	"time"

	"github.com/gigshift/gigshift/internal/api"
)

func validShift() api.ShiftInput {
	start := time.Date(2026, 11, 6, 18, 0, 0, 0, time.UTC)
	return api.ShiftInput{
		VenueID:    2,
		Role:       "bartender",
		HourlyRate: 16.5,
		StartTime:  start,
		EndTime:    start.Add(6 * time.Hour),
	}
}
