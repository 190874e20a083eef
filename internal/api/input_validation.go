package api

import (
	"errors"
	"strings"
	"time"

	"github.com/mishmeret-app/mishmeret/internal/services"
)

var errMissingDate = errors.New("date is required")

// parseDayParam accepts either a bare calendar day or a full ISO-8601
// instant; both collapse to the local calendar midnight.
func parseDayParam(raw string, location *time.Location) (time.Time, error) {
	trimmed := strings.TrimSpace(raw)
	if trimmed == "" {
		return time.Time{}, errMissingDate
	}

	if parsed, err := time.ParseInLocation("2006-01-02", trimmed, location); err == nil {
		return services.DateAtLocation(parsed, location), nil
	}

	parsed, err := time.Parse(time.RFC3339, trimmed)
	if err != nil {
		return time.Time{}, err
	}
	return services.DateAtLocation(parsed, location), nil
}

func parseRangeQuery(startRaw string, endRaw string, location *time.Location) (time.Time, time.Time, error) {
	start, err := parseDayParam(startRaw, location)
	if err != nil {
		return time.Time{}, time.Time{}, err
	}
	end, err := parseDayParam(endRaw, location)
	if err != nil {
		return time.Time{}, time.Time{}, err
	}
	if end.Before(start) {
		return time.Time{}, time.Time{}, errors.New("end before start")
	}
	return start, end, nil
}
