package service

import (
	"fmt"
	"strings"
	"time"

	"github.com/jaym93/gtpower/internal/domain"
)

// Accepted timestamp formats for start/stop query parameters. The legacy
// clients send the space-separated form; RFC 3339 is accepted for newer
// callers.
var timeLayouts = []string{
	"2006-01-02 15:04:05",
	time.RFC3339,
}

// NormalizeBuildingCode turns a raw building id into the zero-padded
// 3-digit code embedded in stored source names ("26" -> "026"). The code is
// used for substring containment, so a syntactically valid code with no
// matching data is fine; anything non-numeric is rejected before touching
// storage.
func NormalizeBuildingCode(raw string) (string, error) {
	if raw == "" {
		return "", fmt.Errorf("%w: building id is required", domain.ErrInvalidArgument)
	}
	for _, r := range raw {
		if r < '0' || r > '9' {
			return "", fmt.Errorf("%w: building id must be numeric, got %q", domain.ErrInvalidArgument, raw)
		}
	}
	if len(raw) < 3 {
		raw = strings.Repeat("0", 3-len(raw)) + raw
	}
	return raw, nil
}

// ParseTimeRange validates the mandatory start/stop window. Both bounds are
// required: querying the whole unbounded table is disallowed, so a missing
// bound is a client error, never an implicit default window.
func ParseTimeRange(startRaw, stopRaw string) (start, stop time.Time, err error) {
	if startRaw == "" || stopRaw == "" {
		return time.Time{}, time.Time{}, fmt.Errorf(
			"%w: start and stop parameters are required, you cannot query the whole database",
			domain.ErrInvalidArgument)
	}
	start, err = parseTime(startRaw)
	if err != nil {
		return time.Time{}, time.Time{}, fmt.Errorf("%w: invalid start timestamp %q", domain.ErrInvalidArgument, startRaw)
	}
	stop, err = parseTime(stopRaw)
	if err != nil {
		return time.Time{}, time.Time{}, fmt.Errorf("%w: invalid stop timestamp %q", domain.ErrInvalidArgument, stopRaw)
	}
	return start, stop, nil
}

func parseTime(raw string) (time.Time, error) {
	for _, layout := range timeLayouts {
		if t, err := time.Parse(layout, raw); err == nil {
			return t, nil
		}
	}
	return time.Time{}, fmt.Errorf("unrecognized timestamp %q", raw)
}
