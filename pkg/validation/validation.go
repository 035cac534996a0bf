package validation

import (
	"regexp"
	"strings"
	"time"
)

// DateTimeLayout is the upstream date_time query format.
const DateTimeLayout = "2006-01-02T15:04:05"

const maxLocationLength = 64

var locationRegex = regexp.MustCompile(`^[A-Za-z][A-Za-z '\-]*$`)

// IsValidLocation accepts place or region names made of letters, spaces,
// apostrophes and hyphens. Whether the name is known is not checked here.
func IsValidLocation(s string) bool {
	trimmed := strings.TrimSpace(s)
	if trimmed == "" || len(trimmed) > maxLocationLength {
		return false
	}
	return locationRegex.MatchString(trimmed)
}

// ParseDateTime parses a local date_time value in the given zone.
func ParseDateTime(s string, loc *time.Location) (time.Time, bool) {
	t, err := time.ParseInLocation(DateTimeLayout, strings.TrimSpace(s), loc)
	if err != nil {
		return time.Time{}, false
	}
	return t, true
}
