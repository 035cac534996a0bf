package report

import (
	"regexp"
	"strconv"
	"strings"
	"time"
)

// WeatherSource names the forecast product chosen for a report.
type WeatherSource string

const (
	SourceTwoHour        WeatherSource = "2-Hour Forecast"
	SourceTwentyFourHour WeatherSource = "24-Hour Forecast"
	SourceFourDay        WeatherSource = "4-Day Outlook"
)

// nowcastWindowHours is how far ahead the 2-hour forecast is used.
const nowcastWindowHours = 2

var timePattern = regexp.MustCompile(`(\d{1,2}(?::\d{2})?\s*(?:am|pm))|(\d{1,2}:\d{2})`)

// Plan is the date, hour and forecast product derived from a query.
type Plan struct {
	Date       time.Time
	TargetHour int
	IsToday    bool
	Source     WeatherSource
}

// TwoHourAt returns the instant the 2-hour forecast is requested for.
func (p Plan) TwoHourAt() time.Time {
	return time.Date(p.Date.Year(), p.Date.Month(), p.Date.Day(), p.TargetHour, 0, 0, 0, p.Date.Location())
}

// NewPlan derives the plan for query relative to now.
func NewPlan(query string, now time.Time) Plan {
	lower := strings.ToLower(query)

	date := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, now.Location())
	isToday := true
	if strings.Contains(lower, "tomorrow") {
		date = date.AddDate(0, 0, 1)
		isToday = false
	}

	hour := now.Hour()
	if h, ok := ParseHour(lower); ok {
		hour = h
	}

	plan := Plan{Date: date, TargetHour: hour, IsToday: isToday}
	switch {
	case !isToday:
		plan.Source = SourceFourDay
	case (hour-now.Hour()+24)%24 <= nowcastWindowHours:
		plan.Source = SourceTwoHour
	default:
		plan.Source = SourceTwentyFourHour
	}
	return plan
}

// ParseHour finds the first "H[:MM] am|pm" or "HH:MM" mention in a
// lower-cased query and returns its hour. Out-of-range values report false.
func ParseHour(query string) (int, bool) {
	match := timePattern.FindStringSubmatch(query)
	if match == nil {
		return 0, false
	}

	if match[1] != "" {
		return parseTwelveHour(strings.ReplaceAll(match[1], " ", ""))
	}
	return parseTwentyFourHour(match[2])
}

func parseTwelveHour(s string) (int, bool) {
	suffix := s[len(s)-2:]
	digits := s[:len(s)-2]
	if i := strings.IndexByte(digits, ':'); i >= 0 {
		digits = digits[:i]
	}

	h, err := strconv.Atoi(digits)
	if err != nil || h < 1 || h > 12 {
		return 0, false
	}

	h %= 12
	if suffix == "pm" {
		h += 12
	}
	return h, true
}

func parseTwentyFourHour(s string) (int, bool) {
	parts := strings.SplitN(s, ":", 2)
	h, err := strconv.Atoi(parts[0])
	if err != nil || h > 23 {
		return 0, false
	}
	m, err := strconv.Atoi(parts[1])
	if err != nil || m > 59 {
		return 0, false
	}
	return h, true
}
