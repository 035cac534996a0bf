// Package historical summarizes monthly PSI and hourly UV averages from a
// reference year.
package historical

import (
	"fmt"
	"time"
)

const psiGoodUpperBound = 51

// Data holds the reference averages. Missing months are allowed.
type Data struct {
	PSIMonthlyAverage map[time.Month]float64
	UVHourlyAverage   map[time.Month][]int
}

// Summarizer renders one-line historical expectations.
type Summarizer struct {
	data Data
}

func NewSummarizer(data Data) *Summarizer {
	return &Summarizer{data: data}
}

// PSIBand classifies a 24-hour PSI average.
func PSIBand(avg float64) string {
	if avg < psiGoodUpperBound {
		return "Good"
	}
	return "Moderate"
}

// UVRisk classifies a UV index value.
func UVRisk(value int) string {
	switch {
	case value < 3:
		return "Low"
	case value < 6:
		return "Moderate"
	case value < 8:
		return "High"
	case value < 11:
		return "Very High"
	default:
		return "Extreme"
	}
}

// PSISummary describes the average PSI for the month of date.
func (s *Summarizer) PSISummary(date time.Time) string {
	month := date.Month()
	avg, ok := s.data.PSIMonthlyAverage[month]
	if !ok {
		return fmt.Sprintf("📊 Historical PSI for %s: Data is not available.", month)
	}
	return fmt.Sprintf("📊 Historical PSI for %s: Monthly average is **%.1f**, typically in the **%s** range.",
		month, avg, PSIBand(avg))
}

// UVSummary describes the average UV index for the month of date at hour.
func (s *Summarizer) UVSummary(date time.Time, hour int) string {
	month := date.Month()
	hourly := s.data.UVHourlyAverage[month]
	if hour < 0 || hour >= len(hourly) {
		return fmt.Sprintf("☀️ Historical UV Index for %s (%02d:00): Data is not available.", month, hour)
	}
	avg := hourly[hour]
	return fmt.Sprintf("☀️ Historical UV Index for %s (%02d:00): Average is **%d** (%s).",
		month, hour, avg, UVRisk(avg))
}
