package environment

import (
	"fmt"
	"strings"

	"steadyday.app/internal/core/region"
	"steadyday.app/internal/ports"
)

const notAvailable = "N/A"

const (
	twoHourNoData   = "Current 2-hour weather forecast is unavailable (No data found)."
	twoHourAPIError = "Current 2-hour forecast is unavailable (API Error)."

	twentyFourHourNoData   = "24-hour forecast is unavailable (No data found)."
	twentyFourHourAPIError = "24-hour forecast is unavailable (API Error)."

	fourDayNoData   = "4-day weather outlook is unavailable (No data found)."
	fourDayAPIError = "4-day weather outlook is unavailable (API Error)."

	psiBothMissing  = "Live PSI data is unavailable: Both 3-hour and 24-hour readings are missing."
	psiNetworkError = "Live PSI data is unavailable: Network error."
	psiParseError   = "Live PSI data is unavailable: Internal parsing error."

	uvNoReading     = "Live UV index data is unavailable (No reading found)."
	uvAPIError      = "Live UV index data is unavailable (API Error)."
	uvInternalError = "Live UV index data is unavailable (Internal Error)."

	dengueUnavailable = "Dengue cluster data is unavailable."
)

// RegionResolver maps an area name to its canonical region.
type RegionResolver interface {
	Resolve(location string) (string, bool)
}

type forecastGroup struct {
	text  string
	areas []string
}

func summarizeTwoHour(resp *ports.TwoHourForecastResponse, target string, resolver RegionResolver) FetchResult {
	if resp == nil || len(resp.Items) == 0 || len(resp.Items[0].Forecasts) == 0 {
		return Failure(CauseMissingData, twoHourNoData)
	}
	forecasts := resp.Items[0].Forecasts
	name := DisplayName(target)

	var groups []*forecastGroup
	byText := make(map[string]*forecastGroup)
	for _, f := range forecasts {
		if f.Area == nil || f.Forecast == nil {
			continue
		}
		mapped, ok := resolver.Resolve(*f.Area)
		if !ok || mapped != target {
			continue
		}
		g, exists := byText[*f.Forecast]
		if !exists {
			g = &forecastGroup{text: *f.Forecast}
			byText[*f.Forecast] = g
			groups = append(groups, g)
		}
		g.areas = append(g.areas, *f.Area)
	}

	switch len(groups) {
	case 0:
		proxy, ok := firstForecastText(forecasts)
		if !ok {
			return Failure(CauseMissingData, twoHourNoData)
		}
		return Degraded(fmt.Sprintf("2-Hour Weather Forecast for %s Region: %s (using national proxy)", name, proxy))
	case 1:
		return Success(fmt.Sprintf("2-Hour Weather Forecast for %s Region: %s", name, groups[0].text))
	default:
		lines := make([]string, 0, len(groups)+1)
		lines = append(lines, "2-Hour Weather Forecast:")
		for _, g := range groups {
			lines = append(lines, fmt.Sprintf("%s areas (e.g., %s): %s", name, g.areas[0], g.text))
		}
		return Success(strings.Join(lines, "\n"))
	}
}

func firstForecastText(forecasts []ports.AreaForecast) (string, bool) {
	for _, f := range forecasts {
		if f.Forecast != nil {
			return *f.Forecast, true
		}
	}
	return "", false
}

func summarizeTwentyFourHour(resp *ports.TwentyFourHourForecastResponse) FetchResult {
	if resp == nil || len(resp.Items) == 0 || resp.Items[0].General == nil {
		return Failure(CauseMissingData, twentyFourHourNoData)
	}
	general := resp.Items[0].General

	var low, high *ports.Reading
	if general.Temperature != nil {
		low, high = general.Temperature.Low, general.Temperature.High
	}
	speed, direction := notAvailable, notAvailable
	if general.Wind != nil {
		speed = formatSpeed(general.Wind.Speed)
		direction = text(general.Wind.Direction)
	}

	lines := []string{
		"24-Hour Weather Outlook (General):",
		"- Forecast: " + text(general.Forecast),
		fmt.Sprintf("- Temperature Range: %s°C to %s°C", number(low), number(high)),
		fmt.Sprintf("- Wind: %s %s", speed, direction),
	}
	return Success(strings.Join(lines, "\n"))
}

func summarizeFourDay(resp *ports.FourDayOutlookResponse) FetchResult {
	if resp == nil || len(resp.Items) == 0 || len(resp.Items[0].Forecasts) == 0 {
		return Failure(CauseMissingData, fourDayNoData)
	}

	lines := []string{"4-Day Weather Outlook:"}
	for _, day := range resp.Items[0].Forecasts {
		var low, high *ports.Reading
		if day.Temperature != nil {
			low, high = day.Temperature.Low, day.Temperature.High
		}
		lines = append(lines, fmt.Sprintf("- **%s:** %s (Temp: %s°C - %s°C)",
			text(day.Date), text(day.Forecast), number(low), number(high)))
	}
	return Success(strings.Join(lines, "\n"))
}

func summarizePSI(resp *ports.PSIResponse, requested string) FetchResult {
	var readings map[string]map[string]*ports.Reading
	if resp != nil && len(resp.Items) > 0 {
		readings = resp.Items[0].Readings
	}

	series, label := readings[ports.PSIThreeHourly], "3-Hour"
	if len(series) == 0 {
		series, label = readings[ports.PSITwentyFourHourly], "24-Hour"
	}
	if len(series) == 0 {
		return Failure(CauseMissingData, psiBothMissing)
	}

	if strings.TrimSpace(requested) == "" {
		requested = region.National
	}
	name := DisplayName(requested)
	if v, ok := series[strings.ToLower(requested)].Value(); ok {
		return Success(fmt.Sprintf("Live %s PSI for **%s**: **%s**", label, name, v))
	}
	if v, ok := series[region.National].Value(); ok {
		return Degraded(fmt.Sprintf("Live %s PSI for **%s**: **%s** (Based on National reading)", label, name, v))
	}
	return Failure(CauseMissingData,
		fmt.Sprintf("Live PSI data is unavailable: Region '%s' and national reading missing.", requested))
}

func summarizeUV(resp *ports.UVIndexResponse) FetchResult {
	if resp == nil || len(resp.Items) == 0 || len(resp.Items[0].Index) == 0 {
		return Failure(CauseMissingData, uvNoReading)
	}
	v, ok := resp.Items[0].Index[0].Value.Value()
	if !ok {
		return Failure(CauseMissingData, uvNoReading)
	}
	return Success("Current Live UV Index: " + v)
}

func text(s *string) string {
	if s == nil {
		return notAvailable
	}
	return *s
}

func number(r *ports.Reading) string {
	v, ok := r.Value()
	if !ok {
		return notAvailable
	}
	return v
}

func formatSpeed(s *ports.SpeedRange) string {
	if s == nil {
		return notAvailable
	}
	low, hasLow := s.Low.Value()
	high, hasHigh := s.High.Value()
	switch {
	case !hasLow && !hasHigh:
		return notAvailable
	case !hasLow:
		return high + " km/h"
	case !hasHigh || low == high:
		return low + " km/h"
	default:
		return low + "-" + high + " km/h"
	}
}
