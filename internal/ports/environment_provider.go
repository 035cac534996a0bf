package ports

import (
	"context"
	"encoding/json"
	"strconv"
	"time"
)

// Upstream record shapes. Every leaf is a pointer so that an absent field
// and a zero value stay distinguishable. Measurement leaves use Reading so
// that one oddly typed value does not fail the whole body.

// TwoHourForecastResponse is the 2-hour nowcast payload
type TwoHourForecastResponse struct {
	Items []TwoHourForecastItem `json:"items"`
}

type TwoHourForecastItem struct {
	Forecasts []AreaForecast `json:"forecasts"`
}

// AreaForecast is one per-area nowcast record
type AreaForecast struct {
	Area     *string `json:"area"`
	Forecast *string `json:"forecast"`
}

// TwentyFourHourForecastResponse is the 24-hour outlook payload
type TwentyFourHourForecastResponse struct {
	Items []TwentyFourHourForecastItem `json:"items"`
}

type TwentyFourHourForecastItem struct {
	General *GeneralForecast `json:"general"`
}

// GeneralForecast is the nationwide 24-hour outlook
type GeneralForecast struct {
	Forecast    *string           `json:"forecast"`
	Temperature *TemperatureRange `json:"temperature"`
	Wind        *Wind             `json:"wind"`
}

type TemperatureRange struct {
	Low  *Reading `json:"low"`
	High *Reading `json:"high"`
}

type Wind struct {
	Speed     *SpeedRange `json:"speed"`
	Direction *string     `json:"direction"`
}

// Reading is a measurement leaf. Numbers and strings are kept as sent;
// any other JSON type decodes to a reading with no value.
type Reading struct {
	number   float64
	text     string
	isNumber bool
	present  bool
}

// NumberReading returns a numeric reading.
func NumberReading(v float64) *Reading {
	return &Reading{number: v, isNumber: true, present: true}
}

// TextReading returns a reading holding s verbatim.
func TextReading(s string) *Reading {
	return &Reading{text: s, present: true}
}

// UnmarshalJSON never fails on a well-formed value of an unexpected type.
func (r *Reading) UnmarshalJSON(data []byte) error {
	var raw interface{}
	if err := json.Unmarshal(data, &raw); err != nil {
		return err
	}

	*r = Reading{}
	switch v := raw.(type) {
	case float64:
		r.number, r.isNumber, r.present = v, true, true
	case string:
		r.text, r.present = v, true
	}
	return nil
}

// Value renders the reading. ok is false for a nil or valueless reading.
func (r *Reading) Value() (string, bool) {
	if r == nil || !r.present {
		return "", false
	}
	if r.isNumber {
		return strconv.FormatFloat(r.number, 'f', -1, 64), true
	}
	return r.text, true
}

// Float returns the numeric value when the reading is a number.
func (r *Reading) Float() (float64, bool) {
	if r == nil || !r.isNumber {
		return 0, false
	}
	return r.number, true
}

// SpeedRange holds a wind speed given as a bare value or as a
// {low, high} object.
type SpeedRange struct {
	Low  *Reading `json:"low"`
	High *Reading `json:"high"`
}

// UnmarshalJSON accepts both wire forms of a wind speed.
func (s *SpeedRange) UnmarshalJSON(data []byte) error {
	var fields map[string]json.RawMessage
	if err := json.Unmarshal(data, &fields); err == nil {
		type rangeAlias SpeedRange
		var r rangeAlias
		if err := json.Unmarshal(data, &r); err != nil {
			return err
		}
		*s = SpeedRange(r)
		return nil
	}

	var value Reading
	if err := json.Unmarshal(data, &value); err != nil {
		return err
	}
	*s = SpeedRange{Low: &value, High: &value}
	return nil
}

// FourDayOutlookResponse is the 4-day outlook payload
type FourDayOutlookResponse struct {
	Items []FourDayOutlookItem `json:"items"`
}

type FourDayOutlookItem struct {
	Forecasts []DailyForecast `json:"forecasts"`
}

type DailyForecast struct {
	Date        *string           `json:"date"`
	Forecast    *string           `json:"forecast"`
	Temperature *TemperatureRange `json:"temperature"`
}

// PSI reading granularities
const (
	PSIThreeHourly      = "psi_three_hourly"
	PSITwentyFourHourly = "psi_twenty_four_hourly"
)

// PSIResponse is the air quality payload
type PSIResponse struct {
	Items []PSIItem `json:"items"`
}

// PSIItem maps granularity to per-region readings. Null readings decode to nil.
type PSIItem struct {
	Readings map[string]map[string]*Reading `json:"readings"`
}

// UVIndexResponse is the UV index payload
type UVIndexResponse struct {
	Items []UVIndexItem `json:"items"`
}

type UVIndexItem struct {
	Index []UVReading `json:"index"`
}

type UVReading struct {
	Value     *Reading `json:"value"`
	Timestamp *string  `json:"timestamp"`
}

// EnvironmentProvider fetches raw environment records from the upstream
// data provider. Transport failures are reported as external API errors,
// undecodable bodies as malformed response errors.
type EnvironmentProvider interface {
	FetchTwoHourForecast(ctx context.Context, at time.Time) (*TwoHourForecastResponse, error)
	FetchTwentyFourHourForecast(ctx context.Context) (*TwentyFourHourForecastResponse, error)
	FetchFourDayOutlook(ctx context.Context) (*FourDayOutlookResponse, error)
	FetchPSI(ctx context.Context) (*PSIResponse, error)
	FetchUVIndex(ctx context.Context) (*UVIndexResponse, error)
}

// DengueSource supplies the current dengue cluster alert text.
type DengueSource interface {
	CurrentAlert(ctx context.Context, query string) (string, error)
}

// Clock returns the current instant.
type Clock func() time.Time
