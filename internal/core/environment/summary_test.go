package environment

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"steadyday.app/internal/core/region"
	"steadyday.app/internal/ports"
)

func str(s string) *string { return &s }

func num(v float64) *ports.Reading { return ports.NumberReading(v) }

func testResolver() *region.Resolver {
	return region.NewResolver([]region.Group{
		{Region: "central", Areas: []string{"central", "bishan", "toa payoh", "geylang"}},
		{Region: "east", Areas: []string{"east", "bedok", "changi", "tampines"}},
		{Region: "north", Areas: []string{"north", "woodlands", "ang mo kio"}},
		{Region: "south", Areas: []string{"south", "sentosa"}},
		{Region: "west", Areas: []string{"west", "jurong west", "clementi", "tuas"}},
	})
}

func nowcast(pairs ...string) *ports.TwoHourForecastResponse {
	forecasts := make([]ports.AreaForecast, 0, len(pairs)/2)
	for i := 0; i+1 < len(pairs); i += 2 {
		forecasts = append(forecasts, ports.AreaForecast{Area: str(pairs[i]), Forecast: str(pairs[i+1])})
	}
	return &ports.TwoHourForecastResponse{Items: []ports.TwoHourForecastItem{{Forecasts: forecasts}}}
}

func TestSummarizeTwoHour(t *testing.T) {
	resolver := testResolver()

	tests := []struct {
		name        string
		resp        *ports.TwoHourForecastResponse
		target      string
		wantSummary string
		wantOutcome Outcome
	}{
		{
			name:        "single forecast for region",
			resp:        nowcast("Bedok", "Cloudy", "Changi", "Cloudy", "Clementi", "Fair"),
			target:      "east",
			wantSummary: "2-Hour Weather Forecast for East Region: Cloudy",
			wantOutcome: OutcomeOK,
		},
		{
			name:   "several forecasts grouped by first appearance",
			resp:   nowcast("Jurong West", "Showers", "Bedok", "Fair", "Clementi", "Cloudy", "Tuas", "Showers"),
			target: "west",
			wantSummary: "2-Hour Weather Forecast:\n" +
				"West areas (e.g., Jurong West): Showers\n" +
				"West areas (e.g., Clementi): Cloudy",
			wantOutcome: OutcomeOK,
		},
		{
			name:        "no area in region uses national proxy",
			resp:        nowcast("Bedok", "Light Rain", "Clementi", "Fair"),
			target:      "south",
			wantSummary: "2-Hour Weather Forecast for South Region: Light Rain (using national proxy)",
			wantOutcome: OutcomeDegraded,
		},
		{
			name:        "national target always uses proxy",
			resp:        nowcast("Bedok", "Fair"),
			target:      region.National,
			wantSummary: "2-Hour Weather Forecast for National Region: Fair (using national proxy)",
			wantOutcome: OutcomeDegraded,
		},
		{
			name:        "unknown areas are ignored",
			resp:        nowcast("Pulau Ubin", "Thundery Showers", "Tampines", "Haze"),
			target:      "east",
			wantSummary: "2-Hour Weather Forecast for East Region: Haze",
			wantOutcome: OutcomeOK,
		},
		{
			name:        "empty forecast list",
			resp:        &ports.TwoHourForecastResponse{Items: []ports.TwoHourForecastItem{{}}},
			target:      "east",
			wantSummary: twoHourNoData,
			wantOutcome: OutcomeFailed,
		},
		{
			name:        "no items",
			resp:        &ports.TwoHourForecastResponse{},
			target:      "east",
			wantSummary: twoHourNoData,
			wantOutcome: OutcomeFailed,
		},
		{
			name: "no record carries forecast text",
			resp: &ports.TwoHourForecastResponse{Items: []ports.TwoHourForecastItem{{
				Forecasts: []ports.AreaForecast{{Area: str("Bedok")}},
			}}},
			target:      "west",
			wantSummary: twoHourNoData,
			wantOutcome: OutcomeFailed,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := summarizeTwoHour(tt.resp, tt.target, resolver)

			assert.Equal(t, tt.wantSummary, got.Summary)
			assert.Equal(t, tt.wantOutcome, got.Outcome)
			assert.Equal(t, tt.wantOutcome != OutcomeFailed, got.Status)
		})
	}
}

func TestSummarizeTwoHour_ProxyUsesFirstRecordWithText(t *testing.T) {
	resp := &ports.TwoHourForecastResponse{Items: []ports.TwoHourForecastItem{{
		Forecasts: []ports.AreaForecast{
			{Area: str("Bedok")},
			{Area: str("Clementi"), Forecast: str("Windy")},
		},
	}}}

	got := summarizeTwoHour(resp, "north", testResolver())

	assert.Equal(t, "2-Hour Weather Forecast for North Region: Windy (using national proxy)", got.Summary)
	assert.True(t, got.IsDegraded())
}

func TestSummarizeTwentyFourHour(t *testing.T) {
	t.Run("full record", func(t *testing.T) {
		var resp ports.TwentyFourHourForecastResponse
		require.NoError(t, json.Unmarshal([]byte(`{"items":[{"general":{
			"forecast":"Thundery Showers",
			"temperature":{"low":24,"high":33},
			"wind":{"speed":{"low":10,"high":20},"direction":"NNE"}}}]}`), &resp))

		got := summarizeTwentyFourHour(&resp)

		assert.Equal(t, "24-Hour Weather Outlook (General):\n"+
			"- Forecast: Thundery Showers\n"+
			"- Temperature Range: 24°C to 33°C\n"+
			"- Wind: 10-20 km/h NNE", got.Summary)
		assert.Equal(t, OutcomeOK, got.Outcome)
	})

	t.Run("scalar wind speed", func(t *testing.T) {
		var resp ports.TwentyFourHourForecastResponse
		require.NoError(t, json.Unmarshal([]byte(`{"items":[{"general":{
			"forecast":"Fair","temperature":{"low":25.5,"high":32},
			"wind":{"speed":15,"direction":"S"}}}]}`), &resp))

		got := summarizeTwentyFourHour(&resp)

		assert.Contains(t, got.Summary, "- Temperature Range: 25.5°C to 32°C")
		assert.Contains(t, got.Summary, "- Wind: 15 km/h S")
	})

	t.Run("string temperature and speed render verbatim", func(t *testing.T) {
		var resp ports.TwentyFourHourForecastResponse
		require.NoError(t, json.Unmarshal([]byte(`{"items":[{"general":{
			"forecast":"Fair","temperature":{"low":"N/A","high":33},
			"wind":{"speed":"10-20","direction":"NE"}}}]}`), &resp))

		got := summarizeTwentyFourHour(&resp)

		assert.True(t, got.Status)
		assert.Contains(t, got.Summary, "- Temperature Range: N/A°C to 33°C")
		assert.Contains(t, got.Summary, "- Wind: 10-20 km/h NE")
	})

	t.Run("unexpected leaf types render N/A", func(t *testing.T) {
		var resp ports.TwentyFourHourForecastResponse
		require.NoError(t, json.Unmarshal([]byte(`{"items":[{"general":{
			"forecast":"Fair","temperature":{"low":true,"high":{"c":33}},
			"wind":{"speed":[10,20],"direction":"NE"}}}]}`), &resp))

		got := summarizeTwentyFourHour(&resp)

		assert.True(t, got.Status)
		assert.Contains(t, got.Summary, "- Temperature Range: N/A°C to N/A°C")
		assert.Contains(t, got.Summary, "- Wind: N/A NE")
	})

	t.Run("missing leaves render N/A", func(t *testing.T) {
		resp := &ports.TwentyFourHourForecastResponse{Items: []ports.TwentyFourHourForecastItem{{
			General: &ports.GeneralForecast{Forecast: str("Cloudy")},
		}}}

		got := summarizeTwentyFourHour(resp)

		assert.Equal(t, "24-Hour Weather Outlook (General):\n"+
			"- Forecast: Cloudy\n"+
			"- Temperature Range: N/A°C to N/A°C\n"+
			"- Wind: N/A N/A", got.Summary)
		assert.True(t, got.Status)
	})

	t.Run("no general object", func(t *testing.T) {
		got := summarizeTwentyFourHour(&ports.TwentyFourHourForecastResponse{
			Items: []ports.TwentyFourHourForecastItem{{}},
		})

		assert.Equal(t, twentyFourHourNoData, got.Summary)
		assert.False(t, got.Status)
		assert.Equal(t, CauseMissingData, got.Cause)
	})
}

func TestSummarizeFourDay(t *testing.T) {
	t.Run("days in upstream order", func(t *testing.T) {
		resp := &ports.FourDayOutlookResponse{Items: []ports.FourDayOutlookItem{{
			Forecasts: []ports.DailyForecast{
				{Date: str("2024-05-02"), Forecast: str("Afternoon showers"),
					Temperature: &ports.TemperatureRange{Low: num(25), High: num(34)}},
				{Date: str("2024-05-01"), Forecast: str("Fair"),
					Temperature: &ports.TemperatureRange{Low: num(26), High: num(33)}},
			},
		}}}

		got := summarizeFourDay(resp)

		assert.Equal(t, "4-Day Weather Outlook:\n"+
			"- **2024-05-02:** Afternoon showers (Temp: 25°C - 34°C)\n"+
			"- **2024-05-01:** Fair (Temp: 26°C - 33°C)", got.Summary)
		assert.True(t, got.Status)
	})

	t.Run("missing temperature", func(t *testing.T) {
		resp := &ports.FourDayOutlookResponse{Items: []ports.FourDayOutlookItem{{
			Forecasts: []ports.DailyForecast{{Date: str("2024-05-02"), Forecast: str("Fair")}},
		}}}

		got := summarizeFourDay(resp)

		assert.Equal(t, "4-Day Weather Outlook:\n- **2024-05-02:** Fair (Temp: N/A°C - N/A°C)", got.Summary)
	})

	t.Run("empty", func(t *testing.T) {
		got := summarizeFourDay(&ports.FourDayOutlookResponse{Items: []ports.FourDayOutlookItem{{}}})

		assert.Equal(t, fourDayNoData, got.Summary)
		assert.False(t, got.Status)
	})
}

func psiResponse(readings map[string]map[string]*ports.Reading) *ports.PSIResponse {
	return &ports.PSIResponse{Items: []ports.PSIItem{{Readings: readings}}}
}

func TestSummarizePSI(t *testing.T) {
	tests := []struct {
		name        string
		resp        *ports.PSIResponse
		region      string
		wantSummary string
		wantOutcome Outcome
	}{
		{
			name: "three hourly for region",
			resp: psiResponse(map[string]map[string]*ports.Reading{
				ports.PSIThreeHourly:      {"east": num(52), "national": num(55)},
				ports.PSITwentyFourHourly: {"east": num(40)},
			}),
			region:      "East",
			wantSummary: "Live 3-Hour PSI for **East**: **52**",
			wantOutcome: OutcomeOK,
		},
		{
			name: "falls back to twenty four hourly",
			resp: psiResponse(map[string]map[string]*ports.Reading{
				ports.PSITwentyFourHourly: {"west": num(48)},
			}),
			region:      "west",
			wantSummary: "Live 24-Hour PSI for **West**: **48**",
			wantOutcome: OutcomeOK,
		},
		{
			name: "empty three hourly series falls back",
			resp: psiResponse(map[string]map[string]*ports.Reading{
				ports.PSIThreeHourly:      {},
				ports.PSITwentyFourHourly: {"north": num(41)},
			}),
			region:      "north",
			wantSummary: "Live 24-Hour PSI for **North**: **41**",
			wantOutcome: OutcomeOK,
		},
		{
			name: "region missing uses national",
			resp: psiResponse(map[string]map[string]*ports.Reading{
				ports.PSIThreeHourly: {"national": num(60), "east": nil},
			}),
			region:      "east",
			wantSummary: "Live 3-Hour PSI for **East**: **60** (Based on National reading)",
			wantOutcome: OutcomeDegraded,
		},
		{
			name: "region and national missing",
			resp: psiResponse(map[string]map[string]*ports.Reading{
				ports.PSIThreeHourly: {"west": num(30)},
			}),
			region:      "south",
			wantSummary: "Live PSI data is unavailable: Region 'south' and national reading missing.",
			wantOutcome: OutcomeFailed,
		},
		{
			name:        "both granularities missing",
			resp:        psiResponse(map[string]map[string]*ports.Reading{"o3_sub_index": {"east": num(3)}}),
			region:      "east",
			wantSummary: psiBothMissing,
			wantOutcome: OutcomeFailed,
		},
		{
			name: "empty region reads national",
			resp: psiResponse(map[string]map[string]*ports.Reading{
				ports.PSIThreeHourly: {"national": num(58)},
			}),
			region:      "",
			wantSummary: "Live 3-Hour PSI for **National**: **58**",
			wantOutcome: OutcomeOK,
		},
		{
			name: "string reading kept",
			resp: psiResponse(map[string]map[string]*ports.Reading{
				ports.PSIThreeHourly: {"east": ports.TextReading("52*")},
			}),
			region:      "east",
			wantSummary: "Live 3-Hour PSI for **East**: **52***",
			wantOutcome: OutcomeOK,
		},
		{
			name:        "no items",
			resp:        &ports.PSIResponse{},
			region:      "east",
			wantSummary: psiBothMissing,
			wantOutcome: OutcomeFailed,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := summarizePSI(tt.resp, tt.region)

			assert.Equal(t, tt.wantSummary, got.Summary)
			assert.Equal(t, tt.wantOutcome, got.Outcome)
		})
	}
}

func TestSummarizeUV(t *testing.T) {
	t.Run("reading present", func(t *testing.T) {
		resp := &ports.UVIndexResponse{Items: []ports.UVIndexItem{{
			Index: []ports.UVReading{{Value: num(7)}, {Value: num(5)}},
		}}}

		got := summarizeUV(resp)

		assert.Equal(t, "Current Live UV Index: 7", got.Summary)
		assert.True(t, got.Status)
	})

	t.Run("null reading", func(t *testing.T) {
		var resp ports.UVIndexResponse
		require.NoError(t, json.Unmarshal([]byte(`{"items":[{"index":[{"value":null}]}]}`), &resp))

		got := summarizeUV(&resp)

		assert.Equal(t, uvNoReading, got.Summary)
		assert.False(t, got.Status)
	})

	t.Run("empty index", func(t *testing.T) {
		got := summarizeUV(&ports.UVIndexResponse{Items: []ports.UVIndexItem{{}}})

		assert.Equal(t, uvNoReading, got.Summary)
	})
}

func TestDisplayName(t *testing.T) {
	assert.Equal(t, "East", DisplayName("east"))
	assert.Equal(t, "West", DisplayName("WEST"))
	assert.Equal(t, "National", DisplayName("national"))
	assert.Equal(t, "", DisplayName(""))
}

func TestTwoHourRequest_TargetRegion(t *testing.T) {
	assert.Equal(t, region.National, TwoHourRequest{}.TargetRegion())
	assert.Equal(t, "east", TwoHourRequest{Region: " East "}.TargetRegion())
}
