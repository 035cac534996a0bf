// Package report assembles a single environmental briefing for a free-text
// query: weather from the forecast product that fits the asked-for time,
// live PSI and UV for today, dengue alerts and historical averages.
package report

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"

	"steadyday.app/internal/core/environment"
	"steadyday.app/internal/ports"
	"steadyday.app/pkg/errors"
)

// EnvironmentService is the set of fetch operations a report draws on.
type EnvironmentService interface {
	TwoHourForecast(ctx context.Context, req environment.TwoHourRequest) environment.FetchResult
	TwentyFourHourForecast(ctx context.Context) environment.FetchResult
	FourDayOutlook(ctx context.Context) environment.FetchResult
	PSI(ctx context.Context, regionName string) environment.FetchResult
	UVIndex(ctx context.Context) environment.FetchResult
	DengueClusters(ctx context.Context, query string) environment.FetchResult
}

type QueryRegionExtractor interface {
	ExtractFromQuery(query string) string
}

type HistoricalSummarizer interface {
	PSISummary(date time.Time) string
	UVSummary(date time.Time, hour int) string
}

// Report is the assembled briefing.
type Report struct {
	ID             string                  `json:"id"`
	Query          string                  `json:"query"`
	Region         string                  `json:"region"`
	Date           string                  `json:"date"`
	TargetHour     int                     `json:"target_hour"`
	WeatherSource  WeatherSource           `json:"weather_source"`
	Weather        environment.FetchResult `json:"weather"`
	PSI            environment.FetchResult `json:"psi"`
	UV             environment.FetchResult `json:"uv"`
	Dengue         environment.FetchResult `json:"dengue"`
	HistoricalPSI  string                  `json:"historical_psi"`
	HistoricalUV   string                  `json:"historical_uv"`
	GeneratedAtUTC time.Time               `json:"generated_at"`
}

type UseCase struct {
	environment EnvironmentService
	regions     QueryRegionExtractor
	historical  HistoricalSummarizer
	logger      ports.Logger
	clock       ports.Clock
}

type UseCaseDependencies struct {
	Environment EnvironmentService
	Regions     QueryRegionExtractor
	Historical  HistoricalSummarizer
	Logger      ports.Logger
	Clock       ports.Clock
}

func NewUseCase(deps UseCaseDependencies) (*UseCase, error) {
	if deps.Environment == nil {
		return nil, errors.NewValidationError("environment service is required")
	}
	if deps.Regions == nil {
		return nil, errors.NewValidationError("region extractor is required")
	}
	if deps.Historical == nil {
		return nil, errors.NewValidationError("historical summarizer is required")
	}
	if deps.Logger == nil {
		return nil, errors.NewValidationError("logger is required")
	}
	clock := deps.Clock
	if clock == nil {
		clock = time.Now
	}

	return &UseCase{
		environment: deps.Environment,
		regions:     deps.Regions,
		historical:  deps.Historical,
		logger:      deps.Logger,
		clock:       clock,
	}, nil
}

// Build plans and fetches a report for query. Fetches run one after
// another and each one folds its own failures into its result.
func (uc *UseCase) Build(ctx context.Context, query string) *Report {
	now := uc.clock()
	plan := NewPlan(query, now)
	region := uc.regions.ExtractFromQuery(query)

	report := &Report{
		ID:             uuid.New().String(),
		Query:          query,
		Region:         region,
		Date:           plan.Date.Format("2006-01-02"),
		TargetHour:     plan.TargetHour,
		WeatherSource:  plan.Source,
		HistoricalPSI:  uc.historical.PSISummary(plan.Date),
		HistoricalUV:   uc.historical.UVSummary(plan.Date, plan.TargetHour),
		GeneratedAtUTC: now.UTC(),
	}

	uc.logger.Info("Building environmental report",
		ports.F("report_id", report.ID),
		ports.F("region", region),
		ports.F("date", report.Date),
		ports.F("target_hour", plan.TargetHour),
		ports.F("weather_source", string(plan.Source)))

	report.Weather = uc.weather(ctx, plan, region)

	if plan.IsToday {
		report.PSI = uc.environment.PSI(ctx, region)
		report.UV = uc.environment.UVIndex(ctx)
	} else {
		day := plan.Date.Format("January 02")
		report.PSI = environment.Success(fmt.Sprintf("PSI forecast for %s is not available via NEA.", day))
		report.UV = environment.Success(fmt.Sprintf("UV Index forecast for %s is not available via NEA.", day))
	}

	report.Dengue = uc.environment.DengueClusters(ctx, query)

	return report
}

func (uc *UseCase) weather(ctx context.Context, plan Plan, region string) environment.FetchResult {
	var result environment.FetchResult
	switch plan.Source {
	case SourceTwoHour:
		at := plan.TwoHourAt()
		result = uc.environment.TwoHourForecast(ctx, environment.TwoHourRequest{At: &at, Region: region})
	case SourceTwentyFourHour:
		result = uc.environment.TwentyFourHourForecast(ctx)
	default:
		result = uc.environment.FourDayOutlook(ctx)
	}

	result.Summary = fmt.Sprintf("Weather Data (%s):\n%s", plan.Source, result.Summary)
	return result
}
