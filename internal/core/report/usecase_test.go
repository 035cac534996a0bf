package report

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"steadyday.app/internal/core/environment"
	"steadyday.app/internal/mocks"
)

type fakeEnvironment struct {
	calls     []string
	twoHourAt time.Time
	region    string
	psi       environment.FetchResult
}

func (f *fakeEnvironment) record(name string) {
	f.calls = append(f.calls, name)
}

func (f *fakeEnvironment) TwoHourForecast(ctx context.Context, req environment.TwoHourRequest) environment.FetchResult {
	f.record(environment.OperationTwoHourForecast)
	f.twoHourAt = *req.At
	f.region = req.Region
	return environment.Success("Light Rain in Jurong West")
}

func (f *fakeEnvironment) TwentyFourHourForecast(ctx context.Context) environment.FetchResult {
	f.record(environment.OperationTwentyFourHourForecast)
	return environment.Success("Thundery Showers")
}

func (f *fakeEnvironment) FourDayOutlook(ctx context.Context) environment.FetchResult {
	f.record(environment.OperationFourDayOutlook)
	return environment.Failure(environment.CauseTransport, "4-day outlook unavailable")
}

func (f *fakeEnvironment) PSI(ctx context.Context, regionName string) environment.FetchResult {
	f.record(environment.OperationPSI)
	return f.psi
}

func (f *fakeEnvironment) UVIndex(ctx context.Context) environment.FetchResult {
	f.record(environment.OperationUVIndex)
	return environment.Success("UV Index: 8")
}

func (f *fakeEnvironment) DengueClusters(ctx context.Context, query string) environment.FetchResult {
	f.record(environment.OperationDengueClusters)
	return environment.Success("dengue alert")
}

type fakeRegions struct{}

func (fakeRegions) ExtractFromQuery(query string) string {
	return "west"
}

type fakeHistorical struct{}

func (fakeHistorical) PSISummary(date time.Time) string {
	return "psi for " + date.Month().String()
}

func (fakeHistorical) UVSummary(date time.Time, hour int) string {
	return "uv for " + date.Month().String()
}

func newTestUseCase(t *testing.T, env *fakeEnvironment, now time.Time) *UseCase {
	logger := mocks.NewLogger(t)
	logger.On("Info", mock.Anything, mock.Anything, mock.Anything, mock.Anything, mock.Anything, mock.Anything).Once()

	uc, err := NewUseCase(UseCaseDependencies{
		Environment: env,
		Regions:     fakeRegions{},
		Historical:  fakeHistorical{},
		Logger:      logger,
		Clock:       func() time.Time { return now },
	})
	require.NoError(t, err)
	return uc
}

func TestUseCase_Build_Today(t *testing.T) {
	env := &fakeEnvironment{psi: environment.Degraded("PSI (3-hour) for National: 55")}
	now := time.Date(2024, 5, 1, 14, 5, 0, 0, sgt)
	uc := newTestUseCase(t, env, now)

	report := uc.Build(context.Background(), "jogging in Jurong at 3pm")

	assert.NotEmpty(t, report.ID)
	assert.Equal(t, "west", report.Region)
	assert.Equal(t, "2024-05-01", report.Date)
	assert.Equal(t, 15, report.TargetHour)
	assert.Equal(t, SourceTwoHour, report.WeatherSource)
	assert.Equal(t, "Weather Data (2-Hour Forecast):\nLight Rain in Jurong West", report.Weather.Summary)
	assert.True(t, report.Weather.Status)
	assert.True(t, report.PSI.IsDegraded())
	assert.Equal(t, "UV Index: 8", report.UV.Summary)
	assert.Equal(t, "dengue alert", report.Dengue.Summary)
	assert.Equal(t, "psi for May", report.HistoricalPSI)
	assert.Equal(t, "uv for May", report.HistoricalUV)

	assert.Equal(t, time.Date(2024, 5, 1, 15, 0, 0, 0, sgt), env.twoHourAt)
	assert.Equal(t, "west", env.region)
	assert.Equal(t, []string{
		environment.OperationTwoHourForecast,
		environment.OperationPSI,
		environment.OperationUVIndex,
		environment.OperationDengueClusters,
	}, env.calls)
}

func TestUseCase_Build_LaterToday(t *testing.T) {
	env := &fakeEnvironment{psi: environment.Success("PSI ok")}
	uc := newTestUseCase(t, env, time.Date(2024, 5, 1, 8, 0, 0, 0, sgt))

	report := uc.Build(context.Background(), "picnic at 18:00")

	assert.Equal(t, SourceTwentyFourHour, report.WeatherSource)
	assert.Equal(t, "Weather Data (24-Hour Forecast):\nThundery Showers", report.Weather.Summary)
	assert.Contains(t, env.calls, environment.OperationTwentyFourHourForecast)
}

func TestUseCase_Build_Tomorrow(t *testing.T) {
	env := &fakeEnvironment{}
	uc := newTestUseCase(t, env, time.Date(2024, 1, 1, 20, 0, 0, 0, sgt))

	report := uc.Build(context.Background(), "dragonboating at Kallang tomorrow around 11am")

	assert.Equal(t, "2024-01-02", report.Date)
	assert.Equal(t, SourceFourDay, report.WeatherSource)
	assert.Equal(t, "Weather Data (4-Day Outlook):\n4-day outlook unavailable", report.Weather.Summary)
	assert.False(t, report.Weather.Status)
	assert.Equal(t, "PSI forecast for January 02 is not available via NEA.", report.PSI.Summary)
	assert.True(t, report.PSI.Status)
	assert.Equal(t, "UV Index forecast for January 02 is not available via NEA.", report.UV.Summary)
	assert.True(t, report.UV.Status)
	assert.Equal(t, []string{
		environment.OperationFourDayOutlook,
		environment.OperationDengueClusters,
	}, env.calls)
}

func TestNewUseCase_RequiresDependencies(t *testing.T) {
	_, err := NewUseCase(UseCaseDependencies{})
	assert.Error(t, err)

	_, err = NewUseCase(UseCaseDependencies{Environment: &fakeEnvironment{}, Regions: fakeRegions{}, Historical: fakeHistorical{}})
	assert.ErrorContains(t, err, "logger is required")
}
