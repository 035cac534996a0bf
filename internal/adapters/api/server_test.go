package api

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"steadyday.app/internal/core/environment"
	"steadyday.app/internal/core/region"
	"steadyday.app/internal/core/report"
	"steadyday.app/internal/mocks"
	"steadyday.app/internal/ports"
)

var sgt = time.FixedZone("UTC+8", 8*3600)

type fakeEnvironment struct {
	twoHour     environment.TwoHourRequest
	psiRegion   string
	dengueQuery string
}

func (f *fakeEnvironment) TwoHourForecast(ctx context.Context, req environment.TwoHourRequest) environment.FetchResult {
	f.twoHour = req
	return environment.Success("Partly Cloudy (Day) in Jurong West")
}

func (f *fakeEnvironment) TwentyFourHourForecast(ctx context.Context) environment.FetchResult {
	return environment.Failure(environment.CauseTransport, "24-hour forecast unavailable")
}

func (f *fakeEnvironment) FourDayOutlook(ctx context.Context) environment.FetchResult {
	return environment.Success("4-day outlook")
}

func (f *fakeEnvironment) PSI(ctx context.Context, regionName string) environment.FetchResult {
	f.psiRegion = regionName
	return environment.Degraded("PSI (3-hour) for National: 55")
}

func (f *fakeEnvironment) UVIndex(ctx context.Context) environment.FetchResult {
	return environment.Success("UV Index: 8")
}

func (f *fakeEnvironment) DengueClusters(ctx context.Context, query string) environment.FetchResult {
	f.dengueQuery = query
	return environment.Success("dengue alert")
}

type fakeReports struct {
	query string
}

func (f *fakeReports) Build(ctx context.Context, query string) *report.Report {
	f.query = query
	return &report.Report{
		ID:            "report-1",
		Query:         query,
		Region:        "south",
		WeatherSource: report.SourceFourDay,
		Weather:       environment.Success("Weather Data (4-Day Outlook):\nFair"),
	}
}

type fakeHealth struct {
	results map[string]ports.HealthStatus
}

func (f fakeHealth) CheckAll(ctx context.Context) map[string]ports.HealthStatus {
	return f.results
}

type testServer struct {
	router      *gin.Engine
	environment *fakeEnvironment
	reports     *fakeReports
	metrics     *mocks.MetricsReporter
}

func setupTestServer(t *testing.T, health map[string]ports.HealthStatus) *testServer {
	gin.SetMode(gin.TestMode)
	require.NoError(t, RegisterValidators())

	ts := &testServer{
		environment: &fakeEnvironment{},
		reports:     &fakeReports{},
		metrics:     mocks.NewMetricsReporter(t),
	}

	server, err := NewHTTPServerAdapter(ServerOptions{
		EnvironmentUseCase: ts.environment,
		RegionResolver: region.NewResolver([]region.Group{
			{Region: "west", Areas: []string{"Jurong West"}},
			{Region: "south", Areas: []string{"Sentosa"}},
		}),
		ReportUseCase:       ts.reports,
		MetricsReporter:     ts.metrics,
		SystemHealthChecker: fakeHealth{results: health},
		Location:            sgt,
	})
	require.NoError(t, err)

	ts.router = server.GetRouter()
	return ts
}

func (ts *testServer) get(target string) *httptest.ResponseRecorder {
	w := httptest.NewRecorder()
	ts.router.ServeHTTP(w, httptest.NewRequest(http.MethodGet, target, nil))
	return w
}

func decodeResult(t *testing.T, w *httptest.ResponseRecorder) environment.FetchResult {
	var result environment.FetchResult
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &result))
	return result
}

func TestTwoHourForecast_PassesRegionAndDateTime(t *testing.T) {
	ts := setupTestServer(t, nil)

	w := ts.get("/api/weather/two-hour?region=West&date_time=2024-05-01T14:05:00")

	assert.Equal(t, http.StatusOK, w.Code)
	result := decodeResult(t, w)
	assert.True(t, result.Status)
	assert.Equal(t, "Partly Cloudy (Day) in Jurong West", result.Summary)
	assert.Equal(t, environment.OutcomeOK, result.Outcome)

	assert.Equal(t, "West", ts.environment.twoHour.Region)
	require.NotNil(t, ts.environment.twoHour.At)
	assert.True(t, ts.environment.twoHour.At.Equal(time.Date(2024, 5, 1, 14, 5, 0, 0, sgt)))
}

func TestTwoHourForecast_Defaults(t *testing.T) {
	ts := setupTestServer(t, nil)

	w := ts.get("/api/weather/two-hour")

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Empty(t, ts.environment.twoHour.Region)
	assert.Nil(t, ts.environment.twoHour.At)
}

func TestTwoHourForecast_InvalidParameters(t *testing.T) {
	tests := []struct {
		name          string
		target        string
		expectedError string
	}{
		{name: "bad_date_time", target: "/api/weather/two-hour?date_time=yesterday", expectedError: "date_time parameter must use the format YYYY-MM-DDTHH:MM:SS"},
		{name: "bad_region", target: "/api/weather/two-hour?region=w3st", expectedError: "region parameter is invalid"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ts := setupTestServer(t, nil)

			w := ts.get(tt.target)

			assert.Equal(t, http.StatusBadRequest, w.Code)
			var response ErrorResponse
			require.NoError(t, json.Unmarshal(w.Body.Bytes(), &response))
			assert.Equal(t, tt.expectedError, response.Error)
		})
	}
}

func TestFailedOperationsStillAnswer200(t *testing.T) {
	ts := setupTestServer(t, nil)

	w := ts.get("/api/weather/twenty-four-hour")

	assert.Equal(t, http.StatusOK, w.Code)
	result := decodeResult(t, w)
	assert.False(t, result.Status)
	assert.Equal(t, environment.CauseTransport, result.Cause)
}

func TestSimpleOperations(t *testing.T) {
	ts := setupTestServer(t, nil)

	assert.Equal(t, "4-day outlook", decodeResult(t, ts.get("/api/weather/four-day")).Summary)
	assert.Equal(t, "UV Index: 8", decodeResult(t, ts.get("/api/uv-index")).Summary)

	w := ts.get("/api/dengue?query=bedok+tonight")
	assert.Equal(t, "dengue alert", decodeResult(t, w).Summary)
	assert.Equal(t, "bedok tonight", ts.environment.dengueQuery)
}

func TestPSI(t *testing.T) {
	t.Run("region_required", func(t *testing.T) {
		ts := setupTestServer(t, nil)

		w := ts.get("/api/air-quality/psi")

		assert.Equal(t, http.StatusBadRequest, w.Code)
		assert.Contains(t, w.Body.String(), "region parameter is required")
	})

	t.Run("degraded_result", func(t *testing.T) {
		ts := setupTestServer(t, nil)

		w := ts.get("/api/air-quality/psi?region=north")

		assert.Equal(t, http.StatusOK, w.Code)
		result := decodeResult(t, w)
		assert.True(t, result.Status)
		assert.Equal(t, environment.OutcomeDegraded, result.Outcome)
		assert.Equal(t, "north", ts.environment.psiRegion)
	})
}

func TestResolveRegion(t *testing.T) {
	ts := setupTestServer(t, nil)

	w := ts.get("/api/regions/resolve?location=Jurong-West")

	assert.Equal(t, http.StatusOK, w.Code)
	var response ResolveResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &response))
	assert.Equal(t, ResolveResponse{Location: "Jurong-West", Normalized: "jurongwest", Region: "west", Found: true}, response)

	w = ts.get("/api/regions/resolve?location=Atlantis")
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &response))
	assert.False(t, response.Found)
	assert.Empty(t, response.Region)

	w = ts.get("/api/regions/resolve")
	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestReport(t *testing.T) {
	ts := setupTestServer(t, nil)

	w := ts.get("/api/report?query=sentosa+tomorrow")

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "sentosa tomorrow", ts.reports.query)

	var response report.Report
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &response))
	assert.Equal(t, "report-1", response.ID)
	assert.Equal(t, report.SourceFourDay, response.WeatherSource)

	w = ts.get("/api/report")
	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Contains(t, w.Body.String(), "query parameter is required")
}

func TestRequestID(t *testing.T) {
	ts := setupTestServer(t, nil)

	w := ts.get("/api/uv-index")
	assert.Len(t, w.Header().Get(requestIDHeader), 36)

	req := httptest.NewRequest(http.MethodGet, "/api/uv-index", nil)
	req.Header.Set(requestIDHeader, "caller-supplied")
	w = httptest.NewRecorder()
	ts.router.ServeHTTP(w, req)
	assert.Equal(t, "caller-supplied", w.Header().Get(requestIDHeader))
}

func TestMetricsEndpoints(t *testing.T) {
	ts := setupTestServer(t, nil)
	ts.metrics.EXPECT().Snapshot().Return(ports.MetricsSnapshot{
		UpstreamCalls: map[string]int64{"psi": 3},
		Outcomes:      map[string]int64{"psi.degraded": 1},
	}).Once()

	w := ts.get("/api/metrics")
	assert.Equal(t, http.StatusOK, w.Code)
	var snapshot ports.MetricsSnapshot
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &snapshot))
	assert.Equal(t, int64(3), snapshot.UpstreamCalls["psi"])
	assert.Equal(t, int64(1), snapshot.Outcomes["psi.degraded"])

	w = ts.get("/metrics")
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), "go_goroutines")
}

func TestHealth(t *testing.T) {
	t.Run("healthy", func(t *testing.T) {
		ts := setupTestServer(t, map[string]ports.HealthStatus{
			"upstream": {Component: "upstream", Status: "healthy"},
		})

		w := ts.get("/api/health")

		assert.Equal(t, http.StatusOK, w.Code)
		var response HealthResponse
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &response))
		assert.Equal(t, "healthy", response.Status)
	})

	t.Run("unhealthy_component", func(t *testing.T) {
		ts := setupTestServer(t, map[string]ports.HealthStatus{
			"upstream": {Component: "upstream", Status: "healthy"},
			"regions":  {Component: "regions", Status: "unhealthy", Error: "region table is empty"},
		})

		w := ts.get("/api/health")

		assert.Equal(t, http.StatusServiceUnavailable, w.Code)
		var response HealthResponse
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &response))
		assert.Equal(t, "unhealthy", response.Status)
		assert.Equal(t, "region table is empty", response.Components["regions"].Error)
	})
}

func TestNewHTTPServerAdapter_ValidatesOptions(t *testing.T) {
	_, err := NewHTTPServerAdapter(ServerOptions{})

	assert.ErrorContains(t, err, "environment use case is required")
}
