// Package external provides adapters for external services.
// These adapters implement the upstream environment data port.
package external

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"time"

	"steadyday.app/internal/ports"
	"steadyday.app/pkg/errors"
)

const (
	defaultRequestTimeout = 10 * time.Second
	dateTimeLayout        = "2006-01-02T15:04:05"
)

// Endpoint names, used in errors, logs and metric labels.
const (
	EndpointTwoHourForecast        = "2-hour-weather-forecast"
	EndpointTwentyFourHourForecast = "24-hour-weather-forecast"
	EndpointFourDayOutlook         = "4-day-weather-forecast"
	EndpointPSI                    = "psi"
	EndpointUVIndex                = "uv-index"
)

// HTTPClient interface for HTTP requests (for testing)
type HTTPClient interface {
	Do(req *http.Request) (*http.Response, error)
}

// Endpoints holds the full URL of every upstream resource.
type Endpoints struct {
	TwoHourForecast        string
	TwentyFourHourForecast string
	FourDayOutlook         string
	PSI                    string
	UVIndex                string
}

// NEAProviderAdapter implements the EnvironmentProvider port over the
// data.gov.sg environment API.
type NEAProviderAdapter struct {
	endpoints Endpoints
	headers   map[string]string
	timeout   time.Duration
	client    HTTPClient
	logger    ports.Logger
}

// NEAProviderParams holds parameters for creating the provider
type NEAProviderParams struct {
	Endpoints Endpoints
	Headers   map[string]string
	Timeout   time.Duration
	Client    HTTPClient
	Logger    ports.Logger
}

// NewNEAProviderAdapter creates a new provider adapter. A zero timeout means
// the 10 second default; a nil client means a fresh http.Client.
func NewNEAProviderAdapter(params NEAProviderParams) *NEAProviderAdapter {
	timeout := params.Timeout
	if timeout <= 0 {
		timeout = defaultRequestTimeout
	}
	client := params.Client
	if client == nil {
		client = &http.Client{Timeout: timeout}
	}
	headers := make(map[string]string, len(params.Headers))
	for k, v := range params.Headers {
		headers[k] = v
	}

	return &NEAProviderAdapter{
		endpoints: params.Endpoints,
		headers:   headers,
		timeout:   timeout,
		client:    client,
		logger:    params.Logger,
	}
}

// FetchTwoHourForecast retrieves the area nowcast valid at the given instant
func (p *NEAProviderAdapter) FetchTwoHourForecast(ctx context.Context, at time.Time) (*ports.TwoHourForecastResponse, error) {
	query := url.Values{}
	query.Set("date_time", at.Format(dateTimeLayout))

	var out ports.TwoHourForecastResponse
	if err := p.getJSON(ctx, EndpointTwoHourForecast, p.endpoints.TwoHourForecast, query, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// FetchTwentyFourHourForecast retrieves the general 24-hour outlook
func (p *NEAProviderAdapter) FetchTwentyFourHourForecast(ctx context.Context) (*ports.TwentyFourHourForecastResponse, error) {
	var out ports.TwentyFourHourForecastResponse
	if err := p.getJSON(ctx, EndpointTwentyFourHourForecast, p.endpoints.TwentyFourHourForecast, nil, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// FetchFourDayOutlook retrieves the 4-day outlook
func (p *NEAProviderAdapter) FetchFourDayOutlook(ctx context.Context) (*ports.FourDayOutlookResponse, error) {
	var out ports.FourDayOutlookResponse
	if err := p.getJSON(ctx, EndpointFourDayOutlook, p.endpoints.FourDayOutlook, nil, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// FetchPSI retrieves the latest PSI readings
func (p *NEAProviderAdapter) FetchPSI(ctx context.Context) (*ports.PSIResponse, error) {
	var out ports.PSIResponse
	if err := p.getJSON(ctx, EndpointPSI, p.endpoints.PSI, nil, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// FetchUVIndex retrieves the latest UV index readings
func (p *NEAProviderAdapter) FetchUVIndex(ctx context.Context) (*ports.UVIndexResponse, error) {
	var out ports.UVIndexResponse
	if err := p.getJSON(ctx, EndpointUVIndex, p.endpoints.UVIndex, nil, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

func (p *NEAProviderAdapter) getJSON(ctx context.Context, name, rawURL string, query url.Values, out interface{}) error {
	ctx, cancel := context.WithTimeout(ctx, p.timeout)
	defer cancel()

	target, err := withQuery(rawURL, query)
	if err != nil {
		return errors.NewExternalAPIError(fmt.Sprintf("invalid %s endpoint", name), err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, target, nil)
	if err != nil {
		return errors.NewExternalAPIError(fmt.Sprintf("failed to build %s request", name), err)
	}
	for k, v := range p.headers {
		req.Header.Set(k, v)
	}

	resp, err := p.client.Do(req)
	if err != nil {
		return errors.NewExternalAPIError(fmt.Sprintf("failed to call %s", name), err)
	}
	defer func() {
		if closeErr := resp.Body.Close(); closeErr != nil {
			p.logger.Warn("Failed to close upstream response body",
				ports.F("endpoint", name),
				ports.F("error", closeErr))
		}
	}()

	if resp.StatusCode < http.StatusOK || resp.StatusCode >= http.StatusMultipleChoices {
		return errors.NewExternalAPIError(fmt.Sprintf("%s returned status %d", name, resp.StatusCode), nil)
	}

	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		if ctx.Err() != nil {
			return errors.NewExternalAPIError(fmt.Sprintf("timed out reading %s response", name), err)
		}
		return errors.NewMalformedResponseError(fmt.Sprintf("failed to decode %s response", name), err)
	}
	return nil
}

func withQuery(rawURL string, query url.Values) (string, error) {
	u, err := url.Parse(rawURL)
	if err != nil {
		return "", err
	}
	if len(query) == 0 {
		return u.String(), nil
	}
	merged := u.Query()
	for k, vs := range query {
		merged[k] = vs
	}
	u.RawQuery = merged.Encode()
	return u.String(), nil
}
