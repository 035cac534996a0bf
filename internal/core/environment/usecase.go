package environment

import (
	"context"
	"fmt"
	"time"

	"steadyday.app/internal/ports"
	"steadyday.app/pkg/errors"
)

// UseCase turns raw upstream records into short summaries. Every operation
// returns a FetchResult; no error or panic escapes an operation.
type UseCase struct {
	provider ports.EnvironmentProvider
	resolver RegionResolver
	dengue   ports.DengueSource
	logger   ports.Logger
	metrics  ports.MetricsRecorder
	clock    ports.Clock
}

type UseCaseDependencies struct {
	Provider ports.EnvironmentProvider
	Resolver RegionResolver
	Dengue   ports.DengueSource
	Logger   ports.Logger
	Metrics  ports.MetricsRecorder
	Clock    ports.Clock
}

func NewUseCase(deps UseCaseDependencies) (*UseCase, error) {
	if deps.Provider == nil {
		return nil, errors.NewValidationError("environment provider is required")
	}
	if deps.Resolver == nil {
		return nil, errors.NewValidationError("region resolver is required")
	}
	if deps.Dengue == nil {
		return nil, errors.NewValidationError("dengue source is required")
	}
	if deps.Logger == nil {
		return nil, errors.NewValidationError("logger is required")
	}
	if deps.Metrics == nil {
		return nil, errors.NewValidationError("metrics is required")
	}
	clock := deps.Clock
	if clock == nil {
		clock = time.Now
	}

	return &UseCase{
		provider: deps.Provider,
		resolver: deps.Resolver,
		dengue:   deps.Dengue,
		logger:   deps.Logger,
		metrics:  deps.Metrics,
		clock:    clock,
	}, nil
}

// TwoHourForecast summarizes the 2-hour nowcast for one region, falling back
// to the first nationwide record when no area in the region reports.
func (uc *UseCase) TwoHourForecast(ctx context.Context, req TwoHourRequest) (result FetchResult) {
	defer uc.finish(OperationTwoHourForecast, &result, twoHourAPIError)

	at := uc.clock()
	if req.At != nil {
		at = *req.At
	}
	target := req.TargetRegion()
	uc.logger.Debug("Fetching 2-hour forecast",
		ports.F("region", target),
		ports.F("date_time", at.Format("2006-01-02T15:04:05")))

	resp, err := uc.provider.FetchTwoHourForecast(ctx, at)
	if err != nil {
		return Failure(causeOf(err), twoHourAPIError)
	}
	return summarizeTwoHour(resp, target, uc.resolver)
}

// TwentyFourHourForecast summarizes the nationwide 24-hour outlook.
func (uc *UseCase) TwentyFourHourForecast(ctx context.Context) (result FetchResult) {
	defer uc.finish(OperationTwentyFourHourForecast, &result, twentyFourHourAPIError)

	resp, err := uc.provider.FetchTwentyFourHourForecast(ctx)
	if err != nil {
		return Failure(causeOf(err), twentyFourHourAPIError)
	}
	return summarizeTwentyFourHour(resp)
}

// FourDayOutlook summarizes the 4-day outlook, one line per day.
func (uc *UseCase) FourDayOutlook(ctx context.Context) (result FetchResult) {
	defer uc.finish(OperationFourDayOutlook, &result, fourDayAPIError)

	resp, err := uc.provider.FetchFourDayOutlook(ctx)
	if err != nil {
		return Failure(causeOf(err), fourDayAPIError)
	}
	return summarizeFourDay(resp)
}

// PSI reports the finest available PSI reading for a region, falling back
// to the 24-hour series and then to the national reading.
func (uc *UseCase) PSI(ctx context.Context, regionName string) (result FetchResult) {
	defer uc.finish(OperationPSI, &result, psiParseError)

	resp, err := uc.provider.FetchPSI(ctx)
	if err != nil {
		cause := causeOf(err)
		if cause == CauseTransport {
			return Failure(cause, psiNetworkError)
		}
		return Failure(cause, psiParseError)
	}
	return summarizePSI(resp, regionName)
}

// UVIndex reports the latest UV index reading.
func (uc *UseCase) UVIndex(ctx context.Context) (result FetchResult) {
	defer uc.finish(OperationUVIndex, &result, uvInternalError)

	resp, err := uc.provider.FetchUVIndex(ctx)
	if err != nil {
		cause := causeOf(err)
		if cause == CauseTransport {
			return Failure(cause, uvAPIError)
		}
		return Failure(cause, uvInternalError)
	}
	return summarizeUV(resp)
}

// DengueClusters returns the current dengue alert. The query is passed to
// the source but the bundled source ignores it.
func (uc *UseCase) DengueClusters(ctx context.Context, query string) (result FetchResult) {
	defer uc.finish(OperationDengueClusters, &result, dengueUnavailable)

	alert, err := uc.dengue.CurrentAlert(ctx, query)
	if err != nil || alert == "" {
		return Failure(causeOf(err), dengueUnavailable)
	}
	return Success(alert)
}

// finish converts a panic into an internal failure, then logs and records
// the outcome. It must be deferred directly.
func (uc *UseCase) finish(operation string, result *FetchResult, internalSummary string) {
	if r := recover(); r != nil {
		uc.logger.Error("Operation panicked",
			ports.F("operation", operation),
			ports.F("panic", fmt.Sprint(r)))
		*result = Failure(CauseInternal, internalSummary)
	}

	switch result.Outcome {
	case OutcomeFailed:
		uc.logger.Warn("Operation failed",
			ports.F("operation", operation),
			ports.F("cause", string(result.Cause)))
	case OutcomeDegraded:
		uc.logger.Info("Operation degraded",
			ports.F("operation", operation))
	default:
		uc.logger.Debug("Operation succeeded",
			ports.F("operation", operation))
	}
	uc.metrics.RecordOperationResult(operation, string(result.Outcome))
}

func causeOf(err error) FailureCause {
	switch {
	case err == nil:
		return CauseMissingData
	case errors.IsExternalAPIError(err):
		return CauseTransport
	case errors.IsMalformedResponseError(err):
		return CauseMalformed
	default:
		return CauseInternal
	}
}
