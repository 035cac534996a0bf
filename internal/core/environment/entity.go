package environment

import (
	"strings"
	"time"
	"unicode"
	"unicode/utf8"

	"steadyday.app/internal/core/region"
)

// Outcome classifies how an operation ended.
type Outcome string

const (
	OutcomeOK       Outcome = "ok"
	OutcomeDegraded Outcome = "degraded"
	OutcomeFailed   Outcome = "failed"
)

// FailureCause says why an operation failed or degraded.
type FailureCause string

const (
	CauseNone        FailureCause = "none"
	CauseTransport   FailureCause = "transport"
	CauseMalformed   FailureCause = "malformed"
	CauseMissingData FailureCause = "missing_data"
	CauseInternal    FailureCause = "internal"
)

// FetchResult is the uniform result of every fetch operation. Summary is
// never empty and Status is false only for failures.
type FetchResult struct {
	Summary string       `json:"summary"`
	Status  bool         `json:"status"`
	Outcome Outcome      `json:"outcome"`
	Cause   FailureCause `json:"cause"`
}

// Success builds a result for fully satisfied data.
func Success(summary string) FetchResult {
	return FetchResult{Summary: summary, Status: true, Outcome: OutcomeOK, Cause: CauseNone}
}

// Degraded builds a usable result produced through a fallback.
func Degraded(summary string) FetchResult {
	return FetchResult{Summary: summary, Status: true, Outcome: OutcomeDegraded, Cause: CauseMissingData}
}

// Failure builds a result for an operation that produced no usable data.
func Failure(cause FailureCause, summary string) FetchResult {
	return FetchResult{Summary: summary, Status: false, Outcome: OutcomeFailed, Cause: cause}
}

// IsDegraded reports whether a fallback was used.
func (r FetchResult) IsDegraded() bool {
	return r.Outcome == OutcomeDegraded
}

// Operation names, used for logging and metrics labels.
const (
	OperationTwoHourForecast        = "two_hour_forecast"
	OperationTwentyFourHourForecast = "twenty_four_hour_forecast"
	OperationFourDayOutlook         = "four_day_outlook"
	OperationPSI                    = "psi"
	OperationUVIndex                = "uv_index"
	OperationDengueClusters         = "dengue_clusters"
)

// TwoHourRequest parameterizes the 2-hour nowcast. A nil At means now and
// an empty Region means nationwide.
type TwoHourRequest struct {
	At     *time.Time
	Region string
}

// TargetRegion returns the lower-cased region to filter on.
func (r TwoHourRequest) TargetRegion() string {
	target := strings.ToLower(strings.TrimSpace(r.Region))
	if target == "" {
		return region.National
	}
	return target
}

// DisplayName upper-cases the first letter of name and lower-cases the rest.
func DisplayName(name string) string {
	if name == "" {
		return name
	}
	first, size := utf8.DecodeRuneInString(name)
	return string(unicode.ToUpper(first)) + strings.ToLower(name[size:])
}
