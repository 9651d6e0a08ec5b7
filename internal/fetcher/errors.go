package fetcher

import (
	"fmt"

	"github.com/rohmanhakim/recipebox/internal/metadata"
	"github.com/rohmanhakim/recipebox/pkg/failure"
)

type FetchErrorCause string

const (
	ErrCauseInvalidRequest  FetchErrorCause = "invalid request"
	ErrCauseTransport       FetchErrorCause = "transport failure"
	ErrCauseInvalidResponse FetchErrorCause = "invalid response"
	ErrCauseHTTPStatus      FetchErrorCause = "unexpected http status"
	ErrCauseDecode          FetchErrorCause = "decode failure"
)

// Sentinels for errors.Is. A *FetchError matches any of these by Cause.
var (
	ErrInvalidRequest  = &FetchError{Cause: ErrCauseInvalidRequest}
	ErrTransport       = &FetchError{Cause: ErrCauseTransport}
	ErrInvalidResponse = &FetchError{Cause: ErrCauseInvalidResponse}
	ErrHTTPStatus      = &FetchError{Cause: ErrCauseHTTPStatus}
	ErrDecode          = &FetchError{Cause: ErrCauseDecode}
)

type FetchError struct {
	Message   string
	Cause     FetchErrorCause
	Retryable bool
	// StatusCode is set for ErrCauseHTTPStatus.
	StatusCode int
	// Err is the underlying transport or decode error, if any.
	Err error
}

func (e *FetchError) Error() string {
	if e.Message == "" {
		return fmt.Sprintf("fetcher error: %s", e.Cause)
	}
	return fmt.Sprintf("fetcher error: %s: %s", e.Cause, e.Message)
}

func (e *FetchError) Unwrap() error {
	return e.Err
}

func (e *FetchError) Severity() failure.Severity {
	if e.Retryable {
		return failure.SeverityRecoverable
	}
	return failure.SeverityFatal
}

func (e *FetchError) IsRetryable() bool {
	return e.Retryable
}

func (e *FetchError) Is(target error) bool {
	t, ok := target.(*FetchError)
	if !ok {
		return false
	}
	return t.Cause == e.Cause
}

func invalidRequest(message string, err error) *FetchError {
	return &FetchError{
		Message: message,
		Cause:   ErrCauseInvalidRequest,
		Err:     err,
	}
}

func transportFailure(err error) *FetchError {
	return &FetchError{
		Message:   err.Error(),
		Cause:     ErrCauseTransport,
		Retryable: true,
		Err:       err,
	}
}

// invalidResponse covers a missing (0) or out-of-range status code.
func invalidResponse(code int) *FetchError {
	message := "response carries no status code"
	if code != 0 {
		message = fmt.Sprintf("response carries impossible status code %d", code)
	}
	return &FetchError{
		Message: message,
		Cause:   ErrCauseInvalidResponse,
	}
}

// 429 and 5xx may succeed later; every other status is final.
func httpStatus(code int) *FetchError {
	return &FetchError{
		Message:    fmt.Sprintf("status %d", code),
		Cause:      ErrCauseHTTPStatus,
		StatusCode: code,
		Retryable:  code == 429 || code >= 500,
	}
}

func decodeFailure(err error) *FetchError {
	return &FetchError{
		Message: err.Error(),
		Cause:   ErrCauseDecode,
		Err:     err,
	}
}

// mapFetchErrorToMetadataCause maps fetcher-local error semantics
// to the canonical metadata.ErrorCause table.
//
// This mapping is observational only and MUST NOT be used
// to derive control-flow decisions.
func mapFetchErrorToMetadataCause(err *FetchError) metadata.ErrorCause {
	switch err.Cause {
	case ErrCauseInvalidRequest:
		return metadata.CauseInvalidRequest
	case ErrCauseTransport:
		return metadata.CauseNetworkFailure
	case ErrCauseHTTPStatus:
		return metadata.CauseRemoteRejected
	case ErrCauseInvalidResponse, ErrCauseDecode:
		return metadata.CauseContentInvalid
	default:
		return metadata.CauseUnknown
	}
}
