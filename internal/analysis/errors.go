package analysis

import (
	"context"
	"errors"
	"net/http"

	"github.com/openai/openai-go/v2"
)

// FailureKind classifies upstream analysis failures for the caller.
type FailureKind string

const (
	// FailureQuotaExhausted means the provider rejected the call for quota
	// reasons; retryable after a cooldown, never retried automatically.
	FailureQuotaExhausted FailureKind = "quota_exhausted"
	// FailureUnavailable covers transient provider errors and timeouts.
	FailureUnavailable FailureKind = "service_unavailable"
	// FailureBadResponse means the provider answered with an empty or
	// malformed payload.
	FailureBadResponse FailureKind = "bad_response"
)

// GatewayError wraps every upstream failure so callers never see a raw
// provider error.
type GatewayError struct {
	Kind    FailureKind
	Message string
	cause   error
}

func (e *GatewayError) Error() string { return e.Message }

func (e *GatewayError) Unwrap() error { return e.cause }

func classifyErr(err error) *GatewayError {
	var apierr *openai.Error
	if errors.As(err, &apierr) {
		if apierr.StatusCode == http.StatusTooManyRequests {
			return &GatewayError{
				Kind:    FailureQuotaExhausted,
				Message: "analysis quota exhausted, retry later",
				cause:   err,
			}
		}
		return &GatewayError{
			Kind:    FailureUnavailable,
			Message: "the analysis service is currently unavailable",
			cause:   err,
		}
	}
	if errors.Is(err, context.DeadlineExceeded) {
		return &GatewayError{
			Kind:    FailureUnavailable,
			Message: "the analysis service timed out",
			cause:   err,
		}
	}
	return &GatewayError{
		Kind:    FailureUnavailable,
		Message: "the analysis service is currently unavailable",
		cause:   err,
	}
}

func badResponseErr(cause error) *GatewayError {
	return &GatewayError{
		Kind:    FailureBadResponse,
		Message: "the analysis service returned an unusable response",
		cause:   cause,
	}
}
