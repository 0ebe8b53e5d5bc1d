package feed

import (
	"fmt"

	"behavior-insights/internal/shared/svcerrors"
)

const (
	codeConfigurationMissing = "FEED_1000"

	codeTransportFailed = "FEED_9000"
	codeFormatInvalid   = "FEED_9001"
)

// errConfigurationMissing returns an error when the feed endpoint or
// credential is missing. Surfaced at construction time, before any fetch.
func errConfigurationMissing(msg string) *svcerrors.ServiceError {
	return svcerrors.NewInvalidArgumentError(codeConfigurationMissing, msg, nil)
}

// errTransportFailed returns an error when the feed cannot be reached or
// answers with a non-success status.
func errTransportFailed(cause error) *svcerrors.ServiceError {
	return svcerrors.NewUnavailableError(codeTransportFailed, "metric feed unavailable", fmt.Errorf("feedTransportFailed: %w", cause))
}

// errFormatInvalid returns an error when the feed body does not match the
// expected group/record shape.
func errFormatInvalid(cause error) *svcerrors.ServiceError {
	return svcerrors.NewUnavailableError(codeFormatInvalid, "metric feed returned an unexpected response shape", fmt.Errorf("feedFormatInvalid: %w", cause))
}
