package refresher

import (
	"fmt"

	"behavior-insights/internal/shared/svcerrors"
)

const (
	codeInternalRefreshFailed = "REF_9000"
)

// errInternalRefreshFailed returns an error when a snapshot refresh fails
// for a reason other than a feed-reported failure.
func errInternalRefreshFailed(cause error) *svcerrors.ServiceError {
	return svcerrors.NewInternalError(codeInternalRefreshFailed, fmt.Errorf("snapshotRefreshFailed: %w", cause))
}
