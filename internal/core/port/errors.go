package port

import "errors"

// Ad server transport errors. Outbound adapters wrap these so callers can
// tell remote failures apart from domain errors.
var (
	ErrRemoteUnavailable     = errors.New("adserver: service temporarily unavailable")
	ErrRemoteRejected        = errors.New("adserver: request rejected")
	ErrRemoteAuthFailed      = errors.New("adserver: authentication failed")
	ErrRemoteRateLimited     = errors.New("adserver: rate limited")
	ErrRemoteInvalidResponse = errors.New("adserver: invalid response")
)

// IsRemoteError reports whether err came from the ad server transport.
func IsRemoteError(err error) bool {
	return errors.Is(err, ErrRemoteUnavailable) ||
		errors.Is(err, ErrRemoteRejected) ||
		errors.Is(err, ErrRemoteAuthFailed) ||
		errors.Is(err, ErrRemoteRateLimited) ||
		errors.Is(err, ErrRemoteInvalidResponse)
}
