package client

import "fmt"

// Error kinds the rest of the application branches on. Callers match with
// errors.Is; APIError carries the backend's status and message for
// everything that is neither auth nor transport.
type Error struct {
	Code    string
	Message string
}

func (e *Error) Error() string {
	return e.Message
}

func (e *Error) Is(target error) bool {
	if t, ok := target.(*Error); ok {
		return e.Code == t.Code
	}
	return false
}

var (
	// ErrAuthExpired - the stored token's embedded expiry has passed. The
	// session is cleared before this is returned; no request was sent.
	ErrAuthExpired = &Error{
		Code:    "AUTH_EXPIRED",
		Message: "authentication expired, please login again",
	}

	// ErrAuthFailed - the backend rejected the token (HTTP 401). The
	// session is cleared before this is returned.
	ErrAuthFailed = &Error{
		Code:    "AUTH_FAILED",
		Message: "authentication failed, please login again",
	}

	// ErrAuthMissing - an authenticated call was made with no stored token.
	ErrAuthMissing = &Error{
		Code:    "AUTH_MISSING",
		Message: "no authentication token found",
	}

	// ErrForbidden - the backend refused the operation for this account,
	// typically a manager touching another team's records (HTTP 403).
	ErrForbidden = &Error{
		Code:    "FORBIDDEN",
		Message: "access denied",
	}

	// ErrNetwork - the backend was unreachable. List fetches degrade to
	// empty or cached results instead of surfacing this.
	ErrNetwork = &Error{
		Code:    "NETWORK",
		Message: "network error, please check your connection",
	}
)

// APIError is any other non-2xx response. Detail comes from the backend's
// structured error body when one could be parsed.
type APIError struct {
	Status int
	Detail string
}

func (e *APIError) Error() string {
	if e.Detail != "" {
		return e.Detail
	}
	return fmt.Sprintf("API error: status %d", e.Status)
}
