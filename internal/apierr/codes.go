package apierr

import "net/http"

// Code is a stable, machine-readable error code. Clients match on these,
// so existing codes are never removed or remapped to a different status.
type Code string

// Auth
const (
	CodeUnauthorized Code = "UNAUTHORIZED"
	CodeTokenExpired Code = "TOKEN_EXPIRED"
	CodeInvalidToken Code = "INVALID_TOKEN"
	CodeForbidden    Code = "FORBIDDEN"
)

// Validation & data
const (
	CodeValidationError Code = "VALIDATION_ERROR"
	CodeDuplicateField  Code = "DUPLICATE_FIELD"
)

// Resources
const (
	CodeUserNotFound Code = "USER_NOT_FOUND"
	CodeNotFound     Code = "NOT_FOUND"
)

// Server
const (
	CodeInternalServerError Code = "INTERNAL_SERVER_ERROR"
)

// statusByCode is the closed catalog mapping each code to its HTTP status.
var statusByCode = map[Code]int{
	CodeUnauthorized: http.StatusUnauthorized,
	CodeTokenExpired: http.StatusUnauthorized,
	CodeInvalidToken: http.StatusUnauthorized,
	CodeForbidden:    http.StatusForbidden,

	CodeValidationError: http.StatusBadRequest,
	CodeDuplicateField:  http.StatusConflict,

	CodeUserNotFound: http.StatusNotFound,
	CodeNotFound:     http.StatusNotFound,

	CodeInternalServerError: http.StatusInternalServerError,
}

// StatusCode returns the HTTP status registered for code. Unknown codes map
// to 500 so an unregistered code can never produce a malformed response.
func (c Code) StatusCode() int {
	if status, ok := statusByCode[c]; ok {
		return status
	}
	return http.StatusInternalServerError
}

// Codes returns every registered code. Used by tests to assert catalog
// invariants; the catalog itself is never mutated at runtime.
func Codes() []Code {
	codes := make([]Code, 0, len(statusByCode))
	for c := range statusByCode {
		codes = append(codes, c)
	}
	return codes
}
