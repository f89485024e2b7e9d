// Package apierr defines the canonical application error value and the
// classifier chain that normalizes raw failures from lower layers
// (persistence driver, request validator, token library) into it.
package apierr

import "fmt"

// Status classes reported in the response envelope.
const (
	StatusFail  = "fail"  // 4xx: the client can fix the request
	StatusError = "error" // 5xx: the server failed
)

// MetaFields is the reserved Meta key holding field-level validation detail.
const MetaFields = "fields"

// Field describes a single invalid input field. Order follows the order
// issues were reported by the validator.
type Field struct {
	Field   string         `json:"field"`
	Code    string         `json:"code"`
	Message string         `json:"message,omitempty"`
	Meta    map[string]any `json:"meta,omitempty"`
}

// Error is the canonical error value flowing from business logic and
// classifiers to the response layer. It is constructed once at the point
// of failure detection and treated as immutable from then on.
type Error struct {
	Code       Code           `json:"code"`
	StatusCode int            `json:"statusCode"`
	Status     string         `json:"status"`
	Meta       map[string]any `json:"meta,omitempty"`
}

// New builds an Error for code, deriving the HTTP status from the catalog
// and the status class from the status code.
func New(code Code) *Error {
	status := code.StatusCode()
	return &Error{
		Code:       code,
		StatusCode: status,
		Status:     statusClass(status),
	}
}

// WithMeta returns the error with meta attached. Intended for use at
// construction time only.
func (e *Error) WithMeta(meta map[string]any) *Error {
	e.Meta = meta
	return e
}

// WithFields returns the error with field-level validation detail attached
// under the reserved "fields" meta key.
func (e *Error) WithFields(fields []Field) *Error {
	if e.Meta == nil {
		e.Meta = make(map[string]any, 1)
	}
	e.Meta[MetaFields] = fields
	return e
}

// Fields returns the field-level detail attached to the error, if any.
func (e *Error) Fields() []Field {
	if e.Meta == nil {
		return nil
	}
	fields, _ := e.Meta[MetaFields].([]Field)
	return fields
}

func (e *Error) Error() string {
	return fmt.Sprintf("%s (%d)", e.Code, e.StatusCode)
}

func statusClass(statusCode int) string {
	if statusCode >= 400 && statusCode < 500 {
		return StatusFail
	}
	return StatusError
}
