package apierr

import (
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewDerivesStatusFromCatalog(t *testing.T) {
	tests := []struct {
		name       string
		code       Code
		statusCode int
		status     string
	}{
		{name: "validation error", code: CodeValidationError, statusCode: http.StatusBadRequest, status: StatusFail},
		{name: "duplicate field", code: CodeDuplicateField, statusCode: http.StatusConflict, status: StatusFail},
		{name: "unauthorized", code: CodeUnauthorized, statusCode: http.StatusUnauthorized, status: StatusFail},
		{name: "token expired", code: CodeTokenExpired, statusCode: http.StatusUnauthorized, status: StatusFail},
		{name: "invalid token", code: CodeInvalidToken, statusCode: http.StatusUnauthorized, status: StatusFail},
		{name: "forbidden", code: CodeForbidden, statusCode: http.StatusForbidden, status: StatusFail},
		{name: "user not found", code: CodeUserNotFound, statusCode: http.StatusNotFound, status: StatusFail},
		{name: "not found", code: CodeNotFound, statusCode: http.StatusNotFound, status: StatusFail},
		{name: "internal", code: CodeInternalServerError, statusCode: http.StatusInternalServerError, status: StatusError},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := New(tt.code)

			assert.Equal(t, tt.code, err.Code)
			assert.Equal(t, tt.statusCode, err.StatusCode)
			assert.Equal(t, tt.status, err.Status)
		})
	}
}

// The status class is "fail" exactly when the status code is in the 4xx
// range, for every code in the catalog.
func TestStatusClassLaw(t *testing.T) {
	for _, code := range Codes() {
		err := New(code)
		if err.StatusCode >= 400 && err.StatusCode < 500 {
			assert.Equal(t, StatusFail, err.Status, "code %s", code)
		} else {
			assert.Equal(t, StatusError, err.Status, "code %s", code)
		}
	}
}

func TestUnknownCodeMapsToInternal(t *testing.T) {
	err := New(Code("NOT_IN_CATALOG"))

	assert.Equal(t, http.StatusInternalServerError, err.StatusCode)
	assert.Equal(t, StatusError, err.Status)
}

func TestWithFields(t *testing.T) {
	fields := []Field{
		{Field: "email", Code: FieldCodeInvalid},
		{Field: "password", Code: FieldCodeMinLength, Meta: map[string]any{"min": 8}},
	}

	err := New(CodeValidationError).WithFields(fields)

	require.NotNil(t, err.Meta)
	assert.Equal(t, fields, err.Fields())
}

func TestFieldsWithoutMeta(t *testing.T) {
	err := New(CodeNotFound)

	assert.Nil(t, err.Fields())
}

func TestErrorString(t *testing.T) {
	err := New(CodeUserNotFound)

	assert.Equal(t, "USER_NOT_FOUND (404)", err.Error())
}
