package middleware

import (
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/amrsalem/go-user-service/internal/apierr"
)

type errorBody struct {
	Status  string         `json:"status"`
	Code    string         `json:"code"`
	Message string         `json:"message"`
	Meta    map[string]any `json:"meta"`
	Stack   string         `json:"stack"`
}

func serve(t *testing.T, isDev bool, handler gin.HandlerFunc) (*httptest.ResponseRecorder, errorBody) {
	t.Helper()
	gin.SetMode(gin.TestMode)

	engine := gin.New()
	engine.Use(LocaleDetector())
	engine.Use(ErrorHandler(isDev, zerolog.Nop()))
	engine.GET("/x", handler)

	rec := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/x", nil)
	engine.ServeHTTP(rec, req)

	var body errorBody
	if rec.Body.Len() > 0 {
		require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	}
	return rec, body
}

func TestAttachedErrorIsClassifiedAndEmitted(t *testing.T) {
	rec, body := serve(t, false, func(c *gin.Context) {
		_ = c.Error(apierr.New(apierr.CodeForbidden))
		c.Abort()
	})

	require.Equal(t, http.StatusForbidden, rec.Code)
	assert.Equal(t, "fail", body.Status)
	assert.Equal(t, "FORBIDDEN", body.Code)
	assert.Equal(t, "You do not have permission to perform this action.", body.Message)
	assert.Empty(t, body.Stack)
}

func TestUnknownErrorFallsBackToInternal(t *testing.T) {
	rec, body := serve(t, false, func(c *gin.Context) {
		_ = c.Error(errors.New("disk on fire"))
		c.Abort()
	})

	require.Equal(t, http.StatusInternalServerError, rec.Code)
	assert.Equal(t, "error", body.Status)
	assert.Equal(t, "INTERNAL_SERVER_ERROR", body.Code)
	// The raw cause never reaches the client.
	assert.NotContains(t, body.Message, "disk on fire")
}

func TestPanicIsRecovered(t *testing.T) {
	rec, body := serve(t, false, func(c *gin.Context) {
		panic("boom")
	})

	require.Equal(t, http.StatusInternalServerError, rec.Code)
	assert.Equal(t, "INTERNAL_SERVER_ERROR", body.Code)
	assert.Empty(t, body.Stack)
}

func TestPanicStackOnlyInDevelopment(t *testing.T) {
	_, body := serve(t, true, func(c *gin.Context) {
		panic("boom")
	})

	assert.Contains(t, body.Stack, "goroutine")
}

func TestSuccessfulRequestUntouched(t *testing.T) {
	rec, _ := serve(t, false, func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"ok": true})
	})

	require.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, `{"ok": true}`, rec.Body.String())
}

func TestWrittenResponseNotOverwritten(t *testing.T) {
	rec, _ := serve(t, false, func(c *gin.Context) {
		c.JSON(http.StatusTeapot, gin.H{"ok": false})
		_ = c.Error(errors.New("too late"))
	})

	require.Equal(t, http.StatusTeapot, rec.Code)
	assert.JSONEq(t, `{"ok": false}`, rec.Body.String())
}

func TestRequestIDGeneratedAndEchoed(t *testing.T) {
	gin.SetMode(gin.TestMode)

	engine := gin.New()
	engine.Use(RequestID())
	engine.GET("/x", func(c *gin.Context) {
		c.String(http.StatusOK, GetRequestID(c))
	})

	rec := httptest.NewRecorder()
	engine.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/x", nil))

	id := rec.Header().Get(RequestIDHeader)
	require.NotEmpty(t, id)
	assert.Equal(t, id, rec.Body.String())

	// A client-supplied id is reused.
	rec = httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/x", nil)
	req.Header.Set(RequestIDHeader, "req-abc-123")
	engine.ServeHTTP(rec, req)

	assert.Equal(t, "req-abc-123", rec.Header().Get(RequestIDHeader))
	assert.Equal(t, "req-abc-123", rec.Body.String())
}

func TestLocaleDefaultsWithoutDetector(t *testing.T) {
	gin.SetMode(gin.TestMode)
	c, _ := gin.CreateTestContext(httptest.NewRecorder())

	assert.Equal(t, "en", Locale(c))
}
