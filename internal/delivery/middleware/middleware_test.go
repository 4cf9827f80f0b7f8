package middleware

import (
	"bytes"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"library/config"
	deliverycontext "library/internal/delivery/context"
	"library/internal/domain/constants"
	"library/internal/domain/entity"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestEcho(t *testing.T, buf *bytes.Buffer, debug bool) *echo.Echo {
	t.Helper()

	logger := slog.New(slog.NewTextHandler(buf, &slog.HandlerOptions{Level: slog.LevelDebug}))
	cfg := &config.Config{}
	cfg.Env.Debug = debug

	e := echo.New()
	e.Use(NewRequestIDMiddleware(logger).Process)
	e.Use(NewLoggerMiddleware(logger, cfg).Handle)

	return e
}

func TestRequestIDMiddleware(t *testing.T) {
	tests := []struct {
		name     string
		header   string
		wantSame bool
	}{
		{name: "client id kept", header: "checkout-42:retry_1", wantSame: true},
		{name: "missing id generated"},
		{name: "id with spaces replaced", header: "drop table books"},
		{name: "overlong id replaced", header: strings.Repeat("a", deliverycontext.MaxRequestIDLength+1)},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var buf bytes.Buffer
			e := newTestEcho(t, &buf, false)

			var seenInContext string
			e.GET("/ping", func(c echo.Context) error {
				seenInContext = deliverycontext.GetRequestIDFromContext(c.Request().Context())
				deliverycontext.GetLogger(c.Request().Context()).Info("handled")

				return c.NoContent(http.StatusNoContent)
			})

			req := httptest.NewRequest(http.MethodGet, "/ping", nil)
			if tt.header != "" {
				req.Header.Set(deliverycontext.HeaderXRequestID, tt.header)
			}
			rec := httptest.NewRecorder()
			e.ServeHTTP(rec, req)

			got := rec.Header().Get(deliverycontext.HeaderXRequestID)
			assert.Equal(t, got, seenInContext)
			assert.Contains(t, buf.String(), "request_id="+got)
			if tt.wantSame {
				assert.Equal(t, tt.header, got)

				return
			}
			_, err := uuid.Parse(got)
			assert.NoError(t, err)
		})
	}
}

func TestLoggerMiddleware_LogsCallerAndStatus(t *testing.T) {
	var buf bytes.Buffer
	e := newTestEcho(t, &buf, true)
	userID := uuid.New()

	e.GET("/books/:id", func(c echo.Context) error {
		c.Set(constants.ContextKeyUserID, userID)
		c.Set(constants.ContextKeyRole, entity.RoleLibrarian)

		return echo.NewHTTPError(http.StatusNotFound, "book not found")
	})

	req := httptest.NewRequest(http.MethodGet, "/books/7?verbose=1", nil)
	req.Header.Set(deliverycontext.HeaderXRequestID, "req-9")
	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, req)

	require.Equal(t, http.StatusNotFound, rec.Code)
	out := buf.String()
	assert.Contains(t, out, "level=WARN")
	assert.Contains(t, out, "status=404")
	assert.Contains(t, out, "route=/books/:id")
	assert.Contains(t, out, `query="verbose=1"`)
	assert.Contains(t, out, "user_id="+userID.String())
	assert.Contains(t, out, "role=librarian")
	assert.Contains(t, out, "request_id=req-9")
}

func TestLoggerMiddleware_SilentWithoutDebug(t *testing.T) {
	var buf bytes.Buffer
	e := newTestEcho(t, &buf, false)
	e.GET("/ping", func(c echo.Context) error {
		return c.NoContent(http.StatusNoContent)
	})

	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/ping", nil))

	assert.Equal(t, http.StatusNoContent, rec.Code)
	assert.Empty(t, buf.String())
}
