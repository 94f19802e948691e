//go:build unit

package middleware

import (
	"bytes"
	"encoding/json"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"

	"olive-mill/internal/pkg/config"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newLoggedRouter(buf *bytes.Buffer) *gin.Engine {
	gin.SetMode(gin.TestMode)
	logger := slog.New(slog.NewJSONHandler(buf, &slog.HandlerOptions{Level: slog.LevelDebug}))

	r := gin.New()
	r.Use(RequestLogger(logger))
	g := r.Group("/api", RequireActor())
	g.GET("/bookings/:id", func(c *gin.Context) {
		c.String(http.StatusOK, GetRequestID(c))
	})
	g.GET("/boom", func(c *gin.Context) { c.Status(http.StatusInternalServerError) })
	return r
}

func lastLine(t *testing.T, buf *bytes.Buffer) map[string]any {
	t.Helper()
	lines := bytes.Split(bytes.TrimSpace(buf.Bytes()), []byte("\n"))
	var m map[string]any
	require.NoError(t, json.Unmarshal(lines[len(lines)-1], &m))
	return m
}

func TestRequestLogger(t *testing.T) {
	actorID := uuid.New()

	t.Run("logs route pattern and validated actor", func(t *testing.T) {
		var buf bytes.Buffer
		r := newLoggedRouter(&buf)

		req := httptest.NewRequest(http.MethodGet, "/api/bookings/"+uuid.NewString(), nil)
		req.Header.Set(HeaderActorID, actorID.String())
		req.Header.Set(HeaderActorRole, "operator")
		rec := httptest.NewRecorder()
		r.ServeHTTP(rec, req)

		require.Equal(t, http.StatusOK, rec.Code)
		entry := lastLine(t, &buf)
		assert.Equal(t, "INFO", entry["level"])
		assert.Equal(t, "/api/bookings/:id", entry["route"])
		assert.Equal(t, actorID.String(), entry["actor_id"])
		assert.Equal(t, "operator", entry["role"])
		assert.EqualValues(t, http.StatusOK, entry["status"])
	})

	t.Run("keeps the gateway request id", func(t *testing.T) {
		var buf bytes.Buffer
		r := newLoggedRouter(&buf)

		req := httptest.NewRequest(http.MethodGet, "/api/bookings/x", nil)
		req.Header.Set(HeaderActorID, actorID.String())
		req.Header.Set(HeaderActorRole, "client")
		req.Header.Set(HeaderRequestID, "gw-42")
		rec := httptest.NewRecorder()
		r.ServeHTTP(rec, req)

		assert.Equal(t, "gw-42", rec.Header().Get(HeaderRequestID))
		assert.Equal(t, "gw-42", rec.Body.String())
		assert.Equal(t, "gw-42", lastLine(t, &buf)["request_id"])
	})

	t.Run("mints a request id when absent", func(t *testing.T) {
		var buf bytes.Buffer
		r := newLoggedRouter(&buf)

		rec := httptest.NewRecorder()
		r.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/api/bookings/x", nil))

		_, err := uuid.Parse(rec.Header().Get(HeaderRequestID))
		assert.NoError(t, err)
	})

	t.Run("rejected actors are logged by raw header at warn", func(t *testing.T) {
		var buf bytes.Buffer
		r := newLoggedRouter(&buf)

		req := httptest.NewRequest(http.MethodGet, "/api/bookings/x", nil)
		req.Header.Set(HeaderActorID, "not-a-uuid")
		rec := httptest.NewRecorder()
		r.ServeHTTP(rec, req)

		require.Equal(t, http.StatusUnauthorized, rec.Code)
		entry := lastLine(t, &buf)
		assert.Equal(t, "WARN", entry["level"])
		assert.Equal(t, "not-a-uuid", entry["actor_header"])
		assert.NotContains(t, entry, "actor_id")
	})

	t.Run("server errors log at error", func(t *testing.T) {
		var buf bytes.Buffer
		r := newLoggedRouter(&buf)

		req := httptest.NewRequest(http.MethodGet, "/api/boom", nil)
		req.Header.Set(HeaderActorID, actorID.String())
		req.Header.Set(HeaderActorRole, "operator")
		r.ServeHTTP(httptest.NewRecorder(), req)

		assert.Equal(t, "ERROR", lastLine(t, &buf)["level"])
	})
}

func TestNewLogger(t *testing.T) {
	gin.SetMode(gin.TestMode)
	cfg := config.LogConfig{Level: "warn", TimeZone: "CET", TimeZoneOffset: 3600, TimeFormat: "15:04"}

	var buf bytes.Buffer
	logger := newLogger(&buf, cfg)
	logger.Info("dropped")
	logger.Warn("kept")

	assert.NotContains(t, buf.String(), "dropped")
	assert.Contains(t, buf.String(), "kept")
	assert.Equal(t, slog.LevelInfo, parseLevel("loud"))
	assert.Equal(t, slog.LevelDebug, parseLevel("DEBUG"))
}
