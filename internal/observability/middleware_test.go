package observability

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest/observer"
)

func newObservedRouter(t *testing.T) (*gin.Engine, *observer.ObservedLogs) {
	t.Helper()
	gin.SetMode(gin.TestMode)
	core, logs := observer.New(zapcore.DebugLevel)
	logger := zap.New(core)

	router := gin.New()
	router.Use(Recovery(logger), RequestLogger(logger))
	router.GET("/api/bills/:id", func(c *gin.Context) {
		c.Set(UserIDKey, "00000000-0000-0000-0000-0000000000f1")
		c.Status(http.StatusOK)
	})
	router.GET("/missing", func(c *gin.Context) { c.Status(http.StatusNotFound) })
	router.GET("/boom", func(c *gin.Context) { panic("boom") })
	return router, logs
}

func TestRequestLogger(t *testing.T) {
	testCases := []struct {
		name          string
		path          string
		expectedLevel zapcore.Level
		expectedRoute string
		expectedCode  int
	}{
		{name: "success", path: "/api/bills/42", expectedLevel: zapcore.InfoLevel, expectedRoute: "/api/bills/:id", expectedCode: http.StatusOK},
		{name: "client_error", path: "/missing", expectedLevel: zapcore.WarnLevel, expectedRoute: "/missing", expectedCode: http.StatusNotFound},
		{name: "unmatched", path: "/nowhere", expectedLevel: zapcore.WarnLevel, expectedRoute: "unmatched", expectedCode: http.StatusNotFound},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			router, logs := newObservedRouter(t)
			rec := httptest.NewRecorder()
			router.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, tc.path, nil))

			assert.Equal(t, tc.expectedCode, rec.Code)
			entries := logs.FilterMessage("request completed").All()
			require.Len(t, entries, 1)
			assert.Equal(t, tc.expectedLevel, entries[0].Level)
			fields := entries[0].ContextMap()
			assert.Equal(t, tc.expectedRoute, fields["route"])
			assert.EqualValues(t, tc.expectedCode, fields["status"])
		})
	}
}

func TestRequestLoggerRecordsUser(t *testing.T) {
	router, logs := newObservedRouter(t)
	router.ServeHTTP(httptest.NewRecorder(), httptest.NewRequest(http.MethodGet, "/api/bills/1", nil))

	entries := logs.FilterMessage("request completed").All()
	require.Len(t, entries, 1)
	assert.Equal(t, "00000000-0000-0000-0000-0000000000f1", entries[0].ContextMap()["user_id"])
}

func TestRecovery(t *testing.T) {
	router, logs := newObservedRouter(t)
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/boom", nil))

	assert.Equal(t, http.StatusInternalServerError, rec.Code)
	assert.Equal(t, 1, logs.FilterMessage("panic recovered").Len())
}

func TestNewLoggerFallsBackToInfo(t *testing.T) {
	logger, err := NewLogger("chatty")
	require.NoError(t, err)
	assert.True(t, logger.Core().Enabled(zapcore.InfoLevel))
	assert.False(t, logger.Core().Enabled(zapcore.DebugLevel))

	logger, err = NewLogger("debug")
	require.NoError(t, err)
	assert.True(t, logger.Core().Enabled(zapcore.DebugLevel))
}
