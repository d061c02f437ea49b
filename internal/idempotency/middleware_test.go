package idempotency

import (
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func newTestRouter(store Store, calls *int, status int) *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	r.POST("/bills", Middleware(store, zap.NewNop()), func(c *gin.Context) {
		*calls++
		c.JSON(status, gin.H{"call": *calls})
	})
	return r
}

func post(r http.Handler, key, body string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodPost, "/bills", strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	if key != "" {
		req.Header.Set(HeaderName, key)
	}
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func TestMiddlewareReplaysCompletedResponse(t *testing.T) {
	calls := 0
	r := newTestRouter(NewMemoryStore(), &calls, http.StatusCreated)

	first := post(r, "abc", `{"discount_rate":"10"}`)
	second := post(r, "abc", `{"discount_rate":"10"}`)

	assert.Equal(t, 1, calls)
	assert.Equal(t, http.StatusCreated, first.Code)
	assert.Equal(t, http.StatusCreated, second.Code)
	assert.JSONEq(t, `{"call":1}`, second.Body.String())
	assert.Equal(t, "true", second.Header().Get(ReplayHeaderName))
	assert.Empty(t, first.Header().Get(ReplayHeaderName))
}

func TestMiddlewareRejectsKeyReuseWithOtherBody(t *testing.T) {
	calls := 0
	r := newTestRouter(NewMemoryStore(), &calls, http.StatusCreated)

	post(r, "abc", `{"discount_rate":"10"}`)
	w := post(r, "abc", `{"discount_rate":"20"}`)

	assert.Equal(t, http.StatusConflict, w.Code)
	assert.Equal(t, 1, calls)
}

func TestMiddlewareWithoutKey(t *testing.T) {
	calls := 0
	r := newTestRouter(NewMemoryStore(), &calls, http.StatusCreated)

	post(r, "", `{}`)
	post(r, "", `{}`)

	assert.Equal(t, 2, calls)
}

func TestMiddlewareReleasesKeyOnServerError(t *testing.T) {
	calls := 0
	r := newTestRouter(NewMemoryStore(), &calls, http.StatusInternalServerError)

	post(r, "abc", `{}`)
	post(r, "abc", `{}`)

	assert.Equal(t, 2, calls)
}

func TestMiddlewarePendingKey(t *testing.T) {
	store := NewMemoryStore()
	calls := 0
	r := newTestRouter(store, &calls, http.StatusCreated)

	req := httptest.NewRequest(http.MethodPost, "/bills", strings.NewReader(`{}`))
	fingerprint := requestFingerprint(req, []byte(`{}`), "anonymous")
	_, err := store.Reserve(context.Background(), "abc|anonymous", fingerprint, time.Now().UTC(), time.Minute)
	require.NoError(t, err)

	w := post(r, "abc", `{}`)

	assert.Equal(t, http.StatusConflict, w.Code)
	assert.Equal(t, 0, calls)
}

func TestMemoryStoreExpiry(t *testing.T) {
	store := NewMemoryStore()
	now := time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)

	res, err := store.Reserve(context.Background(), "k", "f", now, time.Minute)
	require.NoError(t, err)
	assert.Equal(t, ReservationStateNew, res.State)

	res, err = store.Reserve(context.Background(), "k", "f", now.Add(30*time.Second), time.Minute)
	require.NoError(t, err)
	assert.Equal(t, ReservationStatePending, res.State)

	res, err = store.Reserve(context.Background(), "k", "other", now.Add(2*time.Minute), time.Minute)
	require.NoError(t, err)
	assert.Equal(t, ReservationStateNew, res.State)
}

func TestRedisKeyHidesRawKey(t *testing.T) {
	k := redisKey("abc|anonymous")
	assert.True(t, strings.HasPrefix(k, redisKeyPrefix))
	assert.NotContains(t, k, "anonymous")
	assert.Equal(t, k, redisKey("abc|anonymous"))
}
