package idempotency

import (
	"bytes"
	"errors"
	"io"
	"net/http"
	"strings"
	"time"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"rentalbilling/internal/observability"
	"rentalbilling/pkg/response"
)

const (
	HeaderName       = "X-Idempotency-Key"
	ReplayHeaderName = "X-Idempotent-Replay"
)

type Option func(*middleware)

func WithTTL(ttl time.Duration) Option {
	return func(m *middleware) {
		if ttl > 0 {
			m.ttl = ttl
		}
	}
}

func WithClock(clock func() time.Time) Option {
	return func(m *middleware) {
		if clock != nil {
			m.clock = clock
		}
	}
}

type middleware struct {
	store  Store
	logger *zap.Logger
	ttl    time.Duration
	clock  func() time.Time
}

// Middleware guards a route with the X-Idempotency-Key header. Requests without the header
// pass through. A nil store disables the guard.
func Middleware(store Store, logger *zap.Logger, opts ...Option) gin.HandlerFunc {
	if store == nil {
		return func(c *gin.Context) { c.Next() }
	}
	if logger == nil {
		logger = zap.NewNop()
	}
	m := &middleware{store: store, logger: logger, ttl: DefaultTTL, clock: time.Now}
	for _, opt := range opts {
		opt(m)
	}
	return m.handle
}

func (m *middleware) handle(c *gin.Context) {
	key := strings.TrimSpace(c.GetHeader(HeaderName))
	if key == "" {
		c.Next()
		return
	}

	body, err := readAndReplayBody(c.Request)
	if err != nil {
		c.AbortWithStatusJSON(http.StatusBadRequest, response.Error(http.StatusBadRequest, "unable to read request body"))
		return
	}

	identity := c.GetString(observability.UserIDKey)
	if identity == "" {
		identity = "anonymous"
	}
	scoped := key + "|" + identity
	fingerprint := requestFingerprint(c.Request, body, identity)

	reservation, err := m.store.Reserve(c.Request.Context(), scoped, fingerprint, m.clock().UTC(), m.ttl)
	if err != nil {
		if errors.Is(err, ErrFingerprintMismatch) {
			c.AbortWithStatusJSON(http.StatusConflict, response.Error(http.StatusConflict, "idempotency key already used for a different request"))
			return
		}
		m.logger.Error("idempotency store unavailable", zap.Error(err))
		c.AbortWithStatusJSON(http.StatusInternalServerError, response.Error(http.StatusInternalServerError, "unable to process idempotency key"))
		return
	}

	switch reservation.State {
	case ReservationStateCompleted:
		writeStoredResponse(c, reservation.Record)
		return
	case ReservationStatePending:
		c.AbortWithStatusJSON(http.StatusConflict, response.Error(http.StatusConflict, "another request is processing this idempotency key"))
		return
	}

	recorder := &bodyRecorder{ResponseWriter: c.Writer}
	c.Writer = recorder
	c.Next()

	// Failed attempts may be retried with the same key.
	if c.Writer.Status() >= http.StatusInternalServerError {
		if err := m.store.Release(c.Request.Context(), scoped); err != nil {
			m.logger.Warn("failed to release idempotency key", zap.String("key", key), zap.Error(err))
		}
		return
	}

	resp := Response{Status: c.Writer.Status(), Headers: c.Writer.Header().Clone(), Body: recorder.body.Bytes()}
	if err := m.store.SaveResponse(c.Request.Context(), scoped, fingerprint, resp, m.ttl); err != nil {
		m.logger.Error("failed to persist idempotent response", zap.String("key", key), zap.Error(err))
		if err := m.store.Release(c.Request.Context(), scoped); err != nil {
			m.logger.Warn("failed to release idempotency key", zap.String("key", key), zap.Error(err))
		}
	}
}

func readAndReplayBody(r *http.Request) ([]byte, error) {
	if r.Body == nil {
		return nil, nil
	}
	data, err := io.ReadAll(r.Body)
	if err != nil {
		return nil, err
	}
	_ = r.Body.Close()
	r.Body = io.NopCloser(bytes.NewReader(data))
	return data, nil
}

func requestFingerprint(r *http.Request, body []byte, identity string) string {
	var b strings.Builder
	b.WriteString(r.Method)
	b.WriteString("|")
	b.WriteString(r.URL.Path)
	b.WriteString("|")
	b.WriteString(r.URL.RawQuery)
	b.WriteString("|")
	b.WriteString(identity)
	b.WriteString("|")
	if len(body) > 0 {
		b.WriteString(sha256Hex(body))
	}
	return sha256Hex([]byte(b.String()))
}

func writeStoredResponse(c *gin.Context, record Record) {
	for name, values := range record.ResponseHeaders {
		for _, v := range values {
			c.Writer.Header().Add(name, v)
		}
	}
	c.Header(ReplayHeaderName, "true")
	status := record.ResponseStatus
	if status == 0 {
		status = http.StatusOK
	}
	c.Status(status)
	if len(record.ResponseBody) > 0 {
		_, _ = c.Writer.Write(record.ResponseBody)
	}
	c.Abort()
}

// bodyRecorder copies what the handler writes.
type bodyRecorder struct {
	gin.ResponseWriter
	body bytes.Buffer
}

func (w *bodyRecorder) Write(data []byte) (int, error) {
	w.body.Write(data)
	return w.ResponseWriter.Write(data)
}

func (w *bodyRecorder) WriteString(s string) (int, error) {
	w.body.WriteString(s)
	return w.ResponseWriter.WriteString(s)
}
