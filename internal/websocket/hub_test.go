package websocket

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	gorilla "github.com/gorilla/websocket"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func TestPublishEncodesEnvelope(t *testing.T) {
	hub := NewHub(zap.NewNop())

	hub.Publish("bill.created", map[string]string{"number": "2024-00001"})

	select {
	case raw := <-hub.Broadcast:
		var msg struct {
			Type string            `json:"type"`
			Data map[string]string `json:"data"`
		}
		require.NoError(t, json.Unmarshal(raw, &msg))
		assert.Equal(t, "bill.created", msg.Type)
		assert.Equal(t, "2024-00001", msg.Data["number"])
	default:
		t.Fatal("nothing queued")
	}
}

func TestPublishDoesNotBlockWhenQueueIsFull(t *testing.T) {
	hub := NewHub(zap.NewNop())
	for i := 0; i < cap(hub.Broadcast)+10; i++ {
		hub.Publish("estimate.created", i)
	}
	assert.Len(t, hub.Broadcast, cap(hub.Broadcast))
}

func TestServeWsDeliversEvents(t *testing.T) {
	gin.SetMode(gin.TestMode)
	hub := NewHub(zap.NewNop())
	done := make(chan struct{})
	defer close(done)
	go hub.Run(done)

	secret := []byte("secret")
	r := gin.New()
	r.GET("/ws", func(c *gin.Context) { ServeWs(hub, c, secret) })
	srv := httptest.NewServer(r)
	defer srv.Close()

	url := "ws" + strings.TrimPrefix(srv.URL, "http") + "/ws"
	conn, _, err := gorilla.DefaultDialer.Dial(url, nil)
	require.NoError(t, err)
	defer conn.Close()

	require.Eventually(t, func() bool { return hub.ClientCount() == 1 }, time.Second, 10*time.Millisecond)
	hub.Publish("bill.deleted", map[string]string{"id": "x"})

	require.NoError(t, conn.SetReadDeadline(time.Now().Add(2*time.Second)))
	_, raw, err := conn.ReadMessage()
	require.NoError(t, err)
	assert.Contains(t, string(raw), `"type":"bill.deleted"`)
}

func TestServeWsRejectsInvalidToken(t *testing.T) {
	gin.SetMode(gin.TestMode)
	hub := NewHub(zap.NewNop())
	r := gin.New()
	r.GET("/ws", func(c *gin.Context) { ServeWs(hub, c, []byte("secret")) })

	req := httptest.NewRequest(http.MethodGet, "/ws?token=garbage", nil)
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusUnauthorized, w.Code)
}
