package live

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/DhavalSuthar-24/crickettourney/pkg/logging"
	"github.com/bytedance/sonic"
	"github.com/gin-gonic/gin"
	"github.com/gorilla/websocket"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newLiveServer(t *testing.T) (*Hub, *httptest.Server) {
	t.Helper()
	gin.SetMode(gin.TestMode)

	hub := NewHub(nil, logging.NewNop())
	r := gin.New()
	LiveRoutes(r.Group("/api"), NewLiveController(hub))
	srv := httptest.NewServer(r)
	t.Cleanup(func() {
		hub.Close()
		srv.Close()
	})
	return hub, srv
}

func dial(t *testing.T, srv *httptest.Server) *websocket.Conn {
	t.Helper()
	url := "ws" + strings.TrimPrefix(srv.URL, "http") + "/api/live/ws"
	conn, resp, err := websocket.DefaultDialer.Dial(url, nil)
	require.NoError(t, err)
	if resp != nil && resp.Body != nil {
		_ = resp.Body.Close()
	}
	t.Cleanup(func() { _ = conn.Close() })
	return conn
}

func readFrame(t *testing.T, conn *websocket.Conn) Frame {
	t.Helper()
	require.NoError(t, conn.SetReadDeadline(time.Now().Add(2*time.Second)))
	_, msg, err := conn.ReadMessage()
	require.NoError(t, err)
	var f Frame
	require.NoError(t, sonic.Unmarshal(msg, &f))
	return f
}

func TestClientFrameIsRebroadcastVerbatim(t *testing.T) {
	hub, srv := newLiveServer(t)
	publisher := dial(t, srv)
	subscriber := dial(t, srv)
	require.Eventually(t, func() bool { return hub.Count() == 2 }, 2*time.Second, 10*time.Millisecond)

	payload := `{"match":"A vs B","score":"120/3","overs":14.2,"extra":[1,"two",null]}`
	require.NoError(t, publisher.WriteMessage(websocket.TextMessage,
		[]byte(`{"event":"score:update","data":`+payload+`}`)))

	for _, conn := range []*websocket.Conn{subscriber, publisher} {
		f := readFrame(t, conn)
		assert.Equal(t, EventScoreUpdated, f.Event)
		assert.JSONEq(t, payload, string(f.Data))
	}
}

func TestUnknownEventsAreIgnored(t *testing.T) {
	hub, srv := newLiveServer(t)
	conn := dial(t, srv)
	require.Eventually(t, func() bool { return hub.Count() == 1 }, 2*time.Second, 10*time.Millisecond)

	require.NoError(t, conn.WriteMessage(websocket.TextMessage, []byte(`{"event":"chat","data":"hi"}`)))
	require.NoError(t, conn.WriteMessage(websocket.TextMessage, []byte(`not json`)))
	require.NoError(t, conn.WriteMessage(websocket.TextMessage, []byte(`{"event":"score:update","data":"ok"}`)))

	f := readFrame(t, conn)
	assert.Equal(t, `"ok"`, string(f.Data))
}

func TestHTTPPublish(t *testing.T) {
	hub, srv := newLiveServer(t)
	conn := dial(t, srv)
	require.Eventually(t, func() bool { return hub.Count() == 1 }, 2*time.Second, 10*time.Millisecond)

	resp, err := http.Post(srv.URL+"/api/live/score", "application/json", bytes.NewBufferString(` {"runs":6} `))
	require.NoError(t, err)
	defer resp.Body.Close()
	assert.Equal(t, http.StatusAccepted, resp.StatusCode)

	var body struct {
		Data PublishResult `json:"data"`
	}
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&body))
	assert.Equal(t, 1, body.Data.Delivered)
	assert.JSONEq(t, `{"runs":6}`, string(readFrame(t, conn).Data))

	bad, err := http.Post(srv.URL+"/api/live/score", "application/json", bytes.NewBufferString(`{runs`))
	require.NoError(t, err)
	defer bad.Body.Close()
	assert.Equal(t, http.StatusBadRequest, bad.StatusCode)
}

func TestSlowClientDropsFrames(t *testing.T) {
	t.Parallel()

	hub := NewHub(nil, logging.NewNop())
	slow := &client{id: "slow", send: make(chan []byte, 1)}
	fast := &client{id: "fast", send: make(chan []byte, 4)}
	require.NoError(t, hub.register(slow))
	require.NoError(t, hub.register(fast))

	n, err := hub.Broadcast(json.RawMessage(`1`))
	require.NoError(t, err)
	assert.Equal(t, 2, n)

	n, err = hub.Broadcast(json.RawMessage(`2`))
	require.NoError(t, err)
	assert.Equal(t, 1, n, "slow client's buffer is full")
	assert.Len(t, slow.send, 1)
	assert.Len(t, fast.send, 2)
}

func TestPublishScoreAndClose(t *testing.T) {
	t.Parallel()

	hub := NewHub([]string{"http://localhost:5173"}, logging.NewNop())
	cl := &client{id: "c", send: make(chan []byte, 1)}
	require.NoError(t, hub.register(cl))

	require.NoError(t, hub.PublishScore(map[string]int{"runs": 4}))
	var f Frame
	require.NoError(t, sonic.Unmarshal(<-cl.send, &f))
	assert.Equal(t, EventScoreUpdated, f.Event)
	assert.JSONEq(t, `{"runs":4}`, string(f.Data))

	hub.Close()
	_, open := <-cl.send
	assert.False(t, open)
	assert.Zero(t, hub.Count())
	assert.ErrorIs(t, hub.PublishScore(1), ErrClosed)
	assert.ErrorIs(t, hub.register(&client{id: "late", send: make(chan []byte)}), ErrClosed)
}

func TestOriginChecker(t *testing.T) {
	t.Parallel()

	check := originChecker([]string{"http://localhost:5173/"})
	req := httptest.NewRequest(http.MethodGet, "/ws", nil)
	assert.True(t, check(req), "no origin header")

	req.Header.Set("Origin", "http://localhost:5173")
	assert.True(t, check(req))

	req.Header.Set("Origin", "http://evil.example")
	assert.False(t, check(req))

	assert.True(t, originChecker([]string{"*"})(req))
}
