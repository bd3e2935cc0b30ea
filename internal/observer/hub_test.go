package observer

import (
	"encoding/json"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/gorilla/websocket"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/udisondev/herobrine/internal/model"
)

func dial(t *testing.T, srv *httptest.Server) *websocket.Conn {
	t.Helper()
	url := "ws" + strings.TrimPrefix(srv.URL, "http")
	conn, _, err := websocket.DefaultDialer.Dial(url, nil)
	require.NoError(t, err)
	t.Cleanup(func() { _ = conn.Close() })
	return conn
}

func waitClients(t *testing.T, h *Hub, n int) {
	t.Helper()
	require.Eventually(t, func() bool { return h.ClientCount() == n }, 2*time.Second, 5*time.Millisecond)
}

func TestHub_BroadcastsCues(t *testing.T) {
	h := NewHub()
	srv := httptest.NewServer(h)
	defer srv.Close()

	a := dial(t, srv)
	b := dial(t, srv)
	waitClients(t, h, 2)

	cue := model.Cue{Kind: model.CueCastSpell, ActorID: 7, Pos: model.NewCoordinate(1, 2, 3), Volume: 1, Pitch: 1}
	h.Emit(cue)

	for _, conn := range []*websocket.Conn{a, b} {
		require.NoError(t, conn.SetReadDeadline(time.Now().Add(2*time.Second)))
		_, data, err := conn.ReadMessage()
		require.NoError(t, err)

		var msg Message
		require.NoError(t, json.Unmarshal(data, &msg))
		assert.Equal(t, "cue", msg.Type)
		assert.Equal(t, cue, msg.Cue)
	}
}

func TestHub_UnregistersOnClose(t *testing.T) {
	h := NewHub()
	srv := httptest.NewServer(h)
	defer srv.Close()

	conn := dial(t, srv)
	waitClients(t, h, 1)

	require.NoError(t, conn.Close())
	waitClients(t, h, 0)

	h.Emit(model.Cue{Kind: model.CueExplosion})
	assert.Zero(t, h.Dropped())
}

func TestHub_DropsForSlowClient(t *testing.T) {
	h := NewHub()
	c := &client{id: 1, send: make(chan []byte, 1)}
	h.register(c)

	h.Emit(model.Cue{Kind: model.CueShear})
	h.Emit(model.Cue{Kind: model.CueShear})
	h.Emit(model.Cue{Kind: model.CueShear})

	assert.Len(t, c.send, 1)
	assert.Equal(t, uint64(2), h.Dropped())

	h.CloseAll()
	assert.Zero(t, h.ClientCount())
}

func TestHub_ImplementsCueSink(t *testing.T) {
	var _ model.CueSink = NewHub()
}
