package ws

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"sync/atomic"
	"testing"
	"time"

	"github.com/gorilla/websocket"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var upgrader = websocket.Upgrader{
	CheckOrigin: func(r *http.Request) bool {
		return true
	},
}

func TestNewHub(t *testing.T) {
	hub := NewHub()

	assert.NotNil(t, hub)
	assert.NotNil(t, hub.clients)
	assert.Equal(t, 0, hub.ConnCount())
}

func TestHub_SendToUser_UserNotOnline(t *testing.T) {
	hub := NewHub()

	msg := &Message{
		Type: TypeCheckin,
		Data: map[string]string{"member_name": "Alice"},
	}

	// Should return nil (not error) for offline user
	err := hub.SendToUser(123, msg)
	assert.NoError(t, err)
}

func TestHub_RegisterUnregister(t *testing.T) {
	hub := NewHub()

	c1 := &Client{UserID: 1}
	c2 := &Client{UserID: 1}

	hub.Register(c1)
	hub.Register(c2)
	assert.Equal(t, 2, hub.ConnCount())

	hub.Unregister(c1)
	assert.Equal(t, 1, hub.ConnCount())

	hub.Unregister(c2)
	assert.Equal(t, 0, hub.ConnCount())

	// Unregistering twice is a no-op
	hub.Unregister(c2)
	assert.Equal(t, 0, hub.ConnCount())
}

func TestHub_SendToUser_WithConnection(t *testing.T) {
	hub := NewHub()

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		conn, err := upgrader.Upgrade(w, r, nil)
		if err != nil {
			return
		}

		client := &Client{
			UserID: 200,
			Conn:   conn,
		}
		hub.Register(client)

		// Keep connection open
		time.Sleep(500 * time.Millisecond)
	}))
	defer server.Close()

	wsURL := "ws" + strings.TrimPrefix(server.URL, "http")
	conn, _, err := websocket.DefaultDialer.Dial(wsURL, nil)
	require.NoError(t, err)
	defer conn.Close()

	// Wait for registration
	time.Sleep(50 * time.Millisecond)

	msg := &Message{
		Type: TypeCheckin,
		Data: map[string]string{"member_name": "Alice", "check_in": "09:00:00 AM"},
	}
	err = hub.SendToUser(200, msg)
	assert.NoError(t, err)

	// Read message on client side
	conn.SetReadDeadline(time.Now().Add(time.Second))
	_, received, err := conn.ReadMessage()
	require.NoError(t, err)
	assert.Contains(t, string(received), TypeCheckin)
	assert.Contains(t, string(received), "Alice")
}

func TestHub_SendToUsers(t *testing.T) {
	hub := NewHub()

	var nextID int64

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		conn, err := upgrader.Upgrade(w, r, nil)
		if err != nil {
			return
		}

		client := &Client{
			UserID: atomic.AddInt64(&nextID, 1),
			Conn:   conn,
		}
		hub.Register(client)

		time.Sleep(500 * time.Millisecond)
	}))
	defer server.Close()

	wsURL := "ws" + strings.TrimPrefix(server.URL, "http")
	var conns []*websocket.Conn
	for i := 0; i < 2; i++ {
		conn, _, err := websocket.DefaultDialer.Dial(wsURL, nil)
		require.NoError(t, err)
		conns = append(conns, conn)
	}
	defer func() {
		for _, conn := range conns {
			conn.Close()
		}
	}()

	time.Sleep(50 * time.Millisecond)
	assert.Equal(t, 2, hub.ConnCount())

	msg := &Message{
		Type: TypeCheckout,
		Data: map[string]string{"member_name": "Bob"},
	}
	hub.SendToUsers([]int64{1, 2}, msg)

	// Both connections should receive the message
	for _, conn := range conns {
		conn.SetReadDeadline(time.Now().Add(time.Second))
		_, received, err := conn.ReadMessage()
		require.NoError(t, err)
		assert.Contains(t, string(received), TypeCheckout)
	}
}

func TestHub_MultipleConnectionsSameUser(t *testing.T) {
	hub := NewHub()

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		conn, err := upgrader.Upgrade(w, r, nil)
		if err != nil {
			return
		}

		client := &Client{
			UserID: 300, // Same user for every connection
			Conn:   conn,
		}
		hub.Register(client)

		time.Sleep(500 * time.Millisecond)
	}))
	defer server.Close()

	wsURL := "ws" + strings.TrimPrefix(server.URL, "http")
	conn1, _, err := websocket.DefaultDialer.Dial(wsURL, nil)
	require.NoError(t, err)
	defer conn1.Close()

	conn2, _, err := websocket.DefaultDialer.Dial(wsURL, nil)
	require.NoError(t, err)
	defer conn2.Close()

	time.Sleep(50 * time.Millisecond)

	// Both connections are kept, message fans out to both
	assert.Equal(t, 2, hub.ConnCount())

	msg := &Message{Type: TypeCheckin, Data: nil}
	err = hub.SendToUser(300, msg)
	require.NoError(t, err)

	for _, conn := range []*websocket.Conn{conn1, conn2} {
		conn.SetReadDeadline(time.Now().Add(time.Second))
		_, received, err := conn.ReadMessage()
		require.NoError(t, err)
		assert.Contains(t, string(received), TypeCheckin)
	}
}
