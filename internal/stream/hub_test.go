package stream

import (
	"bytes"
	"context"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/gorilla/websocket"
	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/shenikar/airspace_alert_system/internal/models"
)

// startTestHub поднимает httptest.Server с хабом и возвращает хаб и WebSocket URL
func startTestHub(t *testing.T) (*Hub, string) {
	t.Helper()

	logger := logrus.New()
	logger.SetOutput(&bytes.Buffer{})

	ctx, cancel := context.WithCancel(context.Background())
	hub := NewHub(logger)
	go hub.Run(ctx)

	srv := httptest.NewServer(hub)
	t.Cleanup(func() {
		srv.Close()
		cancel()
	})
	return hub, "ws" + strings.TrimPrefix(srv.URL, "http")
}

func dialWS(t *testing.T, wsURL string) *websocket.Conn {
	t.Helper()
	conn, _, err := websocket.DefaultDialer.Dial(wsURL, nil)
	require.NoError(t, err)
	t.Cleanup(func() { conn.Close() })
	return conn
}

func readSnapshot(t *testing.T, conn *websocket.Conn) models.Snapshot {
	t.Helper()
	conn.SetReadDeadline(time.Now().Add(2 * time.Second))
	msgType, raw, err := conn.ReadMessage()
	require.NoError(t, err)
	require.Equal(t, websocket.BinaryMessage, msgType)

	snapshot, err := models.DecodeSnapshot(raw)
	require.NoError(t, err)
	return snapshot
}

func testSnapshot(tick uint64) models.Snapshot {
	return models.Snapshot{
		RunID: uuid.New(),
		Tick:  tick,
		Aircraft: []models.Aircraft{
			{ID: "ac-0", X: 12.5, Y: 40, Severity: models.SeverityWarning},
			{ID: "ac-1", X: 18, Y: 44, Severity: models.SeverityWarning},
		},
		TakenAt: time.Now().UTC(),
	}
}

func TestHub_PublishReachesClients(t *testing.T) {
	hub, wsURL := startTestHub(t)
	first := dialWS(t, wsURL)
	second := dialWS(t, wsURL)
	require.Eventually(t, func() bool { return hub.ClientCount() == 2 }, time.Second, 5*time.Millisecond)

	snap := testSnapshot(7)
	require.NoError(t, hub.Publish(context.Background(), snap))

	for _, conn := range []*websocket.Conn{first, second} {
		got := readSnapshot(t, conn)
		assert.Equal(t, snap.RunID, got.RunID)
		assert.Equal(t, uint64(7), got.Tick)
		assert.Equal(t, snap.Aircraft, got.Aircraft)
	}
}

func TestHub_NewClientGetsLastSnapshot(t *testing.T) {
	hub, wsURL := startTestHub(t)
	require.NoError(t, hub.Publish(context.Background(), testSnapshot(3)))

	conn := dialWS(t, wsURL)

	got := readSnapshot(t, conn)
	assert.Equal(t, uint64(3), got.Tick)
}

func TestHub_ClientDisconnectUnregisters(t *testing.T) {
	hub, wsURL := startTestHub(t)
	conn := dialWS(t, wsURL)
	require.Eventually(t, func() bool { return hub.ClientCount() == 1 }, time.Second, 5*time.Millisecond)

	require.NoError(t, conn.WriteMessage(websocket.CloseMessage,
		websocket.FormatCloseMessage(websocket.CloseNormalClosure, "bye")))
	conn.Close()

	assert.Eventually(t, func() bool { return hub.ClientCount() == 0 }, time.Second, 5*time.Millisecond)
}

func TestHub_PublishWithoutClients(t *testing.T) {
	hub, _ := startTestHub(t)

	assert.NoError(t, hub.Publish(context.Background(), testSnapshot(1)))
	assert.Equal(t, 0, hub.ClientCount())
}

func TestHub_ClientRegisteredDuringPublishGetsFrameOnce(t *testing.T) {
	// Подготовка
	logger := logrus.New()
	logger.SetOutput(&bytes.Buffer{})
	hub := NewHub(logger)
	ctx, cancel := context.WithCancel(context.Background())
	go hub.Run(ctx)

	clients := make([]*Client, 50)
	for i := range clients {
		clients[i] = newClient(hub, nil, "test")
	}

	// Действие: подключения идут параллельно с публикацией
	published := make(chan struct{})
	go func() {
		defer close(published)
		for tick := uint64(1); tick <= 300; tick++ {
			assert.NoError(t, hub.Publish(context.Background(), testSnapshot(tick)))
		}
	}()
	for _, client := range clients {
		hub.register <- client
	}
	<-published
	require.Eventually(t, func() bool { return hub.ClientCount() == len(clients) }, time.Second, 5*time.Millisecond)

	cancel()
	<-hub.done

	// Проверки: каждый клиент видит строго возрастающие тики, без повторов
	for _, client := range clients {
		var last uint64
		for frame := range client.send {
			snapshot, err := models.DecodeSnapshot(frame)
			require.NoError(t, err)
			assert.Greater(t, snapshot.Tick, last)
			last = snapshot.Tick
		}
	}
}
