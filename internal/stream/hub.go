// Package stream раздаёт снимки симуляции подключённым по WebSocket клиентам.
// Каждый снимок кодируется в msgpack один раз и отправляется бинарным сообщением.
package stream

import (
	"context"
	"net/http"
	"net/url"
	"sync"

	"github.com/gorilla/websocket"
	"github.com/sirupsen/logrus"

	"github.com/shenikar/airspace_alert_system/internal/models"
)

const maxClients = 256

var upgrader = websocket.Upgrader{
	ReadBufferSize:  1024,
	WriteBufferSize: 4096,
	CheckOrigin: func(r *http.Request) bool {
		origin := r.Header.Get("Origin")
		if origin == "" {
			return true
		}
		u, err := url.Parse(origin)
		if err != nil {
			return false
		}
		return u.Host == r.Host
	},
}

// Hub - реестр клиентов и рассылка снимков
type Hub struct {
	mu      sync.RWMutex
	clients map[*Client]bool
	last    []byte

	register   chan *Client
	unregister chan *Client
	done       chan struct{}
	logger     *logrus.Logger
}

func NewHub(logger *logrus.Logger) *Hub {
	return &Hub{
		clients:    make(map[*Client]bool),
		register:   make(chan *Client, 16),
		unregister: make(chan *Client, 16),
		done:       make(chan struct{}),
		logger:     logger,
	}
}

// Run обрабатывает подключения и отключения до отмены контекста
func (h *Hub) Run(ctx context.Context) {
	defer close(h.done)
	for {
		select {
		case <-ctx.Done():
			h.mu.Lock()
			for client := range h.clients {
				delete(h.clients, client)
				close(client.send)
			}
			h.mu.Unlock()
			return

		case client := <-h.register:
			h.mu.Lock()
			h.clients[client] = true
			// новый клиент сразу получает последнее состояние
			if h.last != nil {
				client.trySend(h.last)
			}
			h.mu.Unlock()
			h.logger.WithField("remote_addr", client.remoteAddr).Debug("Stream client connected")

		case client := <-h.unregister:
			h.mu.Lock()
			if _, ok := h.clients[client]; ok {
				delete(h.clients, client)
				close(client.send)
			}
			h.mu.Unlock()
			h.logger.WithField("remote_addr", client.remoteAddr).Debug("Stream client disconnected")
		}
	}
}

// Publish рассылает снимок всем клиентам. Медленные клиенты пропускают кадр.
func (h *Hub) Publish(_ context.Context, snapshot models.Snapshot) error {
	data, err := models.EncodeSnapshot(snapshot)
	if err != nil {
		return err
	}

	// last и рассылка под одной блокировкой: новый клиент получает кадр ровно один раз
	h.mu.Lock()
	defer h.mu.Unlock()
	h.last = data
	for client := range h.clients {
		if !client.trySend(data) {
			h.logger.WithField("remote_addr", client.remoteAddr).Debug("Stream client too slow, frame dropped")
		}
	}
	return nil
}

// ClientCount возвращает число подключённых клиентов
func (h *Hub) ClientCount() int {
	h.mu.RLock()
	defer h.mu.RUnlock()
	return len(h.clients)
}

// ServeHTTP переводит соединение на WebSocket и запускает насосы клиента
func (h *Hub) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	if h.ClientCount() >= maxClients {
		http.Error(w, "too many connections", http.StatusServiceUnavailable)
		return
	}

	conn, err := upgrader.Upgrade(w, r, nil)
	if err != nil {
		h.logger.WithError(err).Warn("WebSocket upgrade failed")
		return
	}

	client := newClient(h, conn, r.RemoteAddr)
	select {
	case h.register <- client:
	case <-h.done:
		conn.Close()
		return
	}

	go client.writePump()
	go client.readPump()
}
