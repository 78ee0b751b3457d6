package ws_notify

import (
	"log/slog"
	"net/http"
	"sync"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/gorilla/websocket"

	service_signal "github.com/cinematch/core/internal/service/signal"
)

const clientBuffer = 32

var upgrader = websocket.Upgrader{
	ReadBufferSize:  1024,
	WriteBufferSize: 1024,
	CheckOrigin: func(r *http.Request) bool {
		// The hub serves the machine-local companion UI only.
		return true
	},
}

type Client struct {
	id   string
	conn *websocket.Conn
	send chan service_signal.Signal
}

// Hub pushes engine signals to every connected presentation client.
// It subscribes to the signal bus once and fans messages out itself,
// so a stuck socket is detached instead of backing up the bus.
type Hub struct {
	bus    *service_signal.Bus
	logger *slog.Logger

	mu      sync.RWMutex
	clients map[string]*Client
}

type HubOption func(*Hub)

func WithLogger(logger *slog.Logger) HubOption {
	return func(h *Hub) {
		h.logger = logger
	}
}

func New(bus *service_signal.Bus, opts ...HubOption) *Hub {
	h := &Hub{
		bus:     bus,
		logger:  slog.Default(),
		clients: make(map[string]*Client),
	}
	for _, opt := range opts {
		opt(h)
	}
	return h
}

// Run consumes the bus until its subscription is cancelled. Call it in
// its own goroutine.
func (h *Hub) Run() {
	signals, cancel := h.bus.Subscribe(clientBuffer)
	defer cancel()

	for s := range signals {
		h.broadcast(s)
	}
}

func (h *Hub) RegisterRoutes(router *gin.RouterGroup) {
	router.GET("/signals", h.serve)
}

func (h *Hub) serve(ctx *gin.Context) {
	conn, err := upgrader.Upgrade(ctx.Writer, ctx.Request, nil)
	if err != nil {
		h.logger.Error("websocket upgrade failed", slog.String("error", err.Error()))
		return
	}

	client := &Client{
		id:   uuid.NewString(),
		conn: conn,
		send: make(chan service_signal.Signal, clientBuffer),
	}
	h.register(client)

	go h.writeLoop(client)
	go h.readLoop(client)
}

func (h *Hub) register(client *Client) {
	h.mu.Lock()
	h.clients[client.id] = client
	h.mu.Unlock()

	h.logger.Info("signal client connected", slog.String("client_id", client.id))
}

func (h *Hub) remove(client *Client) {
	h.mu.Lock()
	defer h.mu.Unlock()

	if _, ok := h.clients[client.id]; ok {
		delete(h.clients, client.id)
		close(client.send)
		h.logger.Info("signal client disconnected", slog.String("client_id", client.id))
	}
}

func (h *Hub) broadcast(s service_signal.Signal) {
	h.mu.RLock()
	defer h.mu.RUnlock()

	for id, client := range h.clients {
		select {
		case client.send <- s:
		default:
			h.logger.Warn("signal client too slow, dropping",
				slog.String("client_id", id),
				slog.String("kind", string(s.Kind)))
		}
	}
}

func (h *Hub) readLoop(client *Client) {
	defer func() {
		h.remove(client)
		client.conn.Close()
	}()

	// Clients never send payloads; reading only detects the close.
	for {
		if _, _, err := client.conn.ReadMessage(); err != nil {
			break
		}
	}
}

func (h *Hub) writeLoop(client *Client) {
	defer client.conn.Close()

	for s := range client.send {
		if err := client.conn.WriteJSON(s); err != nil {
			break
		}
	}
}
