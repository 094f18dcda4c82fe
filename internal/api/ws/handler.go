package ws

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"time"

	"github.com/gorilla/mux"
	"github.com/gorilla/websocket"

	"github.com/mulelash/MB-BeautyService/internal/store"
)

const (
	writeWait  = 10 * time.Second
	pongWait   = 60 * time.Second
	pingPeriod = 50 * time.Second
)

type Hub interface {
	Subscribe(ctx context.Context, collection string) (*store.Subscription, error)
}

type Logger interface {
	Info(msg string, args ...interface{})
	Warn(msg string, args ...interface{})
	Error(msg string, args ...interface{})
}

// Message is one frame on the wire: the collection name and its full
// record set. Clients replace local state wholesale on every frame.
type Message struct {
	Collection string            `json:"collection"`
	Records    []json.RawMessage `json:"records"`
}

type Handler struct {
	hub      Hub
	logger   Logger
	upgrader websocket.Upgrader
}

func NewHandler(hub Hub, logger Logger) *Handler {
	return &Handler{
		hub:    hub,
		logger: logger,
		upgrader: websocket.Upgrader{
			ReadBufferSize:  1024,
			WriteBufferSize: 4096,
			// the admin panel and LIFF app are served from other origins
			CheckOrigin: func(r *http.Request) bool { return true },
		},
	}
}

// HandleSubscribe GET /api/v1/subscribe/{collection} upgrades the connection
// and streams one snapshot immediately, then one per change, until either
// side closes.
func (h *Handler) HandleSubscribe(w http.ResponseWriter, r *http.Request) {
	collection := mux.Vars(r)["collection"]
	if collection == "" {
		http.Error(w, "collection is required", http.StatusBadRequest)
		return
	}

	sub, err := h.hub.Subscribe(r.Context(), collection)
	if err != nil {
		if errors.Is(err, store.ErrUnknownCollection) {
			http.Error(w, "unknown collection", http.StatusNotFound)
			return
		}
		h.logger.Error("ws: subscribe %q: %v", collection, err)
		http.Error(w, "internal server error", http.StatusInternalServerError)
		return
	}

	conn, err := h.upgrader.Upgrade(w, r, nil)
	if err != nil {
		sub.Unsubscribe()
		h.logger.Warn("ws: upgrade failed for %q: %v", collection, err)
		return
	}

	h.logger.Info("ws: subscriber connected to %q", collection)
	go h.writeLoop(conn, collection, sub)
	h.readLoop(conn, sub)
}

// readLoop drains client frames so pong handlers fire; any read error means
// the client is gone and the subscription must be torn down.
func (h *Handler) readLoop(conn *websocket.Conn, sub *store.Subscription) {
	defer func() {
		sub.Unsubscribe()
		conn.Close()
	}()

	conn.SetReadLimit(512)
	_ = conn.SetReadDeadline(time.Now().Add(pongWait))
	conn.SetPongHandler(func(string) error {
		return conn.SetReadDeadline(time.Now().Add(pongWait))
	})

	for {
		if _, _, err := conn.ReadMessage(); err != nil {
			return
		}
	}
}

func (h *Handler) writeLoop(conn *websocket.Conn, collection string, sub *store.Subscription) {
	ticker := time.NewTicker(pingPeriod)
	defer func() {
		ticker.Stop()
		conn.Close()
	}()

	for {
		select {
		case snapshot, ok := <-sub.C:
			if !ok {
				_ = conn.SetWriteDeadline(time.Now().Add(writeWait))
				_ = conn.WriteMessage(websocket.CloseMessage, []byte{})
				return
			}
			_ = conn.SetWriteDeadline(time.Now().Add(writeWait))
			if err := conn.WriteJSON(Message{Collection: collection, Records: snapshot}); err != nil {
				h.logger.Warn("ws: write to %q subscriber failed: %v", collection, err)
				return
			}
		case <-ticker.C:
			_ = conn.SetWriteDeadline(time.Now().Add(writeWait))
			if err := conn.WriteMessage(websocket.PingMessage, nil); err != nil {
				return
			}
		}
	}
}
