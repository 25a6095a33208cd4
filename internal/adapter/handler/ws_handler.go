package handler

import (
	"log"
	"net/http"

	"github.com/google/uuid"
	"github.com/gorilla/websocket"

	"github.com/radityo/guestgate/internal/core/ports"
)

// WSHandler streams ledger and check-in changes to dashboards. Each
// connection gets its own subscription on the event's change channels;
// the payload is a refresh hint, clients re-fetch what they render.
type WSHandler struct {
	notifier ports.ChangeNotifier
	upgrader websocket.Upgrader
}

func NewWSHandler(notifier ports.ChangeNotifier) *WSHandler {
	return &WSHandler{
		notifier: notifier,
		upgrader: websocket.Upgrader{
			CheckOrigin: func(r *http.Request) bool {
				return true
			},
			ReadBufferSize:  4096,
			WriteBufferSize: 4096,
		},
	}
}

func (h *WSHandler) Serve(w http.ResponseWriter, r *http.Request) {
	eventID, err := uuid.Parse(r.URL.Query().Get("eventId"))
	if err != nil {
		http.Error(w, "eventId parameter is required", http.StatusBadRequest)
		return
	}

	conn, err := h.upgrader.Upgrade(w, r, nil)
	if err != nil {
		log.Println("Error upgrading connection:", err)
		return
	}
	defer conn.Close()

	ctx := r.Context()

	changes, err := h.notifier.Subscribe(ctx, eventID)
	if err != nil {
		log.Printf("Subscribe failed for event %s: %v", eventID, err)
		return
	}

	log.Printf("Dashboard connected - eventId: %s", eventID)

	done := make(chan struct{})

	// Drain reads so close frames and pings are processed.
	go func() {
		defer close(done)
		for {
			if _, _, err := conn.ReadMessage(); err != nil {
				return
			}
		}
	}()

	for {
		select {
		case <-ctx.Done():
			return
		case <-done:
			log.Printf("Dashboard disconnected - eventId: %s", eventID)
			return
		case change, ok := <-changes:
			if !ok {
				return
			}

			if err := conn.WriteJSON(change); err != nil {
				log.Printf("Error writing to dashboard: %v", err)
				return
			}
		}
	}
}
