// Package websocket pushes content-change events to connected admin preview
// sessions so an open preview can re-fetch when staff save an edit.
package websocket

import (
	"encoding/json"
	"log"
	"time"
)

// ChangeEvent notifies preview clients that a record changed.
type ChangeEvent struct {
	Type       string `json:"type"` // always "contentChanged"
	Collection string `json:"collection"`
	ID         string `json:"id"`
	Timestamp  int64  `json:"timestamp"`
}

// PreviewHub fans content-change events out to every connected preview
// client. All client-set mutation happens on the Run goroutine.
type PreviewHub struct {
	clients    map[*Client]bool
	register   chan *Client
	unregister chan *Client
	broadcast  chan ChangeEvent
	stop       chan struct{}
	done       chan struct{}
}

func NewPreviewHub() *PreviewHub {
	return &PreviewHub{
		clients:    make(map[*Client]bool),
		register:   make(chan *Client),
		unregister: make(chan *Client),
		broadcast:  make(chan ChangeEvent, 64),
		stop:       make(chan struct{}),
		done:       make(chan struct{}),
	}
}

// Run starts the hub event loop.
func (h *PreviewHub) Run() {
	defer close(h.done)

	for {
		select {
		case <-h.stop:
			for client := range h.clients {
				close(client.send)
				delete(h.clients, client)
			}
			return

		case client := <-h.register:
			h.clients[client] = true

		case client := <-h.unregister:
			if _, ok := h.clients[client]; ok {
				delete(h.clients, client)
				close(client.send)
			}

		case event := <-h.broadcast:
			data, err := json.Marshal(event)
			if err != nil {
				log.Printf("ERROR [websocket.Broadcast]: %v", err)
				continue
			}
			for client := range h.clients {
				select {
				case client.send <- data:
				default:
					// Slow consumer; drop it rather than block the hub.
					delete(h.clients, client)
					close(client.send)
				}
			}
		}
	}
}

// Stop shuts the hub down and disconnects all clients.
func (h *PreviewHub) Stop() {
	close(h.stop)
	<-h.done
}

// NotifyChange queues a content-change event. Safe to call from any request
// goroutine; drops the event if the hub backlog is full.
func (h *PreviewHub) NotifyChange(collection, id string) {
	event := ChangeEvent{
		Type:       "contentChanged",
		Collection: collection,
		ID:         id,
		Timestamp:  time.Now().UnixMilli(),
	}
	select {
	case h.broadcast <- event:
	default:
		log.Printf("WARN [websocket.NotifyChange] dropping event for %s/%s", collection, id)
	}
}
