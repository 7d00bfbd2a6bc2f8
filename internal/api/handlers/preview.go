package handlers

import (
	"log"
	"net/http"

	"github.com/evan/sports-club-website/internal/service"
	ws "github.com/evan/sports-club-website/internal/websocket"
	"github.com/gorilla/websocket"
)

var upgrader = websocket.Upgrader{
	ReadBufferSize:  1024,
	WriteBufferSize: 1024,
	CheckOrigin: func(r *http.Request) bool {
		return true
	},
}

// PreviewHandler upgrades staff preview sessions to a websocket that
// receives content-change events. Browsers cannot set an Authorization
// header on the upgrade request, so the token travels as a query parameter.
type PreviewHandler struct {
	hub         *ws.PreviewHub
	authService *service.AuthService
}

func NewPreviewHandler(hub *ws.PreviewHub, authService *service.AuthService) *PreviewHandler {
	return &PreviewHandler{hub: hub, authService: authService}
}

func (h *PreviewHandler) Handle(w http.ResponseWriter, r *http.Request) {
	token := r.URL.Query().Get("token")
	if token == "" {
		http.Error(w, "Token required", http.StatusUnauthorized)
		return
	}
	if _, err := h.authService.ValidateToken(token); err != nil {
		log.Printf("ERROR [preview.Handle] token validation failed: %v", err)
		http.Error(w, "Invalid token", http.StatusUnauthorized)
		return
	}

	conn, err := upgrader.Upgrade(w, r, nil)
	if err != nil {
		log.Printf("ERROR [preview.Handle] upgrade failed: %v", err)
		return
	}

	client := ws.NewClient(h.hub, conn)
	client.Register()
}
