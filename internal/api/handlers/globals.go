package handlers

import (
	"encoding/json"
	"errors"
	"log"
	"net/http"

	"github.com/evan/sports-club-website/internal/domain"
	"github.com/evan/sports-club-website/internal/service"
	"github.com/evan/sports-club-website/internal/websocket"
	"github.com/go-chi/chi/v5"
)

type GlobalHandler struct {
	globalService *service.GlobalService
	hub           *websocket.PreviewHub
}

func NewGlobalHandler(globalService *service.GlobalService, hub *websocket.PreviewHub) *GlobalHandler {
	return &GlobalHandler{globalService: globalService, hub: hub}
}

func (h *GlobalHandler) Get(w http.ResponseWriter, r *http.Request) {
	key := chi.URLParam(r, "key")

	global, err := h.globalService.Get(r.Context(), key)
	if err != nil {
		switch {
		case errors.Is(err, domain.ErrInvalidGlobalKey), errors.Is(err, domain.ErrNotFound):
			http.Error(w, "Global not found", http.StatusNotFound)
		default:
			log.Printf("ERROR [globals.Get] key=%s: %v", key, err)
			http.Error(w, "Failed to get global", http.StatusInternalServerError)
		}
		return
	}

	writeJSON(w, http.StatusOK, global)
}

func (h *GlobalHandler) Update(w http.ResponseWriter, r *http.Request) {
	key := chi.URLParam(r, "key")

	var global domain.SiteGlobal
	if err := json.NewDecoder(r.Body).Decode(&global); err != nil {
		http.Error(w, "Invalid request body", http.StatusBadRequest)
		return
	}
	global.Key = key

	if err := h.globalService.Update(r.Context(), &global); err != nil {
		writeContentError(w, "globals.Update", err)
		return
	}

	h.hub.NotifyChange("globals", key)
	writeJSON(w, http.StatusOK, global)
}
