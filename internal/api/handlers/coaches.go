package handlers

import (
	"encoding/json"
	"log"
	"net/http"

	"github.com/evan/sports-club-website/internal/domain"
	"github.com/evan/sports-club-website/internal/service"
	"github.com/evan/sports-club-website/internal/websocket"
	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"
)

type CoachHandler struct {
	coachService *service.CoachService
	hub          *websocket.PreviewHub
}

func NewCoachHandler(coachService *service.CoachService, hub *websocket.PreviewHub) *CoachHandler {
	return &CoachHandler{coachService: coachService, hub: hub}
}

func (h *CoachHandler) List(w http.ResponseWriter, r *http.Request) {
	coaches, err := h.coachService.List(r.Context(), queryInt(r, "limit"))
	if err != nil {
		log.Printf("ERROR [coaches.List]: %v", err)
		http.Error(w, "Failed to list coaches", http.StatusInternalServerError)
		return
	}
	writeDocs(w, coaches)
}

func (h *CoachHandler) Create(w http.ResponseWriter, r *http.Request) {
	var coach domain.Coach
	if err := json.NewDecoder(r.Body).Decode(&coach); err != nil {
		http.Error(w, "Invalid request body", http.StatusBadRequest)
		return
	}

	if err := h.coachService.Create(r.Context(), &coach); err != nil {
		writeContentError(w, "coaches.Create", err)
		return
	}

	h.hub.NotifyChange("coaches", coach.ID.String())
	writeJSON(w, http.StatusCreated, coach)
}

func (h *CoachHandler) Update(w http.ResponseWriter, r *http.Request) {
	id, err := uuid.Parse(chi.URLParam(r, "id"))
	if err != nil {
		http.Error(w, "Invalid coach ID", http.StatusBadRequest)
		return
	}

	var coach domain.Coach
	if err := json.NewDecoder(r.Body).Decode(&coach); err != nil {
		http.Error(w, "Invalid request body", http.StatusBadRequest)
		return
	}
	coach.ID = id

	if err := h.coachService.Update(r.Context(), &coach); err != nil {
		writeContentError(w, "coaches.Update", err)
		return
	}

	h.hub.NotifyChange("coaches", coach.ID.String())
	writeJSON(w, http.StatusOK, coach)
}

func (h *CoachHandler) Delete(w http.ResponseWriter, r *http.Request) {
	id, err := uuid.Parse(chi.URLParam(r, "id"))
	if err != nil {
		http.Error(w, "Invalid coach ID", http.StatusBadRequest)
		return
	}

	if err := h.coachService.Delete(r.Context(), id); err != nil {
		log.Printf("ERROR [coaches.Delete] id=%s: %v", id, err)
		http.Error(w, "Failed to delete coach", http.StatusInternalServerError)
		return
	}

	h.hub.NotifyChange("coaches", id.String())
	w.WriteHeader(http.StatusNoContent)
}
