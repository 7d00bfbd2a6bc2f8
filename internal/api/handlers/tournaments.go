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

type TournamentHandler struct {
	tournamentService *service.TournamentService
	hub               *websocket.PreviewHub
}

func NewTournamentHandler(tournamentService *service.TournamentService, hub *websocket.PreviewHub) *TournamentHandler {
	return &TournamentHandler{tournamentService: tournamentService, hub: hub}
}

func (h *TournamentHandler) List(w http.ResponseWriter, r *http.Request) {
	tournaments, err := h.tournamentService.List(r.Context(), queryInt(r, "limit"))
	if err != nil {
		log.Printf("ERROR [tournaments.List]: %v", err)
		http.Error(w, "Failed to list tournaments", http.StatusInternalServerError)
		return
	}
	writeDocs(w, tournaments)
}

func (h *TournamentHandler) Create(w http.ResponseWriter, r *http.Request) {
	var tournament domain.Tournament
	if err := json.NewDecoder(r.Body).Decode(&tournament); err != nil {
		http.Error(w, "Invalid request body", http.StatusBadRequest)
		return
	}

	if err := h.tournamentService.Create(r.Context(), &tournament); err != nil {
		writeContentError(w, "tournaments.Create", err)
		return
	}

	h.hub.NotifyChange("tournaments", tournament.ID.String())
	writeJSON(w, http.StatusCreated, tournament)
}

func (h *TournamentHandler) Update(w http.ResponseWriter, r *http.Request) {
	id, err := uuid.Parse(chi.URLParam(r, "id"))
	if err != nil {
		http.Error(w, "Invalid tournament ID", http.StatusBadRequest)
		return
	}

	var tournament domain.Tournament
	if err := json.NewDecoder(r.Body).Decode(&tournament); err != nil {
		http.Error(w, "Invalid request body", http.StatusBadRequest)
		return
	}
	tournament.ID = id

	if err := h.tournamentService.Update(r.Context(), &tournament); err != nil {
		writeContentError(w, "tournaments.Update", err)
		return
	}

	h.hub.NotifyChange("tournaments", tournament.ID.String())
	writeJSON(w, http.StatusOK, tournament)
}

func (h *TournamentHandler) Delete(w http.ResponseWriter, r *http.Request) {
	id, err := uuid.Parse(chi.URLParam(r, "id"))
	if err != nil {
		http.Error(w, "Invalid tournament ID", http.StatusBadRequest)
		return
	}

	if err := h.tournamentService.Delete(r.Context(), id); err != nil {
		log.Printf("ERROR [tournaments.Delete] id=%s: %v", id, err)
		http.Error(w, "Failed to delete tournament", http.StatusInternalServerError)
		return
	}

	h.hub.NotifyChange("tournaments", id.String())
	w.WriteHeader(http.StatusNoContent)
}
