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
	"github.com/google/uuid"
)

type ProgramHandler struct {
	programService *service.ProgramService
	hub            *websocket.PreviewHub
}

func NewProgramHandler(programService *service.ProgramService, hub *websocket.PreviewHub) *ProgramHandler {
	return &ProgramHandler{programService: programService, hub: hub}
}

// List serves GET /api/programs. Facets arrive in the CMS equality-filter
// syntax: where[programType][equals]=camp&where[location][equals]=chicago.
func (h *ProgramHandler) List(w http.ResponseWriter, r *http.Request) {
	input := service.ListInput{
		ProgramType: whereEquals(r, "programType"),
		Location:    whereEquals(r, "location"),
		Limit:       queryInt(r, "limit"),
		Depth:       queryInt(r, "depth"),
	}
	if v := whereEquals(r, "featured"); v != "" {
		featured := v == "true"
		input.Featured = &featured
	}

	programs, err := h.programService.List(r.Context(), input)
	if err != nil {
		log.Printf("ERROR [programs.List]: %v", err)
		http.Error(w, "Failed to list programs", http.StatusInternalServerError)
		return
	}

	writeDocs(w, programs)
}

func (h *ProgramHandler) GetBySlug(w http.ResponseWriter, r *http.Request) {
	slug := chi.URLParam(r, "slug")

	program, err := h.programService.GetBySlug(r.Context(), slug)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			http.Error(w, "Program not found", http.StatusNotFound)
			return
		}
		log.Printf("ERROR [programs.GetBySlug] slug=%s: %v", slug, err)
		http.Error(w, "Failed to get program", http.StatusInternalServerError)
		return
	}

	writeJSON(w, http.StatusOK, program)
}

func (h *ProgramHandler) Create(w http.ResponseWriter, r *http.Request) {
	var program domain.Program
	if err := json.NewDecoder(r.Body).Decode(&program); err != nil {
		http.Error(w, "Invalid request body", http.StatusBadRequest)
		return
	}

	if err := h.programService.Create(r.Context(), &program); err != nil {
		writeContentError(w, "programs.Create", err)
		return
	}

	h.hub.NotifyChange("programs", program.ID.String())
	writeJSON(w, http.StatusCreated, program)
}

func (h *ProgramHandler) Update(w http.ResponseWriter, r *http.Request) {
	id, err := uuid.Parse(chi.URLParam(r, "id"))
	if err != nil {
		http.Error(w, "Invalid program ID", http.StatusBadRequest)
		return
	}

	var program domain.Program
	if err := json.NewDecoder(r.Body).Decode(&program); err != nil {
		http.Error(w, "Invalid request body", http.StatusBadRequest)
		return
	}
	program.ID = id

	if err := h.programService.Update(r.Context(), &program); err != nil {
		writeContentError(w, "programs.Update", err)
		return
	}

	h.hub.NotifyChange("programs", program.ID.String())
	writeJSON(w, http.StatusOK, program)
}

func (h *ProgramHandler) Delete(w http.ResponseWriter, r *http.Request) {
	id, err := uuid.Parse(chi.URLParam(r, "id"))
	if err != nil {
		http.Error(w, "Invalid program ID", http.StatusBadRequest)
		return
	}

	if err := h.programService.Delete(r.Context(), id); err != nil {
		log.Printf("ERROR [programs.Delete] id=%s: %v", id, err)
		http.Error(w, "Failed to delete program", http.StatusInternalServerError)
		return
	}

	h.hub.NotifyChange("programs", id.String())
	w.WriteHeader(http.StatusNoContent)
}

// writeContentError maps validation and conflict errors from the content
// services onto statuses; anything else is a 500.
func writeContentError(w http.ResponseWriter, op string, err error) {
	switch {
	case errors.Is(err, domain.ErrNotFound):
		http.Error(w, "Not found", http.StatusNotFound)
	case errors.Is(err, domain.ErrSlugTaken):
		http.Error(w, "Slug is already in use", http.StatusConflict)
	case errors.Is(err, domain.ErrMissingSlug),
		errors.Is(err, domain.ErrMissingTitle),
		errors.Is(err, domain.ErrMissingName),
		errors.Is(err, domain.ErrInvalidGender),
		errors.Is(err, domain.ErrInvalidLocation),
		errors.Is(err, domain.ErrInvalidType),
		errors.Is(err, domain.ErrInvalidGlobalKey),
		errors.Is(err, domain.ErrInvalidBlocks):
		http.Error(w, err.Error(), http.StatusBadRequest)
	default:
		log.Printf("ERROR [%s]: %v", op, err)
		http.Error(w, "Internal server error", http.StatusInternalServerError)
	}
}
