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

type PageHandler struct {
	pageService *service.PageService
	hub         *websocket.PreviewHub
}

func NewPageHandler(pageService *service.PageService, hub *websocket.PreviewHub) *PageHandler {
	return &PageHandler{pageService: pageService, hub: hub}
}

func (h *PageHandler) List(w http.ResponseWriter, r *http.Request) {
	pages, err := h.pageService.List(r.Context())
	if err != nil {
		log.Printf("ERROR [pages.List]: %v", err)
		http.Error(w, "Failed to list pages", http.StatusInternalServerError)
		return
	}
	writeDocs(w, pages)
}

// GetBySlug is the public page read; drafts are indistinguishable from
// missing pages here. Staff fetch drafts through the authenticated List.
func (h *PageHandler) GetBySlug(w http.ResponseWriter, r *http.Request) {
	slug := chi.URLParam(r, "slug")

	page, err := h.pageService.GetPublished(r.Context(), slug)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			http.Error(w, "Page not found", http.StatusNotFound)
			return
		}
		log.Printf("ERROR [pages.GetBySlug] slug=%s: %v", slug, err)
		http.Error(w, "Failed to get page", http.StatusInternalServerError)
		return
	}

	writeJSON(w, http.StatusOK, page)
}

func (h *PageHandler) Create(w http.ResponseWriter, r *http.Request) {
	var page domain.Page
	if err := json.NewDecoder(r.Body).Decode(&page); err != nil {
		http.Error(w, "Invalid request body", http.StatusBadRequest)
		return
	}

	if err := h.pageService.Create(r.Context(), &page); err != nil {
		writeContentError(w, "pages.Create", err)
		return
	}

	h.hub.NotifyChange("pages", page.ID.String())
	writeJSON(w, http.StatusCreated, page)
}

func (h *PageHandler) Update(w http.ResponseWriter, r *http.Request) {
	id, err := uuid.Parse(chi.URLParam(r, "id"))
	if err != nil {
		http.Error(w, "Invalid page ID", http.StatusBadRequest)
		return
	}

	var page domain.Page
	if err := json.NewDecoder(r.Body).Decode(&page); err != nil {
		http.Error(w, "Invalid request body", http.StatusBadRequest)
		return
	}
	page.ID = id

	if err := h.pageService.Update(r.Context(), &page); err != nil {
		writeContentError(w, "pages.Update", err)
		return
	}

	h.hub.NotifyChange("pages", page.ID.String())
	writeJSON(w, http.StatusOK, page)
}

func (h *PageHandler) Delete(w http.ResponseWriter, r *http.Request) {
	id, err := uuid.Parse(chi.URLParam(r, "id"))
	if err != nil {
		http.Error(w, "Invalid page ID", http.StatusBadRequest)
		return
	}

	if err := h.pageService.Delete(r.Context(), id); err != nil {
		log.Printf("ERROR [pages.Delete] id=%s: %v", id, err)
		http.Error(w, "Failed to delete page", http.StatusInternalServerError)
		return
	}

	h.hub.NotifyChange("pages", id.String())
	w.WriteHeader(http.StatusNoContent)
}
