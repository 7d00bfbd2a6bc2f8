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

type TestimonialHandler struct {
	testimonialService *service.TestimonialService
	hub                *websocket.PreviewHub
}

func NewTestimonialHandler(testimonialService *service.TestimonialService, hub *websocket.PreviewHub) *TestimonialHandler {
	return &TestimonialHandler{testimonialService: testimonialService, hub: hub}
}

func (h *TestimonialHandler) List(w http.ResponseWriter, r *http.Request) {
	testimonials, err := h.testimonialService.List(r.Context(), queryInt(r, "limit"))
	if err != nil {
		log.Printf("ERROR [testimonials.List]: %v", err)
		http.Error(w, "Failed to list testimonials", http.StatusInternalServerError)
		return
	}
	writeDocs(w, testimonials)
}

func (h *TestimonialHandler) Create(w http.ResponseWriter, r *http.Request) {
	var testimonial domain.Testimonial
	if err := json.NewDecoder(r.Body).Decode(&testimonial); err != nil {
		http.Error(w, "Invalid request body", http.StatusBadRequest)
		return
	}

	if err := h.testimonialService.Create(r.Context(), &testimonial); err != nil {
		writeContentError(w, "testimonials.Create", err)
		return
	}

	h.hub.NotifyChange("testimonials", testimonial.ID.String())
	writeJSON(w, http.StatusCreated, testimonial)
}

func (h *TestimonialHandler) Update(w http.ResponseWriter, r *http.Request) {
	id, err := uuid.Parse(chi.URLParam(r, "id"))
	if err != nil {
		http.Error(w, "Invalid testimonial ID", http.StatusBadRequest)
		return
	}

	var testimonial domain.Testimonial
	if err := json.NewDecoder(r.Body).Decode(&testimonial); err != nil {
		http.Error(w, "Invalid request body", http.StatusBadRequest)
		return
	}
	testimonial.ID = id

	if err := h.testimonialService.Update(r.Context(), &testimonial); err != nil {
		writeContentError(w, "testimonials.Update", err)
		return
	}

	h.hub.NotifyChange("testimonials", testimonial.ID.String())
	writeJSON(w, http.StatusOK, testimonial)
}

func (h *TestimonialHandler) Delete(w http.ResponseWriter, r *http.Request) {
	id, err := uuid.Parse(chi.URLParam(r, "id"))
	if err != nil {
		http.Error(w, "Invalid testimonial ID", http.StatusBadRequest)
		return
	}

	if err := h.testimonialService.Delete(r.Context(), id); err != nil {
		log.Printf("ERROR [testimonials.Delete] id=%s: %v", id, err)
		http.Error(w, "Failed to delete testimonial", http.StatusInternalServerError)
		return
	}

	h.hub.NotifyChange("testimonials", id.String())
	w.WriteHeader(http.StatusNoContent)
}
