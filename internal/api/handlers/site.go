package handlers

import (
	"errors"
	"log"
	"net/http"

	"github.com/evan/sports-club-website/internal/domain"
	"github.com/evan/sports-club-website/internal/render"
	"github.com/evan/sports-club-website/internal/service"
	"github.com/go-chi/chi/v5"
)

// SiteHandler serves the rendered public pages. Pages are addressed by slug;
// anything unresolvable gets the not-found document with a 404 status but
// never a blank response.
type SiteHandler struct {
	pageService    *service.PageService
	programService *service.ProgramService
	renderer       *render.Renderer
}

func NewSiteHandler(pageService *service.PageService, programService *service.ProgramService, renderer *render.Renderer) *SiteHandler {
	return &SiteHandler{
		pageService:    pageService,
		programService: programService,
		renderer:       renderer,
	}
}

// Home serves GET / by rendering the page with slug "home".
func (h *SiteHandler) Home(w http.ResponseWriter, r *http.Request) {
	h.servePage(w, r, "home")
}

// Page serves GET /{slug}.
func (h *SiteHandler) Page(w http.ResponseWriter, r *http.Request) {
	h.servePage(w, r, chi.URLParam(r, "slug"))
}

func (h *SiteHandler) servePage(w http.ResponseWriter, r *http.Request, slug string) {
	page, err := h.pageService.GetPublished(r.Context(), slug)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			h.serveNotFound(w, r)
			return
		}
		log.Printf("ERROR [site.Page] slug=%s: %v", slug, err)
		http.Error(w, "Internal server error", http.StatusInternalServerError)
		return
	}

	html, err := h.renderer.RenderPage(r.Context(), page)
	if err != nil {
		log.Printf("ERROR [site.Page] rendering slug=%s: %v", slug, err)
		http.Error(w, "Internal server error", http.StatusInternalServerError)
		return
	}

	writeHTML(w, http.StatusOK, html)
}

// ProgramDetail serves GET /programs/{slug}.
func (h *SiteHandler) ProgramDetail(w http.ResponseWriter, r *http.Request) {
	slug := chi.URLParam(r, "slug")

	program, err := h.programService.GetBySlug(r.Context(), slug)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			h.serveNotFound(w, r)
			return
		}
		log.Printf("ERROR [site.ProgramDetail] slug=%s: %v", slug, err)
		http.Error(w, "Internal server error", http.StatusInternalServerError)
		return
	}

	html, err := h.renderer.RenderProgramDetail(r.Context(), program)
	if err != nil {
		log.Printf("ERROR [site.ProgramDetail] rendering slug=%s: %v", slug, err)
		http.Error(w, "Internal server error", http.StatusInternalServerError)
		return
	}

	writeHTML(w, http.StatusOK, html)
}

func (h *SiteHandler) serveNotFound(w http.ResponseWriter, r *http.Request) {
	html, err := h.renderer.RenderNotFound(r.Context())
	if err != nil {
		log.Printf("ERROR [site.NotFound]: %v", err)
		http.Error(w, "Not found", http.StatusNotFound)
		return
	}
	writeHTML(w, http.StatusNotFound, html)
}
