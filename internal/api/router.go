package api

import (
	"net/http"

	"github.com/evan/sports-club-website/internal/api/handlers"
	"github.com/evan/sports-club-website/internal/api/middleware"
	"github.com/evan/sports-club-website/internal/config"
	"github.com/evan/sports-club-website/internal/render"
	"github.com/evan/sports-club-website/internal/service"
	"github.com/evan/sports-club-website/internal/websocket"
	"github.com/go-chi/chi/v5"
	chiMiddleware "github.com/go-chi/chi/v5/middleware"
)

func NewRouter(services *service.Services, hub *websocket.PreviewHub, renderer *render.Renderer, cfg *config.Config) http.Handler {
	r := chi.NewRouter()

	// Global middleware
	r.Use(chiMiddleware.Logger)
	r.Use(chiMiddleware.Recoverer)
	r.Use(chiMiddleware.RequestID)
	r.Use(middleware.CORS(cfg.CORSOrigin))

	// Health check
	r.Get("/health", func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte("OK"))
	})

	// Initialize handlers
	authHandler := handlers.NewAuthHandler(services.Auth)
	programHandler := handlers.NewProgramHandler(services.Program, hub)
	coachHandler := handlers.NewCoachHandler(services.Coach, hub)
	testimonialHandler := handlers.NewTestimonialHandler(services.Testimonial, hub)
	tournamentHandler := handlers.NewTournamentHandler(services.Tournament, hub)
	pageHandler := handlers.NewPageHandler(services.Page, hub)
	globalHandler := handlers.NewGlobalHandler(services.Global, hub)
	previewHandler := handlers.NewPreviewHandler(hub, services.Auth)
	siteHandler := handlers.NewSiteHandler(services.Page, services.Program, renderer)

	r.Route("/api", func(r chi.Router) {
		r.Route("/auth", func(r chi.Router) {
			r.Post("/register", authHandler.Register)
			r.Post("/login", authHandler.Login)

			r.Group(func(r chi.Router) {
				r.Use(middleware.Auth(services.Auth))
				r.Get("/me", authHandler.Me)
				r.Post("/logout", authHandler.Logout)
			})
		})

		// Reads are public; mutations require a staff token.
		r.Route("/programs", func(r chi.Router) {
			r.Get("/", programHandler.List)
			r.Get("/{slug}", programHandler.GetBySlug)

			r.Group(func(r chi.Router) {
				r.Use(middleware.Auth(services.Auth))
				r.Post("/", programHandler.Create)
				r.Put("/{id}", programHandler.Update)
				r.Delete("/{id}", programHandler.Delete)
			})
		})

		r.Route("/coaches", func(r chi.Router) {
			r.Get("/", coachHandler.List)

			r.Group(func(r chi.Router) {
				r.Use(middleware.Auth(services.Auth))
				r.Post("/", coachHandler.Create)
				r.Put("/{id}", coachHandler.Update)
				r.Delete("/{id}", coachHandler.Delete)
			})
		})

		r.Route("/testimonials", func(r chi.Router) {
			r.Get("/", testimonialHandler.List)

			r.Group(func(r chi.Router) {
				r.Use(middleware.Auth(services.Auth))
				r.Post("/", testimonialHandler.Create)
				r.Put("/{id}", testimonialHandler.Update)
				r.Delete("/{id}", testimonialHandler.Delete)
			})
		})

		r.Route("/tournaments", func(r chi.Router) {
			r.Get("/", tournamentHandler.List)

			r.Group(func(r chi.Router) {
				r.Use(middleware.Auth(services.Auth))
				r.Post("/", tournamentHandler.Create)
				r.Put("/{id}", tournamentHandler.Update)
				r.Delete("/{id}", tournamentHandler.Delete)
			})
		})

		r.Route("/pages", func(r chi.Router) {
			r.Get("/{slug}", pageHandler.GetBySlug)

			r.Group(func(r chi.Router) {
				r.Use(middleware.Auth(services.Auth))
				r.Get("/", pageHandler.List)
				r.Post("/", pageHandler.Create)
				r.Put("/{id}", pageHandler.Update)
				r.Delete("/{id}", pageHandler.Delete)
			})
		})

		r.Route("/globals", func(r chi.Router) {
			r.Get("/{key}", globalHandler.Get)

			r.Group(func(r chi.Router) {
				r.Use(middleware.Auth(services.Auth))
				r.Put("/{key}", globalHandler.Update)
			})
		})

		// Admin preview event stream
		r.Get("/preview", previewHandler.Handle)
	})

	// Rendered site
	r.Get("/", siteHandler.Home)
	r.Get("/programs/{slug}", siteHandler.ProgramDetail)
	r.Get("/{slug}", siteHandler.Page)

	return r
}
