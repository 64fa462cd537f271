package api

import (
	"net/http"

	"github.com/abhishek/learngrow/internal/api/handlers"
	"github.com/abhishek/learngrow/internal/api/middleware"
	"github.com/abhishek/learngrow/internal/config"
	"github.com/abhishek/learngrow/internal/service"
	"github.com/abhishek/learngrow/web"
	"github.com/go-chi/chi/v5"
	chiMiddleware "github.com/go-chi/chi/v5/middleware"
)

func NewRouter(services *service.Services, cfg *config.Config) http.Handler {
	r := chi.NewRouter()

	// Global middleware
	r.Use(chiMiddleware.Logger)
	r.Use(chiMiddleware.Recoverer)
	r.Use(chiMiddleware.RequestID)
	r.Use(middleware.CORS(cfg.CORSAllowedOrigins))

	// Health check
	r.Get("/health", func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte("OK"))
	})

	authHandler := handlers.NewAuthHandler(services.Account)
	chatbotHandler := handlers.NewChatbotHandler(services.Chat)

	r.Route("/api", func(r chi.Router) {
		r.Post("/register", authHandler.Register)
		r.Post("/login", authHandler.Login)

		r.Group(func(r chi.Router) {
			r.Use(middleware.Session(services.Account))
			r.Post("/chatbot", chatbotHandler.Ask)
		})
	})

	// The static frontend is served from its own package, independent of the
	// request-handling logic above.
	r.Handle("/*", web.Handler())

	return r
}
