package routes

import (
	"encoding/json"
	"fmt"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"

	_ "github.com/hsm-gustavo/userdir-go/docs"
	"github.com/hsm-gustavo/userdir-go/internal/api/auth"
	"github.com/hsm-gustavo/userdir-go/internal/api/health"
	"github.com/hsm-gustavo/userdir-go/internal/api/user"
	"github.com/hsm-gustavo/userdir-go/internal/config"
	httpSwagger "github.com/swaggo/http-swagger"
)

func SetupRoutes(cfg *config.Config) http.Handler {
	r := chi.NewRouter()

	corsMiddleware := cors.New(cors.Options{
		AllowedOrigins:   []string{"*"},
		AllowedMethods:   []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowedHeaders:   []string{"Accept", "Authorization", "Content-Type", "X-CSRF-Token"},
		ExposedHeaders:   []string{"Link", "Location"},
		AllowCredentials: true,
		MaxAge:           300, // max time in seconds for OPTIONS preflight response cache
	})

	r.Use(corsMiddleware.Handler)

	r.Use(middleware.RequestID)
	r.Use(middleware.RealIP)
	r.Use(middleware.Logger)
	r.Use(jsonRecoverer)
	r.Use(middleware.StripSlashes)
	r.Use(middleware.Timeout(2 * time.Minute))

	// init services & handlers
	store := user.NewStore()
	userHandler := user.NewHandler(store, cfg.ValidationEnabled)
	tokenService := auth.NewTokenService([]byte(cfg.JWTSecret), cfg.TokenTTL)
	tokenHandler := auth.NewHandler(tokenService)

	r.Get("/health", health.HealthHandler)

	// public routes
	r.Post("/token", tokenHandler.IssueToken)

	// user routes, token-protected unless auth is toggled off
	r.Group(func(r chi.Router) {
		if cfg.AuthEnabled {
			r.Use(auth.Middleware(tokenService))
		}
		r.Get("/users", userHandler.ListUsers)
		r.Post("/users", userHandler.CreateUser)
		r.Get("/users/{id}", userHandler.GetUser)
		r.Put("/users/{id}", userHandler.UpdateUser)
		r.Delete("/users/{id}", userHandler.DeleteUser)
	})

	// init swagger
	r.Get("/docs", func(w http.ResponseWriter, r *http.Request) {
		http.Redirect(w, r, "/docs/index.html", http.StatusMovedPermanently)
	})
	r.Get("/docs/*", httpSwagger.WrapHandler)

	return r
}

// jsonRecoverer maps any panic below it to a 500 with an {"error": ...}
// body, keeping the error contract uniform across the API.
func jsonRecoverer(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		defer func() {
			if rvr := recover(); rvr != nil {
				if rvr == http.ErrAbortHandler {
					panic(rvr)
				}
				w.Header().Set("Content-Type", "application/json")
				w.WriteHeader(http.StatusInternalServerError)
				json.NewEncoder(w).Encode(map[string]string{
					"error": fmt.Sprintf("%v", rvr),
				})
			}
		}()
		next.ServeHTTP(w, r)
	})
}
