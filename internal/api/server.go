package api

import (
	"encoding/json"
	"fmt"
	"log/slog"
	"net/http"
	"strings"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"

	"github.com/CryptoJym/wrath-shield/internal/confidence"
	"github.com/CryptoJym/wrath-shield/internal/manipulation"
	"github.com/CryptoJym/wrath-shield/internal/metrics"
	"github.com/CryptoJym/wrath-shield/internal/store"
)

type Server struct {
	router *chi.Mux
	port   int
	db     *store.Store
	miner  *confidence.Miner
	engine *manipulation.Engine
}

func NewServer(port int, apiToken string, db *store.Store, miner *confidence.Miner, engine *manipulation.Engine) *Server {
	metrics.Init()

	router := chi.NewRouter()
	router.Use(middleware.Logger)
	router.Use(middleware.Recoverer)

	s := &Server{
		router: router,
		port:   port,
		db:     db,
		miner:  miner,
		engine: engine,
	}

	router.Get("/health", s.health)
	router.Get("/api/v1/wrath/status", s.status)
	router.Handle("/metrics", metrics.Handler())

	router.Route("/api/v1", func(r chi.Router) {
		r.Use(BearerAuthMiddleware(apiToken))
		r.Post("/analyze/draft", s.analyzeDraft)
		r.Post("/analyze/lifelog", s.analyzeLifelog)
		r.Get("/flags/open", s.openFlags)
		r.Post("/flags/{id}/resolve", s.resolveFlag)
		r.Get("/flags/top-fixes", s.topFixes)
	})

	return s
}

func (s *Server) Start() error {
	addr := fmt.Sprintf(":%d", s.port)
	slog.Info("API server starting", "addr", addr)
	return http.ListenAndServe(addr, s.router)
}

// BearerAuthMiddleware rejects requests whose Authorization header does
// not carry the configured token. An empty configured token disables
// auth (local development).
func BearerAuthMiddleware(token string) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			if token != "" {
				got := strings.TrimPrefix(r.Header.Get("Authorization"), "Bearer ")
				if got != token {
					writeError(w, http.StatusUnauthorized, "unauthorized")
					return
				}
			}
			next.ServeHTTP(w, r)
		})
	}
}

func (s *Server) health(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, map[string]string{"status": "ok"})
}

func (s *Server) status(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, map[string]string{
		"service": "wrath-shield",
		"status":  "watching",
	})
}

func writeJSON(w http.ResponseWriter, code int, body any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(code)
	json.NewEncoder(w).Encode(body)
}

func writeError(w http.ResponseWriter, code int, msg string) {
	writeJSON(w, code, map[string]string{"error": msg})
}
