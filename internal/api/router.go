package api

import (
	"log/slog"
	"net/http"

	"github.com/gorilla/mux"

	"github.com/hoopgm/capcrash/internal/api/handler"
	"github.com/hoopgm/capcrash/internal/api/middleware"
	"github.com/hoopgm/capcrash/internal/dependencies/clock"
	"github.com/hoopgm/capcrash/internal/services/achievements"
	"github.com/hoopgm/capcrash/internal/services/auth"
	"github.com/hoopgm/capcrash/internal/services/coach"
	"github.com/hoopgm/capcrash/internal/services/roster"
)

// RouterConfig holds configuration for the API router
type RouterConfig struct {
	Logger              *slog.Logger
	AuthService         *auth.Service
	RosterController    *roster.Controller
	CoachService        *coach.Service
	AchievementsService *achievements.Service
	Clock               clock.Clock
}

// NewRouter creates a new API router with all routes configured
func NewRouter(cfg RouterConfig) http.Handler {
	r := mux.NewRouter()

	// Create handlers
	accountHandler := handler.NewAccountHandler(cfg.AuthService)
	sessionHandler := handler.NewSessionHandler(cfg.RosterController, cfg.CoachService)
	profileHandler := handler.NewProfileHandler(cfg.RosterController, cfg.AchievementsService, cfg.Clock)

	// Create middleware
	authMiddleware := middleware.Auth(cfg.AuthService)
	loggingMiddleware := middleware.Logging(cfg.Logger)
	recoveryMiddleware := middleware.Recovery(cfg.Logger)

	// API subrouter with common middleware
	api := r.PathPrefix("/api/v1").Subrouter()
	api.Use(recoveryMiddleware)
	api.Use(loggingMiddleware)

	// Account routes (no auth required for creating accounts/logging in)
	api.HandleFunc("/accounts/guest", accountHandler.CreateGuest).Methods(http.MethodPost)
	api.HandleFunc("/accounts/register", accountHandler.Register).Methods(http.MethodPost)
	api.HandleFunc("/accounts/login", accountHandler.Login).Methods(http.MethodPost)

	// Protected account routes
	accountProtected := api.PathPrefix("/accounts").Subrouter()
	accountProtected.Use(authMiddleware)
	accountProtected.HandleFunc("/logout", accountHandler.Logout).Methods(http.MethodPost)
	accountProtected.HandleFunc("/me", accountHandler.GetMe).Methods(http.MethodGet)

	// Session routes (all require auth)
	sessions := api.PathPrefix("/sessions").Subrouter()
	sessions.Use(authMiddleware)
	sessions.HandleFunc("", sessionHandler.Create).Methods(http.MethodPost)
	sessions.HandleFunc("/resume", sessionHandler.Resume).Methods(http.MethodPost)
	sessions.HandleFunc("/import", sessionHandler.Import).Methods(http.MethodPost)
	sessions.HandleFunc("/{id}", sessionHandler.Get).Methods(http.MethodGet)
	sessions.HandleFunc("/{id}/players/{player_id}/sign", sessionHandler.Sign).Methods(http.MethodPost)
	sessions.HandleFunc("/{id}/players/{player_id}/cut", sessionHandler.Cut).Methods(http.MethodPost)
	sessions.HandleFunc("/{id}/players/{player_id}/mle", sessionHandler.SetMLE).Methods(http.MethodPost)
	sessions.HandleFunc("/{id}/players/{player_id}/vetmin", sessionHandler.SetVetMin).Methods(http.MethodPost)
	sessions.HandleFunc("/{id}/players/{player_id}/trade", sessionHandler.ProposeTrade).Methods(http.MethodPost)
	sessions.HandleFunc("/{id}/trade/confirm", sessionHandler.ConfirmTrade).Methods(http.MethodPost)
	sessions.HandleFunc("/{id}/trade/cancel", sessionHandler.CancelTrade).Methods(http.MethodPost)
	sessions.HandleFunc("/{id}/undo", sessionHandler.Undo).Methods(http.MethodPost)
	sessions.HandleFunc("/{id}/reset", sessionHandler.Reset).Methods(http.MethodPost)
	sessions.HandleFunc("/{id}/simulate", sessionHandler.Simulate).Methods(http.MethodPost)
	sessions.HandleFunc("/{id}/hint", sessionHandler.Hint).Methods(http.MethodGet)
	sessions.HandleFunc("/{id}/share", sessionHandler.Share).Methods(http.MethodGet)

	// Profile routes (require auth)
	profile := api.NewRoute().Subrouter()
	profile.Use(authMiddleware)
	profile.HandleFunc("/profile", profileHandler.GetProfile).Methods(http.MethodGet)
	profile.HandleFunc("/achievements", profileHandler.GetAchievements).Methods(http.MethodGet)

	// Health check endpoint (no auth)
	api.HandleFunc("/health", healthHandler).Methods(http.MethodGet)

	return r
}

func healthHandler(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	_, _ = w.Write([]byte(`{"status":"ok"}`))
}
