package handler

import (
	"net/http"

	"github.com/hoopgm/capcrash/internal/api/middleware"
	"github.com/hoopgm/capcrash/internal/api/response"
	"github.com/hoopgm/capcrash/internal/dependencies/clock"
	"github.com/hoopgm/capcrash/internal/services/achievements"
	"github.com/hoopgm/capcrash/internal/services/roster"
)

// ProfileHandler handles profile and achievement endpoints
type ProfileHandler struct {
	rosterController    *roster.Controller
	achievementsService *achievements.Service
	clock               clock.Clock
}

// NewProfileHandler creates a new profile handler
func NewProfileHandler(rosterController *roster.Controller, achievementsService *achievements.Service, clock clock.Clock) *ProfileHandler {
	return &ProfileHandler{
		rosterController:    rosterController,
		achievementsService: achievementsService,
		clock:               clock,
	}
}

// GetProfile handles GET /api/v1/profile
func (h *ProfileHandler) GetProfile(w http.ResponseWriter, r *http.Request) {
	account := middleware.MustGetAccount(r.Context())

	profile, err := h.rosterController.Profile(r.Context(), account.ID)
	if err != nil {
		WriteError(w, err)
		return
	}

	response.JSON(w, http.StatusOK, response.ProfileFromModel(profile, h.clock.Now()))
}

// GetAchievements handles GET /api/v1/achievements
func (h *ProfileHandler) GetAchievements(w http.ResponseWriter, r *http.Request) {
	account := middleware.MustGetAccount(r.Context())

	profile, err := h.rosterController.Profile(r.Context(), account.ID)
	if err != nil {
		WriteError(w, err)
		return
	}

	response.JSON(w, http.StatusOK, response.AchievementsFromModel(h.achievementsService.All(), profile))
}
