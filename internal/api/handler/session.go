package handler

import (
	"context"
	"encoding/json"
	"net/http"
	"strconv"

	"github.com/gorilla/mux"

	"github.com/hoopgm/capcrash/internal/api/middleware"
	"github.com/hoopgm/capcrash/internal/api/request"
	"github.com/hoopgm/capcrash/internal/api/response"
	"github.com/hoopgm/capcrash/internal/model"
	"github.com/hoopgm/capcrash/internal/services/coach"
	"github.com/hoopgm/capcrash/internal/services/roster"
)

// SessionHandler handles game-session endpoints
type SessionHandler struct {
	rosterController *roster.Controller
	coachService     *coach.Service
}

// NewSessionHandler creates a new session handler
func NewSessionHandler(rosterController *roster.Controller, coachService *coach.Service) *SessionHandler {
	return &SessionHandler{
		rosterController: rosterController,
		coachService:     coachService,
	}
}

// Create handles POST /api/v1/sessions
func (h *SessionHandler) Create(w http.ResponseWriter, r *http.Request) {
	account := middleware.MustGetAccount(r.Context())

	var req request.CreateSessionRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		WriteError(w, NewInvalidRequestError("invalid request body"))
		return
	}

	sess, err := h.rosterController.CreateSession(r.Context(), account.ID, model.DifficultyKey(req.Difficulty))
	if err != nil {
		WriteError(w, err)
		return
	}

	h.writeSession(w, http.StatusCreated, sess)
}

// Resume handles POST /api/v1/sessions/resume
func (h *SessionHandler) Resume(w http.ResponseWriter, r *http.Request) {
	account := middleware.MustGetAccount(r.Context())

	sess, err := h.rosterController.ResumeSession(r.Context(), account.ID)
	if err != nil {
		WriteError(w, err)
		return
	}

	h.writeSession(w, http.StatusOK, sess)
}

// Import handles POST /api/v1/sessions/import
func (h *SessionHandler) Import(w http.ResponseWriter, r *http.Request) {
	account := middleware.MustGetAccount(r.Context())

	var req request.ImportBuildRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		WriteError(w, NewInvalidRequestError("invalid request body"))
		return
	}
	if req.Code == "" {
		WriteError(w, NewInvalidRequestError("code is required"))
		return
	}

	sess, err := h.rosterController.ImportBuild(r.Context(), account.ID, model.DifficultyKey(req.Difficulty), req.Code)
	if err != nil {
		WriteError(w, err)
		return
	}

	h.writeSession(w, http.StatusCreated, sess)
}

// Get handles GET /api/v1/sessions/{id}
func (h *SessionHandler) Get(w http.ResponseWriter, r *http.Request) {
	sess, err := h.loadOwned(r)
	if err != nil {
		WriteError(w, err)
		return
	}

	h.writeSession(w, http.StatusOK, sess)
}

// Sign handles POST /api/v1/sessions/{id}/players/{player_id}/sign
func (h *SessionHandler) Sign(w http.ResponseWriter, r *http.Request) {
	h.playerMutation(w, r, h.rosterController.Sign)
}

// Cut handles POST /api/v1/sessions/{id}/players/{player_id}/cut
func (h *SessionHandler) Cut(w http.ResponseWriter, r *http.Request) {
	h.playerMutation(w, r, h.rosterController.Cut)
}

// SetMLE handles POST /api/v1/sessions/{id}/players/{player_id}/mle
func (h *SessionHandler) SetMLE(w http.ResponseWriter, r *http.Request) {
	h.exceptionMutation(w, r, h.rosterController.SetMLE)
}

// SetVetMin handles POST /api/v1/sessions/{id}/players/{player_id}/vetmin
func (h *SessionHandler) SetVetMin(w http.ResponseWriter, r *http.Request) {
	h.exceptionMutation(w, r, h.rosterController.SetVetMin)
}

// ProposeTrade handles POST /api/v1/sessions/{id}/players/{player_id}/trade
func (h *SessionHandler) ProposeTrade(w http.ResponseWriter, r *http.Request) {
	sess, err := h.loadOwned(r)
	if err != nil {
		WriteError(w, err)
		return
	}
	playerID, err := playerIDVar(r)
	if err != nil {
		WriteError(w, err)
		return
	}

	sess, proposal, err := h.rosterController.ProposeTrade(r.Context(), sess.ID, playerID)
	if err != nil {
		WriteError(w, err)
		return
	}

	view, err := h.sessionView(sess)
	if err != nil {
		WriteError(w, err)
		return
	}
	response.JSON(w, http.StatusOK, response.TradeProposalResponse{
		Session:  view,
		Proposal: proposal,
	})
}

// ConfirmTrade handles POST /api/v1/sessions/{id}/trade/confirm
func (h *SessionHandler) ConfirmTrade(w http.ResponseWriter, r *http.Request) {
	sess, err := h.loadOwned(r)
	if err != nil {
		WriteError(w, err)
		return
	}

	var req request.ConfirmTradeRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		WriteError(w, NewInvalidRequestError("invalid request body"))
		return
	}

	sess, err = h.rosterController.ConfirmTrade(r.Context(), sess.ID, model.PlayerID(req.ReturnPlayerID))
	if err != nil {
		WriteError(w, err)
		return
	}

	h.writeSession(w, http.StatusOK, sess)
}

// CancelTrade handles POST /api/v1/sessions/{id}/trade/cancel
func (h *SessionHandler) CancelTrade(w http.ResponseWriter, r *http.Request) {
	sess, err := h.loadOwned(r)
	if err != nil {
		WriteError(w, err)
		return
	}

	sess, err = h.rosterController.CancelTrade(r.Context(), sess.ID)
	if err != nil {
		WriteError(w, err)
		return
	}

	h.writeSession(w, http.StatusOK, sess)
}

// Undo handles POST /api/v1/sessions/{id}/undo
func (h *SessionHandler) Undo(w http.ResponseWriter, r *http.Request) {
	sess, err := h.loadOwned(r)
	if err != nil {
		WriteError(w, err)
		return
	}

	sess, err = h.rosterController.Undo(r.Context(), sess.ID)
	if err != nil {
		WriteError(w, err)
		return
	}

	h.writeSession(w, http.StatusOK, sess)
}

// Reset handles POST /api/v1/sessions/{id}/reset
func (h *SessionHandler) Reset(w http.ResponseWriter, r *http.Request) {
	sess, err := h.loadOwned(r)
	if err != nil {
		WriteError(w, err)
		return
	}

	sess, err = h.rosterController.Reset(r.Context(), sess.ID)
	if err != nil {
		WriteError(w, err)
		return
	}

	h.writeSession(w, http.StatusOK, sess)
}

// Simulate handles POST /api/v1/sessions/{id}/simulate
func (h *SessionHandler) Simulate(w http.ResponseWriter, r *http.Request) {
	sess, err := h.loadOwned(r)
	if err != nil {
		WriteError(w, err)
		return
	}

	sess, result, err := h.rosterController.Simulate(r.Context(), sess.ID)
	if err != nil {
		WriteError(w, err)
		return
	}

	view, err := h.sessionView(sess)
	if err != nil {
		WriteError(w, err)
		return
	}
	response.JSON(w, http.StatusOK, response.SimulateResponse{
		Result:  result,
		Session: view,
	})
}

// Hint handles GET /api/v1/sessions/{id}/hint
func (h *SessionHandler) Hint(w http.ResponseWriter, r *http.Request) {
	sess, err := h.loadOwned(r)
	if err != nil {
		WriteError(w, err)
		return
	}
	cfg, err := model.DifficultyByKey(sess.Difficulty)
	if err != nil {
		WriteError(w, err)
		return
	}

	tips, err := h.coachService.Tips(sess, cfg)
	if err != nil {
		WriteError(w, err)
		return
	}

	response.JSON(w, http.StatusOK, response.HintResponse{
		Hint: tips[0],
		Tips: tips,
	})
}

// Share handles GET /api/v1/sessions/{id}/share
func (h *SessionHandler) Share(w http.ResponseWriter, r *http.Request) {
	sess, err := h.loadOwned(r)
	if err != nil {
		WriteError(w, err)
		return
	}

	response.JSON(w, http.StatusOK, response.ShareResponse{
		Code: model.EncodeBuild(sess),
	})
}

// playerMutation runs a sign/cut-shaped controller call
func (h *SessionHandler) playerMutation(
	w http.ResponseWriter,
	r *http.Request,
	fn func(ctx context.Context, id model.SessionID, playerID model.PlayerID) (*model.Session, error),
) {
	sess, err := h.loadOwned(r)
	if err != nil {
		WriteError(w, err)
		return
	}
	playerID, err := playerIDVar(r)
	if err != nil {
		WriteError(w, err)
		return
	}

	sess, err = fn(r.Context(), sess.ID, playerID)
	if err != nil {
		WriteError(w, err)
		return
	}

	h.writeSession(w, http.StatusOK, sess)
}

// exceptionMutation runs an MLE/VetMin-shaped controller call
func (h *SessionHandler) exceptionMutation(
	w http.ResponseWriter,
	r *http.Request,
	fn func(ctx context.Context, id model.SessionID, playerID model.PlayerID, enabled bool) (*model.Session, error),
) {
	sess, err := h.loadOwned(r)
	if err != nil {
		WriteError(w, err)
		return
	}
	playerID, err := playerIDVar(r)
	if err != nil {
		WriteError(w, err)
		return
	}

	var req request.SetExceptionRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		WriteError(w, NewInvalidRequestError("invalid request body"))
		return
	}

	sess, err = fn(r.Context(), sess.ID, playerID, req.Enabled)
	if err != nil {
		WriteError(w, err)
		return
	}

	h.writeSession(w, http.StatusOK, sess)
}

// loadOwned fetches the session from the path and checks the caller
// owns it. Foreign sessions read as not found.
func (h *SessionHandler) loadOwned(r *http.Request) (*model.Session, error) {
	account := middleware.MustGetAccount(r.Context())
	id := model.SessionID(mux.Vars(r)["id"])

	sess, err := h.rosterController.GetSession(r.Context(), id)
	if err != nil {
		return nil, err
	}
	if sess.Owner != account.ID {
		return nil, model.ErrSessionNotFound
	}
	return sess, nil
}

// sessionView assembles the full response view for a session
func (h *SessionHandler) sessionView(sess *model.Session) (response.Session, error) {
	cfg, err := model.DifficultyByKey(sess.Difficulty)
	if err != nil {
		return response.Session{}, err
	}
	report, err := h.rosterController.Rules(sess)
	if err != nil {
		return response.Session{}, err
	}
	challenges, err := h.rosterController.Challenges(sess)
	if err != nil {
		return response.Session{}, err
	}
	return response.SessionFromModel(sess, cfg, report, challenges), nil
}

func (h *SessionHandler) writeSession(w http.ResponseWriter, status int, sess *model.Session) {
	view, err := h.sessionView(sess)
	if err != nil {
		WriteError(w, err)
		return
	}
	response.JSON(w, status, view)
}

func playerIDVar(r *http.Request) (model.PlayerID, error) {
	raw := mux.Vars(r)["player_id"]
	n, err := strconv.Atoi(raw)
	if err != nil {
		return 0, NewInvalidRequestError("player_id must be an integer")
	}
	return model.PlayerID(n), nil
}
