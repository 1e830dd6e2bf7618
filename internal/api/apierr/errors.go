package apierr

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/hoopgm/capcrash/internal/model"
	"github.com/hoopgm/capcrash/internal/services/auth"
	"github.com/hoopgm/capcrash/internal/services/coach"
)

// APIError represents an API error response
type APIError struct {
	Code    string `json:"code"`
	Message string `json:"message"`
}

// ErrorResponse wraps an APIError
type ErrorResponse struct {
	Error APIError `json:"error"`
}

// Common error codes
const (
	CodeInvalidRequest      = "INVALID_REQUEST"
	CodeUnauthorized        = "UNAUTHORIZED"
	CodeAccountNotFound     = "ACCOUNT_NOT_FOUND"
	CodeProfileNotFound     = "PROFILE_NOT_FOUND"
	CodeSessionNotFound     = "SESSION_NOT_FOUND"
	CodePlayerNotFound      = "PLAYER_NOT_FOUND"
	CodeUnknownDifficulty   = "UNKNOWN_DIFFICULTY"
	CodeNoSavedGame         = "NO_SAVED_GAME"
	CodeMLEInUse            = "MLE_IN_USE"
	CodeNotMLEEligible      = "NOT_MLE_ELIGIBLE"
	CodeVetMinSlotsFull     = "VET_MIN_SLOTS_FULL"
	CodeNotVetMinEligible   = "NOT_VET_MIN_ELIGIBLE"
	CodeNotSigned           = "NOT_SIGNED"
	CodeTradePending        = "TRADE_PENDING"
	CodeNoTradePending      = "NO_TRADE_PENDING"
	CodeNotTradeEligible    = "NOT_TRADE_ELIGIBLE"
	CodeAlreadyTraded       = "ALREADY_TRADED"
	CodeReturnNotAvailable  = "RETURN_NOT_AVAILABLE"
	CodeReturnSalaryTooHigh = "RETURN_SALARY_TOO_HIGH"
	CodeRosterNotComplete   = "ROSTER_NOT_COMPLETE"
	CodeHintsDisabled       = "HINTS_DISABLED"
	CodeUsernameExists      = "USERNAME_EXISTS"
	CodeInvalidCredentials  = "INVALID_CREDENTIALS"
	CodeInternalError       = "INTERNAL_ERROR"
)

// httpError combines an HTTP status code with an APIError
type httpError struct {
	status   int
	apiError APIError
}

// Error implements error interface
func (e *httpError) Error() string {
	return e.apiError.Message
}

// WriteError writes an error response to the response writer
func WriteError(w http.ResponseWriter, err error) {
	he := toHTTPError(err)
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(he.status)
	_ = json.NewEncoder(w).Encode(ErrorResponse{Error: he.apiError})
}

// toHTTPError converts an error to an httpError
func toHTTPError(err error) *httpError {
	var he *httpError
	if errors.As(err, &he) {
		return he
	}

	// Map model errors
	switch {
	case errors.Is(err, model.ErrAccountNotFound):
		return &httpError{http.StatusNotFound, APIError{CodeAccountNotFound, "Account not found"}}
	case errors.Is(err, model.ErrProfileNotFound):
		return &httpError{http.StatusNotFound, APIError{CodeProfileNotFound, "Profile not found"}}
	case errors.Is(err, model.ErrSessionNotFound):
		return &httpError{http.StatusNotFound, APIError{CodeSessionNotFound, "Session not found"}}
	case errors.Is(err, model.ErrPlayerNotFound):
		return &httpError{http.StatusNotFound, APIError{CodePlayerNotFound, "Player not found"}}
	case errors.Is(err, model.ErrUnknownDifficulty):
		return &httpError{http.StatusBadRequest, APIError{CodeUnknownDifficulty, "Unknown difficulty"}}
	case errors.Is(err, model.ErrNoSavedGame):
		return &httpError{http.StatusNotFound, APIError{CodeNoSavedGame, "No saved game to resume"}}
	case errors.Is(err, model.ErrMLEInUse):
		return &httpError{http.StatusConflict, APIError{CodeMLEInUse, "The MLE is already in use on another player"}}
	case errors.Is(err, model.ErrNotMLEEligible):
		return &httpError{http.StatusConflict, APIError{CodeNotMLEEligible, "Player is not MLE eligible"}}
	case errors.Is(err, model.ErrVetMinSlotsFull):
		return &httpError{http.StatusConflict, APIError{CodeVetMinSlotsFull, "All veteran minimum slots are in use"}}
	case errors.Is(err, model.ErrNotVetMinEligible):
		return &httpError{http.StatusConflict, APIError{CodeNotVetMinEligible, "Player is not veteran minimum eligible"}}
	case errors.Is(err, model.ErrNotSigned):
		return &httpError{http.StatusConflict, APIError{CodeNotSigned, "Player is not signed"}}
	case errors.Is(err, model.ErrTradePending):
		return &httpError{http.StatusConflict, APIError{CodeTradePending, "Resolve the pending trade first"}}
	case errors.Is(err, model.ErrNoTradePending):
		return &httpError{http.StatusConflict, APIError{CodeNoTradePending, "No trade is pending"}}
	case errors.Is(err, model.ErrNotTradeEligible):
		return &httpError{http.StatusConflict, APIError{CodeNotTradeEligible, "Only roster-origin players can be traded"}}
	case errors.Is(err, model.ErrAlreadyTraded):
		return &httpError{http.StatusConflict, APIError{CodeAlreadyTraded, "Player has already been traded"}}
	case errors.Is(err, model.ErrReturnNotAvailable):
		return &httpError{http.StatusConflict, APIError{CodeReturnNotAvailable, "Return player is not available"}}
	case errors.Is(err, model.ErrReturnSalaryTooHigh):
		return &httpError{http.StatusConflict, APIError{CodeReturnSalaryTooHigh, "Return salary exceeds the trade ceiling"}}
	case errors.Is(err, model.ErrRosterNotComplete):
		return &httpError{http.StatusConflict, APIError{CodeRosterNotComplete, "Roster does not satisfy the win conditions"}}

	// Map service errors
	case errors.Is(err, coach.ErrHintsDisabled):
		return &httpError{http.StatusConflict, APIError{CodeHintsDisabled, "Hints are disabled on this difficulty"}}
	case errors.Is(err, auth.ErrInvalidCredentials):
		return &httpError{http.StatusUnauthorized, APIError{CodeInvalidCredentials, "Invalid username or password"}}
	case errors.Is(err, auth.ErrInvalidToken):
		return &httpError{http.StatusUnauthorized, APIError{CodeUnauthorized, "Invalid or expired token"}}
	case errors.Is(err, auth.ErrUsernameExists):
		return &httpError{http.StatusConflict, APIError{CodeUsernameExists, "Username already exists"}}

	default:
		return &httpError{http.StatusInternalServerError, APIError{CodeInternalError, "Internal server error"}}
	}
}

// NewInvalidRequestError creates an invalid request error
func NewInvalidRequestError(message string) error {
	return &httpError{http.StatusBadRequest, APIError{CodeInvalidRequest, message}}
}

// NewUnauthorizedError creates an unauthorized error
func NewUnauthorizedError() error {
	return &httpError{http.StatusUnauthorized, APIError{CodeUnauthorized, "Authentication required"}}
}

// NewInternalError creates an internal server error
func NewInternalError() error {
	return &httpError{http.StatusInternalServerError, APIError{CodeInternalError, "Internal server error"}}
}
