package model

import "errors"

// Common errors used across the application
var (
	// Account errors
	ErrAccountNotFound = errors.New("account not found")
	ErrProfileNotFound = errors.New("profile not found")

	// Session errors
	ErrSessionNotFound   = errors.New("session not found")
	ErrPlayerNotFound    = errors.New("player not found")
	ErrUnknownDifficulty = errors.New("unknown difficulty")
	ErrNoSavedGame       = errors.New("no saved game to resume")

	// Exception assignment conflicts
	ErrMLEInUse        = errors.New("the MLE is already in use on another player")
	ErrNotMLEEligible  = errors.New("player is not MLE eligible")
	ErrVetMinSlotsFull = errors.New("all veteran minimum slots are in use")
	ErrNotVetMinEligible = errors.New("player is not veteran minimum eligible")
	ErrNotSigned       = errors.New("player is not signed")

	// Trade errors
	ErrTradePending        = errors.New("a trade is pending and must be confirmed or canceled")
	ErrNoTradePending      = errors.New("no trade is pending")
	ErrNotTradeEligible    = errors.New("only roster-origin players can be traded")
	ErrAlreadyTraded       = errors.New("player has already been traded")
	ErrReturnNotAvailable  = errors.New("return player is not available")
	ErrReturnSalaryTooHigh = errors.New("return salary exceeds the trade ratio ceiling")

	// Simulation errors
	ErrRosterNotComplete = errors.New("roster does not satisfy the win conditions")

	// Share code errors
	ErrInvalidShareCode = errors.New("invalid share code")
)
