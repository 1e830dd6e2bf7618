package handler

import (
	"net/http"

	"github.com/hoopgm/capcrash/internal/api/apierr"
)

// Re-export from apierr for convenience
type APIError = apierr.APIError
type ErrorResponse = apierr.ErrorResponse

// Re-export error codes
const (
	CodeInvalidRequest      = apierr.CodeInvalidRequest
	CodeUnauthorized        = apierr.CodeUnauthorized
	CodeSessionNotFound     = apierr.CodeSessionNotFound
	CodePlayerNotFound      = apierr.CodePlayerNotFound
	CodeUnknownDifficulty   = apierr.CodeUnknownDifficulty
	CodeNoSavedGame         = apierr.CodeNoSavedGame
	CodeMLEInUse            = apierr.CodeMLEInUse
	CodeNotMLEEligible      = apierr.CodeNotMLEEligible
	CodeVetMinSlotsFull     = apierr.CodeVetMinSlotsFull
	CodeNotVetMinEligible   = apierr.CodeNotVetMinEligible
	CodeNotSigned           = apierr.CodeNotSigned
	CodeTradePending        = apierr.CodeTradePending
	CodeNoTradePending      = apierr.CodeNoTradePending
	CodeNotTradeEligible    = apierr.CodeNotTradeEligible
	CodeAlreadyTraded       = apierr.CodeAlreadyTraded
	CodeReturnNotAvailable  = apierr.CodeReturnNotAvailable
	CodeReturnSalaryTooHigh = apierr.CodeReturnSalaryTooHigh
	CodeRosterNotComplete   = apierr.CodeRosterNotComplete
	CodeHintsDisabled       = apierr.CodeHintsDisabled
	CodeUsernameExists      = apierr.CodeUsernameExists
	CodeInvalidCredentials  = apierr.CodeInvalidCredentials
	CodeInternalError       = apierr.CodeInternalError
)

// WriteError writes an error response to the response writer
func WriteError(w http.ResponseWriter, err error) {
	apierr.WriteError(w, err)
}

// NewInvalidRequestError creates an invalid request error
func NewInvalidRequestError(message string) error {
	return apierr.NewInvalidRequestError(message)
}

// NewUnauthorizedError creates an unauthorized error
func NewUnauthorizedError() error {
	return apierr.NewUnauthorizedError()
}

// NewInternalError creates an internal server error
func NewInternalError() error {
	return apierr.NewInternalError()
}
