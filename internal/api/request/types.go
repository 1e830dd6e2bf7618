package request

// CreateGuestRequest is the request body for creating a guest account
type CreateGuestRequest struct {
	DisplayName string `json:"display_name"`
}

// RegisterRequest is the request body for registering an account
type RegisterRequest struct {
	Username    string `json:"username"`
	Password    string `json:"password"`
	DisplayName string `json:"display_name"`
}

// LoginRequest is the request body for logging in
type LoginRequest struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

// CreateSessionRequest is the request body for starting a new game
type CreateSessionRequest struct {
	Difficulty string `json:"difficulty,omitempty"`
}

// SetExceptionRequest is the request body for toggling the MLE or a
// Vet Min deal on a player
type SetExceptionRequest struct {
	Enabled bool `json:"enabled"`
}

// ConfirmTradeRequest is the request body for confirming a trade
type ConfirmTradeRequest struct {
	ReturnPlayerID int `json:"return_player_id"`
}

// ImportBuildRequest is the request body for importing a shared build
type ImportBuildRequest struct {
	Difficulty string `json:"difficulty,omitempty"`
	Code       string `json:"code"`
}
