package response

import (
	"time"

	"github.com/hoopgm/capcrash/internal/model"
	"github.com/hoopgm/capcrash/internal/services/achievements"
	"github.com/hoopgm/capcrash/internal/services/auth"
	"github.com/hoopgm/capcrash/internal/services/roster"
	"github.com/hoopgm/capcrash/internal/services/rules"
)

// Account represents an account in API responses
type Account struct {
	ID          string `json:"id"`
	DisplayName string `json:"display_name"`
	IsGuest     bool   `json:"is_guest"`
}

// AccountFromModel converts a model.Account to a response Account
func AccountFromModel(a *model.Account) Account {
	return Account{
		ID:          string(a.ID),
		DisplayName: a.DisplayName,
		IsGuest:     a.IsGuest,
	}
}

// AuthResponse is the response for authentication endpoints
type AuthResponse struct {
	Account Account   `json:"account"`
	Token   string    `json:"token"`
	Expires time.Time `json:"expires"`
}

// AuthResponseFromToken creates an AuthResponse from a login token
func AuthResponseFromToken(t *auth.Token) AuthResponse {
	return AuthResponse{
		Account: AccountFromModel(&t.Account),
		Token:   t.Value,
		Expires: t.ExpiresAt,
	}
}

// Player represents a player in API responses
type Player struct {
	ID            int    `json:"id"`
	Name          string `json:"name"`
	Number        int    `json:"number"`
	Position      string `json:"position"`
	Group         string `json:"group"`
	Salary        int64  `json:"salary"`
	QualityPoints int    `json:"quality_points"`

	IsStar         bool `json:"is_star"`
	IsRosterOrigin bool `json:"is_roster_origin"`
	Marquee        bool `json:"marquee,omitempty"`
	BirdEligible   bool `json:"bird_eligible"`
	VetMinEligible bool `json:"vet_min_eligible"`
	MLEEligible    bool `json:"mle_eligible"`

	Status    string `json:"status"`
	UseMLE    bool   `json:"use_mle"`
	UseVetMin bool   `json:"use_vet_min"`

	// EffectiveSalary is the cap hit after exceptions; CapCounted is
	// false when Bird Rights keep the salary off the cap-constrained
	// payroll.
	EffectiveSalary int64 `json:"effective_salary"`
	CapCounted      bool  `json:"cap_counted"`

	TradedAwayID int `json:"traded_away_id,omitempty"`
}

// PlayerFromModel converts a model.Player to a response Player
func PlayerFromModel(p *model.Player, cfg model.DifficultyConfig) Player {
	return Player{
		ID:              int(p.ID),
		Name:            p.Name,
		Number:          p.Number,
		Position:        p.Position,
		Group:           string(p.Group),
		Salary:          p.Salary,
		QualityPoints:   p.QualityPoints,
		IsStar:          p.IsStar,
		IsRosterOrigin:  p.IsRosterOrigin,
		Marquee:         p.Marquee,
		BirdEligible:    p.BirdEligible,
		VetMinEligible:  p.VetMinEligible,
		MLEEligible:     p.MLEEligible,
		Status:          string(p.Status),
		UseMLE:          p.UseMLE,
		UseVetMin:       p.UseVetMin,
		EffectiveSalary: p.EffectiveSalary(cfg),
		CapCounted:      !p.BirdEligible,
	}
}

// Aggregates represents team-wide totals in API responses
type Aggregates struct {
	TotalPayroll         int64          `json:"total_payroll"`
	PayrollExcludingBird int64          `json:"payroll_excluding_bird"`
	TotalQualityPoints   int            `json:"total_quality_points"`
	SignedCount          int            `json:"signed_count"`
	StarsSigned          int            `json:"stars_signed"`
	PositionCounts       map[string]int `json:"position_counts"`
	MLEInUse             bool           `json:"mle_in_use"`
	MLEPlayerID          int            `json:"mle_player_id,omitempty"`
	VetMinCount          int            `json:"vet_min_count"`
	CapEfficiency        float64        `json:"cap_efficiency"`
	CapRoom              int64          `json:"cap_room"`
}

// AggregatesFromModel converts model.Aggregates
func AggregatesFromModel(a model.Aggregates, cfg model.DifficultyConfig) Aggregates {
	counts := make(map[string]int, len(a.PositionCounts))
	for g, n := range a.PositionCounts {
		counts[string(g)] = n
	}
	return Aggregates{
		TotalPayroll:         a.TotalPayroll,
		PayrollExcludingBird: a.PayrollExcludingBird,
		TotalQualityPoints:   a.TotalQualityPoints,
		SignedCount:          a.SignedCount,
		StarsSigned:          a.StarsSigned,
		PositionCounts:       counts,
		MLEInUse:             a.MLEInUse,
		MLEPlayerID:          int(a.MLEPlayerID),
		VetMinCount:          a.VetMinCount,
		CapEfficiency:        a.CapEfficiency(cfg),
		CapRoom:              cfg.SalaryCap - a.PayrollExcludingBird,
	}
}

// Difficulty represents a difficulty configuration in API responses
type Difficulty struct {
	Key           string `json:"key"`
	Label         string `json:"label"`
	Description   string `json:"description"`
	SalaryCap     int64  `json:"salary_cap"`
	QPMinimum     int    `json:"qp_minimum"`
	RosterMin     int    `json:"roster_min"`
	RosterMax     int    `json:"roster_max"`
	StarsRequired int    `json:"stars_required"`
	VetMinSlots   int    `json:"vet_min_slots"`
	HintsMode     string `json:"hints_mode"`
}

// DifficultyFromModel converts model.DifficultyConfig
func DifficultyFromModel(cfg model.DifficultyConfig) Difficulty {
	return Difficulty{
		Key:           string(cfg.Key),
		Label:         cfg.Label,
		Description:   cfg.Description,
		SalaryCap:     cfg.SalaryCap,
		QPMinimum:     cfg.QPMinimum,
		RosterMin:     cfg.RosterMin,
		RosterMax:     cfg.RosterMax,
		StarsRequired: cfg.StarsRequired,
		VetMinSlots:   cfg.VetMinSlots,
		HintsMode:     string(cfg.HintsMode),
	}
}

// Session represents a game session in API responses
type Session struct {
	ID             string     `json:"id"`
	Difficulty     Difficulty `json:"difficulty"`
	Players        []Player   `json:"players"`
	PendingTradeID int        `json:"pending_trade_id,omitempty"`

	Aggregates Aggregates   `json:"aggregates"`
	Rules      rules.Report `json:"rules"`
	HasWon     bool         `json:"has_won"`

	LastOutcome *model.SeasonResult      `json:"last_outcome,omitempty"`
	Challenges  []roster.ChallengeStatus `json:"challenges"`

	HistoryDepth int `json:"history_depth"`
	UndoCount    int `json:"undo_count"`
	MoveCount    int `json:"move_count"`

	StartedAt time.Time `json:"started_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// SessionFromModel builds the full session view: origin roster first,
// then trade acquisitions, with the rule report and challenge status
// evaluated by the caller.
func SessionFromModel(s *model.Session, cfg model.DifficultyConfig, report rules.Report, challenges []roster.ChallengeStatus) Session {
	players := make([]Player, 0, len(s.Players)+len(s.Acquired))
	for i := range s.Players {
		p := &s.Players[i]
		// Acquired free agents replace their pool entry in the view
		if !p.IsRosterOrigin && s.IsAcquired(p.ID) {
			continue
		}
		players = append(players, PlayerFromModel(p, cfg))
	}
	for i := range s.Acquired {
		view := PlayerFromModel(&s.Acquired[i].Player, cfg)
		view.TradedAwayID = int(s.Acquired[i].TradedAwayID)
		players = append(players, view)
	}

	return Session{
		ID:             string(s.ID),
		Difficulty:     DifficultyFromModel(cfg),
		Players:        players,
		PendingTradeID: int(s.PendingTradeID),
		Aggregates:     AggregatesFromModel(s.Aggregates, cfg),
		Rules:          report,
		HasWon:         s.HasWon,
		LastOutcome:    s.LastOutcome,
		Challenges:     challenges,
		HistoryDepth:   len(s.History),
		UndoCount:      s.UndoCount,
		MoveCount:      s.MoveCount,
		StartedAt:      s.StartedAt,
		UpdatedAt:      s.UpdatedAt,
	}
}

// TradeProposalResponse is the response for proposing a trade
type TradeProposalResponse struct {
	Session  Session               `json:"session"`
	Proposal *roster.TradeProposal `json:"proposal"`
}

// SimulateResponse is the response for re-running the season
type SimulateResponse struct {
	Result  *model.SeasonResult `json:"result"`
	Session Session             `json:"session"`
}

// HintResponse is the response for a coach hint request
type HintResponse struct {
	Hint string   `json:"hint"`
	Tips []string `json:"tips"`
}

// ShareResponse carries a build code for sharing
type ShareResponse struct {
	Code string `json:"code"`
}

// Profile represents an account's durable record in API responses
type Profile struct {
	GamesPlayed        int                       `json:"games_played"`
	GamesWon           int                       `json:"games_won"`
	DifficultiesBeaten []string                  `json:"difficulties_beaten"`
	BestScores         map[string]model.BestScore `json:"best_scores"`
	ClaimCodes         []model.ClaimCode         `json:"claim_codes"`
	Achievements       []string                  `json:"achievements"`
	HasSavedGame       bool                      `json:"has_saved_game"`
}

// ProfileFromModel converts a model.Profile
func ProfileFromModel(p *model.Profile, now time.Time) Profile {
	beaten := make([]string, 0, len(p.DifficultiesBeaten))
	for key, ok := range p.DifficultiesBeaten {
		if ok {
			beaten = append(beaten, string(key))
		}
	}
	best := make(map[string]model.BestScore, len(p.BestScores))
	for key, score := range p.BestScores {
		best[string(key)] = score
	}
	earned := make([]string, len(p.Achievements))
	for i, id := range p.Achievements {
		earned[i] = string(id)
	}
	return Profile{
		GamesPlayed:        p.GamesPlayed,
		GamesWon:           p.GamesWon,
		DifficultiesBeaten: beaten,
		BestScores:         best,
		ClaimCodes:         p.ClaimCodes,
		Achievements:       earned,
		HasSavedGame:       p.SavedGame != nil && !p.SavedGame.Expired(now),
	}
}

// AchievementStatus is a badge definition with its earned flag
type AchievementStatus struct {
	ID          string `json:"id"`
	Name        string `json:"name"`
	Description string `json:"description"`
	Earned      bool   `json:"earned"`
}

// AchievementsFromModel pairs every definition with the profile's
// earned set
func AchievementsFromModel(defs []achievements.Achievement, p *model.Profile) []AchievementStatus {
	statuses := make([]AchievementStatus, len(defs))
	for i, a := range defs {
		statuses[i] = AchievementStatus{
			ID:          string(a.ID),
			Name:        a.Name,
			Description: a.Description,
			Earned:      p.HasAchievement(a.ID),
		}
	}
	return statuses
}
