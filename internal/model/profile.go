package model

import "time"

// AchievementID identifies an earned badge
type AchievementID string

// BestScore is the best winning result recorded for one difficulty.
type BestScore struct {
	QualityPoints int     `json:"quality_points"`
	CapEfficiency float64 `json:"cap_efficiency"`
	Tier          Tier    `json:"tier,omitempty"`
}

// ClaimCode is a reward token issued on a win.
type ClaimCode struct {
	Code       string        `json:"code"`
	Difficulty DifficultyKey `json:"difficulty"`
	Tier       Tier          `json:"tier"`
	EarnedAt   time.Time     `json:"earned_at"`
}

// Profile is the durable per-account record: play history, earned
// rewards, and the auto-saved game for resume.
type Profile struct {
	AccountID AccountID `json:"account_id"`

	GamesPlayed        int                         `json:"games_played"`
	GamesWon           int                         `json:"games_won"`
	DifficultiesBeaten map[DifficultyKey]bool      `json:"difficulties_beaten"`
	BestScores         map[DifficultyKey]BestScore `json:"best_scores"`
	ClaimCodes         []ClaimCode                 `json:"claim_codes"`
	Achievements       []AchievementID             `json:"achievements"`

	SavedGame *SavedGame `json:"saved_game,omitempty"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// NewProfile creates an empty profile for an account.
func NewProfile(accountID AccountID, now time.Time) *Profile {
	return &Profile{
		AccountID:          accountID,
		DifficultiesBeaten: make(map[DifficultyKey]bool),
		BestScores:         make(map[DifficultyKey]BestScore),
		CreatedAt:          now,
		UpdatedAt:          now,
	}
}

// HasAchievement reports whether the badge is already earned.
func (p *Profile) HasAchievement(id AchievementID) bool {
	for _, a := range p.Achievements {
		if a == id {
			return true
		}
	}
	return false
}

// AddAchievement records a badge. Returns true when newly earned.
func (p *Profile) AddAchievement(id AchievementID) bool {
	if p.HasAchievement(id) {
		return false
	}
	p.Achievements = append(p.Achievements, id)
	return true
}

// RecordWin updates win counters, difficulty flags, best scores, and
// appends the claim code. Called on every win event; the beaten flag
// and best-score comparison keep repeats idempotent where it matters.
func (p *Profile) RecordWin(key DifficultyKey, result SeasonResult, qpts int, capEfficiency float64, now time.Time) {
	p.GamesWon++
	p.DifficultiesBeaten[key] = true

	if best := p.BestScores[key]; qpts > best.QualityPoints {
		p.BestScores[key] = BestScore{
			QualityPoints: qpts,
			CapEfficiency: capEfficiency,
			Tier:          result.Tier,
		}
	}

	p.ClaimCodes = append(p.ClaimCodes, ClaimCode{
		Code:       result.ClaimCode,
		Difficulty: key,
		Tier:       result.Tier,
		EarnedAt:   now,
	})
	p.UpdatedAt = now
}
