package achievements

import (
	"time"

	"github.com/hoopgm/capcrash/internal/model"
)

// Achievement is a badge definition: a pure predicate over the final
// session, config, season result, and profile. Definitions never
// mutate anything; the caller records newly earned ids.
type Achievement struct {
	ID          model.AchievementID `json:"id"`
	Name        string              `json:"name"`
	Description string              `json:"description"`

	check func(in Input) bool
}

// Input bundles everything a check can look at.
type Input struct {
	Session *model.Session
	Config  model.DifficultyConfig
	Result  *model.SeasonResult
	Profile *model.Profile
	Now     time.Time
}

// Service evaluates achievements on win.
type Service struct{}

// New creates a new achievement evaluator
func New() *Service {
	return &Service{}
}

// All returns every achievement definition.
func (s *Service) All() []Achievement {
	return definitions
}

// CheckAll returns the achievements qualified by this win that the
// profile has not already earned. It does not modify the profile.
func (s *Service) CheckAll(in Input) []Achievement {
	var earned []Achievement
	for _, a := range definitions {
		if in.Profile.HasAchievement(a.ID) {
			continue
		}
		if a.check(in) {
			earned = append(earned, a)
		}
	}
	return earned
}

func signedWithID(s *model.Session, id model.PlayerID) bool {
	p, err := s.FindPlayer(id)
	return err == nil && p.Signed()
}

var definitions = []Achievement{
	{
		ID: "first_win", Name: "First W",
		Description: "Win your first game on any difficulty",
		check:       func(Input) bool { return true },
	},
	{
		ID: "rookie_clear", Name: "Rookie GM",
		Description: "Beat Rookie mode",
		check:       func(in Input) bool { return in.Config.Key == model.DifficultyRookie },
	},
	{
		ID: "pro_clear", Name: "Pro GM",
		Description: "Beat Pro mode",
		check:       func(in Input) bool { return in.Config.Key == model.DifficultyPro },
	},
	{
		ID: "legend_clear", Name: "Legend GM",
		Description: "Beat Legend mode",
		check:       func(in Input) bool { return in.Config.Key == model.DifficultyLegend },
	},
	{
		ID: "all_three", Name: "Triple Threat",
		Description: "Beat all three difficulty levels",
		check: func(in Input) bool {
			beaten := in.Profile.DifficultiesBeaten
			return beaten[model.DifficultyRookie] && beaten[model.DifficultyPro] && beaten[model.DifficultyLegend]
		},
	},
	{
		ID: "budget_hawk", Name: "Budget Hawk",
		Description: "Win with 20%+ cap space remaining",
		check: func(in Input) bool {
			return in.Session.Aggregates.CapEfficiency(in.Config) > 0.2
		},
	},
	{
		ID: "star_power", Name: "Star Power",
		Description: "Sign all 3 original stars in one game",
		check:       func(in Input) bool { return in.Session.Aggregates.StarsSigned >= 3 },
	},
	{
		ID: "lebron_signing", Name: "King of New York",
		Description: "Sign LeBron James",
		check:       func(in Input) bool { return signedWithID(in.Session, 101) },
	},
	{
		ID: "curry_signing", Name: "Chef in the Garden",
		Description: "Sign Stephen Curry",
		check:       func(in Input) bool { return signedWithID(in.Session, 102) },
	},
	{
		ID: "no_mle", Name: "No Coupons Needed",
		Description: "Win without using the MLE",
		check:       func(in Input) bool { return !in.Session.Aggregates.MLEInUse },
	},
	{
		ID: "vet_squad", Name: "Old School",
		Description: "Use all available Vet Min slots in a winning roster",
		check: func(in Input) bool {
			return in.Session.Aggregates.VetMinCount >= in.Config.VetMinSlots
		},
	},
	{
		ID: "dynasty", Name: "Dynasty Builder",
		Description: "Reach Dynasty tier on any difficulty",
		check: func(in Input) bool {
			return in.Result != nil && in.Result.Tier == model.TierDynasty
		},
	},
	{
		ID: "perfect_legend", Name: "GOAT GM",
		Description: "Reach Dynasty tier on Legend mode",
		check: func(in Input) bool {
			return in.Config.Key == model.DifficultyLegend && in.Result != nil && in.Result.Tier == model.TierDynasty
		},
	},
	{
		ID: "no_undo", Name: "No Regrets",
		Description: "Win without using undo once",
		check:       func(in Input) bool { return in.Session.UndoCount == 0 },
	},
	{
		ID: "speed_run", Name: "Fast Break",
		Description: "Win within 60 seconds of starting",
		check: func(in Input) bool {
			return in.Now.Sub(in.Session.StartedAt) < time.Minute
		},
	},
}
