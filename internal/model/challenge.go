package model

// ChallengeID identifies a bonus objective
type ChallengeID string

// Challenge is an optional bonus objective: a pure predicate over the
// session and config. Challenges are displayed alongside the win
// conditions but never enforced by the rule validator.
type Challenge struct {
	ID          ChallengeID
	Name        string
	Description string
	Check       func(s *Session, cfg DifficultyConfig) bool
}

// ChallengesPerSession is how many bonus objectives a new game draws.
const ChallengesPerSession = 2

// AllChallenges returns every defined bonus objective.
func AllChallenges() []Challenge {
	return challenges
}

// ChallengeByID looks a challenge up; ok is false for unknown ids.
func ChallengeByID(id ChallengeID) (Challenge, bool) {
	for _, c := range challenges {
		if c.ID == id {
			return c, true
		}
	}
	return Challenge{}, false
}

var faStarIDs = []PlayerID{101, 102, 103, 104}

var challenges = []Challenge{
	{
		ID:          "no_fa_stars",
		Name:        "Hometown Heroes",
		Description: "Win without signing any free agent stars",
		Check: func(s *Session, _ DifficultyConfig) bool {
			for _, id := range faStarIDs {
				if p, err := s.FindPlayer(id); err == nil && p.Signed() {
					return false
				}
			}
			return true
		},
	},
	{
		ID:          "under_100m",
		Name:        "Penny Pincher",
		Description: "Win with total payroll under $100M",
		Check: func(s *Session, _ DifficultyConfig) bool {
			return s.Aggregates.TotalPayroll < 100_000_000
		},
	},
	{
		ID:          "all_positions",
		Name:        "Position Player",
		Description: "Sign at least one player from every position",
		Check: func(s *Session, _ DifficultyConfig) bool {
			positions := make(map[string]bool)
			for _, p := range s.SignedPlayers() {
				positions[p.Position] = true
			}
			return len(positions) >= 5
		},
	},
	{
		ID:          "max_qpts",
		Name:        "Quality Over Quantity",
		Description: "Reach 95+ Quality Points",
		Check: func(s *Session, _ DifficultyConfig) bool {
			return s.Aggregates.TotalQualityPoints >= 95
		},
	},
	{
		ID:          "min_roster",
		Name:        "Small Ball",
		Description: "Win with exactly the minimum number of players allowed",
		Check: func(s *Session, cfg DifficultyConfig) bool {
			return s.Aggregates.SignedCount == cfg.RosterMin
		},
	},
	{
		ID:          "no_exceptions",
		Name:        "No Shortcuts",
		Description: "Win without using MLE or Vet Min exceptions",
		Check: func(s *Session, _ DifficultyConfig) bool {
			return !s.Aggregates.MLEInUse && s.Aggregates.VetMinCount == 0
		},
	},
	{
		ID:          "all_three_stars",
		Name:        "Star Collector",
		Description: "Keep all 3 original stars on your roster",
		Check: func(s *Session, _ DifficultyConfig) bool {
			return s.Aggregates.StarsSigned >= 3
		},
	},
	{
		ID:          "budget_master",
		Name:        "Cap Wizard",
		Description: "Win with more than 20% cap space remaining",
		Check: func(s *Session, cfg DifficultyConfig) bool {
			return s.Aggregates.CapEfficiency(cfg) > 0.2
		},
	},
}
