package rules

import (
	"github.com/hoopgm/capcrash/internal/model"
)

// Report holds the pass/fail result of each named win condition.
// PositionDiversity is only meaningful when Active says it is part of
// this difficulty's rule set.
type Report struct {
	RosterSize        bool `json:"roster_size"`
	UnderCap          bool `json:"under_cap"`
	StarsKept         bool `json:"stars_kept"`
	QualityPoints     bool `json:"quality_points"`
	PositionDiversity bool `json:"position_diversity"`

	PositionDiversityActive bool `json:"position_diversity_active"`
}

// Win is the conjunction of all active rules.
func (r Report) Win() bool {
	win := r.RosterSize && r.UnderCap && r.StarsKept && r.QualityPoints
	if r.PositionDiversityActive {
		win = win && r.PositionDiversity
	}
	return win
}

// Service evaluates the win condition from aggregates and config.
// Every rule is a pure predicate; the validator never mutates state.
type Service struct{}

// New creates a new rule validator
func New() *Service {
	return &Service{}
}

// Evaluate runs every rule against the aggregates.
func (s *Service) Evaluate(agg model.Aggregates, cfg model.DifficultyConfig) Report {
	report := Report{
		RosterSize:              agg.SignedCount >= cfg.RosterMin && agg.SignedCount <= cfg.RosterMax,
		UnderCap:                agg.PayrollExcludingBird <= cfg.SalaryCap,
		StarsKept:               agg.StarsSigned >= cfg.StarsRequired,
		QualityPoints:           agg.TotalQualityPoints >= cfg.QPMinimum,
		PositionDiversityActive: cfg.RequirePositionDiversity,
	}
	if report.PositionDiversityActive {
		report.PositionDiversity = agg.DistinctPositions() >= cfg.MinPositions
	}
	return report
}
