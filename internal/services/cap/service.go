package cap

import (
	"github.com/hoopgm/capcrash/internal/model"
)

// Service is the cap accounting engine: it derives per-player
// effective salaries and team-wide aggregates from the signed roster
// and the active difficulty configuration. Compute has no side
// effects; callers persist the result into the session.
type Service struct{}

// New creates a new cap accounting service
func New() *Service {
	return &Service{}
}

// Compute aggregates every signed player in the given set.
//
// The cap-constrained sum excludes the effective salary of
// Bird-Rights-eligible players, but charges the config's flat
// processing fee per Bird Rights sign when the fee is nonzero
// (Legend behavior).
//
// Mutual exclusion of MLE and Vet Min is enforced at mutation time,
// not revalidated here.
func (s *Service) Compute(players []*model.Player, cfg model.DifficultyConfig) model.Aggregates {
	agg := model.Aggregates{
		PositionCounts: make(map[model.PositionGroup]int),
	}

	for _, p := range players {
		if !p.Signed() {
			continue
		}
		agg.SignedCount++

		effective := p.EffectiveSalary(cfg)
		agg.TotalPayroll += effective

		if p.BirdEligible {
			agg.PayrollExcludingBird += cfg.BirdRightsFee
		} else {
			agg.PayrollExcludingBird += effective
		}

		agg.TotalQualityPoints += p.QualityPoints

		if p.IsStar {
			agg.StarsSigned++
		}
		if p.Group != "" {
			agg.PositionCounts[p.Group]++
		}

		if p.UseMLE {
			agg.MLEInUse = true
			agg.MLEPlayerID = p.ID
		} else if p.UseVetMin {
			agg.VetMinCount++
		}
	}

	return agg
}
