package coach

import (
	"errors"
	"fmt"

	"github.com/hoopgm/capcrash/internal/model"
)

// ErrHintsDisabled is returned when the active difficulty turns
// hints off entirely.
var ErrHintsDisabled = errors.New("hints are disabled on this difficulty")

// Service generates contextual coaching tips from the current
// aggregates and config. Tips are purely advisory: the service never
// mutates a session and the rule validator never consults it.
type Service struct{}

// New creates a new coach service
func New() *Service {
	return &Service{}
}

// Tips returns every tip that currently applies, most urgent first.
func (s *Service) Tips(sess *model.Session, cfg model.DifficultyConfig) ([]string, error) {
	if cfg.HintsMode == model.HintsNone {
		return nil, ErrHintsDisabled
	}

	agg := sess.Aggregates
	var tips []string

	if agg.SignedCount == 0 && sess.MoveCount == 0 {
		tips = append(tips, "Start with your own roster players. They have Bird Rights, so their salary doesn't count against the cap!")
	}
	if sess.MoveCount >= 2 && agg.StarsSigned == 0 {
		tips = append(tips, fmt.Sprintf("Don't forget to sign your stars! You need at least %d of them to win.", cfg.StarsRequired))
	}
	if agg.SignedCount >= 3 && agg.TotalQualityPoints < cfg.QPMinimum/2 {
		tips = append(tips, "Your Quality Points are low. Look for high Q-Point players to close the gap.")
	}
	if agg.PayrollExcludingBird > cfg.SalaryCap {
		tips = append(tips, "You're OVER the salary cap! Cut expensive players or lean on cap exceptions. Bird Rights players don't count against the cap.")
	} else if float64(agg.PayrollExcludingBird) > float64(cfg.SalaryCap)*0.9 {
		tips = append(tips, "You're getting close to the salary cap. The MLE and Vet Min deals can stretch your budget.")
	}
	if agg.SignedCount > 0 && agg.SignedCount < cfg.RosterMin && sess.MoveCount >= 5 {
		tips = append(tips, fmt.Sprintf("You need at least %d players on your roster. Keep signing!", cfg.RosterMin))
	}
	if agg.SignedCount > cfg.RosterMax {
		tips = append(tips, fmt.Sprintf("Too many players! Your roster can have at most %d. Cut or trade someone.", cfg.RosterMax))
	}
	if !agg.MLEInUse && sess.MoveCount >= 3 && float64(agg.PayrollExcludingBird) > float64(cfg.SalaryCap)*0.7 {
		tips = append(tips, "You haven't used your MLE yet. Apply it to an eligible player to shrink their cap hit.")
	}
	if agg.VetMinCount == 0 && sess.MoveCount >= 5 && agg.SignedCount < cfg.RosterMin {
		tips = append(tips, fmt.Sprintf("Need depth cheaply? Vet Min deals sign up to %d low-impact players at a flat cost.", cfg.VetMinSlots))
	}
	if agg.TotalQualityPoints >= cfg.QPMinimum &&
		agg.SignedCount >= cfg.RosterMin && agg.SignedCount <= cfg.RosterMax &&
		agg.StarsSigned >= cfg.StarsRequired {
		tips = append(tips, "Looking good, GM! Check the rule list - you might be ready to complete the season.")
	}

	if len(tips) == 0 {
		tips = append(tips, "Keep building! Balance quality and cost to create a winning roster.")
	}
	return tips, nil
}

// Hint returns the single most relevant tip.
func (s *Service) Hint(sess *model.Session, cfg model.DifficultyConfig) (string, error) {
	tips, err := s.Tips(sess, cfg)
	if err != nil {
		return "", err
	}
	return tips[0], nil
}
