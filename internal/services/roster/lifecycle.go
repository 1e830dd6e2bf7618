package roster

import (
	"context"
	"log/slog"

	"github.com/hoopgm/capcrash/internal/model"
)

// Undo pops the newest history snapshot and restores every listed
// player's mutable fields. It never pushes a snapshot of its own and
// there is no redo. Undoing with an empty stack is a no-op.
func (c *Controller) Undo(ctx context.Context, id model.SessionID) (*model.Session, error) {
	sess, err := c.storage.GetSession(ctx, id)
	if err != nil {
		return nil, err
	}
	cfg, err := model.DifficultyByKey(sess.Difficulty)
	if err != nil {
		return nil, err
	}
	if sess.PendingTradeID != 0 {
		return nil, model.ErrTradePending
	}

	snap, ok := sess.PopHistory()
	if !ok {
		return sess, nil
	}

	sess.RestoreSnapshot(snap)
	sess.UndoCount++

	if err := c.refresh(ctx, sess, cfg); err != nil {
		return nil, err
	}
	if err := c.storage.SaveSession(ctx, sess); err != nil {
		return nil, err
	}
	return sess, nil
}

// Reset abandons the current build and starts the session over on the
// same difficulty: fresh roster, new challenge draw, empty history.
func (c *Controller) Reset(ctx context.Context, id model.SessionID) (*model.Session, error) {
	sess, err := c.storage.GetSession(ctx, id)
	if err != nil {
		return nil, err
	}
	cfg, err := model.DifficultyByKey(sess.Difficulty)
	if err != nil {
		return nil, err
	}

	now := c.clock.Now()
	sess.Players = model.DefaultRoster()
	sess.Acquired = nil
	sess.PendingTradeID = 0
	sess.History = nil
	sess.HasWon = false
	sess.LastOutcome = nil
	sess.UndoCount = 0
	sess.MoveCount = 0
	sess.Challenges = c.drawChallenges()
	sess.StartedAt = now
	sess.Aggregates = c.capService.Compute(sess.SignedPlayers(), cfg)

	profile, err := c.profileFor(ctx, sess.Owner)
	if err != nil {
		return nil, err
	}
	profile.GamesPlayed++
	profile.SavedGame = savedGameOf(sess, now)
	profile.UpdatedAt = now
	if err := c.storage.SaveProfile(ctx, profile); err != nil {
		return nil, err
	}

	sess.UpdatedAt = now
	if err := c.storage.SaveSession(ctx, sess); err != nil {
		return nil, err
	}

	c.logger.Info("session reset", slog.String("session_id", string(sess.ID)))
	return sess, nil
}

// Simulate reruns the season classifier over the current winning
// roster ("simulate again"). Roster state is untouched; only the
// stored outcome changes.
func (c *Controller) Simulate(ctx context.Context, id model.SessionID) (*model.Session, *model.SeasonResult, error) {
	sess, err := c.storage.GetSession(ctx, id)
	if err != nil {
		return nil, nil, err
	}
	cfg, err := model.DifficultyByKey(sess.Difficulty)
	if err != nil {
		return nil, nil, err
	}
	if !sess.HasWon {
		return nil, nil, model.ErrRosterNotComplete
	}

	result := c.seasonService.Simulate(sess.Aggregates, marqueeSigned(sess), cfg)
	sess.LastOutcome = &result
	sess.UpdatedAt = c.clock.Now()
	if err := c.storage.SaveSession(ctx, sess); err != nil {
		return nil, nil, err
	}
	return sess, &result, nil
}

// ImportBuild creates a new session and applies a share code to it.
// Unknown tokens in the code are skipped; the resulting roster is
// recomputed and rule-checked like a resume (no win event replay).
func (c *Controller) ImportBuild(ctx context.Context, owner model.AccountID, key model.DifficultyKey, code string) (*model.Session, error) {
	sess, err := c.CreateSession(ctx, owner, key)
	if err != nil {
		return nil, err
	}
	cfg, err := model.DifficultyByKey(sess.Difficulty)
	if err != nil {
		return nil, err
	}

	model.ApplyBuild(sess, code)
	sess.Aggregates = c.capService.Compute(sess.SignedPlayers(), cfg)
	sess.HasWon = c.rulesService.Evaluate(sess.Aggregates, cfg).Win()
	sess.UpdatedAt = c.clock.Now()

	if err := c.storage.SaveSession(ctx, sess); err != nil {
		return nil, err
	}
	return sess, nil
}

// ChallengeStatus is a bonus objective with its current completion.
type ChallengeStatus struct {
	ID          model.ChallengeID `json:"id"`
	Name        string            `json:"name"`
	Description string            `json:"description"`
	Complete    bool              `json:"complete"`
}

// Challenges evaluates the session's bonus objectives for display.
// Challenges never gate the win condition.
func (c *Controller) Challenges(sess *model.Session) ([]ChallengeStatus, error) {
	cfg, err := model.DifficultyByKey(sess.Difficulty)
	if err != nil {
		return nil, err
	}

	var statuses []ChallengeStatus
	for _, id := range sess.Challenges {
		challenge, ok := model.ChallengeByID(id)
		if !ok {
			continue
		}
		statuses = append(statuses, ChallengeStatus{
			ID:          challenge.ID,
			Name:        challenge.Name,
			Description: challenge.Description,
			Complete:    challenge.Check(sess, cfg),
		})
	}
	return statuses, nil
}
