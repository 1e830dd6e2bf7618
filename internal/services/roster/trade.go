package roster

import (
	"context"
	"log/slog"

	"github.com/hoopgm/capcrash/internal/model"
)

// TradeCandidate is one possible return player for a proposed trade.
type TradeCandidate struct {
	ID            model.PlayerID `json:"id"`
	Name          string         `json:"name"`
	Position      string         `json:"position"`
	Salary        int64          `json:"salary"`
	QualityPoints int            `json:"quality_points"`
	Eligible      bool           `json:"eligible"`
}

// TradeProposal lists the return options for a pending trade. The
// ceiling is 125% of the outgoing salary, boundary inclusive.
type TradeProposal struct {
	OutgoingID      model.PlayerID   `json:"outgoing_id"`
	OutgoingSalary  int64            `json:"outgoing_salary"`
	MaxReturnSalary int64            `json:"max_return_salary"`
	Candidates      []TradeCandidate `json:"candidates"`
}

// ProposeTrade marks an origin player as pending trade and returns the
// candidate pool. Until the trade is confirmed or canceled, every
// other mutation on the session is rejected.
func (c *Controller) ProposeTrade(ctx context.Context, id model.SessionID, playerID model.PlayerID) (*model.Session, *TradeProposal, error) {
	sess, err := c.storage.GetSession(ctx, id)
	if err != nil {
		return nil, nil, err
	}
	if sess.PendingTradeID != 0 {
		return nil, nil, model.ErrTradePending
	}

	p, err := sess.FindPlayer(playerID)
	if err != nil {
		return nil, nil, err
	}
	if !p.IsRosterOrigin || sess.IsAcquired(playerID) {
		return nil, nil, model.ErrNotTradeEligible
	}
	if p.Status == model.StatusTraded {
		return nil, nil, model.ErrAlreadyTraded
	}

	sess.PendingTradeID = playerID
	sess.UpdatedAt = c.clock.Now()
	if err := c.storage.SaveSession(ctx, sess); err != nil {
		return nil, nil, err
	}

	return sess, c.buildProposal(sess, p), nil
}

// ConfirmTrade executes the pending trade: the origin player is sent
// away (terminal) and the chosen return player joins the acquired
// pool as Cut with no exceptions.
func (c *Controller) ConfirmTrade(ctx context.Context, id model.SessionID, returnID model.PlayerID) (*model.Session, error) {
	sess, err := c.storage.GetSession(ctx, id)
	if err != nil {
		return nil, err
	}
	cfg, err := model.DifficultyByKey(sess.Difficulty)
	if err != nil {
		return nil, err
	}
	if sess.PendingTradeID == 0 {
		return nil, model.ErrNoTradePending
	}

	outgoing, err := sess.FindPlayer(sess.PendingTradeID)
	if err != nil {
		return nil, err
	}

	var returnPlayer *model.Player
	for i := range sess.Players {
		p := &sess.Players[i]
		if p.ID == returnID && !p.IsRosterOrigin && !p.Signed() && !sess.IsAcquired(p.ID) {
			returnPlayer = p
			break
		}
	}
	if returnPlayer == nil {
		return nil, model.ErrReturnNotAvailable
	}
	if returnPlayer.Salary > outgoing.MaxReturnSalary() {
		return nil, model.ErrReturnSalaryTooHigh
	}

	sess.PushHistory()
	sess.SetStatus(outgoing, model.StatusTraded)

	acquired := model.AcquiredPlayer{Player: *returnPlayer, TradedAwayID: outgoing.ID}
	acquired.Status = model.StatusCut
	acquired.UseMLE = false
	acquired.UseVetMin = false
	sess.Acquired = append(sess.Acquired, acquired)

	sess.PendingTradeID = 0
	sess.MoveCount++

	if err := c.refresh(ctx, sess, cfg); err != nil {
		return nil, err
	}
	if err := c.storage.SaveSession(ctx, sess); err != nil {
		return nil, err
	}

	c.logger.Info("trade executed",
		slog.String("session_id", string(sess.ID)),
		slog.Int("outgoing", int(outgoing.ID)),
		slog.Int("acquired", int(returnID)),
	)
	return sess, nil
}

// CancelTrade clears the pending-trade marker. The origin player
// never left its pre-trade status, so cancellation is a pure revert.
func (c *Controller) CancelTrade(ctx context.Context, id model.SessionID) (*model.Session, error) {
	sess, err := c.storage.GetSession(ctx, id)
	if err != nil {
		return nil, err
	}
	if sess.PendingTradeID == 0 {
		return nil, model.ErrNoTradePending
	}

	sess.PendingTradeID = 0
	sess.UpdatedAt = c.clock.Now()
	if err := c.storage.SaveSession(ctx, sess); err != nil {
		return nil, err
	}
	return sess, nil
}

func (c *Controller) buildProposal(sess *model.Session, outgoing *model.Player) *TradeProposal {
	ceiling := outgoing.MaxReturnSalary()
	proposal := &TradeProposal{
		OutgoingID:      outgoing.ID,
		OutgoingSalary:  outgoing.Salary,
		MaxReturnSalary: ceiling,
	}

	for i := range sess.Players {
		p := &sess.Players[i]
		if p.IsRosterOrigin || p.Signed() || sess.IsAcquired(p.ID) {
			continue
		}
		proposal.Candidates = append(proposal.Candidates, TradeCandidate{
			ID:            p.ID,
			Name:          p.Name,
			Position:      p.Position,
			Salary:        p.Salary,
			QualityPoints: p.QualityPoints,
			Eligible:      p.Salary <= ceiling,
		})
	}
	return proposal
}
