package roster

import (
	"context"
	"errors"
	"log/slog"
	"time"

	"github.com/hoopgm/capcrash/internal/dependencies/clock"
	"github.com/hoopgm/capcrash/internal/dependencies/random"
	"github.com/hoopgm/capcrash/internal/model"
	"github.com/hoopgm/capcrash/internal/services/achievements"
	"github.com/hoopgm/capcrash/internal/services/cap"
	"github.com/hoopgm/capcrash/internal/services/rules"
	"github.com/hoopgm/capcrash/internal/services/season"
	"github.com/hoopgm/capcrash/internal/storage"
)

const sessionIDAlphabet = "ABCDEFGHIJKLMNOPQRSTUVWXYZ0123456789"

// Controller owns the session lifecycle and every roster mutation:
// sign/cut, exception toggles, the trade subsystem, undo, and the win
// transition. Each mutation runs to completion — validate, apply,
// recompute aggregates, evaluate rules, persist — before the next is
// processed; rejected mutations leave state untouched.
type Controller struct {
	storage      storage.Storage
	capService   *cap.Service
	rulesService *rules.Service
	seasonService *season.Service
	achievements *achievements.Service
	clock        clock.Clock
	random       random.Random
	logger       *slog.Logger
}

// NewController creates a new roster Controller
func NewController(
	storage storage.Storage,
	capService *cap.Service,
	rulesService *rules.Service,
	seasonService *season.Service,
	achievementsService *achievements.Service,
	clock clock.Clock,
	random random.Random,
	logger *slog.Logger,
) *Controller {
	return &Controller{
		storage:      storage,
		capService:   capService,
		rulesService: rulesService,
		seasonService: seasonService,
		achievements: achievementsService,
		clock:        clock,
		random:       random,
		logger:       logger,
	}
}

// CreateSession starts a fresh game: full fixture roster all Cut,
// empty history, and a random draw of bonus challenges.
func (c *Controller) CreateSession(ctx context.Context, owner model.AccountID, key model.DifficultyKey) (*model.Session, error) {
	if key == "" {
		key = model.DefaultDifficulty().Key
	}
	cfg, err := model.DifficultyByKey(key)
	if err != nil {
		return nil, err
	}

	now := c.clock.Now()
	sess := &model.Session{
		ID:         model.SessionID(c.random.String(12, sessionIDAlphabet)),
		Owner:      owner,
		Difficulty: cfg.Key,
		Players:    model.DefaultRoster(),
		Challenges: c.drawChallenges(),
		StartedAt:  now,
		CreatedAt:  now,
		UpdatedAt:  now,
	}
	sess.Aggregates = c.capService.Compute(sess.SignedPlayers(), cfg)

	profile, err := c.profileFor(ctx, owner)
	if err != nil {
		return nil, err
	}
	profile.GamesPlayed++
	profile.SavedGame = savedGameOf(sess, now)
	profile.UpdatedAt = now
	if err := c.storage.SaveProfile(ctx, profile); err != nil {
		return nil, err
	}

	if err := c.storage.SaveSession(ctx, sess); err != nil {
		return nil, err
	}

	c.logger.Info("session created",
		slog.String("session_id", string(sess.ID)),
		slog.String("difficulty", string(cfg.Key)),
	)
	return sess, nil
}

// ResumeSession rebuilds a session from the profile's saved game.
// Saves older than the retention window are discarded; player ids the
// save never mentions stay Cut with no exceptions.
func (c *Controller) ResumeSession(ctx context.Context, owner model.AccountID) (*model.Session, error) {
	profile, err := c.profileFor(ctx, owner)
	if err != nil {
		return nil, err
	}
	saved := profile.SavedGame
	if saved == nil {
		return nil, model.ErrNoSavedGame
	}

	now := c.clock.Now()
	if saved.Expired(now) {
		profile.SavedGame = nil
		profile.UpdatedAt = now
		if err := c.storage.SaveProfile(ctx, profile); err != nil {
			return nil, err
		}
		return nil, model.ErrNoSavedGame
	}

	cfg, err := model.DifficultyByKey(saved.Difficulty)
	if err != nil {
		return nil, err
	}

	sess := &model.Session{
		ID:         model.SessionID(c.random.String(12, sessionIDAlphabet)),
		Owner:      owner,
		Difficulty: cfg.Key,
		Players:    model.DefaultRoster(),
		Challenges: saved.Challenges,
		StartedAt:  now,
		CreatedAt:  now,
		UpdatedAt:  now,
	}

	for _, ps := range saved.Players {
		if p, err := sess.FindPlayer(ps.ID); err == nil {
			sess.SetStatus(p, ps.Status)
			if p.Signed() {
				p.UseMLE = ps.UseMLE
				p.UseVetMin = ps.UseVetMin
			}
		}
	}
	for _, as := range saved.Acquired {
		for i := range sess.Players {
			fixture := &sess.Players[i]
			if fixture.ID != as.ID || fixture.IsRosterOrigin || sess.IsAcquired(as.ID) {
				continue
			}
			acquired := model.AcquiredPlayer{Player: *fixture, TradedAwayID: as.TradedAwayID}
			acquired.Status = as.Status
			if acquired.Signed() {
				acquired.UseMLE = as.UseMLE
				acquired.UseVetMin = as.UseVetMin
			}
			sess.Acquired = append(sess.Acquired, acquired)
		}
	}

	// Resume restores state, it does not replay the win event
	sess.Aggregates = c.capService.Compute(sess.SignedPlayers(), cfg)
	sess.HasWon = c.rulesService.Evaluate(sess.Aggregates, cfg).Win()

	if err := c.storage.SaveSession(ctx, sess); err != nil {
		return nil, err
	}

	c.logger.Info("session resumed",
		slog.String("session_id", string(sess.ID)),
		slog.String("difficulty", string(cfg.Key)),
	)
	return sess, nil
}

// GetSession retrieves a session by ID
func (c *Controller) GetSession(ctx context.Context, id model.SessionID) (*model.Session, error) {
	return c.storage.GetSession(ctx, id)
}

// Rules evaluates the current win-condition report for a session.
func (c *Controller) Rules(sess *model.Session) (rules.Report, error) {
	cfg, err := model.DifficultyByKey(sess.Difficulty)
	if err != nil {
		return rules.Report{}, err
	}
	return c.rulesService.Evaluate(sess.Aggregates, cfg), nil
}

// Sign moves a player to Signed status. Origin players already traded
// away cannot come back.
func (c *Controller) Sign(ctx context.Context, id model.SessionID, playerID model.PlayerID) (*model.Session, error) {
	return c.mutate(ctx, id, func(sess *model.Session, cfg model.DifficultyConfig) error {
		p, err := sess.FindPlayer(playerID)
		if err != nil {
			return err
		}
		if p.Status == model.StatusTraded {
			return model.ErrAlreadyTraded
		}
		if p.Signed() {
			return nil
		}
		sess.PushHistory()
		sess.SetStatus(p, model.StatusSigned)
		return nil
	})
}

// Cut moves a player to Cut status, clearing any exceptions.
func (c *Controller) Cut(ctx context.Context, id model.SessionID, playerID model.PlayerID) (*model.Session, error) {
	return c.mutate(ctx, id, func(sess *model.Session, cfg model.DifficultyConfig) error {
		p, err := sess.FindPlayer(playerID)
		if err != nil {
			return err
		}
		if p.Status == model.StatusTraded {
			return model.ErrAlreadyTraded
		}
		if p.Status == model.StatusCut {
			return nil
		}
		sess.PushHistory()
		sess.SetStatus(p, model.StatusCut)
		return nil
	})
}

// SetMLE toggles the Mid-Level Exception on a signed player. Only one
// player may carry it at a time; enabling it clears that player's Vet
// Min. Rejections leave the session untouched.
func (c *Controller) SetMLE(ctx context.Context, id model.SessionID, playerID model.PlayerID, enabled bool) (*model.Session, error) {
	return c.mutate(ctx, id, func(sess *model.Session, cfg model.DifficultyConfig) error {
		p, err := sess.FindPlayer(playerID)
		if err != nil {
			return err
		}
		if p.UseMLE == enabled {
			return nil
		}
		if enabled {
			if !p.Signed() {
				return model.ErrNotSigned
			}
			if !p.MLEEligible {
				return model.ErrNotMLEEligible
			}
			if sess.Aggregates.MLEInUse && sess.Aggregates.MLEPlayerID != playerID {
				return model.ErrMLEInUse
			}
		}
		sess.PushHistory()
		p.UseMLE = enabled
		if enabled {
			p.UseVetMin = false
		}
		return nil
	})
}

// SetVetMin toggles a Veteran Minimum deal on a signed player, bounded
// by the difficulty's slot count. Enabling it clears the player's MLE.
func (c *Controller) SetVetMin(ctx context.Context, id model.SessionID, playerID model.PlayerID, enabled bool) (*model.Session, error) {
	return c.mutate(ctx, id, func(sess *model.Session, cfg model.DifficultyConfig) error {
		p, err := sess.FindPlayer(playerID)
		if err != nil {
			return err
		}
		if p.UseVetMin == enabled {
			return nil
		}
		if enabled {
			if !p.Signed() {
				return model.ErrNotSigned
			}
			if !p.VetMinEligible {
				return model.ErrNotVetMinEligible
			}
			if sess.Aggregates.VetMinCount >= cfg.VetMinSlots {
				return model.ErrVetMinSlotsFull
			}
		}
		sess.PushHistory()
		p.UseVetMin = enabled
		if enabled {
			p.UseMLE = false
		}
		return nil
	})
}

// drawChallenges picks the session's bonus objectives at random.
func (c *Controller) drawChallenges() []model.ChallengeID {
	all := model.AllChallenges()
	for i := len(all) - 1; i > 0; i-- {
		j := c.random.Intn(i + 1)
		all[i], all[j] = all[j], all[i]
	}
	count := model.ChallengesPerSession
	if count > len(all) {
		count = len(all)
	}
	ids := make([]model.ChallengeID, count)
	for i := 0; i < count; i++ {
		ids[i] = all[i].ID
	}
	return ids
}

// Profile returns the owner's durable record, creating an empty one
// on first use without persisting it.
func (c *Controller) Profile(ctx context.Context, owner model.AccountID) (*model.Profile, error) {
	return c.profileFor(ctx, owner)
}

// profileFor loads the owner's profile, creating one on first use.
func (c *Controller) profileFor(ctx context.Context, owner model.AccountID) (*model.Profile, error) {
	profile, err := c.storage.GetProfile(ctx, owner)
	if errors.Is(err, model.ErrProfileNotFound) {
		return model.NewProfile(owner, c.clock.Now()), nil
	}
	if err != nil {
		return nil, err
	}
	return profile, nil
}

// mutate is the shared mutation pipeline: load, guard the pending
// trade, apply, recompute aggregates, run the win transition, and
// persist session plus auto-save. fn must validate before touching
// the session so rejected mutations observe no state change.
func (c *Controller) mutate(ctx context.Context, id model.SessionID, fn func(*model.Session, model.DifficultyConfig) error) (*model.Session, error) {
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

	if err := fn(sess, cfg); err != nil {
		return nil, err
	}

	sess.MoveCount++
	if err := c.refresh(ctx, sess, cfg); err != nil {
		return nil, err
	}
	if err := c.storage.SaveSession(ctx, sess); err != nil {
		return nil, err
	}
	return sess, nil
}

// refresh recomputes aggregates, evaluates the rule set, and handles
// the win transition. The win event fires on every not-won to won
// edge; a rule regression resets the flag so the event can fire again
// on a later re-win.
func (c *Controller) refresh(ctx context.Context, sess *model.Session, cfg model.DifficultyConfig) error {
	now := c.clock.Now()
	sess.Aggregates = c.capService.Compute(sess.SignedPlayers(), cfg)
	report := c.rulesService.Evaluate(sess.Aggregates, cfg)

	profile, err := c.profileFor(ctx, sess.Owner)
	if err != nil {
		return err
	}

	if report.Win() && !sess.HasWon {
		sess.HasWon = true
		result := c.seasonService.Simulate(sess.Aggregates, marqueeSigned(sess), cfg)
		sess.LastOutcome = &result

		profile.RecordWin(cfg.Key, result, sess.Aggregates.TotalQualityPoints, sess.Aggregates.CapEfficiency(cfg), now)
		earned := c.achievements.CheckAll(achievements.Input{
			Session: sess,
			Config:  cfg,
			Result:  &result,
			Profile: profile,
			Now:     now,
		})
		for _, a := range earned {
			profile.AddAchievement(a.ID)
		}

		c.logger.Info("roster complete",
			slog.String("session_id", string(sess.ID)),
			slog.String("tier", string(result.Tier)),
			slog.String("claim_code", result.ClaimCode),
			slog.Int("new_achievements", len(earned)),
		)
	} else if !report.Win() {
		sess.HasWon = false
	}

	profile.SavedGame = savedGameOf(sess, now)
	profile.UpdatedAt = now
	if err := c.storage.SaveProfile(ctx, profile); err != nil {
		return err
	}

	sess.UpdatedAt = now
	return nil
}

// marqueeSigned reports whether a designated marquee free agent is on
// the signed roster.
func marqueeSigned(sess *model.Session) bool {
	for _, p := range sess.SignedPlayers() {
		if p.Marquee {
			return true
		}
	}
	return false
}

// savedGameOf builds the persistence snapshot for auto-save.
func savedGameOf(sess *model.Session, now time.Time) *model.SavedGame {
	snap := sess.Snapshot()
	saved := &model.SavedGame{
		Difficulty: sess.Difficulty,
		Players:    snap.Players,
		Challenges: sess.Challenges,
		SavedAt:    now,
	}
	for i := range sess.Acquired {
		saved.Acquired = append(saved.Acquired, model.AcquiredSnapshot{
			PlayerSnapshot: snap.Acquired[i],
			TradedAwayID:   sess.Acquired[i].TradedAwayID,
		})
	}
	return saved
}
