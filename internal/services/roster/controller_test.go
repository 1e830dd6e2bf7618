package roster

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/suite"

	"github.com/hoopgm/capcrash/internal/dependencies/mocks"
	"github.com/hoopgm/capcrash/internal/model"
	"github.com/hoopgm/capcrash/internal/services/achievements"
	"github.com/hoopgm/capcrash/internal/services/cap"
	"github.com/hoopgm/capcrash/internal/services/rules"
	"github.com/hoopgm/capcrash/internal/services/season"
	"github.com/hoopgm/capcrash/internal/storage/memory"
	"github.com/hoopgm/capcrash/internal/testutil"
)

const testOwner = model.AccountID("a_test")

type ControllerSuite struct {
	suite.Suite
	controller *Controller
	storage    *memory.Storage
	clock      *mocks.MockClock
	random     *mocks.MockRandom
	ctx        context.Context
}

func TestControllerSuite(t *testing.T) {
	suite.Run(t, new(ControllerSuite))
}

func (s *ControllerSuite) SetupTest() {
	s.storage = memory.New()
	s.clock = mocks.NewMockClock(time.Date(2025, 1, 1, 12, 0, 0, 0, time.UTC))
	s.random = mocks.NewMockRandom()
	s.controller = NewController(
		s.storage,
		cap.New(),
		rules.New(),
		season.New(s.random),
		achievements.New(),
		s.clock,
		s.random,
		testutil.NopLogger(),
	)
	s.ctx = context.Background()
}

// newSession creates a session with a known id on the given difficulty.
func (s *ControllerSuite) newSession(key model.DifficultyKey) *model.Session {
	s.random.QueueString("GAME1")
	sess, err := s.controller.CreateSession(s.ctx, testOwner, key)
	s.Require().NoError(err)
	return sess
}

func (s *ControllerSuite) sign(id model.SessionID, players ...model.PlayerID) *model.Session {
	var sess *model.Session
	var err error
	for _, p := range players {
		sess, err = s.controller.Sign(s.ctx, id, p)
		s.Require().NoError(err)
	}
	return sess
}

func (s *ControllerSuite) TestCreateSession() {
	sess := s.newSession(model.DifficultyPro)

	s.Equal(model.SessionID("GAME1"), sess.ID)
	s.Equal(testOwner, sess.Owner)
	s.Equal(model.DifficultyPro, sess.Difficulty)
	s.Len(sess.Players, 22)
	for _, p := range sess.Players {
		s.Equal(model.StatusCut, p.Status)
	}
	s.Equal(int64(0), sess.Aggregates.TotalPayroll)
	s.Len(sess.Challenges, model.ChallengesPerSession)
	s.False(sess.HasWon)

	profile, err := s.storage.GetProfile(s.ctx, testOwner)
	s.Require().NoError(err)
	s.Equal(1, profile.GamesPlayed)
	s.NotNil(profile.SavedGame)
}

func (s *ControllerSuite) TestCreateSessionDefaultsToPro() {
	s.random.QueueString("GAME1")
	sess, err := s.controller.CreateSession(s.ctx, testOwner, "")
	s.Require().NoError(err)
	s.Equal(model.DifficultyPro, sess.Difficulty)
}

func (s *ControllerSuite) TestCreateSessionUnknownDifficulty() {
	_, err := s.controller.CreateSession(s.ctx, testOwner, "mythic")
	s.ErrorIs(err, model.ErrUnknownDifficulty)
}

func (s *ControllerSuite) TestDeterministicChallengeDraw() {
	// An exhausted mock shuffles with all-zero draws
	sess := s.newSession(model.DifficultyPro)

	s.Equal([]model.ChallengeID{"under_100m", "all_positions"}, sess.Challenges)
}

func (s *ControllerSuite) TestSignAndCut() {
	sess := s.newSession(model.DifficultyPro)

	sess, err := s.controller.Sign(s.ctx, sess.ID, 1)
	s.Require().NoError(err)

	p, err := sess.FindPlayer(1)
	s.Require().NoError(err)
	s.True(p.Signed())
	// Brunson has Bird Rights: full payroll yes, cap-counted no
	s.Equal(int64(25_000_000), sess.Aggregates.TotalPayroll)
	s.Equal(int64(0), sess.Aggregates.PayrollExcludingBird)
	s.Equal(1, sess.Aggregates.StarsSigned)
	s.Equal(1, sess.MoveCount)

	sess, err = s.controller.Cut(s.ctx, sess.ID, 1)
	s.Require().NoError(err)
	p, err = sess.FindPlayer(1)
	s.Require().NoError(err)
	s.Equal(model.StatusCut, p.Status)
	s.Equal(int64(0), sess.Aggregates.TotalPayroll)
}

func (s *ControllerSuite) TestSignUnknownPlayer() {
	sess := s.newSession(model.DifficultyPro)

	_, err := s.controller.Sign(s.ctx, sess.ID, 999)
	s.ErrorIs(err, model.ErrPlayerNotFound)
}

func (s *ControllerSuite) TestCutClearsExceptions() {
	sess := s.newSession(model.DifficultyPro)
	s.sign(sess.ID, 9)

	_, err := s.controller.SetVetMin(s.ctx, sess.ID, 9, true)
	s.Require().NoError(err)

	sess, err = s.controller.Cut(s.ctx, sess.ID, 9)
	s.Require().NoError(err)
	p, err := sess.FindPlayer(9)
	s.Require().NoError(err)
	s.False(p.UseVetMin)
}

func (s *ControllerSuite) TestMLESingleHolder() {
	sess := s.newSession(model.DifficultyPro)
	s.sign(sess.ID, 8, 9)

	sess, err := s.controller.SetMLE(s.ctx, sess.ID, 8, true)
	s.Require().NoError(err)
	s.True(sess.Aggregates.MLEInUse)
	s.Equal(model.PlayerID(8), sess.Aggregates.MLEPlayerID)
	// Achiuwa's $6M halves under the Pro discount
	s.Equal(int64(6_100_000), sess.Aggregates.TotalPayroll)

	before := *sess
	_, err = s.controller.SetMLE(s.ctx, sess.ID, 9, true)
	s.ErrorIs(err, model.ErrMLEInUse)

	// Rejected mutations leave the session untouched
	after, err := s.controller.GetSession(s.ctx, sess.ID)
	s.Require().NoError(err)
	s.Equal(before.MoveCount, after.MoveCount)
	s.Equal(before.Aggregates, after.Aggregates)

	// Moving the MLE requires releasing it first
	_, err = s.controller.SetMLE(s.ctx, sess.ID, 8, false)
	s.Require().NoError(err)
	sess, err = s.controller.SetMLE(s.ctx, sess.ID, 9, true)
	s.Require().NoError(err)
	s.Equal(model.PlayerID(9), sess.Aggregates.MLEPlayerID)
}

func (s *ControllerSuite) TestMLEGuards() {
	sess := s.newSession(model.DifficultyPro)

	// Not signed
	_, err := s.controller.SetMLE(s.ctx, sess.ID, 8, true)
	s.ErrorIs(err, model.ErrNotSigned)

	// Signed but not eligible
	s.sign(sess.ID, 1)
	_, err = s.controller.SetMLE(s.ctx, sess.ID, 1, true)
	s.ErrorIs(err, model.ErrNotMLEEligible)
}

func (s *ControllerSuite) TestExceptionsMutuallyExclusive() {
	sess := s.newSession(model.DifficultyPro)
	s.sign(sess.ID, 9)

	_, err := s.controller.SetMLE(s.ctx, sess.ID, 9, true)
	s.Require().NoError(err)

	sess, err = s.controller.SetVetMin(s.ctx, sess.ID, 9, true)
	s.Require().NoError(err)
	p, err := sess.FindPlayer(9)
	s.Require().NoError(err)
	s.True(p.UseVetMin)
	s.False(p.UseMLE)
}

func (s *ControllerSuite) TestVetMinSlotsBounded() {
	sess := s.newSession(model.DifficultyPro)
	s.sign(sess.ID, 9, 10, 11, 12)

	for _, id := range []model.PlayerID{9, 10, 11} {
		_, err := s.controller.SetVetMin(s.ctx, sess.ID, id, true)
		s.Require().NoError(err)
	}

	_, err := s.controller.SetVetMin(s.ctx, sess.ID, 12, true)
	s.ErrorIs(err, model.ErrVetMinSlotsFull)

	// Freeing a slot makes room
	_, err = s.controller.SetVetMin(s.ctx, sess.ID, 9, false)
	s.Require().NoError(err)
	_, err = s.controller.SetVetMin(s.ctx, sess.ID, 12, true)
	s.NoError(err)
}

func (s *ControllerSuite) TestVetMinGuards() {
	sess := s.newSession(model.DifficultyPro)
	s.sign(sess.ID, 1)

	_, err := s.controller.SetVetMin(s.ctx, sess.ID, 1, true)
	s.ErrorIs(err, model.ErrNotVetMinEligible)

	_, err = s.controller.SetVetMin(s.ctx, sess.ID, 108, true)
	s.ErrorIs(err, model.ErrNotSigned)
}

func (s *ControllerSuite) TestProposeTrade() {
	sess := s.newSession(model.DifficultyPro)
	s.sign(sess.ID, 3)

	// Bridges at $23.3M caps returns at $29,125,000 inclusive
	sess, proposal, err := s.controller.ProposeTrade(s.ctx, sess.ID, 3)
	s.Require().NoError(err)
	s.Equal(model.PlayerID(3), sess.PendingTradeID)
	s.Equal(int64(29_125_000), proposal.MaxReturnSalary)

	eligible := make(map[model.PlayerID]bool)
	for _, c := range proposal.Candidates {
		eligible[c.ID] = c.Eligible
	}
	s.True(eligible[105])  // Monk $20M
	s.True(eligible[106])  // Lopez $23M
	s.False(eligible[101]) // LeBron $50M
	s.False(eligible[104]) // Lillard $45M
}

func (s *ControllerSuite) TestProposeTradeGuards() {
	sess := s.newSession(model.DifficultyPro)

	// Free agents can never be sent out
	_, _, err := s.controller.ProposeTrade(s.ctx, sess.ID, 101)
	s.ErrorIs(err, model.ErrNotTradeEligible)

	_, _, err = s.controller.ProposeTrade(s.ctx, sess.ID, 3)
	s.Require().NoError(err)

	// Only one trade at a time
	_, _, err = s.controller.ProposeTrade(s.ctx, sess.ID, 4)
	s.ErrorIs(err, model.ErrTradePending)
}

func (s *ControllerSuite) TestPendingTradeBlocksMutations() {
	sess := s.newSession(model.DifficultyPro)
	_, _, err := s.controller.ProposeTrade(s.ctx, sess.ID, 3)
	s.Require().NoError(err)

	_, err = s.controller.Sign(s.ctx, sess.ID, 1)
	s.ErrorIs(err, model.ErrTradePending)

	_, err = s.controller.SetMLE(s.ctx, sess.ID, 8, true)
	s.ErrorIs(err, model.ErrTradePending)

	_, err = s.controller.Undo(s.ctx, sess.ID)
	s.ErrorIs(err, model.ErrTradePending)
}

func (s *ControllerSuite) TestConfirmTrade() {
	sess := s.newSession(model.DifficultyPro)
	s.sign(sess.ID, 3)
	_, _, err := s.controller.ProposeTrade(s.ctx, sess.ID, 3)
	s.Require().NoError(err)

	// Over the ceiling: rejected, trade stays pending
	_, err = s.controller.ConfirmTrade(s.ctx, sess.ID, 101)
	s.ErrorIs(err, model.ErrReturnSalaryTooHigh)

	sess, err = s.controller.ConfirmTrade(s.ctx, sess.ID, 105)
	s.Require().NoError(err)
	s.Equal(model.PlayerID(0), sess.PendingTradeID)

	outgoing, err := sess.FindPlayer(3)
	s.Require().NoError(err)
	s.Equal(model.StatusTraded, outgoing.Status)

	s.Require().Len(sess.Acquired, 1)
	s.Equal(model.PlayerID(105), sess.Acquired[0].ID)
	s.Equal(model.PlayerID(3), sess.Acquired[0].TradedAwayID)
	s.Equal(model.StatusCut, sess.Acquired[0].Status)

	// The acquired player signs like anyone else
	sess = s.sign(sess.ID, 105)
	s.Equal(int64(20_000_000), sess.Aggregates.TotalPayroll)
}

func (s *ControllerSuite) TestTradedPlayerIsTerminal() {
	sess := s.newSession(model.DifficultyPro)
	_, _, err := s.controller.ProposeTrade(s.ctx, sess.ID, 3)
	s.Require().NoError(err)
	_, err = s.controller.ConfirmTrade(s.ctx, sess.ID, 105)
	s.Require().NoError(err)

	_, err = s.controller.Sign(s.ctx, sess.ID, 3)
	s.ErrorIs(err, model.ErrAlreadyTraded)

	_, _, err = s.controller.ProposeTrade(s.ctx, sess.ID, 3)
	s.ErrorIs(err, model.ErrAlreadyTraded)

	// Acquired players cannot be flipped
	_, _, err = s.controller.ProposeTrade(s.ctx, sess.ID, 105)
	s.ErrorIs(err, model.ErrNotTradeEligible)
}

func (s *ControllerSuite) TestCancelTrade() {
	sess := s.newSession(model.DifficultyPro)

	_, err := s.controller.CancelTrade(s.ctx, sess.ID)
	s.ErrorIs(err, model.ErrNoTradePending)

	_, _, err = s.controller.ProposeTrade(s.ctx, sess.ID, 3)
	s.Require().NoError(err)

	sess, err = s.controller.CancelTrade(s.ctx, sess.ID)
	s.Require().NoError(err)
	s.Equal(model.PlayerID(0), sess.PendingTradeID)

	_, err = s.controller.Sign(s.ctx, sess.ID, 1)
	s.NoError(err)
}

func (s *ControllerSuite) TestConfirmWithoutPending() {
	sess := s.newSession(model.DifficultyPro)

	_, err := s.controller.ConfirmTrade(s.ctx, sess.ID, 105)
	s.ErrorIs(err, model.ErrNoTradePending)
}

func (s *ControllerSuite) TestUndoRestoresState() {
	sess := s.newSession(model.DifficultyPro)
	s.sign(sess.ID, 1, 3)

	sess, err := s.controller.Undo(s.ctx, sess.ID)
	s.Require().NoError(err)
	s.Equal(1, sess.UndoCount)

	p1, _ := sess.FindPlayer(1)
	p3, _ := sess.FindPlayer(3)
	s.True(p1.Signed())
	s.Equal(model.StatusCut, p3.Status)
	s.Equal(int64(25_000_000), sess.Aggregates.TotalPayroll)

	sess, err = s.controller.Undo(s.ctx, sess.ID)
	s.Require().NoError(err)
	p1, _ = sess.FindPlayer(1)
	s.Equal(model.StatusCut, p1.Status)
}

func (s *ControllerSuite) TestUndoEmptyStackIsNoop() {
	sess := s.newSession(model.DifficultyPro)

	sess, err := s.controller.Undo(s.ctx, sess.ID)
	s.Require().NoError(err)
	s.Equal(0, sess.UndoCount)
}

func (s *ControllerSuite) TestUndoRevertsExceptionToggle() {
	sess := s.newSession(model.DifficultyPro)
	s.sign(sess.ID, 8)
	_, err := s.controller.SetMLE(s.ctx, sess.ID, 8, true)
	s.Require().NoError(err)

	sess, err = s.controller.Undo(s.ctx, sess.ID)
	s.Require().NoError(err)
	p, _ := sess.FindPlayer(8)
	s.True(p.Signed())
	s.False(p.UseMLE)
	s.False(sess.Aggregates.MLEInUse)
}

func (s *ControllerSuite) TestUndoRevertsTrade() {
	sess := s.newSession(model.DifficultyPro)
	s.sign(sess.ID, 3)
	_, _, err := s.controller.ProposeTrade(s.ctx, sess.ID, 3)
	s.Require().NoError(err)
	_, err = s.controller.ConfirmTrade(s.ctx, sess.ID, 105)
	s.Require().NoError(err)

	sess, err = s.controller.Undo(s.ctx, sess.ID)
	s.Require().NoError(err)

	p3, _ := sess.FindPlayer(3)
	s.True(p3.Signed())
	s.Empty(sess.Acquired)
}

// winningSigns is a ten-player build that satisfies every Pro rule on
// the final signing: 85 Q-Pts, two stars, cap-counted payroll 71M.
var winningSigns = []model.PlayerID{1, 3, 4, 5, 6, 7, 8, 9, 10, 11}

func (s *ControllerSuite) TestWinTransition() {
	sess := s.newSession(model.DifficultyPro)
	sess = s.sign(sess.ID, winningSigns[:9]...)
	s.False(sess.HasWon)

	s.random.QueueFloat64(0.5)
	sess = s.sign(sess.ID, winningSigns[9])

	s.True(sess.HasWon)
	s.Require().NotNil(sess.LastOutcome)
	s.Equal(model.TierContender, sess.LastOutcome.Tier)
	s.Equal("PRO-CONTEND", sess.LastOutcome.ClaimCode)

	profile, err := s.storage.GetProfile(s.ctx, testOwner)
	s.Require().NoError(err)
	s.Equal(1, profile.GamesWon)
	s.True(profile.DifficultiesBeaten[model.DifficultyPro])
	s.Require().Len(profile.ClaimCodes, 1)
	s.Equal("PRO-CONTEND", profile.ClaimCodes[0].Code)
	s.Equal(85, profile.BestScores[model.DifficultyPro].QualityPoints)

	s.Contains(profile.Achievements, model.AchievementID("first_win"))
	s.Contains(profile.Achievements, model.AchievementID("pro_clear"))
	s.Contains(profile.Achievements, model.AchievementID("no_mle"))
	s.Contains(profile.Achievements, model.AchievementID("no_undo"))
	s.Contains(profile.Achievements, model.AchievementID("speed_run"))
}

func (s *ControllerSuite) TestWinEventRefiresAfterRegression() {
	sess := s.newSession(model.DifficultyPro)
	s.random.QueueFloat64(0.5)
	sess = s.sign(sess.ID, winningSigns...)
	s.Require().True(sess.HasWon)

	// Dropping below the roster minimum revokes the win
	sess, err := s.controller.Cut(s.ctx, sess.ID, 11)
	s.Require().NoError(err)
	s.False(sess.HasWon)

	s.random.QueueFloat64(0.5)
	sess = s.sign(sess.ID, 11)
	s.True(sess.HasWon)

	profile, err := s.storage.GetProfile(s.ctx, testOwner)
	s.Require().NoError(err)
	s.Equal(2, profile.GamesWon)
	s.Len(profile.ClaimCodes, 2)
}

func (s *ControllerSuite) TestSimulateAgain() {
	sess := s.newSession(model.DifficultyPro)

	_, _, err := s.controller.Simulate(s.ctx, sess.ID)
	s.ErrorIs(err, model.ErrRosterNotComplete)

	s.random.QueueFloat64(0.5)
	s.sign(sess.ID, winningSigns...)

	// A hot rerun of the same roster can land a different tier
	s.random.QueueFloat64(0.99)
	sess, result, err := s.controller.Simulate(s.ctx, sess.ID)
	s.Require().NoError(err)
	s.Equal(model.TierChampionship, result.Tier)
	s.Equal(result, sess.LastOutcome)
	s.True(sess.HasWon)
}

func (s *ControllerSuite) TestResumeSession() {
	sess := s.newSession(model.DifficultyPro)
	s.sign(sess.ID, 1, 9)
	_, err := s.controller.SetVetMin(s.ctx, sess.ID, 9, true)
	s.Require().NoError(err)

	s.clock.Advance(48 * time.Hour)
	s.random.QueueString("GAME2")
	resumed, err := s.controller.ResumeSession(s.ctx, testOwner)
	s.Require().NoError(err)

	s.Equal(model.SessionID("GAME2"), resumed.ID)
	s.Equal(model.DifficultyPro, resumed.Difficulty)
	s.Equal(s.clock.Now(), resumed.StartedAt)

	p1, _ := resumed.FindPlayer(1)
	p9, _ := resumed.FindPlayer(9)
	s.True(p1.Signed())
	s.True(p9.UseVetMin)
	s.Equal(int64(27_000_000), resumed.Aggregates.TotalPayroll)
}

func (s *ControllerSuite) TestResumeRestoresTrade() {
	sess := s.newSession(model.DifficultyPro)
	_, _, err := s.controller.ProposeTrade(s.ctx, sess.ID, 3)
	s.Require().NoError(err)
	_, err = s.controller.ConfirmTrade(s.ctx, sess.ID, 105)
	s.Require().NoError(err)
	s.sign(sess.ID, 105)

	s.random.QueueString("GAME2")
	resumed, err := s.controller.ResumeSession(s.ctx, testOwner)
	s.Require().NoError(err)

	s.Require().Len(resumed.Acquired, 1)
	s.Equal(model.PlayerID(105), resumed.Acquired[0].ID)
	s.Equal(model.PlayerID(3), resumed.Acquired[0].TradedAwayID)
	s.True(resumed.Acquired[0].Signed())

	p3, _ := resumed.FindPlayer(3)
	s.Equal(model.StatusTraded, p3.Status)
}

func (s *ControllerSuite) TestResumeExpiredSave() {
	sess := s.newSession(model.DifficultyPro)
	s.sign(sess.ID, 1)

	s.clock.Advance(model.SavedGameMaxAge + time.Hour)
	_, err := s.controller.ResumeSession(s.ctx, testOwner)
	s.ErrorIs(err, model.ErrNoSavedGame)

	// The stale save is discarded for good
	profile, err := s.storage.GetProfile(s.ctx, testOwner)
	s.Require().NoError(err)
	s.Nil(profile.SavedGame)
}

func (s *ControllerSuite) TestResumeWithoutSave() {
	_, err := s.controller.ResumeSession(s.ctx, model.AccountID("a_fresh"))
	s.ErrorIs(err, model.ErrNoSavedGame)
}

func (s *ControllerSuite) TestReset() {
	sess := s.newSession(model.DifficultyPro)
	s.sign(sess.ID, 1, 3, 9)

	sess, err := s.controller.Reset(s.ctx, sess.ID)
	s.Require().NoError(err)

	for _, p := range sess.Players {
		s.Equal(model.StatusCut, p.Status)
	}
	s.Empty(sess.Acquired)
	s.Empty(sess.History)
	s.Equal(0, sess.MoveCount)
	s.Equal(0, sess.UndoCount)
	s.False(sess.HasWon)
	s.Equal(int64(0), sess.Aggregates.TotalPayroll)

	profile, err := s.storage.GetProfile(s.ctx, testOwner)
	s.Require().NoError(err)
	s.Equal(2, profile.GamesPlayed)
}

func (s *ControllerSuite) TestImportBuild() {
	s.random.QueueString("GAME9")
	sess, err := s.controller.ImportBuild(s.ctx, testOwner, model.DifficultyPro, "1,3,9v")
	s.Require().NoError(err)

	p1, _ := sess.FindPlayer(1)
	p3, _ := sess.FindPlayer(3)
	p9, _ := sess.FindPlayer(9)
	s.True(p1.Signed())
	s.True(p3.Signed())
	s.True(p9.UseVetMin)
	s.False(sess.HasWon)
	s.Equal(3, sess.Aggregates.SignedCount)
}

func (s *ControllerSuite) TestChallengeEvaluation() {
	sess := s.newSession(model.DifficultyPro)
	s.sign(sess.ID, 9)
	sess, err := s.controller.GetSession(s.ctx, sess.ID)
	s.Require().NoError(err)

	statuses, err := s.controller.Challenges(sess)
	s.Require().NoError(err)
	s.Require().Len(statuses, 2)
	s.Equal(model.ChallengeID("under_100m"), statuses[0].ID)
	s.True(statuses[0].Complete)
	s.Equal(model.ChallengeID("all_positions"), statuses[1].ID)
	s.False(statuses[1].Complete)
}

func (s *ControllerSuite) TestProfileCreatedLazily() {
	profile, err := s.controller.Profile(s.ctx, model.AccountID("a_new"))
	s.Require().NoError(err)
	s.Equal(0, profile.GamesPlayed)

	// First use does not persist
	_, err = s.storage.GetProfile(s.ctx, model.AccountID("a_new"))
	s.ErrorIs(err, model.ErrProfileNotFound)
}
