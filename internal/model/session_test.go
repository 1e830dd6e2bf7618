package model

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testSession(key DifficultyKey) *Session {
	return &Session{
		ID:         "SESS1",
		Owner:      "a_test",
		Difficulty: key,
		Players:    DefaultRoster(),
	}
}

func TestDefaultRosterStartsCut(t *testing.T) {
	players := DefaultRoster()
	require.Len(t, players, 22)
	for _, p := range players {
		assert.Equal(t, StatusCut, p.Status)
		assert.False(t, p.UseMLE)
		assert.False(t, p.UseVetMin)
	}
}

func TestDefaultRosterReturnsFreshCopies(t *testing.T) {
	first := DefaultRoster()
	first[0].Status = StatusSigned

	second := DefaultRoster()
	assert.Equal(t, StatusCut, second[0].Status)
}

func TestFindPlayerPrefersAcquiredCopy(t *testing.T) {
	sess := testSession(DifficultyPro)

	acquired := AcquiredPlayer{TradedAwayID: 3}
	acquired.Player = sess.Players[12] // free agent 101
	acquired.Status = StatusSigned
	sess.Acquired = append(sess.Acquired, acquired)

	p, err := sess.FindPlayer(101)
	require.NoError(t, err)
	assert.Equal(t, StatusSigned, p.Status)
	assert.True(t, sess.IsAcquired(101))
}

func TestFindPlayerUnknownID(t *testing.T) {
	sess := testSession(DifficultyPro)
	_, err := sess.FindPlayer(999)
	assert.ErrorIs(t, err, ErrPlayerNotFound)
}

func TestSetStatusClearsExceptionsOnLeavingSigned(t *testing.T) {
	sess := testSession(DifficultyPro)
	p, err := sess.FindPlayer(9)
	require.NoError(t, err)

	sess.SetStatus(p, StatusSigned)
	p.UseVetMin = true

	sess.SetStatus(p, StatusCut)
	assert.False(t, p.UseVetMin)
	assert.False(t, p.UseMLE)
}

func TestPushHistoryEvictsOldestAtCapacity(t *testing.T) {
	sess := testSession(DifficultyPro)

	// Fill beyond capacity, tagging each snapshot by mutating player 1
	for i := 0; i < HistoryCapacity+5; i++ {
		if i%2 == 0 {
			sess.Players[0].Status = StatusSigned
		} else {
			sess.Players[0].Status = StatusCut
		}
		sess.PushHistory()
	}

	assert.Len(t, sess.History, HistoryCapacity)

	// The newest snapshot reflects the last push
	snap, ok := sess.PopHistory()
	require.True(t, ok)
	assert.Equal(t, StatusCut, snap.Players[0].Status)
}

func TestPopHistoryIsLIFO(t *testing.T) {
	sess := testSession(DifficultyPro)

	sess.Players[0].Status = StatusSigned
	sess.PushHistory()
	sess.Players[1].Status = StatusSigned
	sess.PushHistory()

	snap, ok := sess.PopHistory()
	require.True(t, ok)
	assert.Equal(t, StatusSigned, snap.Players[1].Status)

	snap, ok = sess.PopHistory()
	require.True(t, ok)
	assert.Equal(t, StatusCut, snap.Players[1].Status)
}

func TestPopHistoryEmpty(t *testing.T) {
	sess := testSession(DifficultyPro)
	_, ok := sess.PopHistory()
	assert.False(t, ok)
}

func TestRestoreSnapshotRemovesLaterAcquisitions(t *testing.T) {
	sess := testSession(DifficultyPro)

	snap := sess.Snapshot()

	// A trade lands after the snapshot
	acquired := AcquiredPlayer{TradedAwayID: 3}
	acquired.Player = sess.Players[12]
	acquired.Status = StatusSigned
	sess.Acquired = append(sess.Acquired, acquired)
	sess.Players[2].Status = StatusTraded

	sess.RestoreSnapshot(snap)

	assert.Empty(t, sess.Acquired)
	assert.Equal(t, StatusCut, sess.Players[2].Status)
}

func TestAggregatesDistinctPositions(t *testing.T) {
	agg := Aggregates{PositionCounts: map[PositionGroup]int{
		PositionGroupGuard:   3,
		PositionGroupForward: 0,
		PositionGroupCenter:  1,
	}}
	assert.Equal(t, 2, agg.DistinctPositions())
}

func TestCapEfficiency(t *testing.T) {
	agg := Aggregates{TotalPayroll: 90_000_000}
	cfg := DifficultyConfig{SalaryCap: 120_000_000}
	assert.InDelta(t, 0.25, agg.CapEfficiency(cfg), 1e-9)
}

func TestSavedGameExpiry(t *testing.T) {
	savedAt := time.Date(2025, 1, 1, 0, 0, 0, 0, time.UTC)
	saved := &SavedGame{Difficulty: DifficultyPro, SavedAt: savedAt}

	assert.False(t, saved.Expired(savedAt.Add(SavedGameMaxAge-time.Hour)))
	assert.True(t, saved.Expired(savedAt.Add(SavedGameMaxAge+time.Hour)))
}
