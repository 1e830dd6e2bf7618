package model

import "time"

// SessionID uniquely identifies a game session
type SessionID string

// HistoryCapacity bounds the undo stack. The oldest snapshot is
// evicted first once the stack is full; undo pops the newest.
const HistoryCapacity = 20

// AcquiredPlayer is a player obtained via trade, tagged with the
// origin player sent away in that trade (0 when restored from a
// source that did not record it).
type AcquiredPlayer struct {
	Player
	TradedAwayID PlayerID
}

// Aggregates are the team-wide totals derived from the signed roster.
// They are recomputed in full after every mutation and never stored
// redundantly per player.
type Aggregates struct {
	TotalPayroll         int64
	PayrollExcludingBird int64
	TotalQualityPoints   int
	SignedCount          int
	StarsSigned          int
	PositionCounts       map[PositionGroup]int
	MLEInUse             bool
	MLEPlayerID          PlayerID
	VetMinCount          int
}

// CapEfficiency is the fraction of the cap left unspent.
func (a Aggregates) CapEfficiency(cfg DifficultyConfig) float64 {
	if cfg.SalaryCap == 0 {
		return 0
	}
	return float64(cfg.SalaryCap-a.TotalPayroll) / float64(cfg.SalaryCap)
}

// DistinctPositions counts position groups with at least one signed player.
func (a Aggregates) DistinctPositions() int {
	distinct := 0
	for _, n := range a.PositionCounts {
		if n > 0 {
			distinct++
		}
	}
	return distinct
}

// Session is the root aggregate for one game: the full player pool,
// trade-acquired players, derived aggregates, undo history, and win
// state. A single live instance exists per game; all mutation goes
// through the roster controller.
type Session struct {
	ID         SessionID
	Owner      AccountID
	Difficulty DifficultyKey

	Players  []Player
	Acquired []AcquiredPlayer

	// PendingTradeID is the origin player awaiting trade confirmation
	// (0 when no trade is pending). Other mutations are rejected until
	// the trade is confirmed or canceled.
	PendingTradeID PlayerID

	Aggregates  Aggregates
	HasWon      bool
	LastOutcome *SeasonResult

	History   []RosterSnapshot
	UndoCount int
	MoveCount int

	Challenges []ChallengeID

	StartedAt time.Time
	CreatedAt time.Time
	UpdatedAt time.Time
}

// FindPlayer looks a player up, preferring the trade-acquired copy:
// once a free agent has been acquired via trade, the acquired entry is
// the live one and the pool entry is no longer addressable.
func (s *Session) FindPlayer(id PlayerID) (*Player, error) {
	for i := range s.Acquired {
		if s.Acquired[i].ID == id {
			return &s.Acquired[i].Player, nil
		}
	}
	for i := range s.Players {
		if s.Players[i].ID == id {
			return &s.Players[i], nil
		}
	}
	return nil, ErrPlayerNotFound
}

// IsAcquired reports whether the id belongs to the trade-acquired pool.
func (s *Session) IsAcquired(id PlayerID) bool {
	for i := range s.Acquired {
		if s.Acquired[i].ID == id {
			return true
		}
	}
	return false
}

// SignedPlayers returns every player currently in Signed status,
// origin pool first, then trade acquisitions.
func (s *Session) SignedPlayers() []*Player {
	var signed []*Player
	for i := range s.Players {
		if s.Players[i].Signed() {
			signed = append(signed, &s.Players[i])
		}
	}
	for i := range s.Acquired {
		if s.Acquired[i].Signed() {
			signed = append(signed, &s.Acquired[i].Player)
		}
	}
	return signed
}

// SetStatus transitions a player's status. Any transition away from
// Signed clears both exception flags, keeping "exceptions only while
// signed" structural.
func (s *Session) SetStatus(p *Player, status Status) {
	p.Status = status
	if status != StatusSigned {
		p.UseMLE = false
		p.UseVetMin = false
	}
}

// PushHistory records the current mutable roster state, evicting the
// oldest snapshot once the stack is at capacity.
func (s *Session) PushHistory() {
	snap := s.Snapshot()
	if len(s.History) >= HistoryCapacity {
		s.History = s.History[1:]
	}
	s.History = append(s.History, snap)
}

// PopHistory removes and returns the newest snapshot. The second
// return is false when the stack is empty.
func (s *Session) PopHistory() (RosterSnapshot, bool) {
	if len(s.History) == 0 {
		return RosterSnapshot{}, false
	}
	snap := s.History[len(s.History)-1]
	s.History = s.History[:len(s.History)-1]
	return snap, true
}
