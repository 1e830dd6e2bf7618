package model

import "time"

// PlayerSnapshot captures the mutable fields of one player.
type PlayerSnapshot struct {
	ID        PlayerID `json:"id"`
	Status    Status   `json:"status"`
	UseMLE    bool     `json:"use_mle"`
	UseVetMin bool     `json:"use_vet_min"`
}

// AcquiredSnapshot additionally records which origin player was sent
// away, so trade provenance survives a save/restore round trip.
type AcquiredSnapshot struct {
	PlayerSnapshot
	TradedAwayID PlayerID `json:"traded_away_id"`
}

// RosterSnapshot is one undo-history entry: the mutable fields of
// every player in both pools at a point in time.
type RosterSnapshot struct {
	Players  []PlayerSnapshot
	Acquired []PlayerSnapshot
}

// Snapshot builds a value copy of the current mutable roster state.
func (s *Session) Snapshot() RosterSnapshot {
	snap := RosterSnapshot{
		Players:  make([]PlayerSnapshot, len(s.Players)),
		Acquired: make([]PlayerSnapshot, len(s.Acquired)),
	}
	for i := range s.Players {
		snap.Players[i] = snapshotOf(&s.Players[i])
	}
	for i := range s.Acquired {
		snap.Acquired[i] = snapshotOf(&s.Acquired[i].Player)
	}
	return snap
}

// RestoreSnapshot applies a snapshot's mutable fields back onto the
// session. The acquired pool is truncated to the snapshot's
// membership, so undoing past a trade confirmation removes the
// acquired player along with the trade itself.
func (s *Session) RestoreSnapshot(snap RosterSnapshot) {
	kept := s.Acquired[:0]
	for _, ps := range snap.Acquired {
		for i := range s.Acquired {
			if s.Acquired[i].ID == ps.ID {
				applySnapshot(&s.Acquired[i].Player, ps)
				kept = append(kept, s.Acquired[i])
				break
			}
		}
	}
	s.Acquired = kept

	for _, ps := range snap.Players {
		for i := range s.Players {
			if s.Players[i].ID == ps.ID {
				applySnapshot(&s.Players[i], ps)
				break
			}
		}
	}
}

func snapshotOf(p *Player) PlayerSnapshot {
	return PlayerSnapshot{ID: p.ID, Status: p.Status, UseMLE: p.UseMLE, UseVetMin: p.UseVetMin}
}

func applySnapshot(p *Player, ps PlayerSnapshot) {
	p.Status = ps.Status
	p.UseMLE = ps.UseMLE
	p.UseVetMin = ps.UseVetMin
}

// SavedGame is the serializable snapshot handed to the persistence
// layer: enough to rebuild a session from the fixture. Player ids
// absent from a restored save default to Cut with no exceptions.
type SavedGame struct {
	Difficulty DifficultyKey      `json:"difficulty"`
	Players    []PlayerSnapshot   `json:"players"`
	Acquired   []AcquiredSnapshot `json:"acquired,omitempty"`
	Challenges []ChallengeID      `json:"challenges,omitempty"`
	SavedAt    time.Time          `json:"saved_at"`
}

// SavedGameMaxAge is how long a saved game stays restorable.
const SavedGameMaxAge = 7 * 24 * time.Hour

// Expired reports whether the save is too old to restore.
func (g *SavedGame) Expired(now time.Time) bool {
	return now.Sub(g.SavedAt) > SavedGameMaxAge
}
