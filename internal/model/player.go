package model

import "math"

// PlayerID uniquely identifies a player in the fixture
type PlayerID int

// Status represents a player's current roster disposition
type Status string

const (
	StatusCut    Status = "cut"    // Available, not on the roster
	StatusSigned Status = "signed" // On the roster, counts toward aggregates
	StatusTraded Status = "traded" // Sent away; terminal for origin players
)

// PositionGroup classifies positions for the lineup-diversity rule
type PositionGroup string

const (
	PositionGroupGuard   PositionGroup = "G"
	PositionGroupForward PositionGroup = "F"
	PositionGroupCenter  PositionGroup = "C"
)

// Player is a roster entry: immutable fixture fields plus the mutable
// per-session fields (Status, UseMLE, UseVetMin).
type Player struct {
	ID       PlayerID
	Name     string
	Number   int
	Position string
	Group    PositionGroup

	Salary        int64 // Base annual salary in dollars
	QualityPoints int

	IsStar         bool
	IsRosterOrigin bool // Origin players are trade-eligible; only they carry Bird Rights
	Marquee        bool // Marquee free agents feed the All-Star Dynasty upgrade

	BirdEligible   bool
	VetMinEligible bool
	MLEEligible    bool

	// Mutable session state. Exceptions are only meaningful while
	// Status == StatusSigned; Session mutators clear them on any
	// transition away from Signed.
	Status    Status
	UseMLE    bool
	UseVetMin bool
}

// EffectiveSalary derives the player's cap hit under the active config.
// First matching branch wins: MLE discount, then Vet Min flat cost,
// then base salary.
func (p *Player) EffectiveSalary(cfg DifficultyConfig) int64 {
	if p.UseMLE {
		return int64(math.Round(float64(p.Salary) * (1 - cfg.MLEDiscount)))
	}
	if p.UseVetMin {
		return cfg.VetMinCost
	}
	return p.Salary
}

// Signed reports whether the player currently counts toward aggregates.
func (p *Player) Signed() bool {
	return p.Status == StatusSigned
}

// MaxReturnSalary is the salary-ratio ceiling for trade returns:
// 125% of the outgoing player's salary, boundary inclusive.
func (p *Player) MaxReturnSalary() int64 {
	return p.Salary * 5 / 4
}
