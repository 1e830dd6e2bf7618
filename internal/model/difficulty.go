package model

// DifficultyKey identifies one of the three rule configurations
type DifficultyKey string

const (
	DifficultyRookie DifficultyKey = "rookie"
	DifficultyPro    DifficultyKey = "pro"
	DifficultyLegend DifficultyKey = "legend"
)

// HintsMode controls how coach hints are surfaced
type HintsMode string

const (
	HintsAuto      HintsMode = "auto"
	HintsOnRequest HintsMode = "on-request"
	HintsNone      HintsMode = "none"
)

// TierThresholds are the ascending Q-Pts cutoffs for season tiers
type TierThresholds struct {
	Dynasty      int
	Championship int
	Superteam    int
	Contender    int
	Playoff      int
}

// DifficultyConfig holds the full rule set for one difficulty.
// Exactly one config is active per session and it never changes
// once selected.
type DifficultyConfig struct {
	Key         DifficultyKey
	Label       string
	Description string

	SalaryCap     int64
	QPMinimum     int
	RosterMin     int
	RosterMax     int
	StarsRequired int

	MLEDiscount   float64 // Fraction subtracted from salary under the MLE
	VetMinSlots   int     // Max concurrent Vet-Min players
	VetMinCost    int64   // Flat salary when Vet Min is applied
	BirdRightsFee int64   // Per-sign processing fee on Bird Rights, 0 below Legend

	RequirePositionDiversity bool
	MinPositions             int

	HintsMode HintsMode
	HintDelay int // Auto-show a hint every N moves (auto mode only)

	Tiers           TierThresholds
	ClaimCodePrefix string
}

// Difficulties returns the three playable configurations.
func Difficulties() []DifficultyConfig {
	return []DifficultyConfig{rookieConfig, proConfig, legendConfig}
}

// DifficultyByKey looks up a configuration; unknown keys error.
func DifficultyByKey(key DifficultyKey) (DifficultyConfig, error) {
	switch key {
	case DifficultyRookie:
		return rookieConfig, nil
	case DifficultyPro:
		return proConfig, nil
	case DifficultyLegend:
		return legendConfig, nil
	default:
		return DifficultyConfig{}, ErrUnknownDifficulty
	}
}

// DefaultDifficulty is used when no difficulty is specified.
func DefaultDifficulty() DifficultyConfig {
	return proConfig
}

var rookieConfig = DifficultyConfig{
	Key:             DifficultyRookie,
	Label:           "Rookie",
	Description:     "Learning the ropes - more cap space, fewer requirements",
	SalaryCap:       140_000_000,
	QPMinimum:       75,
	RosterMin:       8,
	RosterMax:       15,
	StarsRequired:   1,
	MLEDiscount:     0.5,
	VetMinSlots:     3,
	VetMinCost:      2_000_000,
	BirdRightsFee:   0,
	HintsMode:       HintsAuto,
	HintDelay:       3,
	Tiers:           TierThresholds{Dynasty: 85, Championship: 80, Superteam: 75, Contender: 70, Playoff: 65},
	ClaimCodePrefix: "ROOKIE",
}

var proConfig = DifficultyConfig{
	Key:             DifficultyPro,
	Label:           "Pro",
	Description:     "The real deal - standard salary cap challenge",
	SalaryCap:       120_000_000,
	QPMinimum:       85,
	RosterMin:       10,
	RosterMax:       13,
	StarsRequired:   2,
	MLEDiscount:     0.5,
	VetMinSlots:     3,
	VetMinCost:      2_000_000,
	BirdRightsFee:   0,
	HintsMode:       HintsOnRequest,
	Tiers:           TierThresholds{Dynasty: 95, Championship: 90, Superteam: 85, Contender: 85, Playoff: 80},
	ClaimCodePrefix: "PRO",
}

var legendConfig = DifficultyConfig{
	Key:                      DifficultyLegend,
	Label:                    "Legend",
	Description:              "Elite GM challenge - tighter cap, harder rules",
	SalaryCap:                110_000_000,
	QPMinimum:                90,
	RosterMin:                10,
	RosterMax:                12,
	StarsRequired:            2,
	MLEDiscount:              0.4,
	VetMinSlots:              2,
	VetMinCost:               2_000_000,
	BirdRightsFee:            2_000_000,
	RequirePositionDiversity: true,
	MinPositions:             3,
	HintsMode:                HintsNone,
	Tiers:                    TierThresholds{Dynasty: 100, Championship: 95, Superteam: 90, Contender: 90, Playoff: 85},
	ClaimCodePrefix:          "LEGEND",
}
