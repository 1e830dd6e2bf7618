package model

// Tier is a season outcome tier
type Tier string

const (
	TierDynasty        Tier = "Dynasty"
	TierAllStarDynasty Tier = "All-Star Dynasty"
	TierChampionship   Tier = "Championship"
	TierSuperteam      Tier = "Superteam"
	TierContender      Tier = "Contender"
	TierPlayoff        Tier = "Playoff Team"
	TierScrappy        Tier = "Scrappy Team"
)

// Rank orders tiers from worst (0) to best. The All-Star Dynasty
// upgrade outranks every base tier.
func (t Tier) Rank() int {
	switch t {
	case TierAllStarDynasty:
		return 6
	case TierDynasty:
		return 5
	case TierChampionship:
		return 4
	case TierSuperteam:
		return 3
	case TierContender:
		return 2
	case TierPlayoff:
		return 1
	default:
		return 0
	}
}

// SeasonResult is the narrative outcome of one season simulation.
type SeasonResult struct {
	Tier        Tier    `json:"tier"`
	Record      string  `json:"record"`
	Playoff     string  `json:"playoff"`
	Description string  `json:"description"`
	ClaimCode   string  `json:"claim_code"`
	Luck        float64 `json:"luck"`
}
