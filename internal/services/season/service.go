package season

import (
	"github.com/hoopgm/capcrash/internal/dependencies/random"
	"github.com/hoopgm/capcrash/internal/model"
)

// LuckSpread is the half-width of the uniform Q-Pts perturbation: the
// same roster can swing ±8 points between simulations.
const LuckSpread = 8.0

// Service classifies a final roster into a narrative season outcome.
// It is pure apart from the injected random source, so "simulate
// again" can be called repeatedly without touching roster state.
type Service struct {
	random random.Random
}

// New creates a new season classifier
func New(random random.Random) *Service {
	return &Service{random: random}
}

// Simulate maps the aggregates to a tier, record, playoff blurb, and
// claim code under the active config's thresholds. marqueeSigned
// reports whether any designated marquee free agent is on the signed
// roster; it can upgrade a Championship result and nothing else.
func (s *Service) Simulate(agg model.Aggregates, marqueeSigned bool, cfg model.DifficultyConfig) model.SeasonResult {
	luck := s.random.Float64()*(2*LuckSpread) - LuckSpread
	qpts := float64(agg.TotalQualityPoints) + luck
	capEfficiency := agg.CapEfficiency(cfg)
	t := cfg.Tiers

	var tier model.Tier
	switch {
	case qpts >= float64(t.Dynasty) && capEfficiency > 0.15:
		tier = model.TierDynasty
	case qpts >= float64(t.Championship) || (qpts >= float64(t.Contender) && capEfficiency > 0.20):
		tier = model.TierChampionship
	case qpts >= float64(t.Superteam) && agg.StarsSigned >= 3:
		tier = model.TierSuperteam
	case qpts >= float64(t.Contender) || (qpts >= float64(t.Playoff) && capEfficiency > 0.25):
		tier = model.TierContender
	case qpts >= float64(t.Playoff):
		tier = model.TierPlayoff
	default:
		tier = model.TierScrappy
	}

	if marqueeSigned && tier == model.TierChampionship {
		tier = model.TierAllStarDynasty
	}

	narrative := narratives[tier]
	return model.SeasonResult{
		Tier:        tier,
		Record:      narrative.record,
		Playoff:     narrative.playoff,
		Description: narrative.description,
		ClaimCode:   cfg.ClaimCodePrefix + "-" + narrative.codeSuffix,
		Luck:        luck,
	}
}

type tierNarrative struct {
	record      string
	playoff     string
	description string
	codeSuffix  string
}

var narratives = map[model.Tier]tierNarrative{
	model.TierDynasty: {
		record:      "67-15",
		playoff:     "NBA CHAMPIONS! Finals MVP performance!",
		description: "Dominant season! Elite roster with incredible cap management!",
		codeSuffix:  "DYNASTY",
	},
	model.TierAllStarDynasty: {
		record:      "62-20",
		playoff:     "NBA CHAMPIONS! Hard-fought Finals victory!",
		description: "Legendary roster with hall of fame talent!",
		codeSuffix:  "ALLSTAR",
	},
	model.TierChampionship: {
		record:      "62-20",
		playoff:     "NBA CHAMPIONS! Hard-fought Finals victory!",
		description: "Championship season! Outstanding roster construction!",
		codeSuffix:  "CHAMPS",
	},
	model.TierSuperteam: {
		record:      "58-24",
		playoff:     "NBA Finals! Lost in 7 games but great run!",
		description: "Superstar-loaded roster! Made it to the Finals!",
		codeSuffix:  "FINALS",
	},
	model.TierContender: {
		record:      "56-26",
		playoff:     "Conference Finals! Lost in 6 games.",
		description: "Strong contender! Great balance of talent and value!",
		codeSuffix:  "CONTEND",
	},
	model.TierPlayoff: {
		record:      "51-31",
		playoff:     "Second Round! Lost in 5 games.",
		description: "Solid playoff team! Good foundation to build on.",
		codeSuffix:  "PLAYOFFS",
	},
	model.TierScrappy: {
		record:      "46-36",
		playoff:     "First Round! Lost in 6 games but made it!",
		description: "Made the playoffs with smart cap management!",
		codeSuffix:  "SCRAPPY",
	},
}
