package achievements

import (
	"testing"
	"time"

	"github.com/stretchr/testify/suite"

	"github.com/hoopgm/capcrash/internal/model"
)

type ServiceSuite struct {
	suite.Suite
	service *Service
	pro     model.DifficultyConfig
}

func TestServiceSuite(t *testing.T) {
	suite.Run(t, new(ServiceSuite))
}

func (s *ServiceSuite) SetupTest() {
	s.service = New()

	var err error
	s.pro, err = model.DifficultyByKey(model.DifficultyPro)
	s.Require().NoError(err)
}

func (s *ServiceSuite) baseInput() Input {
	started := time.Date(2025, 1, 1, 12, 0, 0, 0, time.UTC)
	return Input{
		Session: &model.Session{
			Difficulty: model.DifficultyPro,
			StartedAt:  started,
			Aggregates: model.Aggregates{
				TotalPayroll: 118_000_000,
				StarsSigned:  2,
				MLEInUse:     true,
			},
			UndoCount: 3,
		},
		Config:  s.pro,
		Result:  &model.SeasonResult{Tier: model.TierContender},
		Profile: &model.Profile{DifficultiesBeaten: map[model.DifficultyKey]bool{}},
		Now:     started.Add(10 * time.Minute),
	}
}

func earnedIDs(earned []Achievement) []model.AchievementID {
	ids := make([]model.AchievementID, len(earned))
	for i, a := range earned {
		ids[i] = a.ID
	}
	return ids
}

func (s *ServiceSuite) TestFirstWinAndDifficultyClear() {
	ids := earnedIDs(s.service.CheckAll(s.baseInput()))

	s.Contains(ids, model.AchievementID("first_win"))
	s.Contains(ids, model.AchievementID("pro_clear"))
	s.NotContains(ids, model.AchievementID("rookie_clear"))
	s.NotContains(ids, model.AchievementID("legend_clear"))
}

func (s *ServiceSuite) TestAlreadyEarnedSkipped() {
	in := s.baseInput()
	in.Profile.Achievements = []model.AchievementID{"first_win", "pro_clear"}

	ids := earnedIDs(s.service.CheckAll(in))

	s.NotContains(ids, model.AchievementID("first_win"))
	s.NotContains(ids, model.AchievementID("pro_clear"))
}

func (s *ServiceSuite) TestTripleThreat() {
	in := s.baseInput()
	in.Profile.DifficultiesBeaten = map[model.DifficultyKey]bool{
		model.DifficultyRookie: true,
		model.DifficultyPro:    true,
	}
	s.NotContains(earnedIDs(s.service.CheckAll(in)), model.AchievementID("all_three"))

	in.Profile.DifficultiesBeaten[model.DifficultyLegend] = true
	s.Contains(earnedIDs(s.service.CheckAll(in)), model.AchievementID("all_three"))
}

func (s *ServiceSuite) TestBudgetHawk() {
	in := s.baseInput()
	s.NotContains(earnedIDs(s.service.CheckAll(in)), model.AchievementID("budget_hawk"))

	// 95M of 120M leaves just over 20 percent unspent
	in.Session.Aggregates.TotalPayroll = 95_000_000
	s.Contains(earnedIDs(s.service.CheckAll(in)), model.AchievementID("budget_hawk"))
}

func (s *ServiceSuite) TestSigningBadges() {
	in := s.baseInput()
	in.Session.Players = []model.Player{
		{ID: 101, Status: model.StatusSigned},
		{ID: 102, Status: model.StatusCut},
	}

	ids := earnedIDs(s.service.CheckAll(in))
	s.Contains(ids, model.AchievementID("lebron_signing"))
	s.NotContains(ids, model.AchievementID("curry_signing"))
}

func (s *ServiceSuite) TestExceptionBadges() {
	in := s.baseInput()
	in.Session.Aggregates.MLEInUse = false
	in.Session.Aggregates.VetMinCount = s.pro.VetMinSlots

	ids := earnedIDs(s.service.CheckAll(in))
	s.Contains(ids, model.AchievementID("no_mle"))
	s.Contains(ids, model.AchievementID("vet_squad"))
}

func (s *ServiceSuite) TestDynastyBadges() {
	in := s.baseInput()
	in.Result = &model.SeasonResult{Tier: model.TierDynasty}

	ids := earnedIDs(s.service.CheckAll(in))
	s.Contains(ids, model.AchievementID("dynasty"))
	s.NotContains(ids, model.AchievementID("perfect_legend"))

	legend, err := model.DifficultyByKey(model.DifficultyLegend)
	s.Require().NoError(err)
	in.Config = legend
	s.Contains(earnedIDs(s.service.CheckAll(in)), model.AchievementID("perfect_legend"))
}

func (s *ServiceSuite) TestNoUndoAndSpeedRun() {
	in := s.baseInput()
	in.Session.UndoCount = 0
	in.Now = in.Session.StartedAt.Add(45 * time.Second)

	ids := earnedIDs(s.service.CheckAll(in))
	s.Contains(ids, model.AchievementID("no_undo"))
	s.Contains(ids, model.AchievementID("speed_run"))
}

func (s *ServiceSuite) TestAllReturnsFifteenDefinitions() {
	s.Len(s.service.All(), 15)
}
