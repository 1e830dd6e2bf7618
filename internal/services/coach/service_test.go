package coach

import (
	"testing"

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

func (s *ServiceSuite) TestHintsDisabledOnLegend() {
	legend, err := model.DifficultyByKey(model.DifficultyLegend)
	s.Require().NoError(err)

	_, err = s.service.Tips(&model.Session{}, legend)
	s.ErrorIs(err, ErrHintsDisabled)

	_, err = s.service.Hint(&model.Session{}, legend)
	s.ErrorIs(err, ErrHintsDisabled)
}

func (s *ServiceSuite) TestOpeningTip() {
	tips, err := s.service.Tips(&model.Session{}, s.pro)
	s.Require().NoError(err)

	s.Require().NotEmpty(tips)
	s.Contains(tips[0], "Bird Rights")
}

func (s *ServiceSuite) TestOverCapWarning() {
	sess := &model.Session{
		MoveCount: 4,
		Aggregates: model.Aggregates{
			SignedCount:          11,
			PayrollExcludingBird: 130_000_000,
			StarsSigned:          2,
			TotalQualityPoints:   60,
		},
	}

	tips, err := s.service.Tips(sess, s.pro)
	s.Require().NoError(err)

	s.Require().NotEmpty(tips)
	s.Contains(tips[0], "OVER the salary cap")
}

func (s *ServiceSuite) TestNearCapSuggestsExceptions() {
	sess := &model.Session{
		MoveCount: 1,
		Aggregates: model.Aggregates{
			SignedCount:          11,
			PayrollExcludingBird: 115_000_000,
			StarsSigned:          2,
			TotalQualityPoints:   60,
		},
	}

	tips, err := s.service.Tips(sess, s.pro)
	s.Require().NoError(err)

	s.Require().NotEmpty(tips)
	s.Contains(tips[0], "close to the salary cap")
}

func (s *ServiceSuite) TestMissingStarsReminder() {
	sess := &model.Session{
		MoveCount: 3,
		Aggregates: model.Aggregates{
			SignedCount:        4,
			TotalQualityPoints: 50,
		},
	}

	tips, err := s.service.Tips(sess, s.pro)
	s.Require().NoError(err)

	s.Contains(tips[0], "sign your stars")
}

func (s *ServiceSuite) TestReadyToSimulate() {
	sess := &model.Session{
		MoveCount: 12,
		Aggregates: model.Aggregates{
			SignedCount:          11,
			PayrollExcludingBird: 100_000_000,
			StarsSigned:          2,
			TotalQualityPoints:   90,
		},
	}

	tips, err := s.service.Tips(sess, s.pro)
	s.Require().NoError(err)

	s.Require().NotEmpty(tips)
	s.Contains(tips[len(tips)-1], "Looking good")
}

func (s *ServiceSuite) TestFallbackTip() {
	sess := &model.Session{
		MoveCount: 1,
		Aggregates: model.Aggregates{
			SignedCount:          2,
			PayrollExcludingBird: 40_000_000,
			StarsSigned:          1,
			TotalQualityPoints:   50,
		},
	}

	tips, err := s.service.Tips(sess, s.pro)
	s.Require().NoError(err)

	s.Equal([]string{"Keep building! Balance quality and cost to create a winning roster."}, tips)
}

func (s *ServiceSuite) TestHintReturnsFirstTip() {
	hint, err := s.service.Hint(&model.Session{}, s.pro)
	s.Require().NoError(err)
	s.Contains(hint, "Bird Rights")
}
