package auth

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/suite"

	"github.com/hoopgm/capcrash/internal/dependencies/mocks"
	"github.com/hoopgm/capcrash/internal/model"
	"github.com/hoopgm/capcrash/internal/storage/memory"
)

type ServiceSuite struct {
	suite.Suite
	service *Service
	clock   *mocks.MockClock
	ctx     context.Context
}

func TestServiceSuite(t *testing.T) {
	suite.Run(t, new(ServiceSuite))
}

func (s *ServiceSuite) SetupTest() {
	s.clock = mocks.NewMockClock(time.Date(2025, 1, 1, 12, 0, 0, 0, time.UTC))
	s.service = New(memory.New(), s.clock, DefaultConfig())
	s.ctx = context.Background()
}

func (s *ServiceSuite) TestCreateGuest() {
	token, err := s.service.CreateGuest(s.ctx, "Bench Boss")
	s.Require().NoError(err)

	s.NotEmpty(token.Value)
	s.True(token.Account.IsGuest)
	s.Equal("Bench Boss", token.Account.DisplayName)
	s.Equal(s.clock.Now().Add(24*time.Hour), token.ExpiresAt)
}

func (s *ServiceSuite) TestRegisterAndLogin() {
	token, err := s.service.Register(s.ctx, "spike", "knicks4life", "Spike")
	s.Require().NoError(err)
	s.False(token.Account.IsGuest)

	login, err := s.service.Login(s.ctx, "spike", "knicks4life")
	s.Require().NoError(err)
	s.Equal(token.AccountID, login.AccountID)
	s.NotEqual(token.Value, login.Value)
}

func (s *ServiceSuite) TestRegisterDuplicateUsername() {
	_, err := s.service.Register(s.ctx, "spike", "knicks4life", "Spike")
	s.Require().NoError(err)

	_, err = s.service.Register(s.ctx, "spike", "other", "Impostor")
	s.ErrorIs(err, ErrUsernameExists)
}

func (s *ServiceSuite) TestLoginWrongPassword() {
	_, err := s.service.Register(s.ctx, "spike", "knicks4life", "Spike")
	s.Require().NoError(err)

	_, err = s.service.Login(s.ctx, "spike", "nets4life")
	s.ErrorIs(err, ErrInvalidCredentials)
}

func (s *ServiceSuite) TestLoginUnknownUsername() {
	_, err := s.service.Login(s.ctx, "nobody", "whatever")
	s.ErrorIs(err, ErrInvalidCredentials)
}

func (s *ServiceSuite) TestValidateToken() {
	token, err := s.service.CreateGuest(s.ctx, "Guest")
	s.Require().NoError(err)

	got, err := s.service.ValidateToken(token.Value)
	s.Require().NoError(err)
	s.Equal(token.AccountID, got.AccountID)

	_, err = s.service.ValidateToken("tok_bogus")
	s.ErrorIs(err, ErrInvalidToken)
}

func (s *ServiceSuite) TestTokenExpiry() {
	token, err := s.service.CreateGuest(s.ctx, "Guest")
	s.Require().NoError(err)

	s.clock.Advance(24*time.Hour + time.Minute)

	_, err = s.service.ValidateToken(token.Value)
	s.ErrorIs(err, ErrInvalidToken)
}

func (s *ServiceSuite) TestInvalidateToken() {
	token, err := s.service.CreateGuest(s.ctx, "Guest")
	s.Require().NoError(err)

	s.service.InvalidateToken(token.Value)

	_, err = s.service.ValidateToken(token.Value)
	s.ErrorIs(err, ErrInvalidToken)
}

func (s *ServiceSuite) TestCleanExpiredTokens() {
	old, err := s.service.CreateGuest(s.ctx, "Early")
	s.Require().NoError(err)

	s.clock.Advance(23 * time.Hour)
	fresh, err := s.service.CreateGuest(s.ctx, "Late")
	s.Require().NoError(err)

	s.clock.Advance(2 * time.Hour)
	s.service.CleanExpiredTokens()

	_, err = s.service.ValidateToken(old.Value)
	s.ErrorIs(err, ErrInvalidToken)

	_, err = s.service.ValidateToken(fresh.Value)
	s.NoError(err)
}

func (s *ServiceSuite) TestCustomTokenDuration() {
	service := New(memory.New(), s.clock, Config{TokenDuration: time.Hour})

	token, err := service.CreateGuest(s.ctx, "Guest")
	s.Require().NoError(err)
	s.Equal(s.clock.Now().Add(time.Hour), token.ExpiresAt)
}

func (s *ServiceSuite) TestAccountPersisted() {
	store := memory.New()
	service := New(store, s.clock, DefaultConfig())

	token, err := service.CreateGuest(s.ctx, "Guest")
	s.Require().NoError(err)

	account, err := store.GetAccount(s.ctx, token.AccountID)
	s.Require().NoError(err)
	s.Equal(token.AccountID, account.ID)

	_, err = store.GetAccount(s.ctx, model.AccountID("a_missing"))
	s.ErrorIs(err, model.ErrAccountNotFound)
}
