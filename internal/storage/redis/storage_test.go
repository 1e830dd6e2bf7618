package redis

import (
	"context"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	goredis "github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/suite"

	"github.com/hoopgm/capcrash/internal/model"
)

type StorageSuite struct {
	suite.Suite
	mini    *miniredis.Miniredis
	storage *Storage
	ctx     context.Context
}

func TestStorageSuite(t *testing.T) {
	suite.Run(t, new(StorageSuite))
}

func (s *StorageSuite) SetupTest() {
	s.mini = miniredis.RunT(s.T())

	client := goredis.NewClient(&goredis.Options{Addr: s.mini.Addr()})
	cfg := DefaultConfig()
	s.storage = NewWithClient(client, cfg)
	s.ctx = context.Background()
}

func (s *StorageSuite) TearDownTest() {
	s.storage.Close()
}

func (s *StorageSuite) TestAccountRoundTrip() {
	account := &model.Account{ID: "a_1", DisplayName: "Guest", IsGuest: true}

	s.Require().NoError(s.storage.SaveAccount(s.ctx, account))

	got, err := s.storage.GetAccount(s.ctx, "a_1")
	s.Require().NoError(err)
	s.Equal(account.ID, got.ID)
	s.Equal(account.DisplayName, got.DisplayName)
	s.True(got.IsGuest)

	s.Require().NoError(s.storage.DeleteAccount(s.ctx, "a_1"))
	_, err = s.storage.GetAccount(s.ctx, "a_1")
	s.ErrorIs(err, model.ErrAccountNotFound)
}

func (s *StorageSuite) TestGuestAccountExpires() {
	guest := &model.Account{ID: "a_guest", IsGuest: true}
	s.Require().NoError(s.storage.SaveAccount(s.ctx, guest))

	s.mini.FastForward(24*time.Hour + time.Minute)

	_, err := s.storage.GetAccount(s.ctx, "a_guest")
	s.ErrorIs(err, model.ErrAccountNotFound)
}

func (s *StorageSuite) TestRegisteredAccountPersists() {
	account := &model.Account{ID: "a_reg", IsGuest: false}
	s.Require().NoError(s.storage.SaveAccount(s.ctx, account))

	s.mini.FastForward(30 * 24 * time.Hour)

	got, err := s.storage.GetAccount(s.ctx, "a_reg")
	s.Require().NoError(err)
	s.Equal(account.ID, got.ID)
}

func (s *StorageSuite) TestCredentialsRoundTrip() {
	creds := &model.Credentials{AccountID: "a_1", Username: "spike", PasswordHash: "hash"}

	s.Require().NoError(s.storage.SaveCredentials(s.ctx, creds))

	got, err := s.storage.GetCredentialsByUsername(s.ctx, "spike")
	s.Require().NoError(err)
	s.Equal(creds.AccountID, got.AccountID)
	s.Equal(creds.PasswordHash, got.PasswordHash)

	_, err = s.storage.GetCredentialsByUsername(s.ctx, "nobody")
	s.ErrorIs(err, model.ErrAccountNotFound)
}

func (s *StorageSuite) TestSessionRoundTrip() {
	sess := &model.Session{
		ID:         "GAME1",
		Owner:      "a_1",
		Difficulty: model.DifficultyPro,
		Players:    model.DefaultRoster(),
		Challenges: []model.ChallengeID{"under_100m", "all_positions"},
	}
	sess.Players[0].Status = model.StatusSigned
	sess.Players[0].UseMLE = false

	s.Require().NoError(s.storage.SaveSession(s.ctx, sess))

	got, err := s.storage.GetSession(s.ctx, "GAME1")
	s.Require().NoError(err)
	s.Equal(sess.ID, got.ID)
	s.Equal(sess.Difficulty, got.Difficulty)
	s.Len(got.Players, 22)
	s.Equal(model.StatusSigned, got.Players[0].Status)
	s.Equal(sess.Challenges, got.Challenges)

	s.Require().NoError(s.storage.DeleteSession(s.ctx, "GAME1"))
	_, err = s.storage.GetSession(s.ctx, "GAME1")
	s.ErrorIs(err, model.ErrSessionNotFound)
}

func (s *StorageSuite) TestSessionExpires() {
	sess := &model.Session{ID: "GAME1", Difficulty: model.DifficultyPro}
	s.Require().NoError(s.storage.SaveSession(s.ctx, sess))

	s.mini.FastForward(7*24*time.Hour + time.Minute)

	_, err := s.storage.GetSession(s.ctx, "GAME1")
	s.ErrorIs(err, model.ErrSessionNotFound)
}

func (s *StorageSuite) TestProfileRoundTrip() {
	profile := model.NewProfile("a_1", time.Date(2025, 1, 1, 12, 0, 0, 0, time.UTC))
	profile.GamesWon = 2
	profile.DifficultiesBeaten[model.DifficultyPro] = true
	profile.ClaimCodes = []model.ClaimCode{{Code: "PRO-CONTEND", Difficulty: model.DifficultyPro}}

	s.Require().NoError(s.storage.SaveProfile(s.ctx, profile))

	got, err := s.storage.GetProfile(s.ctx, "a_1")
	s.Require().NoError(err)
	s.Equal(2, got.GamesWon)
	s.True(got.DifficultiesBeaten[model.DifficultyPro])
	s.Require().Len(got.ClaimCodes, 1)
	s.Equal("PRO-CONTEND", got.ClaimCodes[0].Code)

	// Profiles never expire
	s.mini.FastForward(30 * 24 * time.Hour)
	_, err = s.storage.GetProfile(s.ctx, "a_1")
	s.NoError(err)
}

func (s *StorageSuite) TestProfileNotFound() {
	_, err := s.storage.GetProfile(s.ctx, "a_missing")
	s.ErrorIs(err, model.ErrProfileNotFound)
}
