package auth

import (
	"context"
	"crypto/rand"
	"encoding/base64"
	"errors"
	"sync"
	"time"

	"golang.org/x/crypto/bcrypt"

	"github.com/hoopgm/capcrash/internal/dependencies/clock"
	"github.com/hoopgm/capcrash/internal/model"
	"github.com/hoopgm/capcrash/internal/storage"
)

// Errors
var (
	ErrInvalidCredentials = errors.New("invalid credentials")
	ErrInvalidToken       = errors.New("invalid or expired token")
	ErrUsernameExists     = errors.New("username already exists")
)

// Token represents an authenticated login session for an account.
type Token struct {
	Value     string
	AccountID model.AccountID
	Account   model.Account
	CreatedAt time.Time
	ExpiresAt time.Time
}

// Service handles accounts and login-token management
type Service struct {
	storage storage.Storage
	clock   clock.Clock

	mu     sync.RWMutex
	tokens map[string]*Token

	tokenDuration time.Duration
}

// Config holds configuration for the auth service
type Config struct {
	TokenDuration time.Duration
}

// DefaultConfig returns default auth configuration
func DefaultConfig() Config {
	return Config{
		TokenDuration: 24 * time.Hour,
	}
}

// New creates a new auth Service
func New(storage storage.Storage, clock clock.Clock, cfg Config) *Service {
	if cfg.TokenDuration == 0 {
		cfg.TokenDuration = DefaultConfig().TokenDuration
	}
	return &Service{
		storage:       storage,
		clock:         clock,
		tokens:        make(map[string]*Token),
		tokenDuration: cfg.TokenDuration,
	}
}

// CreateGuest creates an anonymous account and token
func (s *Service) CreateGuest(ctx context.Context, displayName string) (*Token, error) {
	now := s.clock.Now()
	account := &model.Account{
		ID:          model.AccountID(s.generateID("a_")),
		DisplayName: displayName,
		IsGuest:     true,
		CreatedAt:   now,
	}

	if err := s.storage.SaveAccount(ctx, account); err != nil {
		return nil, err
	}

	return s.issueToken(account), nil
}

// Register creates a registered account and token
func (s *Service) Register(ctx context.Context, username, password, displayName string) (*Token, error) {
	_, err := s.storage.GetCredentialsByUsername(ctx, username)
	if err == nil {
		return nil, ErrUsernameExists
	}
	if !errors.Is(err, model.ErrAccountNotFound) {
		return nil, err
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return nil, err
	}

	now := s.clock.Now()
	account := &model.Account{
		ID:          model.AccountID(s.generateID("a_")),
		DisplayName: displayName,
		IsGuest:     false,
		CreatedAt:   now,
	}
	creds := &model.Credentials{
		AccountID:    account.ID,
		Username:     username,
		PasswordHash: string(hash),
		CreatedAt:    now,
	}

	if err := s.storage.SaveAccount(ctx, account); err != nil {
		return nil, err
	}
	if err := s.storage.SaveCredentials(ctx, creds); err != nil {
		return nil, err
	}

	return s.issueToken(account), nil
}

// Login authenticates a registered account and issues a token
func (s *Service) Login(ctx context.Context, username, password string) (*Token, error) {
	creds, err := s.storage.GetCredentialsByUsername(ctx, username)
	if err != nil {
		if errors.Is(err, model.ErrAccountNotFound) {
			return nil, ErrInvalidCredentials
		}
		return nil, err
	}

	if err := bcrypt.CompareHashAndPassword([]byte(creds.PasswordHash), []byte(password)); err != nil {
		return nil, ErrInvalidCredentials
	}

	account, err := s.storage.GetAccount(ctx, creds.AccountID)
	if err != nil {
		return nil, err
	}

	return s.issueToken(account), nil
}

// ValidateToken checks a token and returns it when still valid
func (s *Service) ValidateToken(value string) (*Token, error) {
	s.mu.RLock()
	token, ok := s.tokens[value]
	s.mu.RUnlock()

	if !ok {
		return nil, ErrInvalidToken
	}

	if s.clock.Now().After(token.ExpiresAt) {
		s.mu.Lock()
		delete(s.tokens, value)
		s.mu.Unlock()
		return nil, ErrInvalidToken
	}

	return token, nil
}

// InvalidateToken removes a token
func (s *Service) InvalidateToken(value string) {
	s.mu.Lock()
	delete(s.tokens, value)
	s.mu.Unlock()
}

// CleanExpiredTokens removes expired tokens (call periodically)
func (s *Service) CleanExpiredTokens() {
	now := s.clock.Now()
	s.mu.Lock()
	defer s.mu.Unlock()

	for value, token := range s.tokens {
		if now.After(token.ExpiresAt) {
			delete(s.tokens, value)
		}
	}
}

// issueToken creates and records a fresh token for an account
func (s *Service) issueToken(account *model.Account) *Token {
	now := s.clock.Now()
	token := &Token{
		Value:     s.generateID("tok_"),
		AccountID: account.ID,
		Account:   *account,
		CreatedAt: now,
		ExpiresAt: now.Add(s.tokenDuration),
	}

	s.mu.Lock()
	s.tokens[token.Value] = token
	s.mu.Unlock()

	return token
}

// generateID generates a random ID with a prefix
func (s *Service) generateID(prefix string) string {
	b := make([]byte, 16)
	_, _ = rand.Read(b)
	return prefix + base64.RawURLEncoding.EncodeToString(b)
}
