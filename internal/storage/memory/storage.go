package memory

import (
	"context"
	"sync"

	"github.com/hoopgm/capcrash/internal/model"
	"github.com/hoopgm/capcrash/internal/storage"
)

// Storage is an in-memory implementation of the storage interface
type Storage struct {
	mu sync.RWMutex

	accounts      map[model.AccountID]*model.Account
	credentials   map[string]*model.Credentials
	sessions      map[model.SessionID]*model.Session
	profiles      map[model.AccountID]*model.Profile
}

// New creates a new in-memory storage instance
func New() *Storage {
	return &Storage{
		accounts:    make(map[model.AccountID]*model.Account),
		credentials: make(map[string]*model.Credentials),
		sessions:    make(map[model.SessionID]*model.Session),
		profiles:    make(map[model.AccountID]*model.Profile),
	}
}

// Ensure Storage implements the interface
var _ storage.Storage = (*Storage)(nil)

// Account operations

func (s *Storage) SaveAccount(ctx context.Context, account *model.Account) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.accounts[account.ID] = account
	return nil
}

func (s *Storage) GetAccount(ctx context.Context, id model.AccountID) (*model.Account, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	account, ok := s.accounts[id]
	if !ok {
		return nil, model.ErrAccountNotFound
	}
	return account, nil
}

func (s *Storage) DeleteAccount(ctx context.Context, id model.AccountID) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.accounts, id)
	return nil
}

// Credential operations

func (s *Storage) SaveCredentials(ctx context.Context, creds *model.Credentials) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.credentials[creds.Username] = creds
	return nil
}

func (s *Storage) GetCredentialsByUsername(ctx context.Context, username string) (*model.Credentials, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	creds, ok := s.credentials[username]
	if !ok {
		return nil, model.ErrAccountNotFound
	}
	return creds, nil
}

// Session operations

func (s *Storage) SaveSession(ctx context.Context, session *model.Session) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.sessions[session.ID] = session
	return nil
}

func (s *Storage) GetSession(ctx context.Context, id model.SessionID) (*model.Session, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	session, ok := s.sessions[id]
	if !ok {
		return nil, model.ErrSessionNotFound
	}
	return session, nil
}

func (s *Storage) DeleteSession(ctx context.Context, id model.SessionID) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.sessions, id)
	return nil
}

// Profile operations

func (s *Storage) SaveProfile(ctx context.Context, profile *model.Profile) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.profiles[profile.AccountID] = profile
	return nil
}

func (s *Storage) GetProfile(ctx context.Context, accountID model.AccountID) (*model.Profile, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	profile, ok := s.profiles[accountID]
	if !ok {
		return nil, model.ErrProfileNotFound
	}
	return profile, nil
}

func (s *Storage) DeleteProfile(ctx context.Context, accountID model.AccountID) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.profiles, accountID)
	return nil
}
