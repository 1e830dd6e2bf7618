package storage

import (
	"context"

	"github.com/hoopgm/capcrash/internal/model"
)

// Storage defines the interface for data persistence
type Storage interface {
	// Account operations
	SaveAccount(ctx context.Context, account *model.Account) error
	GetAccount(ctx context.Context, id model.AccountID) (*model.Account, error)
	DeleteAccount(ctx context.Context, id model.AccountID) error

	// Credential operations for registered accounts
	SaveCredentials(ctx context.Context, creds *model.Credentials) error
	GetCredentialsByUsername(ctx context.Context, username string) (*model.Credentials, error)

	// Session operations
	SaveSession(ctx context.Context, session *model.Session) error
	GetSession(ctx context.Context, id model.SessionID) (*model.Session, error)
	DeleteSession(ctx context.Context, id model.SessionID) error

	// Profile operations
	SaveProfile(ctx context.Context, profile *model.Profile) error
	GetProfile(ctx context.Context, accountID model.AccountID) (*model.Profile, error)
	DeleteProfile(ctx context.Context, accountID model.AccountID) error
}
