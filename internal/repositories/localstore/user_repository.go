package localstore

import (
	"context"
	"fmt"
	"time"

	"github.com/smartcedi/cedis-tracker/internal/apperrors"
	"github.com/smartcedi/cedis-tracker/internal/core/domain"
	portsrepo "github.com/smartcedi/cedis-tracker/internal/core/ports/repositories"
)

// userRecord is the blob form of a user. Unlike API payloads it must carry
// the credential fields, so it cannot reuse the domain struct's JSON tags.
type userRecord struct {
	UserID                 string     `json:"userID"`
	Email                  string     `json:"email"`
	Name                   string     `json:"name"`
	PasswordHash           string     `json:"passwordHash"`
	AuthProvider           string     `json:"authProvider"`
	ProviderID             string     `json:"providerID"`
	RefreshTokenHash       string     `json:"refreshTokenHash"`
	RefreshTokenExpiryTime *time.Time `json:"refreshTokenExpiryTime"`
	CreatedAt              time.Time  `json:"createdAt"`
	CreatedBy              string     `json:"createdBy"`
	LastUpdatedAt          time.Time  `json:"lastUpdatedAt"`
	LastUpdatedBy          string     `json:"lastUpdatedBy"`
}

func toUserRecord(d domain.User) userRecord {
	return userRecord{
		UserID:                 d.UserID,
		Email:                  d.Email,
		Name:                   d.Name,
		PasswordHash:           d.PasswordHash,
		AuthProvider:           d.AuthProvider,
		ProviderID:             d.ProviderID,
		RefreshTokenHash:       d.RefreshTokenHash,
		RefreshTokenExpiryTime: d.RefreshTokenExpiryTime,
		CreatedAt:              d.CreatedAt,
		CreatedBy:              d.CreatedBy,
		LastUpdatedAt:          d.LastUpdatedAt,
		LastUpdatedBy:          d.LastUpdatedBy,
	}
}

func toDomainUser(rec userRecord) domain.User {
	u := domain.User{
		UserID:                 rec.UserID,
		Email:                  rec.Email,
		Name:                   rec.Name,
		PasswordHash:           rec.PasswordHash,
		AuthProvider:           rec.AuthProvider,
		ProviderID:             rec.ProviderID,
		RefreshTokenHash:       rec.RefreshTokenHash,
		RefreshTokenExpiryTime: rec.RefreshTokenExpiryTime,
	}
	u.CreatedAt = rec.CreatedAt
	u.CreatedBy = rec.CreatedBy
	u.LastUpdatedAt = rec.LastUpdatedAt
	u.LastUpdatedBy = rec.LastUpdatedBy
	return u
}

// UserRepository is the blob-backed user collection.
type UserRepository struct {
	store *Store
}

var _ portsrepo.UserRepositoryFacade = (*UserRepository)(nil)

// SaveUser appends a new user. Email is unique.
func (r *UserRepository) SaveUser(ctx context.Context, user domain.User) error {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()

	users := readCollection[userRecord](r.store, usersFile)
	for _, existing := range users {
		if existing.Email == user.Email {
			return fmt.Errorf("%w: user with email %s already exists", apperrors.ErrDuplicate, user.Email)
		}
	}
	users = append(users, toUserRecord(user))
	return writeCollection(r.store, usersFile, users)
}

// FindUserByID retrieves a user by their unique ID.
func (r *UserRepository) FindUserByID(ctx context.Context, userID string) (*domain.User, error) {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()

	for _, rec := range readCollection[userRecord](r.store, usersFile) {
		if rec.UserID == userID {
			u := toDomainUser(rec)
			return &u, nil
		}
	}
	return nil, apperrors.ErrNotFound
}

// FindUserByEmail retrieves a user by email address.
func (r *UserRepository) FindUserByEmail(ctx context.Context, email string) (*domain.User, error) {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()

	for _, rec := range readCollection[userRecord](r.store, usersFile) {
		if rec.Email == email {
			u := toDomainUser(rec)
			return &u, nil
		}
	}
	return nil, apperrors.ErrNotFound
}

// FindUserByProviderID retrieves a user by external auth provider identity.
func (r *UserRepository) FindUserByProviderID(ctx context.Context, provider, providerID string) (*domain.User, error) {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()

	for _, rec := range readCollection[userRecord](r.store, usersFile) {
		if rec.AuthProvider == provider && rec.ProviderID == providerID {
			u := toDomainUser(rec)
			return &u, nil
		}
	}
	return nil, apperrors.ErrNotFound
}

// UpdateRefreshToken stores the hash and expiry of the user's current
// refresh token; empty hash and nil expiry clear it.
func (r *UserRepository) UpdateRefreshToken(ctx context.Context, userID, tokenHash string, expiry *time.Time) error {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()

	users := readCollection[userRecord](r.store, usersFile)
	for i := range users {
		if users[i].UserID == userID {
			users[i].RefreshTokenHash = tokenHash
			users[i].RefreshTokenExpiryTime = expiry
			users[i].LastUpdatedAt = time.Now().UTC()
			return writeCollection(r.store, usersFile, users)
		}
	}
	return errNotFound("user", userID)
}
