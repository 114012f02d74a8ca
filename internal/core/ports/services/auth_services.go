package services

import (
	"context"
	"time"

	"golang.org/x/oauth2"

	"github.com/smartcedi/cedis-tracker/internal/core/domain"
)

// TokenSvcFacade issues and validates the tokens backing the auth surface.
type TokenSvcFacade interface {
	// GenerateAccessToken creates a JWT access token for the user.
	GenerateAccessToken(ctx context.Context, user *domain.User) (string, time.Time, error)

	// GenerateRefreshToken creates an opaque refresh token and its expiry.
	GenerateRefreshToken(ctx context.Context, user *domain.User) (string, time.Time, error)

	// ValidateAndParseRefreshToken checks a refresh token against the user's
	// stored hash and returns the user when valid.
	ValidateAndParseRefreshToken(ctx context.Context, userID, refreshToken string) (*domain.User, error)
}

// GoogleOAuthSvcFacade wraps the Google authorization-code sign-in flow.
type GoogleOAuthSvcFacade interface {
	// ExchangeCodeForToken exchanges an authorization code for Google tokens.
	ExchangeCodeForToken(ctx context.Context, code string) (*oauth2.Token, error)

	// ValidateIDToken validates the ID token in the exchanged token set and
	// extracts the user's identity.
	ValidateIDToken(ctx context.Context, token *oauth2.Token) (*domain.GoogleUserInfo, error)
}
