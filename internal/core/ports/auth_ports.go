package ports

import (
	"context"

	"github.com/hermanngumbu/alx-polly/internal/core/domain"
)

type AuthRepository interface {
	StoreRefreshToken(ctx context.Context, token *domain.RefreshToken) error
	GetRefreshTokenByHash(ctx context.Context, tokenHash string) (*domain.RefreshToken, error)
	RevokeRefreshToken(ctx context.Context, id string) error
}

type AuthService interface {
	// LoginWithGoogle exchanges a verified Google credential for an access
	// token and a refresh token.
	LoginWithGoogle(ctx context.Context, googleToken string) (string, string, error)
	RefreshAccessToken(ctx context.Context, refreshToken string) (string, string, error)
	Logout(ctx context.Context, refreshToken string) error
}

type TokenPayload struct {
	Email string
	Name  string
}

// TokenVerifier checks an identity provider credential and extracts the
// claims the core needs. The core never handles raw credential material.
type TokenVerifier interface {
	Verify(ctx context.Context, token string, clientID string) (*TokenPayload, error)
}
