package services

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/yongsanfmc/instructor-directory/internal/app/models"
	"github.com/yongsanfmc/instructor-directory/internal/app/models/dto"
	"github.com/yongsanfmc/instructor-directory/internal/app/repositories"
	"github.com/yongsanfmc/instructor-directory/internal/pkg/apperrors"
	"github.com/yongsanfmc/instructor-directory/internal/pkg/auth"
	"github.com/yongsanfmc/instructor-directory/internal/pkg/logger"
)

// AuthService implements admin console authentication on top of the
// external identity scheme: email/password login exchanged for a JWT access
// token plus an opaque, server-tracked refresh token.
type AuthService struct {
	adminRepo  *repositories.AdminRepository
	tokenRepo  *repositories.TokenRepository
	jwtService *auth.JWTService
}

// NewAuthService creates a new AuthService
func NewAuthService(adminRepo *repositories.AdminRepository, tokenRepo *repositories.TokenRepository, jwtService *auth.JWTService) *AuthService {
	return &AuthService{
		adminRepo:  adminRepo,
		tokenRepo:  tokenRepo,
		jwtService: jwtService,
	}
}

// Login verifies credentials and issues a token pair. An unknown email and
// a wrong password are indistinguishable to the caller.
func (s *AuthService) Login(ctx context.Context, email, password string) (*dto.TokenResponse, error) {
	email = strings.TrimSpace(strings.ToLower(email))

	admin, err := s.adminRepo.GetByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, apperrors.ErrAdminNotFound) {
			return nil, apperrors.ErrInvalidCredentials
		}
		return nil, err
	}

	if !auth.CheckPassword(admin.PasswordHash, password) {
		logger.Warn().Str("email", email).Msg("Failed login attempt")
		return nil, apperrors.ErrInvalidCredentials
	}

	return s.issueTokenPair(ctx, admin)
}

// RefreshToken rotates a refresh token: the presented token is revoked and
// a fresh pair is issued. Revoked, expired and unknown tokens are rejected.
func (s *AuthService) RefreshToken(ctx context.Context, refreshToken string) (*dto.TokenResponse, error) {
	adminID, _, err := s.tokenRepo.GetTokenByValue(ctx, refreshToken)
	if err != nil {
		return nil, err
	}

	admin, err := s.adminRepo.GetByID(ctx, adminID)
	if err != nil {
		if errors.Is(err, apperrors.ErrAdminNotFound) {
			return nil, apperrors.ErrTokenInvalid
		}
		return nil, err
	}

	if err := s.tokenRepo.RevokeToken(ctx, refreshToken); err != nil {
		return nil, fmt.Errorf("rotating refresh token: %w", err)
	}

	return s.issueTokenPair(ctx, admin)
}

// Logout revokes the presented refresh token. Logging out with an unknown
// token is not an error.
func (s *AuthService) Logout(ctx context.Context, refreshToken string) error {
	err := s.tokenRepo.RevokeToken(ctx, refreshToken)
	if err != nil && !errors.Is(err, apperrors.ErrTokenNotFound) {
		return err
	}
	return nil
}

// LogoutAll revokes every active refresh token for the admin, ending all of
// their sessions at once.
func (s *AuthService) LogoutAll(ctx context.Context, adminID int64) error {
	if err := s.tokenRepo.RevokeAllAdminTokens(ctx, adminID); err != nil {
		return err
	}

	logger.Info().Int64("adminID", adminID).Msg("Revoked all admin sessions")
	return nil
}

// StartTokenCleanup purges expired and long-revoked refresh tokens once
// immediately and then on the given interval, until ctx is cancelled.
func (s *AuthService) StartTokenCleanup(ctx context.Context, interval time.Duration) {
	if _, err := s.tokenRepo.CleanupExpiredTokens(ctx); err != nil {
		logger.Warn().Err(err).Msg("Refresh token cleanup failed")
	}

	go func() {
		ticker := time.NewTicker(interval)
		defer ticker.Stop()
		for {
			select {
			case <-ctx.Done():
				return
			case <-ticker.C:
				if _, err := s.tokenRepo.CleanupExpiredTokens(ctx); err != nil {
					logger.Warn().Err(err).Msg("Refresh token cleanup failed")
				}
			}
		}
	}()
}

// Session describes the authenticated admin behind a validated access token
func (s *AuthService) Session(ctx context.Context, adminID int64) (*dto.SessionResponse, error) {
	admin, err := s.adminRepo.GetByID(ctx, adminID)
	if err != nil {
		return nil, err
	}

	return &dto.SessionResponse{
		Authenticated: true,
		Email:         admin.Email,
		Role:          models.RoleAdmin,
	}, nil
}

func (s *AuthService) issueTokenPair(ctx context.Context, admin *models.Admin) (*dto.TokenResponse, error) {
	accessToken, refreshToken, expiresIn, refreshExpiresIn, err := s.jwtService.GenerateTokenPair(admin)
	if err != nil {
		return nil, fmt.Errorf("generating token pair: %w", err)
	}

	expiry := s.jwtService.GetRefreshTokenExpiry()
	if err := s.tokenRepo.CreateToken(ctx, refreshToken, admin.ID, expiry); err != nil {
		return nil, err
	}

	logger.Info().Int64("adminID", admin.ID).Msg("Issued admin token pair")
	return &dto.TokenResponse{
		AccessToken:           accessToken,
		TokenType:             "Bearer",
		ExpiresIn:             int64(expiresIn),
		RefreshToken:          refreshToken,
		RefreshTokenExpiresIn: int64(refreshExpiresIn),
	}, nil
}
