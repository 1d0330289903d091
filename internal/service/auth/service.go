package auth

import (
	"context"
	"crypto/sha256"
	"encoding/hex"
	"errors"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/albaworks/timeclock-backend-go/internal/domain/auth"
	"github.com/albaworks/timeclock-backend-go/internal/domain/user"
	"github.com/albaworks/timeclock-backend-go/internal/pkg/jwt"
	jwxjwt "github.com/lestrrat-go/jwx/v2/jwt"
	"golang.org/x/crypto/bcrypt"
)

type AuthServiceImpl struct {
	userRepo         user.UserRepository
	refreshTokenRepo auth.RefreshTokenRepository
	jwtService       jwt.Service
}

func NewAuthService(
	userRepo user.UserRepository,
	refreshTokenRepo auth.RefreshTokenRepository,
	jwtService jwt.Service,
) auth.AuthService {
	return &AuthServiceImpl{
		userRepo:         userRepo,
		refreshTokenRepo: refreshTokenRepo,
		jwtService:       jwtService,
	}
}

func (s *AuthServiceImpl) Register(ctx context.Context, req auth.RegisterRequest) (auth.UserResponse, error) {
	if err := req.Validate(); err != nil {
		return auth.UserResponse{}, err
	}

	email := strings.ToLower(strings.TrimSpace(req.Email))

	exists, err := s.userRepo.ExistsByEmail(ctx, email)
	if err != nil {
		return auth.UserResponse{}, fmt.Errorf("check email: %w", err)
	}
	if exists {
		return auth.UserResponse{}, user.ErrEmailExists
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(req.Password), bcrypt.DefaultCost)
	if err != nil {
		return auth.UserResponse{}, fmt.Errorf("hash password: %w", err)
	}

	created, err := s.userRepo.Create(ctx, user.User{
		Email:        email,
		PasswordHash: string(hash),
		Role:         user.Role(req.Role),
		EmployeeID:   req.EmployeeID,
	})
	if err != nil {
		return auth.UserResponse{}, fmt.Errorf("create user: %w", err)
	}

	return auth.UserResponse{
		ID:         created.ID,
		Email:      created.Email,
		Role:       string(created.Role),
		EmployeeID: created.EmployeeID,
	}, nil
}

func (s *AuthServiceImpl) Login(ctx context.Context, req auth.LoginRequest) (auth.TokenPairResponse, error) {
	if err := req.Validate(); err != nil {
		return auth.TokenPairResponse{}, err
	}

	email := strings.ToLower(strings.TrimSpace(req.Email))

	u, err := s.userRepo.GetByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, user.ErrUserNotFound) {
			return auth.TokenPairResponse{}, auth.ErrInvalidCredentials
		}
		return auth.TokenPairResponse{}, fmt.Errorf("get user: %w", err)
	}

	if err := bcrypt.CompareHashAndPassword([]byte(u.PasswordHash), []byte(req.Password)); err != nil {
		return auth.TokenPairResponse{}, auth.ErrInvalidCredentials
	}

	return s.issueTokenPair(ctx, u)
}

func (s *AuthServiceImpl) Refresh(ctx context.Context, refreshToken string) (auth.TokenPairResponse, error) {
	userID, err := s.verifyRefreshToken(ctx, refreshToken)
	if err != nil {
		return auth.TokenPairResponse{}, err
	}

	u, err := s.userRepo.GetByID(ctx, userID)
	if err != nil {
		if errors.Is(err, user.ErrUserNotFound) {
			return auth.TokenPairResponse{}, auth.ErrUserNotFound
		}
		return auth.TokenPairResponse{}, fmt.Errorf("get user: %w", err)
	}

	// Rotation: the presented token is revoked before its replacement is
	// issued, so a replayed token always fails.
	if err := s.refreshTokenRepo.Revoke(ctx, hashToken(refreshToken)); err != nil {
		return auth.TokenPairResponse{}, fmt.Errorf("revoke refresh token: %w", err)
	}
	s.jwtService.RevokeToken(refreshToken)

	return s.issueTokenPair(ctx, u)
}

func (s *AuthServiceImpl) Logout(ctx context.Context, refreshToken string) error {
	if refreshToken == "" {
		return nil
	}

	if err := s.refreshTokenRepo.Revoke(ctx, hashToken(refreshToken)); err != nil {
		return fmt.Errorf("revoke refresh token: %w", err)
	}
	s.jwtService.RevokeToken(refreshToken)
	return nil
}

func (s *AuthServiceImpl) issueTokenPair(ctx context.Context, u user.User) (auth.TokenPairResponse, error) {
	accessToken, accessExp, err := s.jwtService.GenerateAccessToken(u.ID, u.Email, u.EmployeeID, u.Role)
	if err != nil {
		return auth.TokenPairResponse{}, fmt.Errorf("generate access token: %w", err)
	}

	refreshToken, refreshExp, err := s.jwtService.GenerateRefreshToken(u.ID)
	if err != nil {
		return auth.TokenPairResponse{}, fmt.Errorf("generate refresh token: %w", err)
	}

	_, err = s.refreshTokenRepo.Store(ctx, auth.RefreshToken{
		UserID:    u.ID,
		TokenHash: hashToken(refreshToken),
		ExpiresAt: time.Unix(refreshExp, 0),
	})
	if err != nil {
		return auth.TokenPairResponse{}, fmt.Errorf("store refresh token: %w", err)
	}

	return auth.TokenPairResponse{
		AccessToken:           accessToken,
		AccessTokenExpiresAt:  accessExp,
		RefreshToken:          refreshToken,
		RefreshTokenExpiresAt: refreshExp,
	}, nil
}

// verifyRefreshToken checks signature, type, expiry and revocation, and
// returns the subject user id. Presenting an already-revoked token means the
// token leaked or was replayed, so every session of that user is revoked.
func (s *AuthServiceImpl) verifyRefreshToken(ctx context.Context, refreshToken string) (string, error) {
	if refreshToken == "" {
		return "", auth.ErrInvalidToken
	}

	token, err := s.jwtService.JWTAuth().Decode(refreshToken)
	if err != nil {
		return "", auth.ErrInvalidToken
	}
	if err := jwxjwt.Validate(token); err != nil {
		if errors.Is(err, jwxjwt.ErrTokenExpired()) {
			return "", auth.ErrTokenExpired
		}
		return "", auth.ErrInvalidToken
	}

	claims, err := token.AsMap(ctx)
	if err != nil {
		return "", auth.ErrInvalidToken
	}
	if tokenType, _ := claims["type"].(string); tokenType != "refresh" {
		return "", auth.ErrInvalidToken
	}
	userID, _ := claims["user_id"].(string)
	if userID == "" {
		return "", auth.ErrInvalidToken
	}

	if s.jwtService.IsTokenRevoked(refreshToken) {
		s.revokeAllSessions(ctx, userID)
		return "", auth.ErrRefreshTokenRevoked
	}

	stored, err := s.refreshTokenRepo.GetByHash(ctx, hashToken(refreshToken))
	if err != nil {
		if errors.Is(err, auth.ErrInvalidToken) {
			return "", auth.ErrInvalidToken
		}
		return "", fmt.Errorf("get refresh token: %w", err)
	}
	if stored.RevokedAt != nil {
		s.revokeAllSessions(ctx, stored.UserID)
		return "", auth.ErrRefreshTokenRevoked
	}
	if time.Now().After(stored.ExpiresAt) {
		return "", auth.ErrTokenExpired
	}
	if stored.UserID != userID {
		return "", auth.ErrInvalidToken
	}

	return userID, nil
}

// revokeAllSessions kills every refresh token of the user after a revoked
// token is replayed. Best effort; the caller already rejects the request.
func (s *AuthServiceImpl) revokeAllSessions(ctx context.Context, userID string) {
	if err := s.refreshTokenRepo.RevokeAllForUser(ctx, userID); err != nil {
		slog.Error("revoke all sessions failed", "user_id", userID, "error", err)
	}
}

func hashToken(token string) string {
	sum := sha256.Sum256([]byte(token))
	return hex.EncodeToString(sum[:])
}
