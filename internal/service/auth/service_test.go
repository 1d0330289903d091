package auth

import (
	"context"
	"fmt"
	"testing"
	"time"

	"github.com/albaworks/timeclock-backend-go/internal/domain/auth"
	"github.com/albaworks/timeclock-backend-go/internal/domain/user"
	"github.com/albaworks/timeclock-backend-go/internal/pkg/jwt"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const (
	testAccessExp  = "1h"
	testRefreshExp = "24h"
	testSecret     = "test-secret-key-for-jwt"
)

type fakeUserRepo struct {
	byID    map[string]user.User
	byEmail map[string]user.User
	nextID  int
}

func newFakeUserRepo() *fakeUserRepo {
	return &fakeUserRepo{
		byID:    make(map[string]user.User),
		byEmail: make(map[string]user.User),
	}
}

func (f *fakeUserRepo) Create(ctx context.Context, newUser user.User) (user.User, error) {
	f.nextID++
	newUser.ID = fmt.Sprintf("user-%d", f.nextID)
	newUser.CreatedAt = time.Now()
	f.byID[newUser.ID] = newUser
	f.byEmail[newUser.Email] = newUser
	return newUser, nil
}

func (f *fakeUserRepo) GetByID(ctx context.Context, id string) (user.User, error) {
	u, ok := f.byID[id]
	if !ok {
		return user.User{}, user.ErrUserNotFound
	}
	return u, nil
}

func (f *fakeUserRepo) GetByEmail(ctx context.Context, email string) (user.User, error) {
	u, ok := f.byEmail[email]
	if !ok {
		return user.User{}, user.ErrUserNotFound
	}
	return u, nil
}

func (f *fakeUserRepo) ExistsByEmail(ctx context.Context, email string) (bool, error) {
	_, ok := f.byEmail[email]
	return ok, nil
}

type fakeRefreshTokenRepo struct {
	byHash map[string]auth.RefreshToken
	nextID int
}

func newFakeRefreshTokenRepo() *fakeRefreshTokenRepo {
	return &fakeRefreshTokenRepo{byHash: make(map[string]auth.RefreshToken)}
}

func (f *fakeRefreshTokenRepo) Store(ctx context.Context, token auth.RefreshToken) (auth.RefreshToken, error) {
	f.nextID++
	token.ID = fmt.Sprintf("token-%d", f.nextID)
	token.CreatedAt = time.Now()
	f.byHash[token.TokenHash] = token
	return token, nil
}

func (f *fakeRefreshTokenRepo) GetByHash(ctx context.Context, tokenHash string) (auth.RefreshToken, error) {
	token, ok := f.byHash[tokenHash]
	if !ok {
		return auth.RefreshToken{}, auth.ErrInvalidToken
	}
	return token, nil
}

func (f *fakeRefreshTokenRepo) Revoke(ctx context.Context, tokenHash string) error {
	token, ok := f.byHash[tokenHash]
	if !ok {
		return nil
	}
	now := time.Now()
	token.RevokedAt = &now
	f.byHash[tokenHash] = token
	return nil
}

func (f *fakeRefreshTokenRepo) RevokeAllForUser(ctx context.Context, userID string) error {
	now := time.Now()
	for hash, token := range f.byHash {
		if token.UserID == userID && token.RevokedAt == nil {
			token.RevokedAt = &now
			f.byHash[hash] = token
		}
	}
	return nil
}

func newTestAuthService() (auth.AuthService, *fakeUserRepo, *fakeRefreshTokenRepo) {
	userRepo := newFakeUserRepo()
	tokenRepo := newFakeRefreshTokenRepo()
	jwtService := jwt.NewJWTService(testSecret, testAccessExp, testRefreshExp)
	return NewAuthService(userRepo, tokenRepo, jwtService), userRepo, tokenRepo
}

func registerTestUser(t *testing.T, svc auth.AuthService, email, role string) auth.UserResponse {
	t.Helper()
	created, err := svc.Register(context.Background(), auth.RegisterRequest{
		Email:    email,
		Password: "password123",
		Role:     role,
	})
	require.NoError(t, err)
	return created
}

func TestRegister(t *testing.T) {
	svc, userRepo, _ := newTestAuthService()

	created := registerTestUser(t, svc, "manager@example.com", "manager")
	assert.Equal(t, "manager@example.com", created.Email)
	assert.Equal(t, "manager", created.Role)

	// password is stored hashed
	stored, err := userRepo.GetByEmail(context.Background(), "manager@example.com")
	require.NoError(t, err)
	assert.NotEqual(t, "password123", stored.PasswordHash)
	assert.NotEmpty(t, stored.PasswordHash)
}

func TestRegisterDuplicateEmail(t *testing.T) {
	svc, _, _ := newTestAuthService()

	registerTestUser(t, svc, "dup@example.com", "employee")

	_, err := svc.Register(context.Background(), auth.RegisterRequest{
		Email:    "dup@example.com",
		Password: "password123",
		Role:     "employee",
	})
	assert.ErrorIs(t, err, user.ErrEmailExists)
}

func TestRegisterValidation(t *testing.T) {
	svc, _, _ := newTestAuthService()

	_, err := svc.Register(context.Background(), auth.RegisterRequest{
		Email:    "not-an-email",
		Password: "short",
		Role:     "superuser",
	})
	assert.Error(t, err)
}

func TestLogin(t *testing.T) {
	svc, _, _ := newTestAuthService()
	registerTestUser(t, svc, "login@example.com", "employee")

	pair, err := svc.Login(context.Background(), auth.LoginRequest{
		Email:    "login@example.com",
		Password: "password123",
	})
	require.NoError(t, err)

	assert.NotEmpty(t, pair.AccessToken)
	assert.NotEmpty(t, pair.RefreshToken)
	assert.Greater(t, pair.AccessTokenExpiresAt, time.Now().Unix())
}

func TestLoginWrongPassword(t *testing.T) {
	svc, _, _ := newTestAuthService()
	registerTestUser(t, svc, "login@example.com", "employee")

	_, err := svc.Login(context.Background(), auth.LoginRequest{
		Email:    "login@example.com",
		Password: "wrong-password",
	})
	assert.ErrorIs(t, err, auth.ErrInvalidCredentials)
}

func TestLoginUnknownEmail(t *testing.T) {
	svc, _, _ := newTestAuthService()

	_, err := svc.Login(context.Background(), auth.LoginRequest{
		Email:    "nobody@example.com",
		Password: "password123",
	})
	assert.ErrorIs(t, err, auth.ErrInvalidCredentials)
}

func TestRefreshRotatesToken(t *testing.T) {
	svc, _, _ := newTestAuthService()
	registerTestUser(t, svc, "rotate@example.com", "employee")

	pair, err := svc.Login(context.Background(), auth.LoginRequest{
		Email:    "rotate@example.com",
		Password: "password123",
	})
	require.NoError(t, err)

	rotated, err := svc.Refresh(context.Background(), pair.RefreshToken)
	require.NoError(t, err)
	assert.NotEmpty(t, rotated.AccessToken)

	// the old refresh token must not work twice
	_, err = svc.Refresh(context.Background(), pair.RefreshToken)
	assert.Error(t, err)
}

func TestRefreshReplayRevokesAllSessions(t *testing.T) {
	svc, _, _ := newTestAuthService()
	registerTestUser(t, svc, "replay@example.com", "employee")

	first, err := svc.Login(context.Background(), auth.LoginRequest{
		Email:    "replay@example.com",
		Password: "password123",
	})
	require.NoError(t, err)

	second, err := svc.Login(context.Background(), auth.LoginRequest{
		Email:    "replay@example.com",
		Password: "password123",
	})
	require.NoError(t, err)

	_, err = svc.Refresh(context.Background(), first.RefreshToken)
	require.NoError(t, err)

	// replaying the rotated-out token burns every session of the user
	_, err = svc.Refresh(context.Background(), first.RefreshToken)
	assert.ErrorIs(t, err, auth.ErrRefreshTokenRevoked)

	_, err = svc.Refresh(context.Background(), second.RefreshToken)
	assert.ErrorIs(t, err, auth.ErrRefreshTokenRevoked)
}

func TestRefreshRejectsAccessToken(t *testing.T) {
	svc, _, _ := newTestAuthService()
	registerTestUser(t, svc, "type@example.com", "employee")

	pair, err := svc.Login(context.Background(), auth.LoginRequest{
		Email:    "type@example.com",
		Password: "password123",
	})
	require.NoError(t, err)

	_, err = svc.Refresh(context.Background(), pair.AccessToken)
	assert.Error(t, err)
}

func TestRefreshRejectsGarbage(t *testing.T) {
	svc, _, _ := newTestAuthService()

	_, err := svc.Refresh(context.Background(), "not-a-jwt")
	assert.ErrorIs(t, err, auth.ErrInvalidToken)

	_, err = svc.Refresh(context.Background(), "")
	assert.ErrorIs(t, err, auth.ErrInvalidToken)
}

func TestLogoutRevokesRefreshToken(t *testing.T) {
	svc, _, _ := newTestAuthService()
	registerTestUser(t, svc, "logout@example.com", "employee")

	pair, err := svc.Login(context.Background(), auth.LoginRequest{
		Email:    "logout@example.com",
		Password: "password123",
	})
	require.NoError(t, err)

	require.NoError(t, svc.Logout(context.Background(), pair.RefreshToken))

	_, err = svc.Refresh(context.Background(), pair.RefreshToken)
	assert.Error(t, err)
}
