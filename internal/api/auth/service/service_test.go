package authService

import (
	"context"
	"io"
	"sync"
	"testing"
	"time"

	"BlogNest/internal/api/auth"
	authRepository "BlogNest/internal/api/auth/repository"
	"BlogNest/internal/entity"
	"BlogNest/pkg/bcrypt"
	redisPkg "BlogNest/pkg/redis"
	"BlogNest/pkg/utils"

	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeUserStore struct {
	mu         sync.Mutex
	byID       map[string]entity.User
	byUsername map[string]entity.User
}

func newFakeUserStore() *fakeUserStore {
	return &fakeUserStore{
		byID:       make(map[string]entity.User),
		byUsername: make(map[string]entity.User),
	}
}

func (f *fakeUserStore) CreateUser(ctx context.Context, user entity.User) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	if _, ok := f.byUsername[user.Username]; ok {
		return auth.ErrUsernameTaken
	}
	f.byID[user.ID] = user
	f.byUsername[user.Username] = user
	return nil
}

func (f *fakeUserStore) GetByID(ctx context.Context, id string) (entity.User, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	user, ok := f.byID[id]
	if !ok {
		return entity.User{}, auth.ErrUserNotFound
	}
	return user, nil
}

func (f *fakeUserStore) GetByUsername(ctx context.Context, username string) (entity.User, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	user, ok := f.byUsername[username]
	if !ok {
		return entity.User{}, auth.ErrUserNotFound
	}
	return user, nil
}

type fakeAuthRepo struct {
	users *fakeUserStore
}

func (f *fakeAuthRepo) NewClient(tx bool) (authRepository.Client, error) {
	return authRepository.Client{
		Users:    f.users,
		Commit:   func() error { return nil },
		Rollback: func() error { return nil },
	}, nil
}

type fakeSessionStore struct {
	mu       sync.Mutex
	sessions map[string]string
}

func newFakeSessionStore() *fakeSessionStore {
	return &fakeSessionStore{sessions: make(map[string]string)}
}

func (f *fakeSessionStore) SetSession(ctx context.Context, sessionID string, userID string, expiration time.Duration) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.sessions[sessionID] = userID
	return nil
}

func (f *fakeSessionStore) GetSession(ctx context.Context, sessionID string) (string, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	userID, ok := f.sessions[sessionID]
	if !ok {
		return "", redisPkg.ErrSessionNotFound
	}
	return userID, nil
}

func (f *fakeSessionStore) DeleteSession(ctx context.Context, sessionID string) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	delete(f.sessions, sessionID)
	return nil
}

func newTestLogger() *logrus.Logger {
	logger := logrus.New()
	logger.SetOutput(io.Discard)
	return logger
}

func newTestService(t *testing.T) (IAuthService, *fakeUserStore, *fakeSessionStore) {
	t.Helper()
	t.Setenv("JWT_ACCESS_TOKEN_SECRET", "test-secret")

	users := newFakeUserStore()
	sessions := newFakeSessionStore()
	svc := New(newTestLogger(), &fakeAuthRepo{users: users}, sessions, bcrypt.New(), utils.New())
	return svc, users, sessions
}

func TestRegisterUser_MissingCredentials(t *testing.T) {
	svc, _, _ := newTestService(t)

	_, err := svc.RegisterUser(context.Background(), auth.CreateUserRequest{
		Username:     "   ",
		Password:     "password123",
		Confirmation: "password123",
	})
	assert.ErrorIs(t, err, auth.ErrMissingCredentials)

	_, err = svc.RegisterUser(context.Background(), auth.CreateUserRequest{
		Username: "alice",
	})
	assert.ErrorIs(t, err, auth.ErrMissingCredentials)
}

func TestRegisterUser_PasswordMismatch(t *testing.T) {
	svc, _, _ := newTestService(t)

	_, err := svc.RegisterUser(context.Background(), auth.CreateUserRequest{
		Username:     "alice",
		Password:     "password123",
		Confirmation: "password124",
	})
	assert.ErrorIs(t, err, auth.ErrPasswordMismatch)
}

func TestRegisterUser_WeakPassword(t *testing.T) {
	svc, _, _ := newTestService(t)

	// 7 characters is one short of the minimum.
	_, err := svc.RegisterUser(context.Background(), auth.CreateUserRequest{
		Username:     "alice",
		Password:     "seven77",
		Confirmation: "seven77",
	})
	assert.ErrorIs(t, err, auth.ErrWeakPassword)
}

func TestRegisterUser_DuplicateUsername(t *testing.T) {
	svc, _, _ := newTestService(t)

	req := auth.CreateUserRequest{
		Username:     "alice",
		Password:     "password123",
		Confirmation: "password123",
	}

	_, err := svc.RegisterUser(context.Background(), req)
	require.NoError(t, err)

	_, err = svc.RegisterUser(context.Background(), req)
	assert.ErrorIs(t, err, auth.ErrUsernameTaken)
}

func TestRegisterUser_StoresHashedPassword(t *testing.T) {
	svc, users, _ := newTestService(t)

	_, err := svc.RegisterUser(context.Background(), auth.CreateUserRequest{
		Username:     "alice",
		Password:     "password123",
		Confirmation: "password123",
	})
	require.NoError(t, err)

	stored, err := users.GetByUsername(context.Background(), "alice")
	require.NoError(t, err)
	assert.NotEqual(t, "password123", stored.Password)
	assert.NotEmpty(t, stored.ID)
}

func TestRegisterUser_AutoLogin(t *testing.T) {
	svc, _, sessions := newTestService(t)
	t.Setenv("AUTO_LOGIN_AFTER_REGISTER", "true")

	res, err := svc.RegisterUser(context.Background(), auth.CreateUserRequest{
		Username:     "alice",
		Password:     "password123",
		Confirmation: "password123",
	})
	require.NoError(t, err)
	require.NotNil(t, res)
	assert.NotEmpty(t, res.AccessToken)
	assert.Len(t, sessions.sessions, 1)
}

func TestLogin_RoundTrip(t *testing.T) {
	svc, _, sessions := newTestService(t)

	_, err := svc.RegisterUser(context.Background(), auth.CreateUserRequest{
		Username:     "alice",
		Password:     "password123",
		Confirmation: "password123",
	})
	require.NoError(t, err)

	res, err := svc.Login(context.Background(), auth.LoginUserRequest{
		Username: "alice",
		Password: "password123",
	})
	require.NoError(t, err)
	assert.NotEmpty(t, res.AccessToken)
	assert.Greater(t, res.ExpiresInMinutes, 0.0)
	assert.Len(t, sessions.sessions, 1)
}

func TestLogin_InvalidCredentialsIndistinguishable(t *testing.T) {
	svc, _, _ := newTestService(t)

	_, err := svc.RegisterUser(context.Background(), auth.CreateUserRequest{
		Username:     "alice",
		Password:     "password123",
		Confirmation: "password123",
	})
	require.NoError(t, err)

	// Unknown username and wrong password must come back as the same
	// error, leaking nothing about which part was wrong.
	_, unknownErr := svc.Login(context.Background(), auth.LoginUserRequest{
		Username: "nobody",
		Password: "password123",
	})
	_, wrongPassErr := svc.Login(context.Background(), auth.LoginUserRequest{
		Username: "alice",
		Password: "wrongpassword",
	})

	assert.ErrorIs(t, unknownErr, auth.ErrInvalidCredentials)
	assert.ErrorIs(t, wrongPassErr, auth.ErrInvalidCredentials)
}

func TestLogout_RemovesSession(t *testing.T) {
	svc, _, sessions := newTestService(t)

	_, err := svc.RegisterUser(context.Background(), auth.CreateUserRequest{
		Username:     "alice",
		Password:     "password123",
		Confirmation: "password123",
	})
	require.NoError(t, err)

	_, err = svc.Login(context.Background(), auth.LoginUserRequest{
		Username: "alice",
		Password: "password123",
	})
	require.NoError(t, err)
	require.Len(t, sessions.sessions, 1)

	var sessionID string
	for id := range sessions.sessions {
		sessionID = id
	}

	err = svc.Logout(context.Background(), entity.UserLoginData{
		ID:        "user-id",
		SessionID: sessionID,
	})
	require.NoError(t, err)
	assert.Empty(t, sessions.sessions)

	// A second logout with the same session is a no-op, not an error.
	err = svc.Logout(context.Background(), entity.UserLoginData{
		ID:        "user-id",
		SessionID: sessionID,
	})
	assert.NoError(t, err)
}

func TestGetProfile(t *testing.T) {
	svc, users, _ := newTestService(t)

	_, err := svc.RegisterUser(context.Background(), auth.CreateUserRequest{
		Username:     "alice",
		Password:     "password123",
		Confirmation: "password123",
	})
	require.NoError(t, err)

	stored, err := users.GetByUsername(context.Background(), "alice")
	require.NoError(t, err)

	profile, err := svc.GetProfile(context.Background(), stored.ID)
	require.NoError(t, err)
	assert.Equal(t, "alice", profile.Username)
	assert.Equal(t, stored.ID, profile.ID)

	_, err = svc.GetProfile(context.Background(), "missing-id")
	assert.ErrorIs(t, err, auth.ErrUserNotFound)
}
