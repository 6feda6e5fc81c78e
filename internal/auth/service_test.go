package auth

import (
	"context"
	"sync"
	"testing"
	"time"

	"tripbook/internal/shared/config"
	"tripbook/internal/users"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"
)

// fakeUserRepo stores users in memory keyed by id and email.
type fakeUserRepo struct {
	mu      sync.Mutex
	byID    map[string]*users.User
	byEmail map[string]*users.User
}

func newFakeUserRepo() *fakeUserRepo {
	return &fakeUserRepo{
		byID:    make(map[string]*users.User),
		byEmail: make(map[string]*users.User),
	}
}

func (f *fakeUserRepo) CreateUser(ctx context.Context, user *users.User) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	if user.ID == uuid.Nil {
		user.ID = uuid.New()
	}
	cp := *user
	f.byID[user.ID.String()] = &cp
	f.byEmail[user.Email] = &cp
	return nil
}

func (f *fakeUserRepo) GetUserByEmail(ctx context.Context, email string) (*users.User, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	u, ok := f.byEmail[email]
	if !ok {
		return nil, ErrUserNotFound
	}
	cp := *u
	return &cp, nil
}

func (f *fakeUserRepo) GetUserByID(ctx context.Context, id string) (*users.User, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	u, ok := f.byID[id]
	if !ok {
		return nil, ErrUserNotFound
	}
	cp := *u
	return &cp, nil
}

func (f *fakeUserRepo) UpdateUserPassword(ctx context.Context, userID string, hashedPassword string) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	u, ok := f.byID[userID]
	if !ok {
		return ErrUserNotFound
	}
	u.Password = hashedPassword
	return nil
}

func (f *fakeUserRepo) UpdateStripeCustomerID(ctx context.Context, userID string, customerID string) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	u, ok := f.byID[userID]
	if !ok {
		return ErrUserNotFound
	}
	u.StripeCustomerID = customerID
	return nil
}

func (f *fakeUserRepo) EmailExists(ctx context.Context, email string) (bool, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	_, ok := f.byEmail[email]
	return ok, nil
}

func newAuthService(t *testing.T) (Service, *fakeUserRepo) {
	t.Helper()
	repo := newFakeUserRepo()
	cfg := &config.Config{}
	cfg.JWT.Secret = "test-secret"
	cfg.JWT.JWTExpiresIn = 15 * time.Minute
	cfg.JWT.RefreshExpiresIn = 7 * 24 * time.Hour
	return NewService(repo, cfg), repo
}

func registerTraveler(t *testing.T, svc Service) *AuthResponse {
	t.Helper()
	resp, err := svc.Register(context.Background(), &RegisterRequest{
		FirstName: "Ada",
		LastName:  "Lovelace",
		Email:     "ada@example.com",
		Password:  "password123",
	})
	require.NoError(t, err)
	return resp
}

func TestRegisterDefaultsToUserRole(t *testing.T) {
	svc, _ := newAuthService(t)

	resp := registerTraveler(t, svc)
	assert.Equal(t, string(users.RoleUser), resp.User.Role)
	assert.False(t, resp.User.HasPaymentProfile)
	assert.NotEmpty(t, resp.AccessToken)
	assert.NotEmpty(t, resp.RefreshToken)
}

func TestRegisterRejectsDuplicateEmail(t *testing.T) {
	svc, _ := newAuthService(t)
	registerTraveler(t, svc)

	_, err := svc.Register(context.Background(), &RegisterRequest{
		FirstName: "Ada",
		LastName:  "Lovelace",
		Email:     "ada@example.com",
		Password:  "password123",
	})
	assert.ErrorIs(t, err, ErrUserAlreadyExists)
}

func TestRegisterNormalizesUnknownRole(t *testing.T) {
	svc, _ := newAuthService(t)

	resp, err := svc.Register(context.Background(), &RegisterRequest{
		FirstName: "Grace",
		LastName:  "Hopper",
		Email:     "grace@example.com",
		Password:  "password123",
		Role:      "superuser",
	})
	require.NoError(t, err)
	assert.Equal(t, string(users.RoleUser), resp.User.Role)
}

func TestLoginWrongPasswordRejected(t *testing.T) {
	svc, _ := newAuthService(t)
	registerTraveler(t, svc)

	_, err := svc.Login(context.Background(), &LoginRequest{
		Email:    "ada@example.com",
		Password: "wrong-password",
	})
	assert.ErrorIs(t, err, ErrInvalidCredentials)
}

func TestLoginUnknownEmailMasksNotFound(t *testing.T) {
	svc, _ := newAuthService(t)

	_, err := svc.Login(context.Background(), &LoginRequest{
		Email:    "nobody@example.com",
		Password: "password123",
	})
	assert.ErrorIs(t, err, ErrInvalidCredentials)
}

func TestAccessTokenRoundTrip(t *testing.T) {
	svc, _ := newAuthService(t)
	resp := registerTraveler(t, svc)

	claims, err := svc.ValidateToken(resp.AccessToken)
	require.NoError(t, err)
	assert.Equal(t, resp.User.ID, claims.UserID)
	assert.Equal(t, "ada@example.com", claims.Email)
	assert.Equal(t, "access", claims.Type)
}

func TestRefreshRejectsAccessToken(t *testing.T) {
	svc, _ := newAuthService(t)
	resp := registerTraveler(t, svc)

	// Only a refresh-typed token may mint a new pair.
	_, err := svc.RefreshToken(context.Background(), resp.AccessToken)
	assert.ErrorIs(t, err, ErrInvalidToken)

	pair, err := svc.RefreshToken(context.Background(), resp.RefreshToken)
	require.NoError(t, err)
	assert.NotEmpty(t, pair.AccessToken)
}

func TestChangePasswordRequiresCurrentPassword(t *testing.T) {
	svc, repo := newAuthService(t)
	resp := registerTraveler(t, svc)
	ctx := context.Background()

	err := svc.ChangePassword(ctx, resp.User.ID, &ChangePasswordRequest{
		CurrentPassword: "wrong-password",
		NewPassword:     "newpassword123",
	})
	assert.ErrorIs(t, err, ErrInvalidCredentials)

	err = svc.ChangePassword(ctx, resp.User.ID, &ChangePasswordRequest{
		CurrentPassword: "password123",
		NewPassword:     "newpassword123",
	})
	require.NoError(t, err)

	stored, err := repo.GetUserByID(ctx, resp.User.ID)
	require.NoError(t, err)
	assert.NoError(t, bcrypt.CompareHashAndPassword([]byte(stored.Password), []byte("newpassword123")))
}

func TestProfileReflectsPaymentCustomer(t *testing.T) {
	svc, repo := newAuthService(t)
	resp := registerTraveler(t, svc)
	ctx := context.Background()

	profile, err := svc.Profile(ctx, resp.User.ID)
	require.NoError(t, err)
	assert.False(t, profile.HasPaymentProfile)

	require.NoError(t, repo.UpdateStripeCustomerID(ctx, resp.User.ID, "cus_123"))

	profile, err = svc.Profile(ctx, resp.User.ID)
	require.NoError(t, err)
	assert.True(t, profile.HasPaymentProfile)
	assert.Equal(t, "Ada", profile.FirstName)
}
