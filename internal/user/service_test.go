package user

import (
	"context"
	"errors"
	"testing"
	"time"

	"studiobook/internal/auth"
	"studiobook/internal/membership"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type MockUserRepo struct{ mock.Mock }

func (m *MockUserRepo) Create(ctx context.Context, name, email, passwordHash, role, tier string) (*User, error) {
	args := m.Called(ctx, name, email, passwordHash, role, tier)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*User), args.Error(1)
}

func (m *MockUserRepo) FindByEmail(ctx context.Context, email string) (*User, error) {
	args := m.Called(ctx, email)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*User), args.Error(1)
}

func (m *MockUserRepo) FindByID(ctx context.Context, id int) (*User, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*User), args.Error(1)
}

func (m *MockUserRepo) EmailExists(ctx context.Context, email string) (bool, error) {
	args := m.Called(ctx, email)
	return args.Bool(0), args.Error(1)
}

func (m *MockUserRepo) RecordLateCancellationStrike(ctx context.Context, userID int) (int, error) {
	args := m.Called(ctx, userID)
	return args.Int(0), args.Error(1)
}

func (m *MockUserRepo) SetBookingSuspension(ctx context.Context, userID int, until time.Time) error {
	return m.Called(ctx, userID, until).Error(0)
}

const testSecret = "test-secret"

func TestRegister(t *testing.T) {
	ctx := context.Background()

	t.Run("defaults to creator tier", func(t *testing.T) {
		repo := new(MockUserRepo)
		svc := NewService(repo, testSecret)

		repo.On("EmailExists", ctx, "new@example.com").Return(false, nil)
		repo.On("Create", ctx, "New", "new@example.com", mock.AnythingOfType("string"), "member", "creator").
			Return(&User{ID: 1, Name: "New", Email: "new@example.com", Role: "member", Tier: membership.TierCreator}, nil)

		u, access, refresh, err := svc.Register(ctx, RegisterRequest{
			Name: "New", Email: "new@example.com", Password: "password123",
		})
		require.NoError(t, err)
		assert.Equal(t, membership.TierCreator, u.Tier)
		assert.NotEmpty(t, access)
		assert.NotEmpty(t, refresh)
		repo.AssertExpectations(t)
	})

	t.Run("explicit tier", func(t *testing.T) {
		repo := new(MockUserRepo)
		svc := NewService(repo, testSecret)

		repo.On("EmailExists", ctx, "pro@example.com").Return(false, nil)
		repo.On("Create", ctx, "Pro", "pro@example.com", mock.AnythingOfType("string"), "member", "executive").
			Return(&User{ID: 2, Email: "pro@example.com", Role: "member", Tier: membership.TierExecutive}, nil)

		_, _, _, err := svc.Register(ctx, RegisterRequest{
			Name: "Pro", Email: "pro@example.com", Password: "password123", Tier: "executive",
		})
		require.NoError(t, err)
	})

	t.Run("unknown tier rejected before any write", func(t *testing.T) {
		repo := new(MockUserRepo)
		svc := NewService(repo, testSecret)

		repo.On("EmailExists", ctx, "x@example.com").Return(false, nil)

		_, _, _, err := svc.Register(ctx, RegisterRequest{
			Name: "X", Email: "x@example.com", Password: "password123", Tier: "platinum",
		})
		assert.ErrorIs(t, err, membership.ErrUnknownTier)
		repo.AssertNotCalled(t, "Create")
	})

	t.Run("duplicate email", func(t *testing.T) {
		repo := new(MockUserRepo)
		svc := NewService(repo, testSecret)

		repo.On("EmailExists", ctx, "taken@example.com").Return(true, nil)

		_, _, _, err := svc.Register(ctx, RegisterRequest{
			Name: "Dup", Email: "taken@example.com", Password: "password123",
		})
		assert.ErrorIs(t, err, ErrEmailExists)
	})
}

func TestLogin(t *testing.T) {
	ctx := context.Background()

	hash, err := auth.HashPassword("correct-horse")
	require.NoError(t, err)

	t.Run("success", func(t *testing.T) {
		repo := new(MockUserRepo)
		svc := NewService(repo, testSecret)

		repo.On("FindByEmail", ctx, "ada@example.com").
			Return(&User{ID: 1, Email: "ada@example.com", PasswordHash: hash, Role: "member"}, nil)

		u, access, _, err := svc.Login(ctx, LoginRequest{Email: "ada@example.com", Password: "correct-horse"})
		require.NoError(t, err)
		assert.Equal(t, 1, u.ID)
		assert.NotEmpty(t, access)
	})

	t.Run("wrong password", func(t *testing.T) {
		repo := new(MockUserRepo)
		svc := NewService(repo, testSecret)

		repo.On("FindByEmail", ctx, "ada@example.com").
			Return(&User{ID: 1, PasswordHash: hash}, nil)

		_, _, _, err := svc.Login(ctx, LoginRequest{Email: "ada@example.com", Password: "wrong"})
		assert.ErrorIs(t, err, ErrInvalidCredentials)
	})

	t.Run("unknown email", func(t *testing.T) {
		repo := new(MockUserRepo)
		svc := NewService(repo, testSecret)

		repo.On("FindByEmail", ctx, "ghost@example.com").Return(nil, errors.New("sql: no rows in result set"))

		_, _, _, err := svc.Login(ctx, LoginRequest{Email: "ghost@example.com", Password: "whatever"})
		assert.ErrorIs(t, err, ErrInvalidCredentials)
	})
}

func TestRefreshToken(t *testing.T) {
	ctx := context.Background()
	repo := new(MockUserRepo)
	svc := NewService(repo, testSecret)

	refresh, err := auth.GenerateRefreshToken(5, "m@example.com", "member", testSecret)
	require.NoError(t, err)

	repo.On("FindByID", ctx, 5).Return(&User{ID: 5, Email: "m@example.com"}, nil)

	access, u, err := svc.RefreshToken(ctx, refresh)
	require.NoError(t, err)
	assert.NotEmpty(t, access)
	assert.Equal(t, 5, u.ID)

	t.Run("access token rejected as refresh", func(t *testing.T) {
		accessTok, err := auth.GenerateAccessToken(5, "m@example.com", "member", testSecret)
		require.NoError(t, err)

		_, _, err = svc.RefreshToken(ctx, accessTok)
		assert.Error(t, err)
	})
}
