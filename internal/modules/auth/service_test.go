package auth

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"

	"tourcrm/internal/domain"
	"tourcrm/internal/repository"
)

type MockUserRepository struct {
	mock.Mock
}

func (m *MockUserRepository) GetByEmail(ctx context.Context, email string) (*domain.User, error) {
	args := m.Called(ctx, email)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.User), args.Error(1)
}

func (m *MockUserRepository) Create(ctx context.Context, u *domain.User) error {
	args := m.Called(ctx, u)
	if u != nil {
		u.ID = 999
	}
	return args.Error(0)
}

type stubJWT struct{}

func (stubJWT) GenerateToken(userID int64, email, role string) (string, error) {
	return "stub-token", nil
}

func hashOf(t *testing.T, password string) string {
	t.Helper()
	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.MinCost)
	require.NoError(t, err)
	return string(hash)
}

func TestLogin_Success(t *testing.T) {
	users := new(MockUserRepository)
	svc := NewService(users, stubJWT{})

	users.On("GetByEmail", mock.Anything, "admin@demo.com").Return(&domain.User{
		ID:           1,
		Email:        "admin@demo.com",
		PasswordHash: hashOf(t, "demo123"),
		Role:         domain.RoleAdmin,
	}, nil)

	resp, err := svc.Login(context.Background(), LoginRequest{Email: "admin@demo.com", Password: "demo123"})
	require.NoError(t, err)
	assert.Equal(t, "stub-token", resp.Token)
	assert.Equal(t, domain.RoleAdmin, resp.User.Role)
}

func TestLogin_WrongPassword(t *testing.T) {
	users := new(MockUserRepository)
	svc := NewService(users, stubJWT{})

	users.On("GetByEmail", mock.Anything, "admin@demo.com").Return(&domain.User{
		ID:           1,
		Email:        "admin@demo.com",
		PasswordHash: hashOf(t, "demo123"),
	}, nil)

	_, err := svc.Login(context.Background(), LoginRequest{Email: "admin@demo.com", Password: "wrong"})
	assert.ErrorIs(t, err, ErrInvalidCredentials)
}

func TestLogin_UnknownUser(t *testing.T) {
	users := new(MockUserRepository)
	svc := NewService(users, stubJWT{})

	users.On("GetByEmail", mock.Anything, "ghost@demo.com").Return(nil, repository.ErrNotFound)

	_, err := svc.Login(context.Background(), LoginRequest{Email: "ghost@demo.com", Password: "demo123"})
	assert.ErrorIs(t, err, ErrInvalidCredentials)
}

func TestLogin_NoPasswordSet(t *testing.T) {
	users := new(MockUserRepository)
	svc := NewService(users, stubJWT{})

	users.On("GetByEmail", mock.Anything, "nopass@demo.com").Return(&domain.User{
		ID:    2,
		Email: "nopass@demo.com",
	}, nil)

	_, err := svc.Login(context.Background(), LoginRequest{Email: "nopass@demo.com", Password: "anything"})
	assert.ErrorIs(t, err, ErrInvalidCredentials)
}

func TestDemoLogin_CreatesUser(t *testing.T) {
	users := new(MockUserRepository)
	svc := NewService(users, stubJWT{})

	users.On("GetByEmail", mock.Anything, "admin@demo.com").Return(nil, repository.ErrNotFound)
	users.On("Create", mock.Anything, mock.MatchedBy(func(u *domain.User) bool {
		return u.Email == "admin@demo.com" && u.Role == domain.RoleAdmin && u.PasswordHash != ""
	})).Return(nil)

	resp, err := svc.DemoLogin(context.Background(), domain.RoleAdmin)
	require.NoError(t, err)
	assert.Equal(t, "stub-token", resp.Token)
	users.AssertExpectations(t)
}

func TestDemoLogin_ExistingUser(t *testing.T) {
	users := new(MockUserRepository)
	svc := NewService(users, stubJWT{})

	users.On("GetByEmail", mock.Anything, "manager@demo.com").Return(&domain.User{
		ID:    5,
		Email: "manager@demo.com",
		Role:  domain.RoleManager,
	}, nil)

	resp, err := svc.DemoLogin(context.Background(), domain.RoleManager)
	require.NoError(t, err)
	assert.Equal(t, int64(5), resp.User.ID)
	users.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
}

func TestDemoLogin_InvalidRole(t *testing.T) {
	svc := NewService(new(MockUserRepository), stubJWT{})

	_, err := svc.DemoLogin(context.Background(), domain.Role("SUPERUSER"))
	assert.ErrorIs(t, err, ErrInvalidRole)
}
