package auth

import (
	"context"
	"testing"

	"agrimarket/internal/domain"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

type MockUserRepository struct {
	mock.Mock
}

func (m *MockUserRepository) Create(ctx context.Context, u *domain.User) error {
	args := m.Called(ctx, u)
	if u != nil {
		u.ID = 42
	}
	return args.Error(0)
}

func (m *MockUserRepository) GetByID(ctx context.Context, id int64) (*domain.User, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.User), args.Error(1)
}

func (m *MockUserRepository) GetByEmail(ctx context.Context, email string) (*domain.User, error) {
	args := m.Called(ctx, email)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.User), args.Error(1)
}

func (m *MockUserRepository) EmailExists(ctx context.Context, email string) (bool, error) {
	args := m.Called(ctx, email)
	return args.Bool(0), args.Error(1)
}

type MockLaborProfileRepository struct {
	mock.Mock
}

func (m *MockLaborProfileRepository) Create(ctx context.Context, p *domain.LaborProfile) error {
	args := m.Called(ctx, p)
	return args.Error(0)
}

type MockJWTService struct {
	mock.Mock
}

func (m *MockJWTService) GenerateToken(userID int64, role string) (string, error) {
	args := m.Called(userID, role)
	return args.String(0), args.Error(1)
}

func TestService_Register_FarmerSuccess(t *testing.T) {
	mockUsers := new(MockUserRepository)
	mockProfiles := new(MockLaborProfileRepository)
	mockJWT := new(MockJWTService)

	mockUsers.On("EmailExists", mock.Anything, "ravi@example.com").Return(false, nil)
	mockUsers.On("Create", mock.Anything, mock.Anything).Return(nil)

	service := NewService(mockUsers, mockProfiles, mockJWT)

	user, err := service.Register(context.Background(), RegisterRequest{
		Email:    "Ravi@Example.com",
		Password: "secret123",
		Name:     "Ravi Kumar",
		Role:     "farmer",
	})

	assert.NoError(t, err)
	assert.Equal(t, "ravi@example.com", user.Email)
	assert.Equal(t, domain.RoleFarmer, user.Role)
	assert.Empty(t, user.PasswordHash)
	mockProfiles.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
}

func TestService_Register_LaborerGetsEmptyProfile(t *testing.T) {
	mockUsers := new(MockUserRepository)
	mockProfiles := new(MockLaborProfileRepository)
	mockJWT := new(MockJWTService)

	mockUsers.On("EmailExists", mock.Anything, "suresh@example.com").Return(false, nil)
	mockUsers.On("Create", mock.Anything, mock.Anything).Return(nil)

	var profile *domain.LaborProfile
	mockProfiles.On("Create", mock.Anything, mock.Anything).
		Run(func(args mock.Arguments) {
			profile = args.Get(1).(*domain.LaborProfile)
		}).
		Return(nil)

	service := NewService(mockUsers, mockProfiles, mockJWT)

	user, err := service.Register(context.Background(), RegisterRequest{
		Email:    "suresh@example.com",
		Password: "secret123",
		Name:     "Suresh",
		Role:     "laborer",
	})

	assert.NoError(t, err)
	assert.Equal(t, user.ID, profile.UserID)
	assert.Empty(t, profile.Skills)
	assert.True(t, profile.IsAvailable)
}

func TestService_Register_InvalidRole(t *testing.T) {
	mockUsers := new(MockUserRepository)
	mockProfiles := new(MockLaborProfileRepository)
	mockJWT := new(MockJWTService)
	service := NewService(mockUsers, mockProfiles, mockJWT)

	_, err := service.Register(context.Background(), RegisterRequest{
		Email:    "x@example.com",
		Password: "secret123",
		Role:     "admin",
	})

	assert.ErrorIs(t, err, ErrInvalidRole)
	mockUsers.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
}

func TestService_Register_EmailTaken(t *testing.T) {
	mockUsers := new(MockUserRepository)
	mockProfiles := new(MockLaborProfileRepository)
	mockJWT := new(MockJWTService)

	mockUsers.On("EmailExists", mock.Anything, "ravi@example.com").Return(true, nil)

	service := NewService(mockUsers, mockProfiles, mockJWT)

	_, err := service.Register(context.Background(), RegisterRequest{
		Email:    "ravi@example.com",
		Password: "secret123",
		Role:     "farmer",
	})

	assert.ErrorIs(t, err, ErrEmailTaken)
	mockUsers.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
}

func TestService_Login_Success(t *testing.T) {
	mockUsers := new(MockUserRepository)
	mockProfiles := new(MockLaborProfileRepository)
	mockJWT := new(MockJWTService)

	hash, err := bcrypt.GenerateFromPassword([]byte("secret123"), bcrypt.MinCost)
	assert.NoError(t, err)

	mockUsers.On("GetByEmail", mock.Anything, "ravi@example.com").Return(&domain.User{
		ID:           42,
		Email:        "ravi@example.com",
		PasswordHash: string(hash),
		Role:         domain.RoleFarmer,
	}, nil)
	mockJWT.On("GenerateToken", int64(42), "farmer").Return("token-abc", nil)

	service := NewService(mockUsers, mockProfiles, mockJWT)

	result, err := service.Login(context.Background(), LoginRequest{
		Email:    "Ravi@Example.com ",
		Password: "secret123",
	})

	assert.NoError(t, err)
	assert.Equal(t, "token-abc", result.AccessToken)
	assert.Empty(t, result.User.PasswordHash)
}

func TestService_Login_WrongPassword(t *testing.T) {
	mockUsers := new(MockUserRepository)
	mockProfiles := new(MockLaborProfileRepository)
	mockJWT := new(MockJWTService)

	hash, _ := bcrypt.GenerateFromPassword([]byte("secret123"), bcrypt.MinCost)
	mockUsers.On("GetByEmail", mock.Anything, "ravi@example.com").Return(&domain.User{
		ID:           42,
		PasswordHash: string(hash),
	}, nil)

	service := NewService(mockUsers, mockProfiles, mockJWT)

	_, err := service.Login(context.Background(), LoginRequest{
		Email:    "ravi@example.com",
		Password: "wrong",
	})

	assert.ErrorIs(t, err, ErrInvalidCredentials)
	mockJWT.AssertNotCalled(t, "GenerateToken", mock.Anything, mock.Anything)
}

func TestService_Login_UnknownEmail(t *testing.T) {
	mockUsers := new(MockUserRepository)
	mockProfiles := new(MockLaborProfileRepository)
	mockJWT := new(MockJWTService)

	mockUsers.On("GetByEmail", mock.Anything, "nobody@example.com").Return(nil, gorm.ErrRecordNotFound)

	service := NewService(mockUsers, mockProfiles, mockJWT)

	_, err := service.Login(context.Background(), LoginRequest{
		Email:    "nobody@example.com",
		Password: "whatever",
	})

	assert.ErrorIs(t, err, ErrInvalidCredentials)
}
