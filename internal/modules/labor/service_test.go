package labor

import (
	"context"
	"testing"

	"agrimarket/internal/domain"
	"agrimarket/internal/repository"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"gorm.io/gorm"
)

type MockLaborProfileRepository struct {
	mock.Mock
}

func (m *MockLaborProfileRepository) GetByUserID(ctx context.Context, userID int64) (*domain.LaborProfile, error) {
	args := m.Called(ctx, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.LaborProfile), args.Error(1)
}

func (m *MockLaborProfileRepository) Update(ctx context.Context, p *domain.LaborProfile) error {
	args := m.Called(ctx, p)
	return args.Error(0)
}

func (m *MockLaborProfileRepository) SetAvailability(ctx context.Context, userID int64, available bool) error {
	args := m.Called(ctx, userID, available)
	return args.Error(0)
}

func (m *MockLaborProfileRepository) ListAvailable(ctx context.Context) ([]repository.LaborerListing, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]repository.LaborerListing), args.Error(1)
}

func profileWithSkills(skills ...string) *domain.LaborProfile {
	return &domain.LaborProfile{
		ID:     1,
		UserID: 9,
		Skills: skills,
	}
}

func TestService_AddSkill(t *testing.T) {
	mockProfiles := new(MockLaborProfileRepository)

	mockProfiles.On("GetByUserID", mock.Anything, int64(9)).Return(profileWithSkills("Ploughing"), nil)
	mockProfiles.On("Update", mock.Anything, mock.Anything).Return(nil)

	service := NewService(mockProfiles)

	p, err := service.AddSkill(context.Background(), 9, "Harvesting")

	assert.NoError(t, err)
	assert.Equal(t, []string{"Ploughing", "Harvesting"}, p.Skills)
}

func TestService_AddSkill_DuplicateCaseInsensitive(t *testing.T) {
	mockProfiles := new(MockLaborProfileRepository)

	mockProfiles.On("GetByUserID", mock.Anything, int64(9)).Return(profileWithSkills("Ploughing"), nil)

	service := NewService(mockProfiles)

	_, err := service.AddSkill(context.Background(), 9, "ploughing")

	assert.ErrorIs(t, err, ErrSkillExists)
	mockProfiles.AssertNotCalled(t, "Update", mock.Anything, mock.Anything)
}

func TestService_AddSkill_BlankRejected(t *testing.T) {
	mockProfiles := new(MockLaborProfileRepository)
	service := NewService(mockProfiles)

	_, err := service.AddSkill(context.Background(), 9, "   ")

	assert.ErrorIs(t, err, ErrValidation)
	mockProfiles.AssertNotCalled(t, "GetByUserID", mock.Anything, mock.Anything)
}

func TestService_RemoveSkill(t *testing.T) {
	mockProfiles := new(MockLaborProfileRepository)

	mockProfiles.On("GetByUserID", mock.Anything, int64(9)).Return(profileWithSkills("Ploughing", "Harvesting"), nil)
	mockProfiles.On("Update", mock.Anything, mock.Anything).Return(nil)

	service := NewService(mockProfiles)

	p, err := service.RemoveSkill(context.Background(), 9, "ploughing")

	assert.NoError(t, err)
	assert.Equal(t, []string{"Harvesting"}, p.Skills)
}

func TestService_RemoveSkill_NotFound(t *testing.T) {
	mockProfiles := new(MockLaborProfileRepository)

	mockProfiles.On("GetByUserID", mock.Anything, int64(9)).Return(profileWithSkills("Ploughing"), nil)

	service := NewService(mockProfiles)

	_, err := service.RemoveSkill(context.Background(), 9, "Welding")

	assert.ErrorIs(t, err, ErrSkillNotFound)
	mockProfiles.AssertNotCalled(t, "Update", mock.Anything, mock.Anything)
}

func TestService_GetProfile_NotFound(t *testing.T) {
	mockProfiles := new(MockLaborProfileRepository)

	mockProfiles.On("GetByUserID", mock.Anything, int64(9)).Return(nil, gorm.ErrRecordNotFound)

	service := NewService(mockProfiles)

	_, err := service.GetProfile(context.Background(), 9)

	assert.ErrorIs(t, err, ErrProfileNotFound)
}

func TestService_UpdateProfile_NegativeWage(t *testing.T) {
	mockProfiles := new(MockLaborProfileRepository)
	service := NewService(mockProfiles)

	_, err := service.UpdateProfile(context.Background(), UpdateProfileRequest{UserID: 9, DailyWage: -100})

	assert.ErrorIs(t, err, ErrValidation)
}

func TestService_ListAvailable_DecodesSkills(t *testing.T) {
	mockProfiles := new(MockLaborProfileRepository)

	phone := "+91 98765 43210"
	mockProfiles.On("ListAvailable", mock.Anything).Return([]repository.LaborerListing{
		{UserID: 9, Name: "Suresh", Phone: &phone, Skills: []byte(`["Ploughing","Sowing"]`), DailyWage: 600, IsVerified: true},
		{UserID: 12, Name: "Kiran", Skills: nil, DailyWage: 450},
	}, nil)

	service := NewService(mockProfiles)

	list, err := service.ListAvailable(context.Background())

	assert.NoError(t, err)
	assert.Len(t, list, 2)
	assert.Equal(t, []string{"Ploughing", "Sowing"}, list[0].Skills)
	assert.Equal(t, phone, list[0].Phone)
	assert.Empty(t, list[1].Skills)
	assert.NotNil(t, list[1].Skills)
}
