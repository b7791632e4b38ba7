package repository

import (
	"context"
	"encoding/json"
	"time"

	"agrimarket/internal/domain"

	"gorm.io/gorm"
)

type LaborProfileRepository struct {
	db *gorm.DB
}

func NewLaborProfileRepository(db *gorm.DB) *LaborProfileRepository {
	return &LaborProfileRepository{db: db}
}

type laborProfileModel struct {
	ID              int64     `gorm:"column:id;primaryKey"`
	UserID          int64     `gorm:"column:user_id;uniqueIndex"`
	Skills          []byte    `gorm:"column:skills;type:json"`
	DailyWage       float64   `gorm:"column:daily_wage"`
	ExperienceYears int       `gorm:"column:experience_years"`
	IsAvailable     bool      `gorm:"column:is_available"`
	IsVerified      bool      `gorm:"column:is_verified"`
	CreatedAt       time.Time `gorm:"column:created_at"`
	UpdatedAt       time.Time `gorm:"column:updated_at"`
}

func (laborProfileModel) TableName() string { return "labor_profiles" }

func toDomainLaborProfile(m laborProfileModel) *domain.LaborProfile {
	skills := []string{}
	if len(m.Skills) > 0 {
		_ = json.Unmarshal(m.Skills, &skills)
	}

	return &domain.LaborProfile{
		ID:              m.ID,
		UserID:          m.UserID,
		Skills:          skills,
		DailyWage:       m.DailyWage,
		ExperienceYears: m.ExperienceYears,
		IsAvailable:     m.IsAvailable,
		IsVerified:      m.IsVerified,
		CreatedAt:       m.CreatedAt,
		UpdatedAt:       m.UpdatedAt,
	}
}

func toLaborProfileModel(p *domain.LaborProfile) (laborProfileModel, error) {
	skills := p.Skills
	if skills == nil {
		skills = []string{}
	}
	raw, err := json.Marshal(skills)
	if err != nil {
		return laborProfileModel{}, err
	}

	return laborProfileModel{
		ID:              p.ID,
		UserID:          p.UserID,
		Skills:          raw,
		DailyWage:       p.DailyWage,
		ExperienceYears: p.ExperienceYears,
		IsAvailable:     p.IsAvailable,
		IsVerified:      p.IsVerified,
		CreatedAt:       p.CreatedAt,
		UpdatedAt:       p.UpdatedAt,
	}, nil
}

func (r *LaborProfileRepository) Create(ctx context.Context, p *domain.LaborProfile) error {
	m, err := toLaborProfileModel(p)
	if err != nil {
		return err
	}
	tx := r.db.WithContext(ctx).Create(&m)
	if tx.Error != nil {
		return tx.Error
	}
	*p = *toDomainLaborProfile(m)
	return nil
}

func (r *LaborProfileRepository) GetByUserID(ctx context.Context, userID int64) (*domain.LaborProfile, error) {
	var m laborProfileModel
	tx := r.db.WithContext(ctx).Where("user_id = ?", userID).First(&m)
	if tx.Error != nil {
		return nil, tx.Error
	}
	return toDomainLaborProfile(m), nil
}

func (r *LaborProfileRepository) Update(ctx context.Context, p *domain.LaborProfile) error {
	m, err := toLaborProfileModel(p)
	if err != nil {
		return err
	}
	return r.db.WithContext(ctx).
		Model(&laborProfileModel{}).
		Where("user_id = ?", p.UserID).
		Updates(map[string]any{
			"skills":           m.Skills,
			"daily_wage":       m.DailyWage,
			"experience_years": m.ExperienceYears,
			"is_available":     m.IsAvailable,
		}).Error
}

func (r *LaborProfileRepository) SetAvailability(ctx context.Context, userID int64, available bool) error {
	return r.db.WithContext(ctx).
		Model(&laborProfileModel{}).
		Where("user_id = ?", userID).
		Update("is_available", available).Error
}

// LaborerListing is a directory row: the labor profile with its user's
// public contact details.
type LaborerListing struct {
	UserID          int64   `gorm:"column:user_id"`
	Name            string  `gorm:"column:name"`
	Phone           *string `gorm:"column:phone"`
	Skills          []byte  `gorm:"column:skills"`
	DailyWage       float64 `gorm:"column:daily_wage"`
	ExperienceYears int     `gorm:"column:experience_years"`
	IsAvailable     bool    `gorm:"column:is_available"`
	IsVerified      bool    `gorm:"column:is_verified"`
}

// ListAvailable returns available laborers, verified profiles first.
func (r *LaborProfileRepository) ListAvailable(ctx context.Context) ([]LaborerListing, error) {
	var rows []LaborerListing
	q := `
SELECT lp.user_id, u.name, u.phone, lp.skills, lp.daily_wage,
       lp.experience_years, lp.is_available, lp.is_verified
FROM labor_profiles lp
JOIN users u ON u.id = lp.user_id
WHERE lp.is_available = ?
ORDER BY lp.is_verified DESC, lp.daily_wage ASC
`
	tx := r.db.WithContext(ctx).Raw(q, true).Scan(&rows)
	if tx.Error != nil {
		return nil, tx.Error
	}
	return rows, nil
}
