package domain

import "time"

type LaborProfile struct {
	ID              int64     `json:"id"`
	UserID          int64     `json:"user_id" validate:"required"`
	Skills          []string  `json:"skills" gorm:"serializer:json;type:json"`
	DailyWage       float64   `json:"daily_wage" validate:"gte=0"`
	ExperienceYears int       `json:"experience_years" validate:"gte=0"`
	IsAvailable     bool      `json:"is_available"`
	IsVerified      bool      `json:"is_verified"`
	CreatedAt       time.Time `json:"created_at"`
	UpdatedAt       time.Time `json:"updated_at"`

	User *User `json:"user,omitempty" gorm:"foreignKey:UserID"`
}
