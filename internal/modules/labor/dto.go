package labor

type UpdateProfileRequest struct {
	UserID          int64   `json:"-"`
	DailyWage       float64 `json:"daily_wage" binding:"gte=0"`
	ExperienceYears int     `json:"experience_years" binding:"gte=0"`
	IsAvailable     bool    `json:"is_available"`
}

type AddSkillRequest struct {
	Skill string `json:"skill" binding:"required"`
}

type SetAvailabilityRequest struct {
	IsAvailable bool `json:"is_available"`
}

// LaborerListing is a public directory row.
type LaborerListing struct {
	UserID          int64    `json:"user_id"`
	Name            string   `json:"name"`
	Phone           string   `json:"phone,omitempty"`
	Skills          []string `json:"skills"`
	DailyWage       float64  `json:"daily_wage"`
	ExperienceYears int      `json:"experience_years"`
	IsAvailable     bool     `json:"is_available"`
	IsVerified      bool     `json:"is_verified"`
}
