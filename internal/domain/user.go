package domain

import "time"

type UserRole string

const (
	RoleFarmer  UserRole = "farmer"
	RoleSeller  UserRole = "seller"
	RoleLaborer UserRole = "laborer"
)

// ValidRole reports whether r is a role a user can register with.
func ValidRole(r UserRole) bool {
	switch r {
	case RoleFarmer, RoleSeller, RoleLaborer:
		return true
	}
	return false
}

type User struct {
	ID           int64     `json:"id"`
	Email        string    `json:"email" validate:"required,email"`
	PasswordHash string    `json:"-"`
	Name         string    `json:"name"`
	Phone        string    `json:"phone,omitempty"`
	Role         UserRole  `json:"role"`
	AvatarURL    string    `json:"avatar_url,omitempty"`
	CreatedAt    time.Time `json:"created_at"`
	UpdatedAt    time.Time `json:"updated_at"`
}
