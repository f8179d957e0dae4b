package user

import (
	"time"

	"github.com/JeremyDong22/gp-calculator/internal/auth"
	userDatamodel "github.com/JeremyDong22/gp-calculator/internal/core/datamodel/user"
)

// User is a staff directory entry. DailyRate is the cost rate used for labor
// cost aggregation; DailyWage is the pay rate and is never part of project
// cost.
type User struct {
	ID        int64     `json:"id"`
	Email     string    `json:"email"`
	Name      string    `json:"name"`
	Role      auth.Role `json:"role"`
	DailyRate float64   `json:"daily_rate"`
	DailyWage float64   `json:"daily_wage"`
	Level     int       `json:"level"`
	IsActive  bool      `json:"is_active"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

func ToDataModel(u *User, passwordHash string) *userDatamodel.User {
	return &userDatamodel.User{
		ID:           u.ID,
		Email:        u.Email,
		Name:         u.Name,
		PasswordHash: passwordHash,
		Role:         string(u.Role),
		DailyRate:    u.DailyRate,
		DailyWage:    u.DailyWage,
		Level:        u.Level,
		IsActive:     u.IsActive,
		CreatedAt:    u.CreatedAt,
		UpdatedAt:    u.UpdatedAt,
	}
}

func FromDataModel(u *userDatamodel.User) *User {
	return &User{
		ID:        u.ID,
		Email:     u.Email,
		Name:      u.Name,
		Role:      auth.Role(u.Role),
		DailyRate: u.DailyRate,
		DailyWage: u.DailyWage,
		Level:     u.Level,
		IsActive:  u.IsActive,
		CreatedAt: u.CreatedAt,
		UpdatedAt: u.UpdatedAt,
	}
}

func FromDataModelSlice(users []*userDatamodel.User) []*User {
	result := make([]*User, len(users))
	for i, u := range users {
		result[i] = FromDataModel(u)
	}
	return result
}
