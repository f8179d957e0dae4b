package user

import (
	"errors"
	"strings"

	"github.com/JeremyDong22/gp-calculator/internal/auth"
)

type CreateUserDTO struct {
	Email     string  `json:"email"`
	Name      string  `json:"name"`
	Password  string  `json:"password"`
	Role      string  `json:"role"`
	DailyRate float64 `json:"daily_rate"`
	DailyWage float64 `json:"daily_wage"`
	Level     int     `json:"level"`
}

func (dto CreateUserDTO) Validate() error {
	if strings.TrimSpace(dto.Email) == "" || !strings.Contains(dto.Email, "@") {
		return errors.New("a valid email is required")
	}
	if strings.TrimSpace(dto.Name) == "" {
		return errors.New("name is required")
	}
	if len(dto.Password) < 8 {
		return errors.New("password must be at least 8 characters")
	}
	if _, err := auth.ParseRole(dto.Role); err != nil {
		return err
	}
	if dto.DailyRate < 0 || dto.DailyWage < 0 {
		return errors.New("rates cannot be negative")
	}
	return nil
}

type UpdateRatesDTO struct {
	DailyRate *float64 `json:"daily_rate,omitempty"`
	DailyWage *float64 `json:"daily_wage,omitempty"`
	Level     *int     `json:"level,omitempty"`
}

func (dto UpdateRatesDTO) Validate() error {
	if dto.DailyRate == nil && dto.DailyWage == nil && dto.Level == nil {
		return errors.New("nothing to update")
	}
	if dto.DailyRate != nil && *dto.DailyRate < 0 {
		return errors.New("daily rate cannot be negative")
	}
	if dto.DailyWage != nil && *dto.DailyWage < 0 {
		return errors.New("daily wage cannot be negative")
	}
	return nil
}
