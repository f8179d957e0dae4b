package timesheet

import (
	"errors"
	"time"
)

type CreateTimesheetDTO struct {
	ProjectID   int64     `json:"project_id"`
	StartDate   time.Time `json:"start_date"`
	EndDate     time.Time `json:"end_date"`
	TotalHours  float64   `json:"total_hours"`
	Description string    `json:"description"`
}

func (dto CreateTimesheetDTO) Validate() error {
	if dto.ProjectID == 0 {
		return errors.New("project reference is required")
	}
	if dto.TotalHours <= 0 {
		return errors.New("total hours must be greater than zero")
	}
	if dto.StartDate.IsZero() || dto.EndDate.IsZero() {
		return errors.New("start and end dates are required")
	}
	if dto.EndDate.Before(dto.StartDate) {
		return errors.New("end date cannot precede start date")
	}
	return nil
}

type UpdateTimesheetDTO struct {
	StartDate   time.Time `json:"start_date"`
	EndDate     time.Time `json:"end_date"`
	TotalHours  float64   `json:"total_hours"`
	Description string    `json:"description"`
}

func (dto UpdateTimesheetDTO) Validate() error {
	if dto.TotalHours <= 0 {
		return errors.New("total hours must be greater than zero")
	}
	if dto.StartDate.IsZero() || dto.EndDate.IsZero() {
		return errors.New("start and end dates are required")
	}
	if dto.EndDate.Before(dto.StartDate) {
		return errors.New("end date cannot precede start date")
	}
	return nil
}
