package timesheet

import (
	"time"

	timesheetDatamodel "github.com/JeremyDong22/gp-calculator/internal/core/datamodel/timesheet"
)

// Timesheet entry status. Pending entries may be edited by their owner and
// resolved by an empowered reviewer; approved and rejected are terminal for
// the review flow.
const (
	StatusPending  = "pending"
	StatusApproved = "approved"
	StatusRejected = "rejected"
)

type TimesheetEntry struct {
	ID          int64     `json:"id"`
	UserID      int64     `json:"user_id"`
	ProjectID   int64     `json:"project_id"`
	StartDate   time.Time `json:"start_date"`
	EndDate     time.Time `json:"end_date"`
	TotalHours  float64   `json:"total_hours"`
	Description string    `json:"description"`
	Status      string    `json:"status"`
	ApproverID  *int64    `json:"approver_id,omitempty"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}

func (t *TimesheetEntry) IsPending() bool {
	return t.Status == StatusPending
}

func ToDataModel(t *TimesheetEntry) *timesheetDatamodel.TimesheetEntry {
	return &timesheetDatamodel.TimesheetEntry{
		ID:          t.ID,
		UserID:      t.UserID,
		ProjectID:   t.ProjectID,
		StartDate:   t.StartDate,
		EndDate:     t.EndDate,
		TotalHours:  t.TotalHours,
		Description: t.Description,
		Status:      t.Status,
		ApproverID:  t.ApproverID,
		CreatedAt:   t.CreatedAt,
		UpdatedAt:   t.UpdatedAt,
	}
}

func FromDataModel(t *timesheetDatamodel.TimesheetEntry) *TimesheetEntry {
	return &TimesheetEntry{
		ID:          t.ID,
		UserID:      t.UserID,
		ProjectID:   t.ProjectID,
		StartDate:   t.StartDate,
		EndDate:     t.EndDate,
		TotalHours:  t.TotalHours,
		Description: t.Description,
		Status:      t.Status,
		ApproverID:  t.ApproverID,
		CreatedAt:   t.CreatedAt,
		UpdatedAt:   t.UpdatedAt,
	}
}

func FromDataModelSlice(entries []*timesheetDatamodel.TimesheetEntry) []*TimesheetEntry {
	result := make([]*TimesheetEntry, len(entries))
	for i, t := range entries {
		result[i] = FromDataModel(t)
	}
	return result
}
