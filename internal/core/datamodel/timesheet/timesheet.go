package timesheet

import "time"

type TimesheetEntry struct {
	ID          int64     `gorm:"primaryKey"`
	UserID      int64     `gorm:"column:user_id;not null;index"`
	ProjectID   int64     `gorm:"column:project_id;not null;index"`
	StartDate   time.Time `gorm:"column:start_date;type:date;not null"`
	EndDate     time.Time `gorm:"column:end_date;type:date;not null"`
	TotalHours  float64   `gorm:"column:total_hours;not null"`
	Description string    `gorm:"column:description"`
	Status      string    `gorm:"column:status;not null;default:pending"`
	ApproverID  *int64    `gorm:"column:approver_id"`
	CreatedAt   time.Time `gorm:"column:created_at;autoCreateTime"`
	UpdatedAt   time.Time `gorm:"column:updated_at;autoUpdateTime"`
}

func (TimesheetEntry) TableName() string {
	return "timesheet_entries"
}
