package postgres

import (
	"time"

	timesheetDatamodel "github.com/JeremyDong22/gp-calculator/internal/core/datamodel/timesheet"
	"github.com/JeremyDong22/gp-calculator/internal/timesheet"
	"gorm.io/gorm"
)

// TimesheetRepository implements the timesheet.Repository interface using GORM.
type TimesheetRepository struct {
	db *gorm.DB
}

func NewTimesheetRepository(db *gorm.DB) timesheet.Repository {
	return &TimesheetRepository{db: db}
}

func (r *TimesheetRepository) Create(t *timesheet.TimesheetEntry) error {
	dm := timesheet.ToDataModel(t)
	if err := r.db.Create(dm).Error; err != nil {
		return err
	}
	t.ID = dm.ID
	return nil
}

func (r *TimesheetRepository) GetByID(id int64) (*timesheet.TimesheetEntry, error) {
	var dm timesheetDatamodel.TimesheetEntry
	if err := r.db.Where("id = ?", id).First(&dm).Error; err != nil {
		return nil, err
	}
	return timesheet.FromDataModel(&dm), nil
}

func (r *TimesheetRepository) GetByUserID(userID int64) ([]*timesheet.TimesheetEntry, error) {
	var dms []*timesheetDatamodel.TimesheetEntry
	if err := r.db.Where("user_id = ?", userID).Order("start_date DESC").Find(&dms).Error; err != nil {
		return nil, err
	}
	return timesheet.FromDataModelSlice(dms), nil
}

func (r *TimesheetRepository) GetByProjectID(projectID int64) ([]*timesheet.TimesheetEntry, error) {
	var dms []*timesheetDatamodel.TimesheetEntry
	if err := r.db.Where("project_id = ?", projectID).Order("start_date DESC").Find(&dms).Error; err != nil {
		return nil, err
	}
	return timesheet.FromDataModelSlice(dms), nil
}

func (r *TimesheetRepository) Update(t *timesheet.TimesheetEntry) error {
	return r.db.Model(&timesheetDatamodel.TimesheetEntry{}).
		Where("id = ?", t.ID).
		Updates(map[string]interface{}{
			"start_date":  t.StartDate,
			"end_date":    t.EndDate,
			"total_hours": t.TotalHours,
			"description": t.Description,
			"updated_at":  time.Now(),
		}).Error
}

// UpdateStatusCAS performs the conditional status write: zero rows affected
// means another reviewer resolved the entry first.
func (r *TimesheetRepository) UpdateStatusCAS(id int64, from, to string, approverID int64) (bool, error) {
	tx := r.db.Model(&timesheetDatamodel.TimesheetEntry{}).
		Where("id = ? AND status = ?", id, from).
		Updates(map[string]interface{}{
			"status":      to,
			"approver_id": approverID,
			"updated_at":  time.Now(),
		})
	if tx.Error != nil {
		return false, tx.Error
	}
	return tx.RowsAffected > 0, nil
}

func (r *TimesheetRepository) Delete(id int64) error {
	return r.db.Delete(&timesheetDatamodel.TimesheetEntry{}, id).Error
}
