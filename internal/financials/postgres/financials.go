package postgres

import (
	"time"

	"github.com/JeremyDong22/gp-calculator/internal/financials"
	"gorm.io/gorm"
)

// FinancialsRepository implements the financials.Repository interface with
// read-only join queries.
type FinancialsRepository struct {
	db *gorm.DB
}

func NewFinancialsRepository(db *gorm.DB) financials.Repository {
	return &FinancialsRepository{db: db}
}

func (r *FinancialsRepository) ApprovedLaborRows(projectID int64, cutoff *time.Time) ([]financials.LaborRow, error) {
	query := r.db.Table("timesheet_entries t").
		Select("t.total_hours AS total_hours, u.daily_rate AS daily_rate").
		Joins("JOIN users u ON u.id = t.user_id").
		Where("t.project_id = ? AND t.status = ?", projectID, "approved")
	if cutoff != nil {
		query = query.Where("t.end_date <= ?", *cutoff)
	}

	var rows []financials.LaborRow
	if err := query.Scan(&rows).Error; err != nil {
		return nil, err
	}
	return rows, nil
}

func (r *FinancialsRepository) ApprovedExpenseTotal(projectID int64, cutoff *time.Time) (float64, error) {
	query := r.db.Table("expense_entries").
		Select("COALESCE(SUM(amount), 0)").
		Where("project_id = ? AND status = ?", projectID, "approved")
	if cutoff != nil {
		query = query.Where("date <= ?", *cutoff)
	}

	var total float64
	if err := query.Scan(&total).Error; err != nil {
		return 0, err
	}
	return total, nil
}
