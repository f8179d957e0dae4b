package postgres

import (
	"time"

	expenseDatamodel "github.com/JeremyDong22/gp-calculator/internal/core/datamodel/expense"
	"github.com/JeremyDong22/gp-calculator/internal/expense"
	"gorm.io/gorm"
)

// ExpenseRepository implements the expense.Repository interface using GORM.
type ExpenseRepository struct {
	db *gorm.DB
}

func NewExpenseRepository(db *gorm.DB) expense.Repository {
	return &ExpenseRepository{db: db}
}

func (r *ExpenseRepository) Create(e *expense.ExpenseEntry) error {
	dm := expense.ToDataModel(e)
	if err := r.db.Create(dm).Error; err != nil {
		return err
	}
	e.ID = dm.ID
	return nil
}

func (r *ExpenseRepository) GetByID(id int64) (*expense.ExpenseEntry, error) {
	var dm expenseDatamodel.ExpenseEntry
	if err := r.db.Where("id = ?", id).First(&dm).Error; err != nil {
		return nil, err
	}
	return expense.FromDataModel(&dm), nil
}

func (r *ExpenseRepository) GetByUserID(userID int64) ([]*expense.ExpenseEntry, error) {
	var dms []*expenseDatamodel.ExpenseEntry
	if err := r.db.Where("user_id = ?", userID).Order("date DESC").Find(&dms).Error; err != nil {
		return nil, err
	}
	return expense.FromDataModelSlice(dms), nil
}

func (r *ExpenseRepository) GetByProjectID(projectID int64) ([]*expense.ExpenseEntry, error) {
	var dms []*expenseDatamodel.ExpenseEntry
	if err := r.db.Where("project_id = ?", projectID).Order("date DESC").Find(&dms).Error; err != nil {
		return nil, err
	}
	return expense.FromDataModelSlice(dms), nil
}

func (r *ExpenseRepository) Update(e *expense.ExpenseEntry) error {
	return r.db.Model(&expenseDatamodel.ExpenseEntry{}).
		Where("id = ?", e.ID).
		Updates(map[string]interface{}{
			"date":        e.Date,
			"category":    e.Category,
			"amount":      e.Amount,
			"description": e.Description,
			"receipt_url": e.ReceiptURL,
			"updated_at":  time.Now(),
		}).Error
}

// UpdateStatusCAS performs the conditional status write: zero rows affected
// means another actor moved the entry first.
func (r *ExpenseRepository) UpdateStatusCAS(id int64, from, to string) (bool, error) {
	tx := r.db.Model(&expenseDatamodel.ExpenseEntry{}).
		Where("id = ? AND status = ?", id, from).
		Updates(map[string]interface{}{
			"status":     to,
			"updated_at": time.Now(),
		})
	if tx.Error != nil {
		return false, tx.Error
	}
	return tx.RowsAffected > 0, nil
}

func (r *ExpenseRepository) Delete(id int64) error {
	return r.db.Delete(&expenseDatamodel.ExpenseEntry{}, id).Error
}
