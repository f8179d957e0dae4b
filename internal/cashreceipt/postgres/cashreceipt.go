package postgres

import (
	"time"

	"github.com/JeremyDong22/gp-calculator/internal/cashreceipt"
	cashreceiptDatamodel "github.com/JeremyDong22/gp-calculator/internal/core/datamodel/cashreceipt"
	"gorm.io/gorm"
)

// CashReceiptRepository implements the cashreceipt.Repository interface using GORM.
type CashReceiptRepository struct {
	db *gorm.DB
}

func NewCashReceiptRepository(db *gorm.DB) cashreceipt.Repository {
	return &CashReceiptRepository{db: db}
}

func (r *CashReceiptRepository) Create(c *cashreceipt.CashReceipt) error {
	dm := cashreceipt.ToDataModel(c)
	if err := r.db.Create(dm).Error; err != nil {
		return err
	}
	c.ID = dm.ID
	return nil
}

func (r *CashReceiptRepository) GetByID(id int64) (*cashreceipt.CashReceipt, error) {
	var dm cashreceiptDatamodel.CashReceipt
	if err := r.db.Where("id = ?", id).First(&dm).Error; err != nil {
		return nil, err
	}
	return cashreceipt.FromDataModel(&dm), nil
}

func (r *CashReceiptRepository) GetByProjectID(projectID int64) (*cashreceipt.CashReceipt, error) {
	var dm cashreceiptDatamodel.CashReceipt
	if err := r.db.Where("project_id = ?", projectID).First(&dm).Error; err != nil {
		return nil, err
	}
	return cashreceipt.FromDataModel(&dm), nil
}

func (r *CashReceiptRepository) Update(c *cashreceipt.CashReceipt) error {
	return r.db.Model(&cashreceiptDatamodel.CashReceipt{}).
		Where("id = ?", c.ID).
		Updates(map[string]interface{}{
			"finance_receipt":   c.FinanceReceipt,
			"confirmed_receipt": c.ConfirmedReceipt,
			"development_split": c.DevelopmentSplit,
			"department_split":  c.DepartmentSplit,
			"other_split":       c.OtherSplit,
			"adjusted_receipt":  c.AdjustedReceipt,
			"invoice_date":      c.InvoiceDate,
			"updated_at":        time.Now(),
		}).Error
}
