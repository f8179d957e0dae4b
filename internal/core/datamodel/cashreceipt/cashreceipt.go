package cashreceipt

import "time"

type CashReceipt struct {
	ID               int64      `gorm:"primaryKey"`
	ProjectID        int64      `gorm:"column:project_id;not null;index"`
	FinanceReceipt   float64    `gorm:"column:finance_receipt;not null;default:0"`
	ConfirmedReceipt float64    `gorm:"column:confirmed_receipt;not null;default:0"`
	DevelopmentSplit float64    `gorm:"column:development_split;not null;default:0"`
	DepartmentSplit  float64    `gorm:"column:department_split;not null;default:0"`
	OtherSplit       float64    `gorm:"column:other_split;not null;default:0"`
	AdjustedReceipt  float64    `gorm:"column:adjusted_receipt;not null;default:0"`
	InvoiceDate      *time.Time `gorm:"column:invoice_date"`
	CreatedAt        time.Time  `gorm:"column:created_at;autoCreateTime"`
	UpdatedAt        time.Time  `gorm:"column:updated_at;autoUpdateTime"`
}

func (CashReceipt) TableName() string {
	return "cash_receipts"
}
