package expense

import "time"

type ExpenseEntry struct {
	ID          int64     `gorm:"primaryKey"`
	UserID      int64     `gorm:"column:user_id;not null;index"`
	ProjectID   int64     `gorm:"column:project_id;not null;index"`
	Date        time.Time `gorm:"column:date;type:date;not null"`
	Category    string    `gorm:"column:category;not null"`
	Amount      float64   `gorm:"column:amount;not null"`
	Description string    `gorm:"column:description"`
	ReceiptURL  string    `gorm:"column:receipt_url"`
	Status      string    `gorm:"column:status;not null;default:pending"`
	CreatedAt   time.Time `gorm:"column:created_at;autoCreateTime"`
	UpdatedAt   time.Time `gorm:"column:updated_at;autoUpdateTime"`
}

func (ExpenseEntry) TableName() string {
	return "expense_entries"
}
