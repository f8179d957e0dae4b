package expense

import (
	"time"

	"github.com/JeremyDong22/gp-calculator/internal/auth"
	expenseDatamodel "github.com/JeremyDong22/gp-calculator/internal/core/datamodel/expense"
)

// Expense entry status. The approval chain is strictly ordered:
// pending -> executor_approved -> secretary_approved -> approved.
// Rejected is reachable from any non-terminal state; approved and rejected
// are terminal.
const (
	StatusPending           = "pending"
	StatusExecutorApproved  = "executor_approved"
	StatusSecretaryApproved = "secretary_approved"
	StatusApproved          = "approved"
	StatusRejected          = "rejected"
)

type ExpenseEntry struct {
	ID          int64     `json:"id"`
	UserID      int64     `json:"user_id"`
	ProjectID   int64     `json:"project_id"`
	Date        time.Time `json:"date"`
	Category    string    `json:"category"`
	Amount      float64   `json:"amount"`
	Description string    `json:"description"`
	ReceiptURL  string    `json:"receipt_url,omitempty"`
	Status      string    `json:"status"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}

func (e *ExpenseEntry) IsTerminal() bool {
	return e.Status == StatusApproved || e.Status == StatusRejected
}

// stageFor maps a non-terminal status onto the gate that guards its advance
// and the successor status the advance moves to.
func stageFor(status string) (auth.Stage, string, bool) {
	switch status {
	case StatusPending:
		return auth.StageExpenseExecutor, StatusExecutorApproved, true
	case StatusExecutorApproved:
		return auth.StageExpenseSecretary, StatusSecretaryApproved, true
	case StatusSecretaryApproved:
		return auth.StageExpenseFinal, StatusApproved, true
	}
	return "", "", false
}

func ToDataModel(e *ExpenseEntry) *expenseDatamodel.ExpenseEntry {
	return &expenseDatamodel.ExpenseEntry{
		ID:          e.ID,
		UserID:      e.UserID,
		ProjectID:   e.ProjectID,
		Date:        e.Date,
		Category:    e.Category,
		Amount:      e.Amount,
		Description: e.Description,
		ReceiptURL:  e.ReceiptURL,
		Status:      e.Status,
		CreatedAt:   e.CreatedAt,
		UpdatedAt:   e.UpdatedAt,
	}
}

func FromDataModel(e *expenseDatamodel.ExpenseEntry) *ExpenseEntry {
	return &ExpenseEntry{
		ID:          e.ID,
		UserID:      e.UserID,
		ProjectID:   e.ProjectID,
		Date:        e.Date,
		Category:    e.Category,
		Amount:      e.Amount,
		Description: e.Description,
		ReceiptURL:  e.ReceiptURL,
		Status:      e.Status,
		CreatedAt:   e.CreatedAt,
		UpdatedAt:   e.UpdatedAt,
	}
}

func FromDataModelSlice(entries []*expenseDatamodel.ExpenseEntry) []*ExpenseEntry {
	result := make([]*ExpenseEntry, len(entries))
	for i, e := range entries {
		result[i] = FromDataModel(e)
	}
	return result
}
