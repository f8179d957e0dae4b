package expense

import (
	"errors"
	"strings"
	"time"
)

type CreateExpenseDTO struct {
	ProjectID   int64     `json:"project_id"`
	Date        time.Time `json:"date"`
	Category    string    `json:"category"`
	Amount      float64   `json:"amount"`
	Description string    `json:"description"`
	ReceiptURL  string    `json:"receipt_url,omitempty"`
}

func (dto CreateExpenseDTO) Validate() error {
	if dto.ProjectID == 0 {
		return errors.New("project reference is required")
	}
	if dto.Amount <= 0 {
		return errors.New("amount must be greater than zero")
	}
	if dto.Date.IsZero() {
		return errors.New("expense date is required")
	}
	if strings.TrimSpace(dto.Category) == "" {
		return errors.New("category is required")
	}
	return nil
}

type UpdateExpenseDTO struct {
	Date        time.Time `json:"date"`
	Category    string    `json:"category"`
	Amount      float64   `json:"amount"`
	Description string    `json:"description"`
	ReceiptURL  string    `json:"receipt_url,omitempty"`
}

func (dto UpdateExpenseDTO) Validate() error {
	if dto.Amount <= 0 {
		return errors.New("amount must be greater than zero")
	}
	if dto.Date.IsZero() {
		return errors.New("expense date is required")
	}
	if strings.TrimSpace(dto.Category) == "" {
		return errors.New("category is required")
	}
	return nil
}
