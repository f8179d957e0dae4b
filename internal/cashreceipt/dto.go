package cashreceipt

import (
	"errors"
	"time"
)

type CreateCashReceiptDTO struct {
	ProjectID        int64      `json:"project_id"`
	FinanceReceipt   float64    `json:"finance_receipt"`
	ConfirmedReceipt float64    `json:"confirmed_receipt"`
	DevelopmentSplit float64    `json:"development_split"`
	DepartmentSplit  float64    `json:"department_split"`
	OtherSplit       float64    `json:"other_split"`
	InvoiceDate      *time.Time `json:"invoice_date,omitempty"`
}

func (dto CreateCashReceiptDTO) Validate() error {
	if dto.ProjectID == 0 {
		return errors.New("project reference is required")
	}
	return validateAmounts(dto.FinanceReceipt, dto.ConfirmedReceipt,
		dto.DevelopmentSplit, dto.DepartmentSplit, dto.OtherSplit)
}

type UpdateCashReceiptDTO struct {
	FinanceReceipt   float64    `json:"finance_receipt"`
	ConfirmedReceipt float64    `json:"confirmed_receipt"`
	DevelopmentSplit float64    `json:"development_split"`
	DepartmentSplit  float64    `json:"department_split"`
	OtherSplit       float64    `json:"other_split"`
	InvoiceDate      *time.Time `json:"invoice_date,omitempty"`
}

func (dto UpdateCashReceiptDTO) Validate() error {
	return validateAmounts(dto.FinanceReceipt, dto.ConfirmedReceipt,
		dto.DevelopmentSplit, dto.DepartmentSplit, dto.OtherSplit)
}

func validateAmounts(amounts ...float64) error {
	for _, a := range amounts {
		if a < 0 {
			return errors.New("receipt amounts cannot be negative")
		}
	}
	return nil
}
