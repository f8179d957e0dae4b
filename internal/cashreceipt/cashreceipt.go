package cashreceipt

import (
	"time"

	cashreceiptDatamodel "github.com/JeremyDong22/gp-calculator/internal/core/datamodel/cashreceipt"
)

// CashReceipt tracks money against a project. FinanceReceipt is the figure
// reported by corporate finance; ConfirmedReceipt is what the department
// verified. AdjustedReceipt is never written directly: it is recomputed from
// the confirmed amount minus the three splits on every write.
type CashReceipt struct {
	ID               int64      `json:"id"`
	ProjectID        int64      `json:"project_id"`
	FinanceReceipt   float64    `json:"finance_receipt"`
	ConfirmedReceipt float64    `json:"confirmed_receipt"`
	DevelopmentSplit float64    `json:"development_split"`
	DepartmentSplit  float64    `json:"department_split"`
	OtherSplit       float64    `json:"other_split"`
	AdjustedReceipt  float64    `json:"adjusted_receipt"`
	InvoiceDate      *time.Time `json:"invoice_date,omitempty"`
	CreatedAt        time.Time  `json:"created_at"`
	UpdatedAt        time.Time  `json:"updated_at"`
}

// Reconcile recomputes the derived field from the raw ones.
func (c *CashReceipt) Reconcile() {
	c.AdjustedReceipt = c.ConfirmedReceipt - c.DevelopmentSplit - c.DepartmentSplit - c.OtherSplit
}

func ToDataModel(c *CashReceipt) *cashreceiptDatamodel.CashReceipt {
	return &cashreceiptDatamodel.CashReceipt{
		ID:               c.ID,
		ProjectID:        c.ProjectID,
		FinanceReceipt:   c.FinanceReceipt,
		ConfirmedReceipt: c.ConfirmedReceipt,
		DevelopmentSplit: c.DevelopmentSplit,
		DepartmentSplit:  c.DepartmentSplit,
		OtherSplit:       c.OtherSplit,
		AdjustedReceipt:  c.AdjustedReceipt,
		InvoiceDate:      c.InvoiceDate,
		CreatedAt:        c.CreatedAt,
		UpdatedAt:        c.UpdatedAt,
	}
}

func FromDataModel(c *cashreceiptDatamodel.CashReceipt) *CashReceipt {
	return &CashReceipt{
		ID:               c.ID,
		ProjectID:        c.ProjectID,
		FinanceReceipt:   c.FinanceReceipt,
		ConfirmedReceipt: c.ConfirmedReceipt,
		DevelopmentSplit: c.DevelopmentSplit,
		DepartmentSplit:  c.DepartmentSplit,
		OtherSplit:       c.OtherSplit,
		AdjustedReceipt:  c.AdjustedReceipt,
		InvoiceDate:      c.InvoiceDate,
		CreatedAt:        c.CreatedAt,
		UpdatedAt:        c.UpdatedAt,
	}
}

func FromDataModelSlice(receipts []*cashreceiptDatamodel.CashReceipt) []*CashReceipt {
	result := make([]*CashReceipt, len(receipts))
	for i, c := range receipts {
		result[i] = FromDataModel(c)
	}
	return result
}
