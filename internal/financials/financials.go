package financials

import "time"

// LaborRow is one approved timesheet contribution joined with the owner's
// cost rate.
type LaborRow struct {
	TotalHours float64
	DailyRate  float64
}

// ProjectFinancials is the per-project profitability view. All rates are
// percentages of the contract amount and collapse to zero on a zero
// contract.
type ProjectFinancials struct {
	ProjectID         int64      `json:"project_id"`
	ProjectName       string     `json:"project_name"`
	ContractAmount    float64    `json:"contract_amount"`
	LaborCost         float64    `json:"labor_cost"`
	TravelExpense     float64    `json:"travel_expense"`
	GrossProfit       float64    `json:"gross_profit"`
	GrossMargin       float64    `json:"gross_margin"`
	LaborCostRate     float64    `json:"labor_cost_rate"`
	TravelExpenseRate float64    `json:"travel_expense_rate"`
	Cutoff            *time.Time `json:"cutoff,omitempty"`
}

// BonusPool is the distributable bonus derived from gross profit.
type BonusPool struct {
	ProjectID     int64   `json:"project_id"`
	SalaryRatio   float64 `json:"salary_ratio"`
	GrossProfit   float64 `json:"gross_profit"`
	TravelExpense float64 `json:"travel_expense"`
	Amount        float64 `json:"amount"`
}

// DepartmentSummary totals profitability across every project.
type DepartmentSummary struct {
	ProjectCount  int        `json:"project_count"`
	Revenue       float64    `json:"revenue"`
	LaborCost     float64    `json:"labor_cost"`
	TravelExpense float64    `json:"travel_expense"`
	GrossProfit   float64    `json:"gross_profit"`
	GrossMargin   float64    `json:"gross_margin"`
	Cutoff        *time.Time `json:"cutoff,omitempty"`
}

// LaborCost sums hours times the owner's daily cost rate, scaled by the
// workday length.
func LaborCost(rows []LaborRow, workdayHours float64) float64 {
	var total float64
	for _, row := range rows {
		total += row.TotalHours * row.DailyRate / workdayHours
	}
	return total
}

// Rate expresses x as a percentage of the contract amount; zero contracts
// yield zero rather than a division blowup.
func Rate(x, contractAmount float64) float64 {
	if contractAmount == 0 {
		return 0
	}
	return x / contractAmount * 100
}
