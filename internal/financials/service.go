package financials

import (
	"log/slog"
	"time"

	apperrors "github.com/JeremyDong22/gp-calculator/internal"
	"github.com/JeremyDong22/gp-calculator/internal/project"
)

// Repository supplies the raw rows the engine aggregates. Only approved
// entries count; a non-nil cutoff restricts timesheets by end date and
// expenses by expense date.
type Repository interface {
	ApprovedLaborRows(projectID int64, cutoff *time.Time) ([]LaborRow, error)
	ApprovedExpenseTotal(projectID int64, cutoff *time.Time) (float64, error)
}

// ProjectReader is the slice of the project repository the engine needs.
type ProjectReader interface {
	GetByID(id int64) (*project.Project, error)
	GetAll() ([]*project.Project, error)
}

// Service computes every figure on read. Nothing here caches and nothing
// here writes.
type Service struct {
	repo         Repository
	projects     ProjectReader
	workdayHours float64
	logger       *slog.Logger
}

func NewService(repo Repository, projects ProjectReader, workdayHours float64, logger *slog.Logger) *Service {
	if workdayHours <= 0 {
		workdayHours = 8
	}
	return &Service{
		repo:         repo,
		projects:     projects,
		workdayHours: workdayHours,
		logger:       logger,
	}
}

// ProjectFinancials computes the profitability view for one project as of
// the optional cutoff date.
func (s *Service) ProjectFinancials(projectID int64, cutoff *time.Time) (*ProjectFinancials, error) {
	p, err := s.projects.GetByID(projectID)
	if err != nil {
		return nil, apperrors.ErrProjectNotFound
	}
	return s.computeForProject(p, cutoff)
}

func (s *Service) computeForProject(p *project.Project, cutoff *time.Time) (*ProjectFinancials, error) {
	rows, err := s.repo.ApprovedLaborRows(p.ID, cutoff)
	if err != nil {
		s.logger.Error("failed to load labor rows", "error", err, "project_id", p.ID)
		return nil, err
	}

	travelExpense, err := s.repo.ApprovedExpenseTotal(p.ID, cutoff)
	if err != nil {
		s.logger.Error("failed to load expense total", "error", err, "project_id", p.ID)
		return nil, err
	}

	laborCost := LaborCost(rows, s.workdayHours)
	grossProfit := p.ContractAmount - laborCost - travelExpense

	return &ProjectFinancials{
		ProjectID:         p.ID,
		ProjectName:       p.Name,
		ContractAmount:    p.ContractAmount,
		LaborCost:         laborCost,
		TravelExpense:     travelExpense,
		GrossProfit:       grossProfit,
		GrossMargin:       Rate(grossProfit, p.ContractAmount),
		LaborCostRate:     Rate(laborCost, p.ContractAmount),
		TravelExpenseRate: Rate(travelExpense, p.ContractAmount),
		Cutoff:            cutoff,
	}, nil
}

// BonusPool computes grossProfit x salaryRatio - travelExpense. A nil
// salaryRatio falls back to the ratio configured on the project.
func (s *Service) BonusPool(projectID int64, salaryRatio *float64, cutoff *time.Time) (*BonusPool, error) {
	p, err := s.projects.GetByID(projectID)
	if err != nil {
		return nil, apperrors.ErrProjectNotFound
	}

	ratio := p.SalaryRatio
	if salaryRatio != nil {
		ratio = *salaryRatio
	}
	if ratio < 0 || ratio > 1 {
		return nil, apperrors.NewValidationError("salary ratio must be within [0,1]", apperrors.ErrCodeInvalidRatio)
	}

	fin, err := s.computeForProject(p, cutoff)
	if err != nil {
		return nil, err
	}

	return &BonusPool{
		ProjectID:     projectID,
		SalaryRatio:   ratio,
		GrossProfit:   fin.GrossProfit,
		TravelExpense: fin.TravelExpense,
		Amount:        fin.GrossProfit*ratio - fin.TravelExpense,
	}, nil
}

// DepartmentSummary totals the per-project figures across all projects.
// The departmental margin is recomputed from the summed figures, not
// averaged across projects.
func (s *Service) DepartmentSummary(cutoff *time.Time) (*DepartmentSummary, error) {
	projects, err := s.projects.GetAll()
	if err != nil {
		return nil, err
	}

	summary := &DepartmentSummary{
		ProjectCount: len(projects),
		Cutoff:       cutoff,
	}

	for _, p := range projects {
		fin, err := s.computeForProject(p, cutoff)
		if err != nil {
			return nil, err
		}
		summary.Revenue += fin.ContractAmount
		summary.LaborCost += fin.LaborCost
		summary.TravelExpense += fin.TravelExpense
		summary.GrossProfit += fin.GrossProfit
	}

	summary.GrossMargin = Rate(summary.GrossProfit, summary.Revenue)
	return summary, nil
}
