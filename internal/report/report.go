package report

import (
	"fmt"
	"log/slog"
	"time"

	"github.com/JeremyDong22/gp-calculator/internal/financials"
	"github.com/JeremyDong22/gp-calculator/internal/project"
	"github.com/xuri/excelize/v2"
)

// ProjectReader is the slice of the project repository the workbook needs.
type ProjectReader interface {
	GetAll() ([]*project.Project, error)
}

// FinancialsAPI supplies one computed row per project.
type FinancialsAPI interface {
	ProjectFinancials(projectID int64, cutoff *time.Time) (*financials.ProjectFinancials, error)
}

// Service renders the project control sheet as an xlsx workbook.
type Service struct {
	projects   ProjectReader
	financials FinancialsAPI
	logger     *slog.Logger
}

func NewService(projects ProjectReader, financials FinancialsAPI, logger *slog.Logger) *Service {
	return &Service{
		projects:   projects,
		financials: financials,
		logger:     logger,
	}
}

const sheetName = "Project Control"

var header = []string{
	"ID", "Project", "Client", "Status", "Contract Amount",
	"Labor Cost", "Travel Expense", "Gross Profit", "Gross Margin %",
	"Completion Date",
}

// BuildProjectControlWorkbook assembles one row per project with the
// financial figures computed as of the optional cutoff.
func (s *Service) BuildProjectControlWorkbook(cutoff *time.Time) (*excelize.File, error) {
	projects, err := s.projects.GetAll()
	if err != nil {
		return nil, err
	}

	f := excelize.NewFile()
	index, err := f.NewSheet(sheetName)
	if err != nil {
		return nil, fmt.Errorf("failed to create sheet: %w", err)
	}
	f.SetActiveSheet(index)
	if err := f.DeleteSheet("Sheet1"); err != nil {
		s.logger.Warn("failed to drop default sheet", "error", err)
	}

	for col, title := range header {
		cell, _ := excelize.CoordinatesToCellName(col+1, 1)
		if err := f.SetCellValue(sheetName, cell, title); err != nil {
			return nil, fmt.Errorf("failed to write header: %w", err)
		}
	}

	for i, p := range projects {
		fin, err := s.financials.ProjectFinancials(p.ID, cutoff)
		if err != nil {
			return nil, err
		}

		completion := ""
		if p.CompletionDate != nil {
			completion = p.CompletionDate.Format("2006-01-02")
		}

		row := []interface{}{
			p.ID, p.Name, p.ClientName, p.Status.String(), p.ContractAmount,
			fin.LaborCost, fin.TravelExpense, fin.GrossProfit, fin.GrossMargin,
			completion,
		}
		for col, value := range row {
			cell, _ := excelize.CoordinatesToCellName(col+1, i+2)
			if err := f.SetCellValue(sheetName, cell, value); err != nil {
				return nil, fmt.Errorf("failed to write row: %w", err)
			}
		}
	}

	s.logger.Info("project control workbook built", "projects", len(projects))
	return f, nil
}
