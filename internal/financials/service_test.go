package financials_test

import (
	"errors"
	"log/slog"
	"os"
	"time"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	apperrors "github.com/JeremyDong22/gp-calculator/internal"
	"github.com/JeremyDong22/gp-calculator/internal/financials"
	"github.com/JeremyDong22/gp-calculator/internal/project"
)

// Mock repository for testing
type mockFinancialsRepository struct {
	laborRows     map[int64][]financials.LaborRow
	expenseTotals map[int64]float64
	lastCutoff    *time.Time
}

func newMockFinancialsRepository() *mockFinancialsRepository {
	return &mockFinancialsRepository{
		laborRows:     make(map[int64][]financials.LaborRow),
		expenseTotals: make(map[int64]float64),
	}
}

func (m *mockFinancialsRepository) ApprovedLaborRows(projectID int64, cutoff *time.Time) ([]financials.LaborRow, error) {
	m.lastCutoff = cutoff
	return m.laborRows[projectID], nil
}

func (m *mockFinancialsRepository) ApprovedExpenseTotal(projectID int64, cutoff *time.Time) (float64, error) {
	m.lastCutoff = cutoff
	return m.expenseTotals[projectID], nil
}

// Mock project reader for testing
type mockProjectReader struct {
	projects map[int64]*project.Project
}

func (m *mockProjectReader) GetByID(id int64) (*project.Project, error) {
	p, exists := m.projects[id]
	if !exists {
		return nil, errors.New("project not found")
	}
	return p, nil
}

func (m *mockProjectReader) GetAll() ([]*project.Project, error) {
	var result []*project.Project
	for _, p := range m.projects {
		result = append(result, p)
	}
	return result, nil
}

var _ = Describe("FinancialsService", func() {
	var (
		financialsService *financials.Service
		mockRepo          *mockFinancialsRepository
		mockProjects      *mockProjectReader
		logger            *slog.Logger
	)

	const projectID = int64(10)

	BeforeEach(func() {
		mockRepo = newMockFinancialsRepository()
		mockProjects = &mockProjectReader{projects: map[int64]*project.Project{
			projectID: {
				ID:             projectID,
				Name:           "ERP Rollout",
				ContractAmount: 480000,
				SalaryRatio:    0.1,
			},
		}}
		logger = slog.New(slog.NewTextHandler(os.Stdout, &slog.HandlerOptions{Level: slog.LevelError}))
		financialsService = financials.NewService(mockRepo, mockProjects, 8, logger)
	})

	Describe("LaborCost", func() {
		It("should scale hours by the daily rate over the workday length", func() {
			rows := []financials.LaborRow{{TotalHours: 40, DailyRate: 1200}}

			Expect(financials.LaborCost(rows, 8)).To(Equal(6000.0))
		})

		It("should sum across contributors", func() {
			rows := []financials.LaborRow{
				{TotalHours: 40, DailyRate: 1200},
				{TotalHours: 16, DailyRate: 1000},
			}

			Expect(financials.LaborCost(rows, 8)).To(Equal(8000.0))
		})

		It("should return zero for no rows", func() {
			Expect(financials.LaborCost(nil, 8)).To(Equal(0.0))
		})
	})

	Describe("Rate", func() {
		It("should express the figure as a percentage of the contract", func() {
			Expect(financials.Rate(6000, 480000)).To(Equal(1.25))
		})

		It("should collapse to zero on a zero contract", func() {
			Expect(financials.Rate(6000, 0)).To(Equal(0.0))
		})
	})

	Describe("ProjectFinancials", func() {
		It("should compute profit, margin and rates from approved entries", func() {
			mockRepo.laborRows[projectID] = []financials.LaborRow{{TotalHours: 40, DailyRate: 1200}}
			mockRepo.expenseTotals[projectID] = 14000

			fin, err := financialsService.ProjectFinancials(projectID, nil)

			Expect(err).ToNot(HaveOccurred())
			Expect(fin.LaborCost).To(Equal(6000.0))
			Expect(fin.TravelExpense).To(Equal(14000.0))
			Expect(fin.GrossProfit).To(Equal(460000.0))
			Expect(fin.GrossMargin).To(BeNumerically("~", 95.8333, 0.001))
			Expect(fin.LaborCostRate).To(Equal(1.25))
			Expect(fin.TravelExpenseRate).To(BeNumerically("~", 2.9166, 0.001))
		})

		It("should report every rate as zero for a zero contract amount", func() {
			mockProjects.projects[projectID].ContractAmount = 0
			mockRepo.laborRows[projectID] = []financials.LaborRow{{TotalHours: 40, DailyRate: 1200}}

			fin, err := financialsService.ProjectFinancials(projectID, nil)

			Expect(err).ToNot(HaveOccurred())
			Expect(fin.GrossProfit).To(Equal(-6000.0))
			Expect(fin.GrossMargin).To(Equal(0.0))
			Expect(fin.LaborCostRate).To(Equal(0.0))
			Expect(fin.TravelExpenseRate).To(Equal(0.0))
		})

		It("should pass the cutoff through to the queries", func() {
			cutoff := time.Date(2026, 6, 30, 0, 0, 0, 0, time.UTC)

			fin, err := financialsService.ProjectFinancials(projectID, &cutoff)

			Expect(err).ToNot(HaveOccurred())
			Expect(mockRepo.lastCutoff).ToNot(BeNil())
			Expect(mockRepo.lastCutoff.Equal(cutoff)).To(BeTrue())
			Expect(fin.Cutoff).ToNot(BeNil())
		})

		It("should return not found for an unknown project", func() {
			_, err := financialsService.ProjectFinancials(999, nil)

			Expect(err).To(Equal(apperrors.ErrProjectNotFound))
		})
	})

	Describe("BonusPool", func() {
		BeforeEach(func() {
			mockRepo.laborRows[projectID] = []financials.LaborRow{{TotalHours: 40, DailyRate: 1200}}
			mockRepo.expenseTotals[projectID] = 14000
		})

		It("should fall back to the ratio configured on the project", func() {
			pool, err := financialsService.BonusPool(projectID, nil, nil)

			Expect(err).ToNot(HaveOccurred())
			Expect(pool.SalaryRatio).To(Equal(0.1))
			Expect(pool.GrossProfit).To(Equal(460000.0))
			Expect(pool.Amount).To(Equal(32000.0))
		})

		It("should honor an explicit ratio", func() {
			ratio := 0.2

			pool, err := financialsService.BonusPool(projectID, &ratio, nil)

			Expect(err).ToNot(HaveOccurred())
			Expect(pool.Amount).To(Equal(78000.0))
		})

		It("should reject a ratio outside [0,1]", func() {
			ratio := 1.5

			_, err := financialsService.BonusPool(projectID, &ratio, nil)

			Expect(err).To(HaveOccurred())
		})

		It("should allow the pool to go negative when expenses dominate", func() {
			mockRepo.expenseTotals[projectID] = 60000
			ratio := 0.1

			pool, err := financialsService.BonusPool(projectID, &ratio, nil)

			Expect(err).ToNot(HaveOccurred())
			Expect(pool.Amount).To(Equal(-18600.0))
		})
	})

	Describe("DepartmentSummary", func() {
		It("should total figures and recompute the margin from the sums", func() {
			mockProjects.projects[11] = &project.Project{
				ID:             11,
				Name:           "Warehouse Audit",
				ContractAmount: 150000,
				SalaryRatio:    0.1,
			}
			mockRepo.laborRows[projectID] = []financials.LaborRow{{TotalHours: 40, DailyRate: 1200}}
			mockRepo.laborRows[11] = []financials.LaborRow{{TotalHours: 80, DailyRate: 1000}}
			mockRepo.expenseTotals[projectID] = 14000
			mockRepo.expenseTotals[11] = 6000

			summary, err := financialsService.DepartmentSummary(nil)

			Expect(err).ToNot(HaveOccurred())
			Expect(summary.ProjectCount).To(Equal(2))
			Expect(summary.Revenue).To(Equal(630000.0))
			Expect(summary.LaborCost).To(Equal(16000.0))
			Expect(summary.TravelExpense).To(Equal(20000.0))
			Expect(summary.GrossProfit).To(Equal(594000.0))
			Expect(summary.GrossMargin).To(BeNumerically("~", 94.2857, 0.001))
		})

		It("should return an empty summary when there are no projects", func() {
			mockProjects.projects = map[int64]*project.Project{}

			summary, err := financialsService.DepartmentSummary(nil)

			Expect(err).ToNot(HaveOccurred())
			Expect(summary.ProjectCount).To(Equal(0))
			Expect(summary.Revenue).To(Equal(0.0))
			Expect(summary.GrossMargin).To(Equal(0.0))
		})
	})
})
