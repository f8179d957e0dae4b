package cashreceipt_test

import (
	"context"
	"errors"
	"log/slog"
	"os"
	"time"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	apperrors "github.com/JeremyDong22/gp-calculator/internal"
	"github.com/JeremyDong22/gp-calculator/internal/auth"
	"github.com/JeremyDong22/gp-calculator/internal/cashreceipt"
	"github.com/JeremyDong22/gp-calculator/internal/core/events"
	"github.com/JeremyDong22/gp-calculator/internal/project"
)

// Mock repository for testing
type mockCashReceiptRepository struct {
	receipts map[int64]*cashreceipt.CashReceipt
	nextID   int64
}

func newMockCashReceiptRepository() *mockCashReceiptRepository {
	return &mockCashReceiptRepository{
		receipts: make(map[int64]*cashreceipt.CashReceipt),
		nextID:   1,
	}
}

func (m *mockCashReceiptRepository) Create(c *cashreceipt.CashReceipt) error {
	c.ID = m.nextID
	m.nextID++
	m.receipts[c.ID] = c
	return nil
}

func (m *mockCashReceiptRepository) GetByID(id int64) (*cashreceipt.CashReceipt, error) {
	c, exists := m.receipts[id]
	if !exists {
		return nil, errors.New("cash receipt not found")
	}
	return c, nil
}

func (m *mockCashReceiptRepository) GetByProjectID(projectID int64) (*cashreceipt.CashReceipt, error) {
	for _, c := range m.receipts {
		if c.ProjectID == projectID {
			return c, nil
		}
	}
	return nil, errors.New("cash receipt not found")
}

func (m *mockCashReceiptRepository) Update(c *cashreceipt.CashReceipt) error {
	m.receipts[c.ID] = c
	return nil
}

// Mock project repository, shared between the service under test and the
// lifecycle machine so trigger effects are observable on the stored status.
type mockProjectRepository struct {
	projects map[int64]*project.Project
}

func (m *mockProjectRepository) GetByID(id int64) (*project.Project, error) {
	p, exists := m.projects[id]
	if !exists {
		return nil, errors.New("project not found")
	}
	return p, nil
}

func (m *mockProjectRepository) GetByExecutionLeader(leaderID int64) ([]*project.Project, error) {
	var result []*project.Project
	for _, p := range m.projects {
		if p.ExecutionLeaderID == leaderID {
			result = append(result, p)
		}
	}
	return result, nil
}

func (m *mockProjectRepository) Create(p *project.Project) error { return nil }

func (m *mockProjectRepository) GetAll() ([]*project.Project, error) {
	var result []*project.Project
	for _, p := range m.projects {
		result = append(result, p)
	}
	return result, nil
}

func (m *mockProjectRepository) SetCompletionDate(id int64, date time.Time) error { return nil }

func (m *mockProjectRepository) AdvanceStatus(id int64, from, to project.Status) (bool, error) {
	p, exists := m.projects[id]
	if !exists || p.Status != from {
		return false, nil
	}
	p.Status = to
	return true, nil
}

var _ = Describe("CashReceiptService", func() {
	var (
		receiptService *cashreceipt.Service
		mockRepo       *mockCashReceiptRepository
		mockProjects   *mockProjectRepository
		logger         *slog.Logger
		ctx            context.Context
	)

	const (
		projectID = int64(10)
		leaderID  = int64(42)
	)

	var (
		secretary = auth.Actor{ID: 5, Role: auth.RoleSecretary}
		head      = auth.Actor{ID: 1, Role: auth.RoleDepartmentHead}
		employee  = auth.Actor{ID: 9, Role: auth.RoleEmployee}
	)

	BeforeEach(func() {
		ctx = context.Background()
		mockRepo = newMockCashReceiptRepository()
		mockProjects = &mockProjectRepository{projects: map[int64]*project.Project{
			projectID: {
				ID:                projectID,
				Name:              "ERP Rollout",
				ContractAmount:    480000,
				Status:            project.StatusCompleted,
				ExecutionLeaderID: leaderID,
			},
		}}
		logger = slog.New(slog.NewTextHandler(os.Stdout, &slog.HandlerOptions{Level: slog.LevelError}))

		bus := events.NewEventBus(logger)
		project.NewLifecycle(mockProjects, logger).Register(bus)
		receiptService = cashreceipt.NewService(mockRepo, mockProjects, bus, logger)
	})

	Describe("Create", func() {
		It("should derive the adjusted receipt from the raw amounts", func() {
			receipt, err := receiptService.Create(ctx, secretary, cashreceipt.CreateCashReceiptDTO{
				ProjectID:        projectID,
				FinanceReceipt:   150000,
				ConfirmedReceipt: 150000,
				DevelopmentSplit: 0,
				DepartmentSplit:  20000,
				OtherSplit:       5000,
			})

			Expect(err).ToNot(HaveOccurred())
			Expect(receipt.AdjustedReceipt).To(Equal(125000.0))
		})

		It("should deny actors outside the bookkeeping roles", func() {
			_, err := receiptService.Create(ctx, employee, cashreceipt.CreateCashReceiptDTO{
				ProjectID:        projectID,
				ConfirmedReceipt: 1000,
			})

			Expect(err).To(HaveOccurred())
			var appErr *apperrors.AppError
			Expect(errors.As(err, &appErr)).To(BeTrue())
			Expect(appErr.Code).To(Equal(apperrors.ErrCodeNotAllowed))
		})

		It("should reject negative amounts", func() {
			_, err := receiptService.Create(ctx, secretary, cashreceipt.CreateCashReceiptDTO{
				ProjectID:        projectID,
				ConfirmedReceipt: -100,
			})

			Expect(err).To(HaveOccurred())
		})

		It("should refuse a second receipt for the same project", func() {
			_, err := receiptService.Create(ctx, secretary, cashreceipt.CreateCashReceiptDTO{
				ProjectID:      projectID,
				FinanceReceipt: 1000,
			})
			Expect(err).ToNot(HaveOccurred())

			_, err = receiptService.Create(ctx, head, cashreceipt.CreateCashReceiptDTO{
				ProjectID:      projectID,
				FinanceReceipt: 2000,
			})
			Expect(err).To(HaveOccurred())
		})

		It("should refuse receipts for unknown projects", func() {
			_, err := receiptService.Create(ctx, secretary, cashreceipt.CreateCashReceiptDTO{
				ProjectID: 999,
			})

			Expect(err).To(Equal(apperrors.ErrProjectNotFound))
		})
	})

	Describe("lifecycle triggers", func() {
		invoiceDate := func() *time.Time {
			d := time.Date(2026, 4, 1, 0, 0, 0, 0, time.UTC)
			return &d
		}

		It("should advance a completed project to invoiced when the invoice date is recorded", func() {
			_, err := receiptService.Create(ctx, secretary, cashreceipt.CreateCashReceiptDTO{
				ProjectID:   projectID,
				InvoiceDate: invoiceDate(),
			})

			Expect(err).ToNot(HaveOccurred())
			Expect(mockProjects.projects[projectID].Status).To(Equal(project.StatusInvoiced))
		})

		It("should advance an invoiced project to received when the confirmed receipt lands", func() {
			receipt, err := receiptService.Create(ctx, secretary, cashreceipt.CreateCashReceiptDTO{
				ProjectID:   projectID,
				InvoiceDate: invoiceDate(),
			})
			Expect(err).ToNot(HaveOccurred())
			Expect(mockProjects.projects[projectID].Status).To(Equal(project.StatusInvoiced))

			_, err = receiptService.Update(ctx, secretary, receipt.ID, cashreceipt.UpdateCashReceiptDTO{
				ConfirmedReceipt: 480000,
			})

			Expect(err).ToNot(HaveOccurred())
			Expect(mockProjects.projects[projectID].Status).To(Equal(project.StatusReceived))
		})

		It("should reach received in one write when invoice and confirmation land together", func() {
			_, err := receiptService.Create(ctx, secretary, cashreceipt.CreateCashReceiptDTO{
				ProjectID:        projectID,
				InvoiceDate:      invoiceDate(),
				ConfirmedReceipt: 480000,
			})

			Expect(err).ToNot(HaveOccurred())
			Expect(mockProjects.projects[projectID].Status).To(Equal(project.StatusReceived))
		})

		Context("when the confirmed receipt arrives before the invoice", func() {
			It("should leave the project at completed, and a later invoice only reaches invoiced", func() {
				receipt, err := receiptService.Create(ctx, secretary, cashreceipt.CreateCashReceiptDTO{
					ProjectID:        projectID,
					ConfirmedReceipt: 480000,
				})
				Expect(err).ToNot(HaveOccurred())
				Expect(mockProjects.projects[projectID].Status).To(Equal(project.StatusCompleted))

				_, err = receiptService.Update(ctx, secretary, receipt.ID, cashreceipt.UpdateCashReceiptDTO{
					ConfirmedReceipt: 480000,
					InvoiceDate:      invoiceDate(),
				})
				Expect(err).ToNot(HaveOccurred())
				Expect(mockProjects.projects[projectID].Status).To(Equal(project.StatusInvoiced))
			})
		})

		It("should not re-fire the invoice trigger on subsequent updates", func() {
			receipt, err := receiptService.Create(ctx, secretary, cashreceipt.CreateCashReceiptDTO{
				ProjectID:   projectID,
				InvoiceDate: invoiceDate(),
			})
			Expect(err).ToNot(HaveOccurred())
			mockProjects.projects[projectID].Status = project.StatusCompleted

			_, err = receiptService.Update(ctx, secretary, receipt.ID, cashreceipt.UpdateCashReceiptDTO{
				FinanceReceipt: 1000,
			})

			Expect(err).ToNot(HaveOccurred())
			Expect(mockProjects.projects[projectID].Status).To(Equal(project.StatusCompleted))
		})
	})

	Describe("Update", func() {
		It("should recompute the adjusted receipt", func() {
			receipt, err := receiptService.Create(ctx, secretary, cashreceipt.CreateCashReceiptDTO{
				ProjectID:        projectID,
				ConfirmedReceipt: 100000,
				DepartmentSplit:  10000,
			})
			Expect(err).ToNot(HaveOccurred())
			Expect(receipt.AdjustedReceipt).To(Equal(90000.0))

			updated, err := receiptService.Update(ctx, head, receipt.ID, cashreceipt.UpdateCashReceiptDTO{
				ConfirmedReceipt: 100000,
				DepartmentSplit:  10000,
				OtherSplit:       2500,
			})

			Expect(err).ToNot(HaveOccurred())
			Expect(updated.AdjustedReceipt).To(Equal(87500.0))
		})

		It("should keep the previous invoice date when the update omits it", func() {
			d := time.Date(2026, 4, 1, 0, 0, 0, 0, time.UTC)
			receipt, err := receiptService.Create(ctx, secretary, cashreceipt.CreateCashReceiptDTO{
				ProjectID:   projectID,
				InvoiceDate: &d,
			})
			Expect(err).ToNot(HaveOccurred())

			updated, err := receiptService.Update(ctx, secretary, receipt.ID, cashreceipt.UpdateCashReceiptDTO{
				FinanceReceipt: 5000,
			})

			Expect(err).ToNot(HaveOccurred())
			Expect(updated.InvoiceDate).ToNot(BeNil())
			Expect(updated.InvoiceDate.Equal(d)).To(BeTrue())
		})

		It("should return not found for an unknown receipt", func() {
			_, err := receiptService.Update(ctx, secretary, 999, cashreceipt.UpdateCashReceiptDTO{})

			Expect(err).To(Equal(apperrors.ErrCashReceiptNotFound))
		})
	})

	Describe("SummarizeExecutor", func() {
		It("should sum contract and receipt figures across the leader's projects", func() {
			mockProjects.projects[11] = &project.Project{
				ID:                11,
				Name:              "Warehouse Audit",
				ContractAmount:    150000,
				Status:            project.StatusCompleted,
				ExecutionLeaderID: leaderID,
			}
			mockProjects.projects[12] = &project.Project{
				ID:                12,
				Name:              "Process Consulting",
				ContractAmount:    260000,
				Status:            project.StatusInProgress,
				ExecutionLeaderID: 7,
			}

			_, err := receiptService.Create(ctx, secretary, cashreceipt.CreateCashReceiptDTO{
				ProjectID:        projectID,
				FinanceReceipt:   150000,
				ConfirmedReceipt: 150000,
				DepartmentSplit:  20000,
				OtherSplit:       5000,
			})
			Expect(err).ToNot(HaveOccurred())
			_, err = receiptService.Create(ctx, secretary, cashreceipt.CreateCashReceiptDTO{
				ProjectID:        11,
				FinanceReceipt:   60000,
				ConfirmedReceipt: 50000,
				DevelopmentSplit: 10000,
			})
			Expect(err).ToNot(HaveOccurred())

			summary, err := receiptService.SummarizeExecutor(leaderID)

			Expect(err).ToNot(HaveOccurred())
			Expect(summary.ProjectCount).To(Equal(2))
			Expect(summary.ContractAmount).To(Equal(630000.0))
			Expect(summary.FinanceReceipt).To(Equal(210000.0))
			Expect(summary.ConfirmedReceipt).To(Equal(200000.0))
			Expect(summary.AdjustedReceipt).To(Equal(165000.0))
		})

		It("should count projects without a receipt record by contract amount only", func() {
			summary, err := receiptService.SummarizeExecutor(leaderID)

			Expect(err).ToNot(HaveOccurred())
			Expect(summary.ProjectCount).To(Equal(1))
			Expect(summary.ContractAmount).To(Equal(480000.0))
			Expect(summary.FinanceReceipt).To(Equal(0.0))
			Expect(summary.AdjustedReceipt).To(Equal(0.0))
		})
	})
})
