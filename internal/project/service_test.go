package project_test

import (
	"context"
	"errors"
	"log/slog"
	"os"
	"time"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	"github.com/JeremyDong22/gp-calculator/internal/auth"
	"github.com/JeremyDong22/gp-calculator/internal/core/events"
	"github.com/JeremyDong22/gp-calculator/internal/project"
)

// Mock repository for testing
type mockProjectRepository struct {
	projects    map[int64]*project.Project
	createError error
	nextID      int64
}

func newMockProjectRepository() *mockProjectRepository {
	return &mockProjectRepository{
		projects: make(map[int64]*project.Project),
		nextID:   1,
	}
}

func (m *mockProjectRepository) Create(p *project.Project) error {
	if m.createError != nil {
		return m.createError
	}
	p.ID = m.nextID
	m.nextID++
	m.projects[p.ID] = p
	return nil
}

func (m *mockProjectRepository) GetByID(id int64) (*project.Project, error) {
	p, exists := m.projects[id]
	if !exists {
		return nil, errors.New("project not found")
	}
	return p, nil
}

func (m *mockProjectRepository) GetAll() ([]*project.Project, error) {
	result := make([]*project.Project, 0, len(m.projects))
	for _, p := range m.projects {
		result = append(result, p)
	}
	return result, nil
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

func (m *mockProjectRepository) SetCompletionDate(id int64, date time.Time) error {
	p, exists := m.projects[id]
	if !exists {
		return errors.New("project not found")
	}
	p.CompletionDate = &date
	return nil
}

func (m *mockProjectRepository) AdvanceStatus(id int64, from, to project.Status) (bool, error) {
	p, exists := m.projects[id]
	if !exists {
		return false, nil
	}
	if p.Status != from {
		return false, nil
	}
	p.Status = to
	return true, nil
}

var _ = Describe("ProjectService", func() {
	var (
		projectService *project.Service
		mockRepo       *mockProjectRepository
		bus            *events.EventBus
		logger         *slog.Logger
		ctx            context.Context
	)

	BeforeEach(func() {
		mockRepo = newMockProjectRepository()
		logger = slog.New(slog.NewTextHandler(os.Stdout, &slog.HandlerOptions{Level: slog.LevelError}))
		bus = events.NewEventBus(logger)
		project.NewLifecycle(mockRepo, logger).Register(bus)
		projectService = project.NewService(mockRepo, bus, 0.1, logger)
		ctx = context.Background()
	})

	Describe("CreateProject", func() {
		Context("when a project manager sets up a project", func() {
			It("should create it at not_started with the default salary ratio", func() {
				manager := auth.Actor{ID: 42, Role: auth.RoleProjectManager}
				dto := project.CreateProjectDTO{
					Name:              "ERP Rollout",
					ClientName:        "Hengtong Manufacturing",
					ContractAmount:    480000,
					ExecutionLeaderID: 42,
				}

				p, err := projectService.CreateProject(manager, dto)

				Expect(err).ToNot(HaveOccurred())
				Expect(p.Status).To(Equal(project.StatusNotStarted))
				Expect(p.SalaryRatio).To(Equal(0.1))
				Expect(p.ID).To(BeNumerically(">", 0))
			})

			It("should honor an explicit salary ratio", func() {
				manager := auth.Actor{ID: 42, Role: auth.RoleProjectManager}
				ratio := 0.15
				dto := project.CreateProjectDTO{
					Name:              "Warehouse Audit",
					ContractAmount:    150000,
					ExecutionLeaderID: 42,
					SalaryRatio:       &ratio,
				}

				p, err := projectService.CreateProject(manager, dto)

				Expect(err).ToNot(HaveOccurred())
				Expect(p.SalaryRatio).To(Equal(0.15))
			})
		})

		Context("when an employee tries to set up a project", func() {
			It("should deny the request", func() {
				employee := auth.Actor{ID: 9, Role: auth.RoleEmployee}
				dto := project.CreateProjectDTO{
					Name:              "Side Project",
					ExecutionLeaderID: 42,
				}

				p, err := projectService.CreateProject(employee, dto)

				Expect(err).To(HaveOccurred())
				Expect(p).To(BeNil())
			})
		})

		Context("when the salary ratio is out of range", func() {
			It("should return a validation error", func() {
				manager := auth.Actor{ID: 42, Role: auth.RoleProjectManager}
				ratio := 1.5
				dto := project.CreateProjectDTO{
					Name:              "Bad Ratio",
					ExecutionLeaderID: 42,
					SalaryRatio:       &ratio,
				}

				_, err := projectService.CreateProject(manager, dto)

				Expect(err).To(HaveOccurred())
			})
		})
	})

	Describe("SetCompletionDate", func() {
		var projectID int64

		BeforeEach(func() {
			manager := auth.Actor{ID: 42, Role: auth.RoleProjectManager}
			p, err := projectService.CreateProject(manager, project.CreateProjectDTO{
				Name:              "ERP Rollout",
				ContractAmount:    480000,
				ExecutionLeaderID: 42,
			})
			Expect(err).ToNot(HaveOccurred())
			projectID = p.ID
		})

		Context("when the project is in progress", func() {
			BeforeEach(func() {
				Expect(bus.PublishSync(ctx, events.NewTimesheetCreated(projectID))).To(Succeed())
			})

			It("should record the date and advance to completed", func() {
				leader := auth.Actor{ID: 42, Role: auth.RoleProjectManager}
				date := time.Date(2026, 3, 31, 0, 0, 0, 0, time.UTC)

				p, err := projectService.SetCompletionDate(ctx, leader, projectID, project.SetCompletionDateDTO{CompletionDate: date})

				Expect(err).ToNot(HaveOccurred())
				Expect(p.Status).To(Equal(project.StatusCompleted))
				Expect(p.CompletionDate).ToNot(BeNil())
			})
		})

		Context("when the project has not started", func() {
			It("should record the date but leave the status alone", func() {
				leader := auth.Actor{ID: 42, Role: auth.RoleProjectManager}
				date := time.Date(2026, 3, 31, 0, 0, 0, 0, time.UTC)

				p, err := projectService.SetCompletionDate(ctx, leader, projectID, project.SetCompletionDateDTO{CompletionDate: date})

				Expect(err).ToNot(HaveOccurred())
				Expect(p.Status).To(Equal(project.StatusNotStarted))
			})
		})

		Context("when a manager of another project tries", func() {
			It("should deny the request", func() {
				other := auth.Actor{ID: 7, Role: auth.RoleProjectManager}
				date := time.Date(2026, 3, 31, 0, 0, 0, 0, time.UTC)

				_, err := projectService.SetCompletionDate(ctx, other, projectID, project.SetCompletionDateDTO{CompletionDate: date})

				Expect(err).To(HaveOccurred())
			})
		})
	})

	Describe("Lifecycle", func() {
		var projectID int64

		BeforeEach(func() {
			manager := auth.Actor{ID: 42, Role: auth.RoleProjectManager}
			p, err := projectService.CreateProject(manager, project.CreateProjectDTO{
				Name:              "Process Consulting",
				ContractAmount:    260000,
				ExecutionLeaderID: 42,
			})
			Expect(err).ToNot(HaveOccurred())
			projectID = p.ID
		})

		It("should advance exactly one step per trigger", func() {
			Expect(bus.PublishSync(ctx, events.NewTimesheetCreated(projectID))).To(Succeed())
			p, _ := projectService.GetProject(projectID)
			Expect(p.Status).To(Equal(project.StatusInProgress))

			Expect(bus.PublishSync(ctx, events.NewCompletionDateSet(projectID))).To(Succeed())
			p, _ = projectService.GetProject(projectID)
			Expect(p.Status).To(Equal(project.StatusCompleted))

			Expect(bus.PublishSync(ctx, events.NewInvoiceRecorded(projectID))).To(Succeed())
			p, _ = projectService.GetProject(projectID)
			Expect(p.Status).To(Equal(project.StatusInvoiced))

			Expect(bus.PublishSync(ctx, events.NewReceiptConfirmed(projectID))).To(Succeed())
			p, _ = projectService.GetProject(projectID)
			Expect(p.Status).To(Equal(project.StatusReceived))
		})

		It("should ignore a duplicate trigger", func() {
			Expect(bus.PublishSync(ctx, events.NewTimesheetCreated(projectID))).To(Succeed())
			Expect(bus.PublishSync(ctx, events.NewTimesheetCreated(projectID))).To(Succeed())

			p, _ := projectService.GetProject(projectID)
			Expect(p.Status).To(Equal(project.StatusInProgress))
		})

		It("should ignore a trigger whose predecessor state has not been reached", func() {
			// a confirmed receipt before the invoice leaves the project where it stands
			Expect(bus.PublishSync(ctx, events.NewTimesheetCreated(projectID))).To(Succeed())
			Expect(bus.PublishSync(ctx, events.NewCompletionDateSet(projectID))).To(Succeed())
			Expect(bus.PublishSync(ctx, events.NewReceiptConfirmed(projectID))).To(Succeed())

			p, _ := projectService.GetProject(projectID)
			Expect(p.Status).To(Equal(project.StatusCompleted))
		})

		It("should never move backwards", func() {
			Expect(bus.PublishSync(ctx, events.NewTimesheetCreated(projectID))).To(Succeed())
			Expect(bus.PublishSync(ctx, events.NewCompletionDateSet(projectID))).To(Succeed())

			// a late first-timesheet trigger must not reset the project
			Expect(bus.PublishSync(ctx, events.NewTimesheetCreated(projectID))).To(Succeed())

			p, _ := projectService.GetProject(projectID)
			Expect(p.Status).To(Equal(project.StatusCompleted))
		})
	})

	Describe("Status", func() {
		It("should name the five lifecycle states", func() {
			Expect(project.StatusNotStarted.String()).To(Equal("not_started"))
			Expect(project.StatusInProgress.String()).To(Equal("in_progress"))
			Expect(project.StatusCompleted.String()).To(Equal("completed"))
			Expect(project.StatusInvoiced.String()).To(Equal("invoiced"))
			Expect(project.StatusReceived.String()).To(Equal("received"))
		})

		It("should reject values outside the range", func() {
			Expect(project.Status(5).Valid()).To(BeFalse())
			Expect(project.Status(-1).Valid()).To(BeFalse())
		})
	})
})
