package project

import (
	"context"
	"log/slog"
	"time"

	apperrors "github.com/JeremyDong22/gp-calculator/internal"
	"github.com/JeremyDong22/gp-calculator/internal/auth"
	"github.com/JeremyDong22/gp-calculator/internal/core/events"
)

// Repository defines the data access methods for projects. AdvanceStatus is
// the compare-and-set primitive the lifecycle machine is built on: it writes
// the new status only when the stored status still equals from, and reports
// whether the write happened.
type Repository interface {
	Create(p *Project) error
	GetByID(id int64) (*Project, error)
	GetAll() ([]*Project, error)
	GetByExecutionLeader(leaderID int64) ([]*Project, error)
	SetCompletionDate(id int64, date time.Time) error
	AdvanceStatus(id int64, from, to Status) (bool, error)
}

type Service struct {
	repo               Repository
	bus                *events.EventBus
	defaultSalaryRatio float64
	logger             *slog.Logger
}

func NewService(repo Repository, bus *events.EventBus, defaultSalaryRatio float64, logger *slog.Logger) *Service {
	return &Service{
		repo:               repo,
		bus:                bus,
		defaultSalaryRatio: defaultSalaryRatio,
		logger:             logger,
	}
}

// CreateProject sets up a new project at status not_started. Only managers
// and the department head run project setup.
func (s *Service) CreateProject(actor auth.Actor, dto CreateProjectDTO) (*Project, error) {
	if actor.Role != auth.RoleProjectManager && actor.Role != auth.RoleDepartmentHead {
		s.logger.Warn("create project denied", "actor_id", actor.ID, "role", actor.Role)
		return nil, apperrors.ErrInvalidTransition
	}
	if err := dto.Validate(); err != nil {
		return nil, apperrors.NewValidationError(err.Error(), apperrors.ErrCodeValidationFailed)
	}

	salaryRatio := s.defaultSalaryRatio
	if dto.SalaryRatio != nil {
		salaryRatio = *dto.SalaryRatio
	}

	now := time.Now()
	p := &Project{
		Name:                dto.Name,
		ClientName:          dto.ClientName,
		ContractAmount:      dto.ContractAmount,
		Status:              StatusNotStarted,
		DevelopmentLeaderID: dto.DevelopmentLeaderID,
		ExecutionLeaderID:   dto.ExecutionLeaderID,
		SalaryRatio:         salaryRatio,
		CreatedAt:           now,
		UpdatedAt:           now,
	}

	if err := s.repo.Create(p); err != nil {
		s.logger.Error("failed to create project", "error", err)
		return nil, err
	}

	s.logger.Info("project created",
		"project_id", p.ID,
		"execution_leader_id", p.ExecutionLeaderID,
		"contract_amount", p.ContractAmount)

	return p, nil
}

func (s *Service) GetProject(id int64) (*Project, error) {
	p, err := s.repo.GetByID(id)
	if err != nil {
		return nil, apperrors.ErrProjectNotFound
	}
	return p, nil
}

func (s *Service) ListProjects() ([]*Project, error) {
	return s.repo.GetAll()
}

// SetCompletionDate records the delivery date and fires the lifecycle
// trigger. The status advance itself happens in the lifecycle subscriber and
// only when the project is currently in progress.
func (s *Service) SetCompletionDate(ctx context.Context, actor auth.Actor, projectID int64, dto SetCompletionDateDTO) (*Project, error) {
	if err := dto.Validate(); err != nil {
		return nil, apperrors.NewValidationError(err.Error(), apperrors.ErrCodeValidationFailed)
	}

	p, err := s.repo.GetByID(projectID)
	if err != nil {
		return nil, apperrors.ErrProjectNotFound
	}

	if !actor.IsDepartmentHead() && !(actor.Role == auth.RoleProjectManager && actor.ID == p.ExecutionLeaderID) {
		s.logger.Warn("set completion date denied",
			"project_id", projectID,
			"actor_id", actor.ID,
			"role", actor.Role)
		return nil, apperrors.ErrInvalidTransition
	}

	if err := s.repo.SetCompletionDate(projectID, dto.CompletionDate); err != nil {
		s.logger.Error("failed to set completion date", "error", err, "project_id", projectID)
		return nil, err
	}

	if err := s.bus.PublishSync(ctx, events.NewCompletionDateSet(projectID)); err != nil {
		return nil, err
	}

	s.logger.Info("completion date set", "project_id", projectID, "date", dto.CompletionDate)

	return s.GetProject(projectID)
}
