package timesheet

import (
	"context"
	"log/slog"
	"time"

	apperrors "github.com/JeremyDong22/gp-calculator/internal"
	"github.com/JeremyDong22/gp-calculator/internal/auth"
	"github.com/JeremyDong22/gp-calculator/internal/core/events"
	"github.com/JeremyDong22/gp-calculator/internal/project"
	"github.com/JeremyDong22/gp-calculator/internal/transport/metrics"
)

// Repository defines the data access methods for timesheet entries.
// UpdateStatusCAS writes the new status only while the stored status still
// equals from and reports whether the write happened.
type Repository interface {
	Create(t *TimesheetEntry) error
	GetByID(id int64) (*TimesheetEntry, error)
	GetByUserID(userID int64) ([]*TimesheetEntry, error)
	GetByProjectID(projectID int64) ([]*TimesheetEntry, error)
	Update(t *TimesheetEntry) error
	UpdateStatusCAS(id int64, from, to string, approverID int64) (bool, error)
	Delete(id int64) error
}

// ProjectReader is the slice of the project repository the review gate needs.
type ProjectReader interface {
	GetByID(id int64) (*project.Project, error)
}

type Service struct {
	repo     Repository
	projects ProjectReader
	bus      *events.EventBus
	logger   *slog.Logger
}

func NewService(repo Repository, projects ProjectReader, bus *events.EventBus, logger *slog.Logger) *Service {
	return &Service{
		repo:     repo,
		projects: projects,
		bus:      bus,
		logger:   logger,
	}
}

// Submit records a new pending entry and fires the first-activity lifecycle
// trigger. The trigger is published on every submission; the lifecycle
// machine ignores it for any project already past not_started.
func (s *Service) Submit(ctx context.Context, actor auth.Actor, dto CreateTimesheetDTO) (*TimesheetEntry, error) {
	if err := dto.Validate(); err != nil {
		return nil, apperrors.NewValidationError(err.Error(), apperrors.ErrCodeInvalidHours)
	}

	if _, err := s.projects.GetByID(dto.ProjectID); err != nil {
		return nil, apperrors.ErrProjectNotFound
	}

	now := time.Now()
	entry := &TimesheetEntry{
		UserID:      actor.ID,
		ProjectID:   dto.ProjectID,
		StartDate:   dto.StartDate,
		EndDate:     dto.EndDate,
		TotalHours:  dto.TotalHours,
		Description: dto.Description,
		Status:      StatusPending,
		CreatedAt:   now,
		UpdatedAt:   now,
	}

	if err := s.repo.Create(entry); err != nil {
		s.logger.Error("failed to create timesheet entry", "error", err)
		return nil, err
	}

	if err := s.bus.PublishSync(ctx, events.NewTimesheetCreated(entry.ProjectID)); err != nil {
		return nil, err
	}

	s.logger.Info("timesheet submitted",
		"timesheet_id", entry.ID,
		"user_id", entry.UserID,
		"project_id", entry.ProjectID,
		"total_hours", entry.TotalHours)

	return entry, nil
}

// Approve resolves a pending entry. Empowered reviewers are the department
// head and a project-manager actor who leads the entry's project execution.
func (s *Service) Approve(actor auth.Actor, id int64) (*TimesheetEntry, error) {
	return s.review(actor, id, StatusApproved)
}

// Reject resolves a pending entry negatively. Rejected is terminal; the
// entry never contributes to labor cost.
func (s *Service) Reject(actor auth.Actor, id int64) (*TimesheetEntry, error) {
	return s.review(actor, id, StatusRejected)
}

func (s *Service) review(actor auth.Actor, id int64, decision string) (*TimesheetEntry, error) {
	entry, err := s.repo.GetByID(id)
	if err != nil {
		return nil, apperrors.ErrTimesheetNotFound
	}

	p, err := s.projects.GetByID(entry.ProjectID)
	if err != nil {
		return nil, apperrors.ErrProjectNotFound
	}

	if !actor.CanTransition(auth.StageTimesheetReview, p.Ref()) {
		s.logger.Warn("timesheet review denied",
			"timesheet_id", id,
			"actor_id", actor.ID,
			"role", actor.Role)
		return nil, apperrors.ErrInvalidTransition
	}

	if !entry.IsPending() {
		return nil, apperrors.ErrInvalidTransition
	}

	ok, err := s.repo.UpdateStatusCAS(id, StatusPending, decision, actor.ID)
	if err != nil {
		s.logger.Error("failed to update timesheet status", "error", err, "timesheet_id", id)
		return nil, err
	}
	if !ok {
		return nil, apperrors.ErrConcurrentModification
	}

	metrics.RecordApprovalDecision("timesheet", decision)
	s.logger.Info("timesheet reviewed",
		"timesheet_id", id,
		"decision", decision,
		"approver_id", actor.ID)

	return s.repo.GetByID(id)
}

// Update rewrites the hours and dates of an entry. The owner and the
// department head may edit at any status; an edit never changes the status.
func (s *Service) Update(actor auth.Actor, id int64, dto UpdateTimesheetDTO) (*TimesheetEntry, error) {
	if err := dto.Validate(); err != nil {
		return nil, apperrors.NewValidationError(err.Error(), apperrors.ErrCodeInvalidHours)
	}

	entry, err := s.repo.GetByID(id)
	if err != nil {
		return nil, apperrors.ErrTimesheetNotFound
	}

	if !actor.IsOwner(entry.UserID) && !actor.IsDepartmentHead() {
		return nil, apperrors.ErrCannotModifyEntry
	}

	entry.StartDate = dto.StartDate
	entry.EndDate = dto.EndDate
	entry.TotalHours = dto.TotalHours
	entry.Description = dto.Description
	entry.UpdatedAt = time.Now()

	if err := s.repo.Update(entry); err != nil {
		s.logger.Error("failed to update timesheet entry", "error", err, "timesheet_id", id)
		return nil, err
	}

	return entry, nil
}

func (s *Service) Delete(actor auth.Actor, id int64) error {
	entry, err := s.repo.GetByID(id)
	if err != nil {
		return apperrors.ErrTimesheetNotFound
	}

	if !actor.IsOwner(entry.UserID) && !actor.IsDepartmentHead() {
		return apperrors.ErrCannotModifyEntry
	}

	if err := s.repo.Delete(id); err != nil {
		s.logger.Error("failed to delete timesheet entry", "error", err, "timesheet_id", id)
		return err
	}

	s.logger.Info("timesheet deleted", "timesheet_id", id, "actor_id", actor.ID)
	return nil
}

func (s *Service) ListForUser(userID int64) ([]*TimesheetEntry, error) {
	return s.repo.GetByUserID(userID)
}

func (s *Service) ListForProject(projectID int64) ([]*TimesheetEntry, error) {
	return s.repo.GetByProjectID(projectID)
}
