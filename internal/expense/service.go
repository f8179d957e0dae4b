package expense

import (
	"log/slog"
	"time"

	apperrors "github.com/JeremyDong22/gp-calculator/internal"
	"github.com/JeremyDong22/gp-calculator/internal/auth"
	"github.com/JeremyDong22/gp-calculator/internal/project"
	"github.com/JeremyDong22/gp-calculator/internal/transport/metrics"
)

// Repository defines the data access methods for expense entries.
// UpdateStatusCAS writes the new status only while the stored status still
// equals from and reports whether the write happened.
type Repository interface {
	Create(e *ExpenseEntry) error
	GetByID(id int64) (*ExpenseEntry, error)
	GetByUserID(userID int64) ([]*ExpenseEntry, error)
	GetByProjectID(projectID int64) ([]*ExpenseEntry, error)
	Update(e *ExpenseEntry) error
	UpdateStatusCAS(id int64, from, to string) (bool, error)
	Delete(id int64) error
}

// ProjectReader is the slice of the project repository the approval gates need.
type ProjectReader interface {
	GetByID(id int64) (*project.Project, error)
}

type Service struct {
	repo     Repository
	projects ProjectReader
	logger   *slog.Logger
}

func NewService(repo Repository, projects ProjectReader, logger *slog.Logger) *Service {
	return &Service{
		repo:     repo,
		projects: projects,
		logger:   logger,
	}
}

// Submit records a new pending expense claim owned by the acting user.
func (s *Service) Submit(actor auth.Actor, dto CreateExpenseDTO) (*ExpenseEntry, error) {
	if err := dto.Validate(); err != nil {
		return nil, apperrors.NewValidationError(err.Error(), apperrors.ErrCodeInvalidAmount)
	}

	if _, err := s.projects.GetByID(dto.ProjectID); err != nil {
		return nil, apperrors.ErrProjectNotFound
	}

	now := time.Now()
	entry := &ExpenseEntry{
		UserID:      actor.ID,
		ProjectID:   dto.ProjectID,
		Date:        dto.Date,
		Category:    dto.Category,
		Amount:      dto.Amount,
		Description: dto.Description,
		ReceiptURL:  dto.ReceiptURL,
		Status:      StatusPending,
		CreatedAt:   now,
		UpdatedAt:   now,
	}

	if err := s.repo.Create(entry); err != nil {
		s.logger.Error("failed to create expense entry", "error", err)
		return nil, err
	}

	s.logger.Info("expense submitted",
		"expense_id", entry.ID,
		"user_id", entry.UserID,
		"project_id", entry.ProjectID,
		"amount", entry.Amount)

	return entry, nil
}

// Advance moves an entry one step along the chain. The actor must hold the
// gate for the entry's current state. The department head short-circuits the
// chain: an advance by the department head lands directly on approved from
// any non-terminal state.
func (s *Service) Advance(actor auth.Actor, id int64) (*ExpenseEntry, error) {
	entry, err := s.repo.GetByID(id)
	if err != nil {
		return nil, apperrors.ErrExpenseNotFound
	}

	if entry.IsTerminal() {
		return nil, apperrors.ErrInvalidTransition
	}

	p, err := s.projects.GetByID(entry.ProjectID)
	if err != nil {
		return nil, apperrors.ErrProjectNotFound
	}

	next := StatusApproved
	if !actor.IsDepartmentHead() {
		stage, successor, ok := stageFor(entry.Status)
		if !ok || !actor.CanTransition(stage, p.Ref()) {
			s.logger.Warn("expense advance denied",
				"expense_id", id,
				"status", entry.Status,
				"actor_id", actor.ID,
				"role", actor.Role)
			return nil, apperrors.ErrInvalidTransition
		}
		next = successor
	}

	ok, err := s.repo.UpdateStatusCAS(id, entry.Status, next)
	if err != nil {
		s.logger.Error("failed to advance expense", "error", err, "expense_id", id)
		return nil, err
	}
	if !ok {
		return nil, apperrors.ErrConcurrentModification
	}

	metrics.RecordApprovalDecision("expense", next)
	s.logger.Info("expense advanced",
		"expense_id", id,
		"from", entry.Status,
		"to", next,
		"actor_id", actor.ID)

	return s.repo.GetByID(id)
}

// Reject terminates the chain. Allowed for the actor holding the gate of the
// entry's current state, and for the department head from any non-terminal
// state.
func (s *Service) Reject(actor auth.Actor, id int64) (*ExpenseEntry, error) {
	entry, err := s.repo.GetByID(id)
	if err != nil {
		return nil, apperrors.ErrExpenseNotFound
	}

	if entry.IsTerminal() {
		return nil, apperrors.ErrInvalidTransition
	}

	p, err := s.projects.GetByID(entry.ProjectID)
	if err != nil {
		return nil, apperrors.ErrProjectNotFound
	}

	if !actor.IsDepartmentHead() {
		stage, _, ok := stageFor(entry.Status)
		if !ok || !actor.CanTransition(stage, p.Ref()) {
			s.logger.Warn("expense reject denied",
				"expense_id", id,
				"status", entry.Status,
				"actor_id", actor.ID,
				"role", actor.Role)
			return nil, apperrors.ErrInvalidTransition
		}
	}

	ok, err := s.repo.UpdateStatusCAS(id, entry.Status, StatusRejected)
	if err != nil {
		s.logger.Error("failed to reject expense", "error", err, "expense_id", id)
		return nil, err
	}
	if !ok {
		return nil, apperrors.ErrConcurrentModification
	}

	metrics.RecordApprovalDecision("expense", StatusRejected)
	s.logger.Info("expense rejected",
		"expense_id", id,
		"from", entry.Status,
		"actor_id", actor.ID)

	return s.repo.GetByID(id)
}

// canModify encodes the edit and delete rules: the owner while the entry is
// still pending, the department head while pending or after final approval
// (post-hoc correction). The two intermediate states are frozen for everyone.
func canModify(actor auth.Actor, entry *ExpenseEntry) bool {
	switch entry.Status {
	case StatusPending:
		return actor.IsOwner(entry.UserID) || actor.IsDepartmentHead()
	case StatusApproved:
		return actor.IsDepartmentHead()
	}
	return false
}

func (s *Service) Update(actor auth.Actor, id int64, dto UpdateExpenseDTO) (*ExpenseEntry, error) {
	if err := dto.Validate(); err != nil {
		return nil, apperrors.NewValidationError(err.Error(), apperrors.ErrCodeInvalidAmount)
	}

	entry, err := s.repo.GetByID(id)
	if err != nil {
		return nil, apperrors.ErrExpenseNotFound
	}

	if !canModify(actor, entry) {
		return nil, apperrors.ErrCannotModifyEntry
	}

	entry.Date = dto.Date
	entry.Category = dto.Category
	entry.Amount = dto.Amount
	entry.Description = dto.Description
	entry.ReceiptURL = dto.ReceiptURL
	entry.UpdatedAt = time.Now()

	if err := s.repo.Update(entry); err != nil {
		s.logger.Error("failed to update expense entry", "error", err, "expense_id", id)
		return nil, err
	}

	return entry, nil
}

func (s *Service) Delete(actor auth.Actor, id int64) error {
	entry, err := s.repo.GetByID(id)
	if err != nil {
		return apperrors.ErrExpenseNotFound
	}

	if !canModify(actor, entry) {
		return apperrors.ErrCannotModifyEntry
	}

	if err := s.repo.Delete(id); err != nil {
		s.logger.Error("failed to delete expense entry", "error", err, "expense_id", id)
		return err
	}

	s.logger.Info("expense deleted", "expense_id", id, "actor_id", actor.ID)
	return nil
}

func (s *Service) ListForUser(userID int64) ([]*ExpenseEntry, error) {
	return s.repo.GetByUserID(userID)
}

func (s *Service) ListForProject(projectID int64) ([]*ExpenseEntry, error) {
	return s.repo.GetByProjectID(projectID)
}
