package cashreceipt

import (
	"context"
	"log/slog"
	"time"

	apperrors "github.com/JeremyDong22/gp-calculator/internal"
	"github.com/JeremyDong22/gp-calculator/internal/auth"
	"github.com/JeremyDong22/gp-calculator/internal/core/events"
	"github.com/JeremyDong22/gp-calculator/internal/project"
)

// Repository defines the data access methods for cash receipts. A project
// carries at most one receipt record.
type Repository interface {
	Create(c *CashReceipt) error
	GetByID(id int64) (*CashReceipt, error)
	GetByProjectID(projectID int64) (*CashReceipt, error)
	Update(c *CashReceipt) error
}

// ProjectReader is the slice of the project repository receipt recording and
// the executor summary need.
type ProjectReader interface {
	GetByID(id int64) (*project.Project, error)
	GetByExecutionLeader(leaderID int64) ([]*project.Project, error)
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

// canRecord gates receipt bookkeeping to the secretary and the department
// head.
func canRecord(actor auth.Actor) bool {
	return actor.Role == auth.RoleSecretary || actor.IsDepartmentHead()
}

// Create records the receipt for a project, reconciles the derived amount,
// and fires the lifecycle triggers for whatever the write established. An
// invoice date advances completed -> invoiced; a positive confirmed receipt
// advances invoiced -> received. A confirmed receipt recorded before the
// invoice date leaves the project where it stands; the confirmation trigger
// does not re-fire when the invoice arrives later.
func (s *Service) Create(ctx context.Context, actor auth.Actor, dto CreateCashReceiptDTO) (*CashReceipt, error) {
	if !canRecord(actor) {
		s.logger.Warn("create cash receipt denied", "actor_id", actor.ID, "role", actor.Role)
		return nil, apperrors.NewForbiddenError("only the secretary or department head records receipts", apperrors.ErrCodeNotAllowed)
	}
	if err := dto.Validate(); err != nil {
		return nil, apperrors.NewValidationError(err.Error(), apperrors.ErrCodeInvalidAmount)
	}

	if _, err := s.projects.GetByID(dto.ProjectID); err != nil {
		return nil, apperrors.ErrProjectNotFound
	}

	if existing, err := s.repo.GetByProjectID(dto.ProjectID); err == nil && existing != nil {
		return nil, apperrors.NewConflictError("project already has a cash receipt record", apperrors.ErrCodeConcurrentModification)
	}

	now := time.Now()
	receipt := &CashReceipt{
		ProjectID:        dto.ProjectID,
		FinanceReceipt:   dto.FinanceReceipt,
		ConfirmedReceipt: dto.ConfirmedReceipt,
		DevelopmentSplit: dto.DevelopmentSplit,
		DepartmentSplit:  dto.DepartmentSplit,
		OtherSplit:       dto.OtherSplit,
		InvoiceDate:      dto.InvoiceDate,
		CreatedAt:        now,
		UpdatedAt:        now,
	}
	receipt.Reconcile()

	if err := s.repo.Create(receipt); err != nil {
		s.logger.Error("failed to create cash receipt", "error", err)
		return nil, err
	}

	if err := s.publishTriggers(ctx, nil, receipt); err != nil {
		return nil, err
	}

	s.logger.Info("cash receipt recorded",
		"receipt_id", receipt.ID,
		"project_id", receipt.ProjectID,
		"confirmed_receipt", receipt.ConfirmedReceipt,
		"adjusted_receipt", receipt.AdjustedReceipt)

	return receipt, nil
}

// Update rewrites the raw amounts, reconciles, and fires the triggers for
// what the write changed.
func (s *Service) Update(ctx context.Context, actor auth.Actor, id int64, dto UpdateCashReceiptDTO) (*CashReceipt, error) {
	if !canRecord(actor) {
		return nil, apperrors.NewForbiddenError("only the secretary or department head records receipts", apperrors.ErrCodeNotAllowed)
	}
	if err := dto.Validate(); err != nil {
		return nil, apperrors.NewValidationError(err.Error(), apperrors.ErrCodeInvalidAmount)
	}

	prev, err := s.repo.GetByID(id)
	if err != nil {
		return nil, apperrors.ErrCashReceiptNotFound
	}

	receipt := &CashReceipt{
		ID:               prev.ID,
		ProjectID:        prev.ProjectID,
		FinanceReceipt:   dto.FinanceReceipt,
		ConfirmedReceipt: dto.ConfirmedReceipt,
		DevelopmentSplit: dto.DevelopmentSplit,
		DepartmentSplit:  dto.DepartmentSplit,
		OtherSplit:       dto.OtherSplit,
		InvoiceDate:      dto.InvoiceDate,
		CreatedAt:        prev.CreatedAt,
		UpdatedAt:        time.Now(),
	}
	if receipt.InvoiceDate == nil {
		receipt.InvoiceDate = prev.InvoiceDate
	}
	receipt.Reconcile()

	if err := s.repo.Update(receipt); err != nil {
		s.logger.Error("failed to update cash receipt", "error", err, "receipt_id", id)
		return nil, err
	}

	if err := s.publishTriggers(ctx, prev, receipt); err != nil {
		return nil, err
	}

	s.logger.Info("cash receipt updated",
		"receipt_id", receipt.ID,
		"project_id", receipt.ProjectID,
		"adjusted_receipt", receipt.AdjustedReceipt)

	return receipt, nil
}

// publishTriggers compares the previous and current state of the receipt and
// fires the lifecycle events for what this write established. prev is nil on
// creation.
func (s *Service) publishTriggers(ctx context.Context, prev, cur *CashReceipt) error {
	invoiceWasSet := prev != nil && prev.InvoiceDate != nil
	if cur.InvoiceDate != nil && !invoiceWasSet {
		if err := s.bus.PublishSync(ctx, events.NewInvoiceRecorded(cur.ProjectID)); err != nil {
			return err
		}
	}

	prevConfirmed := 0.0
	if prev != nil {
		prevConfirmed = prev.ConfirmedReceipt
	}
	if cur.ConfirmedReceipt > 0 && cur.ConfirmedReceipt != prevConfirmed {
		if err := s.bus.PublishSync(ctx, events.NewReceiptConfirmed(cur.ProjectID)); err != nil {
			return err
		}
	}

	return nil
}

func (s *Service) GetByProject(projectID int64) (*CashReceipt, error) {
	receipt, err := s.repo.GetByProjectID(projectID)
	if err != nil || receipt == nil {
		return nil, apperrors.ErrCashReceiptNotFound
	}
	return receipt, nil
}

// ExecutorCashSummary aggregates contract and receipt figures across every
// project led by the given execution leader.
type ExecutorCashSummary struct {
	ExecutorID       int64   `json:"executor_id"`
	ProjectCount     int     `json:"project_count"`
	ContractAmount   float64 `json:"contract_amount"`
	FinanceReceipt   float64 `json:"finance_receipt"`
	ConfirmedReceipt float64 `json:"confirmed_receipt"`
	AdjustedReceipt  float64 `json:"adjusted_receipt"`
}

func (s *Service) SummarizeExecutor(executorID int64) (*ExecutorCashSummary, error) {
	projects, err := s.projects.GetByExecutionLeader(executorID)
	if err != nil {
		return nil, err
	}

	summary := &ExecutorCashSummary{
		ExecutorID:   executorID,
		ProjectCount: len(projects),
	}

	for _, p := range projects {
		summary.ContractAmount += p.ContractAmount

		receipt, err := s.repo.GetByProjectID(p.ID)
		if err != nil || receipt == nil {
			// projects without a receipt record contribute contract amount only
			continue
		}
		summary.FinanceReceipt += receipt.FinanceReceipt
		summary.ConfirmedReceipt += receipt.ConfirmedReceipt
		summary.AdjustedReceipt += receipt.AdjustedReceipt
	}

	return summary, nil
}
