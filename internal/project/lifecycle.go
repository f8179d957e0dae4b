package project

import (
	"context"
	"log/slog"

	"github.com/JeremyDong22/gp-calculator/internal/core/events"
	"github.com/JeremyDong22/gp-calculator/internal/transport/metrics"
)

// Lifecycle subscribes the status machine to the trigger events published by
// the approval and receipt commands. Every advance is a compare-and-set
// against the exact predecessor status, which makes duplicate or out-of-order
// triggers harmless no-ops.
type Lifecycle struct {
	repo   Repository
	logger *slog.Logger
}

func NewLifecycle(repo Repository, logger *slog.Logger) *Lifecycle {
	return &Lifecycle{repo: repo, logger: logger}
}

func (l *Lifecycle) Register(bus *events.EventBus) {
	bus.Subscribe(events.EventTimesheetCreated, l.advance(StatusNotStarted, StatusInProgress))
	bus.Subscribe(events.EventCompletionDateSet, l.advance(StatusInProgress, StatusCompleted))
	bus.Subscribe(events.EventInvoiceRecorded, l.advance(StatusCompleted, StatusInvoiced))
	bus.Subscribe(events.EventReceiptConfirmed, l.advance(StatusInvoiced, StatusReceived))
}

func (l *Lifecycle) advance(from, to Status) events.Handler {
	return func(ctx context.Context, e events.Event) error {
		projectID, ok := events.ProjectIDFromEvent(e)
		if !ok {
			l.logger.Error("lifecycle event without project id", "event_type", e.EventType())
			return nil
		}

		advanced, err := l.repo.AdvanceStatus(projectID, from, to)
		if err != nil {
			l.logger.Error("lifecycle advance failed",
				"project_id", projectID,
				"from", from.String(),
				"to", to.String(),
				"error", err)
			return err
		}

		if advanced {
			metrics.RecordLifecycleTransition(from.String(), to.String())
			l.logger.Info("project status advanced",
				"project_id", projectID,
				"from", from.String(),
				"to", to.String(),
				"trigger", e.EventType())
		} else {
			// precondition no longer holds: duplicate or early trigger, skip
			l.logger.Debug("lifecycle trigger skipped",
				"project_id", projectID,
				"expected_status", from.String(),
				"trigger", e.EventType())
		}

		return nil
	}
}
