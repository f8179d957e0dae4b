package events

import (
	"time"

	"github.com/google/uuid"
)

// Lifecycle trigger events. Each one is published by a command handler
// immediately after its own write commits; the project lifecycle subscriber
// turns them into compare-and-set status advances.
const (
	EventTimesheetCreated  = "timesheet.created"
	EventCompletionDateSet = "project.completion_date_set"
	EventInvoiceRecorded   = "cash_receipt.invoice_recorded"
	EventReceiptConfirmed  = "cash_receipt.confirmed"
)

func newProjectEvent(eventType string, projectID int64) BaseEvent {
	return BaseEvent{
		ID:        uuid.NewString(),
		Type:      eventType,
		Timestamp: time.Now(),
		Data: map[string]interface{}{
			"project_id": projectID,
		},
	}
}

func NewTimesheetCreated(projectID int64) BaseEvent {
	return newProjectEvent(EventTimesheetCreated, projectID)
}

func NewCompletionDateSet(projectID int64) BaseEvent {
	return newProjectEvent(EventCompletionDateSet, projectID)
}

func NewInvoiceRecorded(projectID int64) BaseEvent {
	return newProjectEvent(EventInvoiceRecorded, projectID)
}

func NewReceiptConfirmed(projectID int64) BaseEvent {
	return newProjectEvent(EventReceiptConfirmed, projectID)
}

// ProjectIDFromEvent extracts the project reference carried by every
// lifecycle event.
func ProjectIDFromEvent(e Event) (int64, bool) {
	data, ok := e.Payload().(map[string]interface{})
	if !ok {
		return 0, false
	}
	id, ok := data["project_id"].(int64)
	return id, ok
}
