package auth

// Stage identifies a gate in one of the approval chains. Every state machine
// asks the same question through the same predicate: may this actor move an
// entry through this stage on this project?
type Stage string

const (
	// StageTimesheetReview gates approve/reject of a pending timesheet entry.
	StageTimesheetReview Stage = "timesheet_review"
	// StageExpenseExecutor gates pending -> executor_approved.
	StageExpenseExecutor Stage = "expense_executor"
	// StageExpenseSecretary gates executor_approved -> secretary_approved.
	StageExpenseSecretary Stage = "expense_secretary"
	// StageExpenseFinal gates secretary_approved -> approved.
	StageExpenseFinal Stage = "expense_final"
)

// ProjectRef carries the only project attributes authorization depends on.
type ProjectRef struct {
	ID                int64
	ExecutionLeaderID int64
}

// Actor is the acting user as seen by the state machines: an id and a role
// tag. Services receive an Actor, never raw permission strings.
type Actor struct {
	ID   int64
	Role Role
}

func (a Actor) IsDepartmentHead() bool {
	return a.Role == RoleDepartmentHead
}

// CanTransition reports whether the actor may perform the transition gated by
// stage on the given project. The department head passes every gate.
func (a Actor) CanTransition(stage Stage, project ProjectRef) bool {
	if a.Role == RoleDepartmentHead {
		return true
	}

	switch stage {
	case StageTimesheetReview:
		return a.Role == RoleProjectManager && a.ID == project.ExecutionLeaderID
	case StageExpenseExecutor:
		return a.ID == project.ExecutionLeaderID
	case StageExpenseSecretary:
		return a.Role == RoleSecretary
	case StageExpenseFinal:
		// only the department head signs off the final stage
		return false
	}

	return false
}

// IsOwner reports whether the actor submitted the entry.
func (a Actor) IsOwner(entryUserID int64) bool {
	return a.ID == entryUserID
}
