package project

import (
	"fmt"
	"time"

	"github.com/JeremyDong22/gp-calculator/internal/auth"
	projectDatamodel "github.com/JeremyDong22/gp-calculator/internal/core/datamodel/project"
)

// Status is the project lifecycle position. It only ever moves forward, one
// step at a time, and each step is driven by a side effect of another
// command (first timesheet, completion date, invoice, confirmed receipt).
type Status int

const (
	StatusNotStarted Status = 0
	StatusInProgress Status = 1
	StatusCompleted  Status = 2
	StatusInvoiced   Status = 3
	StatusReceived   Status = 4
)

func (s Status) String() string {
	switch s {
	case StatusNotStarted:
		return "not_started"
	case StatusInProgress:
		return "in_progress"
	case StatusCompleted:
		return "completed"
	case StatusInvoiced:
		return "invoiced"
	case StatusReceived:
		return "received"
	}
	return fmt.Sprintf("invalid(%d)", int(s))
}

func (s Status) Valid() bool {
	return s >= StatusNotStarted && s <= StatusReceived
}

// mustValid guards the five-value invariant. A stored status outside the
// documented range is a programming error, not a recoverable condition.
func mustValid(s Status) Status {
	if !s.Valid() {
		panic(fmt.Sprintf("project status out of range: %d", int(s)))
	}
	return s
}

type Project struct {
	ID                  int64      `json:"id"`
	Name                string     `json:"name"`
	ClientName          string     `json:"client_name"`
	ContractAmount      float64    `json:"contract_amount"`
	Status              Status     `json:"status"`
	CompletionDate      *time.Time `json:"completion_date,omitempty"`
	DevelopmentLeaderID int64      `json:"development_leader_id"`
	ExecutionLeaderID   int64      `json:"execution_leader_id"`
	SalaryRatio         float64    `json:"salary_ratio"`
	CreatedAt           time.Time  `json:"created_at"`
	UpdatedAt           time.Time  `json:"updated_at"`
}

// Ref narrows the project to the fields the capability predicate needs.
func (p *Project) Ref() auth.ProjectRef {
	return auth.ProjectRef{ID: p.ID, ExecutionLeaderID: p.ExecutionLeaderID}
}

func ToDataModel(p *Project) *projectDatamodel.Project {
	return &projectDatamodel.Project{
		ID:                  p.ID,
		Name:                p.Name,
		ClientName:          p.ClientName,
		ContractAmount:      p.ContractAmount,
		Status:              int(mustValid(p.Status)),
		CompletionDate:      p.CompletionDate,
		DevelopmentLeaderID: p.DevelopmentLeaderID,
		ExecutionLeaderID:   p.ExecutionLeaderID,
		SalaryRatio:         p.SalaryRatio,
		CreatedAt:           p.CreatedAt,
		UpdatedAt:           p.UpdatedAt,
	}
}

func FromDataModel(p *projectDatamodel.Project) *Project {
	return &Project{
		ID:                  p.ID,
		Name:                p.Name,
		ClientName:          p.ClientName,
		ContractAmount:      p.ContractAmount,
		Status:              mustValid(Status(p.Status)),
		CompletionDate:      p.CompletionDate,
		DevelopmentLeaderID: p.DevelopmentLeaderID,
		ExecutionLeaderID:   p.ExecutionLeaderID,
		SalaryRatio:         p.SalaryRatio,
		CreatedAt:           p.CreatedAt,
		UpdatedAt:           p.UpdatedAt,
	}
}

func FromDataModelSlice(projects []*projectDatamodel.Project) []*Project {
	result := make([]*Project, len(projects))
	for i, p := range projects {
		result[i] = FromDataModel(p)
	}
	return result
}
