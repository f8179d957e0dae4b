package project

import (
	"errors"
	"time"
)

type CreateProjectDTO struct {
	Name                string   `json:"name"`
	ClientName          string   `json:"client_name"`
	ContractAmount      float64  `json:"contract_amount"`
	DevelopmentLeaderID int64    `json:"development_leader_id"`
	ExecutionLeaderID   int64    `json:"execution_leader_id"`
	SalaryRatio         *float64 `json:"salary_ratio,omitempty"`
}

func (dto CreateProjectDTO) Validate() error {
	if dto.Name == "" {
		return errors.New("project name is required")
	}
	if dto.ContractAmount < 0 {
		return errors.New("contract amount cannot be negative")
	}
	if dto.ExecutionLeaderID == 0 {
		return errors.New("execution leader is required")
	}
	if dto.SalaryRatio != nil && (*dto.SalaryRatio < 0 || *dto.SalaryRatio > 1) {
		return errors.New("salary ratio must be within [0,1]")
	}
	return nil
}

type SetCompletionDateDTO struct {
	CompletionDate time.Time `json:"completion_date"`
}

func (dto SetCompletionDateDTO) Validate() error {
	if dto.CompletionDate.IsZero() {
		return errors.New("completion date is required")
	}
	return nil
}
