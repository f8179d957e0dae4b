package project

import "time"

type Project struct {
	ID                  int64      `gorm:"primaryKey"`
	Name                string     `gorm:"column:name;not null"`
	ClientName          string     `gorm:"column:client_name"`
	ContractAmount      float64    `gorm:"column:contract_amount;not null;default:0"`
	Status              int        `gorm:"column:status;not null;default:0"`
	CompletionDate      *time.Time `gorm:"column:completion_date"`
	DevelopmentLeaderID int64      `gorm:"column:development_leader_id"`
	ExecutionLeaderID   int64      `gorm:"column:execution_leader_id;not null;index"`
	SalaryRatio         float64    `gorm:"column:salary_ratio;not null;default:0.1"`
	CreatedAt           time.Time  `gorm:"column:created_at;autoCreateTime"`
	UpdatedAt           time.Time  `gorm:"column:updated_at;autoUpdateTime"`
}

func (Project) TableName() string {
	return "projects"
}
