package postgres

import (
	"time"

	projectDatamodel "github.com/JeremyDong22/gp-calculator/internal/core/datamodel/project"
	"github.com/JeremyDong22/gp-calculator/internal/project"
	"gorm.io/gorm"
)

// ProjectRepository implements the project.Repository interface using GORM.
type ProjectRepository struct {
	db *gorm.DB
}

func NewProjectRepository(db *gorm.DB) project.Repository {
	return &ProjectRepository{db: db}
}

func (r *ProjectRepository) Create(p *project.Project) error {
	dm := project.ToDataModel(p)
	if err := r.db.Create(dm).Error; err != nil {
		return err
	}
	p.ID = dm.ID
	return nil
}

func (r *ProjectRepository) GetByID(id int64) (*project.Project, error) {
	var dm projectDatamodel.Project
	if err := r.db.Where("id = ?", id).First(&dm).Error; err != nil {
		return nil, err
	}
	return project.FromDataModel(&dm), nil
}

func (r *ProjectRepository) GetAll() ([]*project.Project, error) {
	var dms []*projectDatamodel.Project
	if err := r.db.Order("id ASC").Find(&dms).Error; err != nil {
		return nil, err
	}
	return project.FromDataModelSlice(dms), nil
}

func (r *ProjectRepository) GetByExecutionLeader(leaderID int64) ([]*project.Project, error) {
	var dms []*projectDatamodel.Project
	if err := r.db.Where("execution_leader_id = ?", leaderID).Order("id ASC").Find(&dms).Error; err != nil {
		return nil, err
	}
	return project.FromDataModelSlice(dms), nil
}

func (r *ProjectRepository) SetCompletionDate(id int64, date time.Time) error {
	return r.db.Model(&projectDatamodel.Project{}).
		Where("id = ?", id).
		Updates(map[string]interface{}{
			"completion_date": date,
			"updated_at":      time.Now(),
		}).Error
}

// AdvanceStatus performs the compare-and-set: the UPDATE only matches when
// the stored status still equals from, so concurrent or repeated triggers
// change nothing once the project has moved on.
func (r *ProjectRepository) AdvanceStatus(id int64, from, to project.Status) (bool, error) {
	tx := r.db.Model(&projectDatamodel.Project{}).
		Where("id = ? AND status = ?", id, int(from)).
		Updates(map[string]interface{}{
			"status":     int(to),
			"updated_at": time.Now(),
		})
	if tx.Error != nil {
		return false, tx.Error
	}
	return tx.RowsAffected > 0, nil
}
