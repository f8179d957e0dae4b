package postgres

import (
	"time"

	userDatamodel "github.com/JeremyDong22/gp-calculator/internal/core/datamodel/user"
	"github.com/JeremyDong22/gp-calculator/internal/user"
	"gorm.io/gorm"
)

// UserRepository implements the user.Repository interface using GORM.
type UserRepository struct {
	db *gorm.DB
}

func NewUserRepository(db *gorm.DB) user.Repository {
	return &UserRepository{db: db}
}

func (r *UserRepository) Create(u *user.User, passwordHash string) error {
	dm := user.ToDataModel(u, passwordHash)
	if err := r.db.Create(dm).Error; err != nil {
		return err
	}
	u.ID = dm.ID
	return nil
}

func (r *UserRepository) GetByID(id int64) (*user.User, error) {
	var dm userDatamodel.User
	if err := r.db.Where("id = ?", id).First(&dm).Error; err != nil {
		return nil, err
	}
	return user.FromDataModel(&dm), nil
}

func (r *UserRepository) GetByEmail(email string) (*user.User, error) {
	var dm userDatamodel.User
	if err := r.db.Where("email = ?", email).First(&dm).Error; err != nil {
		return nil, err
	}
	return user.FromDataModel(&dm), nil
}

func (r *UserRepository) GetAll() ([]*user.User, error) {
	var dms []*userDatamodel.User
	if err := r.db.Order("id ASC").Find(&dms).Error; err != nil {
		return nil, err
	}
	return user.FromDataModelSlice(dms), nil
}

func (r *UserRepository) UpdateRates(id int64, dailyRate, dailyWage *float64, level *int) error {
	updates := map[string]interface{}{"updated_at": time.Now()}
	if dailyRate != nil {
		updates["daily_rate"] = *dailyRate
	}
	if dailyWage != nil {
		updates["daily_wage"] = *dailyWage
	}
	if level != nil {
		updates["level"] = *level
	}
	return r.db.Model(&userDatamodel.User{}).Where("id = ?", id).Updates(updates).Error
}
