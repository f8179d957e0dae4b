package postgres

import (
	"github.com/JeremyDong22/gp-calculator/internal/auth"
	userDatamodel "github.com/JeremyDong22/gp-calculator/internal/core/datamodel/user"
	"gorm.io/gorm"
)

// AuthRepository implements the auth.RepositoryAPI interface using GORM.
type AuthRepository struct {
	db *gorm.DB
}

func NewAuthRepository(db *gorm.DB) auth.RepositoryAPI {
	return &AuthRepository{db: db}
}

func (r *AuthRepository) GetPasswordForEmail(email string) (string, int64, error) {
	var u userDatamodel.User
	if err := r.db.Where("email = ?", email).First(&u).Error; err != nil {
		return "", 0, err
	}
	return u.PasswordHash, u.ID, nil
}

func (r *AuthRepository) GetUser(userID int64) (*auth.User, error) {
	var u userDatamodel.User
	if err := r.db.Where("id = ?", userID).First(&u).Error; err != nil {
		return nil, err
	}

	role, err := auth.ParseRole(u.Role)
	if err != nil {
		return nil, err
	}

	return &auth.User{
		ID:       u.ID,
		Email:    u.Email,
		Name:     u.Name,
		Role:     role,
		IsActive: u.IsActive,
	}, nil
}
