package user

import (
	"log/slog"
	"time"

	apperrors "github.com/JeremyDong22/gp-calculator/internal"
	"github.com/JeremyDong22/gp-calculator/internal/auth"
)

type Repository interface {
	Create(u *User, passwordHash string) error
	GetByID(id int64) (*User, error)
	GetByEmail(email string) (*User, error)
	GetAll() ([]*User, error)
	UpdateRates(id int64, dailyRate, dailyWage *float64, level *int) error
}

// PasswordHasher is satisfied by the auth service.
type PasswordHasher interface {
	HashPassword(password string) (string, error)
}

type Service struct {
	repo   Repository
	hasher PasswordHasher
	logger *slog.Logger
}

func NewService(repo Repository, hasher PasswordHasher, logger *slog.Logger) *Service {
	return &Service{repo: repo, hasher: hasher, logger: logger}
}

// CreateUser registers a staff member. Staff administration is the
// department head's alone.
func (s *Service) CreateUser(actor auth.Actor, dto CreateUserDTO) (*User, error) {
	if !actor.IsDepartmentHead() {
		s.logger.Warn("create user denied", "actor_id", actor.ID, "role", actor.Role)
		return nil, apperrors.NewForbiddenError("only the department head manages staff", apperrors.ErrCodeNotAllowed)
	}
	if err := dto.Validate(); err != nil {
		return nil, apperrors.NewValidationError(err.Error(), apperrors.ErrCodeValidationFailed)
	}

	if existing, err := s.repo.GetByEmail(dto.Email); err == nil && existing != nil {
		return nil, apperrors.NewConflictError("email already registered", apperrors.ErrCodeEmailTaken)
	}

	hash, err := s.hasher.HashPassword(dto.Password)
	if err != nil {
		s.logger.Error("failed to hash password", "error", err)
		return nil, apperrors.NewInternalError("failed to hash password", err)
	}

	role, _ := auth.ParseRole(dto.Role)
	now := time.Now()
	u := &User{
		Email:     dto.Email,
		Name:      dto.Name,
		Role:      role,
		DailyRate: dto.DailyRate,
		DailyWage: dto.DailyWage,
		Level:     dto.Level,
		IsActive:  true,
		CreatedAt: now,
		UpdatedAt: now,
	}

	if err := s.repo.Create(u, hash); err != nil {
		s.logger.Error("failed to create user", "error", err)
		return nil, err
	}

	s.logger.Info("user created", "user_id", u.ID, "role", u.Role)
	return u, nil
}

func (s *Service) GetUser(id int64) (*User, error) {
	u, err := s.repo.GetByID(id)
	if err != nil {
		return nil, apperrors.ErrUserNotFound
	}
	return u, nil
}

func (s *Service) ListUsers() ([]*User, error) {
	return s.repo.GetAll()
}

// UpdateRates adjusts a staff member's cost and pay rates. Department head
// only, same as creation.
func (s *Service) UpdateRates(actor auth.Actor, id int64, dto UpdateRatesDTO) (*User, error) {
	if !actor.IsDepartmentHead() {
		return nil, apperrors.NewForbiddenError("only the department head manages staff", apperrors.ErrCodeNotAllowed)
	}
	if err := dto.Validate(); err != nil {
		return nil, apperrors.NewValidationError(err.Error(), apperrors.ErrCodeValidationFailed)
	}
	if _, err := s.repo.GetByID(id); err != nil {
		return nil, apperrors.ErrUserNotFound
	}

	if err := s.repo.UpdateRates(id, dto.DailyRate, dto.DailyWage, dto.Level); err != nil {
		s.logger.Error("failed to update rates", "error", err, "user_id", id)
		return nil, err
	}

	return s.GetUser(id)
}
