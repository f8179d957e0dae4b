package user_test

import (
	"errors"
	"log/slog"
	"os"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	apperrors "github.com/JeremyDong22/gp-calculator/internal"
	"github.com/JeremyDong22/gp-calculator/internal/auth"
	"github.com/JeremyDong22/gp-calculator/internal/user"
)

// Mock repository for testing
type mockUserRepository struct {
	users  map[int64]*user.User
	hashes map[int64]string
	nextID int64
}

func newMockUserRepository() *mockUserRepository {
	return &mockUserRepository{
		users:  make(map[int64]*user.User),
		hashes: make(map[int64]string),
		nextID: 1,
	}
}

func (m *mockUserRepository) Create(u *user.User, passwordHash string) error {
	u.ID = m.nextID
	m.nextID++
	m.users[u.ID] = u
	m.hashes[u.ID] = passwordHash
	return nil
}

func (m *mockUserRepository) GetByID(id int64) (*user.User, error) {
	u, exists := m.users[id]
	if !exists {
		return nil, errors.New("user not found")
	}
	return u, nil
}

func (m *mockUserRepository) GetByEmail(email string) (*user.User, error) {
	for _, u := range m.users {
		if u.Email == email {
			return u, nil
		}
	}
	return nil, errors.New("user not found")
}

func (m *mockUserRepository) GetAll() ([]*user.User, error) {
	var result []*user.User
	for _, u := range m.users {
		result = append(result, u)
	}
	return result, nil
}

func (m *mockUserRepository) UpdateRates(id int64, dailyRate, dailyWage *float64, level *int) error {
	u, exists := m.users[id]
	if !exists {
		return errors.New("user not found")
	}
	if dailyRate != nil {
		u.DailyRate = *dailyRate
	}
	if dailyWage != nil {
		u.DailyWage = *dailyWage
	}
	if level != nil {
		u.Level = *level
	}
	return nil
}

type mockPasswordHasher struct{}

func (mockPasswordHasher) HashPassword(password string) (string, error) {
	return "hashed:" + password, nil
}

var _ = Describe("UserService", func() {
	var (
		userService *user.Service
		mockRepo    *mockUserRepository
		logger      *slog.Logger
	)

	var (
		head      = auth.Actor{ID: 1, Role: auth.RoleDepartmentHead}
		secretary = auth.Actor{ID: 5, Role: auth.RoleSecretary}
	)

	validDTO := func() user.CreateUserDTO {
		return user.CreateUserDTO{
			Email:     "dev.wang@dept.example",
			Name:      "Wang Jun",
			Password:  "password123",
			Role:      "employee",
			DailyRate: 1200,
			DailyWage: 1000,
			Level:     3,
		}
	}

	BeforeEach(func() {
		mockRepo = newMockUserRepository()
		logger = slog.New(slog.NewTextHandler(os.Stdout, &slog.HandlerOptions{Level: slog.LevelError}))
		userService = user.NewService(mockRepo, mockPasswordHasher{}, logger)
	})

	Describe("CreateUser", func() {
		It("should register staff with a hashed password", func() {
			u, err := userService.CreateUser(head, validDTO())

			Expect(err).ToNot(HaveOccurred())
			Expect(u.ID).ToNot(BeZero())
			Expect(u.Role).To(Equal(auth.RoleEmployee))
			Expect(u.IsActive).To(BeTrue())
			Expect(mockRepo.hashes[u.ID]).To(Equal("hashed:password123"))
		})

		It("should deny anyone but the department head", func() {
			_, err := userService.CreateUser(secretary, validDTO())

			var appErr *apperrors.AppError
			Expect(errors.As(err, &appErr)).To(BeTrue())
			Expect(appErr.Code).To(Equal(apperrors.ErrCodeNotAllowed))
		})

		It("should refuse a duplicate email", func() {
			_, err := userService.CreateUser(head, validDTO())
			Expect(err).ToNot(HaveOccurred())

			_, err = userService.CreateUser(head, validDTO())

			var appErr *apperrors.AppError
			Expect(errors.As(err, &appErr)).To(BeTrue())
			Expect(appErr.Code).To(Equal(apperrors.ErrCodeEmailTaken))
		})

		It("should reject a short password", func() {
			dto := validDTO()
			dto.Password = "short"

			_, err := userService.CreateUser(head, dto)

			Expect(err).To(HaveOccurred())
		})

		It("should reject an unknown role", func() {
			dto := validDTO()
			dto.Role = "ceo"

			_, err := userService.CreateUser(head, dto)

			Expect(err).To(HaveOccurred())
		})
	})

	Describe("UpdateRates", func() {
		var userID int64

		BeforeEach(func() {
			u, err := userService.CreateUser(head, validDTO())
			Expect(err).ToNot(HaveOccurred())
			userID = u.ID
		})

		It("should update only the fields provided", func() {
			rate := 1500.0

			u, err := userService.UpdateRates(head, userID, user.UpdateRatesDTO{DailyRate: &rate})

			Expect(err).ToNot(HaveOccurred())
			Expect(u.DailyRate).To(Equal(1500.0))
			Expect(u.DailyWage).To(Equal(1000.0))
			Expect(u.Level).To(Equal(3))
		})

		It("should deny anyone but the department head", func() {
			rate := 1500.0

			_, err := userService.UpdateRates(secretary, userID, user.UpdateRatesDTO{DailyRate: &rate})

			var appErr *apperrors.AppError
			Expect(errors.As(err, &appErr)).To(BeTrue())
			Expect(appErr.Code).To(Equal(apperrors.ErrCodeNotAllowed))
		})

		It("should reject an empty update", func() {
			_, err := userService.UpdateRates(head, userID, user.UpdateRatesDTO{})

			Expect(err).To(HaveOccurred())
		})

		It("should return not found for an unknown user", func() {
			rate := 1500.0

			_, err := userService.UpdateRates(head, 999, user.UpdateRatesDTO{DailyRate: &rate})

			Expect(err).To(Equal(apperrors.ErrUserNotFound))
		})
	})
})
