package usecase

import (
	"errors"
	"sync/atomic"

	"github.com/sanish-bhagat/Health-Sathi/internal/domain/entity"
	"github.com/sanish-bhagat/Health-Sathi/internal/domain/repository"

	"gorm.io/gorm"
)

// Compile-time checks that the mocks satisfy the repository contracts.
var (
	_ repository.UserRepository   = (*MockUserRepository)(nil)
	_ repository.ReportRepository = (*MockReportRepository)(nil)
)

// MockUserRepository is a function-field mock of UserRepository.
type MockUserRepository struct {
	CreateFunc      func(db *gorm.DB, user *entity.User) error
	SaveFunc        func(db *gorm.DB, user *entity.User) error
	FindByIDFunc    func(db *gorm.DB, id string) (*entity.User, error)
	FindByEmailFunc func(db *gorm.DB, email string) (*entity.User, error)
	FindByRoleFunc  func(db *gorm.DB, role entity.UserRole) ([]entity.User, error)
	FindAllFunc     func(db *gorm.DB) ([]entity.User, error)
	MergeUpdateFunc func(db *gorm.DB, id string, fields map[string]any) error

	MergeUpdateCalls int32
}

func (m *MockUserRepository) Create(db *gorm.DB, user *entity.User) error {
	if m.CreateFunc != nil {
		return m.CreateFunc(db, user)
	}
	return nil
}

func (m *MockUserRepository) Save(db *gorm.DB, user *entity.User) error {
	if m.SaveFunc != nil {
		return m.SaveFunc(db, user)
	}
	return nil
}

func (m *MockUserRepository) FindByID(db *gorm.DB, id string) (*entity.User, error) {
	if m.FindByIDFunc != nil {
		return m.FindByIDFunc(db, id)
	}
	return nil, nil
}

func (m *MockUserRepository) FindByEmail(db *gorm.DB, email string) (*entity.User, error) {
	if m.FindByEmailFunc != nil {
		return m.FindByEmailFunc(db, email)
	}
	return nil, nil
}

func (m *MockUserRepository) FindByRole(db *gorm.DB, role entity.UserRole) ([]entity.User, error) {
	if m.FindByRoleFunc != nil {
		return m.FindByRoleFunc(db, role)
	}
	return nil, nil
}

func (m *MockUserRepository) FindAll(db *gorm.DB) ([]entity.User, error) {
	if m.FindAllFunc != nil {
		return m.FindAllFunc(db)
	}
	return nil, nil
}

func (m *MockUserRepository) MergeUpdate(db *gorm.DB, id string, fields map[string]any) error {
	atomic.AddInt32(&m.MergeUpdateCalls, 1)
	if m.MergeUpdateFunc != nil {
		return m.MergeUpdateFunc(db, id, fields)
	}
	return nil
}

// MockReportRepository is a function-field mock of ReportRepository.
type MockReportRepository struct {
	CreateFunc               func(db *gorm.DB, report *entity.HealthReport) error
	SaveFunc                 func(db *gorm.DB, report *entity.HealthReport) error
	FindByIDFunc             func(db *gorm.DB, id string) (*entity.HealthReport, error)
	FindByUserIDFunc         func(db *gorm.DB, userID string) ([]entity.HealthReport, error)
	FindByTargetDoctorIDFunc func(db *gorm.DB, doctorID string) ([]entity.HealthReport, error)
	FindAllFunc              func(db *gorm.DB) ([]entity.HealthReport, error)
	MergeUpdateFunc          func(db *gorm.DB, id string, fields map[string]any) error

	FindByUserIDCalls         int32
	FindByTargetDoctorIDCalls int32
	MergeUpdateCalls          int32
}

func (m *MockReportRepository) Create(db *gorm.DB, report *entity.HealthReport) error {
	if m.CreateFunc != nil {
		return m.CreateFunc(db, report)
	}
	return nil
}

func (m *MockReportRepository) Save(db *gorm.DB, report *entity.HealthReport) error {
	if m.SaveFunc != nil {
		return m.SaveFunc(db, report)
	}
	return nil
}

func (m *MockReportRepository) FindByID(db *gorm.DB, id string) (*entity.HealthReport, error) {
	if m.FindByIDFunc != nil {
		return m.FindByIDFunc(db, id)
	}
	return nil, nil
}

func (m *MockReportRepository) FindByUserID(db *gorm.DB, userID string) ([]entity.HealthReport, error) {
	atomic.AddInt32(&m.FindByUserIDCalls, 1)
	if m.FindByUserIDFunc != nil {
		return m.FindByUserIDFunc(db, userID)
	}
	return nil, nil
}

func (m *MockReportRepository) FindByTargetDoctorID(db *gorm.DB, doctorID string) ([]entity.HealthReport, error) {
	atomic.AddInt32(&m.FindByTargetDoctorIDCalls, 1)
	if m.FindByTargetDoctorIDFunc != nil {
		return m.FindByTargetDoctorIDFunc(db, doctorID)
	}
	return nil, nil
}

func (m *MockReportRepository) FindAll(db *gorm.DB) ([]entity.HealthReport, error) {
	if m.FindAllFunc != nil {
		return m.FindAllFunc(db)
	}
	return nil, nil
}

func (m *MockReportRepository) MergeUpdate(db *gorm.DB, id string, fields map[string]any) error {
	atomic.AddInt32(&m.MergeUpdateCalls, 1)
	if m.MergeUpdateFunc != nil {
		return m.MergeUpdateFunc(db, id, fields)
	}
	return nil
}

var errMockStore = errors.New("mock store failure")
