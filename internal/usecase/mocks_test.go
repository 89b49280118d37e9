package usecase

import (
	"context"
	"time"

	"hospital-agenda/internal/domain/entity"
	"hospital-agenda/pkg/jwt"

	"github.com/google/uuid"
	"github.com/stretchr/testify/mock"
	"gorm.io/gorm"
)

// MockDoctorRepository is a mock implementation of DoctorRepository
type MockDoctorRepository struct {
	mock.Mock
}

func (m *MockDoctorRepository) FindByID(ctx context.Context, db *gorm.DB, id uuid.UUID) (*entity.Doctor, error) {
	args := m.Called(ctx, db, id)
	doctor, _ := args.Get(0).(*entity.Doctor)
	return doctor, args.Error(1)
}

func (m *MockDoctorRepository) FindAllActive(ctx context.Context, db *gorm.DB) ([]entity.Doctor, error) {
	args := m.Called(ctx, db)
	doctors, _ := args.Get(0).([]entity.Doctor)
	return doctors, args.Error(1)
}

func (m *MockDoctorRepository) UpdateSchedule(ctx context.Context, db *gorm.DB, id uuid.UUID, schedule entity.ScheduleConfig) error {
	args := m.Called(ctx, db, id, schedule)
	return args.Error(0)
}

// MockAppointmentRepository is a mock implementation of AppointmentRepository
type MockAppointmentRepository struct {
	mock.Mock
}

func (m *MockAppointmentRepository) FindActiveByDate(ctx context.Context, db *gorm.DB, filter *entity.AppointmentFilter) ([]entity.Appointment, error) {
	args := m.Called(ctx, db, filter)
	appointments, _ := args.Get(0).([]entity.Appointment)
	return appointments, args.Error(1)
}

// MockUserRepository is a mock implementation of UserRepository
type MockUserRepository struct {
	mock.Mock
}

func (m *MockUserRepository) FindByEmail(ctx context.Context, db *gorm.DB, email string) (*entity.User, error) {
	args := m.Called(ctx, db, email)
	user, _ := args.Get(0).(*entity.User)
	return user, args.Error(1)
}

func (m *MockUserRepository) FindByID(ctx context.Context, db *gorm.DB, id uuid.UUID) (*entity.User, error) {
	args := m.Called(ctx, db, id)
	user, _ := args.Get(0).(*entity.User)
	return user, args.Error(1)
}

// MockDoctorCache is a mock implementation of DoctorCache
type MockDoctorCache struct {
	mock.Mock
}

func (m *MockDoctorCache) GetActiveDoctors(ctx context.Context) ([]entity.Doctor, bool, error) {
	args := m.Called(ctx)
	doctors, _ := args.Get(0).([]entity.Doctor)
	return doctors, args.Bool(1), args.Error(2)
}

func (m *MockDoctorCache) SetActiveDoctors(ctx context.Context, doctors []entity.Doctor) error {
	args := m.Called(ctx, doctors)
	return args.Error(0)
}

func (m *MockDoctorCache) Invalidate(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}

// MockAuditService is a mock implementation of AuditService
type MockAuditService struct {
	mock.Mock
}

func (m *MockAuditService) LogAction(ctx context.Context, tx *gorm.DB, userID *uuid.UUID, action string, metadata entity.JSON) error {
	args := m.Called(ctx, tx, userID, action, metadata)
	return args.Error(0)
}

func (m *MockAuditService) LogUpdate(ctx context.Context, tx *gorm.DB, userID *uuid.UUID, action string, entityName string, entityID string, oldValue, newValue interface{}) error {
	args := m.Called(ctx, tx, userID, action, entityName, entityID, oldValue, newValue)
	return args.Error(0)
}

// MockTokenStore is a mock implementation of TokenStore
type MockTokenStore struct {
	mock.Mock
}

func (m *MockTokenStore) Store(ctx context.Context, tokenType jwt.TokenType, userID uuid.UUID, tokenID string, ttl time.Duration) error {
	args := m.Called(ctx, tokenType, userID, tokenID, ttl)
	return args.Error(0)
}

func (m *MockTokenStore) Exists(ctx context.Context, tokenType jwt.TokenType, userID uuid.UUID, tokenID string) (bool, error) {
	args := m.Called(ctx, tokenType, userID, tokenID)
	return args.Bool(0), args.Error(1)
}

func (m *MockTokenStore) Revoke(ctx context.Context, tokenType jwt.TokenType, userID uuid.UUID, tokenID string) error {
	args := m.Called(ctx, tokenType, userID, tokenID)
	return args.Error(0)
}
