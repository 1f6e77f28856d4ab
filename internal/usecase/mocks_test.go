package usecase_test

import (
	"context"
	"portfolio-backend/internal/domain"
	"portfolio-backend/pkg/email"

	"github.com/stretchr/testify/mock"
)

type MockContactRepo struct {
	mock.Mock
}

func (m *MockContactRepo) Insert(ctx context.Context, msg *domain.ContactMessage) error {
	return m.Called(ctx, msg).Error(0)
}

type MockPhotoRepo struct {
	mock.Mock
}

func (m *MockPhotoRepo) FetchAll(ctx context.Context) ([]domain.Photo, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Photo), args.Error(1)
}

type MockAutomationRepo struct {
	mock.Mock
}

func (m *MockAutomationRepo) FetchAll(ctx context.Context) ([]domain.Automation, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Automation), args.Error(1)
}

type MockNotifier struct {
	mock.Mock
}

func (m *MockNotifier) IsConfigured() bool {
	return m.Called().Bool(0)
}

func (m *MockNotifier) SendContactEmail(data email.ContactEmailData) error {
	return m.Called(data).Error(0)
}
