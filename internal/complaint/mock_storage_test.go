package complaint_test

import (
	"campusdesk/backend/internal/models"

	"github.com/stretchr/testify/mock"
)

type MockStorage struct {
	mock.Mock
}

func (m *MockStorage) Append(record *models.ComplaintRecord) error {
	args := m.Called(record)
	return args.Error(0)
}

func (m *MockStorage) List() ([]models.ComplaintRecord, error) {
	args := m.Called()
	return args.Get(0).([]models.ComplaintRecord), args.Error(1)
}

func (m *MockStorage) GetByID(id int64) (*models.ComplaintRecord, error) {
	args := m.Called(id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.ComplaintRecord), args.Error(1)
}

func (m *MockStorage) UpdateStatus(id int64, status string) error {
	args := m.Called(id, status)
	return args.Error(0)
}
