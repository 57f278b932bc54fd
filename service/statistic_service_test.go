package service

import (
	"testing"
	"time"

	"tutor_market/constants"
	"tutor_market/model"
	"tutor_market/repository"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
)

// MockStatisticRepository is a mock of repository.StatisticRepository
type MockStatisticRepository struct {
	mock.Mock
}

func (m *MockStatisticRepository) MonthlyCompletedTotals(from, to time.Time) ([]repository.MonthRevenueRow, error) {
	args := m.Called(from, to)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]repository.MonthRevenueRow), args.Error(1)
}

func (m *MockStatisticRepository) AccountStatusBreakdown() ([]repository.AccountStatusRow, error) {
	args := m.Called()
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]repository.AccountStatusRow), args.Error(1)
}

func (m *MockStatisticRepository) CourseStatusBreakdown() ([]repository.CourseStatusRow, error) {
	args := m.Called()
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]repository.CourseStatusRow), args.Error(1)
}

func (m *MockStatisticRepository) TopFinisher() (*model.TopPerformer, error) {
	args := m.Called()
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.TopPerformer), args.Error(1)
}

func (m *MockStatisticRepository) TopTutor() (*model.TopPerformer, error) {
	args := m.Called()
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.TopPerformer), args.Error(1)
}

func (m *MockStatisticRepository) Overview() (*model.DashboardOverview, error) {
	args := m.Called()
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.DashboardOverview), args.Error(1)
}

func TestMonthlyRevenue(t *testing.T) {
	t.Run("Always returns 12 months in order with commission applied", func(t *testing.T) {
		mockRepo := new(MockStatisticRepository)
		svc := NewStatisticService(mockRepo)

		from := time.Date(2025, 1, 1, 0, 0, 0, 0, time.UTC)
		to := time.Date(2026, 1, 1, 0, 0, 0, 0, time.UTC)
		mockRepo.On("MonthlyCompletedTotals", from, to).Return([]repository.MonthRevenueRow{
			{Month: 1, Total: 1000000},
			{Month: 3, Total: 2000000},
		}, nil)

		entries, err := svc.MonthlyRevenue(2025)

		assert.NoError(t, err)
		assert.Len(t, entries, 12)
		for i, entry := range entries {
			assert.Equal(t, i+1, entry.Month)
		}
		assert.Equal(t, float64(150000), entries[0].Revenue) // 15% of 1,000,000
		assert.Equal(t, float64(0), entries[1].Revenue)
		assert.Equal(t, float64(300000), entries[2].Revenue)
		mockRepo.AssertExpectations(t)
	})

	t.Run("Commission is rounded to 2 decimal places", func(t *testing.T) {
		mockRepo := new(MockStatisticRepository)
		svc := NewStatisticService(mockRepo)

		mockRepo.On("MonthlyCompletedTotals", mock.Anything, mock.Anything).Return([]repository.MonthRevenueRow{
			{Month: 2, Total: 333.33}, // * 0.15 = 49.9995
		}, nil)

		entries, err := svc.MonthlyRevenue(2024)

		assert.NoError(t, err)
		assert.Equal(t, 50.0, entries[1].Revenue)
	})

	t.Run("Year out of range is rejected", func(t *testing.T) {
		mockRepo := new(MockStatisticRepository)
		svc := NewStatisticService(mockRepo)

		_, err := svc.MonthlyRevenue(1999)
		assert.ErrorIs(t, err, ErrInvalidYear)

		_, err = svc.MonthlyRevenue(2101)
		assert.ErrorIs(t, err, ErrInvalidYear)

		mockRepo.AssertNotCalled(t, "MonthlyCompletedTotals", mock.Anything, mock.Anything)
	})
}

func TestAccountStatusStats(t *testing.T) {
	mockRepo := new(MockStatisticRepository)
	svc := NewStatisticService(mockRepo)

	mockRepo.On("AccountStatusBreakdown").Return([]repository.AccountStatusRow{
		{Role: constants.ROLE_TUTOR, Active: true, Count: 3},
		{Role: constants.ROLE_USER, Active: false, Count: 2},
		{Role: constants.ROLE_ADMIN, Active: true, Count: 1},
	}, nil)

	stats, err := svc.AccountStatusStats()

	assert.NoError(t, err)
	assert.Equal(t, int64(4), stats.Active)
	assert.Equal(t, int64(2), stats.Inactive)
	assert.Equal(t, int64(3), stats.Tutors.Active)
	assert.Equal(t, int64(0), stats.Tutors.Inactive) // nhóm vắng mặt vẫn là 0
	assert.Equal(t, int64(0), stats.Users.Active)
	assert.Equal(t, int64(2), stats.Users.Inactive)
}

func TestCourseStatusStats(t *testing.T) {
	mockRepo := new(MockStatisticRepository)
	svc := NewStatisticService(mockRepo)

	mockRepo.On("CourseStatusBreakdown").Return([]repository.CourseStatusRow{
		{Active: true, Count: 5},
	}, nil)

	stats, err := svc.CourseStatusStats()

	assert.NoError(t, err)
	assert.Equal(t, int64(5), stats.Active)
	assert.Equal(t, int64(0), stats.Inactive)
}

func TestTopPerformers(t *testing.T) {
	t.Run("No finished course yet returns nil, not an error", func(t *testing.T) {
		mockRepo := new(MockStatisticRepository)
		svc := NewStatisticService(mockRepo)

		mockRepo.On("TopFinisher").Return(nil, nil)
		mockRepo.On("TopTutor").Return(nil, nil)

		top, err := svc.TopAccount()
		assert.NoError(t, err)
		assert.Nil(t, top)

		top, err = svc.TopTutor()
		assert.NoError(t, err)
		assert.Nil(t, top)
	})

	t.Run("Passes through repository result", func(t *testing.T) {
		mockRepo := new(MockStatisticRepository)
		svc := NewStatisticService(mockRepo)

		mockRepo.On("TopFinisher").Return(&model.TopPerformer{
			AccountId:     5,
			FullName:      "Nguyễn Văn A",
			FinishedCount: 9,
		}, nil)

		top, err := svc.TopAccount()

		assert.NoError(t, err)
		assert.Equal(t, uint(5), top.AccountId)
		assert.Equal(t, int64(9), top.FinishedCount)
	})
}

func TestOverview(t *testing.T) {
	mockRepo := new(MockStatisticRepository)
	svc := NewStatisticService(mockRepo)

	mockRepo.On("Overview").Return(&model.DashboardOverview{
		Accounts:     10,
		Tutors:       3,
		Courses:      8,
		Orders:       20,
		TotalRevenue: 1000000,
	}, nil)

	overview, err := svc.Overview()

	assert.NoError(t, err)
	assert.Equal(t, float64(150000), overview.TotalRevenue)
	assert.Equal(t, int64(10), overview.Accounts)
}
