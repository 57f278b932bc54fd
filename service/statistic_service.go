package service

import (
	"math"
	"time"

	"tutor_market/constants"
	"tutor_market/model"
	"tutor_market/repository"
)

// CommissionRate là phần trăm hoa hồng nền tảng giữ lại trên mỗi đơn hoàn tất.
const CommissionRate = 0.15

// StatisticService tổng hợp số liệu báo cáo, chỉ đọc.
type StatisticService struct {
	repo repository.StatisticRepository
}

func NewStatisticService(repo repository.StatisticRepository) *StatisticService {
	return &StatisticService{repo: repo}
}

func round2(v float64) float64 {
	return math.Round(v*100) / 100
}

// MonthlyRevenue trả về đúng 12 phần tử, tháng 1..12,
// tháng không có đơn hoàn tất thì revenue = 0.
func (s *StatisticService) MonthlyRevenue(year int) ([]model.MonthlyRevenueEntry, error) {
	if year < 2000 || year > 2100 {
		return nil, ErrInvalidYear
	}

	from := time.Date(year, 1, 1, 0, 0, 0, 0, time.UTC)
	to := from.AddDate(1, 0, 0)

	rows, err := s.repo.MonthlyCompletedTotals(from, to)
	if err != nil {
		return nil, err
	}

	entries := make([]model.MonthlyRevenueEntry, 12)
	for i := range entries {
		entries[i] = model.MonthlyRevenueEntry{Month: i + 1}
	}
	for _, row := range rows {
		if row.Month < 1 || row.Month > 12 {
			continue
		}
		entries[row.Month-1].Revenue = round2(row.Total * CommissionRate)
	}
	return entries, nil
}

func (s *StatisticService) AccountStatusStats() (*model.AccountStatusStats, error) {
	rows, err := s.repo.AccountStatusBreakdown()
	if err != nil {
		return nil, err
	}

	var stats model.AccountStatusStats
	for _, row := range rows {
		if row.Active {
			stats.Active += row.Count
		} else {
			stats.Inactive += row.Count
		}
		switch row.Role {
		case constants.ROLE_TUTOR:
			if row.Active {
				stats.Tutors.Active += row.Count
			} else {
				stats.Tutors.Inactive += row.Count
			}
		case constants.ROLE_USER:
			if row.Active {
				stats.Users.Active += row.Count
			} else {
				stats.Users.Inactive += row.Count
			}
		}
	}
	return &stats, nil
}

func (s *StatisticService) CourseStatusStats() (*model.CourseStatusStats, error) {
	rows, err := s.repo.CourseStatusBreakdown()
	if err != nil {
		return nil, err
	}

	var stats model.CourseStatusStats
	for _, row := range rows {
		if row.Active {
			stats.Active += row.Count
		} else {
			stats.Inactive += row.Count
		}
	}
	return &stats, nil
}

// TopAccount trả về nil khi chưa có khóa học nào được hoàn thành.
func (s *StatisticService) TopAccount() (*model.TopPerformer, error) {
	return s.repo.TopFinisher()
}

func (s *StatisticService) TopTutor() (*model.TopPerformer, error) {
	return s.repo.TopTutor()
}

func (s *StatisticService) Overview() (*model.DashboardOverview, error) {
	overview, err := s.repo.Overview()
	if err != nil {
		return nil, err
	}
	overview.TotalRevenue = round2(overview.TotalRevenue * CommissionRate)
	return overview, nil
}
