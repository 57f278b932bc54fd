package repository

import (
	"time"

	"tutor_market/constants"
	"tutor_market/model"

	"gorm.io/gorm"
)

type MonthRevenueRow struct {
	Month int     `json:"month"`
	Total float64 `json:"total"`
}

type AccountStatusRow struct {
	Role   string `json:"role"`
	Active bool   `json:"active"`
	Count  int64  `json:"count"`
}

type CourseStatusRow struct {
	Active bool  `json:"active"`
	Count  int64 `json:"count"`
}

// StatisticRepository là các truy vấn báo cáo chỉ đọc cho dashboard.
type StatisticRepository interface {
	MonthlyCompletedTotals(from, to time.Time) ([]MonthRevenueRow, error)
	AccountStatusBreakdown() ([]AccountStatusRow, error)
	CourseStatusBreakdown() ([]CourseStatusRow, error)
	TopFinisher() (*model.TopPerformer, error)
	TopTutor() (*model.TopPerformer, error)
	Overview() (*model.DashboardOverview, error)
}

type gormStatisticRepository struct {
	db *gorm.DB
}

func NewStatisticRepository(db *gorm.DB) StatisticRepository {
	return &gormStatisticRepository{db: db}
}

func (r *gormStatisticRepository) MonthlyCompletedTotals(from, to time.Time) ([]MonthRevenueRow, error) {
	var rows []MonthRevenueRow
	err := r.db.Raw(`
        SELECT EXTRACT(MONTH FROM created_at)::int AS month,
               COALESCE(SUM(total_amount), 0) AS total
        FROM orders
        WHERE status = ?
          AND created_at >= ? AND created_at < ?
        GROUP BY 1
        ORDER BY 1
    `, constants.ORDER_COMPLETED, from, to).Scan(&rows).Error
	return rows, err
}

func (r *gormStatisticRepository) AccountStatusBreakdown() ([]AccountStatusRow, error) {
	var rows []AccountStatusRow
	err := r.db.Raw(`
        SELECT role, active, COUNT(*) AS count
        FROM accounts
        GROUP BY role, active
    `).Scan(&rows).Error
	return rows, err
}

func (r *gormStatisticRepository) CourseStatusBreakdown() ([]CourseStatusRow, error) {
	var rows []CourseStatusRow
	err := r.db.Raw(`
        SELECT active, COUNT(*) AS count
        FROM courses
        GROUP BY active
    `).Scan(&rows).Error
	return rows, err
}

// TopFinisher: người học có nhiều khóa hoàn thành nhất.
// Đồng hạng thì lấy account id nhỏ nhất cho kết quả ổn định.
func (r *gormStatisticRepository) TopFinisher() (*model.TopPerformer, error) {
	var row model.TopPerformer
	result := r.db.Raw(`
        SELECT a.id AS account_id,
               a.full_name,
               a.email,
               COUNT(od.id) AS finished_count
        FROM order_details od
        JOIN orders o ON o.id = od.order_id
        JOIN accounts a ON a.id = o.account_id
        WHERE od.is_finish_course = true
        GROUP BY a.id, a.full_name, a.email
        ORDER BY finished_count DESC, a.id ASC
        LIMIT 1
    `).Scan(&row)
	if result.Error != nil {
		return nil, result.Error
	}
	if result.RowsAffected == 0 {
		return nil, nil
	}
	return &row, nil
}

func (r *gormStatisticRepository) TopTutor() (*model.TopPerformer, error) {
	var row model.TopPerformer
	result := r.db.Raw(`
        SELECT a.id AS account_id,
               a.full_name,
               a.email,
               COUNT(od.id) AS finished_count
        FROM order_details od
        JOIN courses c ON c.id = od.course_id
        JOIN accounts a ON a.id = c.creator_id
        WHERE od.is_finish_course = true
          AND a.role = ?
        GROUP BY a.id, a.full_name, a.email
        ORDER BY finished_count DESC, a.id ASC
        LIMIT 1
    `, constants.ROLE_TUTOR).Scan(&row)
	if result.Error != nil {
		return nil, result.Error
	}
	if result.RowsAffected == 0 {
		return nil, nil
	}
	return &row, nil
}

func (r *gormStatisticRepository) Overview() (*model.DashboardOverview, error) {
	var overview model.DashboardOverview

	if err := r.db.Model(&model.Account{}).Count(&overview.Accounts).Error; err != nil {
		return nil, err
	}
	if err := r.db.Model(&model.Account{}).Where("role = ?", constants.ROLE_TUTOR).Count(&overview.Tutors).Error; err != nil {
		return nil, err
	}
	if err := r.db.Model(&model.Course{}).Count(&overview.Courses).Error; err != nil {
		return nil, err
	}
	if err := r.db.Model(&model.Order{}).Count(&overview.Orders).Error; err != nil {
		return nil, err
	}
	if err := r.db.Raw(`
        SELECT COALESCE(SUM(total_amount), 0)
        FROM orders
        WHERE status = ?
    `, constants.ORDER_COMPLETED).Scan(&overview.TotalRevenue).Error; err != nil {
		return nil, err
	}
	return &overview, nil
}
