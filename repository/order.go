package repository

import (
	"time"

	"tutor_market/constants"
	"tutor_market/model"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// OrderRepository gom toàn bộ truy vấn phục vụ luồng đặt mua khóa học.
type OrderRepository interface {
	FindCourse(courseId uint) (*model.Course, error)
	FindAccount(accountId uint) (*model.Account, error)
	EnsurePaymentMethod(name string) (*model.PaymentMethod, error)
	CreateOrderWithDetail(order *model.Order, detail *model.OrderDetail) error
	CompletePendingOrder(orderId, accountId uint, paidAt time.Time) (int64, error)
	CompletePendingOrderByCode(publicCode string, paidAt time.Time) (int64, error)
	FindOrderOwned(orderId, accountId uint) (*model.Order, error)
	ListOrdersByAccount(accountId uint) ([]model.Order, error)
	FindDetailOwned(detailId, accountId uint) (*model.OrderDetail, error)
	SaveDetail(detail *model.OrderDetail) error
	CancelStalePendingOrders(before time.Time) (int64, error)
}

type gormOrderRepository struct {
	db *gorm.DB
}

func NewOrderRepository(db *gorm.DB) OrderRepository {
	return &gormOrderRepository{db: db}
}

func (r *gormOrderRepository) FindCourse(courseId uint) (*model.Course, error) {
	var course model.Course
	if err := r.db.First(&course, courseId).Error; err != nil {
		return nil, err
	}
	return &course, nil
}

func (r *gormOrderRepository) FindAccount(accountId uint) (*model.Account, error) {
	var account model.Account
	if err := r.db.First(&account, accountId).Error; err != nil {
		return nil, err
	}
	return &account, nil
}

// EnsurePaymentMethod upsert theo unique name nên không tạo bản ghi trùng
// khi hai đơn đầu tiên chạy đồng thời.
func (r *gormOrderRepository) EnsurePaymentMethod(name string) (*model.PaymentMethod, error) {
	method := model.PaymentMethod{Name: name}
	if err := r.db.Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "name"}},
		DoNothing: true,
	}).Create(&method).Error; err != nil {
		return nil, err
	}

	// DO NOTHING không trả về id khi bản ghi đã tồn tại
	if method.ID == 0 {
		if err := r.db.Where("name = ?", name).First(&method).Error; err != nil {
			return nil, err
		}
	}
	return &method, nil
}

func (r *gormOrderRepository) CreateOrderWithDetail(order *model.Order, detail *model.OrderDetail) error {
	return r.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Create(order).Error; err != nil {
			return err
		}
		detail.OrderId = order.ID
		return tx.Create(detail).Error
	})
}

// CompletePendingOrder chuyển PENDING → COMPLETED bằng một UPDATE có điều kiện:
// hai yêu cầu thanh toán đồng thời thì chỉ một yêu cầu có RowsAffected = 1.
func (r *gormOrderRepository) CompletePendingOrder(orderId, accountId uint, paidAt time.Time) (int64, error) {
	result := r.db.Model(&model.Order{}).
		Where("id = ? AND account_id = ? AND status = ?", orderId, accountId, constants.ORDER_PENDING).
		Updates(map[string]interface{}{
			"status":  constants.ORDER_COMPLETED,
			"paid_at": paidAt,
		})
	return result.RowsAffected, result.Error
}

func (r *gormOrderRepository) CompletePendingOrderByCode(publicCode string, paidAt time.Time) (int64, error) {
	result := r.db.Model(&model.Order{}).
		Where("public_code = ? AND status = ?", publicCode, constants.ORDER_PENDING).
		Updates(map[string]interface{}{
			"status":  constants.ORDER_COMPLETED,
			"paid_at": paidAt,
		})
	return result.RowsAffected, result.Error
}

func (r *gormOrderRepository) FindOrderOwned(orderId, accountId uint) (*model.Order, error) {
	var order model.Order
	if err := r.db.
		Where("id = ? AND account_id = ?", orderId, accountId).
		First(&order).Error; err != nil {
		return nil, err
	}
	return &order, nil
}

func (r *gormOrderRepository) ListOrdersByAccount(accountId uint) ([]model.Order, error) {
	var orders []model.Order
	if err := r.db.
		Preload("Account").
		Preload("PaymentMethod").
		Preload("Details").
		Preload("Details.Course").
		Where("account_id = ?", accountId).
		Order("created_at desc").
		Find(&orders).Error; err != nil {
		return nil, err
	}
	return orders, nil
}

func (r *gormOrderRepository) FindDetailOwned(detailId, accountId uint) (*model.OrderDetail, error) {
	var detail model.OrderDetail
	if err := r.db.
		Preload("Order").
		Preload("Course").
		Joins("JOIN orders ON orders.id = order_details.order_id").
		Where("order_details.id = ? AND orders.account_id = ?", detailId, accountId).
		First(&detail).Error; err != nil {
		return nil, err
	}
	return &detail, nil
}

func (r *gormOrderRepository) SaveDetail(detail *model.OrderDetail) error {
	return r.db.Save(detail).Error
}

func (r *gormOrderRepository) CancelStalePendingOrders(before time.Time) (int64, error) {
	result := r.db.Model(&model.Order{}).
		Where("status = ? AND created_at < ?", constants.ORDER_PENDING, before).
		Updates(map[string]interface{}{
			"status":       constants.ORDER_CANCELLED,
			"cancelled_at": time.Now(),
		})
	return result.RowsAffected, result.Error
}
