package service

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"tutor_market/constants"
	"tutor_market/model"
	"tutor_market/payment"
	"tutor_market/repository"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// OrderService điều phối luồng đặt mua: tạo đơn + chi tiết đơn,
// sinh URL thanh toán VNPay và chuyển trạng thái đơn.
type OrderService struct {
	repo  repository.OrderRepository
	vnpay *payment.VNPay
}

func NewOrderService(repo repository.OrderRepository, vnpay *payment.VNPay) *OrderService {
	return &OrderService{repo: repo, vnpay: vnpay}
}

func newPublicCode() string {
	return "ORD-" + strings.ToUpper(uuid.NewString()[:8])
}

func (s *OrderService) CreateOrder(courseId, accountId uint, clientIp string) (*model.CreateOrderResult, error) {
	if courseId == 0 || accountId == 0 {
		return nil, ErrInvalidInput
	}

	course, err := s.repo.FindCourse(courseId)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrCourseNotFound
		}
		return nil, err
	}
	// khóa học ngừng mở bán coi như không tồn tại với người mua
	if !course.Active {
		return nil, ErrCourseNotFound
	}

	account, err := s.repo.FindAccount(accountId)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrAccountNotFound
		}
		return nil, err
	}

	method, err := s.repo.EnsurePaymentMethod(constants.PAYMENT_VNPAY)
	if err != nil {
		return nil, err
	}

	// số lượng cố định = 1, giá chốt tại thời điểm mua
	totalAmount := course.Price * 1

	order := &model.Order{
		PublicCode:      newPublicCode(),
		AccountId:       account.ID,
		PaymentMethodId: method.ID,
		TotalAmount:     totalAmount,
		Status:          constants.ORDER_PENDING,
	}
	detail := &model.OrderDetail{
		CourseId: course.ID,
		Quantity: 1,
		Price:    course.Price,
	}
	if err := s.repo.CreateOrderWithDetail(order, detail); err != nil {
		return nil, err
	}

	paymentUrl, err := s.vnpay.BuildPaymentUrl(model.PaymentRequest{
		Amount:    int64(totalAmount),
		OrderInfo: fmt.Sprintf("Thanh toan khoa hoc %s", course.Name),
		TxnRef:    order.PublicCode,
		IPAddr:    clientIp,
	})
	if err != nil {
		return nil, err
	}

	return &model.CreateOrderResult{OrderId: order.ID, Url: paymentUrl}, nil
}

// PayOrder chuyển đơn PENDING của chính chủ sang COMPLETED, đúng một lần.
// Đơn không tồn tại và đơn của người khác trả về cùng một lỗi.
func (s *OrderService) PayOrder(orderId, accountId uint) (*model.PayOrderResult, error) {
	if orderId == 0 || accountId == 0 {
		return nil, ErrInvalidInput
	}

	rows, err := s.repo.CompletePendingOrder(orderId, accountId, time.Now())
	if err != nil {
		return nil, err
	}
	if rows == 0 {
		if _, err := s.repo.FindOrderOwned(orderId, accountId); err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return nil, ErrOrderNotFound
			}
			return nil, err
		}
		// đơn tồn tại nhưng đã COMPLETED hoặc CANCELLED
		return nil, ErrOrderNotPayable
	}

	return &model.PayOrderResult{OrderId: orderId}, nil
}

// CompleteOrderByCode phục vụ callback/IPN từ cổng thanh toán.
func (s *OrderService) CompleteOrderByCode(publicCode string) (bool, error) {
	if publicCode == "" {
		return false, ErrInvalidInput
	}
	rows, err := s.repo.CompletePendingOrderByCode(publicCode, time.Now())
	if err != nil {
		return false, err
	}
	return rows > 0, nil
}

func (s *OrderService) ListOrders(accountId uint) ([]model.OrderView, error) {
	if accountId == 0 {
		return nil, ErrInvalidInput
	}

	orders, err := s.repo.ListOrdersByAccount(accountId)
	if err != nil {
		return nil, err
	}

	views := make([]model.OrderView, 0, len(orders))
	for _, order := range orders {
		details := make([]model.OrderDetailView, 0, len(order.Details))
		for _, detail := range order.Details {
			details = append(details, model.OrderDetailView{
				DetailId:         detail.ID,
				CourseId:         detail.CourseId,
				CourseName:       detail.Course.Name,
				CourseImage:      detail.Course.Image,
				Quantity:         detail.Quantity,
				Price:            detail.Price,
				IsFinishCourse:   detail.IsFinishCourse,
				TimeFinishCourse: detail.TimeFinishCourse,
				Certificate:      detail.CertificateOfCompletion,
			})
		}

		views = append(views, model.OrderView{
			OrderId:       order.ID,
			PublicCode:    order.PublicCode,
			TotalAmount:   order.TotalAmount,
			Status:        order.Status,
			PaymentMethod: order.PaymentMethod.Name,
			CreatedAt:     order.CreatedAt,
			PaidAt:        order.PaidAt,
			Account: model.AccountSummary{
				AccountId: order.Account.ID,
				FullName:  order.Account.FullName,
				Email:     order.Account.Email,
			},
			Details: details,
		})
	}
	return views, nil
}

// FinishCourse đánh dấu hoàn thành khóa học trong đơn đã thanh toán
// và cấp số chứng nhận.
func (s *OrderService) FinishCourse(detailId, accountId uint) (*model.OrderDetail, error) {
	if detailId == 0 || accountId == 0 {
		return nil, ErrInvalidInput
	}

	detail, err := s.repo.FindDetailOwned(detailId, accountId)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrDetailNotFound
		}
		return nil, err
	}
	if detail.Order.Status != constants.ORDER_COMPLETED {
		return nil, ErrOrderNotCompleted
	}
	if detail.IsFinishCourse {
		return nil, ErrDetailAlreadyFinished
	}

	now := time.Now()
	detail.IsFinishCourse = true
	detail.TimeFinishCourse = &now
	detail.CertificateOfCompletion = "/certificates/" + uuid.NewString()

	if err := s.repo.SaveDetail(detail); err != nil {
		return nil, err
	}
	return detail, nil
}
