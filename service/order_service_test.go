package service

import (
	"errors"
	"strings"
	"testing"
	"time"

	"tutor_market/constants"
	"tutor_market/model"
	"tutor_market/payment"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"gorm.io/gorm"
)

// MockOrderRepository is a mock of repository.OrderRepository
type MockOrderRepository struct {
	mock.Mock
}

func (m *MockOrderRepository) FindCourse(courseId uint) (*model.Course, error) {
	args := m.Called(courseId)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.Course), args.Error(1)
}

func (m *MockOrderRepository) FindAccount(accountId uint) (*model.Account, error) {
	args := m.Called(accountId)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.Account), args.Error(1)
}

func (m *MockOrderRepository) EnsurePaymentMethod(name string) (*model.PaymentMethod, error) {
	args := m.Called(name)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.PaymentMethod), args.Error(1)
}

func (m *MockOrderRepository) CreateOrderWithDetail(order *model.Order, detail *model.OrderDetail) error {
	args := m.Called(order, detail)
	return args.Error(0)
}

func (m *MockOrderRepository) CompletePendingOrder(orderId, accountId uint, paidAt time.Time) (int64, error) {
	args := m.Called(orderId, accountId, paidAt)
	return args.Get(0).(int64), args.Error(1)
}

func (m *MockOrderRepository) CompletePendingOrderByCode(publicCode string, paidAt time.Time) (int64, error) {
	args := m.Called(publicCode, paidAt)
	return args.Get(0).(int64), args.Error(1)
}

func (m *MockOrderRepository) FindOrderOwned(orderId, accountId uint) (*model.Order, error) {
	args := m.Called(orderId, accountId)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.Order), args.Error(1)
}

func (m *MockOrderRepository) ListOrdersByAccount(accountId uint) ([]model.Order, error) {
	args := m.Called(accountId)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]model.Order), args.Error(1)
}

func (m *MockOrderRepository) FindDetailOwned(detailId, accountId uint) (*model.OrderDetail, error) {
	args := m.Called(detailId, accountId)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.OrderDetail), args.Error(1)
}

func (m *MockOrderRepository) SaveDetail(detail *model.OrderDetail) error {
	args := m.Called(detail)
	return args.Error(0)
}

func (m *MockOrderRepository) CancelStalePendingOrders(before time.Time) (int64, error) {
	args := m.Called(before)
	return args.Get(0).(int64), args.Error(1)
}

func testVNPay() *payment.VNPay {
	return &payment.VNPay{
		Config: model.VNPayConfig{
			TmnCode:    "TESTCODE",
			HashSecret: "supersecret",
			BaseURL:    "https://sandbox.vnpayment.vn/paymentv2/vpcpay.html",
			ReturnURL:  "http://localhost:8002/vnpay/return",
		},
	}
}

func testCourse(id uint, price float64, active bool) *model.Course {
	course := &model.Course{
		Name:      "Luyện thi đại số",
		Price:     price,
		CreatorId: 7,
		Active:    active,
	}
	course.ID = id
	return course
}

func testAccount(id uint) *model.Account {
	account := &model.Account{
		FullName: "Nguyễn Văn A",
		Email:    "a@example.com",
		Role:     constants.ROLE_USER,
		Active:   true,
	}
	account.ID = id
	return account
}

func TestCreateOrder(t *testing.T) {
	t.Run("Creates pending order with snapshot price and signed url", func(t *testing.T) {
		mockRepo := new(MockOrderRepository)
		svc := NewOrderService(mockRepo, testVNPay())

		method := &model.PaymentMethod{Name: constants.PAYMENT_VNPAY}
		method.ID = 1

		mockRepo.On("FindCourse", uint(10)).Return(testCourse(10, 150000, true), nil)
		mockRepo.On("FindAccount", uint(5)).Return(testAccount(5), nil)
		mockRepo.On("EnsurePaymentMethod", constants.PAYMENT_VNPAY).Return(method, nil)
		mockRepo.On("CreateOrderWithDetail",
			mock.AnythingOfType("*model.Order"),
			mock.AnythingOfType("*model.OrderDetail"),
		).Run(func(args mock.Arguments) {
			order := args.Get(0).(*model.Order)
			detail := args.Get(1).(*model.OrderDetail)
			order.ID = 42

			assert.Equal(t, constants.ORDER_PENDING, order.Status)
			assert.Equal(t, uint(5), order.AccountId)
			assert.Equal(t, float64(150000), order.TotalAmount)
			assert.True(t, strings.HasPrefix(order.PublicCode, "ORD-"))

			assert.Equal(t, uint(10), detail.CourseId)
			assert.Equal(t, 1, detail.Quantity)
			assert.Equal(t, float64(150000), detail.Price)
			assert.False(t, detail.IsFinishCourse)
		}).Return(nil)

		result, err := svc.CreateOrder(10, 5, "203.0.113.9")

		assert.NoError(t, err)
		assert.Equal(t, uint(42), result.OrderId)
		assert.Contains(t, result.Url, "vnp_SecureHash=")
		assert.True(t, strings.HasPrefix(result.Url, "https://sandbox.vnpayment.vn/paymentv2/vpcpay.html?"))
		mockRepo.AssertExpectations(t)
	})

	t.Run("Missing course creates nothing", func(t *testing.T) {
		mockRepo := new(MockOrderRepository)
		svc := NewOrderService(mockRepo, testVNPay())

		mockRepo.On("FindCourse", uint(99)).Return(nil, gorm.ErrRecordNotFound)

		result, err := svc.CreateOrder(99, 5, "203.0.113.9")

		assert.Nil(t, result)
		assert.ErrorIs(t, err, ErrCourseNotFound)
		mockRepo.AssertNotCalled(t, "CreateOrderWithDetail", mock.Anything, mock.Anything)
	})

	t.Run("Inactive course creates nothing", func(t *testing.T) {
		mockRepo := new(MockOrderRepository)
		svc := NewOrderService(mockRepo, testVNPay())

		mockRepo.On("FindCourse", uint(10)).Return(testCourse(10, 150000, false), nil)

		result, err := svc.CreateOrder(10, 5, "203.0.113.9")

		assert.Nil(t, result)
		assert.ErrorIs(t, err, ErrCourseNotFound)
		mockRepo.AssertNotCalled(t, "CreateOrderWithDetail", mock.Anything, mock.Anything)
	})

	t.Run("Missing account creates nothing", func(t *testing.T) {
		mockRepo := new(MockOrderRepository)
		svc := NewOrderService(mockRepo, testVNPay())

		mockRepo.On("FindCourse", uint(10)).Return(testCourse(10, 150000, true), nil)
		mockRepo.On("FindAccount", uint(5)).Return(nil, gorm.ErrRecordNotFound)

		result, err := svc.CreateOrder(10, 5, "203.0.113.9")

		assert.Nil(t, result)
		assert.ErrorIs(t, err, ErrAccountNotFound)
		mockRepo.AssertNotCalled(t, "CreateOrderWithDetail", mock.Anything, mock.Anything)
	})

	t.Run("Failed order write surfaces the error", func(t *testing.T) {
		mockRepo := new(MockOrderRepository)
		svc := NewOrderService(mockRepo, testVNPay())

		method := &model.PaymentMethod{Name: constants.PAYMENT_VNPAY}
		method.ID = 1

		mockRepo.On("FindCourse", uint(10)).Return(testCourse(10, 150000, true), nil)
		mockRepo.On("FindAccount", uint(5)).Return(testAccount(5), nil)
		mockRepo.On("EnsurePaymentMethod", constants.PAYMENT_VNPAY).Return(method, nil)
		mockRepo.On("CreateOrderWithDetail",
			mock.AnythingOfType("*model.Order"),
			mock.AnythingOfType("*model.OrderDetail"),
		).Return(errors.New("insert failed"))

		result, err := svc.CreateOrder(10, 5, "203.0.113.9")

		assert.Nil(t, result)
		assert.EqualError(t, err, "insert failed")
	})

	t.Run("Missing ids are rejected before any lookup", func(t *testing.T) {
		mockRepo := new(MockOrderRepository)
		svc := NewOrderService(mockRepo, testVNPay())

		_, err := svc.CreateOrder(0, 5, "203.0.113.9")
		assert.ErrorIs(t, err, ErrInvalidInput)

		_, err = svc.CreateOrder(10, 0, "203.0.113.9")
		assert.ErrorIs(t, err, ErrInvalidInput)

		mockRepo.AssertNotCalled(t, "FindCourse", mock.Anything)
	})
}

func TestPayOrder(t *testing.T) {
	t.Run("First confirmation completes, second is rejected", func(t *testing.T) {
		mockRepo := new(MockOrderRepository)
		svc := NewOrderService(mockRepo, testVNPay())

		mockRepo.On("CompletePendingOrder", uint(42), uint(5), mock.AnythingOfType("time.Time")).
			Return(int64(1), nil).Once()
		mockRepo.On("CompletePendingOrder", uint(42), uint(5), mock.AnythingOfType("time.Time")).
			Return(int64(0), nil).Once()

		completed := &model.Order{Status: constants.ORDER_COMPLETED, AccountId: 5}
		completed.ID = 42
		mockRepo.On("FindOrderOwned", uint(42), uint(5)).Return(completed, nil)

		result, err := svc.PayOrder(42, 5)
		assert.NoError(t, err)
		assert.Equal(t, uint(42), result.OrderId)

		result, err = svc.PayOrder(42, 5)
		assert.Nil(t, result)
		assert.ErrorIs(t, err, ErrOrderNotPayable)
		mockRepo.AssertExpectations(t)
	})

	t.Run("Order of another account looks missing", func(t *testing.T) {
		mockRepo := new(MockOrderRepository)
		svc := NewOrderService(mockRepo, testVNPay())

		mockRepo.On("CompletePendingOrder", uint(42), uint(6), mock.AnythingOfType("time.Time")).
			Return(int64(0), nil)
		mockRepo.On("FindOrderOwned", uint(42), uint(6)).Return(nil, gorm.ErrRecordNotFound)

		result, err := svc.PayOrder(42, 6)

		assert.Nil(t, result)
		assert.ErrorIs(t, err, ErrOrderNotFound)
	})

	t.Run("Cancelled order is terminal", func(t *testing.T) {
		mockRepo := new(MockOrderRepository)
		svc := NewOrderService(mockRepo, testVNPay())

		mockRepo.On("CompletePendingOrder", uint(42), uint(5), mock.AnythingOfType("time.Time")).
			Return(int64(0), nil)
		cancelled := &model.Order{Status: constants.ORDER_CANCELLED, AccountId: 5}
		cancelled.ID = 42
		mockRepo.On("FindOrderOwned", uint(42), uint(5)).Return(cancelled, nil)

		_, err := svc.PayOrder(42, 5)
		assert.ErrorIs(t, err, ErrOrderNotPayable)
	})
}

func TestListOrders(t *testing.T) {
	mockRepo := new(MockOrderRepository)
	svc := NewOrderService(mockRepo, testVNPay())

	course := testCourse(10, 150000, true)
	account := testAccount(5)

	order := model.Order{
		PublicCode:    "ORD-ABC12345",
		AccountId:     5,
		Account:       *account,
		PaymentMethod: model.PaymentMethod{Name: constants.PAYMENT_VNPAY},
		TotalAmount:   150000,
		Status:        constants.ORDER_COMPLETED,
		Details: []model.OrderDetail{
			{CourseId: 10, Course: *course, Quantity: 1, Price: 150000},
		},
	}
	order.ID = 42
	mockRepo.On("ListOrdersByAccount", uint(5)).Return([]model.Order{order}, nil)

	views, err := svc.ListOrders(5)

	assert.NoError(t, err)
	assert.Len(t, views, 1)
	assert.Equal(t, uint(42), views[0].OrderId)
	assert.Equal(t, constants.PAYMENT_VNPAY, views[0].PaymentMethod)
	assert.Equal(t, "Nguyễn Văn A", views[0].Account.FullName)
	assert.Len(t, views[0].Details, 1)
	assert.Equal(t, "Luyện thi đại số", views[0].Details[0].CourseName)
	assert.Equal(t, float64(150000), views[0].Details[0].Price)
}

func TestFinishCourse(t *testing.T) {
	newDetail := func(orderStatus string, finished bool) *model.OrderDetail {
		detail := &model.OrderDetail{
			OrderId:        42,
			Order:          model.Order{Status: orderStatus, AccountId: 5},
			CourseId:       10,
			Quantity:       1,
			Price:          150000,
			IsFinishCourse: finished,
		}
		detail.ID = 77
		return detail
	}

	t.Run("Stamps finish time and certificate", func(t *testing.T) {
		mockRepo := new(MockOrderRepository)
		svc := NewOrderService(mockRepo, testVNPay())

		mockRepo.On("FindDetailOwned", uint(77), uint(5)).Return(newDetail(constants.ORDER_COMPLETED, false), nil)
		mockRepo.On("SaveDetail", mock.AnythingOfType("*model.OrderDetail")).Return(nil)

		detail, err := svc.FinishCourse(77, 5)

		assert.NoError(t, err)
		assert.True(t, detail.IsFinishCourse)
		assert.NotNil(t, detail.TimeFinishCourse)
		assert.True(t, strings.HasPrefix(detail.CertificateOfCompletion, "/certificates/"))
		mockRepo.AssertExpectations(t)
	})

	t.Run("Unpaid order cannot be finished", func(t *testing.T) {
		mockRepo := new(MockOrderRepository)
		svc := NewOrderService(mockRepo, testVNPay())

		mockRepo.On("FindDetailOwned", uint(77), uint(5)).Return(newDetail(constants.ORDER_PENDING, false), nil)

		_, err := svc.FinishCourse(77, 5)

		assert.ErrorIs(t, err, ErrOrderNotCompleted)
		mockRepo.AssertNotCalled(t, "SaveDetail", mock.Anything)
	})

	t.Run("Already finished is rejected", func(t *testing.T) {
		mockRepo := new(MockOrderRepository)
		svc := NewOrderService(mockRepo, testVNPay())

		mockRepo.On("FindDetailOwned", uint(77), uint(5)).Return(newDetail(constants.ORDER_COMPLETED, true), nil)

		_, err := svc.FinishCourse(77, 5)

		assert.ErrorIs(t, err, ErrDetailAlreadyFinished)
		mockRepo.AssertNotCalled(t, "SaveDetail", mock.Anything)
	})
}
