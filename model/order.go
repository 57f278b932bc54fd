package model

import "time"

type PaymentMethod struct {
	DTO
	Name string `gorm:"uniqueIndex;not null" json:"name"` // VNPay, Momo
}

type Order struct {
	DTO
	PublicCode      string        `gorm:"uniqueIndex;size:20" json:"publicCode"` // Mã đơn hàng công khai (ORD-XXXXXX)
	AccountId       uint          `gorm:"not null" json:"accountId"`
	Account         Account       `gorm:"foreignKey:AccountId" json:"account,omitempty"`
	PaymentMethodId uint          `gorm:"not null" json:"paymentMethodId"`
	PaymentMethod   PaymentMethod `gorm:"foreignKey:PaymentMethodId" json:"paymentMethod,omitempty"`
	TotalAmount     float64       `gorm:"not null" json:"totalAmount"`
	Status          string        `gorm:"not null;default:PENDING" json:"status"` // PENDING, COMPLETED, CANCELLED
	PaidAt          *time.Time    `json:"paidAt,omitempty"`
	CancelledAt     *time.Time    `json:"cancelledAt,omitempty"`
	Details         []OrderDetail `gorm:"foreignKey:OrderId" json:"details,omitempty"`
}

type OrderDetail struct {
	DTO
	OrderId                 uint       `gorm:"not null;index" json:"orderId"`
	Order                   Order      `gorm:"foreignKey:OrderId" json:"-"`
	CourseId                uint       `gorm:"not null;index" json:"courseId"`
	Course                  Course     `gorm:"foreignKey:CourseId" json:"course,omitempty"`
	Quantity                int        `gorm:"not null;default:1" json:"quantity"`
	Price                   float64    `gorm:"not null" json:"price"` // giá chốt tại thời điểm mua
	IsFinishCourse          bool       `gorm:"not null;default:false" json:"isFinishCourse"`
	TimeFinishCourse        *time.Time `json:"timeFinishCourse,omitempty"`
	CertificateOfCompletion string     `json:"certificateOfCompletion,omitempty"`
}

type CreateOrderInput struct {
	CourseId uint `validate:"required,gt=0" json:"courseId"`
}

type CreateOrderResult struct {
	OrderId uint   `json:"orderId"`
	Url     string `json:"url"`
}

type PayOrderResult struct {
	OrderId uint `json:"orderId"`
}

// OrderView là response lồng nhau cho danh sách đơn hàng
type OrderView struct {
	OrderId       uint              `json:"orderId"`
	PublicCode    string            `json:"publicCode"`
	TotalAmount   float64           `json:"totalAmount"`
	Status        string            `json:"status"`
	PaymentMethod string            `json:"paymentMethod"`
	CreatedAt     time.Time         `json:"createdAt"`
	PaidAt        *time.Time        `json:"paidAt,omitempty"`
	Account       AccountSummary    `json:"account"`
	Details       []OrderDetailView `json:"details"`
}

type AccountSummary struct {
	AccountId uint   `json:"accountId"`
	FullName  string `json:"fullName"`
	Email     string `json:"email"`
}

type OrderDetailView struct {
	DetailId         uint       `json:"detailId"`
	CourseId         uint       `json:"courseId"`
	CourseName       string     `json:"courseName"`
	CourseImage      string     `json:"courseImage"`
	Quantity         int        `json:"quantity"`
	Price            float64    `json:"price"`
	IsFinishCourse   bool       `json:"isFinishCourse"`
	TimeFinishCourse *time.Time `json:"timeFinishCourse,omitempty"`
	Certificate      string     `json:"certificateOfCompletion,omitempty"`
}
