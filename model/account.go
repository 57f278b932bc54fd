package model

import "time"

type Account struct {
	DTO
	FullName     string     `gorm:"uniqueIndex;not null" validate:"required,min=3,max=100" json:"fullName"`
	Email        string     `gorm:"uniqueIndex;not null" validate:"required,email" json:"email"`
	Phone        string     `gorm:"uniqueIndex;not null" validate:"required,min=9,max=12" json:"phone"`
	Password     string     `gorm:"not null" json:"-"`
	Balance      float64    `gorm:"not null;default:0" json:"balance"`
	Role         string     `gorm:"not null;default:USER" json:"role"` // ADMIN, TUTOR, USER
	Active       bool       `gorm:"not null;default:false" json:"active"`
	OtpCode      string     `json:"-"`
	OtpExpiredAt *time.Time `json:"-"`
	AccessToken  string     `json:"accessToken,omitempty"`
	RefreshToken string     `json:"refreshToken,omitempty"`
}

type Accounts []Account

type RegisterAccountInput struct {
	FullName string `validate:"required,min=3,max=100" json:"fullName"`
	Email    string `validate:"required,email" json:"email"`
	Phone    string `validate:"required,min=9,max=12" json:"phone"`
	Password string `validate:"required,min=6,max=50" json:"password"`
}

type VerifyOtpInput struct {
	Email   string `validate:"required,email" json:"email"`
	OtpCode string `validate:"required,len=6" json:"otpCode"`
}

type UpdateAccountInput struct {
	FullName *string `json:"fullName,omitempty"`
	Phone    *string `json:"phone,omitempty"`
	Active   *bool   `json:"active,omitempty"`
	Role     *string `json:"role,omitempty"` // thay đổi quyền (rất cẩn thận)
}

type FilterAccount struct {
	Pagination
	SearchKey string  `json:"searchKey"`
	Active    *bool   `json:"active"`
	Role      *string `json:"role"`
}
