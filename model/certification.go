package model

type Certification struct {
	DTO
	AccountId uint    `gorm:"not null;index" json:"accountId"`
	Account   Account `gorm:"foreignKey:AccountId" json:"account,omitempty"`
	Name      string  `gorm:"not null" validate:"required,min=3,max=200" json:"name"`
	Image     string  `gorm:"not null" validate:"required" json:"image"`
	Status    string  `gorm:"not null;default:PENDING" json:"status"` // PENDING, APPROVED, REJECTED
	Note      string  `json:"note"`
}

type CreateCertificationInput struct {
	Name  string `validate:"required,min=3,max=200" json:"name"`
	Image string `validate:"required" json:"image"`
}

type ReviewCertificationInput struct {
	Approve bool   `json:"approve"`
	Note    string `json:"note"`
}
