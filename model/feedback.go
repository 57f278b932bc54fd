package model

type Feedback struct {
	DTO
	CourseId  uint    `gorm:"not null;index" json:"courseId"`
	Course    Course  `gorm:"foreignKey:CourseId" json:"-"`
	AccountId uint    `gorm:"not null;index" json:"accountId"`
	Account   Account `gorm:"foreignKey:AccountId" json:"account,omitempty"`
	Rating    int     `gorm:"not null" validate:"required,min=1,max=5" json:"rating"`
	Comment   string  `json:"comment"`
}

type CreateFeedbackInput struct {
	CourseId uint   `validate:"required,gt=0" json:"courseId"`
	Rating   int    `validate:"required,min=1,max=5" json:"rating"`
	Comment  string `json:"comment"`
}
