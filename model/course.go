package model

type Course struct {
	DTO
	Name        string  `gorm:"not null" validate:"required,min=3,max=200" json:"name"`
	Slug        string  `gorm:"uniqueIndex;size:220" json:"slug"`
	Description string  `json:"description"`
	Image       string  `json:"image"`
	Price       float64 `gorm:"not null;check:price >= 0" validate:"gte=0" json:"price"`
	CreatorId   uint    `gorm:"not null" json:"creatorId"`
	Creator     Account `gorm:"foreignKey:CreatorId" json:"creator,omitempty"`
	Active      bool    `gorm:"not null;default:true" json:"active"`
}

type Courses []Course

type CreateCourseInput struct {
	Name        string  `validate:"required,min=3,max=200" json:"name"`
	Description string  `json:"description"`
	Image       string  `json:"image"`
	Price       float64 `validate:"gte=0" json:"price"`
}

type UpdateCourseInput struct {
	Name        *string  `json:"name,omitempty"`
	Description *string  `json:"description,omitempty"`
	Image       *string  `json:"image,omitempty"`
	Price       *float64 `json:"price,omitempty"`
	Active      *bool    `json:"active,omitempty"`
}

type FilterCourse struct {
	Pagination
	SearchKey string `json:"searchKey"`
	Active    *bool  `json:"active"`
	CreatorId *uint  `json:"creatorId"`
}
