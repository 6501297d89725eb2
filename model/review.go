package model

import "resto_manager/utils"

// Review is an internal guest feedback entry, distinct from the Google rating
// snapshot carried on DailyMetric.
type Review struct {
	DTO
	Source     string           `gorm:"not null;default:internal" json:"source"`
	Author     string           `json:"author"`
	Rating     float64          `gorm:"not null" json:"rating"` // 1-5
	Comment    string           `gorm:"type:text" json:"comment"`
	ReviewDate utils.CustomDate `gorm:"type:date;index" json:"reviewDate"`
}

type Reviews []Review

type CreateReviewInput struct {
	Source     string           `json:"source" validate:"omitempty,oneof=internal google tripadvisor"`
	Author     string           `json:"author"`
	Rating     float64          `json:"rating" validate:"required,min=1,max=5"`
	Comment    string           `json:"comment"`
	ReviewDate utils.CustomDate `json:"reviewDate" validate:"required"`
}
