package model

import "resto_manager/utils"

// DailyMetric holds one synced row per calendar date. The sheet sync owns
// these rows; the dashboard aggregation only reads them.
type DailyMetric struct {
	DTO
	Date              utils.CustomDate `gorm:"type:date;uniqueIndex;not null" json:"date"`
	Revenue           int64            `gorm:"not null;default:0" json:"revenue"` // smallest currency unit
	Pax               int              `gorm:"not null;default:0" json:"pax"`
	AvgSpend          float64          `gorm:"not null;default:0" json:"avgSpend"`
	StaffOnDuty       *int             `json:"staffOnDuty"`
	GoogleRating      *float64         `json:"googleRating"`      // 0-5
	GoogleReviewCount *int             `json:"googleReviewCount"`
}

type DailyMetrics []DailyMetric

type FilterMetrics struct {
	Pagination
	From *utils.CustomDate `json:"from"`
	To   *utils.CustomDate `json:"to"`
}
