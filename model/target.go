package model

import "resto_manager/utils"

// RevenueTarget is a goal for one metric over one period. One row per
// (metric, period, period_start); months without a row fall back to
// constants.DefaultMonthlyTarget in the aggregator.
type RevenueTarget struct {
	DTO
	Metric      string           `gorm:"not null;default:revenue;uniqueIndex:idx_target_period" json:"metric"`
	Period      string           `gorm:"not null;default:monthly;uniqueIndex:idx_target_period" json:"period"`
	PeriodStart utils.CustomDate `gorm:"type:date;not null;uniqueIndex:idx_target_period" json:"periodStart"`
	TargetValue float64          `gorm:"not null" json:"targetValue"`
}

type RevenueTargets []RevenueTarget

type CreateTargetInput struct {
	Metric      string           `json:"metric" validate:"omitempty,oneof=revenue pax"`
	Period      string           `json:"period" validate:"omitempty,oneof=monthly weekly"`
	PeriodStart utils.CustomDate `json:"periodStart" validate:"required"`
	TargetValue float64          `json:"targetValue" validate:"required,gt=0"`
}

type UpdateTargetInput struct {
	TargetValue *float64 `json:"targetValue" validate:"omitempty,gt=0"`
}
