package model

import "resto_manager/utils"

// Shift is one scheduled staff slot. Today's shifts feed the staffing block of
// the dashboard summary.
type Shift struct {
	DTO
	Date      utils.CustomDate `gorm:"type:date;index;not null" json:"date"`
	StaffName string           `gorm:"not null" json:"staffName"`
	Role      string           `gorm:"not null" json:"role"` // kitchen, service, bar, host
	StartTime string           `gorm:"size:5" json:"startTime"` // HH:MM
	EndTime   string           `gorm:"size:5" json:"endTime"`
	Status    string           `gorm:"not null;default:scheduled" json:"status"`
	// CountsAsActive overrides the in_progress status check, for staff who are
	// on the floor without having clocked in through the app.
	CountsAsActive *bool `json:"countsAsActive"`
}

type Shifts []Shift

type CreateShiftInput struct {
	Date      utils.CustomDate `json:"date" validate:"required"`
	StaffName string           `json:"staffName" validate:"required"`
	Role      string           `json:"role" validate:"required"`
	StartTime string           `json:"startTime" validate:"required,len=5"`
	EndTime   string           `json:"endTime" validate:"required,len=5"`
}

type UpdateShiftStatusInput struct {
	Status string `json:"status" validate:"required,oneof=scheduled in_progress completed cancelled"`
}

type FilterShift struct {
	Pagination
	Date   *utils.CustomDate `json:"date"`
	Role   *string           `json:"role"`
	Status *string           `json:"status"`
}
