package model

import "resto_manager/utils"

// ComplianceItem tracks a permit, certificate or recurring inspection.
type ComplianceItem struct {
	DTO
	Name     string            `gorm:"not null" json:"name"`
	Category string            `json:"category"` // hygiene, safety, licensing
	Status   string            `gorm:"not null;default:ok" json:"status"` // ok, action_needed, overdue
	DueDate  *utils.CustomDate `gorm:"type:date" json:"dueDate"`
	Notes    string            `gorm:"type:text" json:"notes"`
}

type ComplianceItems []ComplianceItem

type CreateComplianceInput struct {
	Name     string            `json:"name" validate:"required"`
	Category string            `json:"category"`
	Status   string            `json:"status" validate:"omitempty,oneof=ok action_needed overdue"`
	DueDate  *utils.CustomDate `json:"dueDate"`
	Notes    string            `json:"notes"`
}

type UpdateComplianceInput struct {
	Status  *string           `json:"status" validate:"omitempty,oneof=ok action_needed overdue"`
	DueDate *utils.CustomDate `json:"dueDate"`
	Notes   *string           `json:"notes"`
}
