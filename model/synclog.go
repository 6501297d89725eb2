package model

import "time"

// SyncLog is the audit record of one ingestion run. Rows reach a terminal
// status (completed/partial/failed) and are never mutated afterwards.
type SyncLog struct {
	DTO
	RunId            string     `gorm:"size:36;index" json:"runId"`
	SyncType         string     `gorm:"not null" json:"syncType"` // daily_metrics | pnl
	Status           string     `gorm:"not null" json:"status"`
	StartedAt        time.Time  `gorm:"not null" json:"startedAt"`
	CompletedAt      *time.Time `json:"completedAt"`
	RecordsProcessed int        `json:"recordsProcessed"`
	RecordsSkipped   int        `json:"recordsSkipped"`
	ErrorMessage     string     `gorm:"type:text" json:"errorMessage"`
}

type SyncLogs []SyncLog

type SyncInput struct {
	SheetId   string `json:"sheetId" validate:"required"`
	SheetName string `json:"sheetName"`
	Variant   string `json:"variant" validate:"omitempty,oneof=layout2025 layout2026"`
}

type SyncResult struct {
	Success   bool     `json:"success"`
	Processed int      `json:"processed"`
	Skipped   int      `json:"skipped"`
	TotalRows int      `json:"totalRows"`
	Errors    []string `json:"errors,omitempty"`
}
