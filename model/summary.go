package model

import "time"

// Derived dashboard payloads. Recomputed on every request, never persisted.

type RevenueVelocity struct {
	MonthlyTarget          float64 `json:"monthlyTarget"`
	MtdRevenue             float64 `json:"mtdRevenue"`
	DaysWithData           int     `json:"daysWithData"`
	DaysInMonth            int     `json:"daysInMonth"`
	RemainingDays          int     `json:"remainingDays"`
	AvgDailyRevenue        float64 `json:"avgDailyRevenue"`
	GoalAchievedPercent    float64 `json:"goalAchievedPercent"`
	Surplus                float64 `json:"surplus"`
	ProjectedMonthEnd      float64 `json:"projectedMonthEnd"`
	DailyTargetPace        float64 `json:"dailyTargetPace"`
	ShowStretchGoal        bool    `json:"showStretchGoal"`
	StretchGoal            float64 `json:"stretchGoal"`
	GapToStretch           float64 `json:"gapToStretch"`
	RequiredPaceForStretch float64 `json:"requiredPaceForStretch"`
}

type KPITrend struct {
	Current       float64 `json:"current"`
	Previous      float64 `json:"previous"`
	ChangePercent float64 `json:"changePercent"`
}

type KPISummary struct {
	Revenue   KPITrend `json:"revenue"`
	Pax       KPITrend `json:"pax"`
	AvgSpend  KPITrend `json:"avgSpend"`
	WindowEnd string   `json:"windowEnd"` // latest date with data, YYYY-MM-DD
}

type WeeklySalesPoint struct {
	Date            string  `json:"date"`  // YYYY-MM-DD
	Label           string  `json:"label"` // Mon, Tue, ...
	Revenue         float64 `json:"revenue"`         // millions
	LastYearRevenue float64 `json:"lastYearRevenue"` // millions, same weekday last year
}

type MonthlyPerformanceItem struct {
	Month              int     `json:"month"`
	Label              string  `json:"label"`
	Actual             float64 `json:"actual"`
	Target             float64 `json:"target"`
	AchievementPercent int     `json:"achievementPercent"`
}

type CoverageGap struct {
	Role      string `json:"role"`
	Scheduled int    `json:"scheduled"`
	Active    int    `json:"active"`
	Missing   int    `json:"missing"`
}

type StaffingSummary struct {
	ActiveStaff        int           `json:"activeStaff"`
	TotalRequired      int           `json:"totalRequired"`
	CoveragePercentage int           `json:"coveragePercentage"`
	GuestStaffRatio    float64       `json:"guestStaffRatio"`
	CoverageGaps       []CoverageGap `json:"coverageGaps"`
}

type SyncStatus struct {
	LastSyncAt       *time.Time `json:"lastSyncAt"`
	HoursAgo         int        `json:"hoursAgo"` // -1 when never synced
	IsStale          bool       `json:"isStale"`
	Status           string     `json:"status"`
	RecordsProcessed int        `json:"recordsProcessed"`
}

type ReviewsSummary struct {
	AverageRating float64 `json:"averageRating"`
	Count         int     `json:"count"`
	WindowDays    int     `json:"windowDays"`
}

type GoogleReviewsSummary struct {
	Rating      float64 `json:"rating"`
	ReviewCount int     `json:"reviewCount"`
	AsOf        string  `json:"asOf"` // date of the metric row the snapshot came from
}

type ComplianceSummary struct {
	Total        int             `json:"total"`
	Ok           int             `json:"ok"`
	ActionNeeded int             `json:"actionNeeded"`
	Overdue      int             `json:"overdue"`
	DueSoon      ComplianceItems `json:"dueSoon"`
}

type DashboardSummary struct {
	RevenueVelocity    RevenueVelocity          `json:"revenueVelocity"`
	KpiSummary         KPISummary               `json:"kpiSummary"`
	WeeklySales        []WeeklySalesPoint       `json:"weeklySales"`
	Reviews            ReviewsSummary           `json:"reviews"`
	GoogleReviews      GoogleReviewsSummary     `json:"googleReviews"`
	Staffing           StaffingSummary          `json:"staffing"`
	Compliance         ComplianceSummary        `json:"compliance"`
	MonthlyPerformance []MonthlyPerformanceItem `json:"monthlyPerformance"`
	SyncStatus         SyncStatus               `json:"syncStatus"`
}
