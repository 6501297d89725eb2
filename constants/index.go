package constants

import "time"

// User-facing message keys. The frontend maps these to localized strings.
const (
	MISSING_LOGIN_INPUT     = "MISSING_LOGIN_INPUT"
	INVALID_USERNAME        = "INVALID_USERNAME"
	INVALID_PASSWORD        = "INVALID_PASSWORD"
	ACCOUNT_NOT_ACTIVE      = "ACCOUNT_NOT_ACTIVE"
	NOT_MANAGER             = "NOT_MANAGER"
	SESSION_EXPIRED         = "SESSION_EXPIRED"
	ERROR_INTERNAL_ERROR    = "INTERNAL_ERROR"
	DATA_INPUT_INVALID      = "DATA_INPUT_INVALID"
	SHEET_ID_REQUIRED       = "sheetId is required"
	SHEETS_KEY_NOT_SET      = "GOOGLE_SHEETS_API_KEY is not configured"
	SUMMARY_TIMEOUT         = "SUMMARY_TIMEOUT"
	NO_CATEGORIES_MATCHED   = "sheet structure found but no category labels matched; check row labels in columns A-B"
	NO_SHEET_STRUCTURE      = "no month columns detected; check the sheet name and header row"
	TARGET_ALREADY_EXISTS   = "TARGET_ALREADY_EXISTS"
	RECORD_NOT_FOUND        = "RECORD_NOT_FOUND"
)

// Account roles.
const (
	ROLE_ADMIN   = "ADMIN"
	ROLE_MANAGER = "MANAGER"
	ROLE_STAFF   = "STAFF"
)

// Sync log statuses.
const (
	SyncStatusRunning   = "running"
	SyncStatusCompleted = "completed"
	SyncStatusPartial   = "partial"
	SyncStatusFailed    = "failed"
)

// Shift statuses.
const (
	ShiftScheduled  = "scheduled"
	ShiftInProgress = "in_progress"
	ShiftCompleted  = "completed"
	ShiftCancelled  = "cancelled"
)

// Dashboard defaults. These feed displayed percentages directly, so every
// fallback is named here rather than inlined.
const (
	DefaultMonthlyTarget    = 750_000_000
	StretchGoalMultiplier   = 1.5
	StaleSyncThresholdHours = 24
	NeverSyncedHoursAgo     = -1
	WeeklySeriesDays        = 7
	YearLookbackDays        = 364
	MaxIngestErrorSamples   = 10
	MaxDateParseSamples     = 5
	ComplianceDueSoonDays   = 14
	ReviewWindowDays        = 30
)

const (
	SummaryCacheTTL     = 3 * time.Minute
	SummaryCacheControl = "public, max-age=180, stale-while-revalidate=60"
	SummaryTimeout      = 10 * time.Second
)
