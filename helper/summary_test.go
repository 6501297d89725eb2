package helper

import (
	"testing"
	"time"

	"resto_manager/constants"
	"resto_manager/model"
	"resto_manager/utils"
)

func metricOn(date string, revenue int64, pax int, avgSpend float64) model.DailyMetric {
	t, _ := time.Parse("2006-01-02", date)
	return model.DailyMetric{
		Date:     utils.NewCustomDate(t),
		Revenue:  revenue,
		Pax:      pax,
		AvgSpend: avgSpend,
	}
}

func TestComputeRevenueVelocityBelowTarget(t *testing.T) {
	now := time.Date(2026, 3, 20, 12, 0, 0, 0, time.UTC)
	rows := []model.DailyMetric{
		metricOn("2026-03-01", 150_000_000, 1800, 83000),
		metricOn("2026-03-02", 130_000_000, 1600, 81000),
		metricOn("2026-03-03", 120_000_000, 1500, 80000),
		metricOn("2026-03-04", 0, 0, 0),
	}

	v := ComputeRevenueVelocity(rows, 750_000_000, now)

	if v.MtdRevenue != 400_000_000 {
		t.Errorf("mtdRevenue = %v, want 400000000", v.MtdRevenue)
	}
	if v.GoalAchievedPercent != 53.3 {
		t.Errorf("goalAchievedPercent = %v, want 53.3", v.GoalAchievedPercent)
	}
	if v.Surplus != -350_000_000 {
		t.Errorf("surplus = %v, want -350000000", v.Surplus)
	}
	if v.DaysWithData != 3 {
		t.Errorf("daysWithData = %d, want 3", v.DaysWithData)
	}
	if v.DaysInMonth != 31 || v.RemainingDays != 11 {
		t.Errorf("daysInMonth/remaining = %d/%d, want 31/11", v.DaysInMonth, v.RemainingDays)
	}
	if v.ShowStretchGoal {
		t.Error("stretch goal shown below 100% achievement")
	}
}

func TestComputeRevenueVelocityStretchGoal(t *testing.T) {
	now := time.Date(2026, 3, 20, 12, 0, 0, 0, time.UTC)
	rows := []model.DailyMetric{
		metricOn("2026-03-01", 500_000_000, 5000, 100000),
		metricOn("2026-03-02", 400_000_000, 4200, 95000),
	}

	v := ComputeRevenueVelocity(rows, 750_000_000, now)

	if v.GoalAchievedPercent != 120 {
		t.Errorf("goalAchievedPercent = %v, want 120", v.GoalAchievedPercent)
	}
	if !v.ShowStretchGoal {
		t.Error("stretch goal not shown at 120% achievement")
	}
	if v.StretchGoal != 1_125_000_000 {
		t.Errorf("stretchGoal = %v, want 1125000000", v.StretchGoal)
	}
	if v.GapToStretch != 225_000_000 {
		t.Errorf("gapToStretch = %v, want 225000000", v.GapToStretch)
	}
	if v.RequiredPaceForStretch != 20454545 {
		t.Errorf("requiredPaceForStretch = %v, want 20454545", v.RequiredPaceForStretch)
	}
}

func TestComputeRevenueVelocityDefaults(t *testing.T) {
	now := time.Date(2026, 3, 1, 8, 0, 0, 0, time.UTC)

	v := ComputeRevenueVelocity(nil, 0, now)
	if v.MonthlyTarget != constants.DefaultMonthlyTarget {
		t.Errorf("monthlyTarget = %v, want default %v", v.MonthlyTarget, constants.DefaultMonthlyTarget)
	}
	if v.AvgDailyRevenue != 0 || v.ProjectedMonthEnd != 0 || v.GoalAchievedPercent != 0 {
		t.Errorf("empty month produced non-zero pace: %+v", v)
	}
}

func TestComputeKPISummary(t *testing.T) {
	windowEnd := time.Date(2026, 3, 15, 0, 0, 0, 0, time.UTC)
	current := []model.DailyMetric{
		metricOn("2026-03-01", 150_000_000, 2000, 75000),
	}
	previous := []model.DailyMetric{
		metricOn("2025-03-01", 100_000_000, 1600, 62500),
	}

	s := ComputeKPISummary(current, previous, windowEnd)

	if s.Revenue.ChangePercent != 50 {
		t.Errorf("revenue change = %v, want 50", s.Revenue.ChangePercent)
	}
	if s.Pax.ChangePercent != 25 {
		t.Errorf("pax change = %v, want 25", s.Pax.ChangePercent)
	}
	if s.AvgSpend.Current != 75000 {
		t.Errorf("avgSpend current = %v, want 75000", s.AvgSpend.Current)
	}
	if s.AvgSpend.ChangePercent != 20 {
		t.Errorf("avgSpend change = %v, want 20", s.AvgSpend.ChangePercent)
	}
	if s.WindowEnd != "2026-03-15" {
		t.Errorf("windowEnd = %q, want 2026-03-15", s.WindowEnd)
	}
}

func TestComputeKPISummaryZeroBaseline(t *testing.T) {
	s := ComputeKPISummary([]model.DailyMetric{metricOn("2026-03-01", 100, 10, 10)}, nil, time.Now())
	if s.Revenue.ChangePercent != 0 || s.Pax.ChangePercent != 0 || s.AvgSpend.ChangePercent != 0 {
		t.Errorf("zero baseline produced non-zero change: %+v", s)
	}
}

func TestBuildWeeklySeries(t *testing.T) {
	rows := []model.DailyMetric{
		metricOn("2026-03-16", 12_500_000, 150, 83333),
		metricOn("2026-03-17", 9_200_000, 120, 76666),
	}
	lastYear := map[string]int64{
		"2025-03-17": 10_000_000, // same weekday as 2026-03-16
	}

	points := BuildWeeklySeries(rows, lastYear)
	if len(points) != 2 {
		t.Fatalf("got %d points, want 2", len(points))
	}
	if points[0].Label != "Mon" {
		t.Errorf("label = %q, want Mon", points[0].Label)
	}
	if points[0].Revenue != 12.5 {
		t.Errorf("revenue = %v, want 12.5 (millions)", points[0].Revenue)
	}
	if points[0].LastYearRevenue != 10 {
		t.Errorf("lastYearRevenue = %v, want 10", points[0].LastYearRevenue)
	}
	if points[1].LastYearRevenue != 0 {
		t.Errorf("missing last-year day = %v, want 0", points[1].LastYearRevenue)
	}
}

func TestComputeMonthlyPerformance(t *testing.T) {
	now := time.Date(2026, 3, 20, 0, 0, 0, 0, time.UTC)
	rows := []model.DailyMetric{
		metricOn("2026-01-10", 400_000_000, 5000, 80000),
		metricOn("2026-01-20", 350_000_000, 4200, 83000),
		metricOn("2026-03-01", 150_000_000, 1800, 83000),
	}
	targets := map[int]float64{1: 700_000_000}

	items := ComputeMonthlyPerformance(rows, targets, now)
	if len(items) != 2 {
		t.Fatalf("got %d items, want 2 (February has no data)", len(items))
	}

	jan := items[0]
	if jan.Month != 1 || jan.Label != "Jan" {
		t.Errorf("first item = %+v, want January", jan)
	}
	if jan.Actual != 750_000_000 || jan.AchievementPercent != 107 {
		t.Errorf("january = actual %v, achievement %d; want 750000000, 107", jan.Actual, jan.AchievementPercent)
	}

	mar := items[1]
	if mar.Target != constants.DefaultMonthlyTarget {
		t.Errorf("march target = %v, want default", mar.Target)
	}
	if mar.AchievementPercent != 20 {
		t.Errorf("march achievement = %d, want 20", mar.AchievementPercent)
	}
}

func boolPtr(b bool) *bool { return &b }

func TestComputeStaffing(t *testing.T) {
	shifts := []model.Shift{
		{Role: "kitchen", Status: constants.ShiftInProgress},
		{Role: "kitchen", Status: constants.ShiftScheduled},
		{Role: "service", Status: constants.ShiftScheduled, CountsAsActive: boolPtr(true)},
		{Role: "service", Status: constants.ShiftInProgress, CountsAsActive: boolPtr(false)},
		{Role: "bar", Status: constants.ShiftCancelled},
	}

	s := ComputeStaffing(shifts, 120)

	if s.TotalRequired != 4 {
		t.Errorf("totalRequired = %d, want 4 (cancelled excluded)", s.TotalRequired)
	}
	if s.ActiveStaff != 2 {
		t.Errorf("activeStaff = %d, want 2", s.ActiveStaff)
	}
	if s.CoveragePercentage != 50 {
		t.Errorf("coverage = %d, want 50", s.CoveragePercentage)
	}
	if s.GuestStaffRatio != 60 {
		t.Errorf("guestStaffRatio = %v, want 60", s.GuestStaffRatio)
	}
	if len(s.CoverageGaps) != 0 {
		t.Errorf("gaps = %+v, want none (each role has an active shift per scheduled one)", s.CoverageGaps)
	}
}

func TestComputeStaffingCoverageGap(t *testing.T) {
	shifts := []model.Shift{
		{Role: "kitchen", Status: constants.ShiftScheduled},
		{Role: "kitchen", Status: constants.ShiftScheduled},
		{Role: "service", Status: constants.ShiftInProgress},
	}

	s := ComputeStaffing(shifts, 0)
	if len(s.CoverageGaps) != 1 {
		t.Fatalf("gaps = %+v, want exactly one", s.CoverageGaps)
	}
	gap := s.CoverageGaps[0]
	if gap.Role != "kitchen" || gap.Scheduled != 2 || gap.Active != 0 || gap.Missing != 2 {
		t.Errorf("gap = %+v, want kitchen 2 scheduled / 0 active", gap)
	}
}

func TestComputeStaffingEmpty(t *testing.T) {
	s := ComputeStaffing(nil, 80)
	if s.CoveragePercentage != 100 {
		t.Errorf("coverage with no shifts = %d, want 100", s.CoveragePercentage)
	}
	if s.GuestStaffRatio != 0 {
		t.Errorf("guestStaffRatio with no active staff = %v, want 0", s.GuestStaffRatio)
	}
}

func TestComputeSyncStatus(t *testing.T) {
	now := time.Date(2026, 3, 20, 12, 0, 0, 0, time.UTC)

	s := ComputeSyncStatus(nil, now)
	if s.HoursAgo != constants.NeverSyncedHoursAgo || !s.IsStale {
		t.Errorf("never synced = %+v, want hoursAgo -1 and stale", s)
	}

	fresh := now.Add(-2 * time.Hour)
	s = ComputeSyncStatus(&model.SyncLog{Status: constants.SyncStatusCompleted, CompletedAt: &fresh, RecordsProcessed: 31}, now)
	if s.HoursAgo != 2 || s.IsStale {
		t.Errorf("2h-old sync = %+v, want fresh", s)
	}
	if s.RecordsProcessed != 31 {
		t.Errorf("recordsProcessed = %d, want 31", s.RecordsProcessed)
	}

	stale := now.Add(-30 * time.Hour)
	s = ComputeSyncStatus(&model.SyncLog{Status: constants.SyncStatusCompleted, CompletedAt: &stale}, now)
	if s.HoursAgo != 30 || !s.IsStale {
		t.Errorf("30h-old sync = %+v, want stale", s)
	}
}

func TestComputeReviewsSummary(t *testing.T) {
	s := ComputeReviewsSummary(nil)
	if s.Count != 0 || s.AverageRating != 0 {
		t.Errorf("empty reviews = %+v, want zeros", s)
	}

	s = ComputeReviewsSummary([]model.Review{{Rating: 5}, {Rating: 4}, {Rating: 4}})
	if s.Count != 3 {
		t.Errorf("count = %d, want 3", s.Count)
	}
	if s.AverageRating != 4.3 {
		t.Errorf("averageRating = %v, want 4.3", s.AverageRating)
	}
}

func TestComputeGoogleReviews(t *testing.T) {
	if s := ComputeGoogleReviews(nil); s.Rating != 0 {
		t.Errorf("nil snapshot = %+v, want zero", s)
	}

	rating := 4.7
	count := 1250
	m := metricOn("2026-03-15", 1, 1, 1)
	m.GoogleRating = &rating
	m.GoogleReviewCount = &count

	s := ComputeGoogleReviews(&m)
	if s.Rating != 4.7 || s.ReviewCount != 1250 || s.AsOf != "2026-03-15" {
		t.Errorf("snapshot = %+v", s)
	}
}

func TestComputeComplianceSummary(t *testing.T) {
	now := time.Date(2026, 3, 20, 0, 0, 0, 0, time.UTC)
	soon := utils.NewCustomDate(now.AddDate(0, 0, 5))
	far := utils.NewCustomDate(now.AddDate(0, 0, 60))

	items := []model.ComplianceItem{
		{Name: "Hygiene certificate", Status: "ok", DueDate: &far},
		{Name: "Fire inspection", Status: "action_needed", DueDate: &soon},
		{Name: "Liquor license", Status: "overdue"},
	}

	s := ComputeComplianceSummary(items, now)
	if s.Total != 3 || s.Ok != 1 || s.ActionNeeded != 1 || s.Overdue != 1 {
		t.Errorf("counts = %+v", s)
	}
	if len(s.DueSoon) != 1 || s.DueSoon[0].Name != "Fire inspection" {
		t.Errorf("dueSoon = %+v, want only the fire inspection", s.DueSoon)
	}
}
