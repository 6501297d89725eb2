package helper

import (
	"time"

	"resto_manager/constants"
	"resto_manager/model"
	"resto_manager/utils"

	"gorm.io/gorm"
)

// Aggregation for the dashboard summary. Every Compute* function is pure over
// already-loaded rows; the Load* functions below are the matching reads. The
// handler fans the reads out concurrently and feeds the results in here.

// ComputeRevenueVelocity derives the month-to-date pace block. All divisions
// are guarded: a month with no data yet yields zeros, never NaN.
func ComputeRevenueVelocity(mtdRows []model.DailyMetric, monthlyTarget float64, now time.Time) model.RevenueVelocity {
	if monthlyTarget <= 0 {
		monthlyTarget = constants.DefaultMonthlyTarget
	}

	var mtdRevenue float64
	daysWithData := 0
	for _, row := range mtdRows {
		mtdRevenue += float64(row.Revenue)
		if row.Revenue > 0 {
			daysWithData++
		}
	}

	daysInMonth := utils.DaysInMonth(now)
	remainingDays := daysInMonth - now.Day()

	v := model.RevenueVelocity{
		MonthlyTarget:       monthlyTarget,
		MtdRevenue:          mtdRevenue,
		DaysWithData:        daysWithData,
		DaysInMonth:         daysInMonth,
		RemainingDays:       remainingDays,
		AvgDailyRevenue:     utils.SafeDivide(mtdRevenue, float64(daysWithData)),
		GoalAchievedPercent: utils.RoundTo(utils.SafeDivide(mtdRevenue*100, monthlyTarget), 1),
		Surplus:             mtdRevenue - monthlyTarget,
		DailyTargetPace:     utils.RoundTo(monthlyTarget/float64(daysInMonth), 0),
	}
	v.ProjectedMonthEnd = utils.RoundTo(v.AvgDailyRevenue*float64(daysInMonth), 0)

	// The stretch goal only appears once the base target is met.
	v.ShowStretchGoal = v.GoalAchievedPercent >= 100
	v.StretchGoal = monthlyTarget * constants.StretchGoalMultiplier
	v.GapToStretch = v.StretchGoal - mtdRevenue
	v.RequiredPaceForStretch = utils.RoundTo(utils.SafeDivide(v.GapToStretch, float64(remainingDays)), 0)
	if v.RequiredPaceForStretch < 0 {
		v.RequiredPaceForStretch = 0
	}

	return v
}

// ComputeKPISummary compares the current period-to-date window with the same
// window one year earlier. Both windows end at the latest date that actually
// has data, so a late sync does not skew the comparison.
func ComputeKPISummary(current, previous []model.DailyMetric, windowEnd time.Time) model.KPISummary {
	currRevenue, currPax, currSpend := sumWindow(current)
	prevRevenue, prevPax, prevSpend := sumWindow(previous)

	currAvgSpend := utils.RoundTo(utils.SafeDivide(currSpend, currPax), 2)
	prevAvgSpend := utils.RoundTo(utils.SafeDivide(prevSpend, prevPax), 2)

	return model.KPISummary{
		Revenue: model.KPITrend{
			Current:       currRevenue,
			Previous:      prevRevenue,
			ChangePercent: utils.CalculateGrowth(currRevenue, prevRevenue),
		},
		Pax: model.KPITrend{
			Current:       currPax,
			Previous:      prevPax,
			ChangePercent: utils.CalculateGrowth(currPax, prevPax),
		},
		AvgSpend: model.KPITrend{
			Current:       currAvgSpend,
			Previous:      prevAvgSpend,
			ChangePercent: utils.CalculateGrowth(currAvgSpend, prevAvgSpend),
		},
		WindowEnd: windowEnd.Format("2006-01-02"),
	}
}

func sumWindow(rows []model.DailyMetric) (revenue, pax, spend float64) {
	for _, row := range rows {
		revenue += float64(row.Revenue)
		pax += float64(row.Pax)
		spend += row.AvgSpend * float64(row.Pax)
	}
	return
}

// BuildWeeklySeries renders the last rows chronologically, pairing each date
// with the revenue of the same weekday one year earlier (364 days back, so
// Mondays compare against Mondays). Both series are in millions.
func BuildWeeklySeries(recent []model.DailyMetric, lastYearByDate map[string]int64) []model.WeeklySalesPoint {
	points := make([]model.WeeklySalesPoint, 0, len(recent))
	for _, row := range recent {
		date := row.Date.Time
		lastYearDate := utils.SameWeekdayLastYear(date).Format("2006-01-02")
		points = append(points, model.WeeklySalesPoint{
			Date:            date.Format("2006-01-02"),
			Label:           date.Format("Mon"),
			Revenue:         utils.RoundTo(float64(row.Revenue)/1_000_000, 1),
			LastYearRevenue: utils.RoundTo(float64(lastYearByDate[lastYearDate])/1_000_000, 1),
		})
	}
	return points
}

// ComputeMonthlyPerformance sums actuals per month from January through the
// current month and scores them against that month's target. Months without a
// single revenue day are left out; months without a configured target score
// against the default.
func ComputeMonthlyPerformance(yearRows []model.DailyMetric, targets map[int]float64, now time.Time) []model.MonthlyPerformanceItem {
	actuals := map[int]float64{}
	for _, row := range yearRows {
		if row.Revenue > 0 {
			actuals[int(row.Date.Month())] += float64(row.Revenue)
		}
	}

	items := []model.MonthlyPerformanceItem{}
	for month := 1; month <= int(now.Month()); month++ {
		actual, ok := actuals[month]
		if !ok {
			continue
		}
		target := targets[month]
		if target <= 0 {
			target = constants.DefaultMonthlyTarget
		}
		items = append(items, model.MonthlyPerformanceItem{
			Month:              month,
			Label:              time.Month(month).String()[:3],
			Actual:             actual,
			Target:             target,
			AchievementPercent: int(utils.RoundTo(actual/target*100, 0)),
		})
	}
	return items
}

// ComputeStaffing summarizes today's floor coverage. A shift counts as active
// when its override flag says so, otherwise when it is in progress. Gaps are
// roles with more scheduled-but-not-started shifts than active ones.
func ComputeStaffing(shifts []model.Shift, todayPax int) model.StaffingSummary {
	active := 0
	totalRequired := 0
	activeByRole := map[string]int{}
	scheduledByRole := map[string]int{}
	seenRoles := map[string]bool{}
	roleOrder := []string{}

	for _, shift := range shifts {
		if shift.Status == constants.ShiftCancelled {
			continue
		}
		totalRequired++
		if !seenRoles[shift.Role] {
			seenRoles[shift.Role] = true
			roleOrder = append(roleOrder, shift.Role)
		}

		isActive := shift.Status == constants.ShiftInProgress
		if shift.CountsAsActive != nil {
			isActive = *shift.CountsAsActive
		}
		if isActive {
			active++
			activeByRole[shift.Role]++
		} else if shift.Status == constants.ShiftScheduled {
			scheduledByRole[shift.Role]++
		}
	}

	coverage := 100
	if totalRequired > 0 {
		coverage = int(utils.RoundTo(float64(active)/float64(totalRequired)*100, 0))
	}

	gaps := []model.CoverageGap{}
	for _, role := range roleOrder {
		if scheduledByRole[role] > activeByRole[role] {
			gaps = append(gaps, model.CoverageGap{
				Role:      role,
				Scheduled: scheduledByRole[role],
				Active:    activeByRole[role],
				Missing:   scheduledByRole[role] - activeByRole[role],
			})
		}
	}

	return model.StaffingSummary{
		ActiveStaff:        active,
		TotalRequired:      totalRequired,
		CoveragePercentage: coverage,
		GuestStaffRatio:    utils.RoundTo(utils.SafeDivide(float64(todayPax), float64(active)), 1),
		CoverageGaps:       gaps,
	}
}

// ComputeSyncStatus derives freshness from the most recent terminal sync log.
// No completed sync ever means stale, with -1 marking "never synced".
func ComputeSyncStatus(last *model.SyncLog, now time.Time) model.SyncStatus {
	if last == nil || last.CompletedAt == nil {
		return model.SyncStatus{
			LastSyncAt: nil,
			HoursAgo:   constants.NeverSyncedHoursAgo,
			IsStale:    true,
		}
	}

	hoursAgo := int(utils.RoundTo(now.Sub(*last.CompletedAt).Hours(), 0))
	return model.SyncStatus{
		LastSyncAt:       last.CompletedAt,
		HoursAgo:         hoursAgo,
		IsStale:          hoursAgo > constants.StaleSyncThresholdHours,
		Status:           last.Status,
		RecordsProcessed: last.RecordsProcessed,
	}
}

func ComputeReviewsSummary(reviews []model.Review) model.ReviewsSummary {
	summary := model.ReviewsSummary{WindowDays: constants.ReviewWindowDays}
	if len(reviews) == 0 {
		return summary
	}
	var total float64
	for _, r := range reviews {
		total += r.Rating
	}
	summary.Count = len(reviews)
	summary.AverageRating = utils.RoundTo(total/float64(len(reviews)), 1)
	return summary
}

func ComputeGoogleReviews(latest *model.DailyMetric) model.GoogleReviewsSummary {
	if latest == nil || latest.GoogleRating == nil {
		return model.GoogleReviewsSummary{}
	}
	summary := model.GoogleReviewsSummary{
		Rating: *latest.GoogleRating,
		AsOf:   latest.Date.Format("2006-01-02"),
	}
	if latest.GoogleReviewCount != nil {
		summary.ReviewCount = *latest.GoogleReviewCount
	}
	return summary
}

func ComputeComplianceSummary(items []model.ComplianceItem, now time.Time) model.ComplianceSummary {
	summary := model.ComplianceSummary{DueSoon: model.ComplianceItems{}}
	dueCutoff := now.AddDate(0, 0, constants.ComplianceDueSoonDays)
	for _, item := range items {
		summary.Total++
		switch item.Status {
		case "ok":
			summary.Ok++
		case "action_needed":
			summary.ActionNeeded++
		case "overdue":
			summary.Overdue++
		}
		if item.DueDate != nil && !item.DueDate.IsZero() &&
			item.DueDate.Time.Before(dueCutoff) && item.DueDate.Time.After(now.AddDate(0, 0, -1)) {
			summary.DueSoon = append(summary.DueSoon, item)
		}
	}
	return summary
}

// --- reads ---

// LoadLatestDataDate is the one read the year-over-year windows depend on.
func LoadLatestDataDate(db *gorm.DB) (time.Time, bool) {
	var row model.DailyMetric
	if err := db.Where("revenue > 0").Order("date DESC").First(&row).Error; err != nil {
		return time.Time{}, false
	}
	return row.Date.Time, true
}

func LoadMetricsRange(db *gorm.DB, from, to time.Time) ([]model.DailyMetric, error) {
	var rows []model.DailyMetric
	err := db.Where("date >= ? AND date <= ?", from.Format("2006-01-02"), to.Format("2006-01-02")).
		Order("date ASC").Find(&rows).Error
	return rows, err
}

func LoadRecentRevenueDays(db *gorm.DB, year int, limit int) ([]model.DailyMetric, error) {
	var rows []model.DailyMetric
	err := db.Where("EXTRACT(YEAR FROM date) = ? AND revenue > 0", year).
		Order("date DESC").Limit(limit).Find(&rows).Error
	if err != nil {
		return nil, err
	}
	// Reverse into chronological order for the chart.
	for i, j := 0, len(rows)-1; i < j; i, j = i+1, j-1 {
		rows[i], rows[j] = rows[j], rows[i]
	}
	return rows, nil
}

// LoadMonthlyTargets returns month number → target value for one year.
func LoadMonthlyTargets(db *gorm.DB, year int) (map[int]float64, error) {
	var targets []model.RevenueTarget
	err := db.Where("metric = ? AND period = ? AND EXTRACT(YEAR FROM period_start) = ?", "revenue", "monthly", year).
		Find(&targets).Error
	if err != nil {
		return nil, err
	}
	byMonth := map[int]float64{}
	for _, t := range targets {
		byMonth[int(t.PeriodStart.Month())] = t.TargetValue
	}
	return byMonth, nil
}

func LoadTodayShifts(db *gorm.DB, today time.Time) ([]model.Shift, error) {
	var shifts []model.Shift
	err := db.Where("date = ?", today.Format("2006-01-02")).Find(&shifts).Error
	return shifts, err
}

func LoadRecentReviews(db *gorm.DB, now time.Time) ([]model.Review, error) {
	var reviews []model.Review
	since := now.AddDate(0, 0, -constants.ReviewWindowDays)
	err := db.Where("review_date >= ?", since.Format("2006-01-02")).Find(&reviews).Error
	return reviews, err
}

func LoadComplianceItems(db *gorm.DB) ([]model.ComplianceItem, error) {
	var items []model.ComplianceItem
	err := db.Find(&items).Error
	return items, err
}

func LoadLastCompletedSync(db *gorm.DB) (*model.SyncLog, error) {
	var log model.SyncLog
	err := db.Where("sync_type = ? AND status IN ?", "daily_metrics",
		[]string{constants.SyncStatusCompleted, constants.SyncStatusPartial}).
		Order("completed_at DESC").First(&log).Error
	if err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, nil
		}
		return nil, err
	}
	return &log, nil
}

func LoadLatestGoogleSnapshot(db *gorm.DB) (*model.DailyMetric, error) {
	var row model.DailyMetric
	err := db.Where("google_rating > 0").Order("date DESC").First(&row).Error
	if err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, nil
		}
		return nil, err
	}
	return &row, nil
}
