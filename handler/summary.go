package handler

import (
	"context"
	"encoding/json"
	"sync"
	"time"

	"resto_manager/constants"
	"resto_manager/database"
	"resto_manager/helper"
	"resto_manager/model"
	"resto_manager/utils"

	"github.com/gofiber/fiber/v2"
	"github.com/sirupsen/logrus"
)

const summaryCacheKey = "dashboard:summary"

// GetDashboardSummary assembles the whole dashboard payload from independent
// reads issued concurrently. The only sequential dependency is resolving the
// latest date with data, which bounds the year-over-year windows. Individual
// read failures degrade their block to defaults; only a timeout or a total
// failure errors the request.
func GetDashboardSummary(c *fiber.Ctx) error {
	if cached, err := database.Redis.Get(c.Context(), summaryCacheKey).Result(); err == nil && cached != "" {
		c.Set("Cache-Control", constants.SummaryCacheControl)
		c.Set("Content-Type", "application/json")
		return c.SendString(cached)
	}

	ctx, cancel := context.WithTimeout(c.Context(), constants.SummaryTimeout)
	defer cancel()

	db := database.DB.WithContext(ctx)
	now := time.Now()

	// The YoY comparison ends where the data actually ends: if yesterday's
	// sync has not landed, both windows stop at the latest synced date.
	windowEnd, hasData := helper.LoadLatestDataDate(db)
	if !hasData {
		windowEnd = now
	}

	var (
		wg sync.WaitGroup

		mtdRows     []model.DailyMetric
		currWindow  []model.DailyMetric
		prevWindow  []model.DailyMetric
		yearRows    []model.DailyMetric
		weeklyRows  []model.DailyMetric
		lastYearMap map[string]int64
		targets     map[int]float64
		shifts      []model.Shift
		reviews     []model.Review
		compliance  []model.ComplianceItem
		lastSync    *model.SyncLog
		googleSnap  *model.DailyMetric
	)

	read := func(name string, fn func() error) {
		wg.Add(1)
		go func() {
			defer wg.Done()
			if err := fn(); err != nil {
				logrus.WithError(err).WithField("read", name).Warn("summary read degraded to defaults")
			}
		}()
	}

	read("mtd", func() (err error) {
		mtdRows, err = helper.LoadMetricsRange(db, utils.MonthStart(now), now)
		return
	})
	read("kpiWindows", func() error {
		var err error
		currWindow, err = helper.LoadMetricsRange(db, utils.MonthStart(windowEnd), windowEnd)
		if err != nil {
			return err
		}
		prevEnd := windowEnd.AddDate(-1, 0, 0)
		prevWindow, err = helper.LoadMetricsRange(db, utils.MonthStart(prevEnd), prevEnd)
		return err
	})
	read("yearly", func() (err error) {
		yearRows, err = helper.LoadMetricsRange(db, time.Date(now.Year(), 1, 1, 0, 0, 0, 0, now.Location()), now)
		return
	})
	read("weekly", func() error {
		var err error
		weeklyRows, err = helper.LoadRecentRevenueDays(db, now.Year(), constants.WeeklySeriesDays)
		if err != nil || len(weeklyRows) == 0 {
			return err
		}
		// Comparison values for the same weekdays one year back.
		from := utils.SameWeekdayLastYear(weeklyRows[0].Date.Time)
		to := utils.SameWeekdayLastYear(weeklyRows[len(weeklyRows)-1].Date.Time)
		lastYearRows, err := helper.LoadMetricsRange(db, from, to)
		if err != nil {
			return err
		}
		lastYearMap = map[string]int64{}
		for _, row := range lastYearRows {
			lastYearMap[row.Date.Format("2006-01-02")] = row.Revenue
		}
		return nil
	})
	read("targets", func() (err error) {
		targets, err = helper.LoadMonthlyTargets(db, now.Year())
		return
	})
	read("shifts", func() (err error) {
		shifts, err = helper.LoadTodayShifts(db, now)
		return
	})
	read("reviews", func() (err error) {
		reviews, err = helper.LoadRecentReviews(db, now)
		return
	})
	read("compliance", func() (err error) {
		compliance, err = helper.LoadComplianceItems(db)
		return
	})
	read("syncLog", func() (err error) {
		lastSync, err = helper.LoadLastCompletedSync(db)
		return
	})
	read("googleReviews", func() (err error) {
		googleSnap, err = helper.LoadLatestGoogleSnapshot(db)
		return
	})

	done := make(chan struct{})
	go func() {
		wg.Wait()
		close(done)
	}()

	select {
	case <-done:
	case <-ctx.Done():
		// Distinct from other failures: the client should suggest a refresh,
		// not a connectivity check.
		return utils.ErrorResponse(c, fiber.StatusGatewayTimeout, constants.SUMMARY_TIMEOUT, ctx.Err())
	}

	monthlyTarget := targets[int(now.Month())]
	todayPax := 0
	todayStr := now.Format("2006-01-02")
	for _, row := range mtdRows {
		if row.Date.Format("2006-01-02") == todayStr {
			todayPax = row.Pax
		}
	}

	summary := model.DashboardSummary{
		RevenueVelocity:    helper.ComputeRevenueVelocity(mtdRows, monthlyTarget, now),
		KpiSummary:         helper.ComputeKPISummary(currWindow, prevWindow, windowEnd),
		WeeklySales:        helper.BuildWeeklySeries(weeklyRows, lastYearMap),
		Reviews:            helper.ComputeReviewsSummary(reviews),
		GoogleReviews:      helper.ComputeGoogleReviews(googleSnap),
		Staffing:           helper.ComputeStaffing(shifts, todayPax),
		Compliance:         helper.ComputeComplianceSummary(compliance, now),
		MonthlyPerformance: helper.ComputeMonthlyPerformance(yearRows, targets, now),
		SyncStatus:         helper.ComputeSyncStatus(lastSync, now),
	}

	envelope, err := json.Marshal(fiber.Map{
		"status": "success",
		"data":   summary,
	})
	if err != nil {
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, constants.ERROR_INTERNAL_ERROR, err)
	}

	if err := database.Redis.Set(c.Context(), summaryCacheKey, string(envelope), constants.SummaryCacheTTL).Err(); err != nil {
		logrus.WithError(err).Warn("summary cache write failed")
	}

	c.Set("Cache-Control", constants.SummaryCacheControl)
	c.Set("Content-Type", "application/json")
	return c.Send(envelope)
}

// InvalidateSummaryCache drops the cached payload after a sync or a write
// that feeds the dashboard.
func InvalidateSummaryCache(ctx context.Context) {
	if err := database.Redis.Del(ctx, summaryCacheKey).Err(); err != nil {
		logrus.WithError(err).Warn("summary cache invalidation failed")
	}
}
