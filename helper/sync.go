package helper

import (
	"context"
	"fmt"
	"time"

	"resto_manager/constants"
	"resto_manager/database"
	"resto_manager/model"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"
	"gorm.io/gorm/clause"
)

// IngestDailyMetrics runs one daily-metrics sync: fetch the sheet range, push
// every row through the normalizer, and upsert candidates by date. Later rows
// for the same date overwrite earlier ones within the run. The returned
// result carries full counts even on partial failure; only transport and
// configuration errors abort the run.
func IngestDailyMetrics(ctx context.Context, input model.SyncInput) (model.SyncResult, error) {
	runId := uuid.NewString()
	log := logrus.WithFields(logrus.Fields{
		"runId":    runId,
		"syncType": "daily_metrics",
		"sheetId":  input.SheetId,
	})

	syncLog := model.SyncLog{
		RunId:     runId,
		SyncType:  "daily_metrics",
		Status:    constants.SyncStatusRunning,
		StartedAt: time.Now(),
	}
	database.DB.Create(&syncLog)

	readRange := "A2:J"
	if input.SheetName != "" {
		readRange = input.SheetName + "!A2:J"
	}

	rows, err := FetchSheetRange(ctx, input.SheetId, readRange)
	if err != nil {
		log.WithError(err).Error("sheet fetch failed")
		finishSyncLog(&syncLog, constants.SyncStatusFailed, 0, 0, err.Error())
		return model.SyncResult{}, err
	}

	variant := GetSheetVariant(input.Variant)
	result := model.SyncResult{TotalRows: len(rows)}
	parseSamples := 0

	for i, row := range rows {
		metric, skip := NormalizeRow(row, variant)
		if skip != nil {
			result.Skipped++
			if skip.Reason == SkipUnparseableDate && parseSamples < constants.MaxDateParseSamples {
				parseSamples++
				result.Errors = append(result.Errors, fmt.Sprintf("row %d: %s: %q", i+2, skip.Reason, skip.Detail))
			}
			continue
		}

		if err := upsertDailyMetric(metric); err != nil {
			result.Skipped++
			if len(result.Errors) < constants.MaxIngestErrorSamples {
				result.Errors = append(result.Errors, fmt.Sprintf("row %d: upsert failed: %v", i+2, err))
			}
			continue
		}
		result.Processed++
	}

	// Occasional bad rows are expected; a run counts as successful as long as
	// it landed data.
	result.Success = result.Processed > 0

	status := constants.SyncStatusCompleted
	errMsg := ""
	switch {
	case result.Processed == 0:
		status = constants.SyncStatusFailed
		errMsg = "no rows processed"
	case len(result.Errors) > 0:
		status = constants.SyncStatusPartial
		errMsg = fmt.Sprintf("%d row errors", len(result.Errors))
	}
	finishSyncLog(&syncLog, status, result.Processed, result.Skipped, errMsg)

	log.WithFields(logrus.Fields{
		"processed": result.Processed,
		"skipped":   result.Skipped,
		"totalRows": result.TotalRows,
	}).Info("daily metrics sync finished")

	return result, nil
}

// upsertDailyMetric writes one metric keyed by date. Google rating and review
// count only join the update set when the row carries positive values, so a
// day without a snapshot never blanks a previously synced one.
func upsertDailyMetric(metric *model.DailyMetric) error {
	cols := []string{"revenue", "pax", "avg_spend", "updated_at"}
	if metric.StaffOnDuty != nil {
		cols = append(cols, "staff_on_duty")
	}
	if metric.GoogleRating != nil {
		cols = append(cols, "google_rating")
	}
	if metric.GoogleReviewCount != nil {
		cols = append(cols, "google_review_count")
	}

	return database.DB.Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "date"}},
		DoUpdates: clause.AssignmentColumns(cols),
	}).Create(metric).Error
}

func finishSyncLog(syncLog *model.SyncLog, status string, processed, skipped int, errMsg string) {
	now := time.Now()
	syncLog.Status = status
	syncLog.CompletedAt = &now
	syncLog.RecordsProcessed = processed
	syncLog.RecordsSkipped = skipped
	syncLog.ErrorMessage = errMsg
	if err := database.DB.Save(syncLog).Error; err != nil {
		logrus.WithError(err).Error("failed to finalize sync log")
	}
}
