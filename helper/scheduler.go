package helper

import (
	"context"
	"log"
	"time"

	"resto_manager/config"
	"resto_manager/constants"
	"resto_manager/model"

	"github.com/go-co-op/gocron/v2"
	"github.com/sirupsen/logrus"
)

var syncScheduler gocron.Scheduler

// AutoSyncDailyMetrics is the nightly job. It is a no-op unless
// AUTO_SYNC_SHEET_ID is configured; failures land in the sync log like any
// operator-triggered run and are never retried automatically.
func AutoSyncDailyMetrics() {
	sheetId := config.Config("AUTO_SYNC_SHEET_ID")
	if sheetId == "" {
		return
	}

	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Minute)
	defer cancel()

	input := model.SyncInput{
		SheetId:   sheetId,
		SheetName: config.Config("AUTO_SYNC_SHEET_NAME"),
		Variant:   config.ConfigOr("AUTO_SYNC_VARIANT", DefaultSheetVariant),
	}
	if _, err := IngestDailyMetrics(ctx, input); err != nil {
		logrus.WithError(err).Error("scheduled metrics sync failed")
	}
}

func StartSyncScheduler() {
	s, err := gocron.NewScheduler()
	if err != nil {
		log.Fatal(err)
	}

	syncScheduler = s

	_, err = s.NewJob(
		gocron.DailyJob(
			1,
			gocron.NewAtTimes(
				gocron.NewAtTime(4, 30, 0),
			),
		),
		gocron.NewTask(AutoSyncDailyMetrics),
	)
	if err != nil {
		log.Fatal(err)
	}

	s.Start()
	log.Printf("sync scheduler started (daily 04:30, stale threshold %dh)", constants.StaleSyncThresholdHours)
}

func StopSyncScheduler() {
	if syncScheduler != nil {
		_ = syncScheduler.Shutdown()
	}
}
