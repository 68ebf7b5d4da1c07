package cron

import (
	"context"
	"time"

	"fitbook/services/scheduling"

	"github.com/robfig/cron/v3"
	"go.uber.org/zap"
)

// StartExpiredSlotSweeper runs the daily midnight sweep of unbooked slots
// whose start date has passed. Returns the scheduler so the caller can stop
// it on shutdown.
func StartExpiredSlotSweeper(slots scheduling.SlotService, logger *zap.Logger) *cron.Cron {
	c := cron.New()

	_, err := c.AddFunc("0 0 * * *", func() {
		ctx, cancel := context.WithTimeout(context.Background(), time.Minute)
		defer cancel()

		removed, err := slots.DeleteExpired(ctx, time.Now())
		if err != nil {
			logger.Error("expired slot sweep failed", zap.Error(err))
			return
		}
		logger.Info("expired slot sweep finished", zap.Int64("removed", removed))
	})
	if err != nil {
		logger.Fatal("failed to schedule expired slot sweep", zap.Error(err))
	}

	c.Start()
	return c
}
