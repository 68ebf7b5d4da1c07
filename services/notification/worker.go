package notification

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	notificationRepo "fitbook/database/repository/notification"
	"fitbook/models"

	"github.com/hibiken/asynq"
	"go.uber.org/zap"
)

// Worker drains the notification queue into the per-receiver lists.
type Worker struct {
	server *asynq.Server
	repo   notificationRepo.Repository
	logger *zap.Logger
}

// NewWorker builds the queue consumer.
func NewWorker(redisOpt asynq.RedisClientOpt, repo notificationRepo.Repository, logger *zap.Logger) *Worker {
	server := asynq.NewServer(redisOpt, asynq.Config{
		Concurrency: 5,
	})
	return &Worker{server: server, repo: repo, logger: logger}
}

// Start runs the consumer loop in the background.
func (w *Worker) Start() error {
	mux := asynq.NewServeMux()
	mux.HandleFunc(TypeAppend, w.handleAppend)
	if err := w.server.Start(mux); err != nil {
		return fmt.Errorf("starting notification worker: %w", err)
	}
	return nil
}

// Shutdown stops the consumer, waiting for in-flight tasks.
func (w *Worker) Shutdown() {
	w.server.Shutdown()
}

func (w *Worker) handleAppend(ctx context.Context, task *asynq.Task) error {
	var payload AppendPayload
	if err := json.Unmarshal(task.Payload(), &payload); err != nil {
		// A payload that cannot parse will never succeed on retry.
		w.logger.Error("dropping malformed notification task", zap.Error(err))
		return nil
	}

	entry := models.NotificationEntry{
		Content:   payload.Content,
		BookingID: payload.BookingID,
		Read:      false,
		CreatedAt: time.Now(),
	}
	if err := w.repo.Append(ctx, payload.ReceiverID, entry); err != nil {
		w.logger.Warn("notification append failed, will retry",
			zap.String("receiverId", payload.ReceiverID),
			zap.Error(err))
		return err
	}
	return nil
}
