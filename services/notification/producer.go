package notification

import (
	"context"
	"encoding/json"
	"fmt"

	"fitbook/models"

	"github.com/hibiken/asynq"
	"go.uber.org/zap"
)

// TypeAppend is the queue task that appends one notification entry to a
// receiver's list.
const TypeAppend = "notification:append"

// AppendPayload is the task body for TypeAppend.
type AppendPayload struct {
	ReceiverID string `json:"receiverId"`
	Content    string `json:"content"`
	BookingID  string `json:"bookingId"`
}

// Producer emits booking lifecycle notifications. Delivery is asynchronous;
// a failed emit never fails the booking operation that triggered it.
type Producer interface {
	BookingConfirmed(ctx context.Context, booking *models.Booking) error
	BookingCancelled(ctx context.Context, booking *models.Booking) error
}

// QueueProducer publishes notification tasks onto the asynq queue.
type QueueProducer struct {
	client *asynq.Client
	logger *zap.Logger
}

// NewQueueProducer wraps an asynq client as a Producer.
func NewQueueProducer(client *asynq.Client, logger *zap.Logger) *QueueProducer {
	return &QueueProducer{client: client, logger: logger}
}

func (p *QueueProducer) BookingConfirmed(ctx context.Context, b *models.Booking) error {
	trainerMsg := fmt.Sprintf("New booking for %s (%s) on %s at %s. Amount: $%.2f.",
		b.SessionType, b.Specialization, b.StartDate, b.StartTime, b.Amount)
	userMsg := fmt.Sprintf("Your %s (%s) on %s at %s is confirmed. Amount: $%.2f.",
		b.SessionType, b.Specialization, b.StartDate, b.StartTime, b.Amount)

	if err := p.enqueue(ctx, b.TrainerID, trainerMsg, b.ID); err != nil {
		return err
	}
	return p.enqueue(ctx, b.UserID, userMsg, b.ID)
}

func (p *QueueProducer) BookingCancelled(ctx context.Context, b *models.Booking) error {
	trainerMsg := fmt.Sprintf("Booking for %s (%s) on %s at %s has been cancelled.",
		b.SessionType, b.Specialization, b.StartDate, b.StartTime)
	userMsg := fmt.Sprintf("Your booking for %s (%s) on %s at %s has been cancelled.",
		b.SessionType, b.Specialization, b.StartDate, b.StartTime)

	if err := p.enqueue(ctx, b.TrainerID, trainerMsg, b.ID); err != nil {
		return err
	}
	return p.enqueue(ctx, b.UserID, userMsg, b.ID)
}

func (p *QueueProducer) enqueue(ctx context.Context, receiverID, content, bookingID string) error {
	payload, err := json.Marshal(AppendPayload{
		ReceiverID: receiverID,
		Content:    content,
		BookingID:  bookingID,
	})
	if err != nil {
		return fmt.Errorf("marshaling notification payload: %w", err)
	}

	task := asynq.NewTask(TypeAppend, payload)
	info, err := p.client.EnqueueContext(ctx, task, asynq.MaxRetry(5))
	if err != nil {
		return fmt.Errorf("enqueueing notification for %s: %w", receiverID, err)
	}
	p.logger.Debug("notification enqueued",
		zap.String("taskId", info.ID),
		zap.String("receiverId", receiverID))
	return nil
}
