package scheduling

import (
	"context"
	"fmt"
	"math"
	"time"

	slotRepo "fitbook/database/repository/slot"
	trainerRepo "fitbook/database/repository/trainer"
	"fitbook/models"

	"go.mongodb.org/mongo-driver/mongo"
	"go.uber.org/zap"
)

// minimumSessionMinutes is the shortest slot a trainer may publish.
const minimumSessionMinutes = 30

// SlotService manages a trainer's published availability.
type SlotService interface {
	CreateSlots(ctx context.Context, input models.SlotInput, recurrence string) ([]models.Slot, error)
	Schedule(ctx context.Context, trainerID string) ([]models.Slot, error)
	DeleteSlot(ctx context.Context, slotID string) error
	DeleteExpired(ctx context.Context, asOf time.Time) (int64, error)
}

// DefaultSlotService is the production implementation of SlotService.
type DefaultSlotService struct {
	Slots    slotRepo.Repository
	Trainers trainerRepo.Repository
	Logger   *zap.Logger
}

// NewDefaultSlotService constructs a slot service around the given repos.
func NewDefaultSlotService(slots slotRepo.Repository, trainers trainerRepo.Repository, logger *zap.Logger) *DefaultSlotService {
	return &DefaultSlotService{Slots: slots, Trainers: trainers, Logger: logger}
}

// CreateSlots validates the input, expands the recurrence into per-day slots,
// checks every candidate against the trainer's published schedule and persists
// the whole batch. The batch is all-or-nothing: a single conflict rejects every
// expanded slot and leaves the schedule untouched.
func (s *DefaultSlotService) CreateSlots(ctx context.Context, input models.SlotInput, recurrence string) ([]models.Slot, error) {
	if err := validateInput(input); err != nil {
		return nil, err
	}
	if recurrence == "" {
		recurrence = RecurrenceSingle
	}

	if _, err := s.Trainers.GetSpecializationByID(ctx, input.SpecializationID); err != nil {
		if err == mongo.ErrNoDocuments {
			return nil, fmt.Errorf("specialization %s not found", input.SpecializationID)
		}
		return nil, err
	}

	dates, err := ExpandRecurrence(input.StartDate, recurrence)
	if err != nil {
		return nil, err
	}

	existing, err := s.Slots.GetByTrainerID(ctx, input.TrainerID)
	if err != nil {
		return nil, fmt.Errorf("loading schedule for trainer %s: %w", input.TrainerID, err)
	}

	candidates := make([]models.Slot, 0, len(dates))
	for _, date := range dates {
		slot := models.Slot{
			TrainerID:        input.TrainerID,
			SpecializationID: input.SpecializationID,
			StartDate:        date,
			StartTime:        input.StartTime,
			EndTime:          input.EndTime,
			IsSingleSession:  input.IsSingleSession,
			Price:            input.Price,
			Status:           models.SlotStatusPending,
		}
		// Multi-day packages only make sense for a non-repeating slot; a
		// recurrence already pins each expansion to one calendar day.
		if recurrence == RecurrenceSingle {
			slot.EndDate = input.EndDate
		}
		if hit := FindConflict(slot, existing); hit != nil {
			return nil, &TimeConflictError{ConflictingDate: hit.StartDate}
		}
		candidates = append(candidates, slot)
	}

	if len(candidates) == 1 {
		if err := s.Slots.Insert(ctx, &candidates[0]); err != nil {
			return nil, err
		}
	} else {
		inserted, err := s.Slots.InsertMany(ctx, candidates)
		if err != nil {
			return nil, err
		}
		candidates = inserted
	}

	s.Logger.Info("slots published",
		zap.String("trainerId", input.TrainerID),
		zap.String("recurrence", recurrence),
		zap.Int("count", len(candidates)))
	return candidates, nil
}

// Schedule lists every slot the trainer has published.
func (s *DefaultSlotService) Schedule(ctx context.Context, trainerID string) ([]models.Slot, error) {
	return s.Slots.GetByTrainerID(ctx, trainerID)
}

// DeleteSlot removes a slot permanently.
func (s *DefaultSlotService) DeleteSlot(ctx context.Context, slotID string) error {
	if err := s.Slots.Delete(ctx, slotID); err != nil {
		if err == mongo.ErrNoDocuments {
			return ErrSlotNotFound
		}
		return err
	}
	return nil
}

// DeleteExpired sweeps away unbooked slots whose start date is strictly before
// the given day. Booked slots are kept regardless of age.
func (s *DefaultSlotService) DeleteExpired(ctx context.Context, asOf time.Time) (int64, error) {
	removed, err := s.Slots.DeleteExpired(ctx, asOf.Format(models.DateLayout))
	if err != nil {
		return 0, err
	}
	if removed > 0 {
		s.Logger.Info("expired slots removed", zap.Int64("count", removed))
	}
	return removed, nil
}

func validateInput(input models.SlotInput) error {
	start := minutesOfDay(input.StartTime)
	end := minutesOfDay(input.EndTime)
	if start < 0 || end < 0 {
		return fmt.Errorf("times must use the %s format", models.TimeLayout)
	}
	if end <= start {
		return ErrInvalidRange
	}
	if end-start < minimumSessionMinutes {
		return ErrMinimumDuration
	}
	if input.Price < 0 || math.IsNaN(input.Price) || math.IsInf(input.Price, 0) {
		return ErrInvalidPrice
	}
	if input.EndDate != "" && input.EndDate < input.StartDate {
		return fmt.Errorf("end date %s precedes start date %s", input.EndDate, input.StartDate)
	}
	return nil
}
