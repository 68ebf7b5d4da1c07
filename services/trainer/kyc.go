package trainer

import (
	"context"
	"errors"
	"fmt"
	"time"

	trainerRepo "fitbook/database/repository/trainer"
	"fitbook/models"
	"fitbook/services/storage"

	"go.mongodb.org/mongo-driver/mongo"
	"go.uber.org/zap"
)

// ErrTrainerNotFound is returned when a trainer id resolves to nothing.
var ErrTrainerNotFound = errors.New("trainer not found")

// KycUpload carries one verification document to store.
type KycUpload struct {
	Filename string
	Data     []byte
}

// KycSubmission is the full set of documents a trainer submits for review.
type KycSubmission struct {
	ProfileImage *KycUpload
	IDFront      *KycUpload
	IDBack       *KycUpload
	Certificate  *KycUpload
}

// Service manages trainer verification.
type Service interface {
	SubmitKyc(ctx context.Context, trainerID string, sub KycSubmission) (*models.Trainer, error)
	KycStatus(ctx context.Context, trainerID string) (string, error)
	ReviewKyc(ctx context.Context, trainerID string, approve bool) error
	Profile(ctx context.Context, trainerID string) (*models.Trainer, error)
	Specializations(ctx context.Context) ([]models.Specialization, error)
}

// DefaultTrainerService is the production implementation of Service.
type DefaultTrainerService struct {
	Repo    trainerRepo.Repository
	Storage storage.Service
	Logger  *zap.Logger
}

// NewDefaultTrainerService wires the trainer service dependencies.
func NewDefaultTrainerService(repo trainerRepo.Repository, store storage.Service, logger *zap.Logger) *DefaultTrainerService {
	return &DefaultTrainerService{Repo: repo, Storage: store, Logger: logger}
}

// SubmitKyc uploads the documents and moves the trainer to "submitted".
func (s *DefaultTrainerService) SubmitKyc(ctx context.Context, trainerID string, sub KycSubmission) (*models.Trainer, error) {
	if _, err := s.Repo.GetByID(ctx, trainerID); err != nil {
		if err == mongo.ErrNoDocuments {
			return nil, ErrTrainerNotFound
		}
		return nil, err
	}

	docs := &models.KycDocs{SubmittedAt: time.Now()}
	uploads := []struct {
		upload *KycUpload
		dest   *string
	}{
		{sub.ProfileImage, &docs.ProfileImage},
		{sub.IDFront, &docs.IDFront},
		{sub.IDBack, &docs.IDBack},
		{sub.Certificate, &docs.Certificate},
	}
	folder := fmt.Sprintf("kyc/%s", trainerID)
	for _, u := range uploads {
		if u.upload == nil {
			continue
		}
		url, err := s.Storage.Upload(ctx, u.upload.Data, folder, u.upload.Filename)
		if err != nil {
			return nil, err
		}
		*u.dest = url
	}

	if err := s.Repo.SetKycStatus(ctx, trainerID, models.KycStatusSubmitted, docs); err != nil {
		return nil, err
	}
	s.Logger.Info("KYC documents submitted", zap.String("trainerId", trainerID))
	return s.Repo.GetByID(ctx, trainerID)
}

func (s *DefaultTrainerService) KycStatus(ctx context.Context, trainerID string) (string, error) {
	t, err := s.Repo.GetByID(ctx, trainerID)
	if err != nil {
		if err == mongo.ErrNoDocuments {
			return "", ErrTrainerNotFound
		}
		return "", err
	}
	return t.KycStatus, nil
}

// ReviewKyc records the moderation verdict on a submitted application.
func (s *DefaultTrainerService) ReviewKyc(ctx context.Context, trainerID string, approve bool) error {
	status := models.KycStatusRejected
	if approve {
		status = models.KycStatusApproved
	}
	if err := s.Repo.SetKycStatus(ctx, trainerID, status, nil); err != nil {
		if err == mongo.ErrNoDocuments {
			return ErrTrainerNotFound
		}
		return err
	}
	s.Logger.Info("KYC reviewed",
		zap.String("trainerId", trainerID),
		zap.String("status", status))
	return nil
}

func (s *DefaultTrainerService) Profile(ctx context.Context, trainerID string) (*models.Trainer, error) {
	t, err := s.Repo.GetByID(ctx, trainerID)
	if err != nil {
		if err == mongo.ErrNoDocuments {
			return nil, ErrTrainerNotFound
		}
		return nil, err
	}
	return t, nil
}

func (s *DefaultTrainerService) Specializations(ctx context.Context) ([]models.Specialization, error) {
	return s.Repo.ListSpecializations(ctx)
}
