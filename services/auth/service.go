package auth

import (
	"context"
	"errors"
	"fmt"
	"time"

	trainerRepo "fitbook/database/repository/trainer"
	userRepo "fitbook/database/repository/user"
	"fitbook/models"
	"fitbook/utils"

	"go.mongodb.org/mongo-driver/mongo"
	"go.uber.org/zap"
	"golang.org/x/crypto/bcrypt"
)

// Roles embedded in issued tokens. Admin tokens are minted out of band for
// moderation; registration only ever issues the user and trainer roles.
const (
	RoleUser    = "user"
	RoleTrainer = "trainer"
	RoleAdmin   = "admin"
)

const (
	accessTokenTTL  = time.Hour
	refreshTokenTTL = 7 * 24 * time.Hour
	otpLength       = 4
)

var (
	// ErrEmailTaken is returned when registering an already-known email.
	ErrEmailTaken = errors.New("email is already registered")
	// ErrInvalidCredentials is returned on a failed login.
	ErrInvalidCredentials = errors.New("invalid email or password")
	// ErrInvalidOTP is returned when the provided OTP is wrong or expired.
	ErrInvalidOTP = errors.New("invalid or expired OTP")
	// ErrAccountBlocked is returned when a blocked account tries to log in.
	ErrAccountBlocked = errors.New("account is blocked")
)

// RegisterInput is the payload for both user and trainer registration.
type RegisterInput struct {
	Name            string   `json:"name" binding:"required"`
	Email           string   `json:"email" binding:"required,email"`
	Password        string   `json:"password" binding:"required,min=8"`
	Phone           string   `json:"phone"`
	Specializations []string `json:"specializations"` // trainers only
}

// TokenPair is the result of a successful login or verification.
type TokenPair struct {
	AccessToken  string `json:"accessToken"`
	RefreshToken string `json:"refreshToken"`
}

// Service handles OTP-gated registration and password login for users and
// trainers.
type Service interface {
	RegisterUser(ctx context.Context, in RegisterInput) error
	VerifyUser(ctx context.Context, in RegisterInput, otp string) (*models.User, *TokenPair, error)
	LoginUser(ctx context.Context, email, password string) (*models.User, *TokenPair, error)
	RegisterTrainer(ctx context.Context, in RegisterInput) error
	VerifyTrainer(ctx context.Context, in RegisterInput, otp string) (*models.Trainer, *TokenPair, error)
	LoginTrainer(ctx context.Context, email, password string) (*models.Trainer, *TokenPair, error)
}

// DefaultAuthService is the production implementation of Service.
type DefaultAuthService struct {
	Users    userRepo.Repository
	Trainers trainerRepo.Repository
	Email    utils.EmailSender
	Logger   *zap.Logger
}

// NewDefaultAuthService wires the auth service dependencies.
func NewDefaultAuthService(users userRepo.Repository, trainers trainerRepo.Repository, email utils.EmailSender, logger *zap.Logger) *DefaultAuthService {
	return &DefaultAuthService{Users: users, Trainers: trainers, Email: email, Logger: logger}
}

// RegisterUser starts a user signup by mailing an OTP. The account is only
// created once VerifyUser succeeds.
func (s *DefaultAuthService) RegisterUser(ctx context.Context, in RegisterInput) error {
	if _, err := s.Users.GetByEmail(ctx, in.Email); err == nil {
		return ErrEmailTaken
	} else if err != mongo.ErrNoDocuments {
		return err
	}
	return s.sendOTP(ctx, in.Email)
}

// VerifyUser checks the OTP and creates the account.
func (s *DefaultAuthService) VerifyUser(ctx context.Context, in RegisterInput, otp string) (*models.User, *TokenPair, error) {
	if err := utils.VerifyOTPRecord(ctx, in.Email, otp); err != nil {
		return nil, nil, ErrInvalidOTP
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(in.Password), bcrypt.DefaultCost)
	if err != nil {
		return nil, nil, fmt.Errorf("hashing password: %w", err)
	}
	user := &models.User{
		Name:     in.Name,
		Email:    in.Email,
		Password: string(hash),
		Phone:    in.Phone,
	}
	if err := s.Users.Create(ctx, user); err != nil {
		return nil, nil, err
	}

	tokens, err := issueTokens(user.ID, RoleUser)
	if err != nil {
		return nil, nil, err
	}
	s.Logger.Info("user registered", zap.String("userId", user.ID))
	return user, tokens, nil
}

// LoginUser authenticates a user by email and password.
func (s *DefaultAuthService) LoginUser(ctx context.Context, email, password string) (*models.User, *TokenPair, error) {
	user, err := s.Users.GetByEmail(ctx, email)
	if err != nil {
		if err == mongo.ErrNoDocuments {
			return nil, nil, ErrInvalidCredentials
		}
		return nil, nil, err
	}
	if user.IsBlocked {
		return nil, nil, ErrAccountBlocked
	}
	if bcrypt.CompareHashAndPassword([]byte(user.Password), []byte(password)) != nil {
		return nil, nil, ErrInvalidCredentials
	}

	tokens, err := issueTokens(user.ID, RoleUser)
	if err != nil {
		return nil, nil, err
	}
	return user, tokens, nil
}

// RegisterTrainer starts a trainer signup by mailing an OTP.
func (s *DefaultAuthService) RegisterTrainer(ctx context.Context, in RegisterInput) error {
	if _, err := s.Trainers.GetByEmail(ctx, in.Email); err == nil {
		return ErrEmailTaken
	} else if err != mongo.ErrNoDocuments {
		return err
	}
	return s.sendOTP(ctx, in.Email)
}

// VerifyTrainer checks the OTP and creates the trainer account with KYC
// pending.
func (s *DefaultAuthService) VerifyTrainer(ctx context.Context, in RegisterInput, otp string) (*models.Trainer, *TokenPair, error) {
	if err := utils.VerifyOTPRecord(ctx, in.Email, otp); err != nil {
		return nil, nil, ErrInvalidOTP
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(in.Password), bcrypt.DefaultCost)
	if err != nil {
		return nil, nil, fmt.Errorf("hashing password: %w", err)
	}
	trainer := &models.Trainer{
		Name:            in.Name,
		Email:           in.Email,
		Password:        string(hash),
		Phone:           in.Phone,
		Specializations: in.Specializations,
	}
	if err := s.Trainers.Create(ctx, trainer); err != nil {
		return nil, nil, err
	}

	tokens, err := issueTokens(trainer.ID, RoleTrainer)
	if err != nil {
		return nil, nil, err
	}
	s.Logger.Info("trainer registered", zap.String("trainerId", trainer.ID))
	return trainer, tokens, nil
}

// LoginTrainer authenticates a trainer by email and password.
func (s *DefaultAuthService) LoginTrainer(ctx context.Context, email, password string) (*models.Trainer, *TokenPair, error) {
	trainer, err := s.Trainers.GetByEmail(ctx, email)
	if err != nil {
		if err == mongo.ErrNoDocuments {
			return nil, nil, ErrInvalidCredentials
		}
		return nil, nil, err
	}
	if trainer.IsBlocked {
		return nil, nil, ErrAccountBlocked
	}
	if bcrypt.CompareHashAndPassword([]byte(trainer.Password), []byte(password)) != nil {
		return nil, nil, ErrInvalidCredentials
	}

	tokens, err := issueTokens(trainer.ID, RoleTrainer)
	if err != nil {
		return nil, nil, err
	}
	return trainer, tokens, nil
}

func (s *DefaultAuthService) sendOTP(ctx context.Context, email string) error {
	otp, err := utils.GenerateSecureOTP(otpLength)
	if err != nil {
		return err
	}
	if err := utils.StoreOTP(ctx, email, otp); err != nil {
		return err
	}
	body := fmt.Sprintf("Your verification code is %s. It expires in 1 minute.", otp)
	if err := s.Email.Send(email, "Verify your email", body); err != nil {
		s.Logger.Error("failed to send OTP email", zap.String("email", email), zap.Error(err))
		return fmt.Errorf("failed to send OTP")
	}
	return nil
}

func issueTokens(subject, role string) (*TokenPair, error) {
	access, err := utils.GenerateToken(subject, role, accessTokenTTL)
	if err != nil {
		return nil, err
	}
	refresh, err := utils.GenerateToken(subject, role, refreshTokenTTL)
	if err != nil {
		return nil, err
	}
	return &TokenPair{AccessToken: access, RefreshToken: refresh}, nil
}
