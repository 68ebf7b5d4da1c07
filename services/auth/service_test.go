package auth

import (
	"context"
	"testing"

	"fitbook/config"
	"fitbook/models"
	"fitbook/utils"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/mongo"
	"go.uber.org/zap"
	"golang.org/x/crypto/bcrypt"
)

type stubUserRepo struct {
	users map[string]*models.User
}

func (r *stubUserRepo) Create(_ context.Context, u *models.User) error {
	r.users[u.Email] = u
	return nil
}

func (r *stubUserRepo) GetByID(_ context.Context, id string) (*models.User, error) {
	for _, u := range r.users {
		if u.ID == id {
			return u, nil
		}
	}
	return nil, mongo.ErrNoDocuments
}

func (r *stubUserRepo) GetByEmail(_ context.Context, email string) (*models.User, error) {
	u, ok := r.users[email]
	if !ok {
		return nil, mongo.ErrNoDocuments
	}
	return u, nil
}

func (r *stubUserRepo) EnsureIndexes() error { return nil }

type stubTrainerRepo struct {
	trainers map[string]*models.Trainer
}

func (r *stubTrainerRepo) Create(_ context.Context, t *models.Trainer) error {
	r.trainers[t.Email] = t
	return nil
}

func (r *stubTrainerRepo) GetByID(_ context.Context, _ string) (*models.Trainer, error) {
	return nil, mongo.ErrNoDocuments
}

func (r *stubTrainerRepo) GetByEmail(_ context.Context, email string) (*models.Trainer, error) {
	t, ok := r.trainers[email]
	if !ok {
		return nil, mongo.ErrNoDocuments
	}
	return t, nil
}

func (r *stubTrainerRepo) SetKycStatus(_ context.Context, _, _ string, _ *models.KycDocs) error {
	return nil
}

func (r *stubTrainerRepo) GetSpecializationByID(_ context.Context, _ string) (*models.Specialization, error) {
	return nil, mongo.ErrNoDocuments
}

func (r *stubTrainerRepo) ListSpecializations(_ context.Context) ([]models.Specialization, error) {
	return nil, nil
}

func (r *stubTrainerRepo) EnsureIndexes() error { return nil }

func mustHash(t *testing.T, password string) string {
	t.Helper()
	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.MinCost)
	require.NoError(t, err)
	return string(hash)
}

func loginFixture(t *testing.T) *DefaultAuthService {
	t.Helper()
	config.AppConfig.JWTSecret = "test-secret"

	users := &stubUserRepo{users: map[string]*models.User{
		"jo@example.com": {
			ID:       "user-1",
			Email:    "jo@example.com",
			Password: mustHash(t, "correct-horse"),
		},
		"blocked@example.com": {
			ID:        "user-2",
			Email:     "blocked@example.com",
			Password:  mustHash(t, "correct-horse"),
			IsBlocked: true,
		},
	}}
	trainers := &stubTrainerRepo{trainers: map[string]*models.Trainer{
		"coach@example.com": {
			ID:       "trainer-1",
			Email:    "coach@example.com",
			Password: mustHash(t, "coach-pass"),
		},
	}}
	return NewDefaultAuthService(users, trainers, utils.LogEmailSender{}, zap.NewNop())
}

func TestLoginUser(t *testing.T) {
	svc := loginFixture(t)

	user, tokens, err := svc.LoginUser(context.Background(), "jo@example.com", "correct-horse")
	require.NoError(t, err)
	assert.Equal(t, "user-1", user.ID)
	require.NotNil(t, tokens)

	subject, role, err := utils.TokenClaims(tokens.AccessToken)
	require.NoError(t, err)
	assert.Equal(t, "user-1", subject)
	assert.Equal(t, RoleUser, role)
}

func TestLoginUserWrongPassword(t *testing.T) {
	svc := loginFixture(t)

	_, _, err := svc.LoginUser(context.Background(), "jo@example.com", "wrong")
	assert.ErrorIs(t, err, ErrInvalidCredentials)
}

func TestLoginUserUnknownEmail(t *testing.T) {
	svc := loginFixture(t)

	_, _, err := svc.LoginUser(context.Background(), "nobody@example.com", "whatever")
	assert.ErrorIs(t, err, ErrInvalidCredentials)
}

func TestLoginUserBlocked(t *testing.T) {
	svc := loginFixture(t)

	_, _, err := svc.LoginUser(context.Background(), "blocked@example.com", "correct-horse")
	assert.ErrorIs(t, err, ErrAccountBlocked)
}

func TestLoginTrainer(t *testing.T) {
	svc := loginFixture(t)

	trainer, tokens, err := svc.LoginTrainer(context.Background(), "coach@example.com", "coach-pass")
	require.NoError(t, err)
	assert.Equal(t, "trainer-1", trainer.ID)

	subject, role, err := utils.TokenClaims(tokens.AccessToken)
	require.NoError(t, err)
	assert.Equal(t, "trainer-1", subject)
	assert.Equal(t, RoleTrainer, role)
}

func TestRegisterUserRejectsKnownEmail(t *testing.T) {
	svc := loginFixture(t)

	err := svc.RegisterUser(context.Background(), RegisterInput{
		Name:     "Jo",
		Email:    "jo@example.com",
		Password: "irrelevant",
	})
	assert.ErrorIs(t, err, ErrEmailTaken)
}
