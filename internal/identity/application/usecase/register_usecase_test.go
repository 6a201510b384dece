package usecase

import (
	"context"
	"io"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"

	"ridemate/internal/identity/application/ports/in"
	"ridemate/internal/identity/domain"
	"ridemate/internal/shared/logger"
)

func testLogger() *logger.Logger {
	return logger.NewLoggerWithOptions("test", "ERROR", io.Discard, io.Discard)
}

type fakeAccountRepo struct {
	byEmail map[string]*domain.Account
	byID    map[string]*domain.Account
}

func newFakeAccountRepo() *fakeAccountRepo {
	return &fakeAccountRepo{
		byEmail: make(map[string]*domain.Account),
		byID:    make(map[string]*domain.Account),
	}
}

func (r *fakeAccountRepo) Create(ctx context.Context, account *domain.Account) error {
	r.byEmail[account.Email] = account
	r.byID[account.ID] = account
	return nil
}

func (r *fakeAccountRepo) FindByEmail(ctx context.Context, email string) (*domain.Account, error) {
	acc, ok := r.byEmail[email]
	if !ok {
		return nil, domain.ErrAccountNotFound
	}
	return acc, nil
}

func (r *fakeAccountRepo) FindByID(ctx context.Context, id string) (*domain.Account, error) {
	acc, ok := r.byID[id]
	if !ok {
		return nil, domain.ErrAccountNotFound
	}
	return acc, nil
}

func registerInput() in.RegisterInput {
	return in.RegisterInput{
		Name:       "Asha Kulkarni",
		Email:      "1032230010@mitwpu.edu.in",
		Password:   "secret123",
		Department: "Computer Science",
		Year:       2,
		RollNo:     "1032230010",
	}
}

func TestRegister_Execute_Success(t *testing.T) {
	repo := newFakeAccountRepo()
	svc := NewRegisterService(repo, testLogger())

	account, err := svc.Execute(context.Background(), registerInput())

	require.NoError(t, err)
	assert.NotEmpty(t, account.ID)
	assert.Equal(t, "1032230010", account.RollNo)
	assert.False(t, account.IsVerified)
	assert.Zero(t, account.Rating)
	assert.Contains(t, account.AvatarURL, "dicebear")

	// пароль хранится только как bcrypt-хеш
	assert.NotContains(t, account.PasswordHash, "secret123")
	require.NoError(t, bcrypt.CompareHashAndPassword([]byte(account.PasswordHash), []byte("secret123")))
}

func TestRegister_Execute_DuplicateEmail(t *testing.T) {
	repo := newFakeAccountRepo()
	svc := NewRegisterService(repo, testLogger())

	_, err := svc.Execute(context.Background(), registerInput())
	require.NoError(t, err)

	_, err = svc.Execute(context.Background(), registerInput())
	require.ErrorIs(t, err, domain.ErrDuplicateEmail)
	assert.Len(t, repo.byID, 1)
}
