package usecase

import (
	"context"
	"fmt"
	"time"

	"ridemate/internal/identity/application/ports/in"
	"ridemate/internal/identity/application/ports/out"
	"ridemate/internal/identity/domain"
	"ridemate/internal/shared/logger"
	"ridemate/internal/shared/utils"

	"golang.org/x/crypto/bcrypt"
)

// RegisterService реализует RegisterUseCase
type RegisterService struct {
	accountRepo out.AccountRepository
	log         *logger.Logger
}

// NewRegisterService создает новый сервис регистрации
func NewRegisterService(accountRepo out.AccountRepository, log *logger.Logger) *RegisterService {
	return &RegisterService{
		accountRepo: accountRepo,
		log:         log,
	}
}

// Execute создает новый аккаунт.
// Формат email и пароля — precondition вызывающей стороны;
// здесь проверяется только уникальность email.
func (s *RegisterService) Execute(ctx context.Context, input in.RegisterInput) (*domain.Account, error) {
	// Проверка уникальности email (без учета регистра)
	existing, err := s.accountRepo.FindByEmail(ctx, input.Email)
	if err == nil && existing != nil {
		return nil, domain.ErrDuplicateEmail
	}

	passwordHash, err := bcrypt.GenerateFromPassword([]byte(input.Password), bcrypt.DefaultCost)
	if err != nil {
		s.log.Error(logger.Entry{
			Action:  "hash_password_failed",
			Message: err.Error(),
			Error:   &logger.ErrObj{Msg: err.Error()},
		})
		return nil, fmt.Errorf("hash password: %w", err)
	}

	account := &domain.Account{
		ID:           utils.NewUUID(),
		Name:         input.Name,
		Email:        input.Email,
		AvatarURL:    domain.NewAvatarURL(input.Name),
		Rating:       0,
		Department:   input.Department,
		Year:         input.Year,
		RollNo:       input.RollNo,
		IsVerified:   false,
		PasswordHash: string(passwordHash),
		CreatedAt:    time.Now().UTC(),
	}

	if err := s.accountRepo.Create(ctx, account); err != nil {
		s.log.Error(logger.Entry{
			Action:  "create_account_failed",
			Message: err.Error(),
			Error:   &logger.ErrObj{Msg: err.Error()},
			Additional: map[string]any{
				"email": input.Email,
			},
		})
		return nil, fmt.Errorf("create account: %w", err)
	}

	s.log.Info(logger.Entry{
		Action:    "account_registered",
		Message:   fmt.Sprintf("account %s registered", account.Email),
		AccountID: account.ID,
		Additional: map[string]any{
			"department": account.Department,
			"year":       account.Year,
		},
	})

	// Новый аккаунт НЕ логинится автоматически
	return account, nil
}
