package usecase

import (
	"context"

	"ridemate/internal/identity/application/ports/in"
	"ridemate/internal/identity/application/ports/out"
	"ridemate/internal/identity/domain"
	"ridemate/internal/shared/logger"

	"golang.org/x/crypto/bcrypt"
)

// LoginService реализует LoginUseCase
type LoginService struct {
	accountRepo out.AccountRepository
	sessions    out.SessionStore
	log         *logger.Logger
}

// NewLoginService создает новый сервис входа
func NewLoginService(accountRepo out.AccountRepository, sessions out.SessionStore, log *logger.Logger) *LoginService {
	return &LoginService{
		accountRepo: accountRepo,
		sessions:    sessions,
		log:         log,
	}
}

// Execute проверяет учетные данные и устанавливает сессию.
// Любое несовпадение — один и тот же ErrInvalidCredentials.
func (s *LoginService) Execute(ctx context.Context, input in.LoginInput) (*domain.Account, error) {
	account, err := s.accountRepo.FindByEmail(ctx, input.Email)
	if err != nil || account == nil {
		return nil, domain.ErrInvalidCredentials
	}

	if err := bcrypt.CompareHashAndPassword([]byte(account.PasswordHash), []byte(input.Password)); err != nil {
		return nil, domain.ErrInvalidCredentials
	}

	s.sessions.Set(account)

	s.log.Info(logger.Entry{
		Action:    "account_logged_in",
		Message:   account.Email,
		AccountID: account.ID,
	})

	return account, nil
}

// LogoutService реализует LogoutUseCase
type LogoutService struct {
	sessions out.SessionStore
	log      *logger.Logger
}

// NewLogoutService создает новый сервис выхода
func NewLogoutService(sessions out.SessionStore, log *logger.Logger) *LogoutService {
	return &LogoutService{sessions: sessions, log: log}
}

// Execute сбрасывает сессию; повторный вызов безопасен.
func (s *LogoutService) Execute(ctx context.Context) error {
	s.sessions.Clear()
	s.log.Info(logger.Entry{Action: "account_logged_out", Message: "session cleared"})
	return nil
}
