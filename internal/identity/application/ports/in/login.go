package in

import (
	"context"

	"ridemate/internal/identity/domain"
)

// LoginInput — учетные данные для входа
type LoginInput struct {
	Email    string
	Password string
}

// LoginUseCase — вход по email (без учета регистра) и паролю.
// Успех устанавливает текущую сессию.
type LoginUseCase interface {
	Execute(ctx context.Context, input LoginInput) (*domain.Account, error)
}

// LogoutUseCase — сброс текущей сессии; идемпотентен.
type LogoutUseCase interface {
	Execute(ctx context.Context) error
}
