package in

import (
	"context"

	"ridemate/internal/identity/domain"
)

// RegisterInput — входные данные регистрации.
// Формат email и длина пароля проверяются вызывающей стороной
// до обращения к Identity Store.
type RegisterInput struct {
	Name       string
	Email      string
	Password   string
	Department string
	Year       int
	RollNo     string
}

// RegisterUseCase — регистрация нового аккаунта.
// Успешная регистрация НЕ создает сессию.
type RegisterUseCase interface {
	Execute(ctx context.Context, input RegisterInput) (*domain.Account, error)
}
