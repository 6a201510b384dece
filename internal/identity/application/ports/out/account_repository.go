package out

import (
	"context"

	"ridemate/internal/identity/domain"
)

// AccountRepository — хранилище аккаунтов.
// Поиск по email всегда выполняется без учета регистра.
type AccountRepository interface {
	Create(ctx context.Context, account *domain.Account) error
	FindByEmail(ctx context.Context, email string) (*domain.Account, error)
	FindByID(ctx context.Context, id string) (*domain.Account, error)
}
