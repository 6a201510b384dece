package repo

import (
	"context"
	"strings"
	"sync"

	"ridemate/internal/identity/domain"
	"ridemate/internal/shared/logger"
)

// AccountMemRepository — in-memory хранилище аккаунтов.
// Все состояние живет до перезапуска процесса; персистентности нет.
type AccountMemRepository struct {
	mu      sync.RWMutex
	byID    map[string]*domain.Account
	byEmail map[string]*domain.Account // ключ — email в нижнем регистре
	log     *logger.Logger
}

// NewAccountMemRepository создает пустое in-memory хранилище аккаунтов
func NewAccountMemRepository(log *logger.Logger) *AccountMemRepository {
	return &AccountMemRepository{
		byID:    make(map[string]*domain.Account),
		byEmail: make(map[string]*domain.Account),
		log:     log,
	}
}

// Create сохраняет аккаунт; email должен быть уникален без учета регистра
func (r *AccountMemRepository) Create(ctx context.Context, account *domain.Account) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	key := strings.ToLower(account.Email)
	if _, exists := r.byEmail[key]; exists {
		return domain.ErrDuplicateEmail
	}

	cp := *account
	r.byID[account.ID] = &cp
	r.byEmail[key] = &cp
	return nil
}

// FindByEmail ищет аккаунт по email без учета регистра
func (r *AccountMemRepository) FindByEmail(ctx context.Context, email string) (*domain.Account, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	account, ok := r.byEmail[strings.ToLower(email)]
	if !ok {
		return nil, domain.ErrAccountNotFound
	}
	cp := *account
	return &cp, nil
}

// FindByID ищет аккаунт по идентификатору
func (r *AccountMemRepository) FindByID(ctx context.Context, id string) (*domain.Account, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	account, ok := r.byID[id]
	if !ok {
		return nil, domain.ErrAccountNotFound
	}
	cp := *account
	return &cp, nil
}
