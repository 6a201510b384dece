package repo

import (
	"sync"

	"ridemate/internal/identity/domain"
)

// SessionMemStore — единственная текущая сессия процесса
type SessionMemStore struct {
	mu      sync.RWMutex
	current *domain.Account
}

// NewSessionMemStore создает пустую сессию (никто не аутентифицирован)
func NewSessionMemStore() *SessionMemStore {
	return &SessionMemStore{}
}

// Current возвращает текущий аккаунт или nil
func (s *SessionMemStore) Current() *domain.Account {
	s.mu.RLock()
	defer s.mu.RUnlock()
	if s.current == nil {
		return nil
	}
	cp := *s.current
	return &cp
}

// Set делает аккаунт текущим, вытесняя предыдущий
func (s *SessionMemStore) Set(account *domain.Account) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if account == nil {
		s.current = nil
		return
	}
	cp := *account
	s.current = &cp
}

// Clear сбрасывает сессию; идемпотентен
func (s *SessionMemStore) Clear() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.current = nil
}
