package out

import "ridemate/internal/identity/domain"

// SessionStore — текущая сессия процесса.
// В каждый момент аутентифицирован не более чем один аккаунт;
// отсутствие сессии означает, что закрытые страницы недоступны.
type SessionStore interface {
	Current() *domain.Account
	Set(account *domain.Account)
	Clear()
}
