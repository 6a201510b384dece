package in

import (
	"context"
	"time"

	identity "ridemate/internal/identity/domain"
	"ridemate/internal/ride/domain"
)

// SearchRidesInput — фильтры страницы поиска.
// Пустые поля не ограничивают выдачу.
type SearchRidesInput struct {
	WomenOnly   bool
	Origin      string     // подстрока, без учета регистра
	Destination string     // подстрока, без учета регистра
	Date        *time.Time // календарная дата отправления
}

// SearchRidesUseCase — список поездок в порядке добавления
type SearchRidesUseCase interface {
	Execute(ctx context.Context, input SearchRidesInput) ([]domain.Ride, error)
}

// GetRideUseCase — одна поездка по идентификатору
type GetRideUseCase interface {
	Execute(ctx context.Context, rideID string) (*domain.Ride, error)
}

// ProfileOutput — аккаунт и его поездки для страницы профиля
type ProfileOutput struct {
	Account      *identity.Account `json:"account"`
	OfferedRides []domain.Ride     `json:"offered_rides"`
	BookedRides  []domain.Ride     `json:"booked_rides"`
}

// GetProfileUseCase — профиль текущего аккаунта
type GetProfileUseCase interface {
	Execute(ctx context.Context, accountID string) (*ProfileOutput, error)
}

// DescribeRideUseCase — генерация описания поездки по маршруту.
// Никогда не возвращает ошибку внешнего сервиса: при любом сбое —
// фиксированная строка-заглушка.
type DescribeRideUseCase interface {
	Execute(ctx context.Context, origin, destination string) (string, error)
}
