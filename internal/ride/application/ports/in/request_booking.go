package in

import (
	"context"

	"ridemate/internal/ride/domain"
)

// RequestBookingInput — запрос на бронирование места
type RequestBookingInput struct {
	RideID      string
	RequesterID string
}

// RequestBookingUseCase — бронирование места в поездке.
// Ошибки терминальны для вызова: повтор — только новое явное
// действие пользователя.
type RequestBookingUseCase interface {
	Execute(ctx context.Context, input RequestBookingInput) (*domain.Ride, error)
}
