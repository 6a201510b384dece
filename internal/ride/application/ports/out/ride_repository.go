package out

import (
	"context"

	"ridemate/internal/ride/domain"
)

// RideRepository — каталог поездок.
// List возвращает поездки в порядке добавления; порядок показа —
// забота презентационного слоя и не должен мутировать состояние.
type RideRepository interface {
	Create(ctx context.Context, ride *domain.Ride) error
	FindByID(ctx context.Context, id string) (*domain.Ride, error)
	List(ctx context.Context) ([]domain.Ride, error)
	Update(ctx context.Context, ride *domain.Ride) error
}
