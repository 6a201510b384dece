package repo

import (
	"context"
	"sync"

	"ridemate/internal/ride/domain"
	"ridemate/internal/shared/logger"
)

// RideMemRepository — in-memory каталог поездок.
// Поездки не удаляются, только меняются; порядок List — порядок Create.
type RideMemRepository struct {
	mu    sync.RWMutex
	order []string
	byID  map[string]*domain.Ride
	log   *logger.Logger
}

// NewRideMemRepository создает пустой каталог
func NewRideMemRepository(log *logger.Logger) *RideMemRepository {
	return &RideMemRepository{
		byID: make(map[string]*domain.Ride),
		log:  log,
	}
}

// Create добавляет поездку в каталог
func (r *RideMemRepository) Create(ctx context.Context, ride *domain.Ride) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	cp := copyRide(ride)
	r.byID[ride.ID] = cp
	r.order = append(r.order, ride.ID)
	return nil
}

// FindByID возвращает копию поездки
func (r *RideMemRepository) FindByID(ctx context.Context, id string) (*domain.Ride, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	ride, ok := r.byID[id]
	if !ok {
		return nil, domain.ErrRideNotFound
	}
	return copyRide(ride), nil
}

// List возвращает все поездки в порядке добавления
func (r *RideMemRepository) List(ctx context.Context) ([]domain.Ride, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	rides := make([]domain.Ride, 0, len(r.order))
	for _, id := range r.order {
		rides = append(rides, *copyRide(r.byID[id]))
	}
	return rides, nil
}

// Update заменяет состояние существующей поездки
func (r *RideMemRepository) Update(ctx context.Context, ride *domain.Ride) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, ok := r.byID[ride.ID]; !ok {
		return domain.ErrRideNotFound
	}
	r.byID[ride.ID] = copyRide(ride)
	return nil
}

// copyRide делает копию со своим слайсом пассажиров,
// чтобы вызывающие не делили память с каталогом
func copyRide(ride *domain.Ride) *domain.Ride {
	cp := *ride
	if ride.Passengers != nil {
		cp.Passengers = append(cp.Passengers[:0:0], ride.Passengers...)
	}
	return &cp
}
