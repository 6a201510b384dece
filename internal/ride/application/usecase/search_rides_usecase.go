package usecase

import (
	"context"
	"strings"

	"ridemate/internal/ride/application/ports/in"
	"ridemate/internal/ride/application/ports/out"
	"ridemate/internal/ride/domain"
	"ridemate/internal/shared/logger"
)

// SearchRidesService реализует SearchRidesUseCase
type SearchRidesService struct {
	rideRepo out.RideRepository
	log      *logger.Logger
}

// NewSearchRidesService создает новый сервис поиска
func NewSearchRidesService(rideRepo out.RideRepository, log *logger.Logger) *SearchRidesService {
	return &SearchRidesService{rideRepo: rideRepo, log: log}
}

// Execute возвращает поездки, подходящие под фильтры, в порядке добавления.
// Поиск только читает каталог: никакая выдача не мутирует места.
func (s *SearchRidesService) Execute(ctx context.Context, input in.SearchRidesInput) ([]domain.Ride, error) {
	all, err := s.rideRepo.List(ctx)
	if err != nil {
		return nil, err
	}

	filtered := make([]domain.Ride, 0, len(all))
	for _, ride := range all {
		if input.WomenOnly && !ride.WomenOnly {
			continue
		}
		if input.Origin != "" && !containsFold(ride.Origin, input.Origin) {
			continue
		}
		if input.Destination != "" && !containsFold(ride.Destination, input.Destination) {
			continue
		}
		if input.Date != nil {
			y1, m1, d1 := ride.DepartureTime.Date()
			y2, m2, d2 := input.Date.Date()
			if y1 != y2 || m1 != m2 || d1 != d2 {
				continue
			}
		}
		filtered = append(filtered, ride)
	}

	return filtered, nil
}

func containsFold(s, substr string) bool {
	return strings.Contains(strings.ToLower(s), strings.ToLower(substr))
}

// GetRideService реализует GetRideUseCase
type GetRideService struct {
	rideRepo out.RideRepository
}

// NewGetRideService создает новый сервис чтения поездки
func NewGetRideService(rideRepo out.RideRepository) *GetRideService {
	return &GetRideService{rideRepo: rideRepo}
}

// Execute возвращает поездку по идентификатору
func (s *GetRideService) Execute(ctx context.Context, rideID string) (*domain.Ride, error) {
	return s.rideRepo.FindByID(ctx, rideID)
}
