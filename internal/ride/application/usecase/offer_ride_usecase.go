package usecase

import (
	"context"
	"fmt"
	"strings"
	"time"

	identityout "ridemate/internal/identity/application/ports/out"
	"ridemate/internal/ride/application/ports/in"
	"ridemate/internal/ride/application/ports/out"
	"ridemate/internal/ride/domain"
	"ridemate/internal/shared/logger"
	"ridemate/internal/shared/utils"
)

const (
	minSeats = 1
	maxSeats = 6
)

// OfferRideService реализует OfferRideUseCase
type OfferRideService struct {
	rideRepo    out.RideRepository
	accountRepo identityout.AccountRepository
	log         *logger.Logger
}

// NewOfferRideService создает новый сервис публикации поездки
func NewOfferRideService(
	rideRepo out.RideRepository,
	accountRepo identityout.AccountRepository,
	log *logger.Logger,
) *OfferRideService {
	return &OfferRideService{
		rideRepo:    rideRepo,
		accountRepo: accountRepo,
		log:         log,
	}
}

// Execute публикует новую поездку
func (s *OfferRideService) Execute(ctx context.Context, input in.OfferRideInput) (*domain.Ride, error) {
	if strings.TrimSpace(input.Origin) == "" || strings.TrimSpace(input.Destination) == "" {
		return nil, domain.ErrMissingRoute
	}
	if !domain.IsValidVehicleType(input.VehicleType) {
		return nil, domain.ErrInvalidVehicleType
	}
	if input.TotalSeats < minSeats || input.TotalSeats > maxSeats {
		return nil, domain.ErrInvalidSeatCount
	}
	if input.Price < 0 {
		return nil, domain.ErrInvalidPrice
	}
	if !input.DepartureTime.After(time.Now()) {
		return nil, domain.ErrDepartureInPast
	}

	driver, err := s.accountRepo.FindByID(ctx, input.DriverID)
	if err != nil {
		return nil, fmt.Errorf("find driver: %w", err)
	}

	// Предложения принимаются автоматически — модерации нет
	ride := &domain.Ride{
		ID:             utils.NewUUID(),
		Driver:         *driver,
		Origin:         strings.TrimSpace(input.Origin),
		Destination:    strings.TrimSpace(input.Destination),
		DepartureTime:  input.DepartureTime,
		TotalSeats:     input.TotalSeats,
		AvailableSeats: input.TotalSeats,
		Price:          input.Price,
		Description:    input.Description,
		VehicleType:    input.VehicleType,
		WomenOnly:      input.WomenOnly,
		Passengers:     nil,
		Status:         domain.StatusAccepted,
		CreatedAt:      time.Now().UTC(),
	}

	if err := s.rideRepo.Create(ctx, ride); err != nil {
		s.log.Error(logger.Entry{
			Action:  "create_ride_failed",
			Message: err.Error(),
			Error:   &logger.ErrObj{Msg: err.Error()},
			Additional: map[string]any{
				"driver_id": input.DriverID,
			},
		})
		return nil, fmt.Errorf("create ride: %w", err)
	}

	s.log.Info(logger.Entry{
		Action:    "ride_offered",
		Message:   fmt.Sprintf("%s to %s", ride.Origin, ride.Destination),
		RideID:    ride.ID,
		AccountID: driver.ID,
		Additional: map[string]any{
			"total_seats":  ride.TotalSeats,
			"price":        ride.Price,
			"vehicle_type": ride.VehicleType,
			"women_only":   ride.WomenOnly,
		},
	})

	return ride, nil
}
