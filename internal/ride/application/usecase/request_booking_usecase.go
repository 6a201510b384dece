package usecase

import (
	"context"
	"fmt"

	identityout "ridemate/internal/identity/application/ports/out"
	"ridemate/internal/ride/application/ports/in"
	"ridemate/internal/ride/application/ports/out"
	"ridemate/internal/ride/domain"
	"ridemate/internal/shared/logger"
)

// RequestBookingService реализует RequestBookingUseCase.
// Сама state machine живет в domain.Ride.RequestBooking; здесь —
// загрузка, сохранение и уведомление водителя.
type RequestBookingService struct {
	rideRepo    out.RideRepository
	accountRepo identityout.AccountRepository
	notifier    out.BookingNotifier
	log         *logger.Logger
}

// NewRequestBookingService создает новый сервис бронирования
func NewRequestBookingService(
	rideRepo out.RideRepository,
	accountRepo identityout.AccountRepository,
	notifier out.BookingNotifier,
	log *logger.Logger,
) *RequestBookingService {
	return &RequestBookingService{
		rideRepo:    rideRepo,
		accountRepo: accountRepo,
		notifier:    notifier,
		log:         log,
	}
}

// Execute выполняет бронирование места
func (s *RequestBookingService) Execute(ctx context.Context, input in.RequestBookingInput) (*domain.Ride, error) {
	ride, err := s.rideRepo.FindByID(ctx, input.RideID)
	if err != nil {
		return nil, err
	}

	requester, err := s.accountRepo.FindByID(ctx, input.RequesterID)
	if err != nil {
		return nil, fmt.Errorf("find requester: %w", err)
	}

	alreadyBooked := ride.HasPassenger(requester.ID)

	if err := ride.RequestBooking(*requester); err != nil {
		s.log.Info(logger.Entry{
			Action:    "booking_rejected",
			Message:   err.Error(),
			RideID:    ride.ID,
			AccountID: requester.ID,
		})
		return nil, err
	}

	// Идемпотентный повтор: состояние не менялось, сохранять нечего
	if alreadyBooked {
		return ride, nil
	}

	if err := s.rideRepo.Update(ctx, ride); err != nil {
		s.log.Error(logger.Entry{
			Action:  "save_booking_failed",
			Message: err.Error(),
			RideID:  ride.ID,
			Error:   &logger.ErrObj{Msg: err.Error()},
		})
		return nil, fmt.Errorf("save booking: %w", err)
	}

	s.log.Info(logger.Entry{
		Action:    "booking_requested",
		Message:   fmt.Sprintf("%s booked a seat", requester.Name),
		RideID:    ride.ID,
		AccountID: requester.ID,
		Additional: map[string]any{
			"available_seats": ride.AvailableSeats,
			"passengers":      len(ride.Passengers),
		},
	})

	// Уведомляем водителя; ошибка доставки бронирование не отменяет
	notification := out.BookingNotification{
		Type:          "booking_requested",
		RideID:        ride.ID,
		PassengerID:   requester.ID,
		PassengerName: requester.Name,
		Message:       fmt.Sprintf("%s requested to book a seat on your ride", requester.Name),
	}
	if err := s.notifier.NotifyDriver(ctx, ride.Driver.ID, notification); err != nil {
		s.log.Error(logger.Entry{
			Action:  "notify_driver_failed",
			Message: err.Error(),
			RideID:  ride.ID,
			Error:   &logger.ErrObj{Msg: err.Error()},
		})
	}

	return ride, nil
}
