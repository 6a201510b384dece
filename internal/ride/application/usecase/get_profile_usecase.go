package usecase

import (
	"context"
	"fmt"

	identityout "ridemate/internal/identity/application/ports/out"
	"ridemate/internal/ride/application/ports/in"
	"ridemate/internal/ride/application/ports/out"
	"ridemate/internal/ride/domain"
)

// GetProfileService реализует GetProfileUseCase
type GetProfileService struct {
	rideRepo    out.RideRepository
	accountRepo identityout.AccountRepository
}

// NewGetProfileService создает новый сервис профиля
func NewGetProfileService(rideRepo out.RideRepository, accountRepo identityout.AccountRepository) *GetProfileService {
	return &GetProfileService{rideRepo: rideRepo, accountRepo: accountRepo}
}

// Execute собирает профиль: аккаунт, предложенные и забронированные поездки
func (s *GetProfileService) Execute(ctx context.Context, accountID string) (*in.ProfileOutput, error) {
	account, err := s.accountRepo.FindByID(ctx, accountID)
	if err != nil {
		return nil, fmt.Errorf("find account: %w", err)
	}

	all, err := s.rideRepo.List(ctx)
	if err != nil {
		return nil, err
	}

	offered := make([]domain.Ride, 0)
	booked := make([]domain.Ride, 0)
	for _, ride := range all {
		switch {
		case ride.Driver.ID == accountID:
			offered = append(offered, ride)
		case ride.HasPassenger(accountID):
			booked = append(booked, ride)
		}
	}

	return &in.ProfileOutput{
		Account:      account,
		OfferedRides: offered,
		BookedRides:  booked,
	}, nil
}
