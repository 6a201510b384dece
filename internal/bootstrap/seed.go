package bootstrap

import (
	"context"
	"fmt"
	"time"

	"golang.org/x/crypto/bcrypt"

	identityout "ridemate/internal/identity/application/ports/out"
	identitydomain "ridemate/internal/identity/domain"
	rideout "ridemate/internal/ride/application/ports/out"
	ridedomain "ridemate/internal/ride/domain"
	"ridemate/internal/shared/logger"
	"ridemate/internal/shared/utils"
)

// seedPassword — пароль всех демо-аккаунтов
const seedPassword = "password123"

// Seed наполняет память демо-аккаунтами и поездками, чтобы каталог
// не был пустым на первом запуске. Количество свободных мест всегда
// согласовано со списком пассажиров: a == total - len(passengers).
func Seed(
	ctx context.Context,
	accountRepo identityout.AccountRepository,
	rideRepo rideout.RideRepository,
	emailDomain string,
	log *logger.Logger,
) error {
	hash, err := bcrypt.GenerateFromPassword([]byte(seedPassword), bcrypt.DefaultCost)
	if err != nil {
		return fmt.Errorf("hash seed password: %w", err)
	}

	now := time.Now()
	// отправления — завтра утром, чтобы поездки не были "в прошлом"
	departure := time.Date(now.Year(), now.Month(), now.Day(), 8, 30, 0, 0, now.Location()).AddDate(0, 0, 1)

	mkAccount := func(name, prn, department string, year int, rating float64) identitydomain.Account {
		return identitydomain.Account{
			ID:           utils.NewUUID(),
			Name:         name,
			Email:        fmt.Sprintf("%s@%s", prn, emailDomain),
			AvatarURL:    identitydomain.NewAvatarURL(name),
			Rating:       rating,
			Department:   department,
			Year:         year,
			RollNo:       prn,
			IsVerified:   true,
			PasswordHash: string(hash),
			CreatedAt:    now,
		}
	}

	piyush := mkAccount("Piyush K", "1032230001", "Computer Science", 3, 4.8)
	rohan := mkAccount("Rohan Sharma", "1032230002", "Mechanical", 2, 4.5)
	priya := mkAccount("Priya Patel", "1032230003", "Design", 3, 4.9)

	for _, acc := range []identitydomain.Account{piyush, rohan, priya} {
		acc := acc
		if err := accountRepo.Create(ctx, &acc); err != nil {
			return fmt.Errorf("seed account %s: %w", acc.Name, err)
		}
	}

	rides := []ridedomain.Ride{
		{
			ID:             utils.NewUUID(),
			Driver:         piyush,
			Origin:         "Kothrud",
			Destination:    "MIT-WPU Campus",
			DepartureTime:  departure,
			TotalSeats:     4,
			AvailableSeats: 3, // одно место уже занято Priya
			Price:          50,
			Description:    "Daily commute from Kothrud, AC car, leaving sharp at 8:30.",
			VehicleType:    ridedomain.VehicleCar,
			Passengers:     []identitydomain.Account{priya},
			Status:         ridedomain.StatusAccepted,
			CreatedAt:      now,
		},
		{
			ID:             utils.NewUUID(),
			Driver:         rohan,
			Origin:         "Hinjewadi",
			Destination:    "MIT-WPU Campus",
			DepartureTime:  departure.Add(30 * time.Minute),
			TotalSeats:     1,
			AvailableSeats: 1,
			Price:          70,
			Description:    "Quick bike ride, helmet provided.",
			VehicleType:    ridedomain.VehicleBike,
			Passengers:     []identitydomain.Account{},
			Status:         ridedomain.StatusAccepted,
			CreatedAt:      now,
		},
		{
			ID:             utils.NewUUID(),
			Driver:         priya,
			Origin:         "Viman Nagar",
			Destination:    "MIT-WPU Campus",
			DepartureTime:  departure.Add(time.Hour),
			TotalSeats:     3,
			AvailableSeats: 3,
			Price:          60,
			Description:    "Women-only carpool from Viman Nagar, music and good vibes.",
			VehicleType:    ridedomain.VehicleCar,
			WomenOnly:      true,
			Passengers:     []identitydomain.Account{},
			Status:         ridedomain.StatusAccepted,
			CreatedAt:      now,
		},
	}

	for _, ride := range rides {
		ride := ride
		if err := rideRepo.Create(ctx, &ride); err != nil {
			return fmt.Errorf("seed ride %s: %w", ride.Origin, err)
		}
	}

	log.Info(logger.Entry{
		Action:  "seed_completed",
		Message: fmt.Sprintf("seeded %d accounts and %d rides", 3, len(rides)),
	})
	return nil
}
