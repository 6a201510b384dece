package in

import (
	"context"
	"time"

	"ridemate/internal/ride/domain"
)

// OfferRideInput — данные формы "Offer a Ride"
type OfferRideInput struct {
	DriverID      string
	Origin        string
	Destination   string
	DepartureTime time.Time
	TotalSeats    int
	Price         float64
	Description   string
	VehicleType   domain.VehicleType
	WomenOnly     bool
}

// OfferRideUseCase — публикация новой поездки.
// Предложения принимаются автоматически: статус сразу Accepted,
// свободных мест столько же, сколько всего, пассажиров нет.
type OfferRideUseCase interface {
	Execute(ctx context.Context, input OfferRideInput) (*domain.Ride, error)
}
