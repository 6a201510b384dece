package domain

import (
	"time"

	identity "ridemate/internal/identity/domain"
)

// VehicleType — тип транспорта
type VehicleType string

const (
	VehicleCar  VehicleType = "car"
	VehicleBike VehicleType = "bike"
)

// IsValidVehicleType проверяет корректность типа транспорта
func IsValidVehicleType(v VehicleType) bool {
	switch v {
	case VehicleCar, VehicleBike:
		return true
	default:
		return false
	}
}

// RideStatus — статус поездки
type RideStatus string

const (
	StatusPending   RideStatus = "Pending"
	StatusAccepted  RideStatus = "Accepted"
	StatusCompleted RideStatus = "Completed"
	StatusCancelled RideStatus = "Cancelled"
)

// Ride представляет основную сущность поездки.
// Инвариант: после каждой booking-операции
// AvailableSeats + len(Passengers) == TotalSeats.
type Ride struct {
	ID             string             `json:"id"`
	Driver         identity.Account   `json:"driver"`
	Origin         string             `json:"origin"`
	Destination    string             `json:"destination"`
	DepartureTime  time.Time          `json:"departure_time"`
	TotalSeats     int                `json:"total_seats"`     // фиксируется при создании
	AvailableSeats int                `json:"available_seats"` // 0 <= a <= TotalSeats
	Price          float64            `json:"price"`           // за место
	Description    string             `json:"description"`
	VehicleType    VehicleType        `json:"vehicle_type"`
	WomenOnly      bool               `json:"women_only"`
	Passengers     []identity.Account `json:"passengers"` // упорядочен, без дубликатов
	Status         RideStatus         `json:"status"`
	CreatedAt      time.Time          `json:"created_at"`
}

// IsTerminal — завершенные и отмененные поездки больше не принимают бронирований
func (r *Ride) IsTerminal() bool {
	return r.Status == StatusCompleted || r.Status == StatusCancelled
}

// HasPassenger проверяет, есть ли аккаунт в списке пассажиров
func (r *Ride) HasPassenger(accountID string) bool {
	for _, p := range r.Passengers {
		if p.ID == accountID {
			return true
		}
	}
	return false
}

// SeatInvariantHolds проверяет учет мест
func (r *Ride) SeatInvariantHolds() bool {
	return r.AvailableSeats >= 0 &&
		r.AvailableSeats+len(r.Passengers) == r.TotalSeats
}
