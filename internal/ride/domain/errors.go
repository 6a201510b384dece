package domain

import "errors"

var (
	// ErrRideNotFound поездка не найдена
	ErrRideNotFound = errors.New("ride not found")

	// ErrSelfBooking водитель не может забронировать место в своей поездке
	ErrSelfBooking = errors.New("you cannot book a seat in your own ride")

	// ErrNoSeatsAvailable свободных мест не осталось
	ErrNoSeatsAvailable = errors.New("no seats available")

	// ErrRideClosed поездка завершена или отменена
	ErrRideClosed = errors.New("ride is no longer accepting bookings")

	// ErrInvalidVehicleType неподдерживаемый тип транспорта
	ErrInvalidVehicleType = errors.New("invalid vehicle type")

	// ErrInvalidSeatCount число мест вне диапазона 1–6
	ErrInvalidSeatCount = errors.New("seat count must be between 1 and 6")

	// ErrInvalidPrice отрицательная цена
	ErrInvalidPrice = errors.New("price must not be negative")

	// ErrDepartureInPast время отправления уже прошло
	ErrDepartureInPast = errors.New("departure time must be in the future")

	// ErrMissingRoute не указаны пункты отправления/назначения
	ErrMissingRoute = errors.New("origin and destination are required")
)
