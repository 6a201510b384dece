package domain

import (
	identity "ridemate/internal/identity/domain"
)

// RequestBooking — единственная легальная мутация booking-состояния поездки.
// Никаких побочных эффектов кроме изменения самой структуры: сохранение
// и уведомления — забота вызывающего слоя.
//
// Повторный запрос от уже записанного пассажира — идемпотентный успех
// без мутации (подтверждение существующего бронирования), даже если
// свободных мест уже нет.
func (r *Ride) RequestBooking(requester identity.Account) error {
	if requester.ID == r.Driver.ID {
		return ErrSelfBooking
	}
	if r.IsTerminal() {
		return ErrRideClosed
	}
	if r.HasPassenger(requester.ID) {
		return nil
	}
	if r.AvailableSeats <= 0 {
		return ErrNoSeatsAvailable
	}

	r.Passengers = append(r.Passengers, requester)
	r.AvailableSeats--
	// Страховка от ухода в минус при будущем многописательном сценарии
	if r.AvailableSeats < 0 {
		r.AvailableSeats = 0
	}
	return nil
}
