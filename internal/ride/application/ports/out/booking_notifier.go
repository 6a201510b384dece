package out

import "context"

// BookingNotification — уведомление о новом бронировании
type BookingNotification struct {
	Type          string `json:"type"` // booking_requested
	RideID        string `json:"ride_id"`
	PassengerID   string `json:"passenger_id"`
	PassengerName string `json:"passenger_name"`
	Message       string `json:"message"`
}

// BookingNotifier — явный механизм оповещения вместо реактивного
// состояния UI: водитель узнает о бронировании, не опрашивая каталог.
// Доставка best-effort: ошибка уведомления не откатывает бронирование.
type BookingNotifier interface {
	NotifyDriver(ctx context.Context, driverID string, n BookingNotification) error
}
