package out_ws

import (
	"context"

	"ridemate/internal/ride/application/ports/out"
	"ridemate/internal/shared/logger"
	"ridemate/internal/shared/ws"
)

// WsBookingNotifier доставляет уведомления о бронированиях через WebSocket hub
type WsBookingNotifier struct {
	hub *ws.Hub
	log *logger.Logger
}

// NewWsBookingNotifier создает новый notifier
func NewWsBookingNotifier(hub *ws.Hub, log *logger.Logger) *WsBookingNotifier {
	return &WsBookingNotifier{hub: hub, log: log}
}

// NotifyDriver отправляет уведомление водителю, если тот онлайн.
// Водитель офлайн — не ошибка: уведомления не накапливаются.
func (n *WsBookingNotifier) NotifyDriver(ctx context.Context, driverID string, notification out.BookingNotification) error {
	if !n.hub.IsAccountConnected(driverID) {
		n.log.Debug(logger.Entry{
			Action:    "driver_offline",
			Message:   "booking notification skipped",
			AccountID: driverID,
			RideID:    notification.RideID,
		})
		return nil
	}
	return n.hub.SendToAccountJSON(driverID, notification)
}
