package in

import (
	"context"

	"ridemate/internal/geo/domain"
)

// ResolvePlaceUseCase — best-effort геокодирование для карты.
// viewKey идентифицирует просмотр: новый запрос с тем же ключом
// отменяет предыдущий (last-request-wins), отмененные запросы
// не доставляют результат. Любой сбой — nil, не ошибка: карта
// рисуется с fallback-центром.
type ResolvePlaceUseCase interface {
	Execute(ctx context.Context, viewKey, place string) *domain.Coordinate
}
