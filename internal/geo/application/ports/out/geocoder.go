package out

import (
	"context"

	"ridemate/internal/geo/domain"
)

// Geocoder — внешний поиск координат по свободному тексту.
// Без повторов; ошибки транспорта и пустая выдача равнозначны
// для вызывающего слоя.
type Geocoder interface {
	Resolve(ctx context.Context, place string) (*domain.Coordinate, error)
}
