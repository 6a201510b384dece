package domain

import (
	"errors"
	"fmt"
)

// ErrInvalidCoordinates возвращается при невалидных координатах
var ErrInvalidCoordinates = errors.New("invalid coordinates")

// Coordinate представляет географическую точку
type Coordinate struct {
	Latitude  float64 `json:"latitude"`
	Longitude float64 `json:"longitude"`
}

// ValidateCoordinates проверяет корректность координат
func ValidateCoordinates(lat, lng float64) error {
	if lat < -90 || lat > 90 {
		return fmt.Errorf("%w: latitude must be between -90 and 90", ErrInvalidCoordinates)
	}
	if lng < -180 || lng > 180 {
		return fmt.Errorf("%w: longitude must be between -180 and 180", ErrInvalidCoordinates)
	}
	return nil
}
