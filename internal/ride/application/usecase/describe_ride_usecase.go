package usecase

import (
	"context"
	"strings"

	"ridemate/internal/ride/application/ports/out"
	"ridemate/internal/ride/domain"
)

// DescribeRideService реализует DescribeRideUseCase
type DescribeRideService struct {
	describer out.Describer
}

// NewDescribeRideService создает новый сервис генерации описаний
func NewDescribeRideService(describer out.Describer) *DescribeRideService {
	return &DescribeRideService{describer: describer}
}

// Execute генерирует описание поездки по маршруту.
// Сбой внешнего сервиса не является ошибкой: вернется заглушка.
func (s *DescribeRideService) Execute(ctx context.Context, origin, destination string) (string, error) {
	if strings.TrimSpace(origin) == "" || strings.TrimSpace(destination) == "" {
		return "", domain.ErrMissingRoute
	}
	return s.describer.Describe(ctx, origin, destination), nil
}
