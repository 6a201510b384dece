package usecase

import (
	"context"
	"sync"

	"ridemate/internal/geo/application/ports/out"
	"ridemate/internal/geo/domain"
	"ridemate/internal/shared/logger"
)

type inflightLookup struct {
	cancel context.CancelFunc
	gen    uint64
}

// ResolvePlaceService реализует ResolvePlaceUseCase.
// Держит не более одного запроса в полете на ключ просмотра:
// поступление нового отменяет контекст предыдущего, и тот
// возвращает nil вместо устаревшего результата.
type ResolvePlaceService struct {
	geocoder out.Geocoder
	log      *logger.Logger

	mu       sync.Mutex
	nextGen  uint64
	inflight map[string]inflightLookup
}

// NewResolvePlaceService создает новый сервис геокодирования
func NewResolvePlaceService(geocoder out.Geocoder, log *logger.Logger) *ResolvePlaceService {
	return &ResolvePlaceService{
		geocoder: geocoder,
		log:      log,
		inflight: make(map[string]inflightLookup),
	}
}

// Execute разрешает название места в координату; best effort, без повторов
func (s *ResolvePlaceService) Execute(ctx context.Context, viewKey, place string) *domain.Coordinate {
	reqCtx, cancel := context.WithCancel(ctx)

	s.mu.Lock()
	if prev, ok := s.inflight[viewKey]; ok {
		prev.cancel() // последний запрос вытесняет предыдущий
	}
	s.nextGen++
	gen := s.nextGen
	s.inflight[viewKey] = inflightLookup{cancel: cancel, gen: gen}
	s.mu.Unlock()

	defer func() {
		s.mu.Lock()
		// чистим только собственную запись: нас могли уже вытеснить
		if current, ok := s.inflight[viewKey]; ok && current.gen == gen {
			delete(s.inflight, viewKey)
		}
		s.mu.Unlock()
		cancel()
	}()

	coord, err := s.geocoder.Resolve(reqCtx, place)
	if err != nil {
		if reqCtx.Err() == nil {
			s.log.Warn(logger.Entry{
				Action:  "geocode_failed",
				Message: err.Error(),
				Additional: map[string]any{
					"place": place,
				},
			})
		}
		return nil
	}

	// Отмененный (вытесненный) запрос не должен применять результат
	if reqCtx.Err() != nil {
		return nil
	}
	return coord
}
