package transport

import (
	"encoding/json"
	"net/http"

	"ridemate/internal/geo/application/ports/in"
	identitytransport "ridemate/internal/identity/adapter/in/transport"
	"ridemate/internal/shared/logger"
)

// HTTPHandler обрабатывает запросы геокодирования для карты маршрута
type HTTPHandler struct {
	resolvePlaceUC in.ResolvePlaceUseCase
	log            *logger.Logger
}

// NewHTTPHandler создает новый HTTP handler
func NewHTTPHandler(resolvePlaceUC in.ResolvePlaceUseCase, log *logger.Logger) *HTTPHandler {
	return &HTTPHandler{
		resolvePlaceUC: resolvePlaceUC,
		log:            log,
	}
}

// RegisterRoutes регистрирует HTTP маршруты
func (h *HTTPHandler) RegisterRoutes(mux *http.ServeMux, authMiddleware func(http.HandlerFunc) http.HandlerFunc) {
	mux.HandleFunc("GET /geocode", authMiddleware(h.handleGeocode))
}

// handleGeocode: GET /geocode?place=...
// Сбой геокодера — не ошибка клиента: отдаем coordinate: null,
// карта рисуется с центром по умолчанию.
func (h *HTTPHandler) handleGeocode(w http.ResponseWriter, r *http.Request) {
	accountID, ok := identitytransport.AccountIDFromContext(r.Context())
	if !ok {
		h.respondError(w, http.StatusUnauthorized, "unauthorized")
		return
	}

	place := r.URL.Query().Get("place")
	if place == "" {
		h.respondError(w, http.StatusBadRequest, "place is required")
		return
	}

	// один просмотр карты на аккаунт: повторный запрос вытесняет предыдущий
	coord := h.resolvePlaceUC.Execute(r.Context(), accountID, place)
	h.respondJSON(w, http.StatusOK, map[string]any{"coordinate": coord})
}

// respondJSON отправляет JSON ответ
func (h *HTTPHandler) respondJSON(w http.ResponseWriter, status int, data interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(data); err != nil {
		h.log.Error(logger.Entry{
			Action:  "encode_response_failed",
			Message: err.Error(),
			Error:   &logger.ErrObj{Msg: err.Error()},
		})
	}
}

// respondError отправляет JSON с ошибкой
func (h *HTTPHandler) respondError(w http.ResponseWriter, status int, message string) {
	h.respondJSON(w, status, map[string]string{"error": message})
}
