package transport

import (
	"encoding/json"
	"errors"
	"io"
	"net/http"
	"time"

	identitydomain "ridemate/internal/identity/domain"
	identitytransport "ridemate/internal/identity/adapter/in/transport"
	"ridemate/internal/ride/application/ports/in"
	"ridemate/internal/ride/domain"
	"ridemate/internal/shared/logger"
)

const maxBodySize = 1 << 20 // 1MB

// HTTPHandler обрабатывает HTTP запросы каталога поездок
type HTTPHandler struct {
	offerRideUC      in.OfferRideUseCase
	requestBookingUC in.RequestBookingUseCase
	searchRidesUC    in.SearchRidesUseCase
	getRideUC        in.GetRideUseCase
	getProfileUC     in.GetProfileUseCase
	describeRideUC   in.DescribeRideUseCase
	log              *logger.Logger
}

// NewHTTPHandler создает новый HTTP handler
func NewHTTPHandler(
	offerRideUC in.OfferRideUseCase,
	requestBookingUC in.RequestBookingUseCase,
	searchRidesUC in.SearchRidesUseCase,
	getRideUC in.GetRideUseCase,
	getProfileUC in.GetProfileUseCase,
	describeRideUC in.DescribeRideUseCase,
	log *logger.Logger,
) *HTTPHandler {
	return &HTTPHandler{
		offerRideUC:      offerRideUC,
		requestBookingUC: requestBookingUC,
		searchRidesUC:    searchRidesUC,
		getRideUC:        getRideUC,
		getProfileUC:     getProfileUC,
		describeRideUC:   describeRideUC,
		log:              log,
	}
}

// RegisterRoutes регистрирует все HTTP маршруты
func (h *HTTPHandler) RegisterRoutes(mux *http.ServeMux, authMiddleware func(http.HandlerFunc) http.HandlerFunc) {
	// liveness
	mux.HandleFunc("GET /health", h.handleHealth)

	// каталог открыт для просмотра; все мутации — за логином
	mux.HandleFunc("GET /rides", h.handleSearchRides)
	mux.HandleFunc("GET /rides/{ride_id}", h.handleGetRide)
	mux.HandleFunc("POST /rides", authMiddleware(h.handleOfferRide))
	mux.HandleFunc("POST /rides/describe", authMiddleware(h.handleDescribeRide))
	mux.HandleFunc("POST /rides/{ride_id}/bookings", authMiddleware(h.handleRequestBooking))
	mux.HandleFunc("GET /profile", authMiddleware(h.handleGetProfile))
}

// handleHealth обрабатывает health check
func (h *HTTPHandler) handleHealth(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	_, _ = w.Write([]byte(`{"status":"ok"}`))
}

// handleSearchRides обрабатывает GET /rides
func (h *HTTPHandler) handleSearchRides(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()

	input := in.SearchRidesInput{
		WomenOnly:   q.Get("women_only") == "true",
		Origin:      q.Get("origin"),
		Destination: q.Get("destination"),
	}

	if dateStr := q.Get("date"); dateStr != "" {
		date, err := time.Parse("2006-01-02", dateStr)
		if err != nil {
			h.respondError(w, http.StatusBadRequest, "date must be YYYY-MM-DD")
			return
		}
		input.Date = &date
	}

	rides, err := h.searchRidesUC.Execute(r.Context(), input)
	if err != nil {
		h.handleUseCaseError(w, err)
		return
	}

	h.respondJSON(w, http.StatusOK, map[string]any{"rides": rides})
}

// handleGetRide обрабатывает GET /rides/{ride_id}
func (h *HTTPHandler) handleGetRide(w http.ResponseWriter, r *http.Request) {
	ride, err := h.getRideUC.Execute(r.Context(), r.PathValue("ride_id"))
	if err != nil {
		h.handleUseCaseError(w, err)
		return
	}
	h.respondJSON(w, http.StatusOK, ride)
}

// OfferRideHTTPRequest — HTTP DTO формы "Offer a Ride"
type OfferRideHTTPRequest struct {
	Origin        string  `json:"origin"`
	Destination   string  `json:"destination"`
	DepartureTime string  `json:"departure_time"` // RFC 3339
	TotalSeats    int     `json:"total_seats"`
	Price         float64 `json:"price"`
	Description   string  `json:"description"`
	VehicleType   string  `json:"vehicle_type"`
	WomenOnly     bool    `json:"women_only"`
}

// handleOfferRide обрабатывает POST /rides
func (h *HTTPHandler) handleOfferRide(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	accountID, ok := identitytransport.AccountIDFromContext(ctx)
	if !ok {
		h.respondError(w, http.StatusUnauthorized, "unauthorized")
		return
	}

	r.Body = http.MaxBytesReader(w, r.Body, maxBodySize)

	var req OfferRideHTTPRequest
	decoder := json.NewDecoder(r.Body)
	decoder.DisallowUnknownFields()

	if err := decoder.Decode(&req); err != nil {
		if errors.Is(err, io.EOF) {
			h.respondError(w, http.StatusBadRequest, "empty request body")
			return
		}
		h.respondError(w, http.StatusBadRequest, "invalid request format")
		return
	}

	departure, err := time.Parse(time.RFC3339, req.DepartureTime)
	if err != nil {
		h.respondError(w, http.StatusBadRequest, "departure_time must be RFC 3339")
		return
	}

	ride, err := h.offerRideUC.Execute(ctx, in.OfferRideInput{
		DriverID:      accountID,
		Origin:        req.Origin,
		Destination:   req.Destination,
		DepartureTime: departure,
		TotalSeats:    req.TotalSeats,
		Price:         req.Price,
		Description:   req.Description,
		VehicleType:   domain.VehicleType(req.VehicleType),
		WomenOnly:     req.WomenOnly,
	})
	if err != nil {
		h.handleUseCaseError(w, err)
		return
	}

	h.respondJSON(w, http.StatusCreated, ride)
}

// handleRequestBooking обрабатывает POST /rides/{ride_id}/bookings
func (h *HTTPHandler) handleRequestBooking(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	accountID, ok := identitytransport.AccountIDFromContext(ctx)
	if !ok {
		h.respondError(w, http.StatusUnauthorized, "unauthorized")
		return
	}

	ride, err := h.requestBookingUC.Execute(ctx, in.RequestBookingInput{
		RideID:      r.PathValue("ride_id"),
		RequesterID: accountID,
	})
	if err != nil {
		h.handleUseCaseError(w, err)
		return
	}

	h.respondJSON(w, http.StatusOK, ride)
}

// DescribeRideHTTPRequest — HTTP DTO генерации описания
type DescribeRideHTTPRequest struct {
	Origin      string `json:"origin"`
	Destination string `json:"destination"`
}

// handleDescribeRide обрабатывает POST /rides/describe
func (h *HTTPHandler) handleDescribeRide(w http.ResponseWriter, r *http.Request) {
	r.Body = http.MaxBytesReader(w, r.Body, maxBodySize)

	var req DescribeRideHTTPRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		h.respondError(w, http.StatusBadRequest, "invalid request format")
		return
	}

	description, err := h.describeRideUC.Execute(r.Context(), req.Origin, req.Destination)
	if err != nil {
		h.handleUseCaseError(w, err)
		return
	}

	h.respondJSON(w, http.StatusOK, map[string]string{"description": description})
}

// handleGetProfile обрабатывает GET /profile
func (h *HTTPHandler) handleGetProfile(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	accountID, ok := identitytransport.AccountIDFromContext(ctx)
	if !ok {
		h.respondError(w, http.StatusUnauthorized, "unauthorized")
		return
	}

	profile, err := h.getProfileUC.Execute(ctx, accountID)
	if err != nil {
		h.handleUseCaseError(w, err)
		return
	}

	h.respondJSON(w, http.StatusOK, profile)
}

// handleUseCaseError обрабатывает ошибки use case
func (h *HTTPHandler) handleUseCaseError(w http.ResponseWriter, err error) {
	switch {
	case errors.Is(err, domain.ErrRideNotFound):
		h.respondError(w, http.StatusNotFound, err.Error())
	case errors.Is(err, domain.ErrSelfBooking),
		errors.Is(err, domain.ErrInvalidVehicleType),
		errors.Is(err, domain.ErrInvalidSeatCount),
		errors.Is(err, domain.ErrInvalidPrice),
		errors.Is(err, domain.ErrDepartureInPast),
		errors.Is(err, domain.ErrMissingRoute):
		h.respondError(w, http.StatusBadRequest, err.Error())
	case errors.Is(err, domain.ErrNoSeatsAvailable),
		errors.Is(err, domain.ErrRideClosed):
		h.respondError(w, http.StatusConflict, err.Error())
	case errors.Is(err, identitydomain.ErrAccountNotFound):
		h.respondError(w, http.StatusNotFound, err.Error())
	default:
		h.log.Error(logger.Entry{
			Action:  "usecase_error",
			Message: err.Error(),
			Error:   &logger.ErrObj{Msg: err.Error()},
		})
		h.respondError(w, http.StatusInternalServerError, "internal server error")
	}
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
