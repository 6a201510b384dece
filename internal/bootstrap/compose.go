// ============================================================================
// BOOTSTRAP (Compose Root)
// ============================================================================
//
// Точка сборки всего сервиса: здесь создаются зависимости, собираются
// Use Cases и связываются адаптеры. Все хранилища — in-memory, поэтому
// порядок слоев простой:
//
//   Инфраструктура → Repositories → Use Cases → Adapters → Server
//
// Подмена любой реализации (памятное хранилище, внешний геокодер,
// генератор описаний) происходит только в этом файле.
//
// ============================================================================

package bootstrap

import (
	"context"
	"fmt"
	"net/http"
	"time"

	"ridemate/internal/chat/adapter/in/in_ws"
	chatclock "ridemate/internal/chat/adapter/out/clock"
	geotransport "ridemate/internal/geo/adapter/in/transport"
	"ridemate/internal/geo/adapter/out/nominatim"
	geousecase "ridemate/internal/geo/application/usecase"
	identitytransport "ridemate/internal/identity/adapter/in/transport"
	identityrepo "ridemate/internal/identity/adapter/out/repo"
	identityusecase "ridemate/internal/identity/application/usecase"
	ridetransport "ridemate/internal/ride/adapter/in/transport"
	"ridemate/internal/ride/adapter/out/genai"
	"ridemate/internal/ride/adapter/out/out_ws"
	riderepo "ridemate/internal/ride/adapter/out/repo"
	rideusecase "ridemate/internal/ride/application/usecase"
	"ridemate/internal/shared/auth"
	"ridemate/internal/shared/config"
	"ridemate/internal/shared/logger"
	"ridemate/internal/shared/ws"
)

// Run запускает сервис со всеми его компонентами.
// Блокируется до отмены контекста, затем гасит HTTP сервер.
func Run(ctx context.Context, cfg config.Config, log *logger.Logger) {
	log.Info(logger.Entry{Action: "service_starting", Message: "initializing ridemate service"})

	// ========================================================================
	// СЛОЙ 1: ИНФРАСТРУКТУРА
	// ========================================================================

	jwtService := auth.NewJWTService(cfg.JWT)

	// WebSocket hub: рукопожатие по JWT, дальше типизированные кадры чата
	hub := ws.NewHub(func(token string) (string, error) {
		claims, err := jwtService.ValidateToken(token)
		if err != nil {
			return "", err
		}
		return claims.AccountID, nil
	}, log)
	go hub.Run(ctx)

	// ========================================================================
	// СЛОЙ 2: REPOSITORIES (in-memory, процесс — единственный источник истины)
	// ========================================================================

	accountRepo := identityrepo.NewAccountMemRepository(log)
	sessionStore := identityrepo.NewSessionMemStore()
	rideRepo := riderepo.NewRideMemRepository(log)

	// ========================================================================
	// СЛОЙ 3: ВНЕШНИЕ АДАПТЕРЫ (notifiers, внешние API)
	// ========================================================================

	bookingNotifier := out_ws.NewWsBookingNotifier(hub, log)
	describer := genai.NewDescriber(cfg.Describer, log)
	geocoder := nominatim.NewClient(
		cfg.Geocoding.BaseURL,
		cfg.Geocoding.UserAgent,
		time.Duration(cfg.Geocoding.TimeoutMS)*time.Millisecond,
		log,
	)
	chatScheduler := chatclock.NewScheduler()

	// ========================================================================
	// СЛОЙ 4: USE CASES
	// ========================================================================

	registerUC := identityusecase.NewRegisterService(accountRepo, log)
	loginUC := identityusecase.NewLoginService(accountRepo, sessionStore, log)
	logoutUC := identityusecase.NewLogoutService(sessionStore, log)

	offerRideUC := rideusecase.NewOfferRideService(rideRepo, accountRepo, log)
	requestBookingUC := rideusecase.NewRequestBookingService(rideRepo, accountRepo, bookingNotifier, log)
	searchRidesUC := rideusecase.NewSearchRidesService(rideRepo, log)
	getRideUC := rideusecase.NewGetRideService(rideRepo)
	getProfileUC := rideusecase.NewGetProfileService(rideRepo, accountRepo)
	describeRideUC := rideusecase.NewDescribeRideService(describer)

	resolvePlaceUC := geousecase.NewResolvePlaceService(geocoder, log)

	// ========================================================================
	// СЛОЙ 5: ВХОДЯЩИЕ АДАПТЕРЫ
	// ========================================================================

	chatWS := in_ws.NewChatWSHandler(getRideUC, chatScheduler, cfg.Chat, log)
	chatWS.Bind(hub)

	identityHandler := identitytransport.NewHTTPHandler(
		registerUC, loginUC, logoutUC, jwtService, cfg.Campus.EmailDomain, log)
	rideHandler := ridetransport.NewHTTPHandler(
		offerRideUC, requestBookingUC, searchRidesUC, getRideUC, getProfileUC, describeRideUC, log)
	geoHandler := geotransport.NewHTTPHandler(resolvePlaceUC, log)

	// ========================================================================
	// СЛОЙ 6: ДЕМО-ДАННЫЕ
	// ========================================================================

	if err := Seed(ctx, accountRepo, rideRepo, cfg.Campus.EmailDomain, log); err != nil {
		log.Fatal(logger.Entry{
			Action:  "seed_failed",
			Message: err.Error(),
			Error:   &logger.ErrObj{Msg: err.Error()},
		})
	}

	// ========================================================================
	// СЛОЙ 7: HTTP СЕРВЕР
	// ========================================================================

	mux := http.NewServeMux()
	authMiddleware := identitytransport.JWTMiddleware(jwtService, log)

	identityHandler.RegisterRoutes(mux, authMiddleware)
	rideHandler.RegisterRoutes(mux, authMiddleware)
	geoHandler.RegisterRoutes(mux, authMiddleware)

	// WebSocket endpoint чата: токен передается первым кадром
	mux.HandleFunc("/ws", hub.ServeWS)

	addr := fmt.Sprintf(":%d", cfg.Server.Port)
	server := &http.Server{
		Addr:              addr,
		Handler:           mux,
		ReadTimeout:       15 * time.Second,
		WriteTimeout:      15 * time.Second,
		IdleTimeout:       60 * time.Second,
		ReadHeaderTimeout: 5 * time.Second,
	}

	go func() {
		log.Info(logger.Entry{
			Action:  "http_server_starting",
			Message: fmt.Sprintf("listening on %s", addr),
		})
		if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatal(logger.Entry{
				Action:  "http_server_failed",
				Message: err.Error(),
				Error:   &logger.ErrObj{Msg: err.Error()},
			})
		}
	}()

	<-ctx.Done()
	log.Info(logger.Entry{Action: "service_stopping", Message: "shutting down"})

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 15*time.Second)
	defer cancel()
	if err := server.Shutdown(shutdownCtx); err != nil {
		log.Error(logger.Entry{
			Action:  "http_server_shutdown_failed",
			Message: err.Error(),
			Error:   &logger.ErrObj{Msg: err.Error()},
		})
	} else {
		log.Info(logger.Entry{Action: "http_server_stopped", Message: "http server stopped gracefully"})
	}

	log.Info(logger.Entry{Action: "service_stopped", Message: "ridemate service stopped"})
}
