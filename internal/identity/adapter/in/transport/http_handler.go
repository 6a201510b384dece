package transport

import (
	"encoding/json"
	"errors"
	"io"
	"net/http"

	"ridemate/internal/identity/application/ports/in"
	"ridemate/internal/identity/domain"
	"ridemate/internal/shared/auth"
	"ridemate/internal/shared/logger"
)

const maxBodySize = 1 << 20 // 1MB

// HTTPHandler обрабатывает HTTP запросы аутентификации
type HTTPHandler struct {
	registerUC  in.RegisterUseCase
	loginUC     in.LoginUseCase
	logoutUC    in.LogoutUseCase
	jwtService  *auth.JWTService
	emailDomain string
	log         *logger.Logger
}

// NewHTTPHandler создает новый HTTP handler
func NewHTTPHandler(
	registerUC in.RegisterUseCase,
	loginUC in.LoginUseCase,
	logoutUC in.LogoutUseCase,
	jwtService *auth.JWTService,
	emailDomain string,
	log *logger.Logger,
) *HTTPHandler {
	return &HTTPHandler{
		registerUC:  registerUC,
		loginUC:     loginUC,
		logoutUC:    logoutUC,
		jwtService:  jwtService,
		emailDomain: emailDomain,
		log:         log,
	}
}

// RegisterRoutes регистрирует маршруты аутентификации
func (h *HTTPHandler) RegisterRoutes(mux *http.ServeMux, authMiddleware func(http.HandlerFunc) http.HandlerFunc) {
	mux.HandleFunc("POST /auth/register", h.handleRegister)
	mux.HandleFunc("POST /auth/login", h.handleLogin)
	mux.HandleFunc("POST /auth/logout", authMiddleware(h.handleLogout))
}

// handleRegister обрабатывает POST /auth/register
func (h *HTTPHandler) handleRegister(w http.ResponseWriter, r *http.Request) {
	r.Body = http.MaxBytesReader(w, r.Body, maxBodySize)

	var form RegistrationForm
	decoder := json.NewDecoder(r.Body)
	decoder.DisallowUnknownFields()

	if err := decoder.Decode(&form); err != nil {
		if errors.Is(err, io.EOF) {
			h.respondError(w, http.StatusBadRequest, "empty request body")
			return
		}
		h.respondError(w, http.StatusBadRequest, "invalid request format")
		return
	}

	// Валидация формы — до обращения к Identity Store
	rollNo, err := ValidateRegistration(form, h.emailDomain)
	if err != nil {
		h.handleUseCaseError(w, err)
		return
	}

	account, err := h.registerUC.Execute(r.Context(), in.RegisterInput{
		Name:       form.Name,
		Email:      form.Email,
		Password:   form.Password,
		Department: form.Department,
		Year:       form.Year,
		RollNo:     rollNo,
	})
	if err != nil {
		h.handleUseCaseError(w, err)
		return
	}

	h.respondJSON(w, http.StatusCreated, map[string]any{
		"message": "Registration successful! Please log in.",
		"account": account,
	})
}

// LoginHTTPRequest — HTTP DTO для входа
type LoginHTTPRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

// handleLogin обрабатывает POST /auth/login
func (h *HTTPHandler) handleLogin(w http.ResponseWriter, r *http.Request) {
	r.Body = http.MaxBytesReader(w, r.Body, maxBodySize)

	var req LoginHTTPRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		h.respondError(w, http.StatusBadRequest, "invalid request format")
		return
	}

	if err := ValidateLoginEmail(req.Email, h.emailDomain); err != nil {
		h.handleUseCaseError(w, err)
		return
	}

	account, err := h.loginUC.Execute(r.Context(), in.LoginInput{
		Email:    req.Email,
		Password: req.Password,
	})
	if err != nil {
		h.handleUseCaseError(w, err)
		return
	}

	token, err := h.jwtService.GenerateToken(account.ID, account.Email)
	if err != nil {
		h.log.Error(logger.Entry{
			Action:  "generate_token_failed",
			Message: err.Error(),
			Error:   &logger.ErrObj{Msg: err.Error()},
		})
		h.respondError(w, http.StatusInternalServerError, "internal server error")
		return
	}

	h.respondJSON(w, http.StatusOK, map[string]any{
		"token":   token,
		"account": account,
	})
}

// handleLogout обрабатывает POST /auth/logout
func (h *HTTPHandler) handleLogout(w http.ResponseWriter, r *http.Request) {
	if err := h.logoutUC.Execute(r.Context()); err != nil {
		h.respondError(w, http.StatusInternalServerError, "internal server error")
		return
	}
	h.respondJSON(w, http.StatusOK, map[string]string{"message": "logged out"})
}

// handleUseCaseError обрабатывает ошибки use case
func (h *HTTPHandler) handleUseCaseError(w http.ResponseWriter, err error) {
	switch {
	case errors.Is(err, domain.ErrValidation):
		h.respondError(w, http.StatusBadRequest, err.Error())
	case errors.Is(err, domain.ErrDuplicateEmail):
		h.respondError(w, http.StatusConflict, err.Error())
	case errors.Is(err, domain.ErrInvalidCredentials):
		h.respondError(w, http.StatusUnauthorized, err.Error())
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
