package login

import (
	"errors"
	"net/http"

	"github.com/chaxxbarbers/booking-service/internal/api/handlers"
	loginUC "github.com/chaxxbarbers/booking-service/internal/usecase/login"
)

const (
	msgInvalidRequestBody = "Invalid request body"
	msgMissingFields      = "Email and password are required"
	msgInvalidCredentials = "Invalid email or password"
)

type Handler struct {
	useCase LoginUseCase
	logger  Logger
}

func NewHandler(useCase LoginUseCase, logger Logger) *Handler {
	return &Handler{
		useCase: useCase,
		logger:  logger,
	}
}

// Handle POST /login
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	var req LoginRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("POST /login - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	result, err := h.useCase.Execute(r.Context(), &loginUC.Request{
		Email:    req.Email,
		Password: req.Password,
	})
	if err != nil {
		switch {
		case errors.Is(err, loginUC.ErrMissingFields):
			handlers.RespondBadRequest(w, msgMissingFields)

		case errors.Is(err, loginUC.ErrInvalidCredentials):
			h.logger.Warn("POST /login - Invalid credentials for %s", req.Email)
			handlers.RespondUnauthorized(w, msgInvalidCredentials)

		default:
			h.logger.Error("POST /login - Failed to login: %v", err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("POST /login - User logged in: %s", req.Email)
	handlers.RespondJSON(w, http.StatusOK, LoginResponse{
		Success: true,
		Token:   result.Token,
		Name:    result.Name,
		Email:   result.Email,
	})
}
