package create_user

import (
	"errors"
	"net/http"

	"github.com/chaxxbarbers/booking-service/internal/api/handlers"
	"github.com/chaxxbarbers/booking-service/internal/service/users"
)

const (
	msgInvalidRequestBody = "Invalid request body"
	msgMissingName        = "Name is required"
	msgEmailTaken         = "Email is already taken"
)

type Handler struct {
	service UsersService
	logger  Logger
}

func NewHandler(service UsersService, logger Logger) *Handler {
	return &Handler{
		service: service,
		logger:  logger,
	}
}

// Handle POST /users
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	var req CreateUserRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("POST /users - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	result, err := h.service.Create(r.Context(), req.Name, req.Email, req.Password)
	if err != nil {
		switch {
		case errors.Is(err, users.ErrMissingName):
			handlers.RespondBadRequest(w, msgMissingName)

		case errors.Is(err, users.ErrEmailTaken):
			h.logger.Warn("POST /users - Email taken")
			handlers.RespondConflict(w, msgEmailTaken)

		default:
			h.logger.Error("POST /users - Failed to create user: %v", err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("POST /users - User created: id=%d", result.ID)
	handlers.RespondJSON(w, http.StatusCreated, FromDomain(result))
}
