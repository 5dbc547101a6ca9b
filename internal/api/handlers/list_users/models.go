package list_users

import (
	"time"

	"github.com/chaxxbarbers/booking-service/internal/domain"
)

// UserPayload HTTP-модель пользователя, без полей пароля
type UserPayload struct {
	ID        int64   `json:"id"`
	Name      string  `json:"name"`
	Email     *string `json:"email,omitempty"`
	CreatedAt string  `json:"created_at"`
}

// ListResponse HTTP-модель списка пользователей
type ListResponse struct {
	Success bool          `json:"success"`
	Count   int           `json:"count"`
	Users   []UserPayload `json:"users"`
}

// FromDomain конвертирует пользователей в HTTP response
func FromDomain(usersList []*domain.User) *ListResponse {
	payloads := make([]UserPayload, 0, len(usersList))
	for _, u := range usersList {
		payloads = append(payloads, UserPayload{
			ID:        u.ID,
			Name:      u.Name,
			Email:     u.Email,
			CreatedAt: u.CreatedAt.Format(time.RFC3339),
		})
	}

	return &ListResponse{
		Success: true,
		Count:   len(payloads),
		Users:   payloads,
	}
}
