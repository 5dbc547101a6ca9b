package create_user

import (
	"time"

	"github.com/chaxxbarbers/booking-service/internal/domain"
)

// CreateUserRequest HTTP-модель запроса создания пользователя.
// Пароль принимается только здесь и никогда не возвращается.
type CreateUserRequest struct {
	Name     string  `json:"name"`
	Email    *string `json:"email,omitempty"`
	Password *string `json:"password,omitempty"`
}

// UserResponse HTTP-модель пользователя, без полей пароля
type UserResponse struct {
	Success   bool    `json:"success"`
	ID        int64   `json:"id"`
	Name      string  `json:"name"`
	Email     *string `json:"email,omitempty"`
	CreatedAt string  `json:"created_at"`
}

// FromDomain конвертирует пользователя в HTTP response
func FromDomain(u *domain.User) *UserResponse {
	return &UserResponse{
		Success:   true,
		ID:        u.ID,
		Name:      u.Name,
		Email:     u.Email,
		CreatedAt: u.CreatedAt.Format(time.RFC3339),
	}
}
