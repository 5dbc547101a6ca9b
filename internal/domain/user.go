package domain

import "time"

// User represents an account in the credential store.
// Используется только операцией логина, ядро бронирования об учетных записях не знает.
type User struct {
	ID           int64
	Name         string
	Email        *string
	PasswordHash *string

	CreatedAt time.Time
	UpdatedAt time.Time
}
