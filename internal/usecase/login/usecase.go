package login

import (
	"context"
	"crypto/rand"
	"encoding/hex"
	"errors"
	"fmt"

	"golang.org/x/crypto/bcrypt"

	"github.com/chaxxbarbers/booking-service/internal/infra/storage/user"
)

// tokenBytes длина bearer-токена до hex-кодирования
const tokenBytes = 32

// UseCase use case проверки учетных данных
type UseCase struct {
	userRepo UserRepository
	logger   Logger
}

// NewUseCase создает новый экземпляр use case
func NewUseCase(userRepo UserRepository, logger Logger) *UseCase {
	return &UseCase{
		userRepo: userRepo,
		logger:   logger,
	}
}

// Execute проверяет email и пароль и выдает bearer-токен.
// Неизвестный email и неверный пароль неразличимы для вызывающего.
func (uc *UseCase) Execute(ctx context.Context, req *Request) (*Response, error) {
	if req.Email == "" || req.Password == "" {
		return nil, ErrMissingFields
	}

	u, err := uc.userRepo.GetByEmail(ctx, req.Email)
	if errors.Is(err, user.ErrUserNotFound) {
		uc.logger.Warn("Login: unknown email %s", req.Email)
		return nil, ErrInvalidCredentials
	}
	if err != nil {
		uc.logger.Error("Login: failed to fetch user: %v", err)
		return nil, fmt.Errorf("%w: failed to fetch user: %v", ErrInternal, err)
	}

	if u.PasswordHash == nil {
		uc.logger.Warn("Login: user %d has no password set", u.ID)
		return nil, ErrInvalidCredentials
	}

	if err := bcrypt.CompareHashAndPassword([]byte(*u.PasswordHash), []byte(req.Password)); err != nil {
		uc.logger.Warn("Login: wrong password for user %d", u.ID)
		return nil, ErrInvalidCredentials
	}

	token, err := generateToken()
	if err != nil {
		uc.logger.Error("Login: failed to generate token: %v", err)
		return nil, fmt.Errorf("%w: failed to generate token: %v", ErrInternal, err)
	}

	uc.logger.Info("Login: user %d logged in", u.ID)

	resp := &Response{
		Token: token,
		Name:  u.Name,
	}
	if u.Email != nil {
		resp.Email = *u.Email
	}

	return resp, nil
}

func generateToken() (string, error) {
	buf := make([]byte, tokenBytes)
	if _, err := rand.Read(buf); err != nil {
		return "", err
	}
	return hex.EncodeToString(buf), nil
}
