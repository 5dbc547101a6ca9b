package users

import (
	"context"
	"errors"
	"fmt"

	"golang.org/x/crypto/bcrypt"

	"github.com/chaxxbarbers/booking-service/internal/domain"
	"github.com/chaxxbarbers/booking-service/internal/infra/storage/user"
)

// Service учетные записи: создание и листинг.
// Пароль хранится только как bcrypt-хеш и никогда не отдается наружу.
type Service struct {
	userRepo UserRepository
	logger   Logger
}

// NewService создает новый экземпляр сервиса
func NewService(userRepo UserRepository, logger Logger) *Service {
	return &Service{
		userRepo: userRepo,
		logger:   logger,
	}
}

// Create создает пользователя. Email и пароль опциональны:
// пользователь без пароля не может входить в систему.
func (s *Service) Create(ctx context.Context, name string, email, password *string) (*domain.User, error) {
	if name == "" {
		return nil, ErrMissingName
	}

	u := &domain.User{
		Name:  name,
		Email: email,
	}

	if password != nil && *password != "" {
		hash, err := bcrypt.GenerateFromPassword([]byte(*password), bcrypt.DefaultCost)
		if err != nil {
			s.logger.Error("Users.Create: failed to hash password: %v", err)
			return nil, fmt.Errorf("%w: failed to hash password: %v", ErrInternal, err)
		}
		hashStr := string(hash)
		u.PasswordHash = &hashStr
	}

	created, err := s.userRepo.Create(ctx, u)
	if errors.Is(err, user.ErrEmailTaken) {
		return nil, ErrEmailTaken
	}
	if err != nil {
		s.logger.Error("Users.Create: failed to create user: %v", err)
		return nil, fmt.Errorf("%w: failed to create user: %v", ErrInternal, err)
	}

	s.logger.Info("Users.Create: user %d created", created.ID)

	return created, nil
}

// List возвращает всех пользователей
func (s *Service) List(ctx context.Context) ([]*domain.User, error) {
	result, err := s.userRepo.List(ctx)
	if err != nil {
		s.logger.Error("Users.List: failed to list users: %v", err)
		return nil, fmt.Errorf("%w: failed to list users: %v", ErrInternal, err)
	}
	return result, nil
}
