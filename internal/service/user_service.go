package service

import (
	"context"
	"errors"
	"strings"
	"time"

	"usersvc/internal/apperr"
	"usersvc/internal/domain"
	"usersvc/internal/repository"
)

// UserService applies input policy on top of the repository and maps every
// outcome onto the application error taxonomy.
type UserService interface {
	List(ctx context.Context) ([]domain.User, error)
	Get(ctx context.Context, id int64) (*domain.User, error)
	Create(ctx context.Context, input domain.CreateUserInput) (*domain.User, error)
	Update(ctx context.Context, id int64, input domain.UpdateUserInput) (*domain.User, error)
	Delete(ctx context.Context, id int64) error
}

type userService struct {
	users        repository.UserRepository
	queryTimeout time.Duration
}

func NewUserService(users repository.UserRepository, queryTimeout time.Duration) UserService {
	return &userService{
		users:        users,
		queryTimeout: queryTimeout,
	}
}

func (s *userService) List(ctx context.Context) ([]domain.User, error) {
	ctx, cancel := s.withTimeout(ctx)
	defer cancel()

	users, err := s.users.List(ctx)
	if err != nil {
		return nil, apperr.StoreFailure(err)
	}
	return users, nil
}

func (s *userService) Get(ctx context.Context, id int64) (*domain.User, error) {
	ctx, cancel := s.withTimeout(ctx)
	defer cancel()

	user, err := s.users.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, apperr.NotFound()
		}
		return nil, apperr.StoreFailure(err)
	}
	return user, nil
}

func (s *userService) Create(ctx context.Context, input domain.CreateUserInput) (*domain.User, error) {
	name := strings.TrimSpace(input.Name)
	email := strings.TrimSpace(input.Email)
	if name == "" {
		return nil, apperr.BadRequest("name must not be empty")
	}
	if email == "" {
		return nil, apperr.BadRequest("email must not be empty")
	}

	ctx, cancel := s.withTimeout(ctx)
	defer cancel()

	// email uniqueness is the store's constraint, not pre-checked here
	user, err := s.users.Insert(ctx, name, email)
	if err != nil {
		return nil, apperr.StoreFailure(err)
	}
	return user, nil
}

func (s *userService) Update(ctx context.Context, id int64, input domain.UpdateUserInput) (*domain.User, error) {
	name, err := trimOptional(input.Name, "name")
	if err != nil {
		return nil, err
	}
	email, err := trimOptional(input.Email, "email")
	if err != nil {
		return nil, err
	}

	ctx, cancel := s.withTimeout(ctx)
	defer cancel()

	user, err := s.users.Update(ctx, id, name, email)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, apperr.NotFound()
		}
		return nil, apperr.StoreFailure(err)
	}
	return user, nil
}

func (s *userService) Delete(ctx context.Context, id int64) error {
	ctx, cancel := s.withTimeout(ctx)
	defer cancel()

	rows, err := s.users.Delete(ctx, id)
	if err != nil {
		return apperr.StoreFailure(err)
	}
	if rows == 0 {
		return apperr.NotFound()
	}
	return nil
}

func (s *userService) withTimeout(ctx context.Context) (context.Context, context.CancelFunc) {
	return context.WithTimeout(ctx, s.queryTimeout)
}

// trimOptional trims a supplied field and rejects it when it trims to
// nothing. A nil field stays nil and keeps the stored value.
func trimOptional(value *string, field string) (*string, error) {
	if value == nil {
		return nil, nil
	}
	trimmed := strings.TrimSpace(*value)
	if trimmed == "" {
		return nil, apperr.BadRequest(field + " must not be empty")
	}
	return &trimmed, nil
}
