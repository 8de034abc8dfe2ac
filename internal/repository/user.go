package repository

import (
	"context"
	"errors"

	"usersvc/internal/domain"
)

// ErrNotFound signals that no row matched the requested id. Absence is not
// a hard failure at this layer; callers decide what it means.
var ErrNotFound = errors.New("user not found")

// UserRepository defines persistence operations for User entities. It is
// the only component allowed to touch the backing store.
type UserRepository interface {
	Init(ctx context.Context) error
	List(ctx context.Context) ([]domain.User, error)
	GetByID(ctx context.Context, id int64) (*domain.User, error)
	Insert(ctx context.Context, name, email string) (*domain.User, error)
	Update(ctx context.Context, id int64, name, email *string) (*domain.User, error)
	Delete(ctx context.Context, id int64) (int64, error)
}
