package service

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"usersvc/internal/apperr"
	"usersvc/internal/domain"
	"usersvc/internal/repository"
	"usersvc/internal/repository/sqlite"
)

func newTestService(t *testing.T) UserService {
	t.Helper()

	db, err := sqlite.Open(":memory:")
	require.NoError(t, err)
	t.Cleanup(func() { db.Close() })

	repo := sqlite.NewUserRepository(db)
	require.NoError(t, repo.Init(context.Background()))
	return NewUserService(repo, 5*time.Second)
}

func strptr(s string) *string { return &s }

func TestCreateTrimsAndPersists(t *testing.T) {
	svc := newTestService(t)
	ctx := context.Background()

	user, err := svc.Create(ctx, domain.CreateUserInput{Name: "  Ada  ", Email: " ada@x.org "})
	require.NoError(t, err)
	assert.Equal(t, "Ada", user.Name)
	assert.Equal(t, "ada@x.org", user.Email)

	got, err := svc.Get(ctx, user.ID)
	require.NoError(t, err)
	assert.Equal(t, user, got)
}

func TestCreateRejectsEmptyFields(t *testing.T) {
	tests := []struct {
		name  string
		input domain.CreateUserInput
	}{
		{"empty name", domain.CreateUserInput{Name: "", Email: "ada@x.org"}},
		{"whitespace name", domain.CreateUserInput{Name: "   ", Email: "ada@x.org"}},
		{"empty email", domain.CreateUserInput{Name: "Ada", Email: ""}},
		{"whitespace email", domain.CreateUserInput{Name: "Ada", Email: "\t"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			svc := newTestService(t)

			_, err := svc.Create(context.Background(), tt.input)
			assert.Equal(t, apperr.KindBadRequest, apperr.KindOf(err))

			// validation failures never reach the store
			users, listErr := svc.List(context.Background())
			require.NoError(t, listErr)
			assert.Empty(t, users)
		})
	}
}

func TestGetMissingIsNotFound(t *testing.T) {
	svc := newTestService(t)

	_, err := svc.Get(context.Background(), 42)
	assert.Equal(t, apperr.KindNotFound, apperr.KindOf(err))
}

func TestUpdateMapsOutcomes(t *testing.T) {
	svc := newTestService(t)
	ctx := context.Background()

	user, err := svc.Create(ctx, domain.CreateUserInput{Name: "Ada", Email: "ada@x.org"})
	require.NoError(t, err)

	updated, err := svc.Update(ctx, user.ID, domain.UpdateUserInput{Name: strptr("Ada L.")})
	require.NoError(t, err)
	assert.Equal(t, "Ada L.", updated.Name)
	assert.Equal(t, "ada@x.org", updated.Email)

	_, err = svc.Update(ctx, 42, domain.UpdateUserInput{Name: strptr("ghost")})
	assert.Equal(t, apperr.KindNotFound, apperr.KindOf(err))

	// supplied-but-blank fields are rejected, not coalesced away
	_, err = svc.Update(ctx, user.ID, domain.UpdateUserInput{Email: strptr("  ")})
	assert.Equal(t, apperr.KindBadRequest, apperr.KindOf(err))
}

func TestDeleteTwiceYieldsNotFound(t *testing.T) {
	svc := newTestService(t)
	ctx := context.Background()

	user, err := svc.Create(ctx, domain.CreateUserInput{Name: "Ada", Email: "ada@x.org"})
	require.NoError(t, err)

	require.NoError(t, svc.Delete(ctx, user.ID))

	err = svc.Delete(ctx, user.ID)
	assert.Equal(t, apperr.KindNotFound, apperr.KindOf(err))
}

func TestDuplicateEmailIsStoreFailure(t *testing.T) {
	svc := newTestService(t)
	ctx := context.Background()

	_, err := svc.Create(ctx, domain.CreateUserInput{Name: "Ada", Email: "ada@x.org"})
	require.NoError(t, err)

	_, err = svc.Create(ctx, domain.CreateUserInput{Name: "Grace", Email: "ada@x.org"})
	assert.Equal(t, apperr.KindStoreFailure, apperr.KindOf(err))

	users, err := svc.List(ctx)
	require.NoError(t, err)
	assert.Len(t, users, 1)
}

// failingRepository simulates a broken store for error-mapping checks.
type failingRepository struct {
	err error
}

func (r *failingRepository) Init(context.Context) error { return r.err }
func (r *failingRepository) List(context.Context) ([]domain.User, error) {
	return nil, r.err
}
func (r *failingRepository) GetByID(context.Context, int64) (*domain.User, error) {
	return nil, r.err
}
func (r *failingRepository) Insert(context.Context, string, string) (*domain.User, error) {
	return nil, r.err
}
func (r *failingRepository) Update(context.Context, int64, *string, *string) (*domain.User, error) {
	return nil, r.err
}
func (r *failingRepository) Delete(context.Context, int64) (int64, error) {
	return 0, r.err
}

var _ repository.UserRepository = (*failingRepository)(nil)

func TestRepositoryFailuresMapToStoreFailure(t *testing.T) {
	cause := errors.New("database is locked")
	svc := NewUserService(&failingRepository{err: cause}, 5*time.Second)
	ctx := context.Background()

	_, err := svc.List(ctx)
	assert.Equal(t, apperr.KindStoreFailure, apperr.KindOf(err))
	assert.ErrorIs(t, err, cause)

	_, err = svc.Get(ctx, 1)
	assert.Equal(t, apperr.KindStoreFailure, apperr.KindOf(err))

	_, err = svc.Create(ctx, domain.CreateUserInput{Name: "Ada", Email: "ada@x.org"})
	assert.Equal(t, apperr.KindStoreFailure, apperr.KindOf(err))

	_, err = svc.Update(ctx, 1, domain.UpdateUserInput{Name: strptr("Ada")})
	assert.Equal(t, apperr.KindStoreFailure, apperr.KindOf(err))

	err = svc.Delete(ctx, 1)
	assert.Equal(t, apperr.KindStoreFailure, apperr.KindOf(err))
}
