package service

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/amrsalem/go-user-service/internal/apierr"
	"github.com/amrsalem/go-user-service/internal/models"
)

// stubRepo returns canned results so the service's empty-result handling
// can be exercised without a running document store.
type stubRepo struct {
	user *models.User
	all  []models.User
	err  error
}

func (s *stubRepo) Create(_ context.Context, _ *models.User) (*models.User, error) {
	return s.user, s.err
}

func (s *stubRepo) FindAll(_ context.Context) ([]models.User, error) {
	return s.all, s.err
}

func (s *stubRepo) FindByID(_ context.Context, _ string) (*models.User, error) {
	return s.user, s.err
}

func (s *stubRepo) Update(_ context.Context, _ string, _ models.UserPatch) (*models.User, error) {
	return s.user, s.err
}

func (s *stubRepo) Delete(_ context.Context, _ string) (*models.User, error) {
	return s.user, s.err
}

func (s *stubRepo) FindByEmail(_ context.Context, _ string) (*models.User, error) {
	return s.user, s.err
}

func TestEmptyResultBecomesUserNotFound(t *testing.T) {
	svc := NewUsers(&stubRepo{})
	ctx := context.Background()
	id := "64a1f2e8b3c4d5e6f7a8b9c0"

	tests := []struct {
		name string
		call func() error
		key  string
		want any
	}{
		{name: "get by id", call: func() error { _, err := svc.GetByID(ctx, id); return err }, key: "id", want: id},
		{name: "update", call: func() error { _, err := svc.Update(ctx, id, models.UserPatch{}); return err }, key: "id", want: id},
		{name: "delete", call: func() error { _, err := svc.Delete(ctx, id); return err }, key: "id", want: id},
		{name: "get by email", call: func() error { _, err := svc.GetByEmail(ctx, "a@b.com"); return err }, key: "email", want: "a@b.com"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.call()
			require.Error(t, err)

			var apiErr *apierr.Error
			require.ErrorAs(t, err, &apiErr)
			assert.Equal(t, apierr.CodeUserNotFound, apiErr.Code)
			assert.Equal(t, tt.want, apiErr.Meta[tt.key])
		})
	}
}

func TestFoundUserPassesThrough(t *testing.T) {
	user := &models.User{Name: "Alice", Email: "alice@example.com"}
	svc := NewUsers(&stubRepo{user: user})

	got, err := svc.GetByID(context.Background(), "64a1f2e8b3c4d5e6f7a8b9c0")

	require.NoError(t, err)
	assert.Same(t, user, got)
}

// Raw repository failures pass through unclassified; normalization is the
// error pipeline's job, not the service's.
func TestRepositoryErrorPassesThroughRaw(t *testing.T) {
	rawErr := errors.New("socket closed")
	svc := NewUsers(&stubRepo{err: rawErr})

	_, err := svc.GetByID(context.Background(), "64a1f2e8b3c4d5e6f7a8b9c0")

	require.ErrorIs(t, err, rawErr)

	var apiErr *apierr.Error
	assert.False(t, errors.As(err, &apiErr))
}

func TestListReturnsAll(t *testing.T) {
	all := []models.User{{Name: "A"}, {Name: "B"}}
	svc := NewUsers(&stubRepo{all: all})

	got, err := svc.List(context.Background())

	require.NoError(t, err)
	assert.Equal(t, all, got)
}
