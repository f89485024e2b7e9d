// Package service holds the business logic for the service's resources.
// It raises apierr values directly; raw lower-layer failures pass through
// untouched and are normalized centrally by the error pipeline.
package service

import (
	"context"

	"github.com/amrsalem/go-user-service/internal/apierr"
	"github.com/amrsalem/go-user-service/internal/models"
)

// UsersRepository is the persistence capability set the users service
// needs. Lookups report "no match" as a nil result.
type UsersRepository interface {
	Create(ctx context.Context, user *models.User) (*models.User, error)
	FindAll(ctx context.Context) ([]models.User, error)
	FindByID(ctx context.Context, id string) (*models.User, error)
	Update(ctx context.Context, id string, patch models.UserPatch) (*models.User, error)
	Delete(ctx context.Context, id string) (*models.User, error)
	FindByEmail(ctx context.Context, email string) (*models.User, error)
}

// Users implements user business logic over a repository.
type Users struct {
	repo UsersRepository
}

// NewUsers creates the users service.
func NewUsers(repo UsersRepository) *Users {
	return &Users{repo: repo}
}

// Create stores a new user. Duplicate emails surface as the storage
// layer's conflict error; there is deliberately no pre-check here.
func (s *Users) Create(ctx context.Context, user *models.User) (*models.User, error) {
	return s.repo.Create(ctx, user)
}

// List returns all users.
func (s *Users) List(ctx context.Context) ([]models.User, error) {
	return s.repo.FindAll(ctx)
}

// GetByID returns the user with the given id, raising USER_NOT_FOUND when
// no user matches.
func (s *Users) GetByID(ctx context.Context, id string) (*models.User, error) {
	user, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if user == nil {
		return nil, notFoundByID(id)
	}
	return user, nil
}

// Update applies patch to the user with the given id, raising
// USER_NOT_FOUND when no user matches.
func (s *Users) Update(ctx context.Context, id string, patch models.UserPatch) (*models.User, error) {
	user, err := s.repo.Update(ctx, id, patch)
	if err != nil {
		return nil, err
	}
	if user == nil {
		return nil, notFoundByID(id)
	}
	return user, nil
}

// Delete removes the user with the given id, raising USER_NOT_FOUND when
// no user matches. Deleting an already-deleted id keeps raising
// USER_NOT_FOUND with no further side effects.
func (s *Users) Delete(ctx context.Context, id string) (*models.User, error) {
	user, err := s.repo.Delete(ctx, id)
	if err != nil {
		return nil, err
	}
	if user == nil {
		return nil, notFoundByID(id)
	}
	return user, nil
}

// GetByEmail returns the user with the given email, raising
// USER_NOT_FOUND when no user matches.
func (s *Users) GetByEmail(ctx context.Context, email string) (*models.User, error) {
	user, err := s.repo.FindByEmail(ctx, email)
	if err != nil {
		return nil, err
	}
	if user == nil {
		return nil, apierr.New(apierr.CodeUserNotFound).WithMeta(map[string]any{"email": email})
	}
	return user, nil
}

func notFoundByID(id string) *apierr.Error {
	return apierr.New(apierr.CodeUserNotFound).WithMeta(map[string]any{"id": id})
}
