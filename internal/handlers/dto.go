package handlers

import (
	"github.com/amrsalem/go-user-service/internal/models"
)

// CreateUserRequest is the POST /users body.
type CreateUserRequest struct {
	Name         string `json:"name" validate:"required,min=2"`
	Email        string `json:"email" validate:"required,email"`
	Password     string `json:"password" validate:"required,min=8"`
	Role         string `json:"role" validate:"omitempty,oneof=user manager admin"`
	Phone        string `json:"phone" validate:"omitempty,phone_eg"`
	ProfileImage string `json:"profileImage" validate:"omitempty"`
}

// ToModel builds the user document to store. Normalization (email casing,
// slug, defaults) happens in the repository's canonical form pass.
func (r CreateUserRequest) ToModel() *models.User {
	return &models.User{
		Name:         r.Name,
		Email:        r.Email,
		Password:     r.Password,
		Role:         models.Role(r.Role),
		Phone:        r.Phone,
		ProfileImage: r.ProfileImage,
	}
}

// UpdateUserRequest is the PATCH/PUT /users/:id body. Every field is
// optional; an entirely empty body is rejected.
type UpdateUserRequest struct {
	Name         *string `json:"name" validate:"omitempty,min=2"`
	Email        *string `json:"email" validate:"omitempty,email"`
	Password     *string `json:"password" validate:"omitempty,min=8"`
	Role         *string `json:"role" validate:"omitempty,oneof=user manager admin"`
	Phone        *string `json:"phone" validate:"omitempty,phone_eg"`
	ProfileImage *string `json:"profileImage" validate:"omitempty"`
}

// ToPatch builds the partial update.
func (r UpdateUserRequest) ToPatch() models.UserPatch {
	return models.UserPatch{
		Name:         r.Name,
		Email:        r.Email,
		Password:     r.Password,
		Role:         r.Role,
		Phone:        r.Phone,
		ProfileImage: r.ProfileImage,
	}
}

// userIDParam validates the :id path parameter shape (24-hex document id).
type userIDParam struct {
	ID string `json:"id" validate:"required,len=24,hexadecimal"`
}

// userEmailParam validates the :email path parameter shape.
type userEmailParam struct {
	Email string `json:"email" validate:"required,email"`
}
