package handlers

import (
	"context"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/amrsalem/go-user-service/internal/apierr"
	"github.com/amrsalem/go-user-service/internal/models"
	"github.com/amrsalem/go-user-service/internal/validation"
)

// UsersService is the business capability set the handlers need.
type UsersService interface {
	Create(ctx context.Context, user *models.User) (*models.User, error)
	List(ctx context.Context) ([]models.User, error)
	GetByID(ctx context.Context, id string) (*models.User, error)
	Update(ctx context.Context, id string, patch models.UserPatch) (*models.User, error)
	Delete(ctx context.Context, id string) (*models.User, error)
	GetByEmail(ctx context.Context, email string) (*models.User, error)
}

// UserHandler handles the /users resource.
type UserHandler struct {
	users UsersService
}

// NewUserHandler creates the users handler.
func NewUserHandler(users UsersService) *UserHandler {
	return &UserHandler{users: users}
}

// List handles GET /api/v1/users.
func (h *UserHandler) List(c *gin.Context) {
	users, err := h.users.List(c.Request.Context())
	if err != nil {
		fail(c, err)
		return
	}
	respondSuccess(c, http.StatusOK, msgUserListed, gin.H{"users": users})
}

// GetByID handles GET /api/v1/users/:id.
func (h *UserHandler) GetByID(c *gin.Context) {
	id, ok := h.bindIDParam(c)
	if !ok {
		return
	}

	user, err := h.users.GetByID(c.Request.Context(), id)
	if err != nil {
		fail(c, err)
		return
	}
	respondSuccess(c, http.StatusOK, msgUserRetrieved, gin.H{"user": user})
}

// Create handles POST /api/v1/users.
func (h *UserHandler) Create(c *gin.Context) {
	var req CreateUserRequest
	if !h.bindBody(c, &req) {
		return
	}

	user, err := h.users.Create(c.Request.Context(), req.ToModel())
	if err != nil {
		fail(c, err)
		return
	}
	respondSuccess(c, http.StatusCreated, msgUserCreated, gin.H{"user": user})
}

// Update handles PATCH/PUT /api/v1/users/:id.
func (h *UserHandler) Update(c *gin.Context) {
	id, ok := h.bindIDParam(c)
	if !ok {
		return
	}

	var req UpdateUserRequest
	if !h.bindBody(c, &req) {
		return
	}

	patch := req.ToPatch()
	if patch.Empty() {
		fail(c, apierr.New(apierr.CodeValidationError).WithFields([]apierr.Field{
			{Field: "body", Code: "VALIDATION_BODY_EMPTY"},
		}))
		return
	}

	user, err := h.users.Update(c.Request.Context(), id, patch)
	if err != nil {
		fail(c, err)
		return
	}
	respondSuccess(c, http.StatusOK, msgUserUpdated, gin.H{"user": user})
}

// Delete handles DELETE /api/v1/users/:id.
func (h *UserHandler) Delete(c *gin.Context) {
	id, ok := h.bindIDParam(c)
	if !ok {
		return
	}

	user, err := h.users.Delete(c.Request.Context(), id)
	if err != nil {
		fail(c, err)
		return
	}
	respondSuccess(c, http.StatusOK, msgUserDeleted, gin.H{"user": user})
}

// GetByEmail handles GET /api/v1/users/email/:email.
func (h *UserHandler) GetByEmail(c *gin.Context) {
	param := userEmailParam{Email: c.Param("email")}
	if err := validation.Struct(param); err != nil {
		fail(c, err)
		return
	}

	user, err := h.users.GetByEmail(c.Request.Context(), param.Email)
	if err != nil {
		fail(c, err)
		return
	}
	respondSuccess(c, http.StatusOK, msgUserRetrieved, gin.H{"user": user})
}

// bindIDParam validates the :id path parameter, attaching the validation
// failure and reporting false when the id is malformed.
func (h *UserHandler) bindIDParam(c *gin.Context) (string, bool) {
	param := userIDParam{ID: c.Param("id")}
	if err := validation.Struct(param); err != nil {
		fail(c, err)
		return "", false
	}
	return param.ID, true
}

// bindBody decodes the JSON body into req and validates it. Decode
// failures (malformed JSON, wrong types) are reported as a plain
// validation error rather than leaking decoder detail.
func (h *UserHandler) bindBody(c *gin.Context, req any) bool {
	if err := c.ShouldBindJSON(req); err != nil {
		fail(c, apierr.New(apierr.CodeValidationError))
		return false
	}
	if err := validation.Struct(req); err != nil {
		fail(c, err)
		return false
	}
	return true
}

// fail hands a raw failure to the error responder.
func fail(c *gin.Context, err error) {
	_ = c.Error(err)
	c.Abort()
}
