package handlers

import (
	"errors"
	"fmt"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"

	"github.com/sreeharir/resume-crm/internal/constants"
	"github.com/sreeharir/resume-crm/internal/dto"
	apierrors "github.com/sreeharir/resume-crm/internal/errors"
	"github.com/sreeharir/resume-crm/internal/middleware"
	"github.com/sreeharir/resume-crm/internal/models"
	"github.com/sreeharir/resume-crm/internal/services"
)

// UserHandler exposes the admin-only user-management surface. Accounts
// are create-only: no edit, no delete, no password reset.
type UserHandler struct {
	authService *services.AuthService
}

// NewUserHandler creates a new UserHandler.
func NewUserHandler(authService *services.AuthService) *UserHandler {
	return &UserHandler{
		authService: authService,
	}
}

// CreateUser registers a new account with the given role.
func (h *UserHandler) CreateUser(c *gin.Context) {
	actorRole, exists := middleware.GetUserRole(c)
	if !exists {
		apierrors.Unauthorized(c, "Not authenticated")
		return
	}

	type CreateUserRequest struct {
		Username string          `json:"username" binding:"required"`
		Password string          `json:"password" binding:"required"`
		Role     models.UserRole `json:"role" binding:"required,oneof=admin staff"`
	}

	var req CreateUserRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		apierrors.BadRequest(c, "Invalid request body")
		return
	}

	user, err := h.authService.CreateUser(services.CreateUserInput{
		ActorRole: actorRole,
		Username:  req.Username,
		Password:  req.Password,
		Role:      req.Role,
	})
	if err != nil {
		switch {
		case errors.Is(err, services.ErrPermissionDenied):
			apierrors.Forbidden(c, err.Error())
		case errors.Is(err, services.ErrUsernameTaken):
			apierrors.Conflict(c, err.Error())
		case errors.Is(err, services.ErrUsernameRequired),
			errors.Is(err, services.ErrUsernameTooLong),
			errors.Is(err, services.ErrInvalidRole):
			apierrors.BadRequest(c, err.Error())
		case errors.Is(err, services.ErrPasswordTooShort):
			apierrors.BadRequest(c, fmt.Sprintf("Password must be at least %d characters", constants.MinPasswordLength))
		default:
			logrus.WithError(err).Error("failed to create user")
			apierrors.InternalError(c, "")
		}
		return
	}

	c.JSON(http.StatusCreated, dto.ToUserDTO(*user))
}
