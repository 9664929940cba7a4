package handler

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	validation "github.com/go-ozzo/ozzo-validation/v4"
	"github.com/google/uuid"

	"leearn-backend/internal/domains/user"
	"leearn-backend/internal/shared/response"
	"leearn-backend/pkg/jwt"
	"leearn-backend/pkg/logger"
)

// UserHandler exposes the user domain over HTTP. Stateless; holds only
// dependencies.
type UserHandler struct {
	service    user.Service
	jwtManager *jwt.Manager
}

func NewUserHandler(service user.Service, jwtManager *jwt.Manager) *UserHandler {
	return &UserHandler{
		service:    service,
		jwtManager: jwtManager,
	}
}

// Create handles POST /users
func (h *UserHandler) Create(c *gin.Context) {
	var req user.CreateUserRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "Invalid request body")
		return
	}

	userDTO, err := h.service.Create(c.Request.Context(), req)
	if err != nil {
		h.handleError(c, err)
		return
	}

	c.Header("Location", "/api/v1/users/"+userDTO.ID.String())
	response.Success(c, http.StatusCreated, "User created successfully", userDTO)
}

// GetByID handles GET /users/:id
func (h *UserHandler) GetByID(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		response.BadRequest(c, "Invalid user id")
		return
	}

	userDTO, err := h.service.GetByID(c.Request.Context(), id)
	if err != nil {
		h.handleError(c, err)
		return
	}

	response.Success(c, http.StatusOK, "", userDTO)
}

// GetByUsername handles GET /users/by-username/:username
func (h *UserHandler) GetByUsername(c *gin.Context) {
	userDTO, err := h.service.GetByUsername(c.Request.Context(), c.Param("username"))
	if err != nil {
		h.handleError(c, err)
		return
	}

	response.Success(c, http.StatusOK, "", userDTO)
}

// List handles GET /users
func (h *UserHandler) List(c *gin.Context) {
	users, err := h.service.List(c.Request.Context())
	if err != nil {
		h.handleError(c, err)
		return
	}

	response.Success(c, http.StatusOK, "", users)
}

// Update handles PUT /users/:id
func (h *UserHandler) Update(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		response.BadRequest(c, "Invalid user id")
		return
	}

	var req user.UpdateUserRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "Invalid request body")
		return
	}

	userDTO, err := h.service.Update(c.Request.Context(), id, req)
	if err != nil {
		h.handleError(c, err)
		return
	}

	response.Success(c, http.StatusOK, "User updated successfully", userDTO)
}

// Delete handles DELETE /users/:id
func (h *UserHandler) Delete(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		response.BadRequest(c, "Invalid user id")
		return
	}

	deleted, err := h.service.Delete(c.Request.Context(), id)
	if err != nil {
		h.handleError(c, err)
		return
	}

	if !deleted {
		response.NotFound(c, "User not found")
		return
	}

	response.Success(c, http.StatusOK, "User deleted successfully", nil)
}

// IssueToken handles POST /auth/token. Development stand-in for a real auth
// collaborator: it looks up a user by username and issues an access token
// carrying that identity. No password is checked.
func (h *UserHandler) IssueToken(c *gin.Context) {
	var req struct {
		Username string `json:"username" binding:"required"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "Invalid request body")
		return
	}

	userDTO, err := h.service.GetByUsername(c.Request.Context(), req.Username)
	if err != nil {
		h.handleError(c, err)
		return
	}

	token, err := h.jwtManager.GenerateAccessToken(userDTO.ID.String(), userDTO.Username)
	if err != nil {
		logger.Error("generate access token", err)
		response.InternalServerError(c, "Internal server error")
		return
	}

	response.Success(c, http.StatusOK, "Token issued", gin.H{
		"access_token": token,
		"user":         userDTO,
	})
}

// handleError maps domain errors onto HTTP status codes. Store failures
// stay opaque: the client sees a generic internal failure, detail goes to
// the log only.
func (h *UserHandler) handleError(c *gin.Context, err error) {
	var vErrs validation.Errors
	switch {
	case errors.As(err, &vErrs):
		response.ErrorWithDetails(c, http.StatusBadRequest, "VALIDATION_FAILED", "Validation failed", vErrs)
	case errors.Is(err, user.ErrUserNotFound):
		response.NotFound(c, "User not found")
	case errors.Is(err, user.ErrUsernameAlreadyExists):
		response.Conflict(c, "Username already exists")
	case errors.Is(err, user.ErrEmailAlreadyExists):
		response.Conflict(c, "Email already exists")
	default:
		logger.Error("user handler", err)
		response.InternalServerError(c, "Internal server error")
	}
}
