package handler

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	validation "github.com/go-ozzo/ozzo-validation/v4"
	"github.com/google/uuid"

	"leearn-backend/internal/domains/friendship"
	"leearn-backend/internal/shared/middleware"
	"leearn-backend/internal/shared/response"
	"leearn-backend/pkg/logger"
)

// FriendshipHandler exposes friendships over HTTP.
type FriendshipHandler struct {
	service friendship.Service
}

func NewFriendshipHandler(service friendship.Service) *FriendshipHandler {
	return &FriendshipHandler{service: service}
}

// Create handles POST /friendships (authenticated). The requester is the
// authenticated user; the target comes from the body.
func (h *FriendshipHandler) Create(c *gin.Context) {
	requesterID, ok := middleware.UserIDFromContext(c)
	if !ok {
		response.Unauthorized(c, "missing identity")
		return
	}

	var req friendship.CreateFriendshipRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "Invalid request body")
		return
	}
	if err := req.Validate(); err != nil {
		response.ErrorWithDetails(c, http.StatusBadRequest, "VALIDATION_FAILED", "Validation failed", err)
		return
	}

	targetID, err := uuid.Parse(req.UserID)
	if err != nil {
		response.BadRequest(c, "Invalid user id")
		return
	}

	friendshipDTO, err := h.service.Create(c.Request.Context(), requesterID, targetID)
	if err != nil {
		h.handleError(c, err)
		return
	}

	response.Success(c, http.StatusCreated, "Friendship request created", friendshipDTO)
}

// ListByUser handles GET /users/:id/friendships
func (h *FriendshipHandler) ListByUser(c *gin.Context) {
	userID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		response.BadRequest(c, "Invalid user id")
		return
	}

	friendships, err := h.service.ListByUser(c.Request.Context(), userID)
	if err != nil {
		h.handleError(c, err)
		return
	}

	response.Success(c, http.StatusOK, "", friendships)
}

func (h *FriendshipHandler) handleError(c *gin.Context, err error) {
	var vErrs validation.Errors
	switch {
	case errors.As(err, &vErrs):
		response.ErrorWithDetails(c, http.StatusBadRequest, "VALIDATION_FAILED", "Validation failed", vErrs)
	case errors.Is(err, friendship.ErrSelfFriendship):
		response.BadRequest(c, "Cannot create a friendship with yourself")
	case errors.Is(err, friendship.ErrFriendshipExists):
		response.Conflict(c, "Friendship already exists")
	case errors.Is(err, friendship.ErrUserNotFound):
		response.Conflict(c, "User does not exist")
	default:
		logger.Error("friendship handler", err)
		response.InternalServerError(c, "Internal server error")
	}
}
