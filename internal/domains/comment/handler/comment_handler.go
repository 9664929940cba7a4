package handler

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	validation "github.com/go-ozzo/ozzo-validation/v4"
	"github.com/google/uuid"

	"leearn-backend/internal/domains/comment"
	"leearn-backend/internal/shared/middleware"
	"leearn-backend/internal/shared/response"
	"leearn-backend/pkg/logger"
)

// CommentHandler exposes comments over HTTP; routes are mounted under
// /contents/:id/comments.
type CommentHandler struct {
	service comment.Service
}

func NewCommentHandler(service comment.Service) *CommentHandler {
	return &CommentHandler{service: service}
}

// Create handles POST /contents/:id/comments (authenticated)
func (h *CommentHandler) Create(c *gin.Context) {
	authorID, ok := middleware.UserIDFromContext(c)
	if !ok {
		response.Unauthorized(c, "missing identity")
		return
	}

	contentID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		response.BadRequest(c, "Invalid content id")
		return
	}

	var req comment.CreateCommentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "Invalid request body")
		return
	}

	commentDTO, err := h.service.Create(c.Request.Context(), contentID, req, authorID)
	if err != nil {
		h.handleError(c, err)
		return
	}

	response.Success(c, http.StatusCreated, "Comment created successfully", commentDTO)
}

// ListByContent handles GET /contents/:id/comments
func (h *CommentHandler) ListByContent(c *gin.Context) {
	contentID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		response.BadRequest(c, "Invalid content id")
		return
	}

	comments, err := h.service.ListByContent(c.Request.Context(), contentID)
	if err != nil {
		h.handleError(c, err)
		return
	}

	response.Success(c, http.StatusOK, "", comments)
}

func (h *CommentHandler) handleError(c *gin.Context, err error) {
	var vErrs validation.Errors
	switch {
	case errors.As(err, &vErrs):
		response.ErrorWithDetails(c, http.StatusBadRequest, "VALIDATION_FAILED", "Validation failed", vErrs)
	case errors.Is(err, comment.ErrContentNotFound):
		response.NotFound(c, "Content not found")
	case errors.Is(err, comment.ErrAuthorNotFound):
		response.Conflict(c, "Author does not exist")
	default:
		logger.Error("comment handler", err)
		response.InternalServerError(c, "Internal server error")
	}
}
