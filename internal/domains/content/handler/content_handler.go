package handler

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	validation "github.com/go-ozzo/ozzo-validation/v4"
	"github.com/google/uuid"

	"leearn-backend/internal/domains/content"
	"leearn-backend/internal/shared/middleware"
	"leearn-backend/internal/shared/response"
	"leearn-backend/pkg/logger"
)

// ContentHandler exposes the content domain over HTTP.
type ContentHandler struct {
	service content.Service
}

func NewContentHandler(service content.Service) *ContentHandler {
	return &ContentHandler{service: service}
}

// Create handles POST /contents (authenticated)
func (h *ContentHandler) Create(c *gin.Context) {
	authorID, ok := middleware.UserIDFromContext(c)
	if !ok {
		response.Unauthorized(c, "missing identity")
		return
	}

	var req content.CreateContentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "Invalid request body")
		return
	}

	contentDTO, err := h.service.Create(c.Request.Context(), req, authorID)
	if err != nil {
		h.handleError(c, err)
		return
	}

	c.Header("Location", "/api/v1/contents/"+contentDTO.ID.String())
	response.Success(c, http.StatusCreated, "Content created successfully", contentDTO)
}

// GetByID handles GET /contents/:id
func (h *ContentHandler) GetByID(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		response.BadRequest(c, "Invalid content id")
		return
	}

	contentDTO, err := h.service.GetByID(c.Request.Context(), id)
	if err != nil {
		h.handleError(c, err)
		return
	}

	response.Success(c, http.StatusOK, "", contentDTO)
}

// List handles GET /contents
func (h *ContentHandler) List(c *gin.Context) {
	contents, err := h.service.List(c.Request.Context())
	if err != nil {
		h.handleError(c, err)
		return
	}

	response.Success(c, http.StatusOK, "", contents)
}

// Update handles PUT /contents/:id
func (h *ContentHandler) Update(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		response.BadRequest(c, "Invalid content id")
		return
	}

	var req content.CreateContentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "Invalid request body")
		return
	}

	contentDTO, err := h.service.Update(c.Request.Context(), id, req)
	if err != nil {
		h.handleError(c, err)
		return
	}

	response.Success(c, http.StatusOK, "Content updated successfully", contentDTO)
}

// Delete handles DELETE /contents/:id
func (h *ContentHandler) Delete(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		response.BadRequest(c, "Invalid content id")
		return
	}

	deleted, err := h.service.Delete(c.Request.Context(), id)
	if err != nil {
		h.handleError(c, err)
		return
	}

	if !deleted {
		response.NotFound(c, "Content not found")
		return
	}

	response.Success(c, http.StatusOK, "Content deleted successfully", nil)
}

// Like handles POST /contents/:id/like (authenticated). Both outcomes are
// success; the message distinguishes a fresh like from an idempotent no-op.
func (h *ContentHandler) Like(c *gin.Context) {
	userID, ok := middleware.UserIDFromContext(c)
	if !ok {
		response.Unauthorized(c, "missing identity")
		return
	}

	contentID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		response.BadRequest(c, "Invalid content id")
		return
	}

	liked, err := h.service.Like(c.Request.Context(), contentID, userID)
	if err != nil {
		h.handleError(c, err)
		return
	}

	if liked {
		response.Success(c, http.StatusOK, "Content liked", nil)
		return
	}
	response.Success(c, http.StatusOK, "Already liked", nil)
}

// Unlike handles DELETE /contents/:id/like (authenticated).
func (h *ContentHandler) Unlike(c *gin.Context) {
	userID, ok := middleware.UserIDFromContext(c)
	if !ok {
		response.Unauthorized(c, "missing identity")
		return
	}

	contentID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		response.BadRequest(c, "Invalid content id")
		return
	}

	removed, err := h.service.Unlike(c.Request.Context(), contentID, userID)
	if err != nil {
		h.handleError(c, err)
		return
	}

	if removed {
		response.Success(c, http.StatusOK, "Content unliked", nil)
		return
	}
	response.Success(c, http.StatusOK, "Not liked yet", nil)
}

func (h *ContentHandler) handleError(c *gin.Context, err error) {
	var vErrs validation.Errors
	switch {
	case errors.As(err, &vErrs):
		response.ErrorWithDetails(c, http.StatusBadRequest, "VALIDATION_FAILED", "Validation failed", vErrs)
	case errors.Is(err, content.ErrContentNotFound):
		response.NotFound(c, "Content not found")
	case errors.Is(err, content.ErrAuthorNotFound):
		response.Conflict(c, "Author does not exist")
	case errors.Is(err, content.ErrUserNotFound):
		response.Conflict(c, "User does not exist")
	default:
		logger.Error("content handler", err)
		response.InternalServerError(c, "Internal server error")
	}
}
