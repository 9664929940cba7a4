package handler

import (
	"fmt"
	"net/http"
	"strings"
	"time"

	"github.com/gin-gonic/gin"

	"leearn-backend/internal/domains/ai"
	"leearn-backend/internal/shared/response"
	"leearn-backend/pkg/logger"
)

// AIHandler is pass-through glue around the injected Responder; it holds no
// state and enforces no invariants of its own.
type AIHandler struct {
	responder ai.Responder
}

func NewAIHandler(responder ai.Responder) *AIHandler {
	return &AIHandler{responder: responder}
}

// Chat handles POST /ai/chat
func (h *AIHandler) Chat(c *gin.Context) {
	var req ai.ChatRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "Invalid request body")
		return
	}
	if err := req.Validate(); err != nil {
		response.ErrorWithDetails(c, http.StatusBadRequest, "VALIDATION_FAILED", "Validation failed", err)
		return
	}

	answer, err := h.responder.Respond(c.Request.Context(), req.Question)
	if err != nil {
		logger.Error("ai chat", err)
		response.InternalServerError(c, "Internal server error")
		return
	}

	response.Success(c, http.StatusOK, "", ai.ChatResponse{
		Question:  req.Question,
		Answer:    answer,
		Timestamp: time.Now().UTC(),
	})
}

// StudyPlan handles POST /ai/study-plan
func (h *AIHandler) StudyPlan(c *gin.Context) {
	var req ai.StudyPlanRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "Invalid request body")
		return
	}
	if err := req.Validate(); err != nil {
		response.ErrorWithDetails(c, http.StatusBadRequest, "VALIDATION_FAILED", "Validation failed", err)
		return
	}

	prompt := fmt.Sprintf("Create a %s study plan for a %s-level learner with goals: %s", req.Subject, req.Level, req.Goals)

	plan, err := h.responder.Respond(c.Request.Context(), prompt)
	if err != nil {
		logger.Error("ai study plan", err)
		response.InternalServerError(c, "Internal server error")
		return
	}

	response.Success(c, http.StatusOK, "", ai.StudyPlanResponse{
		Subject:   req.Subject,
		Level:     req.Level,
		Goals:     req.Goals,
		Plan:      plan,
		Timestamp: time.Now().UTC(),
	})
}

// Suggestions handles POST /ai/suggestions
func (h *AIHandler) Suggestions(c *gin.Context) {
	var req ai.SuggestionsRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "Invalid request body")
		return
	}

	interests := req.Interests
	if len(interests) == 0 {
		interests = []string{"general knowledge"}
	}

	prompt := fmt.Sprintf("Recommend learning content for someone interested in %s", strings.Join(interests, ", "))

	suggestions, err := h.responder.Respond(c.Request.Context(), prompt)
	if err != nil {
		logger.Error("ai suggestions", err)
		response.InternalServerError(c, "Internal server error")
		return
	}

	response.Success(c, http.StatusOK, "", ai.SuggestionsResponse{
		Interests:   interests,
		Suggestions: suggestions,
		Timestamp:   time.Now().UTC(),
	})
}
