package ai

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestChatRequestValidation(t *testing.T) {
	assert.NoError(t, ChatRequest{Question: "what is a goroutine?"}.Validate())

	assert.Error(t, ChatRequest{}.Validate())

	// Whitespace-only must fail the same way empty does.
	assert.Error(t, ChatRequest{Question: "   "}.Validate())
}

func TestStudyPlanRequestValidation(t *testing.T) {
	valid := StudyPlanRequest{Subject: "Go", Level: "beginner", Goals: "ship a service"}
	assert.NoError(t, valid.Validate())

	missing := valid
	missing.Level = ""
	assert.Error(t, missing.Validate())
}
