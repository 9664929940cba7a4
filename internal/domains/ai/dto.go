package ai

import (
	"errors"
	"strings"
	"time"

	validation "github.com/go-ozzo/ozzo-validation/v4"
)

type ChatRequest struct {
	Question string `json:"question" binding:"required"`
	Context  string `json:"context,omitempty"`
}

func (r ChatRequest) Validate() error {
	return validation.ValidateStruct(&r,
		validation.Field(&r.Question,
			validation.Required.Error("question is required"),
			validation.By(notBlank),
		),
	)
}

// notBlank rejects strings that are empty once whitespace is stripped;
// Required alone lets "   " through.
func notBlank(value interface{}) error {
	s, _ := value.(string)
	if strings.TrimSpace(s) == "" {
		return errors.New("must not be blank")
	}
	return nil
}

type ChatResponse struct {
	Question  string    `json:"question"`
	Answer    string    `json:"answer"`
	Timestamp time.Time `json:"timestamp"`
}

type StudyPlanRequest struct {
	Subject string `json:"subject" binding:"required"`
	Level   string `json:"level" binding:"required"`
	Goals   string `json:"goals" binding:"required"`
}

func (r StudyPlanRequest) Validate() error {
	return validation.ValidateStruct(&r,
		validation.Field(&r.Subject, validation.Required.Error("subject is required")),
		validation.Field(&r.Level, validation.Required.Error("level is required")),
		validation.Field(&r.Goals, validation.Required.Error("goals is required")),
	)
}

type StudyPlanResponse struct {
	Subject   string    `json:"subject"`
	Level     string    `json:"level"`
	Goals     string    `json:"goals"`
	Plan      string    `json:"plan"`
	Timestamp time.Time `json:"timestamp"`
}

type SuggestionsRequest struct {
	Interests []string `json:"interests"`
}

type SuggestionsResponse struct {
	Interests   []string  `json:"interests"`
	Suggestions string    `json:"suggestions"`
	Timestamp   time.Time `json:"timestamp"`
}
