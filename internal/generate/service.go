package generate

import (
	"context"
	"encoding/json"
	"strings"

	"github.com/microlearn/microlearn/internal/lesson"
)

// followUpFallback is served when the model returns empty text for a
// follow-up question.
const followUpFallback = "Sorry, I couldn't generate an answer."

// dailyFallback is the value persisted and served when a daily-lesson
// response does not parse. A value, not an error: only the
// custom-summary path treats an unparsable response as a failure.
var dailyFallback = json.RawMessage(`{"error":"Failed to generate valid content."}`)

// Service builds the prompt for each generation kind, invokes the text
// generator and parses the response.
type Service struct {
	gen TextGenerator
}

func NewService(gen TextGenerator) *Service {
	return &Service{gen: gen}
}

// DailyLesson generates the single-question lesson for a topic. The
// error return covers generator failures only; a response that does not
// parse as JSON yields the {"error": ...} fallback value with a nil
// error.
func (s *Service) DailyLesson(ctx context.Context, topic string) (json.RawMessage, error) {
	text, err := s.gen.GenerateText(ctx, buildDailyLessonPrompt(topic))
	if err != nil {
		return nil, err
	}
	var raw json.RawMessage
	if err := decodeJSON(text, &raw); err != nil {
		return dailyFallback, nil
	}
	return raw, nil
}

// Summarize generates a summary plus a ten-question quiz for arbitrary
// user input. Unlike DailyLesson, an unparsable response is an error.
func (s *Service) Summarize(ctx context.Context, input string) (lesson.CustomSummaryResult, error) {
	if strings.TrimSpace(input) == "" {
		return lesson.CustomSummaryResult{}, ErrInvalidInput
	}
	text, err := s.gen.GenerateText(ctx, buildCustomSummaryPrompt(input))
	if err != nil {
		return lesson.CustomSummaryResult{}, err
	}
	var res lesson.CustomSummaryResult
	if err := decodeJSON(text, &res); err != nil {
		return lesson.CustomSummaryResult{}, err
	}
	return res, nil
}

// Answer generates a free-text answer to a follow-up question about an
// earlier lesson. All three inputs are required.
func (s *Service) Answer(ctx context.Context, topic, summary, question string) (string, error) {
	if topic == "" || summary == "" || question == "" {
		return "", ErrMissingInput
	}
	text, err := s.gen.GenerateText(ctx, buildFollowUpPrompt(topic, summary, question))
	if err != nil {
		return "", err
	}
	answer := strings.TrimSpace(text)
	if answer == "" {
		answer = followUpFallback
	}
	return answer, nil
}
