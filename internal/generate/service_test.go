package generate

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func validCustomSummaryJSON(questions int) string {
	var items []string
	for i := 0; i < questions; i++ {
		items = append(items, fmt.Sprintf(`{
			"question": "Question %d?",
			"options": ["Option A", "Option B", "Option C", "Option D"],
			"correctAnswer": "Option B"
		}`, i+1))
	}
	return fmt.Sprintf(`{"summary":"Octopuses are clever.","quiz":[%s]}`, strings.Join(items, ","))
}

func TestDailyLesson(t *testing.T) {
	body := `{"topic":"Octopus","summary":"Eight arms.","quiz":{"question":"How many arms?","options":["Six","Eight"],"correctAnswer":"Eight"}}`
	gen := NewMockGenerator(MockResponse{Text: "```json\n" + body + "\n```"})
	svc := NewService(gen)

	rec, err := svc.DailyLesson(context.Background(), "Octopus")
	require.NoError(t, err)
	assert.JSONEq(t, body, string(rec))

	require.Len(t, gen.Prompts, 1)
	assert.Contains(t, gen.Prompts[0], `"Octopus"`)
}

// An unparsable daily-lesson response is a value, not an error. The
// custom-summary path below treats the same condition as a failure.
func TestDailyLesson_UnparsableYieldsErrorValue(t *testing.T) {
	svc := NewService(NewMockGenerator(MockResponse{Text: "I'm sorry, I can't do that."}))

	rec, err := svc.DailyLesson(context.Background(), "Octopus")
	require.NoError(t, err)
	assert.JSONEq(t, `{"error":"Failed to generate valid content."}`, string(rec))
}

func TestDailyLesson_UpstreamFailure(t *testing.T) {
	svc := NewService(NewMockGenerator(MockResponse{Err: &UpstreamError{Err: errors.New("503")}}))

	_, err := svc.DailyLesson(context.Background(), "Octopus")
	var upstream *UpstreamError
	assert.ErrorAs(t, err, &upstream)
}

func TestSummarize(t *testing.T) {
	svc := NewService(NewMockGenerator(MockResponse{Text: validCustomSummaryJSON(10)}))

	res, err := svc.Summarize(context.Background(), "Octopus")
	require.NoError(t, err)
	assert.NotEmpty(t, res.Summary)
	require.Len(t, res.Quiz, 10)
	for _, item := range res.Quiz {
		assert.Contains(t, item.Options, item.CorrectAnswer)
	}
}

func TestSummarize_InvalidInput(t *testing.T) {
	svc := NewService(NewMockGenerator())

	for _, input := range []string{"", "   "} {
		_, err := svc.Summarize(context.Background(), input)
		assert.ErrorIs(t, err, ErrInvalidInput)
	}
	assert.Equal(t, 0, svc.gen.(*MockGenerator).CallCount())
}

func TestSummarize_UnparsableIsError(t *testing.T) {
	svc := NewService(NewMockGenerator(MockResponse{Text: "no json here"}))

	_, err := svc.Summarize(context.Background(), "Octopus")
	var unparsable *UnparsableError
	assert.ErrorAs(t, err, &unparsable)
}

func TestAnswer(t *testing.T) {
	svc := NewService(NewMockGenerator(MockResponse{Text: "  An octopus has eight arms.\n"}))

	got, err := svc.Answer(context.Background(), "Octopus", "Eight arms.", "How many arms?")
	require.NoError(t, err)
	assert.Equal(t, "An octopus has eight arms.", got)
}

func TestAnswer_MissingInput(t *testing.T) {
	svc := NewService(NewMockGenerator())

	_, err := svc.Answer(context.Background(), "Octopus", "Eight arms.", "")
	assert.ErrorIs(t, err, ErrMissingInput)
	_, err = svc.Answer(context.Background(), "", "Eight arms.", "How many?")
	assert.ErrorIs(t, err, ErrMissingInput)
}

func TestAnswer_EmptyTextFallsBack(t *testing.T) {
	svc := NewService(NewMockGenerator(MockResponse{Text: "   "}))

	got, err := svc.Answer(context.Background(), "Octopus", "Eight arms.", "How many arms?")
	require.NoError(t, err)
	assert.Equal(t, "Sorry, I couldn't generate an answer.", got)
}
