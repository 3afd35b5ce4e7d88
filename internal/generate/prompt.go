package generate

import "fmt"

// The prompts embed the expected JSON shape as literal example text; the
// parser in parse.go relies on the model following it.

const dailyLessonPromptFmt = `You are an educational AI. Provide an engaging summary of the topic %q in no more than 200 words.

Then, create one multiple-choice quiz question in this JSON format:

{
  "topic": "The Topic",
  "summary": "200-word summary here...",
  "quiz": {
    "question": "Question related to the topic",
    "options": ["A", "B", "C", "D"],
    "correctAnswer": "A"
  }
}

The correctAnswer field must contain the entire option string, not the option letter.
Only return valid JSON with those three fields. No explanation or extra text.`

func buildDailyLessonPrompt(topic string) string {
	return fmt.Sprintf(dailyLessonPromptFmt, topic)
}

const customSummaryPromptFmt = `You are an educational AI. Provide a concise and engaging summary of the following topic or link:

%q

Then, generate ten multiple-choice quiz questions based on this summary in the following JSON format:

{
  "summary": "Brief summary of the topic here...",
  "quiz": [
    {
      "question": "First question?",
      "options": ["Option A", "Option B", "Option C", "Option D"],
      "correctAnswer": "Option A"
    },
    {
      "question": "Second question?",
      "options": ["Option A", "Option B", "Option C", "Option D"],
      "correctAnswer": "Option B"
    }
  ]
}

Only return the JSON. Do not include any extra text or explanations.`

func buildCustomSummaryPrompt(input string) string {
	return fmt.Sprintf(customSummaryPromptFmt, input)
}

const followUpPromptFmt = `You are an educational AI. A user just learned about the topic: %q.

Here is a short summary of what they learned:
%s

Now the user is asking this follow-up question:
%q

Please answer clearly, concisely, and in a beginner-friendly way.`

func buildFollowUpPrompt(topic, summary, question string) string {
	return fmt.Sprintf(followUpPromptFmt, topic, summary, question)
}
