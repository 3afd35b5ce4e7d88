package lesson

import "encoding/json"

// Record is the persisted daily unit of content. Stored records are kept
// as raw JSON so a cached day is served back byte-for-byte, including the
// {"error": ...} fallback value a failed generation leaves behind.
type Record struct {
	Topic   string          `json:"topic"`
	Summary string          `json:"summary"`
	Quiz    json.RawMessage `json:"quiz,omitempty"`
	Score   *float64        `json:"score,omitempty"`
	Error   string          `json:"error,omitempty"`
}

// QuizItem is a single multiple-choice question. The generator is
// instructed to make CorrectAnswer one of Options verbatim; the server
// does not enforce it.
type QuizItem struct {
	Question      string   `json:"question"`
	Options       []string `json:"options"`
	CorrectAnswer string   `json:"correctAnswer"`
}

// ArchiveEntry is the archive projection of a stored record. Quiz passes
// through untouched (a single object, an array, or null).
type ArchiveEntry struct {
	Topic   string          `json:"topic"`
	Summary string          `json:"summary"`
	Quiz    json.RawMessage `json:"quiz"`
	Date    string          `json:"date"`
}

// HistoryEntry is the history projection of a stored record. Score is
// omitted when the record never had one.
type HistoryEntry struct {
	Topic string   `json:"topic"`
	Date  string   `json:"date"`
	Score *float64 `json:"score,omitempty"`
}

// CustomSummaryResult is the response of the custom-topic summarizer.
// Never persisted.
type CustomSummaryResult struct {
	Summary string     `json:"summary"`
	Quiz    []QuizItem `json:"quiz"`
}
