package lesson

import (
	"context"
	"encoding/json"
	"errors"
	"time"
)

// TopicPicker produces a topic for today. Implementations never fail;
// they fall back to a fixed topic instead.
type TopicPicker interface {
	Pick(ctx context.Context) string
}

// DailyGenerator produces a daily lesson record for a topic. An
// unparsable model response is returned as an {"error": ...} value, not
// an error; the error return covers transport failures only.
type DailyGenerator interface {
	DailyLesson(ctx context.Context, topic string) (json.RawMessage, error)
}

// Service guarantees at most one generation per UTC calendar day: the
// first request of the day generates and stores, every later request is
// served from the store verbatim.
type Service struct {
	store  Store
	topics TopicPicker
	gen    DailyGenerator
	now    func() time.Time
}

func NewService(store Store, topics TopicPicker, gen DailyGenerator) *Service {
	return &Service{store: store, topics: topics, gen: gen, now: time.Now}
}

// DateKey formats t as the store's daily key.
func DateKey(t time.Time) string {
	return t.UTC().Format("2006-01-02")
}

// Today returns the lesson record for the current UTC date, generating
// and storing it on the first call of the day. Stored records are
// returned without re-validation, including a stored {"error": ...}
// fallback value from an earlier failed generation.
func (s *Service) Today(ctx context.Context) (json.RawMessage, error) {
	key := DateKey(s.now())

	rec, err := s.store.Get(ctx, key)
	if err == nil {
		return rec, nil
	}
	if !errors.Is(err, ErrNotFound) {
		return nil, err
	}

	topic := s.topics.Pick(ctx)
	generated, err := s.gen.DailyLesson(ctx, topic)
	if err != nil {
		return nil, err
	}

	// Conditional put: if another request generated today's lesson in
	// the meantime, serve that record so all callers see the same day.
	winner, _, err := s.store.PutIfAbsent(ctx, key, generated)
	if err != nil {
		return nil, err
	}
	return winner, nil
}
